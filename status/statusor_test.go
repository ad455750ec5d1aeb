package status

import (
	"errors"
	"testing"
)

func TestStatusOrValue(t *testing.T) {
	so := ValueOf(42)
	if !so.Ok() {
		t.Fatalf("expected ok")
	}
	v, err := so.Value()
	if err != nil || v != 42 {
		t.Fatalf("Value() = %d, %v", v, err)
	}
	if so.MustValue() != 42 || so.ValueOr(7) != 42 {
		t.Fatalf("unexpected accessors")
	}
	if so.String() != "42" {
		t.Fatalf("unexpected string %q", so.String())
	}
}

func TestStatusOrFailure(t *testing.T) {
	so := FromStatus[int](InvalidArgumentError("x"))
	if so.Ok() {
		t.Fatalf("expected failure")
	}
	v, err := so.Value()
	if v != 0 {
		t.Fatalf("failed StatusOr leaked value %d", v)
	}
	var statusErr *Error
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if statusErr.Status.Code() != InvalidArgument || statusErr.Status.Message() != "x" {
		t.Fatalf("unexpected status %v", statusErr.Status)
	}
	if so.ValueOr(7) != 7 {
		t.Fatalf("ValueOr should return default")
	}
}

func TestStatusOrRejectsOKStatus(t *testing.T) {
	so := FromStatus[string](OkStatus())
	if so.Ok() {
		t.Fatalf("StatusOr built from OK must not be ok")
	}
	if so.Status().Code() != Internal {
		t.Fatalf("expected Internal, got %s", so.Status().Code())
	}
}

func TestStatusOrMustValuePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	FromStatus[int](UnknownError("nope")).MustValue()
}
