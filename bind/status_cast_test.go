package bind

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"

	"github.com/mgomes/statusbind/host"
	"github.com/mgomes/statusbind/status"
)

func TestCastStatusRaiseOnFailure(t *testing.T) {
	out, err := CastStatus(status.OkStatus())
	if err != nil || !out.IsNil() {
		t.Fatalf("OK should convert to nil, got %s, %v", out.Repr(), err)
	}

	_, err = CastStatus(status.InvalidArgumentError("bad input"))
	exc, ok := host.AsException(err)
	if !ok || exc.Class != StatusNotOk {
		t.Fatalf("expected StatusNotOk, got %v", err)
	}
	if exc.Message != "bad input [INVALID_ARGUMENT]" {
		t.Fatalf("unexpected message %q", exc.Message)
	}
	if got := exc.Attrs["code"].Enum(); got == nil || got.Name != "INVALID_ARGUMENT" {
		t.Fatalf("unexpected code attribute %v", exc.Attrs["code"].Repr())
	}
	if got := exc.Attrs["message"].String(); got != "bad input" {
		t.Fatalf("unexpected message attribute %q", got)
	}
	var statusErr *status.Error
	if !errors.As(err, &statusErr) || statusErr.Status.Code() != status.InvalidArgument {
		t.Fatalf("status should be reachable through errors.As")
	}
}

func TestStatusNotOkAttributes(t *testing.T) {
	exc := NewStatusNotOk(status.FromRawCode(9999, "odd"))
	got := make(map[string]string, len(exc.Attrs))
	for name, v := range exc.Attrs {
		got[name] = v.Repr()
	}
	want := map[string]string{
		"status":   "<Status instance>",
		"code":     "StatusCode.UNKNOWN",
		"raw_code": "9999",
		"message":  `"odd"`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("attrs mismatch (-want +got):\n%s", diff)
	}
	if exc.Error() != "StatusNotOk: odd [UNKNOWN]" {
		t.Fatalf("unexpected error text %q", exc.Error())
	}
}

func TestCastStatusNeverRaise(t *testing.T) {
	for _, s := range []status.Status{status.OkStatus(), status.AlreadyExistsError("dup")} {
		out, err := CastStatus(s, DoNotThrow())
		if err != nil {
			t.Fatalf("never-raise conversion raised %v", err)
		}
		got, err := LoadStatus(out)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if !got.Equal(s) {
			t.Fatalf("round trip changed status: %v != %v", got, s)
		}
	}
}

func TestRawCodeSurvivesBothPaths(t *testing.T) {
	s := status.FromRawCode(9999, "odd")

	wrapped, err := CastStatus(s, DoNotThrow())
	if err != nil {
		t.Fatalf("cast failed: %v", err)
	}
	rt := host.NewRuntime(host.Config{})
	raw, err := rt.CallMethod(wrapped, "raw_code", nil, nil)
	if err != nil || raw.Int() != 9999 {
		t.Fatalf("raw_code = %s, %v", raw.Repr(), err)
	}
	code, _ := rt.CallMethod(wrapped, "code", nil, nil)
	if code.Enum().Name != "UNKNOWN" {
		t.Fatalf("canonical code = %s", code.Repr())
	}

	_, err = CastStatus(s)
	exc, _ := host.AsException(err)
	if exc.Attrs["raw_code"].Int() != 9999 || exc.Attrs["code"].Enum().Name != "UNKNOWN" {
		t.Fatalf("exception lost the raw code: %v", exc.Attrs)
	}
	back := StatusFromError(err)
	if back.RawCode() != 9999 || back.Message() != "odd" {
		t.Fatalf("reconstructed status = %v", back)
	}
}

func TestCastStatusPtrReference(t *testing.T) {
	slot := status.NotFoundError("first")
	ref, err := CastStatusPtr(&slot, DoNotThrow(), ReturnReference())
	if err != nil {
		t.Fatalf("cast failed: %v", err)
	}
	copied, _ := CastStatusPtr(&slot, DoNotThrow())

	slot = status.AbortedError("second")

	got, _ := LoadStatus(ref)
	if got.Code() != status.Aborted || got.Message() != "second" {
		t.Fatalf("reference should observe the overwrite, got %v", got)
	}
	got, _ = LoadStatus(copied)
	if got.Code() != status.NotFound {
		t.Fatalf("copy should keep the original, got %v", got)
	}
	if ref.Instance().Owned {
		t.Fatalf("reference wrapper must not own the status")
	}

	out, err := CastStatusPtr(nil, DoNotThrow())
	if err != nil || !out.IsNil() {
		t.Fatalf("nil pointer should convert to nil")
	}
}

func TestLoadStatusPtrAliasing(t *testing.T) {
	slot := status.NotFoundError("slot")
	ref := NewStatusRef(&slot)
	p, err := LoadStatusPtr(ref)
	if err != nil || p != &slot {
		t.Fatalf("reference wrapper should yield the native pointer, got %p, %v", p, err)
	}

	value := NewStatusValue(status.NotFoundError("held"))
	p, err = LoadStatusPtr(value)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	*p = status.AbortedError("scribbled")
	got, _ := LoadStatus(value)
	if got.Code() != status.NotFound || got.Message() != "held" {
		t.Fatalf("writes through a value wrapper's pointer must not reach it, got %v", got)
	}
}

func TestLoadStatusFromCapsule(t *testing.T) {
	s := status.AlreadyExistsError("in a capsule")
	got, err := LoadStatus(NewStatusCapsule(&s))
	if err != nil || !got.Equal(s) {
		t.Fatalf("capsule load = %v, %v", got, err)
	}

	x := 0
	_, err = LoadStatus(host.NewCapsule(host.MakeCapsule(unsafe.Pointer(&x), "NotGood")))
	if !errors.Is(err, host.ErrCapsuleNameMismatch) {
		t.Fatalf("expected name mismatch, got %v", err)
	}
	_, err = LoadStatus(host.NewCapsule(host.MakeUnnamedCapsule(unsafe.Pointer(&x))))
	if !errors.Is(err, host.ErrCapsuleUnnamed) {
		t.Fatalf("expected unnamed capsule error, got %v", err)
	}
}

func TestLoadStatusRejectsOtherValues(t *testing.T) {
	_, err := LoadStatus(host.NewList(nil))
	exc, ok := host.AsException(err)
	if !ok || exc.Class != host.TypeError {
		t.Fatalf("expected TypeError, got %v", err)
	}
	if exc.Message != "Unable to convert host value of type list to status.Status" {
		t.Fatalf("unexpected message %q", exc.Message)
	}

	bare := host.NewInstance(host.Instantiate(StatusClass, nil, true))
	if _, err := LoadStatus(bare); err == nil {
		t.Fatalf("uninitialised wrapper should not load")
	}
}

func TestLoadCode(t *testing.T) {
	tests := []struct {
		in   host.Value
		want status.Code
	}{
		{CodeValue(status.DataLoss), status.DataLoss},
		{host.NewInt(3), status.InvalidArgument},
		{host.NewInt(9999), status.Code(9999)},
		{host.NewString("already_exists"), status.AlreadyExists},
		{host.NewSymbol("NotFound"), status.NotFound},
	}
	for _, tt := range tests {
		got, err := LoadCode(tt.in)
		if err != nil || got != tt.want {
			t.Fatalf("LoadCode(%s) = %d, %v; want %d", tt.in.Repr(), got, err, tt.want)
		}
	}

	if _, err := LoadCode(host.NewString("nope")); err == nil {
		t.Fatalf("unknown name should fail")
	}
	other := host.DefineEnum("Other")
	other.Add("OK", 0)
	m, _ := other.Member("OK")
	if _, err := LoadCode(host.NewEnum(m)); err == nil {
		t.Fatalf("foreign enum should fail")
	}
}
