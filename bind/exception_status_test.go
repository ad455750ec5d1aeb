package bind

import (
	"errors"
	"testing"

	"github.com/mgomes/statusbind/host"
	"github.com/mgomes/statusbind/status"
)

func raising(class *host.ExceptionClass, msg string) host.Value {
	return host.NewBuiltin("cb", func(rt *host.Runtime, receiver host.Value, args []host.Value, kwargs map[string]host.Value) (host.Value, error) {
		return host.NewNil(), host.Raise(class, "%s", msg)
	})
}

func returning(v host.Value) host.Value {
	return host.NewBuiltin("cb", func(rt *host.Runtime, receiver host.Value, args []host.Value, kwargs map[string]host.Value) (host.Value, error) {
		return v, nil
	})
}

var exceptionStatusTable = []struct {
	class *host.ExceptionClass
	want  string
}{
	{host.MemoryError, "RESOURCE_EXHAUSTED: MemoryError"},
	{host.NotImplementedError, "UNIMPLEMENTED: NotImplementedError"},
	{host.KeyboardInterrupt, "ABORTED: KeyboardInterrupt"},
	{host.SystemError, "INTERNAL: SystemError"},
	{host.SyntaxError, "INTERNAL: SyntaxError"},
	{host.TypeError, "INVALID_ARGUMENT: TypeError"},
	{host.ValueError, "OUT_OF_RANGE: ValueError"},
	{host.LookupError, "NOT_FOUND: LookupError"},
	{host.RuntimeError, "UNKNOWN: RuntimeError"},
}

func TestStatusFuncMapsExceptions(t *testing.T) {
	rt := host.NewRuntime(host.Config{})
	for _, tt := range exceptionStatusTable {
		got := StatusFunc(rt, raising(tt.class, "Msg."))().String()
		if got != tt.want+": Msg." {
			t.Fatalf("%s: got %q", tt.class.Name, got)
		}
	}
}

func TestStatusOrFuncMapsExceptions(t *testing.T) {
	rt := host.NewRuntime(host.Config{})
	for _, tt := range exceptionStatusTable {
		so := StatusOrFunc(rt, raising(tt.class, "Msg."), LoadInt)()
		if got := so.Status().String(); got != tt.want+": Msg." {
			t.Fatalf("%s: got %q", tt.class.Name, got)
		}
	}
}

func TestStatusFromErrorSubclassUsesNearestMapping(t *testing.T) {
	if got := StatusFromError(host.Raise(host.KeyError, "k")).Code(); got != status.NotFound {
		t.Fatalf("KeyError should map through LookupError, got %s", got)
	}
	if got := StatusFromError(host.Raise(host.RecursionError, "deep")).Code(); got != status.Unknown {
		t.Fatalf("RecursionError should be UNKNOWN, got %s", got)
	}
	if got := StatusFromError(host.Raise(host.AssertionError, "")).String(); got != "UNKNOWN: AssertionError: " {
		t.Fatalf("bare assertion = %q", got)
	}
	if !StatusFromError(nil).Ok() {
		t.Fatalf("nil error should be OK")
	}
	if got := StatusFromError(errors.New("plain")); got.Code() != status.Unknown || got.Message() != "plain" {
		t.Fatalf("plain error = %v", got)
	}
}

func TestStatusFromErrorKeepsNativeStatusThroughRuntime(t *testing.T) {
	rt := host.NewRuntime(host.Config{})
	fn := host.NewBuiltin("native", func(rt *host.Runtime, receiver host.Value, args []host.Value, kwargs map[string]host.Value) (host.Value, error) {
		return host.NewNil(), status.New(status.DataLoss, "lost").Err()
	})
	_, err := rt.Call(fn, nil, nil)
	got := StatusFromError(err)
	if got.Code() != status.DataLoss || got.Message() != "lost" {
		t.Fatalf("expected the native status back, got %v", got)
	}
}

func TestStatusFuncReturnValues(t *testing.T) {
	rt := host.NewRuntime(host.Config{})
	if got := StatusFunc(rt, returning(host.NewNil()))().String(); got != "OK" {
		t.Fatalf("nil return = %q", got)
	}
	if got := StatusFunc(rt, returning(NewStatusValue(status.AbortedError("stop"))))(); got.Code() != status.Aborted {
		t.Fatalf("wrapper return = %v", got)
	}
	got := StatusFunc(rt, returning(host.NewList([]host.Value{host.NewString("something")})))().String()
	if got != "INVALID_ARGUMENT: Unable to convert host value of type list to status.Status" {
		t.Fatalf("wrong return type = %q", got)
	}

	so := StatusOrFunc(rt, returning(host.NewString("5")), LoadInt)()
	if got := so.Status().String(); got != "INVALID_ARGUMENT: Unable to convert host value of type string to StatusOr[int]" {
		t.Fatalf("wrong StatusOr return type = %q", got)
	}
	so = StatusOrFunc(rt, returning(host.NewInt(5)), LoadInt)()
	if so.ValueOr(0) != 5 {
		t.Fatalf("int return = %v", so)
	}
}
