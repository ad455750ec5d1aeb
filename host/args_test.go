package host

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSignatureBind(t *testing.T) {
	sig := Signature{Arg("code"), ArgDefault("text", NewString(""))}
	tests := []struct {
		name    string
		args    []Value
		kwargs  map[string]Value
		want    []string
		wantErr bool
	}{
		{name: "positional", args: []Value{NewInt(3), NewString("x")}, want: []string{"3", `"x"`}},
		{name: "default", args: []Value{NewInt(3)}, want: []string{"3", `""`}},
		{name: "keyword", kwargs: map[string]Value{"code": NewInt(5), "text": NewString("y")}, want: []string{"5", `"y"`}},
		{name: "mixed", args: []Value{NewInt(1)}, kwargs: map[string]Value{"text": NewString("z")}, want: []string{"1", `"z"`}},
		{name: "missing", wantErr: true},
		{name: "too many", args: []Value{NewInt(1), NewInt(2), NewInt(3)}, wantErr: true},
		{name: "duplicate", args: []Value{NewInt(1)}, kwargs: map[string]Value{"code": NewInt(2)}, wantErr: true},
		{name: "unexpected", args: []Value{NewInt(1)}, kwargs: map[string]Value{"bogus": NewNil()}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bound, err := sig.Bind("make_status", tt.args, tt.kwargs)
			if tt.wantErr {
				exc, ok := AsException(err)
				if !ok || exc.Class != TypeError {
					t.Fatalf("expected TypeError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("bind failed: %v", err)
			}
			got := make([]string, len(bound))
			for i, v := range bound {
				got[i] = v.Repr()
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("bound args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSignatureString(t *testing.T) {
	sig := Signature{Arg("code"), ArgDefault("text", NewString(""))}
	if got := sig.String(); got != `(code, text="")` {
		t.Fatalf("unexpected signature %s", got)
	}
}

func TestNewFunctionUsesShortNameInErrors(t *testing.T) {
	rt := NewRuntime(Config{})
	fn := NewFunction("mod.f", []Param{Arg("a")}, func(rt *Runtime, receiver Value, args []Value) (Value, error) {
		return args[0], nil
	})
	_, err := rt.Call(fn, nil, nil)
	exc, ok := AsException(err)
	if !ok || exc.Message != `f() missing required argument "a"` {
		t.Fatalf("unexpected error %v", err)
	}
}
