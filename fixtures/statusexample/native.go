// Package statusexample is a fixture module covering every shape in which a
// native function can hand a status result to the host: by value, by
// reference, by pointer, in a capsule, inside a StatusOr holding a value, a
// borrowed object or an owned object, and through a host override of a
// native interface.
package statusexample

import (
	"github.com/mgomes/statusbind/own"
	"github.com/mgomes/statusbind/status"
)

type IntValue struct {
	Value int
}

type TestClass struct{}

func (*TestClass) MakeStatus(code status.Code, text string) status.Status {
	return status.New(code, text)
}

func (*TestClass) MakeStatusConst(code status.Code, text string) status.Status {
	return status.New(code, text)
}

func (*TestClass) MakeFailureStatusOr(code status.Code, text string) status.StatusOr[int] {
	return status.FromStatus[int](status.New(code, text))
}

// CheckStatus compares raw codes, so non-canonical codes match too.
func CheckStatus(s status.Status, code status.Code) bool {
	return s.RawCode() == int(code)
}

func CheckStatusOr(so status.StatusOr[int], code status.Code) bool {
	if so.Ok() {
		return true
	}
	return so.Status().RawCode() == int(code)
}

func ReturnStatus(code status.Code, text string) status.Status {
	return status.New(code, text)
}

func ReturnFailureStatusOr(code status.Code, text string) status.StatusOr[int] {
	return status.FromStatus[int](status.New(code, text))
}

func ReturnValueStatusOr(value int) status.StatusOr[int] {
	return status.ValueOf(value)
}

func ReturnUniquePtrStatusOr(value int) status.StatusOr[*own.Unique[IntValue]] {
	return status.ValueOf(own.NewUnique(&IntValue{Value: value}))
}

// IntGetter is implemented in host code by subclassing the IntGetter class.
type IntGetter interface {
	Get(i int) (status.StatusOr[int], error)
}

// CallGetRedirect calls g.Get. A nil getter is an InvalidArgument failure
// and nothing is dispatched.
func CallGetRedirect(g IntGetter, i int) (status.StatusOr[int], error) {
	if g == nil {
		return status.FromStatus[int](status.InvalidArgumentError("Function parameter should not be nil.")), nil
	}
	return g.Get(i)
}
