package bind

import (
	"github.com/mgomes/statusbind/host"
	"github.com/mgomes/statusbind/status"
)

// CallOverride dispatches a native interface method into the host override
// of method on self. It is the body of a trampoline adapter.
//
// A missing override raises NotImplementedError. A StatusNotOk raised by the
// override becomes the failure of the returned StatusOr. Any other exception
// is wrapped in a TypeError whose cause is the original, and a return value
// load cannot read raises TypeError.
func CallOverride[T any](rt *host.Runtime, self *host.Instance, base *host.Class, method string, load func(host.Value) (T, error), args ...host.Value) (status.StatusOr[T], error) {
	fn, _, ok := self.Class.Lookup(method)
	if !ok || host.IsPure(fn) {
		return status.StatusOr[T]{}, host.Raise(host.NotImplementedError,
			"Tried to call pure virtual function %q", base.Name+"."+method)
	}
	out, err := rt.CallMethod(host.NewInstance(self), method, args, nil)
	if err != nil {
		if exc, ok := host.AsException(err); ok {
			if s, ok := StatusFromException(exc); ok {
				return status.FromStatus[T](s), nil
			}
		}
		return status.StatusOr[T]{}, host.Wrap(host.TypeError, err,
			"override %s.%s raised %s", self.Class.Name, method, err)
	}
	return LoadStatusOr(out, load)
}

// NativeOf returns the native object bound to an instance of class. Host
// nil yields the zero T, so callers can check nil interface arguments
// themselves.
func NativeOf[T any](v host.Value, class *host.Class) (T, error) {
	var zero T
	if v.IsNil() {
		return zero, nil
	}
	inst := v.Instance()
	if inst == nil || !inst.Class.IsSubclassOf(class) {
		return zero, host.Raise(host.TypeError, "expected %s, got %s", class.Name, v.TypeName())
	}
	if inst.Native == nil {
		return zero, host.Raise(host.TypeError, "%s.__init__() was not called", class.Name)
	}
	native, ok := inst.Native.(T)
	if !ok {
		return zero, host.Raise(host.TypeError, "%s instance does not hold a %s", inst.Class.Name, typeName[T]())
	}
	return native, nil
}
