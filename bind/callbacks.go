package bind

import (
	"github.com/mgomes/statusbind/host"
	"github.com/mgomes/statusbind/status"
)

// StatusFunc adapts a host callable into a native callback. A nil return is
// OK, a Status wrapper is taken as is and a raised exception is mapped by
// StatusFromError.
func StatusFunc(rt *host.Runtime, cb host.Value) func() status.Status {
	return func() status.Status {
		out, err := rt.Call(cb, nil, nil)
		if err != nil {
			return StatusFromError(err)
		}
		if out.IsNil() {
			return status.OkStatus()
		}
		s, err := LoadStatus(out)
		if err != nil {
			return status.InvalidArgumentError(exceptionMessage(err))
		}
		return s
	}
}

// StatusOrFunc adapts a host callable returning a value into a native
// callback. The value is read with load.
func StatusOrFunc[T any](rt *host.Runtime, cb host.Value, load func(host.Value) (T, error)) func() status.StatusOr[T] {
	return func() status.StatusOr[T] {
		out, err := rt.Call(cb, nil, nil)
		if err != nil {
			return status.FromStatus[T](StatusFromError(err))
		}
		so, err := LoadStatusOr(out, load)
		if err != nil {
			return status.FromStatus[T](status.InvalidArgumentError(exceptionMessage(err)))
		}
		return so
	}
}

func exceptionMessage(err error) string {
	if exc, ok := host.AsException(err); ok {
		return exc.Message
	}
	return err.Error()
}
