package bind

import (
	"errors"

	"github.com/mgomes/statusbind/host"
	"github.com/mgomes/statusbind/status"
)

var exceptionCodes = map[*host.ExceptionClass]status.Code{
	host.MemoryError:         status.ResourceExhausted,
	host.NotImplementedError: status.Unimplemented,
	host.KeyboardInterrupt:   status.Aborted,
	host.SystemError:         status.Internal,
	host.SyntaxError:         status.Internal,
	host.TypeError:           status.InvalidArgument,
	host.ValueError:          status.OutOfRange,
	host.LookupError:         status.NotFound,
}

// StatusFromError reconstructs a status from an error raised by host code.
// StatusNotOk keeps its status, raw code included. Other exceptions map by
// their nearest mapped ancestor class and carry "Name: message".
func StatusFromError(err error) status.Status {
	if err == nil {
		return status.OkStatus()
	}
	exc, ok := host.AsException(err)
	if !ok {
		return status.FromError(err)
	}
	if s, ok := StatusFromException(exc); ok {
		return s
	}
	if exc.Class == host.RuntimeError {
		var statusErr *status.Error
		if errors.As(exc.Unwrap(), &statusErr) {
			return statusErr.Status
		}
	}
	return status.New(codeForException(exc.Class), exc.Class.Name+": "+exc.Message)
}

func codeForException(class *host.ExceptionClass) status.Code {
	for cur := class; cur != nil; cur = cur.Base {
		if code, ok := exceptionCodes[cur]; ok {
			return code
		}
	}
	return status.Unknown
}
