package bind

import (
	"fmt"

	"github.com/mgomes/statusbind/host"
	"github.com/mgomes/statusbind/status"
)

// NewStatusValue wraps a copy of s.
func NewStatusValue(s status.Status) host.Value {
	return host.NewInstance(host.Instantiate(StatusClass, s, true))
}

// NewStatusRef wraps a view of *p. Later writes to *p show through the
// wrapper.
func NewStatusRef(p *status.Status) host.Value {
	return host.NewInstance(host.Instantiate(StatusClass, p, false))
}

// NewStatusNotOk builds the exception raised for a failing s. The status,
// canonical code, raw code and message are attached as attributes, and the
// status is reachable from Go through errors.As with *status.Error.
func NewStatusNotOk(s status.Status) *host.Exception {
	return newStatusNotOkOf(StatusNotOk, s)
}

func newStatusNotOkOf(class *host.ExceptionClass, s status.Status) *host.Exception {
	exc := host.Wrap(class, s.Err(), "%s [%s]", s.Message(), s.Code())
	exc.WithAttr("status", NewStatusValue(s))
	exc.WithAttr("code", CodeValue(s.Code()))
	exc.WithAttr("raw_code", host.NewInt(int64(s.RawCode())))
	exc.WithAttr("message", host.NewString(s.Message()))
	return exc
}

// StatusFromException recovers the status carried by a StatusNotOk.
func StatusFromException(exc *host.Exception) (status.Status, bool) {
	if !exc.Matches(StatusNotOk) {
		return status.Status{}, false
	}
	v, ok := exc.Attrs["status"]
	if !ok {
		return status.Status{}, false
	}
	s, err := LoadStatus(v)
	if err != nil {
		return status.Status{}, false
	}
	return s, true
}

// CastStatus converts s for the host. Under RaiseOnFailure an OK status is
// nil and a failure is returned as a StatusNotOk error. Under NeverRaise the
// result is always a Status wrapper.
func CastStatus(s status.Status, opts ...Option) (host.Value, error) {
	o := resolveOptions(opts)
	if o.Errors == NeverRaise {
		return NewStatusValue(s), nil
	}
	if s.Ok() {
		return host.NewNil(), nil
	}
	return host.NewNil(), NewStatusNotOk(s)
}

// CastStatusPtr converts a status held in native storage. A nil pointer is
// host nil. With the Reference policy the wrapper views *p instead of
// copying it.
func CastStatusPtr(p *status.Status, opts ...Option) (host.Value, error) {
	if p == nil {
		return host.NewNil(), nil
	}
	o := resolveOptions(opts)
	if o.Errors == NeverRaise && o.Return == Reference {
		return NewStatusRef(p), nil
	}
	return CastStatus(*p, opts...)
}

func isStatusWrapper(v host.Value) bool {
	inst := v.Instance()
	return inst != nil && inst.Class.IsSubclassOf(StatusClass)
}

// LoadStatus reads a Status from a wrapper or a status capsule.
func LoadStatus(v host.Value) (status.Status, error) {
	p, err := LoadStatusPtr(v)
	if err != nil {
		return status.Status{}, err
	}
	return *p, nil
}

// LoadStatusPtr reads a pointer to the status v holds. For a reference
// wrapper or a capsule it aliases native storage. For a value wrapper it
// points to a fresh copy, so writes through it do not reach the wrapper.
func LoadStatusPtr(v host.Value) (*status.Status, error) {
	switch v.Kind() {
	case host.KindInstance:
		if !isStatusWrapper(v) {
			break
		}
		inst := v.Instance()
		switch native := inst.Native.(type) {
		case status.Status:
			return &native, nil
		case *status.Status:
			if native == nil {
				return nil, host.Raise(host.ValueError, "Status wrapper refers to a nil status")
			}
			return native, nil
		default:
			return nil, host.Raise(host.TypeError, "%s.__init__() was not called", inst.Class.Name)
		}
	case host.KindCapsule:
		ptr, err := v.Capsule().Extract(StatusCapsuleName)
		if err != nil {
			return nil, err
		}
		if ptr == nil {
			return nil, host.Raise(host.ValueError, "capsule %q holds a nil pointer", StatusCapsuleName)
		}
		return (*status.Status)(ptr), nil
	}
	return nil, host.Raise(host.TypeError, "Unable to convert host value of type %s to status.Status", v.TypeName())
}

// LoadCode reads a status code from a StatusCode member, an integer, or a
// code name given as a string or symbol. Integers are taken verbatim, so a
// code outside the canonical set keeps its raw value.
func LoadCode(v host.Value) (status.Code, error) {
	switch v.Kind() {
	case host.KindEnum:
		m := v.Enum()
		if m.Type != StatusCodeEnum {
			return status.Unknown, host.Raise(host.TypeError, "expected StatusCode, got %s", m.Type.Name)
		}
		return status.Code(m.Value), nil
	case host.KindInt:
		return status.Code(v.Int()), nil
	case host.KindString, host.KindSymbol:
		code, err := status.ParseCode(v.String())
		if err != nil {
			return status.Unknown, host.Wrap(host.ValueError, err, "%v", err)
		}
		return code, nil
	default:
		return status.Unknown, host.Raise(host.TypeError, "expected StatusCode, got %s", v.TypeName())
	}
}

func LoadInt(v host.Value) (int, error) {
	if v.Kind() != host.KindInt {
		return 0, host.Raise(host.TypeError, "expecting int, got %s", v.TypeName())
	}
	return int(v.Int()), nil
}

func LoadBool(v host.Value) (bool, error) {
	if v.Kind() != host.KindBool {
		return false, host.Raise(host.TypeError, "expecting bool, got %s", v.TypeName())
	}
	return v.Bool(), nil
}

func LoadString(v host.Value) (string, error) {
	if v.Kind() != host.KindString {
		return "", host.Raise(host.TypeError, "expecting string, got %s", v.TypeName())
	}
	return v.String(), nil
}

// LoadValue passes a host value through unchanged.
func LoadValue(v host.Value) (host.Value, error) {
	return v, nil
}

func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
