package bind

import (
	"github.com/mgomes/statusbind/host"
	"github.com/mgomes/statusbind/own"
	"github.com/mgomes/statusbind/status"
)

// Caster converts a successful StatusOr value for the host.
type Caster[T any] func(v T) (host.Value, error)

// CastStatusOr converts the value with cast, or handles the failure exactly
// as CastStatus does.
func CastStatusOr[T any](so status.StatusOr[T], cast Caster[T], opts ...Option) (host.Value, error) {
	if !so.Ok() {
		return CastStatus(so.Status(), opts...)
	}
	v, _ := so.Value()
	return cast(v)
}

// CastStatusOrPtr converts a StatusOr held in native storage. A nil pointer
// is host nil.
func CastStatusOrPtr[T any](p *status.StatusOr[T], cast Caster[T], opts ...Option) (host.Value, error) {
	if p == nil {
		return host.NewNil(), nil
	}
	return CastStatusOr(*p, cast, opts...)
}

func IntCaster(v int) (host.Value, error) {
	return host.NewInt(int64(v)), nil
}

// ValueCaster returns host values unchanged, keeping their identity.
func ValueCaster(v host.Value) (host.Value, error) {
	return v, nil
}

// OwnedCaster hands an owned object to the host. The handle is released
// exactly once; converting an already released handle raises ValueError.
func OwnedCaster[T any](class *host.Class) Caster[*own.Unique[T]] {
	return func(u *own.Unique[T]) (host.Value, error) {
		p, ok := u.Release()
		if !ok {
			return host.NewNil(), host.Raise(host.ValueError, "%s handle is empty or was already released", class.Name)
		}
		return host.NewInstance(host.Instantiate(class, p, true)), nil
	}
}

// BorrowedCaster exposes a native object without transferring ownership.
func BorrowedCaster[T any](class *host.Class) Caster[own.Ref[T]] {
	return func(r own.Ref[T]) (host.Value, error) {
		if r.IsNil() {
			return host.NewNil(), nil
		}
		return host.NewInstance(host.Instantiate(class, r.Get(), false)), nil
	}
}

// LoadStatusOr reads a StatusOr from the host. A Status wrapper becomes the
// failure; anything else goes through load.
func LoadStatusOr[T any](v host.Value, load func(host.Value) (T, error)) (status.StatusOr[T], error) {
	if isStatusWrapper(v) {
		s, err := LoadStatus(v)
		if err != nil {
			return status.StatusOr[T]{}, err
		}
		return status.FromStatus[T](s), nil
	}
	x, err := load(v)
	if err != nil {
		return status.StatusOr[T]{}, host.Wrap(host.TypeError, err,
			"Unable to convert host value of type %s to StatusOr[%s]", v.TypeName(), typeName[T]())
	}
	return status.ValueOf(x), nil
}
