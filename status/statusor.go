package status

import "fmt"

const okStatusOrMessage = "An OK status is not a valid constructor argument to StatusOr"

// StatusOr holds either a value or a non-OK Status.
type StatusOr[T any] struct {
	status Status
	value  T
}

// ValueOf wraps a successful value.
func ValueOf[T any](v T) StatusOr[T] {
	return StatusOr[T]{value: v}
}

// FromStatus wraps a failure. An OK status carries no value, so it is
// replaced with an Internal error.
func FromStatus[T any](s Status) StatusOr[T] {
	if s.Ok() {
		s = InternalError(okStatusOrMessage)
	}
	return StatusOr[T]{status: s}
}

func (so StatusOr[T]) Ok() bool { return so.status.Ok() }

func (so StatusOr[T]) Status() Status { return so.status }

// Value returns the held value, or the failure as an *Error.
func (so StatusOr[T]) Value() (T, error) {
	if !so.Ok() {
		var zero T
		return zero, so.status.Err()
	}
	return so.value, nil
}

func (so StatusOr[T]) ValueOr(def T) T {
	if !so.Ok() {
		return def
	}
	return so.value
}

// MustValue returns the value or panics with the failing status.
func (so StatusOr[T]) MustValue() T {
	if !so.Ok() {
		panic(fmt.Sprintf("status: MustValue on failed StatusOr: %s", so.status))
	}
	return so.value
}

func (so StatusOr[T]) String() string {
	if !so.Ok() {
		return so.status.String()
	}
	return fmt.Sprintf("%v", so.value)
}
