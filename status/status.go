package status

import (
	"errors"
	"fmt"
)

// Status is an immutable code and message pair. The zero value is OK.
type Status struct {
	raw int
	msg string
}

// New builds a Status from a canonical code.
func New(code Code, msg string) Status {
	return Status{raw: int(code), msg: msg}
}

// FromRawCode builds a Status from an arbitrary integer code. Integers outside
// the canonical range are kept verbatim and reported by RawCode.
func FromRawCode(raw int, msg string) Status {
	return Status{raw: raw, msg: msg}
}

// OkStatus returns the OK status.
func OkStatus() Status { return Status{} }

func (s Status) Ok() bool { return s.raw == int(OK) }

// Code returns the canonical code. Non-canonical raw codes map to Unknown.
func (s Status) Code() Code {
	c := Code(s.raw)
	if !c.Valid() {
		return Unknown
	}
	return c
}

// RawCode returns the integer the status was built from.
func (s Status) RawCode() int { return s.raw }

func (s Status) Message() string { return s.msg }

func (s Status) Equal(other Status) bool {
	return s.raw == other.raw && s.msg == other.msg
}

func (s Status) String() string {
	if s.Ok() {
		if s.msg == "" {
			return "OK"
		}
		return "OK: " + s.msg
	}
	name := s.Code().String()
	if !Code(s.raw).Valid() {
		name = fmt.Sprintf("%s(%d)", name, s.raw)
	}
	return name + ": " + s.msg
}

// Err returns nil for OK and an *Error otherwise.
func (s Status) Err() error {
	if s.Ok() {
		return nil
	}
	return &Error{Status: s}
}

func CancelledError(msg string) Status         { return New(Cancelled, msg) }
func UnknownError(msg string) Status           { return New(Unknown, msg) }
func InvalidArgumentError(msg string) Status   { return New(InvalidArgument, msg) }
func NotFoundError(msg string) Status          { return New(NotFound, msg) }
func AlreadyExistsError(msg string) Status     { return New(AlreadyExists, msg) }
func ResourceExhaustedError(msg string) Status { return New(ResourceExhausted, msg) }
func AbortedError(msg string) Status           { return New(Aborted, msg) }
func OutOfRangeError(msg string) Status        { return New(OutOfRange, msg) }
func UnimplementedError(msg string) Status     { return New(Unimplemented, msg) }
func InternalError(msg string) Status          { return New(Internal, msg) }

// Error adapts a failing Status to the error interface.
type Error struct {
	Status Status
}

func (e *Error) Error() string {
	return e.Status.String()
}

// FromError recovers a Status from err. Errors that do not carry one become
// Unknown with the error text as message.
func FromError(err error) Status {
	if err == nil {
		return OkStatus()
	}
	var statusErr *Error
	if errors.As(err, &statusErr) {
		return statusErr.Status
	}
	return UnknownError(err.Error())
}
