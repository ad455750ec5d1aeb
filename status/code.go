package status

import (
	"fmt"
	"strings"
)

// Code is a canonical status code.
type Code int

const (
	OK Code = iota
	Cancelled
	Unknown
	InvalidArgument
	DeadlineExceeded
	NotFound
	AlreadyExists
	PermissionDenied
	ResourceExhausted
	FailedPrecondition
	Aborted
	OutOfRange
	Unimplemented
	Internal
	Unavailable
	DataLoss
	Unauthenticated
)

var codeNames = [...]string{
	OK:                 "OK",
	Cancelled:          "CANCELLED",
	Unknown:            "UNKNOWN",
	InvalidArgument:    "INVALID_ARGUMENT",
	DeadlineExceeded:   "DEADLINE_EXCEEDED",
	NotFound:           "NOT_FOUND",
	AlreadyExists:      "ALREADY_EXISTS",
	PermissionDenied:   "PERMISSION_DENIED",
	ResourceExhausted:  "RESOURCE_EXHAUSTED",
	FailedPrecondition: "FAILED_PRECONDITION",
	Aborted:            "ABORTED",
	OutOfRange:         "OUT_OF_RANGE",
	Unimplemented:      "UNIMPLEMENTED",
	Internal:           "INTERNAL",
	Unavailable:        "UNAVAILABLE",
	DataLoss:           "DATA_LOSS",
	Unauthenticated:    "UNAUTHENTICATED",
}

// Valid reports whether c is one of the canonical codes.
func (c Code) Valid() bool {
	return c >= OK && int(c) < len(codeNames)
}

func (c Code) String() string {
	if !c.Valid() {
		return codeNames[Unknown]
	}
	return codeNames[c]
}

// Codes returns every canonical code in numeric order.
func Codes() []Code {
	out := make([]Code, len(codeNames))
	for i := range codeNames {
		out[i] = Code(i)
	}
	return out
}

// ParseCode resolves a code name. Matching ignores case and underscores, so
// "INVALID_ARGUMENT", "invalid_argument" and "InvalidArgument" all resolve.
func ParseCode(name string) (Code, error) {
	key := normalizeCodeName(name)
	if key == "" {
		return Unknown, fmt.Errorf("status: empty code name")
	}
	for i, candidate := range codeNames {
		if normalizeCodeName(candidate) == key {
			return Code(i), nil
		}
	}
	return Unknown, fmt.Errorf("status: unknown code %q", name)
}

func normalizeCodeName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "_", "")
	return strings.ToLower(name)
}
