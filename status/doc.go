// Package status models the result of a native operation: a Status is a code
// plus a message, and a StatusOr holds either a value or a failing Status.
//
// A Status keeps the integer it was built from. Codes outside the canonical
// range report Unknown from Code() but return the original integer from
// RawCode(), so a status can cross the host boundary and come back unchanged.
package status
