// Package bind marshals status results between native Go code and the host
// runtime.
//
// A failing status.Status or status.StatusOr crossing into the host raises
// StatusNotOk unless the call site opts out with DoNotThrow, in which case
// the host receives a Status wrapper exposing ok(), code() and message().
// Going the other way, host exceptions are reconstructed into statuses and
// host overrides of native interfaces are dispatched through CallOverride.
package bind
