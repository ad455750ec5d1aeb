// Package host implements the dynamic runtime that native code is bound into.
// It supplies the small object model a binding layer needs:
//   - Values for nil, bools, numbers, strings, symbols, tuples and lists.
//   - Builtins and bound methods, with positional and keyword argument binding.
//   - Classes with single inheritance, read-only getters and pure methods that
//     host subclasses override.
//   - Enums, modules and capsules (opaque tagged native pointers).
//   - Exception classes and raised exceptions, which travel as Go errors.
//
// A small call-expression language (see Eval) lets tools drive bound modules
// without writing Go. A Runtime is not safe for concurrent use; every call
// runs synchronously on the caller's goroutine.
package host
