package host

import (
	"errors"
	"fmt"
)

// ExceptionClass is a host exception type. Matching walks the Base chain.
type ExceptionClass struct {
	Name string
	Base *ExceptionClass

	// Construct, when set, builds the exception for a host call of the
	// class. Subclasses inherit it. Without one, a call takes an optional
	// message.
	Construct func(class *ExceptionClass, args []Value, kwargs map[string]Value) (*Exception, error)
}

func DefineExceptionClass(name string, base *ExceptionClass) *ExceptionClass {
	return &ExceptionClass{Name: name, Base: base}
}

func (c *ExceptionClass) constructor() func(*ExceptionClass, []Value, map[string]Value) (*Exception, error) {
	for cur := c; cur != nil; cur = cur.Base {
		if cur.Construct != nil {
			return cur.Construct
		}
	}
	return nil
}

func (c *ExceptionClass) IsSubclassOf(other *ExceptionClass) bool {
	for cur := c; cur != nil; cur = cur.Base {
		if cur == other {
			return true
		}
	}
	return false
}

var (
	BaseException       = DefineExceptionClass("BaseException", nil)
	KeyboardInterrupt   = DefineExceptionClass("KeyboardInterrupt", BaseException)
	ExceptionBase       = DefineExceptionClass("Exception", BaseException)
	TypeError           = DefineExceptionClass("TypeError", ExceptionBase)
	ValueError          = DefineExceptionClass("ValueError", ExceptionBase)
	LookupError         = DefineExceptionClass("LookupError", ExceptionBase)
	KeyError            = DefineExceptionClass("KeyError", LookupError)
	IndexError          = DefineExceptionClass("IndexError", LookupError)
	NameError           = DefineExceptionClass("NameError", ExceptionBase)
	AttributeError      = DefineExceptionClass("AttributeError", ExceptionBase)
	RuntimeError        = DefineExceptionClass("RuntimeError", ExceptionBase)
	NotImplementedError = DefineExceptionClass("NotImplementedError", RuntimeError)
	RecursionError      = DefineExceptionClass("RecursionError", RuntimeError)
	MemoryError         = DefineExceptionClass("MemoryError", ExceptionBase)
	SystemError         = DefineExceptionClass("SystemError", ExceptionBase)
	SyntaxError         = DefineExceptionClass("SyntaxError", ExceptionBase)
	AssertionError      = DefineExceptionClass("AssertionError", ExceptionBase)
	ImportError         = DefineExceptionClass("ImportError", ExceptionBase)
)

// BuiltinExceptionClasses lists the predefined classes, most general first.
func BuiltinExceptionClasses() []*ExceptionClass {
	return []*ExceptionClass{
		BaseException, KeyboardInterrupt, ExceptionBase, TypeError, ValueError,
		LookupError, KeyError, IndexError, NameError, AttributeError, RuntimeError,
		NotImplementedError, RecursionError, MemoryError, SystemError, SyntaxError,
		AssertionError, ImportError,
	}
}

// Exception is a raised host exception. It travels through Go code as an
// error; Attrs carries class-specific payload visible to host code.
type Exception struct {
	Class   *ExceptionClass
	Message string
	Attrs   map[string]Value
	cause   error
}

func (e *Exception) Error() string {
	if e.Message == "" {
		return e.Class.Name
	}
	return e.Class.Name + ": " + e.Message
}

func (e *Exception) Unwrap() error { return e.cause }

func (e *Exception) Matches(class *ExceptionClass) bool {
	return e != nil && e.Class.IsSubclassOf(class)
}

// WithAttr sets a payload attribute and returns e.
func (e *Exception) WithAttr(name string, v Value) *Exception {
	if e.Attrs == nil {
		e.Attrs = make(map[string]Value)
	}
	e.Attrs[name] = v
	return e
}

func Raise(class *ExceptionClass, format string, args ...any) *Exception {
	return &Exception{Class: class, Message: fmt.Sprintf(format, args...)}
}

// Wrap raises class with a Go cause reachable through errors.Is and errors.As.
func Wrap(class *ExceptionClass, cause error, format string, args ...any) *Exception {
	return &Exception{Class: class, Message: fmt.Sprintf(format, args...), cause: cause}
}

func AsException(err error) (*Exception, bool) {
	var exc *Exception
	if errors.As(err, &exc) {
		return exc, true
	}
	return nil, false
}

// asHostError makes sure an error leaving a builtin is a host exception.
// Plain Go errors surface as RuntimeError.
func asHostError(err error) error {
	if err == nil {
		return nil
	}
	if exc, ok := AsException(err); ok {
		return exc
	}
	return Wrap(RuntimeError, err, "%s", err.Error())
}
