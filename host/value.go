package host

type ValueKind int

const (
	KindNil ValueKind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSymbol
	KindTuple
	KindList
	KindBuiltin
	KindMethod
	KindClass
	KindInstance
	KindEnumType
	KindEnum
	KindExceptionClass
	KindException
	KindCapsule
	KindModule
)

var kindNames = [...]string{
	KindNil:            "nil",
	KindBool:           "bool",
	KindInt:            "int",
	KindFloat:          "float",
	KindString:         "string",
	KindSymbol:         "symbol",
	KindTuple:          "tuple",
	KindList:           "list",
	KindBuiltin:        "builtin",
	KindMethod:         "method",
	KindClass:          "class",
	KindInstance:       "instance",
	KindEnumType:       "enum_type",
	KindEnum:           "enum",
	KindExceptionClass: "exception_class",
	KindException:      "exception",
	KindCapsule:        "capsule",
	KindModule:         "module",
}

func (k ValueKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

type Value struct {
	kind ValueKind
	data any
}

// BuiltinFunc is a native callable. receiver is nil for free functions and
// the bound instance for methods. A returned *Exception is raised in the host.
type BuiltinFunc func(rt *Runtime, receiver Value, args []Value, kwargs map[string]Value) (Value, error)

type Builtin struct {
	Name   string
	Doc    string
	Params Signature
	Fn     BuiltinFunc
	// Pure marks the placeholder installed for an abstract method.
	Pure bool
}

type BoundMethod struct {
	Receiver Value
	Func     Value
}

// List is a mutable sequence with identity.
type List struct {
	Items []Value
}
