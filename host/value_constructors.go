package host

func NewNil() Value            { return Value{kind: KindNil} }
func NewBool(b bool) Value     { return Value{kind: KindBool, data: b} }
func NewInt(i int64) Value     { return Value{kind: KindInt, data: i} }
func NewFloat(f float64) Value { return Value{kind: KindFloat, data: f} }
func NewString(s string) Value { return Value{kind: KindString, data: s} }
func NewSymbol(name string) Value {
	return Value{kind: KindSymbol, data: name}
}
func NewTuple(items ...Value) Value {
	return Value{kind: KindTuple, data: append([]Value(nil), items...)}
}
func NewList(items []Value) Value {
	return Value{kind: KindList, data: &List{Items: items}}
}

func NewBuiltin(name string, fn BuiltinFunc) Value {
	return Value{kind: KindBuiltin, data: &Builtin{Name: name, Fn: fn}}
}

func NewMethod(receiver Value, fn Value) Value {
	return Value{kind: KindMethod, data: &BoundMethod{Receiver: receiver, Func: fn}}
}

func NewClass(c *Class) Value                   { return Value{kind: KindClass, data: c} }
func NewInstance(inst *Instance) Value          { return Value{kind: KindInstance, data: inst} }
func NewEnumType(e *EnumType) Value             { return Value{kind: KindEnumType, data: e} }
func NewEnum(m *EnumMember) Value               { return Value{kind: KindEnum, data: m} }
func NewExceptionClass(c *ExceptionClass) Value { return Value{kind: KindExceptionClass, data: c} }
func NewException(e *Exception) Value           { return Value{kind: KindException, data: e} }
func NewCapsule(c *Capsule) Value               { return Value{kind: KindCapsule, data: c} }
func NewModule(m *Module) Value                 { return Value{kind: KindModule, data: m} }
