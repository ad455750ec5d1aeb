package host

// payload returns v's data as T when v has the given kind, else T's zero value.
func payload[T any](v Value, kind ValueKind) T {
	if v.kind == kind {
		if data, ok := v.data.(T); ok {
			return data
		}
	}
	var zero T
	return zero
}

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNil() bool { return v.kind == KindNil }

func (v Value) Bool() bool { return payload[bool](v, KindBool) }

// Int truncates floats. Other kinds read as 0.
func (v Value) Int() int64 {
	if v.kind == KindFloat {
		return int64(v.data.(float64))
	}
	return payload[int64](v, KindInt)
}

// Float widens ints. Other kinds read as 0.
func (v Value) Float() float64 {
	if v.kind == KindInt {
		return float64(v.data.(int64))
	}
	return payload[float64](v, KindFloat)
}

func (v Value) Tuple() []Value                  { return payload[[]Value](v, KindTuple) }
func (v Value) List() *List                     { return payload[*List](v, KindList) }
func (v Value) Builtin() *Builtin               { return payload[*Builtin](v, KindBuiltin) }
func (v Value) Method() *BoundMethod            { return payload[*BoundMethod](v, KindMethod) }
func (v Value) Class() *Class                   { return payload[*Class](v, KindClass) }
func (v Value) Instance() *Instance             { return payload[*Instance](v, KindInstance) }
func (v Value) EnumType() *EnumType             { return payload[*EnumType](v, KindEnumType) }
func (v Value) Enum() *EnumMember               { return payload[*EnumMember](v, KindEnum) }
func (v Value) ExceptionClass() *ExceptionClass { return payload[*ExceptionClass](v, KindExceptionClass) }
func (v Value) Exception() *Exception           { return payload[*Exception](v, KindException) }
func (v Value) Capsule() *Capsule               { return payload[*Capsule](v, KindCapsule) }
func (v Value) Module() *Module                 { return payload[*Module](v, KindModule) }
