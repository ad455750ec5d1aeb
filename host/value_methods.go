package host

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// String renders the value for display. Strings and symbols render bare.
func (v Value) String() string {
	switch v.kind {
	case KindString, KindSymbol:
		return v.data.(string)
	default:
		return v.Repr()
	}
}

// Repr renders the value the way the expression language would spell it.
func (v Value) Repr() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case KindInt:
		return strconv.FormatInt(v.data.(int64), 10)
	case KindFloat:
		return strconv.FormatFloat(v.data.(float64), 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.data.(string))
	case KindSymbol:
		return ":" + v.data.(string)
	case KindTuple:
		return "(" + joinRepr(v.Tuple()) + ")"
	case KindList:
		return "[" + joinRepr(v.List().Items) + "]"
	case KindBuiltin:
		return fmt.Sprintf("<builtin %s>", v.Builtin().Name)
	case KindMethod:
		m := v.Method()
		name := "?"
		if b := m.Func.Builtin(); b != nil {
			name = b.Name
		}
		return fmt.Sprintf("<bound method %s.%s>", m.Receiver.TypeName(), name)
	case KindClass:
		return fmt.Sprintf("<class %s>", v.Class().Name)
	case KindInstance:
		return fmt.Sprintf("<%s instance>", v.Instance().Class.Name)
	case KindEnumType:
		return fmt.Sprintf("<enum %s>", v.EnumType().Name)
	case KindEnum:
		m := v.Enum()
		return m.Type.Name + "." + m.Name
	case KindExceptionClass:
		return fmt.Sprintf("<exception %s>", v.ExceptionClass().Name)
	case KindException:
		e := v.Exception()
		return fmt.Sprintf("%s(%s)", e.Class.Name, strconv.Quote(e.Message))
	case KindCapsule:
		if name, ok := v.Capsule().Name(); ok {
			return fmt.Sprintf("<capsule %q>", name)
		}
		return "<capsule unnamed>"
	case KindModule:
		return fmt.Sprintf("<module %s>", v.Module().Name)
	default:
		return "<unknown>"
	}
}

func joinRepr(items []Value) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.Repr()
	}
	return strings.Join(parts, ", ")
}

// TypeName names the value's type for error messages. Instances and
// exceptions report their class.
func (v Value) TypeName() string {
	switch v.kind {
	case KindInstance:
		return v.Instance().Class.Name
	case KindException:
		return v.Exception().Class.Name
	case KindEnum:
		return v.Enum().Type.Name
	default:
		return v.kind.String()
	}
}

// Truthy follows the usual dynamic-language rules: nil, false, zero and
// empty containers are false.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNil:
		return false
	case KindBool:
		return v.Bool()
	case KindInt:
		return v.Int() != 0
	case KindFloat:
		return v.Float() != 0
	case KindString:
		return v.data.(string) != ""
	case KindTuple:
		return len(v.Tuple()) > 0
	case KindList:
		return len(v.List().Items) > 0
	default:
		return true
	}
}

// Identical reports object identity: reference kinds compare by pointer and
// scalars by value.
func Identical(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNil:
		return true
	case KindBool, KindInt, KindFloat, KindString, KindSymbol:
		return a.data == b.data
	case KindTuple:
		at, bt := a.Tuple(), b.Tuple()
		return len(at) == len(bt) && (len(at) == 0 || &at[0] == &bt[0])
	case KindMethod:
		am, bm := a.Method(), b.Method()
		return Identical(am.Receiver, bm.Receiver) && Identical(am.Func, bm.Func)
	default:
		return a.data == b.data
	}
}

// Equal compares values structurally. Instances compare by identity; use
// Runtime.Equal to honour a class's __eq__.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		switch {
		case a.kind == KindInt && b.kind == KindFloat:
			return intEqualsFloat(a.data.(int64), b.data.(float64))
		case a.kind == KindFloat && b.kind == KindInt:
			return intEqualsFloat(b.data.(int64), a.data.(float64))
		}
		return false
	}
	switch a.kind {
	case KindTuple:
		return equalSlices(a.Tuple(), b.Tuple())
	case KindList:
		return equalSlices(a.List().Items, b.List().Items)
	default:
		return Identical(a, b)
	}
}

// intEqualsFloat is exact: f must be integral and in int64 range, so large
// ints are not rounded onto a neighbouring float.
func intEqualsFloat(i int64, f float64) bool {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return false
	}
	return int64(f) == i
}

func equalSlices(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
