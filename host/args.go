package host

import "strings"

// Param declares one function parameter.
type Param struct {
	Name       string
	Default    Value
	HasDefault bool
}

func Arg(name string) Param {
	return Param{Name: name}
}

func ArgDefault(name string, def Value) Param {
	return Param{Name: name, Default: def, HasDefault: true}
}

type Signature []Param

// FunctionBody receives arguments already bound to the declared parameters,
// in declaration order.
type FunctionBody func(rt *Runtime, receiver Value, args []Value) (Value, error)

// NewFunction builds a builtin that binds positional and keyword arguments
// against params before calling fn.
func NewFunction(name string, params []Param, fn FunctionBody) Value {
	sig := Signature(params)
	b := &Builtin{Name: name, Params: sig}
	b.Fn = func(rt *Runtime, receiver Value, args []Value, kwargs map[string]Value) (Value, error) {
		bound, err := sig.Bind(shortName(name), args, kwargs)
		if err != nil {
			return NewNil(), err
		}
		return fn(rt, receiver, bound)
	}
	return Value{kind: KindBuiltin, data: b}
}

// Bind matches args and kwargs to the signature and fills defaults.
func (sig Signature) Bind(fnName string, args []Value, kwargs map[string]Value) ([]Value, error) {
	if len(args) > len(sig) {
		return nil, Raise(TypeError, "%s() takes %d positional arguments but %d were given", fnName, len(sig), len(args))
	}
	bound := make([]Value, len(sig))
	usedKw := make(map[string]bool, len(kwargs))
	for i, param := range sig {
		kw, hasKw := kwargs[param.Name]
		switch {
		case i < len(args):
			if hasKw {
				return nil, Raise(TypeError, "%s() got multiple values for argument %q", fnName, param.Name)
			}
			bound[i] = args[i]
		case hasKw:
			bound[i] = kw
			usedKw[param.Name] = true
		case param.HasDefault:
			bound[i] = param.Default
		default:
			return nil, Raise(TypeError, "%s() missing required argument %q", fnName, param.Name)
		}
	}
	for name := range kwargs {
		if !usedKw[name] {
			return nil, Raise(TypeError, "%s() got an unexpected keyword argument %q", fnName, name)
		}
	}
	return bound, nil
}

// String renders the signature as it would be called, e.g. (code, text="").
func (sig Signature) String() string {
	parts := make([]string, len(sig))
	for i, p := range sig {
		if p.HasDefault {
			parts[i] = p.Name + "=" + p.Default.Repr()
		} else {
			parts[i] = p.Name
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func shortName(name string) string {
	if idx := strings.LastIndexByte(name, '.'); idx >= 0 {
		return name[idx+1:]
	}
	return name
}
