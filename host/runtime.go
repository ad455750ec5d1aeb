package host

import (
	"fmt"
	"sort"
	"strings"
)

// Config controls runtime limits.
type Config struct {
	// RecursionLimit bounds nested calls, including native code calling back
	// into host overrides. Defaults to 64.
	RecursionLimit int
}

// ModuleFactory builds a module on first import.
type ModuleFactory func(rt *Runtime) (*Module, error)

// Runtime owns the module table and executes calls. It is not safe for
// concurrent use.
type Runtime struct {
	config    Config
	modules   map[string]*Module
	factories map[string]ModuleFactory
	depth     int
}

func NewRuntime(cfg Config) *Runtime {
	if cfg.RecursionLimit <= 0 {
		cfg.RecursionLimit = 64
	}
	return &Runtime{
		config:    cfg,
		modules:   make(map[string]*Module),
		factories: make(map[string]ModuleFactory),
	}
}

func (rt *Runtime) Config() Config { return rt.config }

// Register adds m to the module table. Registering the same module twice is
// a no-op; a different module under a taken name is an error.
func (rt *Runtime) Register(m *Module) error {
	if m == nil || m.Name == "" {
		return fmt.Errorf("host: module must have a name")
	}
	if existing, ok := rt.modules[m.Name]; ok {
		if existing == m {
			return nil
		}
		return fmt.Errorf("host: module %q already registered", m.Name)
	}
	rt.modules[m.Name] = m
	return nil
}

// RegisterFactory defers building a module until it is first imported.
func (rt *Runtime) RegisterFactory(name string, factory ModuleFactory) {
	rt.factories[name] = factory
}

func (rt *Runtime) Import(name string) (*Module, error) {
	if m, ok := rt.modules[name]; ok {
		return m, nil
	}
	factory, ok := rt.factories[name]
	if !ok {
		return nil, Raise(ImportError, "No module named %q", name)
	}
	m, err := factory(rt)
	if err != nil {
		return nil, Wrap(ImportError, err, "import of %q failed: %v", name, err)
	}
	if m.Name != name {
		return nil, Raise(ImportError, "factory for %q built module %q", name, m.Name)
	}
	if err := rt.Register(m); err != nil {
		return nil, Wrap(ImportError, err, "%v", err)
	}
	return m, nil
}

// Modules lists registered module names.
func (rt *Runtime) Modules() []string {
	names := make([]string, 0, len(rt.modules))
	for name := range rt.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call invokes a callable value. Builtins, bound methods, classes (construct)
// and exception classes (build an exception value) are callable.
func (rt *Runtime) Call(fn Value, args []Value, kwargs map[string]Value) (Value, error) {
	if rt.depth >= rt.config.RecursionLimit {
		return NewNil(), Raise(RecursionError, "maximum recursion depth exceeded (%d)", rt.config.RecursionLimit)
	}
	rt.depth++
	defer func() { rt.depth-- }()

	switch fn.Kind() {
	case KindBuiltin:
		return rt.invoke(fn.Builtin(), NewNil(), args, kwargs)
	case KindMethod:
		m := fn.Method()
		b := m.Func.Builtin()
		if b == nil {
			return NewNil(), Raise(TypeError, "'%s' object is not callable", m.Func.TypeName())
		}
		return rt.invoke(b, m.Receiver, args, kwargs)
	case KindClass:
		return rt.construct(fn.Class(), args, kwargs)
	case KindExceptionClass:
		return buildException(fn.ExceptionClass(), args, kwargs)
	default:
		return NewNil(), Raise(TypeError, "'%s' object is not callable", fn.TypeName())
	}
}

// CallMethod resolves name on receiver and calls it.
func (rt *Runtime) CallMethod(receiver Value, name string, args []Value, kwargs map[string]Value) (Value, error) {
	fn, err := rt.GetAttr(receiver, name)
	if err != nil {
		return NewNil(), err
	}
	return rt.Call(fn, args, kwargs)
}

func (rt *Runtime) invoke(b *Builtin, receiver Value, args []Value, kwargs map[string]Value) (Value, error) {
	result, err := b.Fn(rt, receiver, args, kwargs)
	if err != nil {
		return NewNil(), asHostError(err)
	}
	return result, nil
}

func (rt *Runtime) construct(c *Class, args []Value, kwargs map[string]Value) (Value, error) {
	inst := Instantiate(c, nil, true)
	self := NewInstance(inst)
	init, _, ok := c.Lookup("__init__")
	if !ok {
		if len(args) > 0 || len(kwargs) > 0 {
			return NewNil(), Raise(TypeError, "%s() takes no arguments", c.Name)
		}
		return self, nil
	}
	b := init.Builtin()
	if b == nil {
		return NewNil(), Raise(TypeError, "%s.__init__ is not callable", c.Name)
	}
	if _, err := rt.invoke(b, self, args, kwargs); err != nil {
		return NewNil(), err
	}
	return self, nil
}

func buildException(class *ExceptionClass, args []Value, kwargs map[string]Value) (Value, error) {
	if construct := class.constructor(); construct != nil {
		exc, err := construct(class, args, kwargs)
		if err != nil {
			return NewNil(), err
		}
		return NewException(exc), nil
	}
	if len(kwargs) > 0 {
		return NewNil(), Raise(TypeError, "%s() takes no keyword arguments", class.Name)
	}
	exc := &Exception{Class: class}
	switch len(args) {
	case 0:
	case 1:
		exc.Message = args[0].String()
	default:
		return NewNil(), Raise(TypeError, "%s() takes at most 1 argument (%d given)", class.Name, len(args))
	}
	return NewException(exc), nil
}

// GetAttr reads an attribute. Methods found on a class are returned bound to
// the instance.
func (rt *Runtime) GetAttr(v Value, name string) (Value, error) {
	switch v.Kind() {
	case KindInstance:
		inst := v.Instance()
		if getter, ok := inst.Class.lookupGetter(name); ok {
			return getter(inst)
		}
		if attr, ok := inst.Attrs[name]; ok {
			return attr, nil
		}
		if attr, _, ok := inst.Class.Lookup(name); ok {
			if attr.Kind() == KindBuiltin {
				return NewMethod(v, attr), nil
			}
			return attr, nil
		}
	case KindClass:
		if attr, _, ok := v.Class().Lookup(name); ok {
			return attr, nil
		}
		if name == "__name__" {
			return NewString(v.Class().Name), nil
		}
	case KindModule:
		if attr, ok := v.Module().Attr(name); ok {
			return attr, nil
		}
		if name == "__name__" {
			return NewString(v.Module().Name), nil
		}
	case KindEnumType:
		if m, ok := v.EnumType().Member(name); ok {
			return NewEnum(m), nil
		}
	case KindEnum:
		switch name {
		case "name":
			return NewString(v.Enum().Name), nil
		case "value":
			return NewInt(v.Enum().Value), nil
		}
	case KindException:
		exc := v.Exception()
		if attr, ok := exc.Attrs[name]; ok {
			return attr, nil
		}
		if name == "message" {
			return NewString(exc.Message), nil
		}
	case KindExceptionClass:
		if name == "__name__" {
			return NewString(v.ExceptionClass().Name), nil
		}
	case KindCapsule:
		if name == "name" {
			if tag, ok := v.Capsule().Name(); ok {
				return NewString(tag), nil
			}
			return NewNil(), nil
		}
	}
	return NewNil(), Raise(AttributeError, "'%s' object has no attribute '%s'", v.TypeName(), name)
}

// SetAttr assigns an instance or module attribute. Getter-backed attributes
// are read-only.
func (rt *Runtime) SetAttr(v Value, name string, val Value) error {
	switch v.Kind() {
	case KindInstance:
		inst := v.Instance()
		if _, ok := inst.Class.lookupGetter(name); ok {
			return Raise(AttributeError, "can't set attribute '%s'", name)
		}
		inst.Attrs[name] = val
		return nil
	case KindModule:
		v.Module().SetAttr(name, val)
		return nil
	default:
		return Raise(AttributeError, "'%s' object attributes are read-only", v.TypeName())
	}
}

// Repr renders v, honouring __repr__ on instances at any depth inside
// tuples and lists.
func (rt *Runtime) Repr(v Value) string {
	switch v.Kind() {
	case KindTuple:
		return "(" + rt.joinRepr(v.Tuple()) + ")"
	case KindList:
		return "[" + rt.joinRepr(v.List().Items) + "]"
	case KindInstance:
		if _, _, ok := v.Instance().Class.Lookup("__repr__"); ok {
			out, err := rt.CallMethod(v, "__repr__", nil, nil)
			if err == nil && out.Kind() == KindString {
				return out.String()
			}
		}
	}
	return v.Repr()
}

func (rt *Runtime) joinRepr(items []Value) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = rt.Repr(item)
	}
	return strings.Join(parts, ", ")
}

// Equal compares a and b, honouring an instance's __eq__.
func (rt *Runtime) Equal(a, b Value) (bool, error) {
	if a.Kind() == KindInstance {
		if _, _, ok := a.Instance().Class.Lookup("__eq__"); ok {
			out, err := rt.CallMethod(a, "__eq__", []Value{b}, nil)
			if err != nil {
				return false, err
			}
			return out.Truthy(), nil
		}
	}
	return Equal(a, b), nil
}
