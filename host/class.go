package host

import "fmt"

// GetterFunc reads a read-only attribute from an instance.
type GetterFunc func(inst *Instance) (Value, error)

// Class is a host class. Methods holds callables and plain class attributes.
type Class struct {
	Name    string
	Doc     string
	Base    *Class
	Methods map[string]Value
	Getters map[string]GetterFunc
}

// Instance is an object of a Class. Native carries the bound native object,
// and Owned records whether the host holds the only reference to it.
type Instance struct {
	Class  *Class
	Attrs  map[string]Value
	Native any
	Owned  bool
}

func DefineClass(name string, base *Class) *Class {
	return &Class{
		Name:    name,
		Base:    base,
		Methods: make(map[string]Value),
		Getters: make(map[string]GetterFunc),
	}
}

// Def installs a method and returns c for chaining.
func (c *Class) Def(name string, fn BuiltinFunc) *Class {
	c.Methods[name] = Value{kind: KindBuiltin, data: &Builtin{Name: c.Name + "." + name, Fn: fn}}
	return c
}

// DefValue installs an already built callable or class attribute.
func (c *Class) DefValue(name string, v Value) *Class {
	c.Methods[name] = v
	return c
}

func (c *Class) DefReadonly(name string, getter GetterFunc) *Class {
	c.Getters[name] = getter
	return c
}

// DefPure installs the placeholder for an abstract method. Calling it raises
// NotImplementedError until a subclass overrides the name.
func (c *Class) DefPure(name string) *Class {
	qualified := c.Name + "." + name
	c.Methods[name] = Value{kind: KindBuiltin, data: &Builtin{
		Name: qualified,
		Pure: true,
		Fn: func(rt *Runtime, receiver Value, args []Value, kwargs map[string]Value) (Value, error) {
			return NewNil(), Raise(NotImplementedError, "Tried to call pure virtual function %q", qualified)
		},
	}}
	return c
}

// Lookup resolves name along the base chain and reports the defining class.
func (c *Class) Lookup(name string) (Value, *Class, bool) {
	for cur := c; cur != nil; cur = cur.Base {
		if v, ok := cur.Methods[name]; ok {
			return v, cur, true
		}
	}
	return NewNil(), nil, false
}

func (c *Class) lookupGetter(name string) (GetterFunc, bool) {
	for cur := c; cur != nil; cur = cur.Base {
		if g, ok := cur.Getters[name]; ok {
			return g, true
		}
	}
	return nil, false
}

func (c *Class) IsSubclassOf(other *Class) bool {
	for cur := c; cur != nil; cur = cur.Base {
		if cur == other {
			return true
		}
	}
	return false
}

func (c *Class) String() string {
	return fmt.Sprintf("<class %s>", c.Name)
}

// Instantiate creates an instance without running __init__.
func Instantiate(c *Class, native any, owned bool) *Instance {
	return &Instance{Class: c, Attrs: make(map[string]Value), Native: native, Owned: owned}
}

// IsPure reports whether v is an abstract-method placeholder.
func IsPure(v Value) bool {
	b := v.Builtin()
	return b != nil && b.Pure
}
