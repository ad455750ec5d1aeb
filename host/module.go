package host

import "maps"

// Module is a named attribute namespace, usually populated by a binding.
type Module struct {
	Name  string
	Doc   string
	attrs map[string]Value
	order []string
}

func DefineModule(name, doc string) *Module {
	return &Module{Name: name, Doc: doc, attrs: make(map[string]Value)}
}

func (m *Module) SetAttr(name string, v Value) {
	if _, exists := m.attrs[name]; !exists {
		m.order = append(m.order, name)
	}
	m.attrs[name] = v
}

func (m *Module) Attr(name string) (Value, bool) {
	v, ok := m.attrs[name]
	return v, ok
}

// Def registers a function. The builtin is named module.name.
func (m *Module) Def(name, doc string, fn BuiltinFunc) {
	m.SetAttr(name, Value{kind: KindBuiltin, data: &Builtin{Name: m.Name + "." + name, Doc: doc, Fn: fn}})
}

// DefFunction registers a function whose arguments are bound by params.
func (m *Module) DefFunction(name, doc string, params []Param, fn FunctionBody) {
	v := NewFunction(m.Name+"."+name, params, fn)
	v.Builtin().Doc = doc
	m.SetAttr(name, v)
}

func (m *Module) AddClass(c *Class) {
	m.SetAttr(c.Name, NewClass(c))
}

// Names returns attribute names in registration order.
func (m *Module) Names() []string {
	return append([]string(nil), m.order...)
}

// Globals returns a copy of the attribute map.
func (m *Module) Globals() map[string]Value {
	out := make(map[string]Value, len(m.attrs))
	maps.Copy(out, m.attrs)
	return out
}
