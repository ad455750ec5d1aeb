package host

import "strings"

type EnumType struct {
	Name    string
	members []*EnumMember
	byName  map[string]*EnumMember
	byValue map[int64]*EnumMember
}

type EnumMember struct {
	Type  *EnumType
	Name  string
	Value int64
}

func DefineEnum(name string) *EnumType {
	return &EnumType{
		Name:    name,
		byName:  make(map[string]*EnumMember),
		byValue: make(map[int64]*EnumMember),
	}
}

// Add appends a member. The first member registered for a value wins value
// lookups.
func (e *EnumType) Add(name string, value int64) *EnumMember {
	m := &EnumMember{Type: e, Name: name, Value: value}
	e.members = append(e.members, m)
	e.byName[name] = m
	if _, exists := e.byValue[value]; !exists {
		e.byValue[value] = m
	}
	return m
}

// Member finds a member by name, ignoring case.
func (e *EnumType) Member(name string) (*EnumMember, bool) {
	if m, ok := e.byName[name]; ok {
		return m, true
	}
	for _, m := range e.members {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return nil, false
}

func (e *EnumType) ByValue(value int64) (*EnumMember, bool) {
	m, ok := e.byValue[value]
	return m, ok
}

func (e *EnumType) Members() []*EnumMember {
	return append([]*EnumMember(nil), e.members...)
}
