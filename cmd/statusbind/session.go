package main

import (
	"maps"

	"github.com/mgomes/statusbind/bind"
	"github.com/mgomes/statusbind/fixtures/statusexample"
	"github.com/mgomes/statusbind/fixtures/statustesting"
	"github.com/mgomes/statusbind/host"
)

// session is one runtime with every fixture module importable. globals
// holds each module by name plus the flattened attributes of the status
// module and the selected module.
type session struct {
	rt      *host.Runtime
	module  string
	globals map[string]host.Value
}

func newSession(module string, cfg host.Config) (*session, error) {
	rt := host.NewRuntime(cfg)
	statusModule, err := bind.ImportStatusModule(rt)
	if err != nil {
		return nil, err
	}
	statusexample.Register(rt, statusexample.NewStatics())
	statustesting.Register(rt)

	globals := make(map[string]host.Value)
	for _, name := range []string{bind.StatusModuleName, statusexample.ModuleName, statustesting.ModuleName} {
		m, err := rt.Import(name)
		if err != nil {
			return nil, err
		}
		globals[name] = host.NewModule(m)
	}
	selected, err := rt.Import(module)
	if err != nil {
		return nil, err
	}
	maps.Copy(globals, statusModule.Globals())
	maps.Copy(globals, selected.Globals())
	return &session{rt: rt, module: module, globals: globals}, nil
}

// scope overlays vars on the session globals.
func (s *session) scope(vars map[string]host.Value) map[string]host.Value {
	out := make(map[string]host.Value, len(s.globals)+len(vars))
	maps.Copy(out, s.globals)
	maps.Copy(out, vars)
	return out
}
