package bind

import (
	"fmt"

	"github.com/mgomes/statusbind/host"
	"github.com/mgomes/statusbind/status"
)

// StatusModuleName is the module every status-returning binding imports.
const StatusModuleName = "status"

// StatusNotOk is raised for failing statuses. Every binding module
// re-exports this class, so exceptions from independently built modules
// share one identity. Host code builds one with StatusNotOk(code, message)
// or StatusNotOk(status).
var StatusNotOk = host.DefineExceptionClass("StatusNotOk", host.ExceptionBase)

var codeMessageParams = []host.Param{host.Arg("code"), host.ArgDefault("message", host.NewString(""))}

// StatusCodeEnum mirrors status.Codes.
var StatusCodeEnum = newStatusCodeEnum()

// StatusClass is the non-raising wrapper. Its instances hold either a
// status.Status copy or a *status.Status view of native storage.
var StatusClass *host.Class

func init() {
	StatusClass = newStatusClass()
	StatusNotOk.Construct = constructStatusNotOk
}

// loadCodeMessage reads (code, message) arguments bound to codeMessageParams.
func loadCodeMessage(args []host.Value) (status.Status, error) {
	code, err := LoadCode(args[0])
	if err != nil {
		return status.Status{}, err
	}
	msg, err := LoadString(args[1])
	if err != nil {
		return status.Status{}, err
	}
	return status.New(code, msg), nil
}

func constructStatusNotOk(class *host.ExceptionClass, args []host.Value, kwargs map[string]host.Value) (*host.Exception, error) {
	if len(args) == 1 && len(kwargs) == 0 && isStatusWrapper(args[0]) {
		s, err := LoadStatus(args[0])
		if err != nil {
			return nil, err
		}
		return newStatusNotOkOf(class, s), nil
	}
	bound, err := host.Signature(codeMessageParams).Bind(class.Name, args, kwargs)
	if err != nil {
		return nil, err
	}
	s, err := loadCodeMessage(bound)
	if err != nil {
		return nil, err
	}
	return newStatusNotOkOf(class, s), nil
}

func newStatusCodeEnum() *host.EnumType {
	e := host.DefineEnum("StatusCode")
	for _, c := range status.Codes() {
		e.Add(c.String(), int64(c))
	}
	return e
}

// CodeValue returns the StatusCode member for c. Codes outside the
// canonical set map to UNKNOWN.
func CodeValue(c status.Code) host.Value {
	if !c.Valid() {
		c = status.Unknown
	}
	m, _ := StatusCodeEnum.ByValue(int64(c))
	return host.NewEnum(m)
}

func newStatusClass() *host.Class {
	cls := host.DefineClass("Status", nil)
	cls.Doc = "Status(code, message=\"\") wraps a status without raising."

	cls.DefValue("__init__", host.NewFunction("Status.__init__", codeMessageParams,
		func(rt *host.Runtime, receiver host.Value, args []host.Value) (host.Value, error) {
			inst := receiver.Instance()
			if inst.Native != nil {
				return host.NewNil(), host.Raise(host.TypeError, "Status.__init__() called on an initialized Status")
			}
			s, err := loadCodeMessage(args)
			if err != nil {
				return host.NewNil(), err
			}
			inst.Native = s
			inst.Owned = true
			return host.NewNil(), nil
		}))

	cls.Def("ok", statusMethod("ok", func(s status.Status) host.Value {
		return host.NewBool(s.Ok())
	}))
	cls.Def("code", statusMethod("code", func(s status.Status) host.Value {
		return CodeValue(s.Code())
	}))
	cls.Def("raw_code", statusMethod("raw_code", func(s status.Status) host.Value {
		return host.NewInt(int64(s.RawCode()))
	}))
	cls.Def("message", statusMethod("message", func(s status.Status) host.Value {
		return host.NewString(s.Message())
	}))
	cls.Def("to_string", statusMethod("to_string", func(s status.Status) host.Value {
		return host.NewString(s.String())
	}))
	cls.Def("__repr__", statusMethod("__repr__", func(s status.Status) host.Value {
		return host.NewString(fmt.Sprintf("Status(%s)", s))
	}))
	cls.Def("__eq__", func(rt *host.Runtime, receiver host.Value, args []host.Value, kwargs map[string]host.Value) (host.Value, error) {
		if len(args) != 1 || len(kwargs) > 0 {
			return host.NewNil(), host.Raise(host.TypeError, "__eq__() takes exactly 1 argument")
		}
		self, err := LoadStatus(receiver)
		if err != nil {
			return host.NewNil(), err
		}
		if !isStatusWrapper(args[0]) {
			return host.NewBool(false), nil
		}
		other, err := LoadStatus(args[0])
		if err != nil {
			return host.NewNil(), err
		}
		return host.NewBool(self.Equal(other)), nil
	})
	return cls
}

func statusMethod(name string, fn func(status.Status) host.Value) host.BuiltinFunc {
	return func(rt *host.Runtime, receiver host.Value, args []host.Value, kwargs map[string]host.Value) (host.Value, error) {
		if len(args) > 0 || len(kwargs) > 0 {
			return host.NewNil(), host.Raise(host.TypeError, "%s() takes no arguments", name)
		}
		s, err := LoadStatus(receiver)
		if err != nil {
			return host.NewNil(), err
		}
		return fn(s), nil
	}
}

// ImportStatusModule makes sure rt has the status module and returns it.
// Repeated calls return the same module.
func ImportStatusModule(rt *host.Runtime) (*host.Module, error) {
	rt.RegisterFactory(StatusModuleName, newStatusModule)
	return rt.Import(StatusModuleName)
}

func newStatusModule(rt *host.Runtime) (*host.Module, error) {
	m := host.DefineModule(StatusModuleName, "Status types shared by every binding module.")
	m.SetAttr("StatusNotOk", host.NewExceptionClass(StatusNotOk))
	m.AddClass(StatusClass)
	m.SetAttr("StatusCode", host.NewEnumType(StatusCodeEnum))

	m.DefFunction("ok_status", "Return an OK Status wrapper.", nil,
		func(rt *host.Runtime, receiver host.Value, args []host.Value) (host.Value, error) {
			return NewStatusValue(status.OkStatus()), nil
		})
	m.DefFunction("build_status_not_ok", "Build, without raising, the StatusNotOk for (code, message).",
		codeMessageParams,
		func(rt *host.Runtime, receiver host.Value, args []host.Value) (host.Value, error) {
			s, err := loadCodeMessage(args)
			if err != nil {
				return host.NewNil(), err
			}
			return host.NewException(NewStatusNotOk(s)), nil
		})
	return m, nil
}
