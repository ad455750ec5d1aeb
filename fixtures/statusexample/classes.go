package statusexample

import (
	"github.com/mgomes/statusbind/bind"
	"github.com/mgomes/statusbind/host"
	"github.com/mgomes/statusbind/status"
)

var (
	IntValueClass  = newIntValueClass()
	TestClassClass = newTestClassClass()
	IntGetterClass = newIntGetterClass()
)

var codeTextParams = []host.Param{host.Arg("code"), host.ArgDefault("text", host.NewString(""))}

func loadCodeText(args []host.Value) (status.Code, string, error) {
	code, err := bind.LoadCode(args[0])
	if err != nil {
		return status.Unknown, "", err
	}
	text, err := bind.LoadString(args[1])
	if err != nil {
		return status.Unknown, "", err
	}
	return code, text, nil
}

func newIntValueClass() *host.Class {
	return host.DefineClass("IntValue", nil).DefReadonly("value", func(inst *host.Instance) (host.Value, error) {
		v, ok := inst.Native.(*IntValue)
		if !ok || v == nil {
			return host.NewNil(), host.Raise(host.TypeError, "IntValue instance has no native value")
		}
		return host.NewInt(int64(v.Value)), nil
	})
}

func newTestClassClass() *host.Class {
	cls := host.DefineClass("TestClass", nil)
	cls.Def("__init__", func(rt *host.Runtime, receiver host.Value, args []host.Value, kwargs map[string]host.Value) (host.Value, error) {
		if len(args) > 0 || len(kwargs) > 0 {
			return host.NewNil(), host.Raise(host.TypeError, "TestClass() takes no arguments")
		}
		receiver.Instance().Native = &TestClass{}
		return host.NewNil(), nil
	})

	method := func(name string, call func(tc *TestClass, code status.Code, text string) (host.Value, error)) {
		cls.DefValue(name, host.NewFunction("TestClass."+name, codeTextParams,
			func(rt *host.Runtime, receiver host.Value, args []host.Value) (host.Value, error) {
				tc, err := bind.NativeOf[*TestClass](receiver, cls)
				if err != nil {
					return host.NewNil(), err
				}
				if tc == nil {
					return host.NewNil(), host.Raise(host.TypeError, "TestClass.%s() needs an instance", name)
				}
				code, text, err := loadCodeText(args)
				if err != nil {
					return host.NewNil(), err
				}
				return call(tc, code, text)
			}))
	}
	method("make_status", func(tc *TestClass, code status.Code, text string) (host.Value, error) {
		return bind.CastStatus(tc.MakeStatus(code, text), bind.DoNotThrow())
	})
	method("make_status_const", func(tc *TestClass, code status.Code, text string) (host.Value, error) {
		return bind.CastStatus(tc.MakeStatusConst(code, text), bind.DoNotThrow())
	})
	method("make_failure_status_or", func(tc *TestClass, code status.Code, text string) (host.Value, error) {
		return bind.CastStatusOr(tc.MakeFailureStatusOr(code, text), bind.IntCaster, bind.DoNotThrow())
	})
	return cls
}

// hostIntGetter forwards Get to the host override on self.
type hostIntGetter struct {
	rt   *host.Runtime
	self *host.Instance
}

func (g *hostIntGetter) Get(i int) (status.StatusOr[int], error) {
	return bind.CallOverride(g.rt, g.self, IntGetterClass, "Get", bind.LoadInt, host.NewInt(int64(i)))
}

func newIntGetterClass() *host.Class {
	cls := host.DefineClass("IntGetter", nil)
	cls.Doc = "Subclass and override Get(i) to serve call_get_redirect."
	cls.Def("__init__", func(rt *host.Runtime, receiver host.Value, args []host.Value, kwargs map[string]host.Value) (host.Value, error) {
		inst := receiver.Instance()
		inst.Native = &hostIntGetter{rt: rt, self: inst}
		return host.NewNil(), nil
	})
	return cls.DefPure("Get")
}
