package statusexample

import (
	"unsafe"

	"github.com/mgomes/statusbind/bind"
	"github.com/mgomes/statusbind/host"
	"github.com/mgomes/statusbind/status"
)

const ModuleName = "status_example"

// NewModule builds status_example over DefaultStatics.
func NewModule(rt *host.Runtime) (*host.Module, error) {
	return NewModuleWithStatics(rt, DefaultStatics())
}

// Factory returns a lazy module factory bound to st.
func Factory(st *Statics) host.ModuleFactory {
	return func(rt *host.Runtime) (*host.Module, error) {
		return NewModuleWithStatics(rt, st)
	}
}

// Register makes status_example importable from rt.
func Register(rt *host.Runtime, st *Statics) {
	rt.RegisterFactory(ModuleName, Factory(st))
}

func NewModuleWithStatics(rt *host.Runtime, st *Statics) (*host.Module, error) {
	statusModule, err := bind.ImportStatusModule(rt)
	if err != nil {
		return nil, err
	}
	m := host.DefineModule(ModuleName, "Status conversion fixtures.")
	m.SetAttr("HAS_AUTOMATIC_RETURN_POLICY", host.NewBool(true))
	notOk, _ := statusModule.Attr("StatusNotOk")
	m.SetAttr("StatusNotOk", notOk)

	defineCapsules(m, st)
	m.AddClass(IntValueClass)
	m.AddClass(TestClassClass)
	defineStatusBindings(m, st)
	defineStatusOrBindings(m, st)
	m.AddClass(IntGetterClass)
	m.DefFunction("call_get_redirect", "Call ptr.Get(i) from native code.",
		[]host.Param{host.Arg("ptr"), host.Arg("i")},
		func(rt *host.Runtime, receiver host.Value, args []host.Value) (host.Value, error) {
			getter, err := bind.NativeOf[IntGetter](args[0], IntGetterClass)
			if err != nil {
				return host.NewNil(), err
			}
			i, err := bind.LoadInt(args[1])
			if err != nil {
				return host.NewNil(), err
			}
			so, err := CallGetRedirect(getter, i)
			if err != nil {
				return host.NewNil(), err
			}
			return bind.CastStatusOr(so, bind.IntCaster)
		})
	defineMiscBindings(m)
	return m, nil
}

func defineCapsules(m *host.Module, st *Statics) {
	m.DefFunction("make_status_capsule", "Return a capsule over a native OK or ALREADY_EXISTS status.",
		[]host.Param{host.Arg("return_ok")},
		func(rt *host.Runtime, receiver host.Value, args []host.Value) (host.Value, error) {
			ok, err := bind.LoadBool(args[0])
			if err != nil {
				return host.NewNil(), err
			}
			return bind.NewStatusCapsule(st.StatusCapsuleSlot(ok)), nil
		})
	m.DefFunction("extract_code_message", "Return (code, message) of a status.",
		[]host.Param{host.Arg("status")},
		func(rt *host.Runtime, receiver host.Value, args []host.Value) (host.Value, error) {
			s, err := bind.LoadStatus(args[0])
			if err != nil {
				return host.NewNil(), err
			}
			return host.NewTuple(bind.CodeValue(s.Code()), host.NewString(s.Message())), nil
		})
	m.DefFunction("make_bad_capsule", "Return a capsule that no loader accepts.",
		[]host.Param{host.Arg("pass_name")},
		func(rt *host.Runtime, receiver host.Value, args []host.Value) (host.Value, error) {
			passName, err := bind.LoadBool(args[0])
			if err != nil {
				return host.NewNil(), err
			}
			// never dereferenced
			ptr := unsafe.Pointer(new(byte))
			if passName {
				return host.NewCapsule(host.MakeCapsule(ptr, "NotGood")), nil
			}
			return host.NewCapsule(host.MakeUnnamedCapsule(ptr)), nil
		})
}

func defineStatusBindings(m *host.Module, st *Statics) {
	m.DefFunction("check_status", "Report whether status has the given code.",
		[]host.Param{host.Arg("status"), host.Arg("code")},
		func(rt *host.Runtime, receiver host.Value, args []host.Value) (host.Value, error) {
			s, err := bind.LoadStatus(args[0])
			if err != nil {
				return host.NewNil(), err
			}
			code, err := bind.LoadCode(args[1])
			if err != nil {
				return host.NewNil(), err
			}
			return host.NewBool(CheckStatus(s, code)), nil
		})
	m.DefFunction("check_statusor", "Report whether statusor is OK or has the given code.",
		[]host.Param{host.Arg("statusor"), host.Arg("code")},
		func(rt *host.Runtime, receiver host.Value, args []host.Value) (host.Value, error) {
			so, err := bind.LoadStatusOr(args[0], bind.LoadInt)
			if err != nil {
				return host.NewNil(), err
			}
			code, err := bind.LoadCode(args[1])
			if err != nil {
				return host.NewNil(), err
			}
			return host.NewBool(CheckStatusOr(so, code)), nil
		})

	codeText := func(name, doc string, fn func(code status.Code, text string) (host.Value, error)) {
		m.DefFunction(name, doc, codeTextParams,
			func(rt *host.Runtime, receiver host.Value, args []host.Value) (host.Value, error) {
				code, text, err := loadCodeText(args)
				if err != nil {
					return host.NewNil(), err
				}
				return fn(code, text)
			})
	}
	codeText("return_status", "Raise an error if code is not OK.", func(code status.Code, text string) (host.Value, error) {
		return bind.CastStatus(ReturnStatus(code, text))
	})
	codeText("make_status", "Return a status without raising an error, regardless of what it is.", func(code status.Code, text string) (host.Value, error) {
		return bind.CastStatus(ReturnStatus(code, text), bind.DoNotThrow())
	})
	codeText("make_status_manual_cast", "Return a status without raising an error, regardless of what it is.", func(code status.Code, text string) (host.Value, error) {
		return bind.CastStatus(status.New(code, text), bind.DoNotThrow())
	})
	codeText("make_status_ref", "Return a view of a native status slot without raising an error.", func(code status.Code, text string) (host.Value, error) {
		return bind.CastStatusPtr(st.ReturnStatusRef(code, text), bind.DoNotThrow(), bind.ReturnReference())
	})
	codeText("make_status_ptr", "Return a view of a native status slot without raising an error.", func(code status.Code, text string) (host.Value, error) {
		return bind.CastStatusPtr(st.ReturnStatusPtr(code, text), bind.DoNotThrow(), bind.ReturnReference())
	})
}

func defineStatusOrBindings(m *host.Module, st *Statics) {
	valueParams := []host.Param{host.Arg("value")}

	m.DefFunction("return_value_status_or", "Return value through a StatusOr.", valueParams,
		func(rt *host.Runtime, receiver host.Value, args []host.Value) (host.Value, error) {
			value, err := bind.LoadInt(args[0])
			if err != nil {
				return host.NewNil(), err
			}
			return bind.CastStatusOr(ReturnValueStatusOr(value), bind.IntCaster)
		})
	m.DefFunction("return_failure_status_or", "Raise an error with the given code.", codeTextParams,
		func(rt *host.Runtime, receiver host.Value, args []host.Value) (host.Value, error) {
			code, text, err := loadCodeText(args)
			if err != nil {
				return host.NewNil(), err
			}
			return bind.CastStatusOr(ReturnFailureStatusOr(code, text), bind.IntCaster)
		})
	m.DefFunction("make_failure_status_or", "Return a status without raising an error.", codeTextParams,
		func(rt *host.Runtime, receiver host.Value, args []host.Value) (host.Value, error) {
			code, text, err := loadCodeText(args)
			if err != nil {
				return host.NewNil(), err
			}
			return bind.CastStatusOr(ReturnFailureStatusOr(code, text), bind.IntCaster, bind.DoNotThrow())
		})
	m.DefFunction("make_failure_status_or_manual_cast", "Return a status.", codeTextParams,
		func(rt *host.Runtime, receiver host.Value, args []host.Value) (host.Value, error) {
			code, text, err := loadCodeText(args)
			if err != nil {
				return host.NewNil(), err
			}
			return bind.CastStatus(status.New(code, text), bind.DoNotThrow())
		})
	m.DefFunction("return_ptr_status_or", "Return a view of a native IntValue slot.", valueParams,
		func(rt *host.Runtime, receiver host.Value, args []host.Value) (host.Value, error) {
			value, err := bind.LoadInt(args[0])
			if err != nil {
				return host.NewNil(), err
			}
			return bind.CastStatusOr(st.ReturnPtrStatusOr(value), bind.BorrowedCaster[IntValue](IntValueClass), bind.ReturnReference())
		})
	m.DefFunction("return_unique_ptr_status_or", "Return a new IntValue owned by the host.", valueParams,
		func(rt *host.Runtime, receiver host.Value, args []host.Value) (host.Value, error) {
			value, err := bind.LoadInt(args[0])
			if err != nil {
				return host.NewNil(), err
			}
			return bind.CastStatusOr(ReturnUniquePtrStatusOr(value), bind.OwnedCaster[IntValue](IntValueClass), bind.WithReturnPolicy(bind.Move))
		})
	m.DefFunction("return_status_or_pointer", "", nil,
		func(rt *host.Runtime, receiver host.Value, args []host.Value) (host.Value, error) {
			return bind.CastStatusOrPtr(st.ReturnStatusOrPointer(), bind.IntCaster)
		})
	m.DefFunction("return_failure_status_or_pointer", "", nil,
		func(rt *host.Runtime, receiver host.Value, args []host.Value) (host.Value, error) {
			return bind.CastStatusOrPtr(st.ReturnFailureStatusOrPointer(), bind.IntCaster)
		})
}

func defineMiscBindings(m *host.Module) {
	m.DefFunction("status_from_int_code", "Build a status from a raw integer code.",
		[]host.Param{host.Arg("code"), host.Arg("msg")},
		func(rt *host.Runtime, receiver host.Value, args []host.Value) (host.Value, error) {
			code, err := bind.LoadInt(args[0])
			if err != nil {
				return host.NewNil(), err
			}
			msg, err := bind.LoadString(args[1])
			if err != nil {
				return host.NewNil(), err
			}
			return bind.CastStatus(status.FromRawCode(code, msg), bind.DoNotThrow())
		})
	m.DefFunction("return_ok_status", "", []host.Param{host.Arg("use_automatic_policy")},
		func(rt *host.Runtime, receiver host.Value, args []host.Value) (host.Value, error) {
			automatic, err := bind.LoadBool(args[0])
			if err != nil {
				return host.NewNil(), err
			}
			policy := bind.Copy
			if automatic {
				policy = bind.Automatic
			}
			return bind.CastStatus(status.OkStatus(), bind.WithReturnPolicy(policy))
		})
	m.DefFunction("return_ok_status_direct", "", nil,
		func(rt *host.Runtime, receiver host.Value, args []host.Value) (host.Value, error) {
			return bind.CastStatus(status.OkStatus(), bind.WithReturnPolicy(bind.Automatic))
		})
}
