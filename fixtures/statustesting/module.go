// Package statustesting is a fixture module whose native functions call
// back into host code and report what came back as a status.
package statustesting

import (
	"strconv"

	"github.com/mgomes/statusbind/bind"
	"github.com/mgomes/statusbind/host"
	"github.com/mgomes/statusbind/status"
)

const ModuleName = "status_testing"

// CallCallbackWithStatusReturn runs cb and renders the resulting status.
func CallCallbackWithStatusReturn(cb func() status.Status) string {
	return cb().String()
}

// CallCallbackWithStatusOrIntReturn renders the value in decimal, or the
// failure status.
func CallCallbackWithStatusOrIntReturn(cb func() status.StatusOr[int]) string {
	so := cb()
	if !so.Ok() {
		return so.Status().String()
	}
	return strconv.Itoa(so.MustValue())
}

func GenerateErrorStatusNotOk() status.Status {
	return status.AlreadyExistsError("Something went wrong, again.")
}

func Register(rt *host.Runtime) {
	rt.RegisterFactory(ModuleName, NewModule)
}

func NewModule(rt *host.Runtime) (*host.Module, error) {
	statusModule, err := bind.ImportStatusModule(rt)
	if err != nil {
		return nil, err
	}
	m := host.DefineModule(ModuleName, "Native functions that call host callbacks.")
	notOk, _ := statusModule.Attr("StatusNotOk")
	m.SetAttr("StatusNotOk", notOk)

	cbParams := []host.Param{host.Arg("cb")}
	m.DefFunction("call_callback_with_status_return", "Call cb() and return its status as a string.", cbParams,
		func(rt *host.Runtime, receiver host.Value, args []host.Value) (host.Value, error) {
			return host.NewString(CallCallbackWithStatusReturn(bind.StatusFunc(rt, args[0]))), nil
		})
	m.DefFunction("call_callback_with_status_or_int_return", "Call cb() and return its int or status as a string.", cbParams,
		func(rt *host.Runtime, receiver host.Value, args []host.Value) (host.Value, error) {
			return host.NewString(CallCallbackWithStatusOrIntReturn(bind.StatusOrFunc(rt, args[0], bind.LoadInt))), nil
		})
	m.DefFunction("call_callback_with_status_or_object_return", "Call cb() and return its result, raising on failure.", cbParams,
		func(rt *host.Runtime, receiver host.Value, args []host.Value) (host.Value, error) {
			so := bind.StatusOrFunc(rt, args[0], bind.LoadValue)()
			return bind.CastStatusOr(so, bind.ValueCaster)
		})
	m.DefFunction("generate_error_status_not_ok", "Raise StatusNotOk(ALREADY_EXISTS).", nil,
		func(rt *host.Runtime, receiver host.Value, args []host.Value) (host.Value, error) {
			return bind.CastStatus(GenerateErrorStatusNotOk())
		})
	return m, nil
}
