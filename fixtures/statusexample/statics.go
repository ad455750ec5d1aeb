package statusexample

import (
	"github.com/mgomes/statusbind/own"
	"github.com/mgomes/statusbind/status"
)

// Statics holds the native storage that reference and pointer results point
// into. Each call overwrites its slot in place, so views handed out earlier
// observe the new contents. Statics is not safe for concurrent use; give
// each Runtime its own.
type Statics struct {
	okCapsule    status.Status
	notOkCapsule status.Status

	statusRef status.Status
	statusPtr status.Status

	intValue IntValue

	statusOrPtr        *status.StatusOr[int]
	failureStatusOrPtr *status.StatusOr[int]
}

func NewStatics() *Statics {
	okPtr := status.ValueOf(42)
	failPtr := status.FromStatus[int](status.InvalidArgumentError("Uh oh!"))
	return &Statics{
		okCapsule:          status.OkStatus(),
		notOkCapsule:       status.AlreadyExistsError("Made by make_status_capsule."),
		statusOrPtr:        &okPtr,
		failureStatusOrPtr: &failPtr,
	}
}

var defaultStatics = NewStatics()

// DefaultStatics returns the process-wide slots used by NewModule. Tests that
// run in parallel should use NewStatics instead.
func DefaultStatics() *Statics {
	return defaultStatics
}

func (st *Statics) ReturnStatusRef(code status.Code, text string) *status.Status {
	st.statusRef = status.New(code, text)
	return &st.statusRef
}

func (st *Statics) ReturnStatusPtr(code status.Code, text string) *status.Status {
	st.statusPtr = status.New(code, text)
	return &st.statusPtr
}

func (st *Statics) ReturnPtrStatusOr(value int) status.StatusOr[own.Ref[IntValue]] {
	st.intValue.Value = value
	return status.ValueOf(own.Borrow(&st.intValue))
}

func (st *Statics) StatusCapsuleSlot(ok bool) *status.Status {
	if ok {
		return &st.okCapsule
	}
	return &st.notOkCapsule
}

func (st *Statics) ReturnStatusOrPointer() *status.StatusOr[int] {
	return st.statusOrPtr
}

func (st *Statics) ReturnFailureStatusOrPointer() *status.StatusOr[int] {
	return st.failureStatusOrPtr
}
