package bind

import (
	"unsafe"

	"github.com/mgomes/statusbind/host"
	"github.com/mgomes/statusbind/status"
)

// StatusCapsuleName tags capsules that carry a *status.Status.
const StatusCapsuleName = "status.Status"

// NewStatusCapsule wraps p in a tagged capsule. The caller keeps ownership
// of *p, which must outlive the capsule.
func NewStatusCapsule(p *status.Status) host.Value {
	return host.NewCapsule(host.MakeCapsule(unsafe.Pointer(p), StatusCapsuleName))
}
