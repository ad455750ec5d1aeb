package host

import (
	"errors"
	"unsafe"
)

var (
	ErrCapsuleUnnamed      = errors.New("capsule has no name")
	ErrCapsuleNameMismatch = errors.New("capsule name mismatch")
)

// Capsule carries a native pointer and a type tag through host code. The
// host never dereferences the pointer; whoever extracts it owns the risk.
type Capsule struct {
	ptr   unsafe.Pointer
	name  string
	named bool
}

func MakeCapsule(ptr unsafe.Pointer, name string) *Capsule {
	return &Capsule{ptr: ptr, name: name, named: true}
}

// MakeUnnamedCapsule builds a capsule with no tag. It can be passed around
// but every checked extraction fails.
func MakeUnnamedCapsule(ptr unsafe.Pointer) *Capsule {
	return &Capsule{ptr: ptr}
}

func (c *Capsule) Name() (string, bool) {
	return c.name, c.named
}

func (c *Capsule) Pointer() unsafe.Pointer {
	return c.ptr
}

// Extract returns the pointer when the capsule is tagged with expected. An
// unnamed capsule raises ValueError and a different tag raises TypeError.
func (c *Capsule) Extract(expected string) (unsafe.Pointer, error) {
	if !c.named {
		return nil, Wrap(ValueError, ErrCapsuleUnnamed, "capsule has no name, expected %q", expected)
	}
	if c.name != expected {
		return nil, Wrap(TypeError, ErrCapsuleNameMismatch, "expected capsule named %q, got %q", expected, c.name)
	}
	return c.ptr, nil
}
