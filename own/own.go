// Package own tags native pointers with their ownership mode so conversion
// code can tell an owned handle from a borrowed view at the type level.
package own

import "sync/atomic"

// Unique owns a *T until Release hands it off. Release swaps the pointer out
// atomically, so at most one caller ever receives it.
type Unique[T any] struct {
	p atomic.Pointer[T]
}

func NewUnique[T any](p *T) *Unique[T] {
	u := &Unique[T]{}
	u.p.Store(p)
	return u
}

// Get returns the owned pointer without giving it up.
func (u *Unique[T]) Get() *T {
	if u == nil {
		return nil
	}
	return u.p.Load()
}

func (u *Unique[T]) Empty() bool {
	return u.Get() == nil
}

// Release transfers ownership to the caller. It reports false when the
// handle was already released or never held a pointer.
func (u *Unique[T]) Release() (*T, bool) {
	if u == nil {
		return nil, false
	}
	p := u.p.Swap(nil)
	return p, p != nil
}

// Ref is a borrowed pointer. The pointee belongs to someone else and must
// outlive every use of the Ref.
type Ref[T any] struct {
	p *T
}

func Borrow[T any](p *T) Ref[T] {
	return Ref[T]{p: p}
}

func (r Ref[T]) Get() *T { return r.p }

func (r Ref[T]) IsNil() bool { return r.p == nil }
