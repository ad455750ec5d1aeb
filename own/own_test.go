package own

import (
	"sync/atomic"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestUniqueReleaseOnce(t *testing.T) {
	v := 7
	u := NewUnique(&v)
	if u.Empty() || u.Get() != &v {
		t.Fatalf("handle should hold the pointer")
	}
	p, ok := u.Release()
	if !ok || p != &v {
		t.Fatalf("first release failed")
	}
	if !u.Empty() {
		t.Fatalf("handle should be empty after release")
	}
	if p, ok := u.Release(); ok || p != nil {
		t.Fatalf("second release must not hand out the pointer")
	}
}

func TestUniqueConcurrentReleaseHandsOffExactlyOnce(t *testing.T) {
	v := 1
	u := NewUnique(&v)
	var winners atomic.Int32
	var g errgroup.Group
	for range 32 {
		g.Go(func() error {
			if _, ok := u.Release(); ok {
				winners.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if winners.Load() != 1 {
		t.Fatalf("expected exactly one release, got %d", winners.Load())
	}
}

func TestNilUnique(t *testing.T) {
	var u *Unique[int]
	if !u.Empty() {
		t.Fatalf("nil handle should be empty")
	}
	if _, ok := u.Release(); ok {
		t.Fatalf("nil handle cannot release")
	}
}

func TestRef(t *testing.T) {
	v := 3
	r := Borrow(&v)
	if r.IsNil() || r.Get() != &v {
		t.Fatalf("ref should point at v")
	}
	v = 4
	if *r.Get() != 4 {
		t.Fatalf("ref should observe writes to the pointee")
	}
	if !(Ref[int]{}).IsNil() {
		t.Fatalf("zero ref should be nil")
	}
}
