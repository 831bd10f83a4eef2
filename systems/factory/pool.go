package factory

import (
	"github.com/automoto/cyber-defender/components"
	"github.com/yohamta/donburi"
)

// PoolTag is the donburi tag a fixed pool of slots was pre-spawned
// under. All pool operations are linear scans over the tag; capacities
// are small enough that this stays bounded per frame.
type PoolTag interface {
	Each(donburi.World, func(*donburi.Entry))
}

// Acquire returns the first inactive slot of the pool, marked active,
// for the caller to initialize. Returns nil when the pool is
// saturated; callers treat that as a dropped spawn request, not an
// error.
func Acquire(w donburi.World, pool PoolTag) *donburi.Entry {
	var free *donburi.Entry
	pool.Each(w, func(e *donburi.Entry) {
		if free != nil {
			return
		}
		if !components.PoolSlot.Get(e).Active {
			free = e
		}
	})
	if free != nil {
		components.PoolSlot.Get(free).Active = true
	}
	return free
}

// Release returns a slot to the pool and detaches its collision
// object from the space. The slot's other fields are left stale;
// Active is the only authority.
func Release(e *donburi.Entry) {
	components.PoolSlot.Get(e).Active = false
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
}

// ReleaseAll deactivates every slot of a pool. Used only at full
// session reset.
func ReleaseAll(w donburi.World, pool PoolTag) {
	pool.Each(w, func(e *donburi.Entry) {
		if components.PoolSlot.Get(e).Active {
			Release(e)
		}
	})
}

// CountActive reports how many slots of the pool are live.
func CountActive(w donburi.World, pool PoolTag) int {
	n := 0
	pool.Each(w, func(e *donburi.Entry) {
		if components.PoolSlot.Get(e).Active {
			n++
		}
	})
	return n
}

// EachActive visits only the live slots of the pool.
func EachActive(w donburi.World, pool PoolTag, fn func(*donburi.Entry)) {
	pool.Each(w, func(e *donburi.Entry) {
		if components.PoolSlot.Get(e).Active {
			fn(e)
		}
	})
}
