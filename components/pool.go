package components

import "github.com/yohamta/donburi"

// PoolSlotData marks a pre-spawned pool entity. Active is the sole
// authority on whether the slot takes part in simulation or rendering;
// the rest of an inactive slot's fields are stale and ignored.
type PoolSlotData struct {
	Active bool
}

var PoolSlot = donburi.NewComponentType[PoolSlotData]()
