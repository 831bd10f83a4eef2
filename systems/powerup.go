package systems

import (
	"github.com/automoto/cyber-defender/components"
	cfg "github.com/automoto/cyber-defender/config"
	"github.com/automoto/cyber-defender/systems/factory"
	"github.com/automoto/cyber-defender/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePowerUps drops the collectibles toward the ship and resolves
// pickups. Uncollected pickups drift off the bottom edge and release.
func UpdatePowerUps(e *ecs.ECS) {
	session := MustSession(e.World)
	dt := HostileDT(session)

	factory.EachActive(e.World, tags.PowerUp, func(entry *donburi.Entry) {
		pu := components.PowerUp.Get(entry)
		obj := components.Object.Get(entry)

		obj.Y += cfg.PowerUp.FallSpeed * dt
		pu.Rotation += cfg.PowerUp.SpinSpeed * dt
		obj.Update()

		if obj.Y > float64(cfg.C.Height) {
			factory.Release(entry)
			return
		}

		if col := obj.Check(0, 0, tags.ResolvPlayer); col != nil {
			for _, hit := range col.Objects {
				if overlaps(obj.Object, hit) {
					CollectPowerUp(e, session, entry)
					return
				}
			}
		}
	})
}
