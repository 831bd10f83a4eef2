package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Projectile = donburi.NewTag().SetName("Projectile")
	Particle   = donburi.NewTag().SetName("Particle")
	PowerUp    = donburi.NewTag().SetName("PowerUp")
)

// Resolv tags for collision broadphase
const (
	ResolvPlayer  = "player"
	ResolvEnemy   = "enemy"
	ResolvPowerUp = "powerup"
)
