package components

import "github.com/yohamta/donburi"

// ProjectileOrigin tags who fired a shot. Both sides share one pool;
// the tag replaces the old size-sniffing convention.
type ProjectileOrigin int

const (
	FromPlayer ProjectileOrigin = iota
	FromEnemy
)

// ProjectilePattern selects how a shot steers.
type ProjectilePattern int

const (
	PatternStraight ProjectilePattern = iota
	PatternAngled
	PatternHoming
)

type ProjectileData struct {
	Origin  ProjectileOrigin
	Pattern ProjectilePattern
	Damage  int
	VX, VY  float64 // px per ms
}

var Projectile = donburi.NewComponentType[ProjectileData]()
