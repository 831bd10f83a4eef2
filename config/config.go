package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer all drawers are registered on.
const Default ecs.LayerID = 0

// ScreenConfig contains window and playfield dimensions.
// The playfield fills the window; there is no scrolling camera.
type ScreenConfig struct {
	Width  int
	Height int
}

// SimConfig contains fixed-timestep loop tuning.
type SimConfig struct {
	TickMS           float64 // logical tick duration in milliseconds
	MaxFrameMS       float64 // frame delta clamp (tab-suspend / debugger resume)
	MaxStepsPerFrame int     // catch-up bound per animation frame
}

// PoolConfig contains fixed pool capacities. Pools never grow after
// session configure; a saturated pool drops spawn requests.
type PoolConfig struct {
	Projectiles int
	Enemies     int
	Particles   int
	PowerUps    int
}

// PlayerConfig contains all player-related tuning.
type PlayerConfig struct {
	Width  float64
	Height float64
	SpeedX float64 // px per ms

	StartingLives int
	MaxLives      int
	InvulnMS      float64 // post-hit immunity window

	FireCooldownMS  float64
	RapidCooldownMS float64 // fire cooldown while rapid-fire is active
	ShotSpeedY      float64 // px per ms, upward
	ShotDamage      int
	MultiShotVX     float64 // horizontal px/ms of the fanned multi-shot pair

	SpawnOffsetY float64 // ship rest position above the bottom edge
}

// EnemyKind selects a movement pattern and stat block.
type EnemyKind int

const (
	EnemyGrunt EnemyKind = iota
	EnemyStriker
	EnemyTank
	EnemyBoss
)

// EnemyKindConfig is the stat block for one enemy kind.
type EnemyKindConfig struct {
	Health    int
	Points    int
	Width     float64
	Height    float64
	FallSpeed float64 // px per ms downward
	SwayAmp   float64 // horizontal sway amplitude in px
	SwayFreq  float64 // sway cycles per ms
	SpinSpeed float64 // visual rotation, radians per ms
	Color     color.RGBA
}

// EnemyConfig contains enemy stat blocks and shared behaviour tuning.
type EnemyConfig struct {
	Types map[EnemyKind]EnemyKindConfig

	// Striker jitter
	StrikerJitterSpeed   float64 // px per ms horizontal
	StrikerReversalMinMS float64
	StrikerReversalMaxMS float64

	// Boss behaviour
	BossBandY         float64 // vertical center of the band the boss patrols
	BossSwayAmp       float64
	BossSwayFreq      float64
	BossCooldownMinMS float64 // attack cooldown at zero health
	BossCooldownMaxMS float64 // attack cooldown at full health
	BossShotSpeed     float64
	BossSpreadCount   int
	BossSpreadArc     float64 // radians covered by the spread fan
	BossSpiralStep    float64 // radians advanced per spiral shot
	BossVolleyCount   int
	BossSweepCount    int
}

// ProjectileConfig contains projectile dimensions and homing tuning.
type ProjectileConfig struct {
	PlayerWidth  float64
	PlayerHeight float64
	EnemyWidth   float64
	EnemyHeight  float64

	HomingSpeed float64 // px per ms
	HomingBlend float64 // per-tick steering blend toward the player, 0..1

	CullMargin float64 // px past the field edge before a shot is released
}

// PowerUpKind identifies a collectible modifier.
type PowerUpKind int

const (
	PowerRapidFire PowerUpKind = iota
	PowerShield
	PowerSlowTime
	PowerMultiShot
	PowerRepair
	PowerUpKindCount // must be last
)

// PowerUpConfig contains drop odds, motion and effect durations.
type PowerUpConfig struct {
	Width     float64
	Height    float64
	FallSpeed float64 // px per ms
	SpinSpeed float64 // radians per ms

	DropChance float64 // per-kill roll
	DripMS     float64 // independent periodic spawn interval

	DurationMS map[PowerUpKind]float64 // zero for instant effects (repair)
	SlowFactor float64                 // dt multiplier for hostiles under slow-time
	Colors     map[PowerUpKind]color.RGBA
	Labels     map[PowerUpKind]string
}

// LeakPolicy decides what an enemy slipping past the bottom edge costs.
type LeakPolicy int

const (
	LeakCostsLife LeakPolicy = iota
	LeakEndsRun
)

// RulesConfig contains progression and scoring rules.
type RulesConfig struct {
	LevelScoreStep   int // score per level-up
	BossLevel        int // regular spawns stop and the boss enters at this level
	MaxActiveEnemies int

	SpawnBaseMS  float64 // enemy spawn interval at level 1
	SpawnStepMS  float64 // interval reduction per level
	SpawnFloorMS float64

	ComboWindowMS float64
	ComboPerStep  int // kills per extra multiplier point
	ComboMaxBonus int // multiplier cap above the base x1

	Leak LeakPolicy
}

// FXConfig contains cosmetic effect tuning.
type FXConfig struct {
	ShakeDecay     float64 // multiplier applied once per tick
	ShakeOnHit     float64
	ShakeOnKill    float64
	ShakeOnBossHit float64

	ExplosionParticles int
	SparkParticles     int
	PickupParticles    int
	ParticleLifeMS     float64
	TextLifeMS         float64
}

// HUDConfig contains HUD layout and palette.
type HUDConfig struct {
	Margin     float64
	LineHeight float64

	TextColor    color.RGBA
	DimTextColor color.RGBA
	AccentColor  color.RGBA
	LifeColor    color.RGBA
	BossBarBack  color.RGBA
	BossBarFill  color.RGBA
	EffectColor  color.RGBA
}

// OverlayConfig contains the full-screen state overlays.
type OverlayConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	PromptColor     color.RGBA
	WonTitleColor   color.RGBA
	FadeInSec       float32
	TitleY          float64
	PromptY         float64
}

var (
	C          ScreenConfig
	Sim        SimConfig
	Pool       PoolConfig
	Player     PlayerConfig
	Enemy      EnemyConfig
	Projectile ProjectileConfig
	PowerUp    PowerUpConfig
	Rules      RulesConfig
	FX         FXConfig
	HUD        HUDConfig
	Overlay    OverlayConfig
)

func init() {
	C = ScreenConfig{
		Width:  480,
		Height: 640,
	}

	Sim = SimConfig{
		TickMS:           1000.0 / 60.0,
		MaxFrameMS:       250,
		MaxStepsPerFrame: 5,
	}

	Pool = PoolConfig{
		Projectiles: 48,
		Enemies:     24,
		Particles:   96,
		PowerUps:    8,
	}

	Player = PlayerConfig{
		Width:  36,
		Height: 24,
		SpeedX: 0.30,

		StartingLives: 3,
		MaxLives:      5,
		InvulnMS:      2000,

		FireCooldownMS:  250,
		RapidCooldownMS: 110,
		ShotSpeedY:      0.55,
		ShotDamage:      1,
		MultiShotVX:     0.14,

		SpawnOffsetY: 56,
	}

	Enemy = EnemyConfig{
		Types: map[EnemyKind]EnemyKindConfig{
			EnemyGrunt: {
				Health:    1,
				Points:    100,
				Width:     32,
				Height:    26,
				FallSpeed: 0.085,
				SwayAmp:   18,
				SwayFreq:  0.0016,
				SpinSpeed: 0.0008,
				Color:     color.RGBA{255, 64, 129, 255},
			},
			EnemyStriker: {
				Health:    1,
				Points:    150,
				Width:     24,
				Height:    20,
				FallSpeed: 0.155,
				SpinSpeed: 0.0024,
				Color:     color.RGBA{255, 196, 0, 255},
			},
			EnemyTank: {
				Health:    4,
				Points:    250,
				Width:     44,
				Height:    36,
				FallSpeed: 0.042,
				SwayAmp:   30,
				SwayFreq:  0.0006,
				SpinSpeed: 0.0004,
				Color:     color.RGBA{0, 229, 255, 255},
			},
			EnemyBoss: {
				Health: 60,
				Points: 5000,
				Width:  96,
				Height: 64,
				Color:  color.RGBA{213, 0, 249, 255},
			},
		},

		StrikerJitterSpeed:   0.22,
		StrikerReversalMinMS: 350,
		StrikerReversalMaxMS: 1100,

		BossBandY:         96,
		BossSwayAmp:       150,
		BossSwayFreq:      0.0005,
		BossCooldownMinMS: 550,
		BossCooldownMaxMS: 1800,
		BossShotSpeed:     0.20,
		BossSpreadCount:   5,
		BossSpreadArc:     1.2,
		BossSpiralStep:    0.55,
		BossVolleyCount:   3,
		BossSweepCount:    7,
	}

	Projectile = ProjectileConfig{
		PlayerWidth:  4,
		PlayerHeight: 14,
		EnemyWidth:   8,
		EnemyHeight:  8,

		HomingSpeed: 0.21,
		HomingBlend: 0.08,

		CullMargin: 24,
	}

	PowerUp = PowerUpConfig{
		Width:     22,
		Height:    22,
		FallSpeed: 0.07,
		SpinSpeed: 0.003,

		DropChance: 0.15,
		DripMS:     8000,

		DurationMS: map[PowerUpKind]float64{
			PowerRapidFire: 6000,
			PowerShield:    5000,
			PowerSlowTime:  4000,
			PowerMultiShot: 6000,
			PowerRepair:    0,
		},
		SlowFactor: 0.5,
		Colors: map[PowerUpKind]color.RGBA{
			PowerRapidFire: {255, 196, 0, 255},
			PowerShield:    {0, 229, 255, 255},
			PowerSlowTime:  {213, 0, 249, 255},
			PowerMultiShot: {118, 255, 3, 255},
			PowerRepair:    {255, 64, 129, 255},
		},
		Labels: map[PowerUpKind]string{
			PowerRapidFire: "RAPID",
			PowerShield:    "SHIELD",
			PowerSlowTime:  "SLOW-MO",
			PowerMultiShot: "MULTI",
			PowerRepair:    "REPAIR",
		},
	}

	Rules = RulesConfig{
		LevelScoreStep:   1000,
		BossLevel:        5,
		MaxActiveEnemies: 8,

		SpawnBaseMS:  1400,
		SpawnStepMS:  150,
		SpawnFloorMS: 450,

		ComboWindowMS: 2500,
		ComboPerStep:  5,
		ComboMaxBonus: 4,

		Leak: LeakCostsLife,
	}

	FX = FXConfig{
		ShakeDecay:     0.88,
		ShakeOnHit:     12,
		ShakeOnKill:    3,
		ShakeOnBossHit: 6,

		ExplosionParticles: 12,
		SparkParticles:     4,
		PickupParticles:    6,
		ParticleLifeMS:     600,
		TextLifeMS:         900,
	}

	HUD = HUDConfig{
		Margin:     12,
		LineHeight: 18,

		TextColor:    color.RGBA{224, 247, 250, 255},
		DimTextColor: color.RGBA{120, 144, 156, 255},
		AccentColor:  color.RGBA{0, 229, 255, 255},
		LifeColor:    color.RGBA{255, 64, 129, 255},
		BossBarBack:  color.RGBA{40, 40, 56, 255},
		BossBarFill:  color.RGBA{213, 0, 249, 255},
		EffectColor:  color.RGBA{33, 33, 48, 255},
	}

	Overlay = OverlayConfig{
		BackgroundColor: color.RGBA{6, 6, 16, 200},
		TitleColor:      color.RGBA{255, 64, 129, 255},
		PromptColor:     color.RGBA{224, 247, 250, 255},
		WonTitleColor:   color.RGBA{118, 255, 3, 255},
		FadeInSec:       0.6,
		TitleY:          260,
		PromptY:         340,
	}
}
