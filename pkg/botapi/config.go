package botapi

import (
	"fmt"
	"time"
)

// Config carries the simulation parameters every robot runs under. It is
// cloned per agent, sent verbatim to external bot processes in the init
// message, and never mutated after the world starts.
type Config struct {
	// WorldSize is the extent of the arena, with the origin in the lower
	// left.
	WorldSize Vec2 `json:"world_size" yaml:"world_size"`

	// TicksPerSecond is the frame rate of the simulation (but not
	// necessarily of the rendering).
	TicksPerSecond int `json:"ticks_per_second" yaml:"ticks_per_second"`

	// TicksPerStep is the number of simulation ticks between each exchange
	// with a robot's controlling program.
	TicksPerStep int `json:"ticks_per_step" yaml:"ticks_per_step"`

	// DriveFriction is the multiplicative speed decay applied each tick.
	DriveFriction float64 `json:"drive_friction" yaml:"drive_friction"`

	// ThrustLimits is the range of allowed thrust values.
	ThrustLimits Range `json:"thrust_limits" yaml:"thrust_limits"`

	// TurnRateLimits is the range of allowed body turn rates.
	TurnRateLimits Range `json:"turn_rate_limits" yaml:"turn_rate_limits"`

	// GunTurnRateLimits is the range of allowed gun turn rates.
	GunTurnRateLimits Range `json:"gun_turn_rate_limits" yaml:"gun_turn_rate_limits"`

	// RadarTurnRateLimits is the range of allowed radar turn rates.
	RadarTurnRateLimits Range `json:"radar_turn_rate_limits" yaml:"radar_turn_rate_limits"`

	// BulletPowerLimits is the range of allowed bullet powers.
	BulletPowerLimits Range `json:"bullet_power_limits" yaml:"bullet_power_limits"`

	// ShootPowerMax caps a robot's stored shoot power.
	ShootPowerMax float64 `json:"shoot_power_max" yaml:"shoot_power_max"`

	// ShootPowerRegen is how much shoot power returns per second.
	ShootPowerRegen float64 `json:"shoot_power_regen" yaml:"shoot_power_regen"`

	// RadarRange is how far a robot's radar reaches.
	RadarRange float64 `json:"radar_range" yaml:"radar_range"`

	// StartHitPoints is the hit points every robot spawns with.
	StartHitPoints float64 `json:"start_hit_points" yaml:"start_hit_points"`
}

// DefaultConfig returns the configuration used when nothing is supplied.
func DefaultConfig() Config {
	return Config{
		WorldSize:           NewVec2(100, 100),
		TicksPerSecond:      60,
		TicksPerStep:        5,
		DriveFriction:       0.95,
		ThrustLimits:        NewRange(-10, 10),
		TurnRateLimits:      NewRange(-2, 2),
		GunTurnRateLimits:   NewRange(-2, 2),
		RadarTurnRateLimits: NewRange(-2, 2),
		BulletPowerLimits:   NewRange(0.5, 3),
		ShootPowerMax:       5,
		ShootPowerRegen:     1,
		RadarRange:          40,
		StartHitPoints:      100,
	}
}

// TickDuration returns the length of one tick derived from TicksPerSecond.
func (c Config) TickDuration() time.Duration {
	return time.Duration(float64(time.Second) / float64(c.TicksPerSecond))
}

// Validate reports the first problem with the configuration.
func (c Config) Validate() error {
	if c.WorldSize.X <= 0 || c.WorldSize.Y <= 0 {
		return fmt.Errorf("world size %vx%v not positive", c.WorldSize.X, c.WorldSize.Y)
	}
	if c.TicksPerSecond <= 0 {
		return fmt.Errorf("ticks per second %d not positive", c.TicksPerSecond)
	}
	if c.TicksPerStep <= 0 {
		return fmt.Errorf("ticks per step %d not positive", c.TicksPerStep)
	}
	if c.DriveFriction < 0 || c.DriveFriction > 1 {
		return fmt.Errorf("drive friction %v outside [0, 1]", c.DriveFriction)
	}
	limits := []struct {
		name string
		r    Range
	}{
		{"thrust", c.ThrustLimits},
		{"turn rate", c.TurnRateLimits},
		{"gun turn rate", c.GunTurnRateLimits},
		{"radar turn rate", c.RadarTurnRateLimits},
		{"bullet power", c.BulletPowerLimits},
	}
	for _, l := range limits {
		if err := l.r.Validate(); err != nil {
			return fmt.Errorf("%s limits: %w", l.name, err)
		}
	}
	if c.ShootPowerMax < 0 {
		return fmt.Errorf("shoot power max %v negative", c.ShootPowerMax)
	}
	if c.RadarRange < 0 {
		return fmt.Errorf("radar range %v negative", c.RadarRange)
	}
	return nil
}
