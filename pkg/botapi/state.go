package botapi

// BotState is the publicly observable state of one robot. Headings are in
// radians, anticlockwise, with 0 pointing along the positive X axis. The
// origin of the arena is in the lower left.
type BotState struct {
	// Pos is the robot's position within the arena.
	Pos Vec2 `json:"pos"`

	// Heading is the direction the robot's body is facing.
	Heading float64 `json:"heading"`

	// GunHeading is the absolute direction the gun is facing.
	GunHeading float64 `json:"gun_heading"`

	// RadarHeading is the absolute direction the radar is facing.
	RadarHeading float64 `json:"radar_heading"`

	// Speed is the velocity, in units per second, along Heading.
	Speed float64 `json:"speed"`

	// Thrust is the acceleration, in units per second squared.
	Thrust float64 `json:"thrust"`

	// TurnRate is the rate of rotation of the body, in radians per second.
	TurnRate float64 `json:"turn_rate"`

	// GunTurnRate is the rate of rotation of the gun, relative to the body.
	GunTurnRate float64 `json:"gun_turn_rate"`

	// RadarTurnRate is the rate of rotation of the radar, relative to the
	// body.
	RadarTurnRate float64 `json:"radar_turn_rate"`

	// HitPoints is how much damage the robot can still take.
	HitPoints float64 `json:"hit_points"`

	// ShootPower is the energy available for firing. It regenerates over
	// time up to the configured maximum.
	ShootPower float64 `json:"shoot_power"`
}

// RelGunHeading returns the gun direction relative to the robot's body.
func (s BotState) RelGunHeading() float64 { return s.GunHeading - s.Heading }

// RelRadarHeading returns the radar direction relative to the robot's body.
func (s BotState) RelRadarHeading() float64 { return s.RadarHeading - s.Heading }
