package bots

import (
	"fmt"

	"battlebots/pkg/botapi"
)

// applyBatch applies one response list to the state, validating every
// command against the configured ranges. Application stops at the first
// invalid command; commands already applied stay applied.
func applyBatch(state *botapi.BotState, cfg botapi.Config, resps []botapi.Response, logf func(format string, args ...any)) error {
	shots := 0
	for _, resp := range resps {
		if err := applyResponse(state, cfg, resp, &shots, logf); err != nil {
			return err
		}
	}
	return nil
}

func applyResponse(state *botapi.BotState, cfg botapi.Config, resp botapi.Response, shots *int, logf func(format string, args ...any)) error {
	switch resp.Type {
	case botapi.TypeSetThrust:
		if !cfg.ThrustLimits.Contains(resp.Value) {
			return &BadValueError{Cmd: "thrust", Value: resp.Value}
		}
		state.Thrust = resp.Value

	case botapi.TypeSetTurnRate:
		if !cfg.TurnRateLimits.Contains(resp.Value) {
			return &BadValueError{Cmd: "turn rate", Value: resp.Value}
		}
		state.TurnRate = resp.Value

	case botapi.TypeSetGunTurnRate:
		if !cfg.GunTurnRateLimits.Contains(resp.Value) {
			return &BadValueError{Cmd: "gun turn rate", Value: resp.Value}
		}
		state.GunTurnRate = resp.Value

	case botapi.TypeSetRadarTurnRate:
		if !cfg.RadarTurnRateLimits.Contains(resp.Value) {
			return &BadValueError{Cmd: "radar turn rate", Value: resp.Value}
		}
		state.RadarTurnRate = resp.Value

	case botapi.TypeShoot:
		if !cfg.BulletPowerLimits.Contains(resp.Value) {
			return &BadValueError{Cmd: "bullet power", Value: resp.Value}
		}
		*shots++
		if *shots > 1 {
			return ErrTooManyShots
		}
		// A shot the robot cannot afford fizzles silently.
		if state.ShootPower >= resp.Value {
			state.ShootPower -= resp.Value
		}

	case botapi.TypeDebugPrint:
		logf("%s", resp.Text)

	default:
		return fmt.Errorf("unknown response type %q", resp.Type)
	}
	return nil
}

// integrate advances the state's physics by dt seconds. Rate fields are
// applied as-is (they were validated on the way in); the position is kept
// inside the arena.
func integrate(s *botapi.BotState, cfg botapi.Config, dt float64) {
	s.Heading += s.TurnRate * dt
	s.GunHeading += (s.GunTurnRate + s.TurnRate) * dt
	s.RadarHeading += (s.RadarTurnRate + s.TurnRate) * dt

	s.Speed += s.Thrust * dt
	s.Speed *= cfg.DriveFriction

	s.Pos = s.Pos.Add(botapi.Heading(s.Heading).Scale(s.Speed * dt))
	s.Pos.X = botapi.NewRange(0, cfg.WorldSize.X).Clamp(s.Pos.X)
	s.Pos.Y = botapi.NewRange(0, cfg.WorldSize.Y).Clamp(s.Pos.Y)

	s.ShootPower += cfg.ShootPowerRegen * dt
	if s.ShootPower > cfg.ShootPowerMax {
		s.ShootPower = cfg.ShootPowerMax
	}
}
