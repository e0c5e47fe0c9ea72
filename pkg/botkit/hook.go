package botkit

import "battlebots/pkg/botapi"

// Hook gives a controller read access to its robot's state and records the
// commands it issues during one callback. Out-of-range values are clamped
// silently here, on the robot's side; the simulation rejects rather than
// clamps, so clamping before sending keeps the two in agreement.
type Hook struct {
	cfg   botapi.Config
	state botapi.BotState
	resps []botapi.Response
}

// Config returns the simulation configuration this robot runs under.
func (h *Hook) Config() botapi.Config { return h.cfg }

// State returns the robot's public state as of this callback.
func (h *Hook) State() botapi.BotState { return h.state }

// SetThrust sets the robot's thrust, clamped to the configured limits.
func (h *Hook) SetThrust(thrust float64) {
	v := h.cfg.ThrustLimits.Clamp(thrust)
	h.state.Thrust = v
	h.resps = append(h.resps, botapi.Response{Type: botapi.TypeSetThrust, Value: v})
}

// SetTurnRate sets the body turn rate, clamped to the configured limits.
func (h *Hook) SetTurnRate(rate float64) {
	v := h.cfg.TurnRateLimits.Clamp(rate)
	h.state.TurnRate = v
	h.resps = append(h.resps, botapi.Response{Type: botapi.TypeSetTurnRate, Value: v})
}

// SetGunTurnRate sets the gun turn rate, clamped to the configured limits.
func (h *Hook) SetGunTurnRate(rate float64) {
	v := h.cfg.GunTurnRateLimits.Clamp(rate)
	h.state.GunTurnRate = v
	h.resps = append(h.resps, botapi.Response{Type: botapi.TypeSetGunTurnRate, Value: v})
}

// SetRadarTurnRate sets the radar turn rate, clamped to the configured
// limits.
func (h *Hook) SetRadarTurnRate(rate float64) {
	v := h.cfg.RadarTurnRateLimits.Clamp(rate)
	h.state.RadarTurnRate = v
	h.resps = append(h.resps, botapi.Response{Type: botapi.TypeSetRadarTurnRate, Value: v})
}

// Shoot fires a bullet along the gun heading with the given power, clamped
// to the configured limits. At most one shot is allowed per step; the
// simulation skips a shot the robot cannot afford.
func (h *Hook) Shoot(power float64) {
	v := h.cfg.BulletPowerLimits.Clamp(power)
	h.resps = append(h.resps, botapi.Response{Type: botapi.TypeShoot, Value: v})
}

// DebugPrint prints the message to the simulation console.
func (h *Hook) DebugPrint(msg string) {
	h.resps = append(h.resps, botapi.Response{Type: botapi.TypeDebugPrint, Text: msg})
}
