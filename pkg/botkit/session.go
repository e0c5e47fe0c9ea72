package botkit

import (
	"fmt"

	"battlebots/pkg/botapi"
)

// Session dispatches incoming envelopes to a controller and tracks the
// configuration across messages. It is transport-agnostic: Run feeds it
// from standard input, the simulator's actor backend from a channel.
type Session struct {
	ctl Controller
	cfg botapi.Config
}

// NewSession creates a session around the controller, starting from the
// default configuration until the init message replaces it.
func NewSession(ctl Controller) *Session {
	return &Session{ctl: ctl, cfg: botapi.DefaultConfig()}
}

// Handle dispatches one envelope and returns the controller's response
// list, always non-nil so it encodes as an empty JSON list rather than
// null. alive turns false after the kill message.
func (s *Session) Handle(env botapi.Envelope) (resps []botapi.Response, alive bool, err error) {
	hook := &Hook{cfg: s.cfg, state: env.State}
	alive = true

	switch env.Msg.Type {
	case botapi.TypeInit:
		if env.Msg.Config != nil {
			s.cfg = *env.Msg.Config
			hook.cfg = s.cfg
		}
		s.ctl.Init(hook)

	case botapi.TypeStep:
		s.ctl.Step(hook, env.Msg.Elapsed)

	case botapi.TypeScan:
		if env.Msg.ScanPos != nil {
			s.ctl.Scan(hook, *env.Msg.ScanPos)
		}

	case botapi.TypeKill:
		s.ctl.Kill(hook)
		alive = false

	default:
		return []botapi.Response{}, true, fmt.Errorf("unknown message type %q", env.Msg.Type)
	}

	if hook.resps == nil {
		return []botapi.Response{}, alive, nil
	}
	return hook.resps, alive, nil
}
