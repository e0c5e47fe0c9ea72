package botkit

import (
	"testing"

	"battlebots/pkg/botapi"
)

// greedyBrain asks for more than the configuration allows, to exercise the
// hook's clamping.
type greedyBrain struct {
	inits int
	steps int
	scans int
	kills int
}

func (b *greedyBrain) Init(h *Hook) {
	b.inits++
	h.SetThrust(999)
	h.SetTurnRate(-999)
}

func (b *greedyBrain) Step(h *Hook, elapsed float64) {
	b.steps++
	h.Shoot(999)
}

func (b *greedyBrain) Scan(h *Hook, pos botapi.Vec2) { b.scans++ }

func (b *greedyBrain) Kill(h *Hook) { b.kills++ }

func TestHookClampsCommands(t *testing.T) {
	cfg := botapi.DefaultConfig()
	sess := NewSession(&greedyBrain{})

	resps, alive, err := sess.Handle(botapi.Envelope{Msg: botapi.InitMessage(cfg)})
	if err != nil || !alive {
		t.Fatalf("init: alive=%v err=%v", alive, err)
	}
	if len(resps) != 2 {
		t.Fatalf("init responses = %+v", resps)
	}
	if resps[0].Type != botapi.TypeSetThrust || resps[0].Value != cfg.ThrustLimits.Max {
		t.Fatalf("thrust response = %+v", resps[0])
	}
	if resps[1].Type != botapi.TypeSetTurnRate || resps[1].Value != cfg.TurnRateLimits.Min {
		t.Fatalf("turn rate response = %+v", resps[1])
	}

	resps, _, err = sess.Handle(botapi.Envelope{Msg: botapi.StepMessage(0.1)})
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if len(resps) != 1 || resps[0].Type != botapi.TypeShoot || resps[0].Value != cfg.BulletPowerLimits.Max {
		t.Fatalf("step responses = %+v", resps)
	}
}

func TestSessionLifecycle(t *testing.T) {
	brain := &greedyBrain{}
	sess := NewSession(brain)

	if _, alive, err := sess.Handle(botapi.Envelope{Msg: botapi.InitMessage(botapi.DefaultConfig())}); !alive || err != nil {
		t.Fatalf("init: alive=%v err=%v", alive, err)
	}
	if _, alive, err := sess.Handle(botapi.Envelope{Msg: botapi.ScanMessage(botapi.NewVec2(1, 2))}); !alive || err != nil {
		t.Fatalf("scan: alive=%v err=%v", alive, err)
	}

	resps, alive, err := sess.Handle(botapi.Envelope{Msg: botapi.KillMessage()})
	if err != nil || alive {
		t.Fatalf("kill: alive=%v err=%v", alive, err)
	}
	if resps == nil {
		t.Fatal("responses must encode as a list, not null")
	}

	if brain.inits != 1 || brain.steps != 0 || brain.scans != 1 || brain.kills != 1 {
		t.Fatalf("brain = %+v", brain)
	}

	if _, _, err := sess.Handle(botapi.Envelope{Msg: botapi.Message{Type: "warp"}}); err == nil {
		t.Fatal("unknown message type accepted")
	}
}
