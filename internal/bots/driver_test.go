package bots

import (
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"battlebots/pkg/botapi"
)

func testLogger() *log.Logger { return log.New(io.Discard, "", 0) }

// fakeMailbox is a fully synchronous mailbox so the step cadence can be
// tested without any transport timing.
type fakeMailbox struct {
	sent  []botapi.Envelope
	queue [][]botapi.Response
	err   error
}

func (m *fakeMailbox) Send(state botapi.BotState, msg botapi.Message) {
	m.sent = append(m.sent, botapi.Envelope{State: state, Msg: msg})
}

func (m *fakeMailbox) TryRecv() ([]botapi.Response, bool) {
	if len(m.queue) == 0 {
		return nil, false
	}
	resps := m.queue[0]
	m.queue = m.queue[1:]
	return resps, true
}

func (m *fakeMailbox) Err() error { return m.err }

func newTestDriver(mb mailbox) driver {
	cfg := botapi.DefaultConfig()
	cfg.TicksPerStep = 3
	return newDriver("test-0", botapi.NewVec2(50, 50), cfg, mb, testLogger())
}

func TestDriverStepCadence(t *testing.T) {
	mb := &fakeMailbox{}
	d := newTestDriver(mb)

	if err := d.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if len(mb.sent) != 1 || mb.sent[0].Msg.Type != botapi.TypeInit {
		t.Fatalf("sent = %+v", mb.sent)
	}

	mb.queue = [][]botapi.Response{{{Type: botapi.TypeSetThrust, Value: 5}}}

	const dt = 10 * time.Millisecond
	for i := 0; i < 2; i++ {
		if err := d.Tick(dt); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}
	// No step boundary yet: nothing sent, nothing applied.
	if len(mb.sent) != 1 {
		t.Fatalf("sent before the boundary = %+v", mb.sent)
	}
	if d.PublicData().Thrust != 0 {
		t.Fatalf("thrust applied before the boundary: %v", d.PublicData().Thrust)
	}

	if err := d.Tick(dt); err != nil {
		t.Fatalf("boundary tick: %v", err)
	}
	if d.PublicData().Thrust != 5 {
		t.Fatalf("thrust = %v, want 5", d.PublicData().Thrust)
	}
	if len(mb.sent) != 2 || mb.sent[1].Msg.Type != botapi.TypeStep {
		t.Fatalf("sent = %+v", mb.sent)
	}
	if want := (3 * dt).Seconds(); mb.sent[1].Msg.Elapsed != want {
		t.Fatalf("step elapsed = %v, want %v", mb.sent[1].Msg.Elapsed, want)
	}
}

func TestDriverSlowResponse(t *testing.T) {
	mb := &fakeMailbox{}
	d := newTestDriver(mb)

	if err := d.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	var err error
	for i := 0; i < 3 && err == nil; i++ {
		err = d.Tick(time.Millisecond)
	}
	if !errors.Is(err, ErrSlowResponse) {
		t.Fatalf("err = %v, want ErrSlowResponse", err)
	}
}

func TestDriverTransportError(t *testing.T) {
	want := errors.New("pipe broke")
	mb := &fakeMailbox{err: want}
	d := newTestDriver(mb)

	if err := d.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	var err error
	for i := 0; i < 3 && err == nil; i++ {
		err = d.Tick(time.Millisecond)
	}
	if !errors.Is(err, want) {
		t.Fatalf("err = %v, want the transport error", err)
	}
}

func TestDriverBadResponse(t *testing.T) {
	mb := &fakeMailbox{}
	d := newTestDriver(mb)

	if err := d.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	mb.queue = [][]botapi.Response{{{Type: botapi.TypeSetThrust, Value: 999}}}

	var err error
	for i := 0; i < 3 && err == nil; i++ {
		err = d.Tick(time.Millisecond)
	}
	var bad *BadValueError
	if !errors.As(err, &bad) {
		t.Fatalf("err = %v, want a BadValueError", err)
	}
}

func TestDriverQueuesScansUntilStep(t *testing.T) {
	mb := &fakeMailbox{}
	d := newTestDriver(mb)

	if err := d.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	contact := botapi.NewVec2(12, 34)
	d.Scan(contact)

	mb.queue = [][]botapi.Response{{}}
	for i := 0; i < 3; i++ {
		if err := d.Tick(time.Millisecond); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}

	// First exchange: the queued scan goes out right before the step.
	if len(mb.sent) != 3 {
		t.Fatalf("sent %d envelopes, want 3", len(mb.sent))
	}
	if mb.sent[1].Msg.Type != botapi.TypeScan || *mb.sent[1].Msg.ScanPos != contact {
		t.Fatalf("scan envelope = %+v", mb.sent[1])
	}
	if mb.sent[2].Msg.Type != botapi.TypeStep {
		t.Fatalf("step envelope = %+v", mb.sent[2])
	}

	// Second exchange: the scan queue was drained, only a step goes out.
	mb.queue = [][]botapi.Response{{}, {}}
	for i := 0; i < 3; i++ {
		if err := d.Tick(time.Millisecond); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}
	if len(mb.sent) != 4 || mb.sent[3].Msg.Type != botapi.TypeStep {
		t.Fatalf("sent = %+v", mb.sent)
	}
}

func TestDriverKill(t *testing.T) {
	mb := &fakeMailbox{}
	d := newTestDriver(mb)

	if err := d.Kill(); err != nil {
		t.Fatalf("kill: %v", err)
	}
	if len(mb.sent) != 1 || mb.sent[0].Msg.Type != botapi.TypeKill {
		t.Fatalf("sent = %+v", mb.sent)
	}
}
