// Package bots provides the controller backends that connect robots to
// their decision-making programs: external processes over pipes and
// in-process botkit brains behind an actor loop. Both share one
// tick/step cadence and one command validation path.
package bots

import (
	"fmt"
	"log"
	"time"

	"battlebots/pkg/botapi"
)

// mailbox abstracts the asynchronous channel to a robot's decision-making
// program, external or in-process.
type mailbox interface {
	// Send enqueues one envelope without waiting for it to be handled.
	Send(state botapi.BotState, msg botapi.Message)

	// TryRecv pops the next response list if one has already arrived.
	TryRecv() ([]botapi.Response, bool)

	// Err reports, without blocking, a transport failure if one happened.
	Err() error
}

// driver implements the cadence both backends share: physics on every
// tick, one exchange with the program every TicksPerStep ticks. It is
// mutated only under its owning agent's lock.
type driver struct {
	name  string
	cfg   botapi.Config
	state botapi.BotState

	mb     mailbox
	logger *log.Logger

	ticksUntilStep int
	sinceStep      time.Duration
	outstanding    int
	pendingScans   []botapi.Vec2
}

func newDriver(name string, pos botapi.Vec2, cfg botapi.Config, mb mailbox, logger *log.Logger) driver {
	return driver{
		name: name,
		cfg:  cfg,
		state: botapi.BotState{
			Pos:        pos,
			HitPoints:  cfg.StartHitPoints,
			ShootPower: cfg.ShootPowerMax,
		},
		mb:             mb,
		logger:         logger,
		ticksUntilStep: cfg.TicksPerStep,
	}
}

// Init announces the configuration to the program.
func (d *driver) Init() error {
	d.send(botapi.InitMessage(d.cfg))
	return nil
}

// Tick advances physics by one tick and, on step boundaries, exchanges
// messages with the program.
func (d *driver) Tick(elapsed time.Duration) error {
	d.sinceStep += elapsed
	d.ticksUntilStep--
	if d.ticksUntilStep <= 0 {
		d.ticksUntilStep = d.cfg.TicksPerStep
		if err := d.exchange(); err != nil {
			return err
		}
	}
	integrate(&d.state, d.cfg, elapsed.Seconds())
	return nil
}

// Kill sends the final kill message. The program's answer is not waited
// for.
func (d *driver) Kill() error {
	d.send(botapi.KillMessage())
	return nil
}

// PublicData returns a copy of the robot's public state.
func (d *driver) PublicData() botapi.BotState { return d.state }

// Scan queues a radar contact for the next exchange.
func (d *driver) Scan(pos botapi.Vec2) {
	d.pendingScans = append(d.pendingScans, pos)
}

func (d *driver) send(msg botapi.Message) {
	d.mb.Send(d.state, msg)
	d.outstanding++
}

// exchange drains and applies every response list already delivered, then
// sends queued scans and the next step. Nothing delivered while an
// exchange is outstanding means the program is too slow; that is fatal to
// this robot, and to nothing else.
func (d *driver) exchange() error {
	if err := d.mb.Err(); err != nil {
		return fmt.Errorf("%s: %w", d.name, err)
	}

	got := 0
	for {
		resps, ok := d.mb.TryRecv()
		if !ok {
			break
		}
		got++
		d.outstanding--
		if err := applyBatch(&d.state, d.cfg, resps, d.logf); err != nil {
			return fmt.Errorf("%s: %w", d.name, err)
		}
	}
	if got == 0 && d.outstanding > 0 {
		return fmt.Errorf("%s: %w", d.name, ErrSlowResponse)
	}

	for _, pos := range d.pendingScans {
		d.send(botapi.ScanMessage(pos))
	}
	d.pendingScans = d.pendingScans[:0]

	d.send(botapi.StepMessage(d.sinceStep.Seconds()))
	d.sinceStep = 0
	return nil
}

func (d *driver) logf(format string, args ...any) {
	d.logger.Printf("bot %s: %s", d.name, fmt.Sprintf(format, args...))
}
