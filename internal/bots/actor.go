package bots

import (
	"log"
	"sync"

	"battlebots/pkg/botapi"
	"battlebots/pkg/botkit"
)

// Actor mounts a botkit brain in-process: the brain runs in its own
// goroutine in a select loop over an event mailbox and a stop channel,
// behind the same controller interface as an external process.
type Actor struct {
	driver
	stop     chan struct{}
	stopOnce sync.Once
}

// NewActor starts the brain's goroutine and returns the controller.
func NewActor(name string, pos botapi.Vec2, cfg botapi.Config, brain botkit.Controller, logger *log.Logger) *Actor {
	mb := &chanMailbox{
		events: make(chan botapi.Envelope, queueDepth),
		resps:  make(chan []botapi.Response, queueDepth),
	}
	a := &Actor{
		driver: newDriver(name, pos, cfg, mb, logger),
		stop:   make(chan struct{}),
	}
	go a.loop(brain, mb)
	return a
}

// queueDepth matches the relay's queue sizing.
const queueDepth = 64

// Kill delivers the kill event, then releases the brain goroutine. The
// stop channel makes the loop drain outstanding events before leaving, so
// the brain always observes its kill.
func (a *Actor) Kill() error {
	if err := a.driver.Kill(); err != nil {
		return err
	}
	a.stopOnce.Do(func() { close(a.stop) })
	return nil
}

// loop is the actor's message-select loop.
func (a *Actor) loop(brain botkit.Controller, mb *chanMailbox) {
	sess := botkit.NewSession(brain)
	for {
		select {
		case <-a.stop:
			// Drain what is already queued so the kill event is not
			// lost, discarding responses nobody will read.
			for {
				select {
				case env := <-mb.events:
					if _, alive, _ := sess.Handle(env); !alive {
						return
					}
				default:
					return
				}
			}
		case env := <-mb.events:
			resps, alive, err := sess.Handle(env)
			if err != nil {
				resps = nil
			}
			select {
			case mb.resps <- resps:
			case <-a.stop:
				return
			}
			if !alive {
				return
			}
		}
	}
}

// chanMailbox is the in-process counterpart of the relay: the same two
// queues, as plain channels.
type chanMailbox struct {
	events chan botapi.Envelope
	resps  chan []botapi.Response
}

func (m *chanMailbox) Send(state botapi.BotState, msg botapi.Message) {
	m.events <- botapi.Envelope{State: state, Msg: msg}
}

func (m *chanMailbox) TryRecv() ([]botapi.Response, bool) {
	select {
	case resps := <-m.resps:
		return resps, true
	default:
		return nil, false
	}
}

func (m *chanMailbox) Err() error { return nil }
