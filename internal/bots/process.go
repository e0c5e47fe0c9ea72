package bots

import (
	"io"
	"log"

	"battlebots/internal/relay"
	"battlebots/pkg/botapi"
)

// Process is a controller whose decisions come from an external program
// over a writable input stream and a readable line-buffered output stream,
// bridged by a relay so the tick loop never blocks on the program.
type Process struct {
	driver
}

// NewProcess wraps the streams of an already-spawned external program and
// starts its relay goroutine. The relay ends when the program's streams
// close; it has no other cancellation.
func NewProcess(name string, pos botapi.Vec2, cfg botapi.Config, w io.Writer, r io.Reader, logger *log.Logger) *Process {
	rl := relay.New(w, r)
	mb := &relayMailbox{relay: rl, failed: make(chan error, 1)}
	go func() {
		if err := rl.Run(); err != nil {
			mb.failed <- err
		}
	}()
	return &Process{driver: newDriver(name, pos, cfg, mb, logger)}
}

// relayMailbox adapts a relay to the mailbox interface and remembers the
// relay's terminal error.
type relayMailbox struct {
	relay  *relay.Relay
	failed chan error
	err    error
}

func (m *relayMailbox) Send(state botapi.BotState, msg botapi.Message) {
	m.relay.Send(state, msg)
}

func (m *relayMailbox) TryRecv() ([]botapi.Response, bool) {
	return m.relay.TryRecv()
}

func (m *relayMailbox) Err() error {
	if m.err == nil {
		select {
		case m.err = <-m.failed:
		default:
		}
	}
	return m.err
}
