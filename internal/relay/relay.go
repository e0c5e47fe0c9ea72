// Package relay bridges the synchronous tick loop to a slow, blocking
// external bot process. A single background loop drains an outbound queue
// into the process and fills an inbound queue from it, so the owning
// controller only ever touches non-blocking queue operations.
package relay

import (
	"bufio"
	"fmt"
	"io"

	"battlebots/pkg/botapi"
)

// queueDepth sizes both queues. The owning controller fails an exchange
// after a single missed response, so real depth stays near one; the slack
// only covers out-of-band scan events.
const queueDepth = 64

// Relay is an external process's message and response relay. Exactly one
// outbound envelope corresponds to exactly one inbound response list.
type Relay struct {
	w *bufio.Writer
	r *bufio.Reader

	outbound chan botapi.Envelope
	inbound  chan []botapi.Response
}

// New wraps the writer and reader connected to an external bot process.
// Run must be started for messages to move.
func New(w io.Writer, r io.Reader) *Relay {
	return &Relay{
		w:        bufio.NewWriter(w),
		r:        bufio.NewReader(r),
		outbound: make(chan botapi.Envelope, queueDepth),
		inbound:  make(chan []botapi.Response, queueDepth),
	}
}

// Run relays messages until a stream fails or closes. It has no
// cancellation of its own: when the external process exits, the read side
// returns an error and Run ends; otherwise the loop parks on the outbound
// queue and is simply abandoned at shutdown.
func (rl *Relay) Run() error {
	for env := range rl.outbound {
		if err := botapi.WriteLine(rl.w, env); err != nil {
			return fmt.Errorf("relay: %w", err)
		}
		if err := rl.w.Flush(); err != nil {
			return fmt.Errorf("relay: flush: %w", err)
		}

		var resps []botapi.Response
		if err := botapi.ReadLine(rl.r, &resps); err != nil {
			return fmt.Errorf("relay: %w", err)
		}
		rl.inbound <- resps
	}
	return nil
}

// Send enqueues one envelope for the external process. It does not wait
// for the write to happen, and blocks only if the process has fallen a
// full queue behind.
func (rl *Relay) Send(state botapi.BotState, msg botapi.Message) {
	rl.outbound <- botapi.Envelope{State: state, Msg: msg}
}

// Pending reports how many response lists have arrived and not been
// received yet.
func (rl *Relay) Pending() int { return len(rl.inbound) }

// TryRecv pops the next response list if one has already arrived.
func (rl *Relay) TryRecv() ([]botapi.Response, bool) {
	select {
	case resps := <-rl.inbound:
		return resps, true
	default:
		return nil, false
	}
}
