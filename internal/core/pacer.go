package core

import "time"

// Pacer holds a loop to a steady tick duration by sleeping off whatever
// remains of each tick's budget.
type Pacer struct {
	step time.Duration
	next time.Time
}

// NewPacer constructs a Pacer with the given tick duration.
func NewPacer(step time.Duration) *Pacer {
	if step <= 0 {
		step = time.Second / 60
	}
	return &Pacer{step: step}
}

// Wait sleeps until the current tick's deadline, then advances the deadline
// by exactly one step. A tick that overran its budget is not caught up:
// the deadline still moves by a single step, so lost frames stay lost
// instead of being fast-forwarded through.
func (p *Pacer) Wait() {
	now := time.Now()
	if p.next.IsZero() {
		p.next = now.Add(p.step)
	}
	if now.Before(p.next) {
		time.Sleep(p.next.Sub(now))
	}
	p.next = p.next.Add(p.step)
}
