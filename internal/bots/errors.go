package bots

import (
	"errors"
	"fmt"
)

// ErrSlowResponse reports that a controller's backing program had not
// answered the previous exchange by the time the next step came due. The
// simulation never blocks waiting for a slow program; the agent fails
// instead.
var ErrSlowResponse = errors.New("response not ready in time")

// ErrTooManyShots reports more than one shoot command in a single step
// batch.
var ErrTooManyShots = errors.New("too many bullets in one frame")

// BadValueError reports a command whose value fell outside the configured
// range. The command is rejected outright, never clamped.
type BadValueError struct {
	Cmd   string
	Value float64
}

func (e *BadValueError) Error() string {
	return fmt.Sprintf("bad %s value %v", e.Cmd, e.Value)
}
