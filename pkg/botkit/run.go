package botkit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"battlebots/pkg/botapi"
)

// Run drives the controller over standard input and output until the
// simulation sends kill or closes the stream. It is the whole main
// function of a typical robot program.
func Run(ctl Controller) error {
	return RunIO(ctl, os.Stdin, os.Stdout)
}

// RunIO is Run over an arbitrary reader/writer pair. Every incoming line
// is answered with exactly one response-list line, kill included.
func RunIO(ctl Controller, r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)
	sess := NewSession(ctl)

	for {
		var env botapi.Envelope
		if err := botapi.ReadLine(br, &env); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("botkit: %w", err)
		}

		resps, alive, err := sess.Handle(env)
		if err != nil {
			return fmt.Errorf("botkit: %w", err)
		}

		if err := botapi.WriteLine(bw, resps); err != nil {
			return fmt.Errorf("botkit: %w", err)
		}
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("botkit: flush: %w", err)
		}

		if !alive {
			return nil
		}
	}
}
