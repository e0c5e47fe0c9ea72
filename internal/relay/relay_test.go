package relay

import (
	"bufio"
	"io"
	"testing"
	"time"

	"battlebots/pkg/botapi"
)

func recvOne(t *testing.T, rl *Relay) []botapi.Response {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if resps, ok := rl.TryRecv(); ok {
			return resps
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("no response arrived in time")
	return nil
}

func TestRelayPairsRequestsWithResponses(t *testing.T) {
	procIn, worldOut := io.Pipe()
	worldIn, procOut := io.Pipe()
	defer worldOut.Close()
	defer procOut.Close()

	rl := New(worldOut, worldIn)
	go rl.Run()

	// Stand-in program: answer every envelope with one response echoing
	// the step's elapsed value.
	go func() {
		br := bufio.NewReader(procIn)
		bw := bufio.NewWriter(procOut)
		for {
			var env botapi.Envelope
			if err := botapi.ReadLine(br, &env); err != nil {
				return
			}
			resps := []botapi.Response{{Type: botapi.TypeDebugPrint, Value: env.Msg.Elapsed}}
			if err := botapi.WriteLine(bw, resps); err != nil {
				return
			}
			if err := bw.Flush(); err != nil {
				return
			}
		}
	}()

	const n = 5
	for i := 0; i < n; i++ {
		rl.Send(botapi.BotState{}, botapi.StepMessage(float64(i+1)))
	}

	for i := 0; i < n; i++ {
		resps := recvOne(t, rl)
		if len(resps) != 1 || resps[0].Value != float64(i+1) {
			t.Fatalf("response %d = %+v", i, resps)
		}
	}
	if resps, ok := rl.TryRecv(); ok {
		t.Fatalf("unexpected extra response %+v", resps)
	}
}

func TestRelayReportsClosedStream(t *testing.T) {
	procIn, worldOut := io.Pipe()
	worldIn, procOut := io.Pipe()
	defer worldOut.Close()

	errc := make(chan error, 1)
	rl := New(worldOut, worldIn)
	go func() { errc <- rl.Run() }()

	// The program reads one envelope and dies without answering.
	go func() {
		br := bufio.NewReader(procIn)
		var env botapi.Envelope
		botapi.ReadLine(br, &env)
		procOut.Close()
	}()

	rl.Send(botapi.BotState{}, botapi.StepMessage(1))

	select {
	case err := <-errc:
		if err == nil {
			t.Fatal("Run returned nil after the stream closed")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not notice the closed stream")
	}
}
