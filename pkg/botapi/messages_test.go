package botapi

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestLineCodecRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()

	envs := []Envelope{
		{State: BotState{Pos: NewVec2(1, 2), HitPoints: 100}, Msg: InitMessage(cfg)},
		{Msg: StepMessage(0.25)},
		{Msg: ScanMessage(NewVec2(3, 4))},
		{Msg: KillMessage()},
	}
	for _, env := range envs {
		if err := WriteLine(&buf, env); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	// One JSON document per line, pipelineable.
	if got := strings.Count(buf.String(), "\n"); got != len(envs) {
		t.Fatalf("wrote %d lines, want %d", got, len(envs))
	}

	r := bufio.NewReader(&buf)
	got := make([]Envelope, len(envs))
	for i := range got {
		if err := ReadLine(r, &got[i]); err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
	}

	if got[0].Msg.Type != TypeInit || got[0].Msg.Config == nil || *got[0].Msg.Config != cfg {
		t.Fatalf("init = %+v", got[0].Msg)
	}
	if got[0].State.Pos != NewVec2(1, 2) || got[0].State.HitPoints != 100 {
		t.Fatalf("init state = %+v", got[0].State)
	}
	if got[1].Msg.Type != TypeStep || got[1].Msg.Elapsed != 0.25 {
		t.Fatalf("step = %+v", got[1].Msg)
	}
	if got[2].Msg.Type != TypeScan || got[2].Msg.ScanPos == nil || *got[2].Msg.ScanPos != NewVec2(3, 4) {
		t.Fatalf("scan = %+v", got[2].Msg)
	}
	if got[3].Msg.Type != TypeKill {
		t.Fatalf("kill = %+v", got[3].Msg)
	}
}

func TestReadLineRejectsGarbage(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("not json\n"))
	var env Envelope
	if err := ReadLine(r, &env); err == nil {
		t.Fatal("garbage line decoded")
	}
}

func TestResponseListRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	resps := []Response{
		{Type: TypeSetThrust, Value: 5},
		{Type: TypeDebugPrint, Text: "hello"},
	}
	if err := WriteLine(&buf, resps); err != nil {
		t.Fatalf("write: %v", err)
	}

	var got []Response
	if err := ReadLine(bufio.NewReader(&buf), &got); err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 2 || got[0] != resps[0] || got[1] != resps[1] {
		t.Fatalf("responses = %+v", got)
	}
}
