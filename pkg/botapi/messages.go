package botapi

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// Message type tags, world to bot.
const (
	// TypeInit is sent once before the first step, carrying the config.
	TypeInit = "init"
	// TypeStep is sent on each external step.
	TypeStep = "step"
	// TypeScan is sent when an enemy robot crosses the radar beam.
	TypeScan = "scan"
	// TypeKill is sent when the robot dies or the simulation ends.
	TypeKill = "kill"
)

// Response type tags, bot to world.
const (
	// TypeSetThrust sets the thrust. Values outside the configured thrust
	// limits are rejected by the world.
	TypeSetThrust = "set_thrust"
	// TypeSetTurnRate sets the body turn rate.
	TypeSetTurnRate = "set_turn_rate"
	// TypeSetGunTurnRate sets the gun turn rate, relative to the body.
	TypeSetGunTurnRate = "set_gun_turn_rate"
	// TypeSetRadarTurnRate sets the radar turn rate, relative to the body.
	TypeSetRadarTurnRate = "set_radar_turn_rate"
	// TypeShoot fires a bullet along the gun heading with the given power.
	// Only one shoot response may be issued per step.
	TypeShoot = "shoot"
	// TypeDebugPrint prints a message to the simulation console.
	TypeDebugPrint = "debug_print"
)

// Message is one world-to-bot message. Exactly the fields belonging to Type
// are populated.
type Message struct {
	Type    string  `json:"type"`
	Config  *Config `json:"config,omitempty"`
	Elapsed float64 `json:"elapsed,omitempty"`
	ScanPos *Vec2   `json:"scan_pos,omitempty"`
}

// InitMessage builds the init message carrying the world configuration.
func InitMessage(cfg Config) Message { return Message{Type: TypeInit, Config: &cfg} }

// StepMessage builds a step message with the seconds elapsed since the
// previous step.
func StepMessage(elapsed float64) Message { return Message{Type: TypeStep, Elapsed: elapsed} }

// ScanMessage builds a scan message with the scanned enemy's position.
func ScanMessage(pos Vec2) Message { return Message{Type: TypeScan, ScanPos: &pos} }

// KillMessage builds the final kill message.
func KillMessage() Message { return Message{Type: TypeKill} }

// Response is one bot-to-world command. Value is used by the set_* and
// shoot responses, Text by debug_print.
type Response struct {
	Type  string  `json:"type"`
	Value float64 `json:"value,omitempty"`
	Text  string  `json:"text,omitempty"`
}

// Envelope is one outbound wire line: the robot's public state paired with
// a message.
type Envelope struct {
	State BotState `json:"state"`
	Msg   Message  `json:"msg"`
}

// WriteLine encodes v as a single newline-terminated JSON line.
func WriteLine(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode line: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	return nil
}

// ReadLine reads one newline-terminated JSON line from r into v.
func ReadLine(r *bufio.Reader, v any) error {
	line, err := r.ReadBytes('\n')
	if err != nil {
		return fmt.Errorf("read line: %w", err)
	}
	if err := json.Unmarshal(line, v); err != nil {
		return fmt.Errorf("decode line: %w", err)
	}
	return nil
}
