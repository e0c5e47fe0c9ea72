// Package config loads the simulator's configuration from YAML files and
// command-line overrides.
package config

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"battlebots/pkg/botapi"
)

// BotSpec describes one group of identical robots to spawn.
type BotSpec struct {
	// Name labels the group in logs and the spectate feed.
	Name string `yaml:"name"`

	// Backend selects how the robots think: "process" runs Command as an
	// external program per robot, "actor" mounts the registered Brain
	// in-process.
	Backend string `yaml:"backend"`

	// Command is the argv of the external program (process backend).
	Command []string `yaml:"command,omitempty"`

	// Brain names a registered in-process brain (actor backend).
	Brain string `yaml:"brain,omitempty"`

	// Count is how many robots of this group to spawn.
	Count int `yaml:"count"`
}

// Config is the full simulator configuration.
type Config struct {
	// Sim holds the parameters shared with every robot.
	Sim botapi.Config `yaml:"sim"`

	// Bots is the roster of robot groups.
	Bots []BotSpec `yaml:"bots"`

	// SpectateAddr is the websocket feed's listen address; empty disables
	// the feed.
	SpectateAddr string `yaml:"spectate_addr"`

	// Scale is the rendering scale in pixels per world unit.
	Scale float64 `yaml:"scale"`

	// Seed drives spawn-position scattering.
	Seed int64 `yaml:"seed"`
}

// Default returns the configuration used when no file is supplied: a
// handful of in-process drift robots.
func Default() Config {
	return Config{
		Sim: botapi.DefaultConfig(),
		Bots: []BotSpec{
			{Name: "drift", Backend: "actor", Brain: "drift", Count: 8},
		},
		SpectateAddr: "",
		Scale:        6,
		Seed:         42,
	}
}

// Load reads the configuration file at path, merged over defaults. An
// empty path yields the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first problem with the configuration.
func (c *Config) Validate() error {
	if err := c.Sim.Validate(); err != nil {
		return fmt.Errorf("sim: %w", err)
	}
	if len(c.Bots) == 0 {
		return fmt.Errorf("no bots configured")
	}
	for i, spec := range c.Bots {
		switch spec.Backend {
		case "process":
			if len(spec.Command) == 0 {
				return fmt.Errorf("bots[%d] %q: process backend without command", i, spec.Name)
			}
		case "actor":
			if spec.Brain == "" {
				return fmt.Errorf("bots[%d] %q: actor backend without brain", i, spec.Name)
			}
		default:
			return fmt.Errorf("bots[%d] %q: unknown backend %q", i, spec.Name, spec.Backend)
		}
		if spec.Count < 0 {
			return fmt.Errorf("bots[%d] %q: negative count", i, spec.Name)
		}
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale %v not positive", c.Scale)
	}
	return nil
}

// Overrides are the command-line parameters that take precedence over the
// configuration file. Zero values mean "keep the configured value".
type Overrides struct {
	TPS      int
	Spectate string
	Scale    float64
	Seed     int64
	Program  string
	Count    int
}

// Bind attaches the overrides to the provided FlagSet.
func (o *Overrides) Bind(fs *flag.FlagSet) {
	fs.IntVar(&o.TPS, "tps", 0, "ticks per second")
	fs.StringVar(&o.Spectate, "spectate", "", "spectate websocket listen address")
	fs.Float64Var(&o.Scale, "scale", 0, "pixels per world unit")
	fs.Int64Var(&o.Seed, "seed", 0, "seed for spawn positions")
	fs.StringVar(&o.Program, "botprg", "", "external bot program replacing the configured roster")
	fs.IntVar(&o.Count, "bots", 0, "number of robots")
}

// Apply folds the set overrides into the configuration.
func (c *Config) Apply(o Overrides) {
	if o.TPS > 0 {
		c.Sim.TicksPerSecond = o.TPS
	}
	if o.Spectate != "" {
		c.SpectateAddr = o.Spectate
	}
	if o.Scale > 0 {
		c.Scale = o.Scale
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.Program != "" {
		total := 0
		for _, spec := range c.Bots {
			total += spec.Count
		}
		if total == 0 {
			total = 1
		}
		c.Bots = []BotSpec{{Name: "bot", Backend: "process", Command: []string{o.Program}, Count: total}}
	}
	if o.Count > 0 {
		for i := range c.Bots {
			c.Bots[i].Count = o.Count
		}
	}
}
