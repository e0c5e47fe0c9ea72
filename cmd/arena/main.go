package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/exec"
	"time"

	"battlebots/internal/app"
	"battlebots/internal/bots"
	"battlebots/internal/config"
	"battlebots/internal/core"
	"battlebots/internal/sim"
	"battlebots/internal/spectate"
	"battlebots/pkg/botapi"
)

// mainThreads names the supervised threads of the top-level coordinator in
// spawn order.
var mainThreads = []string{"world", "agents"}

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	var overrides config.Overrides
	overrides.Bind(flag.CommandLine)
	flag.Parse()

	logger := log.New(os.Stdout, "[arena] ", log.LstdFlags|log.Lmicroseconds)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg.Apply(overrides)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger.Printf("starting robot programs...")
	ctls, names, err := buildControllers(cfg, logger)
	if err != nil {
		log.Fatalf("spawn robots: %v", err)
	}

	logger.Printf("starting the simulation with %d robots", len(ctls))
	world, err := sim.NewWorld(cfg.Sim, ctls)
	if err != nil {
		log.Fatalf("world: %v", err)
	}
	world.EnableScans(func(s botapi.BotState) (botapi.Vec2, float64) {
		return s.Pos, s.RadarHeading
	})

	// One coordinated thread per robot.
	agentCoord := core.NewCoordinator[string]()
	for _, a := range world.Agents() {
		a := a
		agentCoord.Spawn(func() (string, error) {
			return "agent " + a.ID(), a.Run(world.TickLock())
		})
	}

	// The world and the robots' umbrella run under the top-level
	// coordinator; the draw loop itself must stay on the main goroutine
	// for ebiten's sake.
	mainCoord := core.NewCoordinator[string]()
	mainCoord.Spawn(func() (string, error) { return "world", world.Run() })
	mainCoord.Spawn(func() (string, error) {
		for {
			out, ok := agentCoord.WaitNext()
			if !ok {
				return "agents", nil
			}
			if out.Panicked() {
				return "agents", fmt.Errorf("robot thread panicked: %v", out.Panic)
			}
			if out.Err != nil {
				return "agents", out.Err
			}
		}
	})

	if cfg.SpectateAddr != "" {
		srv := spectate.NewServer(spectate.NewWorldSource(world, names), 50*time.Millisecond, logger)
		go func() {
			if err := srv.ListenAndServe(cfg.SpectateAddr); err != nil {
				logger.Printf("spectate: %v", err)
			}
		}()
	}

	// The first supervised thread to finish takes the whole run down. A
	// failure is fatal immediately: once a party is gone the barriers can
	// no longer complete, so there is no orderly drain to wait for.
	quit := make(chan struct{})
	clean := make(chan bool, 1)
	go func() {
		if out, ok := mainCoord.WaitNext(); ok && report(logger, out) {
			os.Exit(1)
		}
		world.Stop()
		close(quit)
		ok := true
		for _, out := range mainCoord.WaitAll() {
			if out != nil && report(logger, *out) {
				ok = false
			}
		}
		clean <- ok
	}()

	if err := app.Run(app.New(world, cfg.Sim, cfg.Scale, names, quit)); err != nil {
		log.Fatalf("draw loop: %v", err)
	}

	// Normal path: the window (or headless signal wait) ended first.
	world.Stop()
	if !<-clean {
		os.Exit(1)
	}
	logger.Printf("goodbye")
}

// report logs one top-level outcome and reports whether it was a failure.
func report(logger *log.Logger, out core.Outcome[string]) bool {
	name := fmt.Sprintf("thread %d", out.ID)
	if out.ID < len(mainThreads) {
		name = mainThreads[out.ID]
	}
	switch {
	case out.Panicked():
		logger.Printf("%s panicked: %v", name, out.Panic)
		return true
	case out.Err != nil:
		logger.Printf("%s failed: %v", name, out.Err)
		return true
	default:
		logger.Printf("%s finished", name)
		return false
	}
}

// buildControllers spawns every configured robot's backend and returns the
// controllers with their display names, in a fixed order.
func buildControllers(cfg config.Config, logger *log.Logger) ([]sim.Controller[botapi.BotState], []string, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	var ctls []sim.Controller[botapi.BotState]
	var names []string

	for _, spec := range cfg.Bots {
		for i := 0; i < spec.Count; i++ {
			name := fmt.Sprintf("%s-%d", spec.Name, i)
			pos := botapi.NewVec2(
				rng.Float64()*cfg.Sim.WorldSize.X,
				rng.Float64()*cfg.Sim.WorldSize.Y,
			)

			switch spec.Backend {
			case "process":
				cmd := exec.Command(spec.Command[0], spec.Command[1:]...)
				cmd.Stderr = os.Stderr
				stdin, err := cmd.StdinPipe()
				if err != nil {
					return nil, nil, fmt.Errorf("%s: %w", name, err)
				}
				stdout, err := cmd.StdoutPipe()
				if err != nil {
					return nil, nil, fmt.Errorf("%s: %w", name, err)
				}
				if err := cmd.Start(); err != nil {
					return nil, nil, fmt.Errorf("%s: start %q: %w", name, spec.Command[0], err)
				}
				ctls = append(ctls, bots.NewProcess(name, pos, cfg.Sim, stdin, stdout, logger))

			case "actor":
				factory, ok := bots.Brains()[spec.Brain]
				if !ok {
					return nil, nil, fmt.Errorf("%s: unknown brain %q", name, spec.Brain)
				}
				ctls = append(ctls, bots.NewActor(name, pos, cfg.Sim, factory(), logger))
			}
			names = append(names, name)
		}
	}
	return ctls, names, nil
}
