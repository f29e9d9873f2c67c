package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/oliverbestmann/arena"
	"github.com/oliverbestmann/arena/gm"
	"github.com/oliverbestmann/arena/scenario"
	"github.com/pkg/profile"
)

func main() {
	scenarioPath := flag.String("scenario", "", "scenario file to simulate, defaults to the builtin duel")
	duration := flag.Duration("duration", 10*time.Second, "simulated time")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	profileMode := flag.String("profile", "", "write a cpu or mem profile")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q: %s\n", *logLevel, err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		fmt.Fprintf(os.Stderr, "unknown profile mode %q\n", *profileMode)
		os.Exit(2)
	}

	if err := run(logger, *scenarioPath, *duration); err != nil {
		logger.Error("Simulation failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, scenarioPath string, duration time.Duration) error {
	sc, err := loadScenario(scenarioPath)
	if err != nil {
		return err
	}

	var app arena.App
	installed := sc.Install(&app, logger)

	var contacts int
	started := installed.Engine.ContactStarted().Reader()

	app.AddSystems(arena.Last, func(*arena.World, *arena.Commands, arena.FixedTime) {
		for _, msg := range started.Read() {
			contacts += 1
			logger.Debug("Contact",
				slog.Any("a", msg.A),
				slog.Any("b", msg.B),
				slog.Any("position", msg.Position),
			)
		}
	})

	// advance in frames of 60hz, the app runs the fixed steps in between
	frame := time.Second / 60

	var steps int
	for elapsed := time.Duration(0); elapsed < duration; elapsed += frame {
		steps += app.Update(frame)
	}

	logger.Info("Simulation finished",
		slog.String("scenario", sc.Name),
		slog.Int("steps", steps),
		slog.Int("contacts", contacts),
		slog.Int("entities", app.World().Len()),
	)

	reportBodies(logger, app.World(), sc.Bounds())
	app.Stats().Log(logger)

	return nil
}

func loadScenario(path string) (*scenario.Scenario, error) {
	if path == "" {
		return scenario.LoadBuiltin("duel")
	}

	return scenario.LoadFile(path)
}

func reportBodies(logger *slog.Logger, world *arena.World, bounds gm.Rect) {
	for entityId, body := range world.Bodies() {
		attrs := []any{
			slog.Any("entity", entityId),
			slog.String("name", body.Name),
			slog.Any("position", body.Transform.Translation),
			slog.Any("velocity", body.RigidBody.Velocity),
			slog.Bool("inside", bounds.Contains(body.Transform.Translation)),
		}

		if bounce, ok := body.RigidBody.Policy.(*arena.Bounce); ok {
			if remaining, limited := bounce.MaxBounces.Get(); limited {
				attrs = append(attrs, slog.Int("bounces", int(remaining)))
			}
		}

		logger.Info("Body", attrs...)
	}
}

