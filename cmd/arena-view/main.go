package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/oliverbestmann/arena"
	"github.com/oliverbestmann/arena/debugdraw"
	"github.com/oliverbestmann/arena/scenario"
)

func main() {
	scenarioPath := flag.String("scenario", "", "scenario file to show, reloaded on change")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q: %s\n", *logLevel, err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	v := &viewer{
		logger:       logger,
		scenarioPath: *scenarioPath,
		overlay:      debugdraw.NewOverlay(),
	}

	if err := v.reload(); err != nil {
		logger.Error("Failed to load scenario", slog.String("err", err.Error()))
		os.Exit(1)
	}

	if v.scenarioPath != "" {
		watcher, err := scenario.NewWatcher(filepath.Dir(v.scenarioPath))
		if err != nil {
			logger.Warn("Hot reload disabled", slog.String("err", err.Error()))
		} else {
			defer func() { _ = watcher.Close() }()
			v.watcher = watcher
		}
	}

	ebiten.SetWindowTitle("arena")
	ebiten.SetWindowSize(960, 600)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil {
		logger.Error("Viewer failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

type viewer struct {
	logger       *slog.Logger
	scenarioPath string
	watcher      *scenario.Watcher

	scenario  *scenario.Scenario
	app       *arena.App
	installed *scenario.Installed
	overlay   *debugdraw.Overlay

	paused bool
}

func (v *viewer) reload() error {
	var sc *scenario.Scenario
	var err error

	if v.scenarioPath == "" {
		sc, err = scenario.LoadBuiltin("duel")
	} else {
		sc, err = scenario.LoadFile(v.scenarioPath)
	}

	if err != nil {
		return err
	}

	app := &arena.App{}
	installed := sc.Install(app, v.logger)

	v.scenario = sc
	v.app = app
	v.installed = installed
	v.overlay = debugdraw.NewOverlay()

	return nil
}

func (v *viewer) Update() error {
	v.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := v.reload(); err != nil {
			v.logger.Warn("Reload failed", slog.String("err", err.Error()))
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.paused = !v.paused
	}

	switch {
	case !v.paused:
		v.app.Update(time.Second / time.Duration(ebiten.TPS()))

	case inpututil.IsKeyJustPressed(ebiten.KeyPeriod):
		// single step while paused
		v.app.Step()
	}

	return nil
}

func (v *viewer) pollWatcher() {
	if v.watcher == nil {
		return
	}

	for {
		select {
		case name, ok := <-v.watcher.Events:
			if !ok {
				v.watcher = nil
				return
			}

			if filepath.Clean(name) != filepath.Clean(v.scenarioPath) {
				continue
			}

			if err := v.reload(); err != nil {
				v.logger.Warn("Reload failed, keeping previous scenario", slog.String("err", err.Error()))
				continue
			}

			v.logger.Info("Scenario reloaded", slog.String("path", name))

		case err, ok := <-v.watcher.Errors:
			if ok {
				v.logger.Warn("Watching scenario failed", slog.String("err", err.Error()))
			}

		default:
			return
		}
	}
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x18, G: 0x18, B: 0x20, A: 0xff})

	v.overlay.Draw(screen, v.app.World(), v.installed.Engine, v.scenario.Bounds())

	stats := v.app.Stats()

	row := 0
	for _, name := range stats.Order {
		t := stats.ByName[name]

		text := fmt.Sprintf("%-24s runs=%5d, latest:%6.2fms, max:%6.2fms, avg:%6.2fms",
			name,
			t.Count,
			t.Latest.Seconds()*1000,
			t.Max.Seconds()*1000,
			t.MovingAverage.Seconds()*1000,
		)

		ebitenutil.DebugPrintAt(screen, text, 16, 16+16*row)
		row += 1
	}

	status := fmt.Sprintf("%s  entities=%d  [space] pause  [.] step  [r] reload",
		v.scenario.Name, v.app.World().Len())

	if v.paused {
		status += "  PAUSED"
	}

	ebitenutil.DebugPrintAt(screen, status, 16, screen.Bounds().Dy()-24)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
