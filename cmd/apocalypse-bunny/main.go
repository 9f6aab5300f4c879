// Command apocalypse-bunny runs the terminal build of the simulation: a
// tcell screen renders one generated area while the player steers a bunny
// around zombie foxes and carrots.
//
// Grounded on cmd/vi-fighter/main.go's flag/logging/screen-lifecycle shape.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/infiniworld/apocalypse-bunny/audio"
	"github.com/infiniworld/apocalypse-bunny/config"
	"github.com/infiniworld/apocalypse-bunny/event"
	"github.com/infiniworld/apocalypse-bunny/input"
	"github.com/infiniworld/apocalypse-bunny/loop"
	"github.com/infiniworld/apocalypse-bunny/render"
	"github.com/infiniworld/apocalypse-bunny/terminal"
	"github.com/infiniworld/apocalypse-bunny/worldgen"
)

const (
	logDir      = "logs"
	logFileName = "apocalypse-bunny.log"
)

// setupLogging points log/slog at a file when debug is set, and discards
// everything otherwise so gameplay output never corrupts the terminal
// screen tcell owns.
func setupLogging(debug bool) *os.File {
	if !debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to create log directory: %v\n", err)
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil
	}
	logPath := filepath.Join(logDir, logFileName)
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to open log file: %v\n", err)
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug})))
	slog.Info("apocalypse-bunny started")
	return logFile
}

func main() {
	debug := flag.Bool("debug", false, "enable debug logging to logs/apocalypse-bunny.log")
	configPath := flag.String("config", "", "path to a TOML config file (defaults baked in if omitted)")
	seedFlag := flag.Int64("seed", 0, "world generation seed (0 uses the config seed, or wall-clock time if that is also 0)")
	flag.Parse()

	logFile := setupLogging(*debug)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config %q: %v\n", *configPath, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	seed := *seedFlag
	if seed == 0 {
		seed = cfg.World.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	bus := event.NewBus()

	screen, err := terminal.NewScreen(bus)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Close()

	clock := loop.NewClock()
	gameLoop := loop.NewGameLoop(bus, clock)

	w, bunny, spawners := worldgen.GenerateWorld(bus, cfg.World.Width, cfg.World.Height, cfg.World.ObstacleDensity, seed)
	keyboard := input.NewGameScreenKeyboardController(bus)
	player := input.NewPlayerController(bus)
	renderer := render.NewRenderer(bus, screen.Tcell(), 0, cfg.Display.ShowHUD)
	cues := audio.NewCues(bus, cfg.Audio.Enabled, cfg.Audio.Volume)

	bus.Post(event.ControlEntityEvent{EntityID: bunny.ID})
	bus.Post(event.PausePhysicsRequest{Paused: false})
	bus.Pump()

	stop := make(chan struct{})
	go screen.Run(stop)

	gameLoop.Run()
	close(stop)

	// The bus holds every subscriber above through a weak pointer, so
	// nothing here keeps them reachable once their last ordinary use has
	// passed; gameLoop.Run() is the only thing that actually needs them to
	// survive, and it reaches them purely through the bus. KeepAlive pins
	// them until Run returns instead of letting the GC drop one mid-game.
	runtime.KeepAlive(w)
	runtime.KeepAlive(spawners)
	runtime.KeepAlive(keyboard)
	runtime.KeepAlive(player)
	runtime.KeepAlive(renderer)
	runtime.KeepAlive(cues)
}
