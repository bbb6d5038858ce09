package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tilesight/config"
	"github.com/lixenwraith/tilesight/control"
	"github.com/lixenwraith/tilesight/logger"
)

var (
	configPath = flag.String("config", "tilesight.toml", "Path to the TOML settings file")
	debugFlag  = flag.Bool("debug", false, "Log at debug level")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logFile, err := setupLogging(cfg.Log, *debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			handleCrash(screen, r)
		}
		screen.Fini()
	}()
	screen.EnableMouse()
	screen.HideCursor()

	g, err := newGame(cfg, screen)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	g.run(control.NewPoller(screen, cfg.Input.PollTimeout.Duration))
	logger.Component("game").WithField("frames", g.frames).Info("exit")
}
