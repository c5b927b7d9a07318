package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"github.com/jennis0/pdf2vtt/internal/config"
	"github.com/jennis0/pdf2vtt/internal/observability"
	"github.com/jennis0/pdf2vtt/internal/state"
	"github.com/jennis0/pdf2vtt/internal/statblock"
	"github.com/jennis0/pdf2vtt/internal/ui"
	"github.com/jennis0/pdf2vtt/internal/ui/theme"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalf("configuration error: %v", err)
	}

	logger, closer, err := observability.OpenFile(cfg.LogFile, "lazystatblock", cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	statblocks, err := statblock.LoadAll(ctx, cfg.Files...)
	if err != nil {
		logger.Errorf("load statblocks: %v", err)
		log.Fatalf("error loading statblocks: %v", err)
	}
	logger.Infof("loaded %d statblocks from %d files", len(statblocks), len(cfg.Files))

	st, err := state.Load(cfg.StatePath)
	if err != nil {
		logger.Errorf("load state %s: %v", cfg.StatePath, err)
		st = state.State{}
	}

	theme.Apply()
	browser := ui.New(statblocks, cfg, st, logger)
	if err := browser.Run(); err != nil {
		logger.Errorf("ui stopped: %v", err)
		log.Fatalf("ui error: %v", err)
	}
	if err := state.Save(cfg.StatePath, browser.State()); err != nil {
		logger.Errorf("save state %s: %v", cfg.StatePath, err)
	}
}
