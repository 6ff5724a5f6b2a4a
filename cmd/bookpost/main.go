// Command bookpost is the CLI entrypoint for the book channel uploader.
//
// It loads configuration from the environment (or .env) and flags, validates
// it, and either checks the bot credential (--check) or runs the upload
// pipeline over the given directory.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/backmassage/bookpost/internal/check"
	"github.com/backmassage/bookpost/internal/config"
	"github.com/backmassage/bookpost/internal/display"
	"github.com/backmassage/bookpost/internal/logging"
	"github.com/backmassage/bookpost/internal/pipeline"
	"github.com/backmassage/bookpost/internal/telegram"
)

// version is injected at build time via -ldflags; plain "go build" keeps
// the default.
var version = "1.0.0-dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Bootstrap: the logger doesn't exist yet, so errors go directly to
	// stderr via fmt. Once NewLogger succeeds, all output goes through it.
	_ = godotenv.Load()

	cfg := config.DefaultConfig()
	if err := config.ApplyEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "bookpost: %v\n", err)
		return 1
	}
	if err := config.ParseFlags(&cfg, version, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "bookpost: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "bookpost: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bookpost: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner()

	client := telegram.NewClient(cfg.BotToken)

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, client, log) {
			return 1
		}
		return 0
	}

	if fi, err := os.Stat(cfg.InputDir); err != nil || !fi.IsDir() {
		log.Error("Folder not found: %s", cfg.InputDir)
		return 1
	}

	log.Info("=== bookpost v%s ===", version)
	log.Info("Dir:     %s", cfg.InputDir)
	log.Info("Channel: %s", cfg.ChannelID)
	log.Info("Limits:  %d MB per file, %s between posts", cfg.MaxFileSizeMB, cfg.PostDelay)
	if cfg.DryRun {
		log.Warn("DRY RUN (nothing will be uploaded)")
	}
	log.Info("")

	// Per-pair failures are already counted and reported by the pipeline;
	// a completed run exits zero regardless. Only setup errors are fatal.
	if _, err := pipeline.Run(&cfg, client, log); err != nil {
		log.Error("%v", err)
		return 1
	}
	return 0
}
