package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/claude/periodize/internal/config"
	"github.com/claude/periodize/internal/seed"
	"github.com/claude/periodize/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	seedDir := flag.String("dir", "", "directory of extra exercise JSON files to apply")
	libraryOnly := flag.Bool("library-only", false, "seed only the built-in catalog")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("periodize-seed", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := storage.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var state *seed.StateDB
	if !*libraryOnly && *seedDir != "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Error("failed to get home directory", "error", err)
			os.Exit(1)
		}
		state, err = seed.OpenStateDB(filepath.Join(homeDir, ".periodize-seed"))
		if err != nil {
			log.Error("failed to open state database", "error", err)
			os.Exit(1)
		}
		defer state.Close()
	}

	seeder := seed.New(db, state, log)

	inserted, err := seeder.SeedLibrary(ctx)
	if err != nil {
		log.Error("library seed failed", "error", err)
		os.Exit(1)
	}
	log.Info("library seed complete", "inserted", inserted)

	if *libraryOnly || *seedDir == "" {
		return
	}

	applied, err := seeder.SeedDir(ctx, *seedDir)
	if err != nil {
		log.Error("seed dir failed", "error", err)
		os.Exit(1)
	}
	log.Info("seed complete", "files_applied", applied)
}
