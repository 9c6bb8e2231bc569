package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"remindpro/internal/config"
	"remindpro/internal/insights"
	"remindpro/internal/store"
	"remindpro/internal/ui"
)

func main() {
	configPath := config.ResolveConfigPath()
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Relative state and log paths live next to the config file.
	baseDir := filepath.Dir(configPath)
	if !filepath.IsAbs(cfg.StateDir) {
		cfg.StateDir = filepath.Join(baseDir, cfg.StateDir)
	}
	if !filepath.IsAbs(cfg.LogFile) {
		cfg.LogFile = filepath.Join(baseDir, cfg.LogFile)
	}

	env, err := config.ReadEnv()
	if err != nil {
		fmt.Printf("failed to read environment: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns stdout, so logs go to a file.
	log, closeLog, err := openLogger(cfg.LogFile)
	if err != nil {
		fmt.Printf("failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	st, err := store.Open(cfg.StateDir, log)
	if err != nil {
		fmt.Printf("failed to open state: %v\n", err)
		os.Exit(1)
	}

	model := cfg.Insights.Model
	if env.GeminiModel != "" {
		model = env.GeminiModel
	}
	client := insights.NewClient(env.GeminiAPIKey, model,
		time.Duration(cfg.Insights.TimeoutSeconds)*time.Second, log)

	if err := ui.Run(st, cfg, client, log); err != nil {
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}

func openLogger(path string) (zerolog.Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Logger{}, nil, err
	}
	log := zerolog.New(f).With().Timestamp().Logger()
	return log, func() { f.Close() }, nil
}
