package cmd

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/zenith-sms/zenith/internal/config"
	"github.com/zenith-sms/zenith/internal/domain/activity"
	"github.com/zenith-sms/zenith/internal/domain/workspace"
	"github.com/zenith-sms/zenith/internal/registry"
	"github.com/zenith-sms/zenith/internal/storage"
)

// app wires the storage, registry and services for one command invocation.
type app struct {
	cfg        config.Config
	store      storage.Store
	reg        *registry.Registry
	activity   *activity.Service
	workspaces *workspace.Service
	logger     *slog.Logger
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if dir := filepath.Dir(cfg.Storage.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("preparing storage path: %w", err)
		}
	}

	store, err := storage.Open(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	reg := registry.New(store, logger)
	act := activity.NewService(reg.Activities, logger)

	return &app{
		cfg:        cfg,
		store:      store,
		reg:        reg,
		activity:   act,
		workspaces: workspace.NewService(store, reg, act, logger),
		logger:     logger,
	}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("failed to close store", "error", err)
	}
}

// recordActivity logs to the audit trail; failures are not fatal to the
// command that triggered them.
func (a *app) recordActivity(action, details string) {
	if err := a.activity.Add(action, details); err != nil {
		a.logger.Warn("failed to record activity", "action", action, "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// confirm prompts on stdin before destructive or bulk operations.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
