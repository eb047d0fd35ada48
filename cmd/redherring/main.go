// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command redherring runs the Red Herring Discord bot.
//
// # Sub-commands
//
//   - serve: migrate the store, connect to Discord and run the liveness server.
//   - migrate: apply pending store migrations and exit.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/redherring/internal/platform/config"
)

var rootCmd = &cobra.Command{
	Use:           "redherring",
	Short:         "Red Herring, the community watch-list bot",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Connect to Discord and serve the liveness endpoints",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending store migrations and exit",
	RunE:  runMigrate,
}

var envFiles []string

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"}, "dotenv files loaded before the environment is parsed")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	// Running the binary without a sub-command serves the bot.
	if len(os.Args) == 1 {
		rootCmd.SetArgs([]string{serveCmd.Name()})
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		slog.Error("command_failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// newLogger builds the process logger. cfg may be nil when loading failed.
func newLogger(cfg *config.Config) *slog.Logger {
	options := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg != nil && cfg.Debug {
		options.Level = slog.LevelDebug
	}

	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, options)
	if cfg != nil && cfg.IsDevelopment() {
		handler = slog.NewTextHandler(os.Stdout, options)
	}

	log := slog.New(handler).With(slog.String("app", "redherring"))
	slog.SetDefault(log)
	return log
}

// loadConfig reads dotenv files and the environment.
func loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(envFiles...); err != nil {
		return nil, err
	}
	return config.Load()
}

// must logs a fatal startup error and exits.
func must(log *slog.Logger, err error, action string) {
	if err != nil {
		log.Error("startup_failed", slog.String("action", action), slog.Any("error", err))
		os.Exit(1)
	}
}
