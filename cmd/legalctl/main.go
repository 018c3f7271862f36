package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/bryanwahyu/automaton-legal/internal/bootstrap"
	"github.com/bryanwahyu/automaton-legal/internal/config"
	"github.com/bryanwahyu/automaton-legal/internal/logger"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "legalctl",
	Short:         "Run contract analyses, reports and rewrites from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	defaultPath := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		defaultPath = v
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultPath, "path to config.yaml (missing file means defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")

	rootCmd.AddCommand(personasCmd, analyzeCmd, exportCmd, rewriteCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		data = nil
	} else if err != nil {
		return nil, err
	}
	return config.Parse(data)
}

// buildApp wires the same services the API server uses.
func buildApp(ctx context.Context) (*bootstrap.App, *logger.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	lg := logger.Nop()
	if verbose {
		if lg, err = logger.New(cfg.Log.Mode, cfg.Log.Level); err != nil {
			return nil, nil, err
		}
	}
	app, err := bootstrap.Build(ctx, cfg, lg, nil)
	if err != nil {
		return nil, nil, err
	}
	return app, lg, nil
}
