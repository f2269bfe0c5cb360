package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mj1618/wintree/internal/config"
	"github.com/mj1618/wintree/internal/output"
	"github.com/mj1618/wintree/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "wintree",
	Short:        "Query and classify desktop windows",
	Long:         "A CLI tool that walks the desktop window hierarchy, classifies real top-level application windows, and finds windows linked through their owning process.",
	SilenceUsage: true,
}

// appConfig and logger are set by the root command before any subcommand runs.
var (
	appConfig = config.DefaultConfig()
	logger    = slog.New(slog.DiscardHandler)
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print output (no-op for YAML)")
	rootCmd.PersistentFlags().String("config", "", "Config file (default: <user config dir>/wintree/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log traversal details to stderr")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

		level := slog.LevelWarn
		if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		path, _ := rootCmd.PersistentFlags().GetString("config")
		cfg, err := loadConfig(path)
		if err != nil {
			return err
		}
		appConfig = cfg
		logger.Debug("configuration loaded", "ignore_classes", cfg.IgnoreList().Names(), "max_siblings", cfg.MaxSiblings)
		return nil
	}
}

// loadConfig reads an explicit config path, or the default location when
// path is empty. Only the default location may be missing.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path, false)
}
