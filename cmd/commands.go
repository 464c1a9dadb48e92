package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"intervaltimer/internal/core/model"
	"intervaltimer/internal/storage"

	"github.com/spf13/cobra"
)

const appName = "IntervalTimer"

var (
	workSeconds int
	restSeconds int
	totalSeries int
	presetPath  string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "intervaltimer",
	Short: "Interval workout timer",
	Long: `intervaltimer counts down alternating work and rest periods for a number of series
and plays a chime at every transition.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(os.Stderr, verbose)
		config, err := resolveConfiguration(cmd, logger)
		if err != nil {
			return err
		}
		return runDesktop(cmd.Context(), config, logger)
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the timer in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		// The terminal owns stdout, so logs only go out when asked for.
		var output io.Writer = io.Discard
		if verbose {
			output = os.Stderr
		}
		logger := newLogger(output, verbose)
		config, err := resolveConfiguration(cmd, logger)
		if err != nil {
			return err
		}
		return runTerminal(cmd.Context(), config, logger)
	},
}

func init() {
	defaults := model.DefaultConfiguration()
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&workSeconds, "work", defaults.WorkSeconds, "work seconds per series")
	flags.IntVar(&restSeconds, "rest", defaults.RestSeconds, "rest seconds between series")
	flags.IntVar(&totalSeries, "series", defaults.TotalSeries, "number of series")
	flags.StringVar(&presetPath, "preset", "", "YAML preset file (default: <config dir>/IntervalTimer/preset.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(tuiCmd)
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func newLogger(output io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: level}))
}

// resolveConfiguration layers defaults, the preset file and explicit flags.
func resolveConfiguration(cmd *cobra.Command, logger *slog.Logger) (model.Configuration, error) {
	var (
		config model.Configuration
		err    error
	)
	if presetPath != "" {
		config, err = storage.LoadPreset(presetPath)
	} else {
		config, err = storage.LoadDefaultPreset(appName)
	}
	if err != nil {
		return config, fmt.Errorf("load preset: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("work") {
		config.WorkSeconds = workSeconds
	}
	if flags.Changed("rest") {
		config.RestSeconds = restSeconds
	}
	if flags.Changed("series") {
		config.TotalSeries = totalSeries
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	logger.Debug("configuration resolved",
		"work_seconds", config.WorkSeconds,
		"rest_seconds", config.RestSeconds,
		"total_series", config.TotalSeries)
	return config, nil
}
