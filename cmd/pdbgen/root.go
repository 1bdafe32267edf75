package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/patterndb/selection"
	"github.com/katalvlaran/patterndb/task"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "pdbgen",
	Short:         "Pattern database generator",
	Long:          "pdbgen builds additive pattern database heuristics for classical planning tasks.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Select a saturated pattern database collection",
	Long: "Enumerate interesting patterns by increasing size and keep every projection " +
		"whose mean finite goal distance is positive under the remaining operator costs.",
	Args: cobra.NoArgs,
	RunE: runSelect,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./pdbgen.yaml if present)")
	rootCmd.AddCommand(selectCmd)

	f := selectCmd.Flags()
	f.StringP("task", "t", "", "task file in YAML")
	f.StringP("output", "o", "", "output file (default stdout)")
	f.String("metrics-file", "", "write Prometheus metrics in text format to this file")
	f.Int("max-pattern-size", defaultMaxPatternSize, "largest number of variables per pattern")
	f.Int("max-pdb-size", selection.Unbounded, "largest abstract state count of one projection")
	f.Int("max-collection-size", selection.Unbounded, "largest summed state count of the collection")
	f.Int("max-patterns", selection.Unbounded, "largest number of selected patterns")
	f.Duration("max-time", selection.UnboundedTime, "wall-clock budget")
	f.Bool("precheck", true, "test usefulness with an early-stopping search first")
	f.Bool("debug", false, "log every skipped pattern")
	f.Bool("include-distances", false, "write the distance table of every projection")
	f.String("log-level", "info", "debug, info, warn, error or disabled")
}

// bindFlags maps kebab-case flags onto the snake_case config keys.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	for _, name := range []string{
		"task", "output", "metrics-file", "max-pattern-size", "max-pdb-size",
		"max-collection-size", "max-patterns", "max-time", "precheck", "debug",
		"include-distances", "log-level",
	} {
		if err := v.BindPFlag(strings.ReplaceAll(name, "-", "_"), cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	return nil
}

func newLogger(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(lvl).With().Timestamp().Logger(), nil
}

func runSelect(cmd *cobra.Command, _ []string) error {
	// 1) Configuration
	v := viper.New()
	if err := bindFlags(cmd, v); err != nil {
		return err
	}
	cfg, err := LoadConfig(v, configPath)
	if err != nil {
		return err
	}
	level := cfg.LogLevel
	if cfg.Debug {
		level = zerolog.DebugLevel.String()
	}
	log, err := newLogger(level, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	// 2) Task
	tk, err := task.LoadFile(cfg.Task)
	if err != nil {
		return err
	}
	log.Info().
		Str("task", cfg.Task).
		Int("variables", tk.NumVariables()).
		Int("operators", len(tk.Operators)).
		Msg("loaded task")

	// 3) Selection
	reg := prometheus.NewRegistry()
	opts := append(cfg.SelectionOptions(), selection.WithLogger(log), selection.WithRegisterer(reg))
	started := time.Now()
	res, err := selection.Select(tk, opts...)
	if err != nil {
		return err
	}
	rep := newReport(tk, res, cfg.IncludeDistances)
	log.Info().
		Str("status", res.Status.String()).
		Int("patterns", res.Collection.Len()).
		Int64("total_size", res.Collection.TotalSize()).
		Dur("elapsed", time.Since(started)).
		Msg("selection finished")
	if rep.InitialHeuristic != nil {
		log.Info().Int("value", *rep.InitialHeuristic).Msg("initial heuristic value")
	} else if rep.InitialDeadEnd {
		log.Info().Msg("initial state is a dead end")
	}

	// 4) Output
	if cfg.MetricsFile != "" {
		if err = prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	if cfg.Output == "" {
		return rep.Write(cmd.OutOrStdout())
	}
	out, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	if err = rep.Write(out); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}
