// Command luckyring exercises the ring container and the lucky-number sieve
// from the command line.
//
//	luckyring demo
//	luckyring lucky --n 100
//	luckyring unlucky --n 100
//	luckyring random --count 5 --min 10 --max 50 --seed 42
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	// Global flags
	verbose    bool
	configPath string

	cfg    Config
	logger *zap.Logger
}

// newRootCmd builds the command tree. A non-nil logger is used as-is instead
// of building a production logger.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger}

	root := &cobra.Command{
		Use:   "luckyring",
		Short: "Circular list playground and lucky-number sieve",
		Long: `luckyring drives the ring container and the lucky-number sieve.

Settings come from (lowest to highest precedence): built-in defaults, a YAML
file (--config or LUCKYRING_CONFIG_FILE), LUCKYRING_* environment variables,
and command-line flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger == nil {
				config := zap.NewProductionConfig()
				if a.verbose {
					config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}
				var err error
				a.logger, err = config.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
			}

			cfg, err := LoadConfig(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = *cfg
			a.applyFlags(cmd)
			if err = a.cfg.Validate(); err != nil {
				return err
			}
			a.logger.Debug("configuration loaded",
				zap.String("command", cmd.Name()),
				zap.Int("n", a.cfg.N),
				zap.Int("count", a.cfg.Count),
				zap.Int("min", a.cfg.Min),
				zap.Int("max", a.cfg.Max),
				zap.Int64("seed", a.cfg.Seed))

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")

	root.AddCommand(
		a.demoCmd(),
		a.luckyCmd(),
		a.unluckyCmd(),
		a.randomCmd(),
	)

	return root
}

// applyFlags copies explicitly set command-line flags over the loaded config.
func (a *app) applyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("n") {
		a.cfg.N, _ = flags.GetInt("n")
	}
	if flags.Changed("count") {
		a.cfg.Count, _ = flags.GetInt("count")
	}
	if flags.Changed("min") {
		a.cfg.Min, _ = flags.GetInt("min")
	}
	if flags.Changed("max") {
		a.cfg.Max, _ = flags.GetInt("max")
	}
	if flags.Changed("seed") {
		a.cfg.Seed, _ = flags.GetInt64("seed")
	}
}

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
