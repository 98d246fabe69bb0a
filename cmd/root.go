package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/trifactor/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "trifactor",
	Short: "Pressure-mapping self-assessment",
	Long: `Trifactor asks a sample of Likert questions through one of three lenses
(Interpersonal, Financial, Big Picture), scores six categories and points at
the weakest one. Targeted follow-up rounds refine the readout.

It shows where the pressure is. It does not design the fix.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a TOML config file (default $XDG_CONFIG_HOME/trifactor/config.toml)")
	flags.String("lens", "", "Lens to preselect: interpersonal, financial or big-picture")
	flags.Uint64("seed", 0, "Seed for question sampling (0 seeds from the clock)")
	flags.String("log-file", "", "Write JSON logs to this file")
	flags.String("export-dir", "", "Directory for saved snapshots")
	flags.Int("initial-count", 0, "Number of questions in the initial sample")
	flags.Int("followup-count", 0, "Number of questions per follow-up round")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(lensCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(scoreCmd)
}

// resolveConfig loads the config file, .env and environment, then applies
// any flags set on the command line.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("lens") {
		cfg.Lens, _ = flags.GetString("lens")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("export-dir") {
		cfg.ExportDir, _ = flags.GetString("export-dir")
	}
	if flags.Changed("initial-count") {
		cfg.InitialCount, _ = flags.GetInt("initial-count")
	}
	if flags.Changed("followup-count") {
		cfg.FollowupCount, _ = flags.GetInt("followup-count")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
