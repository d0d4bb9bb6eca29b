package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yaoapp/emitter/config"
)

// VERSION is the release version of the emitter tool.
const VERSION = "1.2.0"

var (
	envFile  string
	recovery bool
)

// cfg is the configuration resolved by the root command before each run.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "emitter",
	Short: "Namespaced event emitter toolkit",
	Long:  "Replay scripted subscribe/emit scenarios against the namespaced event emitter.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(envFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("recover") {
			cfg.Recover = recovery
		}
		return config.Apply(cfg)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&envFile, "env", "e", "", "dotenv file to load before reading EMITTER_* variables")
	rootCmd.PersistentFlags().BoolVar(&recovery, "recover", false, "recover handler panics and keep delivering (overrides EMITTER_RECOVER)")

	rootCmd.AddCommand(replayCmd, envCmd, versionCmd)
}

// Execute runs the root command.
func Execute() {
	defer config.CloseLog()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
