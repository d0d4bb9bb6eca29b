package cmd

import (
	"fmt"
	"io"

	"github.com/blang/semver"
	"github.com/spf13/cobra"
	"github.com/yaoapp/emitter/config"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the resolved configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printEnv(cmd.OutOrStdout(), cfg)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := version()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), v.String())
		return nil
	},
}

func printEnv(out io.Writer, c config.Config) {
	logfile := c.Log
	if logfile == "" {
		logfile = "(stderr)"
	}
	fmt.Fprintf(out, "EMITTER_MODE=%s\n", c.Mode)
	fmt.Fprintf(out, "EMITTER_LOG=%s\n", logfile)
	fmt.Fprintf(out, "EMITTER_LOG_MODE=%s\n", c.LogMode)
	fmt.Fprintf(out, "EMITTER_LOG_LEVEL=%s\n", c.LogLevel)
	fmt.Fprintf(out, "EMITTER_LOG_MAX_SIZE=%d\n", c.LogMaxSize)
	fmt.Fprintf(out, "EMITTER_LOG_MAX_BACKUPS=%d\n", c.LogMaxBackups)
	fmt.Fprintf(out, "EMITTER_LOG_MAX_AGE=%d\n", c.LogMaxAge)
	fmt.Fprintf(out, "EMITTER_RECOVER=%t\n", c.Recover)
}

func version() (semver.Version, error) {
	return semver.Parse(VERSION)
}
