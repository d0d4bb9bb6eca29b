package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/yaoapp/emitter/event"
	"github.com/yaoapp/emitter/event/types"
	"github.com/yaoapp/emitter/logger"
	"github.com/yaoapp/emitter/scenario"
)

var replayCmd = &cobra.Command{
	Use:   "replay <scenario.yaml>",
	Short: "Run a scenario file and print every delivery",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return replay(cmd.OutOrStdout(), args[0], cfg.Recover)
	},
}

func replay(out io.Writer, path string, recoverPanics bool) error {
	log := logger.New("replay")

	s, err := scenario.Load(path)
	if err != nil {
		return err
	}

	var opts []types.Option
	if recoverPanics {
		opts = append(opts, event.Recover())
	}

	log.Info("replaying %s (%d steps)", path, len(s.Steps))
	report, runErr := run(s, opts...)
	if report == nil {
		return runErr
	}
	printReport(out, report)

	if runErr != nil {
		color.New(color.FgRed).Fprintf(out, "\nerrors:\n%v\n", runErr)
		return fmt.Errorf("replay %s: failed", s.Name)
	}
	return nil
}

func printReport(out io.Writer, report *scenario.Report) {
	title := color.New(color.Bold)
	bubbled := color.New(color.FgHiBlack)

	title.Fprintf(out, "scenario %s\n", report.Name)
	for _, c := range report.Calls {
		if c.Event != c.Origin {
			bubbled.Fprintln(out, "  "+c.String())
			continue
		}
		fmt.Fprintln(out, "  "+c.String())
	}

	title.Fprintln(out, "totals")
	for _, label := range report.Labels() {
		fmt.Fprintf(out, "  %-24s %d\n", label, report.Count(label))
	}
}

// run turns a handler panic that escaped the emitter into an error, so the
// command exits with one line instead of a stack dump.
func run(s *scenario.Scenario, opts ...types.Option) (report *scenario.Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			report = nil
			err = fmt.Errorf("replay %s: handler panicked: %v (use --recover to keep delivering)", s.Name, r)
		}
	}()
	return scenario.Run(s, opts...)
}
