package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ja7ad/energystudy/pkg/experiment"
	"github.com/ja7ad/energystudy/pkg/report"
	"github.com/ja7ad/energystudy/pkg/system/host"
	"github.com/ja7ad/energystudy/pkg/system/meter"
	"github.com/ja7ad/energystudy/pkg/workload"
)

type opts struct {
	verbose bool

	// outputs
	csvPath  string
	jsonPath string
}

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var o opts

	root := &cobra.Command{
		Use:   "energystudy",
		Short: "Workload energy intensity estimation",
		Long: `energystudy runs synthetic CPU workloads of increasing size, measures
elapsed time and CPU utilization of this process, and prices each run with a
linear server power model (50 W idle, 150 W at full load).

Each workload is run 5 times; the report shows the averages and the energy
per request (iteration).

Examples:
  energystudy
  energystudy --csv out/intensity.csv --json out/intensity.json
  energystudy probe`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRun: func(*cobra.Command, []string) {
			slog.SetDefault(newLogger(stderr, o.verbose))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runIntensity(cmd.Context(), stdout, o)
		},
	}
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "log every trial to stderr")
	addOutputFlags(root, &o)

	intensity := &cobra.Command{
		Use:   "intensity",
		Short: "Run the averaged energy experiment (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runIntensity(cmd.Context(), stdout, o)
		},
	}
	addOutputFlags(intensity, &o)

	probe := &cobra.Command{
		Use:   "probe",
		Short: "Time each request once and sample host CPU for 1s afterwards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProbe(cmd.Context(), stdout)
		},
	}

	root.AddCommand(intensity, probe)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root
}

func addOutputFlags(cmd *cobra.Command, o *opts) {
	cmd.Flags().StringVar(&o.csvPath, "csv", "", "also write aggregates to a CSV file")
	cmd.Flags().StringVar(&o.jsonPath, "json", "", "also write aggregates to a JSON file")
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func logHost(ctx context.Context) {
	sum, err := host.Describe(ctx)
	if err != nil {
		slog.Warn("host summary unavailable", "err", err)
		return
	}
	slog.Info("host", "host", sum)
}

func runIntensity(ctx context.Context, stdout io.Writer, o opts) (err error) {
	d, err := experiment.New(experiment.DefaultConfig())
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logHost(ctx)

	tb, err := report.NewTable(stdout)
	if err != nil {
		return err
	}
	sinks := []experiment.Sink{tb}

	if o.csvPath != "" {
		var f *os.File
		if f, err = report.Create(o.csvPath); err != nil {
			return err
		}
		defer closeInto(f, &err)

		var c *report.CSV
		if c, err = report.NewCSV(f); err != nil {
			return err
		}
		sinks = append(sinks, c)
	}
	if o.jsonPath != "" {
		var f *os.File
		if f, err = report.Create(o.jsonPath); err != nil {
			return err
		}
		defer closeInto(f, &err)

		var j *report.JSON
		if j, err = report.NewJSON(f); err != nil {
			return err
		}
		defer closeInto(j, &err)
		sinks = append(sinks, j)
	}

	_, err = d.Run(ctx, sinks...)
	return err
}

func runProbe(ctx context.Context, stdout io.Writer) error {
	s, err := meter.NewSampler(meter.System)
	if err != nil {
		return err
	}
	logHost(ctx)

	res, err := experiment.Probe(ctx, s, workload.Probes(), slog.Default())
	if err != nil {
		return err
	}
	return report.WriteProbe(stdout, res)
}

// closeInto closes c and joins a close failure into *err.
func closeInto(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil {
		*err = errors.Join(*err, cerr)
	}
}
