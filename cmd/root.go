package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/memsim-project/memsim/sim"
	"github.com/memsim-project/memsim/sim/trace"
)

var (
	// CLI flags shared by the simulation subcommands
	traceFile  string // Path to the trace file (plain, .lz4, .sz/.snappy)
	frames     int    // Resident set capacity
	policyName string // Replacement policy name
	logLevel   string // Log verbosity level
	configFile string // Optional YAML run configuration
	traceLevel string // Eviction trace level (none, evictions)
	traceOut   string // Eviction trace CSV output path
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "memsim",
	Short: "Trace-driven page replacement simulator",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q", logLevel)
		}
		logrus.SetLevel(level)
		return nil
	},
}

// runCmd simulates a token-mode trace and prints the results report.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate a page reference trace (one page token per line)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSimulation(cmd, os.Stdout)
	},
}

// runSimulation executes the token-mode simulation and writes the report to out.
func runSimulation(cmd *cobra.Command, out io.Writer) error {
	cfg := sim.NewConfig(frames, policyName, 0)
	if configFile != "" {
		if err := applyBundle(cmd, configFile, &cfg); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !trace.IsValidLevel(traceLevel) {
		return fmt.Errorf("unknown trace level %q", traceLevel)
	}

	rc, err := trace.Open(traceFile)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	reader, policy, err := newTokenEngine(rc, cfg)
	if err != nil {
		return err
	}

	rec := trace.NewSimulationTrace(effectiveTraceLevel())
	s := sim.NewSimulator(cfg, reader, policy, rec)
	if err := s.Run(); err != nil {
		return err
	}

	s.Metrics.WriteReport(out, cfg.PolicyName(), cfg.Frames)

	if traceOut != "" {
		if err := trace.ExportCSV(rec, traceOut); err != nil {
			return err
		}
		logrus.Infof("eviction trace written to %s", traceOut)
	}
	return nil
}

// newTokenEngine builds the reader and policy for a token-mode run. The
// Optimal policy needs lookahead over the whole trace, so for it the stream
// is materialized up front — a deliberate exception to the reader's
// single-pass contract, with O(trace length) memory.
func newTokenEngine(rc io.Reader, cfg sim.Config) (trace.Reader, sim.ReplacementPolicy, error) {
	if cfg.Policy == sim.PolicyOptimal {
		refs, err := trace.ReadAll(trace.NewLineReader(rc))
		if err != nil {
			return nil, nil, err
		}
		return trace.NewSliceReader(refs), sim.NewReplacementPolicy(cfg.Policy, refs), nil
	}
	return trace.NewLineReader(rc), sim.NewReplacementPolicy(cfg.Policy, nil), nil
}

// applyBundle overlays YAML configuration onto cfg and the trace flags.
// Explicit CLI flags win over the file; file values win over defaults.
func applyBundle(cmd *cobra.Command, path string, cfg *sim.Config) error {
	bundle, err := sim.LoadSimBundle(path)
	if err != nil {
		return err
	}
	if err := bundle.Validate(); err != nil {
		return err
	}
	if bundle.Frames != nil && !cmd.Flags().Changed("frames") {
		cfg.Frames = *bundle.Frames
	}
	if bundle.Policy != "" && !cmd.Flags().Changed("policy") {
		cfg.Policy = bundle.Policy
	}
	if bundle.PageSize != nil && !cmd.Flags().Changed("page-size") {
		cfg.PageSize = *bundle.PageSize
	}
	if bundle.TraceLevel != "" && !cmd.Flags().Changed("trace-level") {
		traceLevel = bundle.TraceLevel
	}
	if bundle.TraceOut != "" && !cmd.Flags().Changed("trace-out") {
		traceOut = bundle.TraceOut
	}
	return nil
}

// effectiveTraceLevel resolves the recording level: asking for a CSV output
// without naming a level implies eviction recording.
func effectiveTraceLevel() trace.Level {
	if traceLevel == "" && traceOut != "" {
		return trace.LevelEvictions
	}
	if traceLevel == "" {
		return trace.LevelNone
	}
	return trace.Level(traceLevel)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	for _, cmd := range []*cobra.Command{runCmd, pagingCmd} {
		cmd.Flags().StringVar(&traceFile, "trace", "", "Path to the trace file")
		cmd.Flags().IntVar(&frames, "frames", sim.DefaultFrames, "Resident set capacity in frames")
		cmd.Flags().StringVar(&policyName, "policy", sim.DefaultPolicy, "Replacement policy (fifo, lru, clock, optimal)")
		cmd.Flags().StringVar(&configFile, "config", "", "YAML run configuration file")
		cmd.Flags().StringVar(&traceLevel, "trace-level", "", "Eviction trace level (none, evictions)")
		cmd.Flags().StringVar(&traceOut, "trace-out", "", "Write eviction trace CSV to this path")
		_ = cmd.MarkFlagRequired("trace")
	}
	pagingCmd.Flags().Int64Var(&pageSize, "page-size", trace.DefaultPageSize, "Bytes per page for address traces")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(pagingCmd)
	rootCmd.AddCommand(peekCmd)
}
