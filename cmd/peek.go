package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/memsim-project/memsim/sim/trace"
)

// peekCmd prints the head of a trace file with line numbers, for inspecting
// the trace format before a run. Decompression applies the same as for runs.
var peekCmd = &cobra.Command{
	Use:   "peek <tracefile> [lines]",
	Short: "Print the first lines of a trace file",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := 20
		if len(args) == 2 {
			parsed, err := strconv.Atoi(args[1])
			if err != nil || parsed < 1 {
				return fmt.Errorf("line count must be a positive integer, got %q", args[1])
			}
			n = parsed
		}
		rc, err := trace.Open(args[0])
		if err != nil {
			return err
		}
		defer func() { _ = rc.Close() }()

		scanner := bufio.NewScanner(rc)
		for i := 1; i <= n && scanner.Scan(); i++ {
			fmt.Fprintf(os.Stdout, "%4d: %s\n", i, scanner.Text())
		}
		return scanner.Err()
	},
}
