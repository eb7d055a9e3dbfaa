// internal/app/root.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"orifind/internal/writers"
)

// usageError marks validation failures that should exit with code 2.
type usageError struct{ err error }

func (u usageError) Error() string { return u.err.Error() }
func (u usageError) Unwrap() error { return u.err }

func usagef(format string, a ...any) error {
	return usageError{fmt.Errorf(format, a...)}
}

func newRootCmd(stdout, stderr io.Writer, ran *bool) *cobra.Command {
	root := &cobra.Command{
		Use:   "orifind",
		Short: "Locate bacterial replication origin candidates by GC skew",
		Long: `orifind locates a candidate replication origin (ORI) in a DNA sequence by
finding the minimum of the cumulative GC skew, extracts a flanked region
around it, and characterizes that region by scanning for k-mer clumps
(short motifs repeated within a bounded window).

Input is FASTA (plain, gzip, or zstd; '-' reads stdin). Each record is
analyzed independently.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.AddCommand(newAnalyzeCmd(ran))
	root.AddCommand(newSkewCmd(ran))
	root.AddCommand(newClumpsCmd(ran))
	root.AddCommand(newVersionCmd(ran))
	return root
}

// RunContext executes the CLI against argv and maps the outcome to an exit
// code: 0 ok (or downstream pipe closed early), 2 usage/validation,
// 3 runtime failure, 130 canceled.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	var ran bool
	root := newRootCmd(stdout, stderr, &ran)
	root.SetArgs(argv)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	if writers.IsBrokenPipe(err) {
		return 0
	}
	if errors.Is(err, context.Canceled) {
		return 130
	}
	_, _ = fmt.Fprintln(stderr, err)
	var ue usageError
	if errors.As(err, &ue) {
		return 2
	}
	if !ran {
		// Flag or argument parsing failed before any command body ran.
		return 2
	}
	return 3
}

// Run executes the CLI with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
