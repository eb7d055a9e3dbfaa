// internal/app/skew.go
package app

import (
	"github.com/spf13/cobra"

	"orifind-core/analysis"
	"orifind-core/fasta"
	"orifind-core/skew"
	"orifind/internal/output"
)

func newSkewCmd(ran *bool) *cobra.Command {
	windowSize := analysis.DefaultSkewWindow
	noHeader := false

	cmd := &cobra.Command{
		Use:   "skew <fasta> [<fasta>...]",
		Short: "Dump per-window GC skew and cumulative skew",
		Long: `Print the GC skew profile (G count minus C count per non-overlapping
window) and its running sum for every record, one TSV row per window.
A record shorter than one window produces no rows.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			*ran = true
			if windowSize <= 0 {
				return usagef("--skew-window must be positive, got %d", windowSize)
			}
			w := cmd.OutOrStdout()
			header := !noHeader
			for _, path := range args {
				err := fasta.StreamRecordsPathCtx(cmd.Context(), path, func(rec fasta.Record) error {
					prof, err := skew.Profile(string(rec.Seq), windowSize)
					if err != nil {
						return err
					}
					cum := skew.Cumulative(prof)
					if err := output.WriteSkewTSV(w, rec.ID, windowSize, prof, cum, header); err != nil {
						return err
					}
					header = false
					return nil
				})
				if err != nil {
					return err
				}
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&windowSize, "skew-window", windowSize, "GC skew window size (bases)")
	fl.BoolVar(&noHeader, "no-header", false, "suppress header line")
	return cmd
}
