// internal/app/clumps.go
package app

import (
	"github.com/spf13/cobra"

	"orifind-core/analysis"
	"orifind-core/clump"
	"orifind-core/fasta"
	"orifind/internal/output"
)

func newClumpsCmd(ran *bool) *cobra.Command {
	k := analysis.DefaultK
	windowLen := analysis.DefaultClumpWindow
	minOccurrence := analysis.DefaultMinOccurrence
	noHeader := false

	cmd := &cobra.Command{
		Use:   "clumps <fasta> [<fasta>...]",
		Short: "Scan whole records for k-mer clumps",
		Long: `Run the clump scan over each full record instead of an extracted ori
region: slide a window across the sequence and report every window that
contains a k-mer repeated at least the requested number of times.

The scan is exhaustive (every unit-stride window), so cost grows with
sequence length times window length; prefer 'analyze' to restrict it to
the ori region of a large genome.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			*ran = true
			if k <= 0 {
				return usagef("--kmer must be positive, got %d", k)
			}
			if windowLen <= 0 {
				return usagef("--clump-window must be positive, got %d", windowLen)
			}
			if minOccurrence <= 0 {
				return usagef("--min-occurrence must be positive, got %d", minOccurrence)
			}
			w := cmd.OutOrStdout()
			header := !noHeader
			for _, path := range args {
				err := fasta.StreamRecordsPathCtx(cmd.Context(), path, func(rec fasta.Record) error {
					m, err := clump.Find(string(rec.Seq), k, windowLen, minOccurrence)
					if err != nil {
						return err
					}
					if err := output.WriteClumpTSV(w, rec.ID, m, header); err != nil {
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
	fl.IntVar(&k, "kmer", k, "k-mer length")
	fl.IntVar(&windowLen, "clump-window", windowLen, "scan window length (bases)")
	fl.IntVar(&minOccurrence, "min-occurrence", minOccurrence, "occurrences for a k-mer to qualify")
	fl.BoolVar(&noHeader, "no-header", false, "suppress header line")
	return cmd
}
