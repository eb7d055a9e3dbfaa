// internal/app/analyze.go
package app

import (
	"context"
	"runtime"

	"github.com/spf13/cobra"

	"orifind-core/analysis"
	"orifind/internal/output"
	"orifind/internal/pipeline"
	"orifind/internal/writers"
)

func validateParams(p analysis.Params) error {
	if p.SkewWindow <= 0 {
		return usagef("--skew-window must be positive, got %d", p.SkewWindow)
	}
	if p.Flank <= 0 {
		return usagef("--flank must be positive, got %d", p.Flank)
	}
	if p.K <= 0 {
		return usagef("--kmer must be positive, got %d", p.K)
	}
	if p.ClumpWindow <= 0 {
		return usagef("--clump-window must be positive, got %d", p.ClumpWindow)
	}
	if p.MinOccurrence <= 0 {
		return usagef("--min-occurrence must be positive, got %d", p.MinOccurrence)
	}
	return nil
}

func newAnalyzeCmd(ran *bool) *cobra.Command {
	p := analysis.DefaultParams()
	var (
		format   string
		threads  int
		sortFlag bool
		noHeader bool
		region   bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <fasta> [<fasta>...]",
		Short: "Run the full ORI analysis on each FASTA record",
		Long: `Run the complete pipeline per record: compute the GC skew profile, find
the cumulative-skew minimum, extract the flanked region around it, and
scan that region for k-mer clumps.

Reported ori_start/ori_end are absolute coordinates in the record; clump
window coordinates are relative to the extracted region.

Example:
  orifind analyze genome.fa
  orifind analyze --skew-window 500 --flank 2000 --output json genome.fa.gz`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			*ran = true
			if err := validateParams(p); err != nil {
				return err
			}
			switch format {
			case "text", "json", "jsonl", "fasta":
			default:
				return usagef("--output must be text, json, jsonl, or fasta, got %q", format)
			}

			thr := threads
			if thr <= 0 {
				thr = runtime.NumCPU()
			}
			includeSeq := region || format == "fasta"
			inCh, writeErr := writers.StartResultWriter(
				cmd.OutOrStdout(), format, sortFlag, !noHeader, includeSeq, thr*4,
			)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			perr := pipeline.ForEachResult(
				ctx,
				pipeline.Config{Threads: thr, Params: p},
				args,
				func(r output.Report) error {
					select {
					case inCh <- r:
						return nil
					case <-ctx.Done():
						return ctx.Err()
					}
				},
			)
			close(inCh)

			if werr := <-writeErr; werr != nil && !writers.IsBrokenPipe(werr) {
				return werr
			}
			return perr
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&p.SkewWindow, "skew-window", p.SkewWindow, "GC skew window size (bases)")
	fl.IntVar(&p.Flank, "flank", p.Flank, "flank radius around the skew minimum (bases)")
	fl.IntVar(&p.K, "kmer", p.K, "k-mer length for the clump scan")
	fl.IntVar(&p.ClumpWindow, "clump-window", p.ClumpWindow, "clump scan window length (bases)")
	fl.IntVar(&p.MinOccurrence, "min-occurrence", p.MinOccurrence, "occurrences for a k-mer to qualify as a clump")
	fl.StringVar(&format, "output", "text", "output format: text | json | jsonl | fasta")
	fl.IntVar(&threads, "threads", 0, "number of worker threads (0 = all CPUs)")
	fl.BoolVar(&sortFlag, "sort", false, "sort outputs for determinism (source file, sequence ID)")
	fl.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV")
	fl.BoolVar(&region, "region", false, "include the extracted region sequence in json/jsonl output")
	return cmd
}
