// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"orifind-core/analysis"
	"orifind-core/fasta"
	"orifind/internal/output"
)

// Config controls the analysis pipeline.
type Config struct {
	Threads int             // number of worker goroutines (>=1)
	Params  analysis.Params // tunables shared by every record
}

// ForEachResult streams one analysis Report per FASTA record to the caller
// via visit. Records from all files are fanned out to a worker pool, each
// analyzed independently (the analysis itself is stateless), and collected by
// a single goroutine so visit is never called concurrently. The first error
// encountered — opening a file, analyzing a record, or a visit failure — is
// returned; context cancellation wins over all of them.
//
// Report order across workers is nondeterministic; callers that need a stable
// order sort downstream.
func ForEachResult(
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	visit func(output.Report) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	type job struct {
		rec        fasta.Record
		sourceFile string
	}
	type item struct {
		rep output.Report
		err error
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan item, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					res, err := analysis.Analyze(string(j.rec.Seq), cfg.Params)
					it := item{err: err}
					if err == nil {
						it.rep = output.Report{
							SequenceID: j.rec.ID,
							SourceFile: j.sourceFile,
							Result:     res,
						}
					}
					select {
					case results <- it:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for it := range results {
			if cerr != nil {
				continue
			}
			if it.err != nil {
				cerr = it.err
				continue
			}
			if err := visit(it.rep); err != nil && cerr == nil {
				cerr = err
			}
		}
	}()

	// Feed work
feed:
	for _, fa := range seqFiles {
		rch, err := fasta.StreamRecordsCtx(ctx, fa)
		if err != nil {
			// Keep scanning other files; first error will be returned.
			if cerr == nil {
				cerr = err
			}
			continue
		}
		for rec := range rch {
			select {
			case <-ctx.Done():
				break feed
			case jobs <- job{rec: rec, sourceFile: fa}:
			}
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return cerr
}
