// core/analysis/analysis.go
package analysis

import (
	"orifind-core/clump"
	"orifind-core/ori"
)

// Default tunables, matching the values the tool ships with.
const (
	DefaultSkewWindow    = 1000
	DefaultFlank         = 5000
	DefaultK             = 9
	DefaultClumpWindow   = 1000
	DefaultMinOccurrence = 3
)

// Params holds the five tunables of a full analysis run.
type Params struct {
	SkewWindow    int // skew window size (bases)
	Flank         int // flank radius around the minimal-skew point
	K             int // k-mer length for the clump scan
	ClumpWindow   int // clump scan window length
	MinOccurrence int // occurrences for a k-mer to qualify as a clump
}

// DefaultParams returns the stock parameter set.
func DefaultParams() Params {
	return Params{
		SkewWindow:    DefaultSkewWindow,
		Flank:         DefaultFlank,
		K:             DefaultK,
		ClumpWindow:   DefaultClumpWindow,
		MinOccurrence: DefaultMinOccurrence,
	}
}

// Result is the outcome of one analysis run.
//
// Coordinate contract: OriStart/OriEnd are absolute positions in the analyzed
// sequence, while the windows keying Clumps are relative to OriSeq (add
// OriStart to translate into the absolute frame). Consumers depend on both
// conventions, so neither side is normalized to the other.
type Result struct {
	OriStart int
	OriEnd   int
	OriSeq   string
	Clumps   clump.Map
}

// Analyze locates the candidate replication origin of seq and characterizes
// it: extract the flanked minimal-cumulative-skew region, then scan that
// region for k-mer clumps. Pure function of its inputs; invocations share no
// state.
func Analyze(seq string, p Params) (Result, error) {
	region, err := ori.ExtractRegion(seq, p.SkewWindow, p.Flank)
	if err != nil {
		return Result{}, err
	}
	clumps, err := clump.Find(region.Seq, p.K, p.ClumpWindow, p.MinOccurrence)
	if err != nil {
		return Result{}, err
	}
	return Result{
		OriStart: region.Start,
		OriEnd:   region.End,
		OriSeq:   region.Seq,
		Clumps:   clumps,
	}, nil
}
