package assembly

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/opencloning/assemblysim/assemble"
	"github.com/opencloning/assemblysim/config"
	"github.com/opencloning/assemblysim/cycle"
	"github.com/opencloning/assemblysim/enzyme"
	"github.com/opencloning/assemblysim/filter"
	"github.com/opencloning/assemblysim/mix"
	"github.com/opencloning/assemblysim/seqrecord"
	"github.com/opencloning/assemblysim/xlog"
)

// Spec parameterizes a single combinatorial orchestration run.
type Spec struct {
	Parts  []seqrecord.Record
	Enzyme enzyme.Enzyme
	Name   string

	FragmentFilter filter.FragmentSet
	RecordFilter   filter.Record

	MaxConstructs      int
	Expected           ExpectedConstructCount
	AnnotateHomologies bool

	Randomize     bool
	Seed          int64
	StalingCutoff int
}

// Simulation is the result of an orchestration run: the produced records,
// the mix(es) that backed the run, and collected warnings/errors
// (spec.md §3's "Assembly simulation result", §6).
type Simulation struct {
	Spec     Spec
	Records  []seqrecord.Record
	Mixes    []*mix.Mix
	Warnings []string
	Err      error
}

// Combinatorial runs the single-enzyme combinatorial assembly protocol
// (spec.md §4.8): digest every part with spec.Enzyme, enumerate canonical
// cycles of the resulting mix, apply filters, assemble surviving cycles,
// and stop at spec.MaxConstructs or stream exhaustion. Results are stably
// sorted by assembled sequence for reproducibility.
func Combinatorial(ctx context.Context, spec Spec) *Simulation {
	m, err := mix.BuildMix(spec.Parts, []enzyme.Enzyme{spec.Enzyme})
	if err != nil {
		sim := &Simulation{Spec: spec}
		sim.Err = newFlaw(DigestFailure, nil, "building mix: %v", err)
		xlog.Log.Errorw("digest failed", "spec", spec.Name, "error", err)
		return sim
	}
	xlog.Log.Debugw("mix built", "spec", spec.Name, "fragments", len(m.Fragments()))
	return runOverMix(ctx, m, spec)
}

// runOverMix runs the cycle-enumeration/filter/assemble loop against an
// already-built mix - shared by Combinatorial (which builds the mix from
// raw parts) and ThreePartAdapter's top-level stage (which runs over a
// mix already assembled from adapted triplet fragments).
func runOverMix(ctx context.Context, m *mix.Mix, spec Spec) *Simulation {
	sim := &Simulation{Spec: spec, Mixes: []*mix.Mix{m}}

	stalingCutoff := spec.StalingCutoff
	if stalingCutoff == 0 {
		stalingCutoff = config.Default().StalingCutoff
	}

	var enumerator *cycle.Enumerator
	if spec.Randomize {
		enumerator = cycle.NewRandomized(m.CompatibilityGraph(), spec.Seed, stalingCutoff)
	} else {
		enumerator = cycle.NewDeterministic(m.CompatibilityGraph())
	}
	defer enumerator.Close()

	maxConstructs := spec.MaxConstructs
	if maxConstructs <= 0 {
		maxConstructs = config.Default().MaxConstructs
	}

	var records []seqrecord.Record
	for {
		c, ok, err := enumerator.Next(ctx)
		if err != nil {
			var staled *cycle.Staled
			if errors.As(err, &staled) {
				sim.Err = multierr.Append(sim.Err, newFlaw(RandomizationStaled,
					map[string]any{"cutoff": staled.Cutoff}, "%v", staled))
				xlog.Log.Warnw("randomized enumeration staled", "spec", spec.Name, "cutoff", staled.Cutoff)
			} else {
				sim.Err = multierr.Append(sim.Err, fmt.Errorf("cycle enumeration: %w", err))
			}
			break
		}
		if !ok {
			break
		}
		if spec.FragmentFilter != nil && !spec.FragmentFilter(c.Fragments) {
			continue
		}
		record, err := assemble.Assemble(c.Fragments, true, spec.AnnotateHomologies)
		if err != nil {
			if _, ok := err.(*assemble.JunctionMismatch); ok {
				// A mismatch here means the cycle enumerator yielded a
				// cycle whose edges weren't actually ligatable - an engine
				// bug, not an expected outcome of search. Abort the run
				// rather than silently dropping the candidate.
				sim.Err = multierr.Append(sim.Err, newFlaw(JunctionMismatch, nil, "%v", err))
				xlog.Log.Errorw("junction mismatch on enumerated cycle", "spec", spec.Name, "cycle", c.String(), "error", err)
				break
			}
			sim.Err = multierr.Append(sim.Err, err)
			continue
		}
		if spec.RecordFilter != nil && !spec.RecordFilter(record) {
			continue
		}
		if record.Length() < config.Default().MinConstructLength {
			continue
		}
		record.ID = fmt.Sprintf("%s-%d", spec.Name, len(records)+1)
		records = append(records, record)
		if len(records) >= maxConstructs {
			warning := newFlaw(MaxConstructsReached, map[string]any{"cap": maxConstructs}, "stopped after %d constructs", maxConstructs)
			sim.Warnings = append(sim.Warnings, warning.Error())
			xlog.Log.Warnw("max constructs reached", "spec", spec.Name, "cap", maxConstructs)
			break
		}
	}

	slices.SortStableFunc(records, func(a, b seqrecord.Record) bool { return a.Sequence < b.Sequence })
	sim.Records = records

	if !spec.Expected.satisfiedBy(len(records)) {
		sim.Err = multierr.Append(sim.Err, newFlaw(
			ExpectedConstructCountViolation,
			map[string]any{"expected": spec.Expected.String(), "actual": len(records)},
			"expected %s construct(s), found %d", spec.Expected, len(records),
		))
	}

	return sim
}

// RunMany runs each spec's Combinatorial orchestration concurrently, since
// every Simulation owns its own independent Mix (spec.md §5's
// single-threaded-per-mix guarantee only constrains work within one mix).
// Grounded on the teacher's bio/bio.go fan-out pattern
// (_examples/bebop-poly/bio/bio.go), substituting golang.org/x/sync/errgroup
// for its manual WaitGroup.
func RunMany(ctx context.Context, specs []Spec) ([]*Simulation, error) {
	results := make([]*Simulation, len(specs))

	group, ctx := errgroup.WithContext(ctx)
	for i, spec := range specs {
		i, spec := i, spec
		group.Go(func() error {
			results[i] = Combinatorial(ctx, spec)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
