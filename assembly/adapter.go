package assembly

import (
	"context"
	"fmt"

	"go.uber.org/multierr"

	"github.com/opencloning/assemblysim/assemble"
	"github.com/opencloning/assemblysim/enzyme"
	"github.com/opencloning/assemblysim/fragment"
	"github.com/opencloning/assemblysim/mix"
	"github.com/opencloning/assemblysim/overhang"
	"github.com/opencloning/assemblysim/seqrecord"
	"github.com/opencloning/assemblysim/xlog"
)

// AdapterOutcome is the uniform tagged result of adapting one triplet of
// parts into a single linear fragment, resolving spec.md §9's Open
// Question (the source returns either a fragment or a (mix, error) pair;
// this implementation always returns one tagged variant instead).
type AdapterOutcome struct {
	OK       bool
	Fragment *fragment.Fragment
	Mix      *mix.Mix
	Err      error
}

// ThreePartAdapter implements the three-part adapter protocol (spec.md
// §4.8): parts are taken three at a time, each triplet digested by
// adapterEnzyme, and the two oversized ("adapter") overhang fragments and
// their reverse complements are used to find the shortest ligation path
// joining the triplet into one linear adapted fragment. The adapted
// fragments from every triplet are then combined in a single top-level
// combinatorial Spec.
//
// Grounded on original_source/dnacauldron/Assembly/builtin_assembly_classes/BASICAssembly.py:
// adapter fragments are identified by an overhang longer than the
// digesting enzyme's own canonical overhang length (that excess is the
// BASIC-style linker homology arm baked into the part sequences
// upstream - generating such a part is the caller's job, per spec.md §1's
// exclusion of part design/synthesis from this module's scope).
func ThreePartAdapter(ctx context.Context, parts []seqrecord.Record, adapterEnzyme enzyme.Enzyme, topLevel Spec) *Simulation {
	if len(parts)%3 != 0 {
		return &Simulation{Err: newFlaw(InvalidInputShape, map[string]any{"count": len(parts)},
			"part count %d is not a multiple of three", len(parts))}
	}

	sim := &Simulation{Spec: topLevel}
	var adapted []*fragment.Fragment

	for i := 0; i < len(parts); i += 3 {
		triplet := parts[i : i+3]
		outcome := adaptTriplet(triplet, adapterEnzyme)
		if outcome.Mix != nil {
			sim.Mixes = append(sim.Mixes, outcome.Mix)
		}
		if !outcome.OK {
			sim.Err = appendErr(sim.Err, outcome.Err)
			xlog.Log.Warnw("triplet adaptation failed", "triplet_index", i/3, "error", outcome.Err)
			continue
		}
		adapted = append(adapted, outcome.Fragment)
	}

	if len(adapted) == 0 {
		sim.Err = appendErr(sim.Err, newFlaw(AdapterAmbiguity, nil, "no triplet produced an adapted fragment"))
		return sim
	}

	topMix := mix.BuildMixFromFragments(adapted)
	sim.Mixes = append(sim.Mixes, topMix)

	topLevel.Parts = nil // the top-level stage runs directly off topMix's graph, not fresh digestion
	inner := runOverMix(ctx, topMix, topLevel)
	sim.Records = inner.Records
	sim.Warnings = append(sim.Warnings, inner.Warnings...)
	sim.Err = appendErr(sim.Err, inner.Err)
	return sim
}

// adaptTriplet digests a single three-part triplet with adapterEnzyme,
// locates the oversized-overhang adapter fragments, finds the shortest
// ligation path between each distinct pair of them, and assembles the
// path with fewest reverse-oriented fragments into one linear fragment.
func adaptTriplet(triplet []seqrecord.Record, adapterEnzyme enzyme.Enzyme) AdapterOutcome {
	m, err := mix.BuildMix(triplet, []enzyme.Enzyme{adapterEnzyme})
	if err != nil {
		return AdapterOutcome{Err: newFlaw(DigestFailure, nil, "%v", err)}
	}

	graph := m.CompatibilityGraph()
	var adapterNodes []int
	for i := 0; i < graph.NumNodes(); i++ {
		f := graph.Fragment(i)
		if overhangLength(f.Left) > adapterEnzyme.OverhangLength || overhangLength(f.Right) > adapterEnzyme.OverhangLength {
			adapterNodes = append(adapterNodes, i)
		}
	}
	if len(adapterNodes) != 4 {
		return AdapterOutcome{Mix: m, Err: newFlaw(AdapterAmbiguity, map[string]any{"found": len(adapterNodes)},
			"too many long overhangs: expected 4 adapter fragments, found %d", len(adapterNodes))}
	}

	var paths [][]int
	for _, a := range adapterNodes {
		for _, b := range adapterNodes {
			if a == b {
				continue
			}
			if p := shortestPath(graph, a, b); p != nil {
				paths = append(paths, p)
			}
		}
	}
	distinct := distinctPaths(paths)
	if len(distinct) != 2 {
		return AdapterOutcome{Mix: m, Err: newFlaw(AdapterAmbiguity, map[string]any{"found": len(distinct)},
			"too many ligations: expected 2 distinct paths between adapter fragments, found %d", len(distinct))}
	}

	best := distinct[0]
	bestReverse := countReverse(graph, best)
	for _, p := range distinct[1:] {
		if r := countReverse(graph, p); r < bestReverse {
			best, bestReverse = p, r
		}
	}

	fragments := make([]*fragment.Fragment, len(best))
	for i, idx := range best {
		fragments[i] = graph.Fragment(idx)
	}
	record, err := assemble.Assemble(fragments, false, false)
	if err != nil {
		return AdapterOutcome{Mix: m, Err: fmt.Errorf("adapting triplet: %w", err)}
	}

	adapted := fragment.New(record.Sequence, fragments[0].Left, fragments[len(fragments)-1].Right)
	adapted.SourceID = fmt.Sprintf("adapted(%s..%s)", fragments[0].SourceID, fragments[len(fragments)-1].SourceID)
	return AdapterOutcome{OK: true, Fragment: adapted, Mix: m}
}

func overhangLength(o overhang.Overhang) int {
	if o.Empty {
		return 0
	}
	return len(o.Sequence)
}

// shortestPath runs a breadth-first search from a to b over graph's
// compatibility edges, returning the node-index path (inclusive of both
// ends) or nil if b is unreachable from a.
func shortestPath(graph *mix.Graph, a, b int) []int {
	if a == b {
		return nil
	}
	prev := map[int]int{a: -1}
	queue := []int{a}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node == b {
			var path []int
			for n := b; n != -1; n = prev[n] {
				path = append([]int{n}, path...)
			}
			return path
		}
		for _, next := range graph.Successors(node) {
			if _, seen := prev[next]; seen {
				continue
			}
			prev[next] = node
			queue = append(queue, next)
		}
	}
	return nil
}

// distinctPaths deduplicates paths that visit the same node sequence.
func distinctPaths(paths [][]int) [][]int {
	seen := make(map[string]bool)
	var out [][]int
	for _, p := range paths {
		key := fmt.Sprint(p)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}

func countReverse(graph *mix.Graph, path []int) int {
	n := 0
	for _, idx := range path {
		if graph.Fragment(idx).IsReverse {
			n++
		}
	}
	return n
}

func appendErr(existing, next error) error {
	if next == nil {
		return existing
	}
	return multierr.Append(existing, next)
}
