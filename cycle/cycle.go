/*
Package cycle enumerates simple directed cycles in a mix's compatibility
graph - each one a candidate circular DNA construct - and canonicalizes
them so that rotations and reverse-complement restatements of the same
physical construct collapse to a single result.

Grounded on original_source/dnacauldron/AssemblyMix/AssemblyMix.py's
FragmentsCycle (rotation to a canonical starting fragment,
reverse-complement-aware equality) and compute_circular_fragments_sets
(deterministic exhaustive search over nx.simple_cycles, plus a
randomized mode with a staling cutoff for graphs too large to enumerate
exhaustively). The staling-cutoff randomized walk is also grounded on the
teacher's random/random.go seeded-rand convention
(_examples/bebop-poly/random/random.go), and the canonical-hash idea on
seqhash/seqhash.go (_examples/bebop-poly/seqhash/seqhash.go), substituting
blake3 for the rotation/orientation-aware key this package builds from
fragment.Fragment.AsStringKey.
*/
package cycle

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/rand"

	"lukechampine.com/blake3"

	"github.com/opencloning/assemblysim/fragment"
	"github.com/opencloning/assemblysim/mix"
)

// Cycle is one simple cycle through a mix's compatibility graph: an
// ordered, head-to-tail-ligatable sequence of fragments that closes back
// on itself.
type Cycle struct {
	Fragments []*fragment.Fragment
}

// CanonicalKey returns a representation of the cycle that is identical for
// any rotation of its fragment order and for its reverse-complement
// restatement (walking the same physical ring the other way around, using
// each fragment's twin) - the two ways the same circular construct can
// appear as a distinct graph cycle.
func (c *Cycle) CanonicalKey() string {
	n := len(c.Fragments)
	if n == 0 {
		return ""
	}
	forward := make([]string, n)
	for i, f := range c.Fragments {
		forward[i] = f.AsStringKey()
	}
	backward := make([]string, n)
	for i := 0; i < n; i++ {
		f := c.Fragments[n-1-i]
		if twin := f.Twin(); twin != nil {
			backward[i] = twin.AsStringKey()
		} else {
			backward[i] = f.AsStringKey()
		}
	}
	a := rotateMinimal(forward)
	b := rotateMinimal(backward)
	if a <= b {
		return a
	}
	return b
}

// Hash returns the blake3 digest of the cycle's canonical key, hex
// encoded, for use as a dedup/seen-set key.
func (c *Cycle) Hash() string {
	sum := blake3.Sum256([]byte(c.CanonicalKey()))
	return hex.EncodeToString(sum[:])
}

func rotateMinimal(keys []string) string {
	n := len(keys)
	best := ""
	for start := 0; start < n; start++ {
		var b []byte
		for i := 0; i < n; i++ {
			b = append(b, keys[(start+i)%n]...)
			b = append(b, 0)
		}
		candidate := string(b)
		if best == "" || candidate < best {
			best = candidate
		}
	}
	return best
}

// Mode selects how an Enumerator walks the compatibility graph.
type Mode int

const (
	// Deterministic enumerates every simple cycle exhaustively, restricting
	// each DFS to nodes whose index is >= the cycle's start node (the
	// standard trick that stops the same cycle being rediscovered from each
	// of its own members).
	Deterministic Mode = iota
	// Randomized takes random walks from random start nodes, stopping after
	// StalingCutoff consecutive walks produce nothing new. Intended for
	// graphs too large to enumerate exhaustively in reasonable time.
	Randomized
)

type result struct {
	cycle *Cycle
	err   error
}

// Enumerator lazily streams canonical, deduplicated cycles from a mix's
// compatibility graph.
type Enumerator struct {
	graph *mix.Graph
	out   chan result
	ctx   context.Context
	cancel context.CancelFunc
	seen  map[string]struct{}
}

// NewDeterministic returns an Enumerator that exhaustively walks graph.
func NewDeterministic(graph *mix.Graph) *Enumerator {
	e := newEnumerator(graph)
	go e.runDeterministic()
	return e
}

// NewRandomized returns an Enumerator that takes random walks over graph,
// seeded by seed, stopping after stalingCutoff consecutive walks yield a
// cycle already seen (or no cycle at all).
func NewRandomized(graph *mix.Graph, seed int64, stalingCutoff int) *Enumerator {
	e := newEnumerator(graph)
	go e.runRandomized(rand.New(rand.NewSource(seed)), stalingCutoff)
	return e
}

func newEnumerator(graph *mix.Graph) *Enumerator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Enumerator{
		graph:  graph,
		out:    make(chan result),
		ctx:    ctx,
		cancel: cancel,
		seen:   make(map[string]struct{}),
	}
}

// Next blocks until the next canonical cycle is ready, the enumerator is
// exhausted (ok == false, err == nil), or ctx is done.
func (e *Enumerator) Next(ctx context.Context) (*Cycle, bool, error) {
	select {
	case r, open := <-e.out:
		if !open {
			return nil, false, nil
		}
		if r.err != nil {
			return nil, false, r.err
		}
		return r.cycle, true, nil
	case <-ctx.Done():
		return nil, false, ctx.Err()
	}
}

// Close stops the enumerator's background walk and releases its
// goroutine. Safe to call even if Next has not yet been exhausted.
func (e *Enumerator) Close() {
	e.cancel()
	for range e.out {
	}
}

func (e *Enumerator) emit(c *Cycle) bool {
	key := c.Hash()
	if _, dup := e.seen[key]; dup {
		return false
	}
	e.seen[key] = struct{}{}
	select {
	case e.out <- result{cycle: c}:
		return true
	case <-e.ctx.Done():
		return false
	}
}

func (e *Enumerator) runDeterministic() {
	defer close(e.out)
	n := e.graph.NumNodes()
	for start := 0; start < n; start++ {
		if !e.dfs(start, start, []int{start}, map[int]bool{start: true}) {
			return
		}
	}
}

func (e *Enumerator) dfs(start, node int, path []int, onPath map[int]bool) bool {
	select {
	case <-e.ctx.Done():
		return false
	default:
	}
	for _, next := range e.graph.Successors(node) {
		if next == start {
			e.emit(buildCycle(e.graph, path))
			select {
			case <-e.ctx.Done():
				return false
			default:
			}
			continue
		}
		if next < start || onPath[next] {
			continue
		}
		onPath[next] = true
		if !e.dfs(start, next, append(path, next), onPath) {
			return false
		}
		onPath[next] = false
	}
	return true
}

func (e *Enumerator) runRandomized(rng *rand.Rand, stalingCutoff int) {
	defer close(e.out)
	n := e.graph.NumNodes()
	if n == 0 {
		return
	}
	stale := 0
	for stale < stalingCutoff {
		select {
		case <-e.ctx.Done():
			return
		default:
		}
		start := rng.Intn(n)
		c, ok := randomWalk(e.graph, rng, start)
		if !ok {
			stale++
			continue
		}
		if !e.emit(c) {
			stale++
			continue
		}
		stale = 0
	}
	// The loop only exits this way by exhausting the staling cutoff
	// (ctx cancellation and the n==0 case both return directly above),
	// so this is always a genuine staling exit, never plain exhaustion -
	// surface it as an error through the stream boundary (spec.md §7)
	// rather than letting the channel close look identical to a fully
	// exhausted deterministic walk.
	select {
	case e.out <- result{err: &Staled{Cutoff: stalingCutoff}}:
	case <-e.ctx.Done():
	}
}

// Staled is returned through Enumerator.Next when a randomized walk hits
// its staling cutoff - Cutoff consecutive walks in a row produced either
// no cycle or one already seen - without the caller having asked it to
// stop. Deterministic enumeration never returns this; it only ever runs to
// true exhaustion or cancellation.
type Staled struct {
	Cutoff int
}

func (s *Staled) Error() string {
	return fmt.Sprintf("cycle: randomization staled after %d consecutive non-novel walks", s.Cutoff)
}

func randomWalk(g *mix.Graph, rng *rand.Rand, start int) (*Cycle, bool) {
	path := []int{start}
	onPath := map[int]bool{start: true}
	node := start
	maxSteps := g.NumNodes() + 1
	for step := 0; step < maxSteps; step++ {
		succ := g.Successors(node)
		if len(succ) == 0 {
			return nil, false
		}
		perm := rng.Perm(len(succ))
		next := -1
		for _, idx := range perm {
			if succ[idx] == start {
				next = start
				break
			}
		}
		if next == -1 {
			for _, idx := range perm {
				cand := succ[idx]
				if !onPath[cand] {
					next = cand
					break
				}
			}
		}
		if next == -1 {
			return nil, false
		}
		if next == start {
			return buildCycle(g, path), true
		}
		path = append(path, next)
		onPath[next] = true
		node = next
	}
	return nil, false
}

func buildCycle(g *mix.Graph, path []int) *Cycle {
	fragments := make([]*fragment.Fragment, len(path))
	for i, idx := range path {
		fragments[i] = g.Fragment(idx)
	}
	return &Cycle{Fragments: fragments}
}

// String renders a cycle as the ordered sequence of its fragments' source
// identifiers, for logging and error messages.
func (c *Cycle) String() string {
	ids := make([]string, len(c.Fragments))
	for i, f := range c.Fragments {
		ids[i] = f.SourceID
		if f.IsReverse {
			ids[i] += "(rc)"
		}
	}
	return fmt.Sprintf("%v", ids)
}
