/*
Package mix owns a pool of sticky-ended fragments (and the records they were
cut from) together with the directed compatibility graph over them: an edge
from fragment a to fragment b exists iff a's right overhang ligates to b's
left overhang.

Grounded on original_source/dnacauldron/AssemblyMix/AssemblyMix.py's
compute_reverse_fragments/compute_connections_graph (the graph is built over
forward fragments UNION their reverse-complement twins, exactly as that
class does with networkx.DiGraph), and on the teacher's
clone.CircularLigate's all-pairs WillClipBefore walk
(_examples/bebop-poly/clone/clone.go) for the O(n^2) edge construction.
*/
package mix

import (
	"github.com/opencloning/assemblysim/digest"
	"github.com/opencloning/assemblysim/enzyme"
	"github.com/opencloning/assemblysim/fragment"
	"github.com/opencloning/assemblysim/seqrecord"
)

// Mix is a closed pool of fragments available for ligation: every forward
// fragment produced by digestion plus its reverse-complement twin, and the
// directed compatibility graph over that set.
type Mix struct {
	records   []seqrecord.Record
	fragments []*fragment.Fragment
	// edges[i] lists the indices in fragments that fragments[i] can clip
	// before (fragments[i].Right is complementary to fragments[j].Left).
	edges [][]int
}

// BuildMix digests every record with enzymes and assembles the resulting
// mix: each digestion fragment gets a reverse-complement twin linked via
// fragment.LinkTwins, and the compatibility graph is built over the
// forward-fragment-union-twin set.
func BuildMix(records []seqrecord.Record, enzymes []enzyme.Enzyme) (*Mix, error) {
	var all []*fragment.Fragment
	for _, r := range records {
		cut, err := digest.Cut(r, enzymes)
		if err != nil {
			return nil, err
		}
		all = append(all, cut...)
	}
	m := BuildMixFromFragments(all)
	m.records = append(m.records, records...)
	return m, nil
}

// BuildMixFromFragments builds a mix directly from an already-cut fragment
// set, without running digestion. Used for the second ligation stage of a
// multi-stage protocol (spec.md §9's three-part adapter), where the
// fragments being re-mixed were produced by an earlier assembly stage
// rather than straight digestion.
func BuildMixFromFragments(fragments []*fragment.Fragment) *Mix {
	all := make([]*fragment.Fragment, 0, len(fragments)*2)
	added := make(map[*fragment.Fragment]bool, len(fragments)*2)
	for _, f := range fragments {
		if added[f] {
			continue
		}
		all = append(all, f)
		if f.Twin() == nil {
			twin := f.ReverseComplement()
			fragment.LinkTwins(f, twin)
		}
		all = append(all, f.Twin())
		added[f], added[f.Twin()] = true, true
	}

	m := &Mix{fragments: all}
	m.buildGraph()
	return m
}

func (m *Mix) buildGraph() {
	m.edges = make([][]int, len(m.fragments))
	for i, a := range m.fragments {
		for j, b := range m.fragments {
			// Self-pairs are evaluated too (spec.md §4.4): a fragment whose
			// own right overhang ligates to its own left overhang gets a
			// self-loop, the same as any other compatible ordered pair.
			if a.WillClipBefore(b) {
				m.edges[i] = append(m.edges[i], j)
			}
		}
	}
}

// Fragments returns the full fragment set (forward fragments and their
// reverse-complement twins) backing the mix.
func (m *Mix) Fragments() []*fragment.Fragment { return m.fragments }

// Records returns the source records the mix was digested from (empty for
// a mix built directly from fragments via BuildMixFromFragments).
func (m *Mix) Records() []seqrecord.Record { return m.records }

// CompatibilityGraph returns a read-only adjacency view: Successors(i) are
// the indices, into Fragments(), of every fragment that Fragments()[i] can
// clip directly before.
func (m *Mix) CompatibilityGraph() *Graph {
	return &Graph{fragments: m.fragments, edges: m.edges}
}

// Graph is a read-only view of a Mix's compatibility graph.
type Graph struct {
	fragments []*fragment.Fragment
	edges     [][]int
}

// NumNodes returns the number of fragments in the graph.
func (g *Graph) NumNodes() int { return len(g.fragments) }

// Fragment returns the fragment at node index i.
func (g *Graph) Fragment(i int) *fragment.Fragment { return g.fragments[i] }

// Successors returns the node indices that fragment i can clip directly
// before.
func (g *Graph) Successors(i int) []int { return g.edges[i] }
