/*
Package fragment models an oriented, sticky-ended DNA fragment produced by
digestion: a core sequence plus left/right overhangs, reverse-complement
twin linkage, and the ligation-compatibility check the graph builder and
cycle enumerator drive off of.

Grounded on the teacher's clone.Fragment
(_examples/bebop-poly/clone/clone.go) and the reverse-complement/ligation
semantics of original_source/dnacauldron/AssemblyMix.py's FragmentsCycle
and StickyEndsSeqRecord (spec.md §4.2).
*/
package fragment

import (
	"strings"

	"github.com/opencloning/assemblysim/enzyme"
	"github.com/opencloning/assemblysim/internal/dna"
	"github.com/opencloning/assemblysim/overhang"
)

// Fragment is an immutable oriented double-stranded sequence with left and
// right sticky ends.
type Fragment struct {
	Sequence string
	Left     overhang.Overhang
	Right    overhang.Overhang

	// IsReverse marks a fragment materialized as another fragment's
	// reverse-complement twin. It has no meaning for a fragment as
	// originally produced by digestion (false there).
	IsReverse bool

	// SourceID is the identifier of the seqrecord.Record this fragment was
	// cut from (spec.md §6's "source" annotation provenance).
	SourceID string

	// InteriorSites are any recognition sites for the digesting enzyme that
	// remain inside Sequence after the cut — computed once at digestion
	// time so filter.NoRestrictionSite doesn't need to re-scan per fragment
	// per candidate cycle.
	InteriorSites []enzyme.Site

	// twin is the mutual reverse-complement link. It is populated by
	// mix.Mix when fragments are loaded into a mix (spec.md §9's "mutual
	// twin references" design note), not by ReverseComplement itself, so
	// that function stays a pure, side-effect-free value constructor.
	twin *Fragment
}

// New returns a fragment with no twin link set.
func New(sequence string, left, right overhang.Overhang) *Fragment {
	return &Fragment{Sequence: sequence, Left: left, Right: right}
}

// Twin returns the fragment's reverse-complement counterpart, or nil if one
// has not been linked (e.g. a fragment constructed directly with New,
// outside a mix.Mix).
func (f *Fragment) Twin() *Fragment { return f.twin }

// LinkTwins sets a and b as each other's reverse-complement twin.
func LinkTwins(a, b *Fragment) {
	a.twin = b
	b.twin = a
}

// ReverseComplement returns the reverse-complement twin of f: reversed
// sequence, left/right overhangs swapped and each reverse-complemented, and
// IsReverse flipped. It does not install the mutual twin link — the caller
// (ordinarily mix.Mix) does that with LinkTwins once both fragments exist.
//
// InteriorSites carries over unchanged: a restriction enzyme's recognition
// site is a double-stranded feature of the physical DNA, so whether it is
// present inside the fragment doesn't change when the fragment is
// redescribed from the other strand — only its coordinates would, and
// nothing reads InteriorSites[i].Start/End, only the enzyme name (see
// filter.NoRestrictionSite). Recomputing against the reversed sequence
// would produce an equivalent set at the cost of needing the original
// compiled enzyme list here, which Fragment doesn't otherwise carry.
func (f *Fragment) ReverseComplement() *Fragment {
	return &Fragment{
		Sequence:      dna.ReverseComplement(f.Sequence),
		Left:          overhang.ReverseComplement(f.Right),
		Right:         overhang.ReverseComplement(f.Left),
		IsReverse:     !f.IsReverse,
		SourceID:      f.SourceID,
		InteriorSites: f.InteriorSites,
	}
}

// WillClipBefore reports whether f's right overhang is complementary to
// other's left overhang — i.e. whether f immediately precedes other in a
// valid ligation order.
func (f *Fragment) WillClipBefore(other *Fragment) bool {
	return overhang.ComplementOf(f.Right, other.Left)
}

// AsStringKey serializes the fragment unambiguously for canonical-cycle
// hashing: left overhang, core sequence, right overhang, each separated by
// a character that cannot appear in any of the three (overhang.String
// already sigil-prefixes its output, and sequences are restricted to
// {A,C,G,T,N}).
func (f *Fragment) AsStringKey() string {
	var b strings.Builder
	b.WriteString(f.Left.String())
	b.WriteByte('|')
	b.WriteString(f.Sequence)
	b.WriteByte('|')
	b.WriteString(f.Right.String())
	return b.String()
}

// Len returns the number of bases in the fragment's core sequence (not
// counting overhangs, which are not double-counted once ligated).
func (f *Fragment) Len() int { return len(f.Sequence) }
