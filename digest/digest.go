/*
Package digest turns a seqrecord.Record and an ordered list of restriction
enzymes into the sticky-ended fragment.Fragment set that digestion leaves
behind.

Grounded on the teacher's clone.CutWithEnzyme
(_examples/bebop-poly/clone/clone.go) — same doubled-sequence trick for
circular records, same forward/reverse cut-pair walk, same directional
(Type IIS) keep/discard rule — generalized from a single enzyme to an
ordered list (spec.md §4.3) and from clone.Fragment's plain overhang
strings to the typed overhang.Overhang model, per
original_source/dnacauldron/AssemblyMix/RestrictionLigationMix.py's
digest_seqrecord_with_sticky_ends.
*/
package digest

import (
	"fmt"
	"sort"

	"github.com/opencloning/assemblysim/enzyme"
	"github.com/opencloning/assemblysim/fragment"
	"github.com/opencloning/assemblysim/overhang"
	"github.com/opencloning/assemblysim/seqrecord"
)

// Failure is returned when a record or enzyme list cannot be digested:
// an enzyme's recognition site fails to compile, or the record contains a
// base outside {A,C,G,T,N} (case-insensitive).
type Failure struct {
	Message string
}

func (f *Failure) Error() string { return "digest: " + f.Message }

func fail(format string, args ...any) error {
	return &Failure{Message: fmt.Sprintf(format, args...)}
}

var validBase = map[byte]bool{
	'A': true, 'C': true, 'G': true, 'T': true, 'N': true,
	'a': true, 'c': true, 'g': true, 't': true, 'n': true,
}

// cut is one resolved cut position: Position marks the start of the
// OverhangLength-base overhang it leaves, in the coordinate frame of the
// (possibly doubled) search sequence.
type cut struct {
	Position       int
	OverhangLength int
	Forward        bool
	enzyme         enzyme.Enzyme
}

// Cut digests record with enzymes (applied together, in the order given)
// and returns the resulting fragments in sequence order. A record with no
// recognition sites for any of the enzymes yields a single blunt fragment
// if linear, or no fragments at all if circular (spec.md §4.3 edge cases:
// an unrecognized circular input is inert).
func Cut(record seqrecord.Record, enzymes []enzyme.Enzyme) ([]*fragment.Fragment, error) {
	for i := 0; i < len(record.Sequence); i++ {
		if !validBase[record.Sequence[i]] {
			return nil, fail("record %q contains invalid base %q at position %d", record.ID, record.Sequence[i], i)
		}
	}

	compiled := make([]*enzyme.Compiled, 0, len(enzymes))
	directional := false
	for _, e := range enzymes {
		c, err := enzyme.Compile(e)
		if err != nil {
			return nil, fail("%v", err)
		}
		compiled = append(compiled, c)
		if e.Directional {
			directional = true
		}
	}

	originalLen := len(record.Sequence)
	searchSeq := record.Sequence
	if !record.Linear {
		searchSeq = record.Sequence + record.Sequence
	}

	var cuts []cut
	for _, c := range compiled {
		for _, site := range c.Sites(searchSeq) {
			var position int
			if site.Forward {
				position = site.End + c.Enzyme.Skip
			} else {
				position = site.Start - c.Enzyme.Skip - c.Enzyme.OverhangLength
			}
			if !record.Linear && position < 0 {
				// the same cut is found again from the site's second copy
				continue
			}
			cuts = append(cuts, cut{
				Position:       position,
				OverhangLength: c.Enzyme.OverhangLength,
				Forward:        site.Forward,
				enzyme:         c.Enzyme,
			})
		}
	}
	sort.Slice(cuts, func(i, j int) bool { return cuts[i].Position < cuts[j].Position })

	if len(cuts) == 0 {
		if record.Linear {
			return []*fragment.Fragment{
				fragment.New(record.Sequence, overhang.Blunt, overhang.Blunt),
			}, nil
		}
		return nil, nil
	}

	// overhangAt returns the left-reading and right-reading typed overhangs
	// for the OverhangLength top-strand bases starting at c.Position: right
	// is the 5' top-strand overhang the upstream fragment keeps, and left is
	// its reverse complement read on the bottom strand — the same relation
	// fragment.ReverseComplement uses between Left and Right — so the two
	// fragments flanking a single cut are always mutually complementary
	// regardless of whether the overhang sequence happens to be
	// palindromic.
	overhangAt := func(c cut, seq string) (left, right overhang.Overhang, err error) {
		if c.Position < 0 || c.Position+c.OverhangLength > len(seq) {
			return overhang.Overhang{}, overhang.Overhang{}, fail("cut from enzyme %s falls outside its sequence", c.enzyme.Name)
		}
		extracted := seq[c.Position : c.Position+c.OverhangLength]
		right = overhang.New(extracted, overhang.FivePrime, false)
		left = overhang.ReverseComplement(right)
		return left, right, nil
	}

	var fragments []*fragment.Fragment

	emit := func(left, right overhang.Overhang, core string) {
		fragments = append(fragments, fragment.New(core, left, right))
	}

	if record.Linear {
		// Outermost ends are blunt; interior boundaries come from cuts.
		first := cuts[0]
		_, firstRight, err := overhangAt(first, searchSeq)
		if err != nil {
			return nil, err
		}
		emit(overhang.Blunt, firstRight, record.Sequence[:first.Position])

		for i := 0; i < len(cuts)-1; i++ {
			cur, next := cuts[i], cuts[i+1]
			if directional && !(cur.Forward && !next.Forward) {
				continue
			}
			curLeft, _, err := overhangAt(cur, searchSeq)
			if err != nil {
				return nil, err
			}
			_, nextRight, err := overhangAt(next, searchSeq)
			if err != nil {
				return nil, err
			}
			emit(curLeft, nextRight, record.Sequence[cur.Position+cur.OverhangLength:next.Position])
		}

		last := cuts[len(cuts)-1]
		lastLeft, _, err := overhangAt(last, searchSeq)
		if err != nil {
			return nil, err
		}
		emit(lastLeft, overhang.Blunt, record.Sequence[last.Position+last.OverhangLength:])
	} else {
		// cuts in a circular search repeat once per copy of the doubled
		// sequence; walking cur through only the first copy and pairing it
		// with whatever comes next (another first-copy cut, or the
		// wraparound doubled copy of the very first cut) visits each
		// junction exactly once, including the wraparound one.
		for i := 0; i < len(cuts)-1; i++ {
			cur, next := cuts[i], cuts[i+1]
			if cur.Position >= originalLen {
				break
			}
			if directional && !(cur.Forward && !next.Forward) {
				continue
			}
			curLeft, _, err := overhangAt(cur, searchSeq)
			if err != nil {
				return nil, err
			}
			_, nextRight, err := overhangAt(next, searchSeq)
			if err != nil {
				return nil, err
			}
			emit(curLeft, nextRight, searchSeq[cur.Position+cur.OverhangLength:next.Position])
		}
	}

	for _, f := range fragments {
		f.SourceID = record.ID
		f.InteriorSites = interiorSites(compiled, f.Sequence)
	}
	return fragments, nil
}

// interiorSites scans seq (a fragment's core sequence, overhangs already
// excluded) for any remaining recognition sites from enzymes — used by
// filter.NoRestrictionSite to discard fragments that would be re-cut.
func interiorSites(compiled []*enzyme.Compiled, seq string) []enzyme.Site {
	var sites []enzyme.Site
	for _, c := range compiled {
		sites = append(sites, c.Sites(seq)...)
	}
	return sites
}
