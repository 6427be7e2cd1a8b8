package filter

import (
	"testing"

	"github.com/opencloning/assemblysim/enzyme"
	"github.com/opencloning/assemblysim/fragment"
	"github.com/opencloning/assemblysim/overhang"
	"github.com/opencloning/assemblysim/seqrecord"
)

var ecoRI = enzyme.Enzyme{Name: "EcoRI", RecognitionSite: "GAATTC"}
var bsaI = enzyme.Enzyme{Name: "BsaI", RecognitionSite: "GGTCTC"}

func cleanFragment() *fragment.Fragment {
	return fragment.New("ACGTACGT", overhang.Blunt, overhang.Blunt)
}

func TestNoRestrictionSiteAcceptsCleanSet(t *testing.T) {
	f := cleanFragment()
	if !NoRestrictionSite(ecoRI)([]*fragment.Fragment{f}) {
		t.Fatalf("a fragment with no interior sites should pass the filter")
	}
}

func TestNoRestrictionSiteRejectsMatchingEnzyme(t *testing.T) {
	f := cleanFragment()
	f.InteriorSites = []enzyme.Site{{Start: 0, End: 6, Forward: true, Enzyme: "EcoRI"}}
	if NoRestrictionSite(ecoRI)([]*fragment.Fragment{f}) {
		t.Fatalf("a fragment with an interior EcoRI site should fail the EcoRI filter")
	}
}

func TestNoRestrictionSiteIgnoresOtherEnzymes(t *testing.T) {
	f := cleanFragment()
	f.InteriorSites = []enzyme.Site{{Start: 0, End: 6, Forward: true, Enzyme: "BsaI"}}
	if !NoRestrictionSite(ecoRI)([]*fragment.Fragment{f}) {
		t.Fatalf("a BsaI interior site should not trip the EcoRI filter")
	}
	if NoRestrictionSite(bsaI)([]*fragment.Fragment{f}) {
		t.Fatalf("a BsaI interior site should trip the BsaI filter")
	}
}

func TestNoRestrictionSiteRejectsReverseComplementTwin(t *testing.T) {
	// A recognition site is a double-stranded feature: a fragment carrying
	// one must still be rejected once it's been reverse-complemented into
	// the twin instance a cycle might actually enumerate (fragment.go's
	// ReverseComplement carries InteriorSites over for exactly this reason).
	f := cleanFragment()
	f.InteriorSites = []enzyme.Site{{Start: 0, End: 6, Forward: true, Enzyme: "EcoRI"}}
	twin := f.ReverseComplement()
	if NoRestrictionSite(ecoRI)([]*fragment.Fragment{twin}) {
		t.Fatalf("the reverse-complement twin of a site-bearing fragment should still fail the EcoRI filter")
	}
}

func TestMinMaxLength(t *testing.T) {
	short := seqrecord.New("s", "ACGT")
	long := seqrecord.New("l", "ACGTACGTACGT")

	if !MinLength(5)(long) {
		t.Errorf("a 12bp record should pass MinLength(5)")
	}
	if MinLength(5)(short) {
		t.Errorf("a 4bp record should fail MinLength(5)")
	}
	if !MaxLength(5)(short) {
		t.Errorf("a 4bp record should pass MaxLength(5)")
	}
	if MaxLength(5)(long) {
		t.Errorf("a 12bp record should fail MaxLength(5)")
	}
}

func TestMaxFragments(t *testing.T) {
	frags := []*fragment.Fragment{cleanFragment(), cleanFragment(), cleanFragment()}
	if !MaxFragments(3)(frags) {
		t.Errorf("3 fragments should pass MaxFragments(3)")
	}
	if MaxFragments(2)(frags) {
		t.Errorf("3 fragments should fail MaxFragments(2)")
	}
}

func TestAllFragmentSetsShortCircuits(t *testing.T) {
	alwaysFalse := func(fragments []*fragment.Fragment) bool { return false }
	calledSecond := false
	recordsCall := func(fragments []*fragment.Fragment) bool { calledSecond = true; return true }

	combined := AllFragmentSets(alwaysFalse, recordsCall)
	if combined([]*fragment.Fragment{cleanFragment()}) {
		t.Fatalf("combined predicate should reject when any predicate rejects")
	}
	if calledSecond {
		t.Fatalf("AllFragmentSets should short-circuit and skip later predicates")
	}
}

func TestAllRecordsComposesWithAnd(t *testing.T) {
	r := seqrecord.New("r", "ACGTACGT")
	combined := AllRecords(MinLength(4), MaxLength(10))
	if !combined(r) {
		t.Fatalf("an 8bp record should satisfy MinLength(4) AND MaxLength(10)")
	}
	if AllRecords(MinLength(100))(r) {
		t.Fatalf("an 8bp record should fail MinLength(100)")
	}
}
