/*
Package filter provides composable predicates over a candidate fragment set
(a not-yet-assembled cycle) and over an assembled record, used to prune
combinatorial output before or after assembly.

Grounded on original_source/dnacauldron/AssemblyMix/AssemblyMix.py's
`fragments_sets_filters` and `record_filters` keyword arguments to
`compute_circular_assemblies` (a list of predicates ANDed together, each
either "filter out this candidate fragment set" or "filter out this
assembled record"), and the `NoRestrictionSiteFilter`/length-filter
examples in original_source/dnacauldron's test suite.
*/
package filter

import (
	"github.com/opencloning/assemblysim/enzyme"
	"github.com/opencloning/assemblysim/fragment"
	"github.com/opencloning/assemblysim/seqrecord"
)

// FragmentSet is a predicate over a candidate (not yet assembled) ordered
// fragment set - a cycle before it has been turned into a Record.
type FragmentSet func(fragments []*fragment.Fragment) bool

// Record is a predicate over an already-assembled record.
type Record func(r seqrecord.Record) bool

// AllFragmentSets composes predicates with short-circuit AND: the result
// rejects a fragment set as soon as any predicate rejects it.
func AllFragmentSets(predicates ...FragmentSet) FragmentSet {
	return func(fragments []*fragment.Fragment) bool {
		for _, p := range predicates {
			if !p(fragments) {
				return false
			}
		}
		return true
	}
}

// AllRecords composes record predicates with short-circuit AND.
func AllRecords(predicates ...Record) Record {
	return func(r seqrecord.Record) bool {
		for _, p := range predicates {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// NoRestrictionSite rejects any fragment set where a fragment still
// carries an interior recognition site for e - such a construct would be
// re-cut by the same enzyme in the reaction and so can never actually form
// (spec.md §4.3's InteriorSites bookkeeping exists precisely to make this
// filter cheap).
func NoRestrictionSite(e enzyme.Enzyme) FragmentSet {
	return func(fragments []*fragment.Fragment) bool {
		for _, f := range fragments {
			for _, site := range f.InteriorSites {
				if site.Enzyme == e.Name {
					return false
				}
			}
		}
		return true
	}
}

// MinLength rejects an assembled record shorter than n bases.
func MinLength(n int) Record {
	return func(r seqrecord.Record) bool {
		return r.Length() >= n
	}
}

// MaxLength rejects an assembled record longer than n bases.
func MaxLength(n int) Record {
	return func(r seqrecord.Record) bool {
		return r.Length() <= n
	}
}

// MaxFragments rejects a candidate fragment set with more than n
// fragments - a cheap way to bound the combinatorial search before the
// more expensive assembly/annotation step runs.
func MaxFragments(n int) FragmentSet {
	return func(fragments []*fragment.Fragment) bool {
		return len(fragments) <= n
	}
}
