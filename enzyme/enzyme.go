/*
Package enzyme describes a restriction enzyme's recognition site and cut
geometry. Looking an enzyme up by name (e.g. against a REBASE dump) is an
external collaborator's job (spec.md §1, §6) — this package only models the
already-resolved specification a caller hands the digestion engine.

Grounded on the teacher's clone.Enzyme (_examples/bebop-poly/clone/clone.go)
and the trimmed field shape of io/rebase.Enzyme
(_examples/bebop-poly/io/rebase/rebase.go), generalized to the
top/bottom-strand cut-offset geometry spec.md §4.3/§6 describes.
*/
package enzyme

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/opencloning/assemblysim/internal/dna"
)

// Enzyme is a restriction enzyme specification: a recognition site pattern
// (IUPAC-encoded, read 5'->3' on the top strand) plus the cut geometry it
// leaves behind.
//
// Skip is the distance, in bases, from the recognition site to the start of
// the overhang the cut leaves (0 when the overhang begins right at the edge
// of the site; a cut inside the site itself is not modeled).
// OverhangLength is the length of that single-stranded extension.
// Directional marks Type IIS-style enzymes whose cut site lies outside the
// recognition site: only fragments bounded by a forward-oriented cut
// followed by a reverse-oriented one are kept, since a fragment bounded the
// other way round still carries an intact recognition site on both of its
// flanks and would be continuously re-cut in the reaction (spec.md §4.3,
// "GoldenGate" in the teacher's clone.go doc comment).
type Enzyme struct {
	Name            string
	RecognitionSite string
	Skip            int
	OverhangLength  int
	Directional     bool
}

// Site is one occurrence of an enzyme's recognition site in a sequence.
// Forward is true when the site was found reading the sequence 5'->3' as
// given; false when it was found on the reverse complement strand. Start
// and End are the boundaries of the literal recognition-site match itself,
// not of the cut it produces — digest.Cut applies Skip/OverhangLength to
// turn a Site into a cut position.
type Site struct {
	Start, End int
	Forward    bool
	// Enzyme is the name of the enzyme whose recognition site matched here.
	Enzyme string
}

var iupac = map[byte]string{
	'A': "A", 'C': "C", 'G': "G", 'T': "T",
	'R': "[AG]", 'Y': "[CT]", 'S': "[GC]", 'W': "[AT]",
	'K': "[GT]", 'M': "[AC]", 'B': "[CGT]", 'D': "[AGT]",
	'H': "[ACT]", 'V': "[ACG]", 'N': "[ACGT]",
}

func patternToRegexp(site string) (*regexp.Regexp, error) {
	var b strings.Builder
	for i := 0; i < len(site); i++ {
		class, ok := iupac[site[i]]
		if !ok {
			return nil, fmt.Errorf("enzyme: invalid recognition site character %q in %q", site[i], site)
		}
		b.WriteString(class)
	}
	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("enzyme: compiling recognition site %q: %w", site, err)
	}
	return re, nil
}

// Compiled holds the forward- and reverse-strand regexps for an Enzyme's
// recognition site, so repeated digestion of many records doesn't
// recompile the pattern each time.
type Compiled struct {
	Enzyme  Enzyme
	Forward *regexp.Regexp
	Reverse *regexp.Regexp
}

// Compile builds the forward and (for non-palindromic sites) reverse-strand
// matchers for e. A palindromic site (identical to its own reverse
// complement) needs only the forward matcher, since the reverse-strand
// regexp would match exactly the same positions.
func Compile(e Enzyme) (*Compiled, error) {
	if e.RecognitionSite == "" {
		return nil, fmt.Errorf("enzyme: %s has an empty recognition site", e.Name)
	}
	forward, err := patternToRegexp(e.RecognitionSite)
	if err != nil {
		return nil, err
	}
	c := &Compiled{Enzyme: e, Forward: forward}
	if !dna.IsPalindromic(e.RecognitionSite) {
		reverse, err := patternToRegexp(dna.ReverseComplement(e.RecognitionSite))
		if err != nil {
			return nil, err
		}
		c.Reverse = reverse
	}
	return c, nil
}

// Sites returns every occurrence of the compiled enzyme's recognition site
// in sequence, forward and reverse, sorted by start position.
func (c *Compiled) Sites(sequence string) []Site {
	var sites []Site
	for _, loc := range c.Forward.FindAllStringIndex(sequence, -1) {
		sites = append(sites, Site{Start: loc[0], End: loc[1], Forward: true, Enzyme: c.Enzyme.Name})
	}
	if c.Reverse != nil {
		for _, loc := range c.Reverse.FindAllStringIndex(sequence, -1) {
			sites = append(sites, Site{Start: loc[0], End: loc[1], Forward: false, Enzyme: c.Enzyme.Name})
		}
	}
	sort.SliceStable(sites, func(i, j int) bool { return sites[i].Start < sites[j].Start })
	return sites
}

// SiteSpan is the number of bases the recognition site plus its skip
// distance occupies.
func (e Enzyme) SiteSpan() int {
	return len(e.RecognitionSite) + e.Skip
}
