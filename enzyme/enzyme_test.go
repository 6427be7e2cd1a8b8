package enzyme

import "testing"

// EcoRI-like: palindromic site, overhang starting right at the site's edge (Skip 0).
var ecoRI = Enzyme{
	Name:            "EcoRI",
	RecognitionSite: "GAATTC",
	Skip:            0,
	OverhangLength:  4,
}

// BsaI-like: Type IIS, non-palindromic site, cuts downstream of the site.
var bsaI = Enzyme{
	Name:            "BsaI",
	RecognitionSite: "GGTCTC",
	Skip:            1,
	OverhangLength:  4,
	Directional:     true,
}

func TestCompilePalindromicHasNoReverseMatcher(t *testing.T) {
	c, err := Compile(ecoRI)
	if err != nil {
		t.Fatalf("Compile(EcoRI): %v", err)
	}
	if c.Reverse != nil {
		t.Fatalf("a palindromic site should not need a separate reverse matcher")
	}
}

func TestCompileNonPalindromicHasReverseMatcher(t *testing.T) {
	c, err := Compile(bsaI)
	if err != nil {
		t.Fatalf("Compile(BsaI): %v", err)
	}
	if c.Reverse == nil {
		t.Fatalf("a non-palindromic site needs a reverse-strand matcher")
	}
}

func TestCompileRejectsEmptySite(t *testing.T) {
	_, err := Compile(Enzyme{Name: "Empty"})
	if err == nil {
		t.Fatalf("Compile should reject an enzyme with no recognition site")
	}
}

func TestCompileRejectsInvalidCharacter(t *testing.T) {
	_, err := Compile(Enzyme{Name: "Bad", RecognitionSite: "GAATXC"})
	if err == nil {
		t.Fatalf("Compile should reject a non-IUPAC character in the recognition site")
	}
}

func TestSitesFindsForwardOccurrence(t *testing.T) {
	c, err := Compile(ecoRI)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	seq := "AAAAGAATTCAAAA"
	sites := c.Sites(seq)
	if len(sites) != 1 {
		t.Fatalf("Sites() = %d sites, want 1", len(sites))
	}
	if sites[0].Start != 4 || sites[0].End != 10 || !sites[0].Forward {
		t.Fatalf("unexpected site: %+v", sites[0])
	}
	if sites[0].Enzyme != "EcoRI" {
		t.Fatalf("site.Enzyme = %q, want EcoRI", sites[0].Enzyme)
	}
}

func TestSitesFindsBothStrandsForNonPalindromic(t *testing.T) {
	c, err := Compile(bsaI)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	fwd := "AAAAGGTCTCAAAAA"
	sites := c.Sites(fwd)
	if len(sites) != 1 || !sites[0].Forward {
		t.Fatalf("expected one forward site in %q, got %+v", fwd, sites)
	}

	rev := "AAAAAGAGACCAAAA" // reverse complement of GGTCTC is GAGACC
	sites = c.Sites(rev)
	if len(sites) != 1 || sites[0].Forward {
		t.Fatalf("expected one reverse-strand site in %q, got %+v", rev, sites)
	}
}

func TestIupacAmbiguityCode(t *testing.T) {
	// R = [AG], Y = [CT]: recognize both AGATCC and GGATCT.
	e := Enzyme{Name: "Ambiguous", RecognitionSite: "RGATCY"}
	c, err := Compile(e)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	for _, seq := range []string{"AGATCC", "GGATCT"} {
		if len(c.Sites(seq)) != 1 {
			t.Errorf("expected RGATCY to match %q", seq)
		}
	}
}

func TestSiteSpan(t *testing.T) {
	if got := ecoRI.SiteSpan(); got != 6 {
		t.Fatalf("EcoRI.SiteSpan() = %d, want 6", got)
	}
	if got := bsaI.SiteSpan(); got != 7 {
		t.Fatalf("BsaI.SiteSpan() = %d, want 7 (6 site + 1 skip)", got)
	}
}
