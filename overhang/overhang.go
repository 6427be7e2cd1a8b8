/*
Package overhang models the sticky-end overhangs left by a restriction
enzyme digestion: a short single-stranded extension (or a blunt/empty end)
carried on one side of a DNA fragment.

Grounded on the teacher's clone.Overhang (_examples/bebop-poly/clone/clone.go)
and clone.Fragment's ForwardOverhang/ReverseOverhang string pair, generalized
into a typed value per spec.md §3-4.1.
*/
package overhang

import "github.com/opencloning/assemblysim/internal/dna"

// Strand identifies which strand of the duplex an overhang's single-stranded
// extension is read on.
type Strand int

const (
	FivePrime Strand = iota
	ThreePrime
)

func (s Strand) String() string {
	if s == FivePrime {
		return "5'"
	}
	return "3'"
}

// Overhang is a tagged value: either blunt (Empty) or a typed single-stranded
// extension. The zero value is not blunt: it has Empty false and an empty
// Sequence, and ComplementOf matches it against nothing. Use Blunt (or
// NewBlunt) for a blunt end.
type Overhang struct {
	Empty    bool
	Sequence string
	Strand   Strand
	// Bottom is true when the extension protrudes from the bottom strand
	// rather than the top strand (the "sign" of spec.md §3).
	Bottom bool
}

// Blunt is the canonical blunt/empty overhang value.
var Blunt = Overhang{Empty: true}

// NewBlunt returns a blunt overhang. Provided alongside the Blunt value for
// callers that prefer a constructor.
func NewBlunt() Overhang { return Blunt }

// New returns a typed single-stranded overhang.
func New(sequence string, strand Strand, bottom bool) Overhang {
	return Overhang{Sequence: sequence, Strand: strand, Bottom: bottom}
}

// ComplementOf reports whether a and b ligate: true iff both are blunt, or
// both are typed overhangs whose sequences are reverse complements of one
// another and whose strand/sign makes them ligatable (one protruding from
// the top strand, the other from the bottom, read on opposite strands).
// An overhang carrying an ambiguous base (N) never matches anything,
// including a bitwise-identical overhang, per spec.md §6.
func ComplementOf(a, b Overhang) bool {
	if a.Empty != b.Empty {
		return false
	}
	if a.Empty {
		return true
	}
	if a.Sequence == "" || b.Sequence == "" {
		return false
	}
	if dna.HasAmbiguous(a.Sequence) || dna.HasAmbiguous(b.Sequence) {
		return false
	}
	if a.Strand == b.Strand {
		return false
	}
	if a.Bottom == b.Bottom {
		return false
	}
	return dna.ReverseComplement(a.Sequence) == b.Sequence
}

// ReverseComplement returns the overhang seen from the opposite strand: the
// sequence is reverse-complemented and the strand/sign are flipped. A blunt
// overhang reverse-complements to itself.
func ReverseComplement(o Overhang) Overhang {
	if o.Empty {
		return Blunt
	}
	strand := FivePrime
	if o.Strand == FivePrime {
		strand = ThreePrime
	}
	return Overhang{
		Sequence: dna.ReverseComplement(o.Sequence),
		Strand:   strand,
		Bottom:   !o.Bottom,
	}
}

// String renders the overhang for canonical-key hashing: a short sigil
// encoding strand and sign, followed by the raw sequence (empty for blunt).
// Distinct sigils for each strand/sign combination ensure that visually
// similar but semantically distinct overhangs never collide when embedded
// in a larger hash input (spec.md Design Notes, "Canonical hashing").
func (o Overhang) String() string {
	if o.Empty {
		return "#"
	}
	sigil := byte('+')
	if o.Bottom {
		sigil = '-'
	}
	strandSigil := byte('5')
	if o.Strand == ThreePrime {
		strandSigil = '3'
	}
	return string([]byte{strandSigil, sigil}) + o.Sequence
}
