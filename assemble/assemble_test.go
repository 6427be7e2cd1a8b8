package assemble

import (
	"testing"

	"github.com/opencloning/assemblysim/fragment"
	"github.com/opencloning/assemblysim/overhang"
	"github.com/opencloning/assemblysim/seqrecord"
)

func stickyPair() (*fragment.Fragment, *fragment.Fragment) {
	right := overhang.New("AATT", overhang.FivePrime, false)
	left := overhang.ReverseComplement(right)
	a := fragment.New("GGGG", overhang.Blunt, right)
	a.SourceID = "a"
	b := fragment.New("CCCC", left, overhang.Blunt)
	b.SourceID = "b"
	return a, b
}

func TestAssembleLinearWritesOverhangOnce(t *testing.T) {
	a, b := stickyPair()
	record, err := Assemble([]*fragment.Fragment{a, b}, false, false)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	want := "GGGG" + "AATT" + "CCCC"
	if record.Sequence != want {
		t.Fatalf("Sequence = %q, want %q", record.Sequence, want)
	}
	if !record.Linear {
		t.Fatalf("a non-circularized assembly should be linear")
	}
}

func TestAssembleCircularClosesRing(t *testing.T) {
	right := overhang.New("AATT", overhang.FivePrime, false)
	left := overhang.ReverseComplement(right)
	a := fragment.New("GGGG", left, right)
	record, err := Assemble([]*fragment.Fragment{a}, true, false)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	want := "GGGG" + "AATT"
	if record.Sequence != want {
		t.Fatalf("Sequence = %q, want %q", record.Sequence, want)
	}
	if record.Linear {
		t.Fatalf("a circularized assembly should not be linear")
	}
}

func TestAssembleRejectsMismatchedJunction(t *testing.T) {
	a := fragment.New("GGGG", overhang.Blunt, overhang.New("AATT", overhang.FivePrime, false))
	b := fragment.New("CCCC", overhang.New("GGCC", overhang.ThreePrime, true), overhang.Blunt)
	_, err := Assemble([]*fragment.Fragment{a, b}, false, false)
	if err == nil {
		t.Fatalf("Assemble should reject fragments whose junction overhangs don't complement")
	}
	if _, ok := err.(*JunctionMismatch); !ok {
		t.Fatalf("expected a *JunctionMismatch, got %T", err)
	}
}

func TestAssembleRejectsEmpty(t *testing.T) {
	_, err := Assemble(nil, false, false)
	if err != EmptyAssembly {
		t.Fatalf("Assemble(nil) error = %v, want EmptyAssembly", err)
	}
}

func TestAssembleAnnotatesSourceAndHomology(t *testing.T) {
	a, b := stickyPair()
	record, err := Assemble([]*fragment.Fragment{a, b}, false, true)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	var sources, homologies int
	for _, ann := range record.Annotations {
		switch ann.Type {
		case seqrecord.AnnotationSource:
			sources++
		case seqrecord.AnnotationHomology:
			homologies++
		}
	}
	if sources != 2 {
		t.Errorf("expected 2 source annotations, got %d", sources)
	}
	if homologies != 1 {
		t.Errorf("expected 1 homology annotation for the single junction, got %d", homologies)
	}
}

func TestAssembleSkipsHomologyWhenBlunt(t *testing.T) {
	a := fragment.New("GGGG", overhang.Blunt, overhang.Blunt)
	a.SourceID = "a"
	b := fragment.New("CCCC", overhang.Blunt, overhang.Blunt)
	b.SourceID = "b"
	record, err := Assemble([]*fragment.Fragment{a, b}, false, true)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if record.Sequence != "GGGGCCCC" {
		t.Fatalf("blunt ligation should not insert any extra bases, got %q", record.Sequence)
	}
	for _, ann := range record.Annotations {
		if ann.Type == seqrecord.AnnotationHomology {
			t.Fatalf("a blunt junction should not get a homology annotation")
		}
	}
}
