/*
Package assemble turns an ordered, ligatable fragment sequence - typically
one cycle.Cycle's Fragments - into a single seqrecord.Record: the top-strand
sequence with each junction's overhang bases written exactly once, plus
source and (optionally) homology annotations at the original fragment
boundaries.

Grounded on the teacher's clone.go ligation concatenation inside
recurseLigate/CircularLigate (_examples/bebop-poly/clone/clone.go) and on
original_source/dnacauldron's StickyEndsSeqRecord.assemble /
record_assembly.assemble_joined_fragments, which is where the "source" and
"homology" feature annotations (spec.md §6) come from.
*/
package assemble

import (
	"fmt"
	"strings"

	"github.com/opencloning/assemblysim/fragment"
	"github.com/opencloning/assemblysim/overhang"
	"github.com/opencloning/assemblysim/seqrecord"
)

// JunctionMismatch is returned when two adjacent fragments in the sequence
// handed to Assemble do not actually ligate - their overhangs are not
// complementary. Callers are expected to hand Assemble a ligatable order
// (the orchestrators treat a mismatch on an enumerated cycle as an engine
// bug and abort), but Assemble itself returns it as a plain error value
// rather than panicking.
type JunctionMismatch struct {
	Index int
	A, B  *fragment.Fragment
}

func (e *JunctionMismatch) Error() string {
	return fmt.Sprintf("assemble: junction %d: %q does not ligate to %q", e.Index, e.A.AsStringKey(), e.B.AsStringKey())
}

// EmptyAssembly is returned when Assemble is called with no fragments.
var EmptyAssembly = fmt.Errorf("assemble: no fragments to assemble")

// Assemble concatenates fragments in order into a Record. When circularize
// is true, the last fragment's right overhang is also checked and written
// against the first fragment's left overhang, closing the ring, and the
// resulting Record is circular; otherwise the ends are left as-is and the
// Record is linear. When annotateHomologies is true, a homology annotation
// is added at each sticky junction in addition to each fragment's source
// annotation; blunt junctions get none.
func Assemble(fragments []*fragment.Fragment, circularize, annotateHomologies bool) (seqrecord.Record, error) {
	if len(fragments) == 0 {
		return seqrecord.Record{}, EmptyAssembly
	}

	var seq strings.Builder
	var annotations []seqrecord.Annotation
	offset := 0

	for i, f := range fragments {
		sourceStart := offset
		seq.WriteString(f.Sequence)
		offset += f.Len()

		isLast := i == len(fragments)-1
		if !isLast || circularize {
			next := fragments[(i+1)%len(fragments)]
			if !overhang.ComplementOf(f.Right, next.Left) {
				return seqrecord.Record{}, &JunctionMismatch{Index: i, A: f, B: next}
			}
			if !f.Right.Empty {
				junctionStart := offset
				seq.WriteString(f.Right.Sequence)
				offset += len(f.Right.Sequence)
				if annotateHomologies {
					annotations = append(annotations, seqrecord.Annotation{
						Type:  seqrecord.AnnotationHomology,
						Start: junctionStart,
						End:   offset,
					})
				}
			}
		}

		annotations = append(annotations, seqrecord.Annotation{
			Type:  seqrecord.AnnotationSource,
			Start: sourceStart,
			End:   offset,
			Qualifiers: map[string]string{
				"source_id": f.SourceID,
				"reverse":   fmt.Sprintf("%t", f.IsReverse),
			},
		})
	}

	r := seqrecord.Record{
		Sequence:    seq.String(),
		Linear:      !circularize,
		Annotations: annotations,
	}
	return r, nil
}
