package assembly

import (
	"context"
	"fmt"

	"github.com/opencloning/assemblysim/enzyme"
	"github.com/opencloning/assemblysim/seqrecord"
)

// AutoselectEnzyme tries each candidate enzyme in order and returns the
// first one whose Combinatorial run (capped at one construct, expecting
// at least one) succeeds - grounded on original_source's
// autoselect_enzyme/test_autoselect_enzyme, which tries each enzyme in a
// candidate list until one actually cuts the parts into something that
// assembles.
func AutoselectEnzyme(ctx context.Context, parts []seqrecord.Record, candidates []enzyme.Enzyme) (enzyme.Enzyme, error) {
	for _, e := range candidates {
		sim := Combinatorial(ctx, Spec{
			Parts:         parts,
			Enzyme:        e,
			Name:          fmt.Sprintf("autoselect(%s)", e.Name),
			MaxConstructs: 1,
			Expected:      AtLeastOne,
		})
		if len(sim.Records) > 0 {
			return e, nil
		}
	}
	return enzyme.Enzyme{}, newFlaw(DigestFailure, map[string]any{"candidates": len(candidates)},
		"no candidate enzyme produced any construct")
}
