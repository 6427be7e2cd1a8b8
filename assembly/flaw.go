/*
Package assembly hosts the high-level combinatorial and three-part-adapter
orchestrators: the protocols that drive mix/cycle/filter/assemble to turn a
set of input parts into a Simulation of candidate constructs.

Grounded on original_source/dnacauldron's AssemblyMix/RestrictionLigationMix.py
(combinatorial assembly) and Assembly/builtin_assembly_classes/BASICAssembly.py
(three-part adapter protocol), with error aggregation and structured logging
adapted from _examples/JaneliaSciComp-repp/internal/repp's zap + multierr
usage (blast.go, files.go, oligos.go, output.go, primer3.go).
*/
package assembly

import "fmt"

// FlawKind identifies the category of an assembly-level error or warning,
// per spec.md §7.
type FlawKind string

const (
	InvalidInputShape               FlawKind = "invalid_input_shape"
	DigestFailure                   FlawKind = "digest_failure"
	JunctionMismatch                FlawKind = "junction_mismatch"
	ExpectedConstructCountViolation FlawKind = "expected_construct_count_violation"
	AdapterAmbiguity                FlawKind = "adapter_ambiguity"
	RandomizationStaled             FlawKind = "randomization_staled"
	MaxConstructsReached            FlawKind = "max_constructs_reached"
)

// Flaw is a structured assembly-level error (or, for MaxConstructsReached,
// warning) value. It satisfies the error interface so it can be collected
// with go.uber.org/multierr alongside plain errors.
type Flaw struct {
	Kind    FlawKind
	Message string
	Data    map[string]any
}

func (f *Flaw) Error() string {
	return fmt.Sprintf("assembly: %s: %s", f.Kind, f.Message)
}

func newFlaw(kind FlawKind, data map[string]any, format string, args ...any) *Flaw {
	return &Flaw{Kind: kind, Message: fmt.Sprintf(format, args...), Data: data}
}

// ExpectedConstructCount is a caller-declared expectation about how many
// constructs a run should produce, checked against the actual count at the
// end of the run (spec.md §7's ExpectedConstructCountViolation).
type ExpectedConstructCount int

const (
	// Any accepts any construct count, including zero.
	Any ExpectedConstructCount = iota
	Zero
	One
	AtLeastOne
)

func (e ExpectedConstructCount) satisfiedBy(n int) bool {
	switch e {
	case Zero:
		return n == 0
	case One:
		return n == 1
	case AtLeastOne:
		return n >= 1
	default:
		return true
	}
}

func (e ExpectedConstructCount) String() string {
	switch e {
	case Zero:
		return "zero"
	case One:
		return "exactly one"
	case AtLeastOne:
		return "at least one"
	default:
		return "any"
	}
}
