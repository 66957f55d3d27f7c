package goattr

// Codec is the two-phase decode protocol for one declared value kind.
// T is the final declared type; R is the raw intermediate produced by
// phase a, before required/default/duplicate rules apply (for most
// kinds R == T; lists keep one ArgResult per element).
type Codec[T, R any] interface {
	// Parse is phase a: inspect one metadata node, classify it against
	// the expected shape, and produce either a raw value or an
	// invalid_type issue naming the expected shape. Parse must not
	// perform any check that depends on other arguments or on
	// repetition; that is Validate's job.
	Parse(n Node) ArgResult[R]

	// Validate is phase b: given the fully merged per-argument state
	// (after all occurrences), decide the final value or return every
	// accumulated issue. name feeds missing-argument diagnostics.
	Validate(state ArgResult[R], name string) (T, Issues)

	// Merge combines two raw values arising from duplicate occurrences.
	// Atomic kinds overwrite; lists concatenate.
	Merge(prev, next R) R

	// NoDuplicates reports whether a repeated occurrence is itself an
	// issue. Typically true for atomic kinds only.
	NoDuplicates() bool
}

// ValidateRequired applies the standard required-argument rule used by
// every plain codec: accumulated issues fail with those issues, a
// never-seen argument fails with missing_argument, anything else
// succeeds with the value. Optional, List and container defaults
// override this behavior.
func ValidateRequired[R any](state ArgResult[R], name string) (R, Issues) {
	var zero R
	switch {
	case state.FoundWithIssues():
		return zero, state.Issues
	case !state.Set:
		state.AddIssue(CodeMissingArgument, map[string]string{"name": name})
		return zero, state.Issues
	default:
		return state.Value, nil
	}
}
