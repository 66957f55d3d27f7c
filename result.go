package goattr

// ArgResult tracks the parse outcome for exactly one argument (or one
// top-level attribute): it can hold a value and issues at the same
// time, e.g. when one occurrence errored and a later duplicate
// succeeded. It cannot itself fail; it is the vessel issues are written
// into.
type ArgResult[T any] struct {
	Value  T
	Set    bool
	Issues Issues
	Pos    Pos
}

// NewArgResult returns an empty result anchored at pos.
func NewArgResult[T any](pos Pos) ArgResult[T] {
	return ArgResult[T]{Pos: pos}
}

// AddIssue appends an issue positioned at the stored location. The
// value, if any, is left untouched.
func (r *ArgResult[T]) AddIssue(code string, params map[string]string) {
	r.Issues = AppendIssues(r.Issues, NewIssue(r.Pos, code, params))
}

// AddValue sets the value. Issues, if any, are left untouched.
func (r *ArgResult[T]) AddValue(v T) {
	r.Value = v
	r.Set = true
}

// Found reports whether the argument was seen at all (value or issues).
func (r *ArgResult[T]) Found() bool { return len(r.Issues) > 0 || r.Set }

// FoundWithIssues reports whether any issue was recorded.
func (r *ArgResult[T]) FoundWithIssues() bool { return len(r.Issues) > 0 }

// FoundWithValue reports whether a value was recorded.
func (r *ArgResult[T]) FoundWithValue() bool { return r.Set }

// MergeArgResults folds src (a newly parsed occurrence) into dst (the
// prior state) and returns the combined state. The rules, in order:
//
//  1. If src was found at all, dst adopts src's location so that later
//     diagnostics point at the most recent occurrence.
//  2. If dst was already found and the codec declares NoDuplicates, a
//     duplicate_argument issue is recorded at the new location. The
//     earlier value is retained; duplication is reported but does not
//     abort decoding.
//  3. src's issues are appended to dst's. Issues are never lost.
//  4. If src carries a value: dst adopts it when it has none yet;
//     otherwise the two values merge through the codec (lists
//     concatenate across occurrences rather than overwrite).
//
// Folding left-to-right over an occurrence sequence is the only way
// states combine, so the rules hold for any number of occurrences.
func MergeArgResults[T, R any](dst, src ArgResult[R], c Codec[T, R]) ArgResult[R] {
	dup := false
	if src.Found() {
		dst.Pos = src.Pos
		if dst.Found() && c.NoDuplicates() {
			dup = true
			dst.AddIssue(CodeDuplicateArgument, nil)
		}
	}
	if src.FoundWithIssues() {
		dst.Issues = AppendIssues(dst.Issues, src.Issues...)
	}
	if src.FoundWithValue() {
		switch {
		case !dst.Set:
			dst.AddValue(src.Value)
		case !dup:
			dst.Value = c.Merge(dst.Value, src.Value)
		}
		// dup with both values set: first occurrence wins.
	}
	return dst
}
