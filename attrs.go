package goattr

// DecodeAttrs is the primary entry point. It folds every occurrence of
// the record's attribute out of attrs (occurrences merge; scalar fields
// flag duplicates, list fields concatenate), then validates the merged
// state, returning either the fully assembled record or the complete
// ordered issue list. attrs not matching the record's name are ignored,
// so the full attribute set of a declaration can be passed as-is.
//
// pos anchors diagnostics for the whole-attribute failure modes
// (missing_attribute) and should point at the declaration site.
func DecodeAttrs[T any](rs *RecordSchema[T], pos Pos, attrs []Node) (T, error) {
	var zero T
	res := foldOccurrences(rs, pos, attrs)
	if !res.Found() {
		if rs.defaultFn != nil {
			return rs.defaultFn(), nil
		}
		return zero, Issues{NewIssue(pos, CodeMissingAttribute, map[string]string{"name": rs.name})}
	}
	v, iss := rs.Validate(res, rs.name)
	if len(iss) > 0 {
		return zero, iss
	}
	return v, nil
}

// DecodeAttrsOptional decodes like DecodeAttrs but treats a completely
// absent attribute as a nil success instead of missing_attribute.
func DecodeAttrsOptional[T any](rs *RecordSchema[T], pos Pos, attrs []Node) (*T, error) {
	res := foldOccurrences(rs, pos, attrs)
	if !res.Found() {
		return nil, nil
	}
	v, iss := rs.Validate(res, rs.name)
	if len(iss) > 0 {
		return nil, iss
	}
	return &v, nil
}

func foldOccurrences[T any](rs *RecordSchema[T], pos Pos, attrs []Node) ArgResult[*recordState[T]] {
	res := NewArgResult[*recordState[T]](pos)
	for _, attr := range attrs {
		key, ok := attr.Key()
		if !ok || key != rs.name {
			continue
		}
		res = MergeArgResults(res, rs.Parse(attr), rs)
	}
	return res
}
