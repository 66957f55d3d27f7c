package goattr

// List wraps an element codec into a homogeneous-sequence codec. Phase
// a requires an array-shaped node and parses every element
// independently, so one bad element never hides its siblings; phase b
// validates every element and returns the union of all element issues,
// or the assembled slice in input order when everything passed.
// Duplicate occurrences of a list argument concatenate.
func List[T, R any](elem Codec[T, R]) Codec[[]T, []ArgResult[R]] {
	return listCodec[T, R]{elem: elem}
}

type listCodec[T, R any] struct {
	elem Codec[T, R]
}

func (l listCodec[T, R]) Parse(n Node) ArgResult[[]ArgResult[R]] {
	res := NewArgResult[[]ArgResult[R]](n.Pos())
	items, ok := n.Array()
	if !ok {
		res.AddIssue(CodeInvalidType, map[string]string{"expected": "array"})
		return res
	}
	elems := make([]ArgResult[R], 0, len(items))
	for _, it := range items {
		elems = append(elems, l.elem.Parse(it))
	}
	res.AddValue(elems)
	return res
}

func (l listCodec[T, R]) Validate(state ArgResult[[]ArgResult[R]], name string) ([]T, Issues) {
	elems, iss := ValidateRequired(state, name)
	if len(iss) > 0 {
		return nil, iss
	}
	out := make([]T, 0, len(elems))
	var all Issues
	for _, es := range elems {
		v, eiss := l.elem.Validate(es, name)
		if len(eiss) > 0 {
			all = AppendIssues(all, eiss...)
			continue
		}
		out = append(out, v)
	}
	if len(all) > 0 {
		return nil, all
	}
	return out, nil
}

func (l listCodec[T, R]) Merge(prev, next []ArgResult[R]) []ArgResult[R] {
	return append(prev, next...)
}

func (l listCodec[T, R]) NoDuplicates() bool { return false }
