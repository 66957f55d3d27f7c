package goattr

// Optional wraps a codec so that the argument becomes non-required:
// an argument never supplied (and never erroring) validates to nil
// instead of missing_argument. Phase a, merge and duplicate policy all
// delegate to the inner codec, so Optional(List(...)) still
// concatenates across occurrences.
func Optional[T, R any](inner Codec[T, R]) Codec[*T, R] {
	return optionalCodec[T, R]{inner: inner}
}

type optionalCodec[T, R any] struct {
	inner Codec[T, R]
}

func (o optionalCodec[T, R]) Parse(n Node) ArgResult[R] { return o.inner.Parse(n) }

func (o optionalCodec[T, R]) Validate(state ArgResult[R], name string) (*T, Issues) {
	switch {
	case state.Set:
		v, iss := o.inner.Validate(state, name)
		if len(iss) > 0 {
			return nil, iss
		}
		return &v, nil
	case state.FoundWithIssues():
		return nil, state.Issues
	default:
		return nil, nil
	}
}

func (o optionalCodec[T, R]) Merge(prev, next R) R { return o.inner.Merge(prev, next) }
func (o optionalCodec[T, R]) NoDuplicates() bool   { return o.inner.NoDuplicates() }
