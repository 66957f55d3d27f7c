package goattr

// CustomFunc parses one metadata node into T, or reports why the node
// does not match. Returning a plain error records invalid_type with the
// error text as the expected-kind description; returning Issues records
// them as-is for callers that need a different code.
type CustomFunc[T any] func(n Node) (T, error)

// Custom lifts a single parse function into a full codec: position
// capture, duplicate reporting and the required/missing rule are
// supplied by the framework. This is the simplest way to plug in a
// user-defined value kind.
func Custom[T any](fn CustomFunc[T]) Codec[T, T] {
	return customCodec[T]{fn: fn}
}

type customCodec[T any] struct {
	fn CustomFunc[T]
}

func (c customCodec[T]) Parse(n Node) ArgResult[T] {
	res := NewArgResult[T](n.Pos())
	v, err := c.fn(n)
	if err != nil {
		if iss, ok := AsIssues(err); ok {
			res.Issues = AppendIssues(res.Issues, iss...)
		} else {
			res.AddIssue(CodeInvalidType, map[string]string{"expected": err.Error()})
		}
		return res
	}
	res.AddValue(v)
	return res
}

func (c customCodec[T]) Validate(state ArgResult[T], name string) (T, Issues) {
	return ValidateRequired(state, name)
}

func (c customCodec[T]) Merge(prev, next T) T { return next }
func (c customCodec[T]) NoDuplicates() bool   { return true }
