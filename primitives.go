package goattr

import (
	"reflect"
	"strconv"
)

// String returns the codec for a required text argument.
func String() Codec[string, string] { return stringCodec{} }

type stringCodec struct{}

func (stringCodec) Parse(n Node) ArgResult[string] {
	res := NewArgResult[string](n.Pos())
	if s, ok := n.Text(); ok {
		res.AddValue(s)
	} else {
		res.AddIssue(CodeInvalidType, map[string]string{"expected": "string"})
	}
	return res
}

func (stringCodec) Validate(state ArgResult[string], name string) (string, Issues) {
	return ValidateRequired(state, name)
}

func (stringCodec) Merge(prev, next string) string { return next }
func (stringCodec) NoDuplicates() bool             { return true }

// Bool returns the codec for a flag-style boolean argument: a boolean
// that was never supplied validates to false, and a bare flag (a key
// with no explicit value) validates to true.
func Bool() Codec[bool, bool] { return boolCodec{} }

type boolCodec struct{}

func (boolCodec) Parse(n Node) ArgResult[bool] {
	res := NewArgResult[bool](n.Pos())
	if b, ok := n.Bool(); ok {
		res.AddValue(b)
	} else {
		res.AddIssue(CodeInvalidType, map[string]string{"expected": "bool"})
	}
	return res
}

func (boolCodec) Validate(state ArgResult[bool], name string) (bool, Issues) {
	switch {
	case state.FoundWithIssues():
		return false, state.Issues
	case !state.Set:
		// true absence is a valid "off" flag, not a missing argument
		return false, nil
	default:
		return state.Value, nil
	}
}

func (boolCodec) Merge(prev, next bool) bool { return next }
func (boolCodec) NoDuplicates() bool         { return true }

// Integer constrains Int to the built-in integer widths.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float constrains FloatOf to the built-in floating-point widths.
type Float interface {
	~float32 | ~float64
}

// IntOf returns the codec for a required integer argument of width T.
// The literal is re-parsed at T's exact bit size, so out-of-range
// values report invalid_type with T's name as the expected kind.
func IntOf[T Integer]() Codec[T, T] { return intCodec[T]{} }

type intCodec[T Integer] struct{}

func (intCodec[T]) Parse(n Node) ArgResult[T] {
	res := NewArgResult[T](n.Pos())
	lit, ok := n.Number()
	if !ok {
		res.AddIssue(CodeInvalidType, map[string]string{"expected": typeName[T]()})
		return res
	}
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if isSignedKind(rt.Kind()) {
		v, err := strconv.ParseInt(lit, 10, rt.Bits())
		if err != nil {
			res.AddIssue(CodeInvalidType, map[string]string{"expected": typeName[T]()})
			return res
		}
		res.AddValue(T(v))
		return res
	}
	v, err := strconv.ParseUint(lit, 10, rt.Bits())
	if err != nil {
		res.AddIssue(CodeInvalidType, map[string]string{"expected": typeName[T]()})
		return res
	}
	res.AddValue(T(v))
	return res
}

func (intCodec[T]) Validate(state ArgResult[T], name string) (T, Issues) {
	return ValidateRequired(state, name)
}

func (intCodec[T]) Merge(prev, next T) T { return next }
func (intCodec[T]) NoDuplicates() bool   { return true }

// FloatOf returns the codec for a required floating-point argument of
// width T. Integer literals are accepted and widened.
func FloatOf[T Float]() Codec[T, T] { return floatCodec[T]{} }

type floatCodec[T Float] struct{}

func (floatCodec[T]) Parse(n Node) ArgResult[T] {
	res := NewArgResult[T](n.Pos())
	lit, ok := n.Number()
	if !ok {
		res.AddIssue(CodeInvalidType, map[string]string{"expected": typeName[T]()})
		return res
	}
	v, err := strconv.ParseFloat(lit, reflect.TypeOf((*T)(nil)).Elem().Bits())
	if err != nil {
		res.AddIssue(CodeInvalidType, map[string]string{"expected": typeName[T]()})
		return res
	}
	res.AddValue(T(v))
	return res
}

func (floatCodec[T]) Validate(state ArgResult[T], name string) (T, Issues) {
	return ValidateRequired(state, name)
}

func (floatCodec[T]) Merge(prev, next T) T { return next }
func (floatCodec[T]) NoDuplicates() bool   { return true }

func isSignedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

// typeName renders T's name for invalid_type diagnostics ("int32", ...).
func typeName[T any]() string { return reflect.TypeOf((*T)(nil)).Elem().String() }
