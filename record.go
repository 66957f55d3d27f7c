package goattr

// RecordSchema is the composite builder for one declared record type:
// an explicit registration table of (argument name, codec, assignment,
// default policy) entries consumed generically by the decode driver.
// A RecordSchema is itself a Codec, so records nest as argument values
// and compose with Optional.
type RecordSchema[T any] struct {
	name      string
	fields    []*fieldDef[T]
	byName    map[string]int
	defaultFn func() T
}

// fieldDef erases the per-field codec types behind closures; the
// record-level algorithm only ever needs these four operations.
type fieldDef[T any] struct {
	name     string
	newState func(pos Pos) any
	parse    func(n Node) any
	merge    func(dst, src any) any
	validate func(state any, name string) (func(*T), Issues)
}

// Record creates a schema for a record decoded from attributes named
// name.
func Record[T any](name string) *RecordSchema[T] {
	return &RecordSchema[T]{name: name, byName: map[string]int{}}
}

// Name returns the registered attribute name.
func (rs *RecordSchema[T]) Name() string { return rs.name }

// Default registers a container-level default, used when the entire
// attribute is absent (never when it is present but malformed).
func (rs *RecordSchema[T]) Default(fn func() T) *RecordSchema[T] {
	rs.defaultFn = fn
	return rs
}

// Field registers a declared argument with its codec and the assignment
// into the record under construction. Arguments validate in
// registration order, which fixes the diagnostic order.
func Field[T, F, R any](rs *RecordSchema[T], name string, c Codec[F, R], assign func(*T, F)) *RecordSchema[T] {
	return addField(rs, name, c, assign, nil)
}

// FieldDefault registers an argument like Field but substitutes def()
// when the argument was never supplied and never errored.
func FieldDefault[T, F, R any](rs *RecordSchema[T], name string, c Codec[F, R], assign func(*T, F), def func() F) *RecordSchema[T] {
	if def == nil {
		panic("goattr: FieldDefault requires a default constructor")
	}
	return addField(rs, name, c, assign, def)
}

func addField[T, F, R any](rs *RecordSchema[T], name string, c Codec[F, R], assign func(*T, F), def func() F) *RecordSchema[T] {
	if _, dup := rs.byName[name]; dup {
		panic("goattr: argument " + name + " registered twice on record " + rs.name)
	}
	fd := &fieldDef[T]{
		name:     name,
		newState: func(pos Pos) any { return NewArgResult[R](pos) },
		parse:    func(n Node) any { return c.Parse(n) },
		merge: func(dst, src any) any {
			return MergeArgResults(dst.(ArgResult[R]), src.(ArgResult[R]), c)
		},
		validate: func(state any, name string) (func(*T), Issues) {
			st := state.(ArgResult[R])
			if def != nil && !st.Found() {
				v := def()
				return func(t *T) { assign(t, v) }, nil
			}
			v, iss := c.Validate(st, name)
			if len(iss) > 0 {
				return nil, iss
			}
			return func(t *T) { assign(t, v) }, nil
		},
	}
	rs.byName[name] = len(rs.fields)
	rs.fields = append(rs.fields, fd)
	return rs
}

// recordState is the raw intermediate of a record: one erased ArgResult
// per declared field, all anchored at the occurrence's position.
type recordState[T any] struct {
	states []any
}

func (rs *RecordSchema[T]) newState(pos Pos) *recordState[T] {
	states := make([]any, len(rs.fields))
	for i, fd := range rs.fields {
		states[i] = fd.newState(pos)
	}
	return &recordState[T]{states: states}
}

// Parse implements phase a for a whole record occurrence: the node must
// be list-shaped, keyed children route to their declared field, unknown
// keys record unrecognized_argument on the overall result without
// aborting the remaining children.
func (rs *RecordSchema[T]) Parse(n Node) ArgResult[*recordState[T]] {
	res := NewArgResult[*recordState[T]](n.Pos())
	args, ok := n.Args()
	if !ok {
		res.AddIssue(CodeParseFailure, nil)
		return res
	}
	st := rs.newState(n.Pos())
	for _, arg := range args {
		key, ok := arg.Key()
		if !ok {
			// The drivers guarantee keyed children inside a record body;
			// a keyless child is a driver contract breach, not user input.
			panic("goattr: metadata driver produced a keyless argument node")
		}
		idx, known := rs.byName[key]
		if !known {
			res.Issues = AppendIssues(res.Issues, NewIssue(arg.Pos(), CodeUnrecognizedArgument, map[string]string{"name": key}))
			continue
		}
		fd := rs.fields[idx]
		st.states[idx] = fd.merge(st.states[idx], fd.parse(arg))
	}
	res.AddValue(st)
	return res
}

// Validate implements phase b: resolve the container default, then run
// every field's phase b in declaration order, returning either the
// assembled record or the union of everything discovered.
func (rs *RecordSchema[T]) Validate(state ArgResult[*recordState[T]], name string) (T, Issues) {
	var zero T
	if !state.Found() {
		if rs.defaultFn != nil {
			return rs.defaultFn(), nil
		}
		state.AddIssue(CodeMissingArgument, map[string]string{"name": name})
		return zero, state.Issues
	}
	if !state.Set {
		// structural failure: the occurrence was never list-shaped, so
		// there is nothing to validate field by field
		return zero, state.Issues
	}
	iss := state.Issues
	assigns := make([]func(*T), 0, len(rs.fields))
	for i, fd := range rs.fields {
		apply, fiss := fd.validate(state.Value.states[i], fd.name)
		if len(fiss) > 0 {
			iss = AppendIssues(iss, fiss...)
			continue
		}
		assigns = append(assigns, apply)
	}
	if len(iss) > 0 {
		return zero, iss
	}
	var out T
	for _, apply := range assigns {
		apply(&out)
	}
	return out, nil
}

// Merge folds two occurrence states field by field; records never treat
// repetition as an error themselves, their scalar fields do.
func (rs *RecordSchema[T]) Merge(prev, next *recordState[T]) *recordState[T] {
	for i, fd := range rs.fields {
		prev.states[i] = fd.merge(prev.states[i], next.states[i])
	}
	return prev
}

func (rs *RecordSchema[T]) NoDuplicates() bool { return false }
