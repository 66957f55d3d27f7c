// Package hclmeta adapts HCL bodies to the goattr metadata surface.
// Each top-level block is one attribute occurrence: the block type is
// the attribute name and the block body's attributes (and nested
// blocks) are its arguments. Repeating a block type yields repeated
// occurrences. Expressions are evaluated statically (no variables or
// functions) into cty values and wrapped as leaf nodes.
package hclmeta

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	goattr "github.com/reoring/goattr"
)

// Attrs parses src as native-syntax HCL and returns the top-level
// blocks as attribute occurrences plus the file's starting position.
func Attrs(filename string, src []byte) ([]goattr.Node, goattr.Pos, error) {
	start := goattr.Pos{File: filename, Line: 1, Column: 1, Offset: 0}
	f, diags := hclsyntax.ParseConfig(src, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, start, diags
	}
	body, ok := f.Body.(*hclsyntax.Body)
	if !ok {
		return nil, start, goattr.Issues{goattr.NewIssue(start, goattr.CodeInvalidItemShape, nil)}
	}
	out := make([]goattr.Node, 0, len(body.Blocks))
	for _, blk := range body.Blocks {
		out = append(out, blockNode{blk: blk})
	}
	return out, posFromRange(body.SrcRange), nil
}

// ToDiagnostics converts engine issues into host diagnostics so callers
// embedded in an HCL toolchain can report them natively.
func ToDiagnostics(iss goattr.Issues) hcl.Diagnostics {
	var diags hcl.Diagnostics
	for _, it := range iss {
		rng := hcl.Range{
			Filename: it.Pos.File,
			Start:    hcl.Pos{Line: it.Pos.Line, Column: it.Pos.Column, Byte: int(it.Pos.Offset)},
			End:      hcl.Pos{Line: it.Pos.Line, Column: it.Pos.Column, Byte: int(it.Pos.Offset)},
		}
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  it.Code,
			Detail:   it.Message,
			Subject:  &rng,
		})
	}
	return diags
}

func posFromRange(r hcl.Range) goattr.Pos {
	return goattr.Pos{File: r.Filename, Line: r.Start.Line, Column: r.Start.Column, Offset: int64(r.Start.Byte)}
}

// blockNode is an attribute occurrence backed by an HCL block.
type blockNode struct {
	blk *hclsyntax.Block
}

var _ goattr.Node = blockNode{}

func (b blockNode) Pos() goattr.Pos     { return posFromRange(b.blk.TypeRange) }
func (b blockNode) Key() (string, bool) { return b.blk.Type, true }

// Args lists the block body's attributes and nested blocks in source
// order. Nested blocks surface as list-shaped children keyed by block
// type, which is how sub-records are spelled in HCL.
func (b blockNode) Args() ([]goattr.Node, bool) {
	body := b.blk.Body
	out := make([]goattr.Node, 0, len(body.Attributes)+len(body.Blocks))
	for _, attr := range body.Attributes {
		out = append(out, attrNode{attr: attr})
	}
	for _, blk := range body.Blocks {
		out = append(out, blockNode{blk: blk})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Pos().Offset < out[j].Pos().Offset
	})
	return out, true
}

func (b blockNode) Text() (string, bool)         { return "", false }
func (b blockNode) Bool() (bool, bool)           { return false, false }
func (b blockNode) Number() (string, bool)       { return "", false }
func (b blockNode) Array() ([]goattr.Node, bool) { return nil, false }

// attrNode is a keyed argument backed by an HCL attribute; its value is
// the statically evaluated expression.
type attrNode struct {
	attr *hclsyntax.Attribute
}

var _ goattr.Node = attrNode{}

func (a attrNode) Pos() goattr.Pos     { return posFromRange(a.attr.NameRange) }
func (a attrNode) Key() (string, bool) { return a.attr.Name, true }

func (a attrNode) value() cty.Value {
	v, diags := a.attr.Expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal
	}
	return v
}

func (a attrNode) leaf() ctyNode {
	return ctyNode{v: a.value(), rng: a.attr.Expr.Range()}
}

func (a attrNode) Args() ([]goattr.Node, bool)  { return a.leaf().Args() }
func (a attrNode) Text() (string, bool)         { return a.leaf().Text() }
func (a attrNode) Bool() (bool, bool)           { return a.leaf().Bool() }
func (a attrNode) Number() (string, bool)       { return a.leaf().Number() }
func (a attrNode) Array() ([]goattr.Node, bool) { return a.leaf().Array() }

// ctyNode wraps an evaluated cty value, optionally keyed when it is an
// object element.
type ctyNode struct {
	key    string
	hasKey bool
	v      cty.Value
	rng    hcl.Range
}

var _ goattr.Node = ctyNode{}

func (c ctyNode) Pos() goattr.Pos     { return posFromRange(c.rng) }
func (c ctyNode) Key() (string, bool) { return c.key, c.hasKey }

// known excludes nulls, unknowns and failed evaluations (cty.NilVal is
// null too). Values are never compared with ==, which panics for
// object-typed cty values.
func (c ctyNode) known() bool { return !c.v.IsNull() && c.v.IsKnown() }

// Args expands an object value into keyed children, in lexical key
// order (cty objects carry no source order).
func (c ctyNode) Args() ([]goattr.Node, bool) {
	if !c.known() || !c.v.Type().IsObjectType() && !c.v.Type().IsMapType() {
		return nil, false
	}
	m := c.v.AsValueMap()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]goattr.Node, 0, len(keys))
	for _, k := range keys {
		out = append(out, ctyNode{key: k, hasKey: true, v: m[k], rng: c.rng})
	}
	return out, true
}

func (c ctyNode) Text() (string, bool) {
	if !c.known() || c.v.Type() != cty.String {
		return "", false
	}
	return c.v.AsString(), true
}

func (c ctyNode) Bool() (bool, bool) {
	if !c.known() {
		return false, false
	}
	if c.v.Type() != cty.Bool {
		return false, false
	}
	return c.v.True(), true
}

func (c ctyNode) Number() (string, bool) {
	if !c.known() || c.v.Type() != cty.Number {
		return "", false
	}
	return c.v.AsBigFloat().Text('f', -1), true
}

func (c ctyNode) Array() ([]goattr.Node, bool) {
	if !c.known() {
		return nil, false
	}
	ty := c.v.Type()
	if !ty.IsTupleType() && !ty.IsListType() && !ty.IsSetType() {
		return nil, false
	}
	out := make([]goattr.Node, 0, c.v.LengthInt())
	for it := c.v.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		out = append(out, ctyNode{v: ev, rng: c.rng})
	}
	return out, true
}
