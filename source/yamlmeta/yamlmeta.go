// Package yamlmeta adapts yaml.v3 node trees to the goattr metadata
// surface. The top-level mapping of a document is read as a set of
// attribute occurrences: each key/value entry is one occurrence, and a
// key repeated in the mapping yields repeated occurrences (raw yaml.v3
// nodes preserve duplicate keys, unlike map decoding).
//
// A mapping entry with a null value ("verbose:" on its own line) reads
// as a bare flag and extracts as boolean true.
package yamlmeta

import (
	goattr "github.com/reoring/goattr"
	"gopkg.in/yaml.v3"
)

// Attrs parses src as one YAML document and returns its top-level
// entries as attribute occurrences plus the document's starting
// position. An empty document yields zero occurrences, which the engine
// resolves through container defaults or missing_attribute.
func Attrs(file string, src []byte) ([]goattr.Node, goattr.Pos, error) {
	start := goattr.Pos{File: file, Line: 1, Column: 1, Offset: -1}
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, start, goattr.Issues{goattr.NewIssue(start, goattr.CodeParseFailure, nil)}
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, start, nil
	}
	root := resolve(doc.Content[0])
	start = goattr.Pos{File: file, Line: root.Line, Column: root.Column, Offset: -1}
	if root.Kind != yaml.MappingNode {
		return nil, start, goattr.Issues{goattr.NewIssue(start, goattr.CodeInvalidItemShape, nil)}
	}
	out := make([]goattr.Node, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		out = append(out, node{file: file, key: root.Content[i], val: root.Content[i+1]})
	}
	return out, start, nil
}

// node wraps a yaml value node together with its mapping key, when it
// has one. Elements of sequences carry no key.
type node struct {
	file string
	key  *yaml.Node
	val  *yaml.Node
}

var _ goattr.Node = node{}

func (n node) Pos() goattr.Pos {
	t := n.val
	if n.key != nil {
		t = n.key
	}
	return goattr.Pos{File: n.file, Line: t.Line, Column: t.Column, Offset: -1}
}

func (n node) Key() (string, bool) {
	if n.key == nil {
		return "", false
	}
	return n.key.Value, true
}

func (n node) Args() ([]goattr.Node, bool) {
	v := resolve(n.val)
	if v == nil || v.Kind != yaml.MappingNode {
		return nil, false
	}
	out := make([]goattr.Node, 0, len(v.Content)/2)
	for i := 0; i+1 < len(v.Content); i += 2 {
		out = append(out, node{file: n.file, key: v.Content[i], val: v.Content[i+1]})
	}
	return out, true
}

func (n node) Text() (string, bool) {
	v := resolve(n.val)
	if v == nil || v.Kind != yaml.ScalarNode || v.Tag != "!!str" {
		return "", false
	}
	return v.Value, true
}

func (n node) Bool() (bool, bool) {
	v := resolve(n.val)
	if v == nil || v.Kind != yaml.ScalarNode {
		return false, false
	}
	switch v.Tag {
	case "!!bool":
		return v.Value == "true" || v.Value == "True" || v.Value == "TRUE", true
	case "!!null":
		// a key with no explicit value is a bare flag
		if n.key != nil {
			return true, true
		}
	}
	return false, false
}

func (n node) Number() (string, bool) {
	v := resolve(n.val)
	if v == nil || v.Kind != yaml.ScalarNode {
		return "", false
	}
	if v.Tag != "!!int" && v.Tag != "!!float" {
		return "", false
	}
	return v.Value, true
}

func (n node) Array() ([]goattr.Node, bool) {
	v := resolve(n.val)
	if v == nil || v.Kind != yaml.SequenceNode {
		return nil, false
	}
	out := make([]goattr.Node, 0, len(v.Content))
	for _, c := range v.Content {
		out = append(out, node{file: n.file, val: c})
	}
	return out, true
}

// resolve follows alias nodes to their anchor.
func resolve(v *yaml.Node) *yaml.Node {
	for v != nil && v.Kind == yaml.AliasNode {
		v = v.Alias
	}
	return v
}
