// Package jsonmeta adapts JSON documents to the goattr metadata
// surface using the goccy/go-json token stream. The top-level object's
// members are attribute occurrences; JSON itself cannot repeat a key in
// textual order preservation terms without duplicates, and duplicate
// members are kept as separate occurrences rather than collapsed.
//
// JSON carries no line information through the token API, so positions
// are JSON-Pointer paths ("/config/retries") with best-effort offsets.
//
// A member with a null value reads as a bare flag and extracts as
// boolean true.
package jsonmeta

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	goattr "github.com/reoring/goattr"
)

// Attrs parses src as one JSON document whose top level must be an
// object, returning its members as attribute occurrences.
func Attrs(src []byte) ([]goattr.Node, goattr.Pos, error) {
	start := goattr.Pos{Path: "/", Offset: -1}
	root, err := parse(src)
	if err != nil {
		return nil, start, goattr.Issues{goattr.NewIssue(start, goattr.CodeParseFailure, nil)}
	}
	if root == nil {
		return nil, start, nil
	}
	if root.kind != kindObject {
		return nil, start, goattr.Issues{goattr.NewIssue(start, goattr.CodeInvalidItemShape, nil)}
	}
	out := make([]goattr.Node, 0, len(root.members))
	for i := range root.members {
		out = append(out, node{v: root.members[i].val, key: root.members[i].key, hasKey: true})
	}
	return out, start, nil
}

type kind int

const (
	kindObject kind = iota
	kindArray
	kindString
	kindNumber
	kindBool
	kindNull
)

type member struct {
	key string
	val *value
}

type value struct {
	kind    kind
	str     string
	num     string
	b       bool
	members []member // object
	elems   []*value // array
	path    string
}

// node pairs a parsed value with the member key it hangs from, if any.
type node struct {
	v      *value
	key    string
	hasKey bool
}

var _ goattr.Node = node{}

func (n node) Pos() goattr.Pos { return goattr.Pos{Path: n.v.path, Offset: -1} }

func (n node) Key() (string, bool) { return n.key, n.hasKey }

func (n node) Args() ([]goattr.Node, bool) {
	if n.v.kind != kindObject {
		return nil, false
	}
	out := make([]goattr.Node, 0, len(n.v.members))
	for i := range n.v.members {
		out = append(out, node{v: n.v.members[i].val, key: n.v.members[i].key, hasKey: true})
	}
	return out, true
}

func (n node) Text() (string, bool) {
	if n.v.kind != kindString {
		return "", false
	}
	return n.v.str, true
}

func (n node) Bool() (bool, bool) {
	switch n.v.kind {
	case kindBool:
		return n.v.b, true
	case kindNull:
		if n.hasKey {
			return true, true
		}
	}
	return false, false
}

func (n node) Number() (string, bool) {
	if n.v.kind != kindNumber {
		return "", false
	}
	return n.v.num, true
}

func (n node) Array() ([]goattr.Node, bool) {
	if n.v.kind != kindArray {
		return nil, false
	}
	out := make([]goattr.Node, 0, len(n.v.elems))
	for _, e := range n.v.elems {
		out = append(out, node{v: e})
	}
	return out, true
}

// ---- token-stream tree construction ----

func parse(src []byte) (*value, error) {
	dec := j.NewDecoder(bytes.NewReader(src))
	dec.UseNumber()
	root, err := parseValue(dec, "")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil // empty document
		}
		return nil, err
	}
	return root, nil
}

func parseValue(dec *j.Decoder, path string) (*value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return valueFromToken(dec, tok, path)
}

func valueFromToken(dec *j.Decoder, tok j.Token, path string) (*value, error) {
	rootPath := path
	if rootPath == "" {
		rootPath = "/"
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			return parseObject(dec, path)
		case '[':
			return parseArray(dec, path)
		}
		return nil, errors.New("jsonmeta: unexpected delimiter")
	case string:
		return &value{kind: kindString, str: v, path: rootPath}, nil
	case j.Number:
		return &value{kind: kindNumber, num: v.String(), path: rootPath}, nil
	case bool:
		return &value{kind: kindBool, b: v, path: rootPath}, nil
	case nil:
		return &value{kind: kindNull, path: rootPath}, nil
	}
	return nil, errors.New("jsonmeta: unexpected token")
}

func parseObject(dec *j.Decoder, path string) (*value, error) {
	obj := &value{kind: kindObject, path: orRoot(path)}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(j.Delim); ok && d == '}' {
			return obj, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.New("jsonmeta: expected object key")
		}
		child, err := parseValue(dec, path+"/"+escapePointer(key))
		if err != nil {
			return nil, err
		}
		obj.members = append(obj.members, member{key: key, val: child})
	}
}

func parseArray(dec *j.Decoder, path string) (*value, error) {
	arr := &value{kind: kindArray, path: orRoot(path)}
	for i := 0; ; i++ {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(j.Delim); ok && d == ']' {
			return arr, nil
		}
		child, err := valueFromToken(dec, tok, path+"/"+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		arr.elems = append(arr.elems, child)
	}
}

func orRoot(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

// escapePointer applies RFC 6901 escaping to a pointer segment.
func escapePointer(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '~':
			out = append(out, '~', '0')
		case '/':
			out = append(out, '~', '1')
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}
