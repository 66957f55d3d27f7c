// Package gen generates RecordSchema constructors from annotated Go
// structs. It parses a package with go/ast, reads `attr` struct tags,
// maps field types onto the built-in codecs and renders one
// <Type>Schema() function per requested type through text/template +
// go/format.
package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"reflect"
	"strings"
	"unicode"
)

// Schema is the scanned decode plan for one struct type.
type Schema struct {
	Type   string  // Go type name
	Attr   string  // attribute name the record decodes from
	Fields []Field // in declaration order
}

// Field is one declared argument of a Schema.
type Field struct {
	GoName  string // struct field name
	GoType  string // rendered field type, e.g. "*string", "[]int32"
	Arg     string // argument name in the metadata
	Codec   string // rendered codec expression
	Default string // default value expression, empty when required
}

// basic Go kinds with a built-in codec.
var codecForKind = map[string]string{
	"string":  "goattr.String()",
	"bool":    "goattr.Bool()",
	"int":     "goattr.IntOf[int]()",
	"int8":    "goattr.IntOf[int8]()",
	"int16":   "goattr.IntOf[int16]()",
	"int32":   "goattr.IntOf[int32]()",
	"int64":   "goattr.IntOf[int64]()",
	"uint":    "goattr.IntOf[uint]()",
	"uint8":   "goattr.IntOf[uint8]()",
	"uint16":  "goattr.IntOf[uint16]()",
	"uint32":  "goattr.IntOf[uint32]()",
	"uint64":  "goattr.IntOf[uint64]()",
	"float32": "goattr.FloatOf[float32]()",
	"float64": "goattr.FloatOf[float64]()",
}

// ScanDir parses the package in dir and builds a Schema for every
// requested type name. Struct types referenced by other requested types
// resolve to their generated <Type>Schema() constructor, so nesting
// stays within one gen invocation.
func ScanDir(dir string, typeNames []string) ([]Schema, string, error) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, nil, parser.SkipObjectResolution)
	if err != nil {
		return nil, "", fmt.Errorf("parsing %s: %w", dir, err)
	}
	structs := map[string]*ast.StructType{}
	pkgName := ""
	for _, pkg := range pkgs {
		if strings.HasSuffix(pkg.Name, "_test") {
			continue
		}
		pkgName = pkg.Name
		for _, f := range pkg.Files {
			collectStructs(f, structs)
		}
	}
	if pkgName == "" {
		return nil, "", fmt.Errorf("no Go package found in %s", dir)
	}

	known := map[string]bool{}
	for _, name := range typeNames {
		known[name] = true
	}

	out := make([]Schema, 0, len(typeNames))
	for _, name := range typeNames {
		st, ok := structs[name]
		if !ok {
			return nil, "", fmt.Errorf("type %s: not a struct type in package %s", name, pkgName)
		}
		sc, err := scanStruct(name, st, known)
		if err != nil {
			return nil, "", err
		}
		out = append(out, sc)
	}
	return out, pkgName, nil
}

func collectStructs(f *ast.File, into map[string]*ast.StructType) {
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			if st, ok := ts.Type.(*ast.StructType); ok {
				into[ts.Name.Name] = st
			}
		}
	}
}

func scanStruct(name string, st *ast.StructType, known map[string]bool) (Schema, error) {
	sc := Schema{Type: name, Attr: snakeCase(name)}
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			// embedded fields carry no argument name of their own
			continue
		}
		goName := field.Names[0].Name
		if !ast.IsExported(goName) {
			continue
		}
		arg, def, skip := parseTag(field.Tag, goName)
		if skip {
			continue
		}
		codec, err := codecExpr(field.Type, known)
		if err != nil {
			return Schema{}, fmt.Errorf("type %s, field %s: %w", name, goName, err)
		}
		sc.Fields = append(sc.Fields, Field{
			GoName:  goName,
			GoType:  types.ExprString(field.Type),
			Arg:     arg,
			Codec:   codec,
			Default: def,
		})
	}
	return sc, nil
}

// parseTag reads `attr:"name"` or `attr:"name,default=expr"`. An empty
// or missing name falls back to the snake_cased field name; "-" skips
// the field.
func parseTag(tag *ast.BasicLit, goName string) (arg, def string, skip bool) {
	arg = snakeCase(goName)
	if tag == nil {
		return arg, "", false
	}
	raw := reflect.StructTag(strings.Trim(tag.Value, "`")).Get("attr")
	if raw == "" {
		return arg, "", false
	}
	name, rest, _ := strings.Cut(raw, ",")
	if name == "-" {
		return "", "", true
	}
	if name != "" {
		arg = name
	}
	if v, ok := strings.CutPrefix(rest, "default="); ok {
		def = v
	}
	return arg, def, false
}

// codecExpr maps a field type onto a codec expression: pointers become
// Optional, slices become List, scanned struct types become their own
// schema constructor.
func codecExpr(e ast.Expr, known map[string]bool) (string, error) {
	switch t := e.(type) {
	case *ast.Ident:
		if c, ok := codecForKind[t.Name]; ok {
			return c, nil
		}
		if known[t.Name] {
			return t.Name + "Schema()", nil
		}
		return "", fmt.Errorf("no codec for type %s (add it to -type or register a Custom codec by hand)", t.Name)
	case *ast.StarExpr:
		inner, err := codecExpr(t.X, known)
		if err != nil {
			return "", err
		}
		return "goattr.Optional(" + inner + ")", nil
	case *ast.ArrayType:
		if t.Len != nil {
			return "", fmt.Errorf("fixed-size arrays are not supported")
		}
		inner, err := codecExpr(t.Elt, known)
		if err != nil {
			return "", err
		}
		return "goattr.List(" + inner + ")", nil
	}
	return "", fmt.Errorf("unsupported field type %s", types.ExprString(e))
}

func snakeCase(s string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range s {
		if unicode.IsUpper(r) {
			if prevLower {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
			continue
		}
		b.WriteRune(r)
		prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
	}
	return b.String()
}
