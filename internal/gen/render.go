package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

// fileTemplate renders one generated file with a schema constructor per
// scanned type. go/format normalizes whitespace afterwards, so the
// template only has to be structurally correct.
var fileTemplate = template.Must(template.New("schemas").Parse(`// Code generated by goattr gen. DO NOT EDIT.

package {{.Package}}

import (
	goattr "github.com/reoring/goattr"
)
{{range .Schemas}}{{$t := .Type}}
// {{.Type}}Schema builds the decode schema for {{.Type}}, reading the
// "{{.Attr}}" attribute.
func {{.Type}}Schema() *goattr.RecordSchema[{{.Type}}] {
	rs := goattr.Record[{{.Type}}]("{{.Attr}}")
{{- range .Fields}}
{{- if .Default}}
	goattr.FieldDefault(rs, "{{.Arg}}", {{.Codec}}, func(t *{{$t}}, v {{.GoType}}) { t.{{.GoName}} = v }, func() {{.GoType}} { return {{.Default}} })
{{- else}}
	goattr.Field(rs, "{{.Arg}}", {{.Codec}}, func(t *{{$t}}, v {{.GoType}}) { t.{{.GoName}} = v })
{{- end}}
{{- end}}
	return rs
}
{{end}}`))

type fileData struct {
	Package string
	Schemas []Schema
}

// RenderFile emits the generated source for the scanned schemas,
// gofmt-formatted.
func RenderFile(pkg string, schemas []Schema) ([]byte, error) {
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, fileData{Package: pkg, Schemas: schemas}); err != nil {
		return nil, fmt.Errorf("rendering schemas: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		// the unformatted text is the only useful debugging artifact here
		return nil, fmt.Errorf("formatting generated code: %w\n%s", err, buf.String())
	}
	return src, nil
}
