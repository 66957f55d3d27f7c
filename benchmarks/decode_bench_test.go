package benchmarks

import (
	"testing"

	goattr "github.com/reoring/goattr"
	"github.com/reoring/goattr/source/jsonmeta"
	"github.com/reoring/goattr/source/yamlmeta"
)

type cfg struct {
	Name    string
	Retries int
	Tags    []string
}

func cfgSchema() *goattr.RecordSchema[cfg] {
	rs := goattr.Record[cfg]("cfg")
	goattr.Field(rs, "name", goattr.String(), func(c *cfg, v string) { c.Name = v })
	goattr.FieldDefault(rs, "retries", goattr.IntOf[int](), func(c *cfg, v int) { c.Retries = v },
		func() int { return 3 })
	goattr.FieldDefault(rs, "tags", goattr.List(goattr.String()), func(c *cfg, v []string) { c.Tags = v },
		func() []string { return nil })
	return rs
}

var yamlSrc = []byte("cfg:\n  name: bench\n  retries: 9\n  tags: [a, b, c, d]\n")
var jsonSrc = []byte(`{"cfg":{"name":"bench","retries":9,"tags":["a","b","c","d"]}}`)

func BenchmarkDecodeYAML(b *testing.B) {
	rs := cfgSchema()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		nodes, pos, err := yamlmeta.Attrs("bench.yaml", yamlSrc)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := goattr.DecodeAttrs(rs, pos, nodes); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeJSON(b *testing.B) {
	rs := cfgSchema()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		nodes, pos, err := jsonmeta.Attrs(jsonSrc)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := goattr.DecodeAttrs(rs, pos, nodes); err != nil {
			b.Fatal(err)
		}
	}
}

// Validation cost without the parser in the loop.
func BenchmarkDecodeFromNodes(b *testing.B) {
	rs := cfgSchema()
	nodes, pos, err := yamlmeta.Attrs("bench.yaml", yamlSrc)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := goattr.DecodeAttrs(rs, pos, nodes); err != nil {
			b.Fatal(err)
		}
	}
}
