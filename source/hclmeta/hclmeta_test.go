package hclmeta_test

import (
	"testing"

	goattr "github.com/reoring/goattr"
	"github.com/reoring/goattr/source/hclmeta"
)

func TestAttrs_BlocksAreOccurrences(t *testing.T) {
	src := []byte(`
cfg {
  host = "db"
}
cfg {
  tags = ["a", "b"]
}
other {}
`)
	nodes, _, err := hclmeta.Attrs("m.hcl", src)
	if err != nil {
		t.Fatalf("Attrs: %v", err)
	}
	if len(nodes) != 3 {
		t.Fatalf("got %d blocks", len(nodes))
	}
	if k, ok := nodes[0].Key(); !ok || k != "cfg" {
		t.Fatalf("key: %q %v", k, ok)
	}
}

func TestAttrs_ParseErrorReturnsDiagnostics(t *testing.T) {
	_, _, err := hclmeta.Attrs("m.hcl", []byte(`cfg {`))
	if err == nil {
		t.Fatalf("expected diagnostics")
	}
}

func TestNode_ValueShapes(t *testing.T) {
	src := []byte(`
cfg {
  host    = "db"
  retries = 3
  ratio   = 0.5
  quiet   = true
  tags    = ["a", "b"]
  extra   = { mode = "fast" }
}
`)
	nodes, _, err := hclmeta.Attrs("m.hcl", src)
	if err != nil {
		t.Fatalf("Attrs: %v", err)
	}
	args, ok := nodes[0].Args()
	if !ok || len(args) != 6 {
		t.Fatalf("args: %d %v", len(args), ok)
	}
	byKey := map[string]goattr.Node{}
	for _, a := range args {
		k, _ := a.Key()
		byKey[k] = a
	}
	if s, ok := byKey["host"].Text(); !ok || s != "db" {
		t.Fatalf("host: %q %v", s, ok)
	}
	if lit, ok := byKey["retries"].Number(); !ok || lit != "3" {
		t.Fatalf("retries: %q %v", lit, ok)
	}
	if lit, ok := byKey["ratio"].Number(); !ok || lit != "0.5" {
		t.Fatalf("ratio: %q %v", lit, ok)
	}
	if b, ok := byKey["quiet"].Bool(); !ok || !b {
		t.Fatalf("quiet: %v %v", b, ok)
	}
	items, ok := byKey["tags"].Array()
	if !ok || len(items) != 2 {
		t.Fatalf("tags: %v %v", items, ok)
	}
	sub, ok := byKey["extra"].Args()
	if !ok || len(sub) != 1 {
		t.Fatalf("extra: %v %v", sub, ok)
	}
	if k, _ := sub[0].Key(); k != "mode" {
		t.Fatalf("extra key: %q", k)
	}
}

func TestNode_ArgsInSourceOrder(t *testing.T) {
	src := []byte(`
cfg {
  b = 1
  a = 2
}
`)
	nodes, _, err := hclmeta.Attrs("m.hcl", src)
	if err != nil {
		t.Fatalf("Attrs: %v", err)
	}
	args, _ := nodes[0].Args()
	if k, _ := args[0].Key(); k != "b" {
		t.Fatalf("body attributes must keep source order, got %q first", k)
	}
}

func TestDecodeEndToEnd_NestedBlock(t *testing.T) {
	type limit struct{ Max int }
	type cfg struct {
		Host  string
		Limit limit
	}
	ls := goattr.Record[limit]("limit")
	goattr.Field(ls, "max", goattr.IntOf[int](), func(l *limit, v int) { l.Max = v })
	rs := goattr.Record[cfg]("cfg")
	goattr.Field(rs, "host", goattr.String(), func(c *cfg, v string) { c.Host = v })
	goattr.Field(rs, "limit", ls, func(c *cfg, v limit) { c.Limit = v })

	src := []byte(`
cfg {
  host = "db"
  limit {
    max = 9
  }
}
`)
	nodes, pos, err := hclmeta.Attrs("m.hcl", src)
	if err != nil {
		t.Fatalf("Attrs: %v", err)
	}
	got, err := goattr.DecodeAttrs(rs, pos, nodes)
	if err != nil {
		t.Fatalf("DecodeAttrs: %v", err)
	}
	if got.Host != "db" || got.Limit.Max != 9 {
		t.Fatalf("got %+v", got)
	}
}

func TestToDiagnostics(t *testing.T) {
	iss := goattr.Issues{goattr.NewIssue(
		goattr.Pos{File: "m.hcl", Line: 3, Column: 5, Offset: 20},
		goattr.CodeInvalidType, map[string]string{"expected": "int"},
	)}
	diags := hclmeta.ToDiagnostics(iss)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics", len(diags))
	}
	d := diags[0]
	if d.Summary != goattr.CodeInvalidType || d.Subject == nil || d.Subject.Start.Line != 3 {
		t.Fatalf("got %+v", d)
	}
}
