package yamlmeta_test

import (
	"testing"

	goattr "github.com/reoring/goattr"
	"github.com/reoring/goattr/source/yamlmeta"
)

func TestAttrs_DuplicateKeysBecomeOccurrences(t *testing.T) {
	nodes, _, err := yamlmeta.Attrs("a.yaml", []byte("cfg:\n  x: 1\ncfg:\n  x: 2\n"))
	if err != nil {
		t.Fatalf("Attrs: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected 2 occurrences, got %d", len(nodes))
	}
	for _, n := range nodes {
		if k, ok := n.Key(); !ok || k != "cfg" {
			t.Fatalf("key: %v %v", k, ok)
		}
	}
}

func TestAttrs_EmptyDocument(t *testing.T) {
	nodes, _, err := yamlmeta.Attrs("a.yaml", nil)
	if err != nil {
		t.Fatalf("Attrs: %v", err)
	}
	if len(nodes) != 0 {
		t.Fatalf("got %d nodes", len(nodes))
	}
}

func TestAttrs_ParseFailure(t *testing.T) {
	_, _, err := yamlmeta.Attrs("a.yaml", []byte("a: [unclosed"))
	iss, ok := goattr.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != goattr.CodeParseFailure {
		t.Fatalf("got %v", err)
	}
}

func TestAttrs_NonMappingRoot(t *testing.T) {
	_, _, err := yamlmeta.Attrs("a.yaml", []byte("- a\n- b\n"))
	iss, ok := goattr.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != goattr.CodeInvalidItemShape {
		t.Fatalf("got %v", err)
	}
}

func TestNode_Positions(t *testing.T) {
	nodes, _, err := yamlmeta.Attrs("a.yaml", []byte("cfg:\n  retries: 3\n"))
	if err != nil {
		t.Fatalf("Attrs: %v", err)
	}
	args, ok := nodes[0].Args()
	if !ok || len(args) != 1 {
		t.Fatalf("args: %v %v", args, ok)
	}
	pos := args[0].Pos()
	if pos.File != "a.yaml" || pos.Line != 2 || pos.Column != 3 {
		t.Fatalf("pos: %+v", pos)
	}
}

func TestNode_AliasesResolve(t *testing.T) {
	src := []byte("base: &b [x, y]\ncfg:\n  tags: *b\n")
	nodes, _, err := yamlmeta.Attrs("a.yaml", src)
	if err != nil {
		t.Fatalf("Attrs: %v", err)
	}
	var cfg goattr.Node
	for _, n := range nodes {
		if k, _ := n.Key(); k == "cfg" {
			cfg = n
		}
	}
	args, _ := cfg.Args()
	items, ok := args[0].Array()
	if !ok || len(items) != 2 {
		t.Fatalf("alias should resolve to the anchored sequence: %v %v", items, ok)
	}
	if s, _ := items[0].Text(); s != "x" {
		t.Fatalf("got %q", s)
	}
}

func TestNode_BareFlag(t *testing.T) {
	nodes, _, err := yamlmeta.Attrs("a.yaml", []byte("cfg:\n  verbose:\n  quiet: false\n"))
	if err != nil {
		t.Fatalf("Attrs: %v", err)
	}
	args, _ := nodes[0].Args()
	if b, ok := args[0].Bool(); !ok || !b {
		t.Fatalf("bare flag should read true, got %v %v", b, ok)
	}
	if b, ok := args[1].Bool(); !ok || b {
		t.Fatalf("explicit false should read false, got %v %v", b, ok)
	}
}
