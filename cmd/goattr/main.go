// goattr is the companion code generator: it scans annotated structs
// and emits RecordSchema constructors so decode plans stay in sync with
// the Go types they fill.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"

	gen "github.com/reoring/goattr/internal/gen"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "gen":
		genCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `goattr CLI

Usage:
  goattr gen -type T1[,T2,...] [-dir .] [-o T1_schema.go] [-debug]

Struct tags:
  attr:"name"               rename the argument
  attr:"name,default=expr"  substitute expr when the argument is absent
  attr:"-"                  skip the field`)
}

func genCmd(args []string) {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	var typesCSV string
	var dir string
	var out string
	var debug bool
	fs.StringVar(&typesCSV, "type", "", "comma-separated struct type names to generate schemas for")
	fs.StringVar(&dir, "dir", ".", "package directory to scan")
	fs.StringVar(&out, "o", "", "output filename (default <first type>_schema.go in -dir)")
	fs.BoolVar(&debug, "debug", false, "dump the scanned schemas to stderr")
	_ = fs.Parse(args)
	if typesCSV == "" {
		fs.Usage()
		os.Exit(2)
	}
	types := splitCSV(typesCSV)

	schemas, pkg, err := gen.ScanDir(dir, types)
	if err != nil {
		fatalf("scan: %v", err)
	}
	if debug {
		spew.Fdump(os.Stderr, schemas)
	}

	code, err := gen.RenderFile(pkg, schemas)
	if err != nil {
		fatalf("generate: %v", err)
	}

	if out == "" {
		out = filepath.Join(dir, strings.ToLower(types[0])+"_schema.go")
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		fatalf("creating output dir: %v", err)
	}
	if err := os.WriteFile(out, code, 0o644); err != nil {
		fatalf("writing output: %v", err)
	}
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
