package goattr_test

import (
	"errors"
	"testing"

	goattr "github.com/reoring/goattr"
)

type logLevel int

const (
	levelDebug logLevel = iota
	levelInfo
	levelWarn
	levelError
)

func parseLogLevel(n goattr.Node) (logLevel, error) {
	s, ok := n.Text()
	if !ok {
		return 0, errors.New("one of debug|info|warn|error")
	}
	switch s {
	case "debug":
		return levelDebug, nil
	case "info":
		return levelInfo, nil
	case "warn":
		return levelWarn, nil
	case "error":
		return levelError, nil
	}
	return 0, errors.New("one of debug|info|warn|error")
}

type logConfig struct {
	Level logLevel
}

func logSchema() *goattr.RecordSchema[logConfig] {
	rs := goattr.Record[logConfig]("log")
	goattr.FieldDefault(rs, "level", goattr.Custom(parseLogLevel),
		func(c *logConfig, v logLevel) { c.Level = v },
		func() logLevel { return levelInfo })
	return rs
}

func TestCustom_Success(t *testing.T) {
	nodes := parseYAML(t, `
log:
  level: warn
`)
	got, err := goattr.DecodeAttrs(logSchema(), goattr.UnknownPos(), nodes)
	if err != nil {
		t.Fatalf("DecodeAttrs: %v", err)
	}
	if got.Level != levelWarn {
		t.Fatalf("got %v", got.Level)
	}
}

func TestCustom_FieldDefault(t *testing.T) {
	nodes := parseYAML(t, `log: {}`)
	got, err := goattr.DecodeAttrs(logSchema(), goattr.UnknownPos(), nodes)
	if err != nil {
		t.Fatalf("DecodeAttrs: %v", err)
	}
	if got.Level != levelInfo {
		t.Fatalf("field default not applied: %v", got.Level)
	}
}

func TestCustom_ErrorBecomesInvalidType(t *testing.T) {
	nodes := parseYAML(t, `
log:
  level: loud
`)
	_, err := goattr.DecodeAttrs(logSchema(), goattr.UnknownPos(), nodes)
	iss := issuesOf(t, err)
	if len(iss) != 1 || iss[0].Code != goattr.CodeInvalidType {
		t.Fatalf("got %v", iss)
	}
	if iss[0].Params["expected"] != "one of debug|info|warn|error" {
		t.Fatalf("expected text should carry the parser's description: %+v", iss[0])
	}
}

func TestCustom_IssuesPassThrough(t *testing.T) {
	fn := func(n goattr.Node) (int, error) {
		return 0, goattr.Issues{goattr.NewIssue(n.Pos(), goattr.CodeInvalidItemShape, nil)}
	}
	rs := goattr.Record[struct{ N int }]("shape")
	goattr.Field(rs, "n", goattr.Custom(fn), func(s *struct{ N int }, v int) { s.N = v })

	nodes := parseYAML(t, `
shape:
  n: 1
`)
	_, err := goattr.DecodeAttrs(rs, goattr.UnknownPos(), nodes)
	iss := issuesOf(t, err)
	if len(iss) != 1 || iss[0].Code != goattr.CodeInvalidItemShape {
		t.Fatalf("custom Issues must pass through unchanged, got %v", iss)
	}
}
