package i18n_test

import (
	"testing"

	"github.com/reoring/goattr/i18n"
)

func TestBuiltinDictionary_Interpolation(t *testing.T) {
	i18n.SetLanguage("en")
	got := i18n.T("missing_argument", map[string]string{"name": "age"})
	if got != "argument 'age' is required" {
		t.Fatalf("unexpected message: %q", got)
	}
	got = i18n.T("invalid_type", map[string]string{"expected": "int32"})
	if got != "invalid type: expected int32" {
		t.Fatalf("unexpected message: %q", got)
	}
	// unknown codes fall back to the code itself
	if got := i18n.T("nope", nil); got != "nope" {
		t.Fatalf("unexpected fallback: %q", got)
	}
}

func TestSetLanguage_Japanese(t *testing.T) {
	i18n.SetLanguage("ja")
	defer i18n.SetLanguage("en")
	got := i18n.T("duplicate_argument", nil)
	if got == "duplicate_argument" || got == "duplicate argument" {
		t.Fatalf("expected ja message, got %q", got)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator_Custom(t *testing.T) {
	i18n.SetTranslator(upperTranslator{})
	defer i18n.SetTranslator(nil)
	if got := i18n.T("invalid_type", nil); got != "X:invalid_type" {
		t.Fatalf("custom translator not used: %q", got)
	}
}
