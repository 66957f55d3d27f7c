package goattr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/goattr/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention).
// The set is closed: every failure the engine can report maps onto one of these.
const (
	CodeParseFailure         = "parse_failure"
	CodeInvalidItemShape     = "invalid_item_shape"
	CodeMissingAttribute     = "missing_attribute"
	CodeMissingArgument      = "missing_argument"
	CodeInvalidType          = "invalid_type"
	CodeDuplicateArgument    = "duplicate_argument"
	CodeUnrecognizedArgument = "unrecognized_argument"
)

// Issue represents a single validation entry, positioned in the source
// the metadata was parsed from. Immutable once created.
type Issue struct {
	Pos     Pos
	Code    string // One of the codes listed above.
	Message string
	// Params carries structured parameters (e.g., {"expected":"int32"} or
	// {"name":"age"}) for i18n and observability.
	Params map[string]string
}

// NewIssue builds an Issue at pos, resolving the message through the
// i18n catalog.
func NewIssue(pos Pos, code string, params map[string]string) Issue {
	return Issue{Pos: pos, Code: code, Message: i18n.T(code, params), Params: params}
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at config.yaml:3:7
		fmt.Fprintf(b, "%s at %s", it.Code, it.Pos)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
