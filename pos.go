package goattr

import (
	"fmt"
	"strconv"
)

// Pos is an opaque source location threaded through every ArgResult and
// Issue. Drivers fill whatever coordinates their front end can produce;
// unknown fields stay zero (Offset uses -1 for unknown).
type Pos struct {
	File   string
	Line   int
	Column int
	Offset int64
	// Path is a tree path (JSON-Pointer style) for front ends that have
	// no line/column information.
	Path string
}

// UnknownPos returns a position carrying no coordinates.
func UnknownPos() Pos { return Pos{Offset: -1} }

// String renders the best coordinates available.
func (p Pos) String() string {
	switch {
	case p.Line > 0 && p.File != "":
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	case p.Line > 0:
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	case p.Path != "":
		return p.Path
	case p.Offset >= 0:
		return "offset " + strconv.FormatInt(p.Offset, 10)
	}
	return "?"
}
