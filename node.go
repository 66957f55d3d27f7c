package goattr

// Node is the capability surface the engine requires from an
// already-parsed metadata tree. Concrete trees live under source/; the
// engine never sees their representation, only these accessors.
//
// Every accessor returns ok=false on shape mismatch rather than an
// error: classifying a mismatch is the codec's job, not the tree's.
type Node interface {
	// Pos reports the node's source location.
	Pos() Pos
	// Key reports the key of a key/value child, or the attribute's own
	// name for attribute nodes. ok is false for positional children.
	Key() (string, bool)
	// Args expands a list-shaped node (an attribute body or a nested
	// sub-list) into its children, in textual order.
	Args() ([]Node, bool)
	// Text extracts a text literal.
	Text() (string, bool)
	// Bool extracts a boolean literal. Bare flag-style children (a key
	// with no explicit value) extract as true.
	Bool() (bool, bool)
	// Number extracts a numeric literal as its source text; codecs
	// interpret it with the declared width.
	Number() (string, bool)
	// Array expands an array literal into its element nodes.
	Array() ([]Node, bool)
}
