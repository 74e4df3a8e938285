// Package xmltree is a small mutable XML element tree.
//
// A document is parsed fully into memory, queried with a handful of
// primitives (direct child by tag, descendants by tag and single attribute
// equality, parent of a matching child), mutated in place and written back.
// Text is stored ElementTree-style: Text is the character data before the
// first child, Tail is the character data after the element's end tag.
//
// Comments, processing instructions and DOCTYPE directives are not retained.
package xmltree
