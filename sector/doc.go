// Package sector holds the document model of a converted sector file.
//
// A [Sector] is an ordered list of [Tile] values; each tile holds an ordered
// list of [Item] values which may nest further items. Optional attributes
// are pointers so that an attribute absent from the source stays distinct
// from a zero value, and encodes as an absent key.
//
// The tree is built once by the parser and not modified afterwards.
package sector
