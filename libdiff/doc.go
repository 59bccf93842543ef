// Package libdiff compares sectors and their encodings.
//
// [Lines] is a line diff of two texts, used to check converted output
// against what is already on disk. [Tiles] compares two sectors by tile
// offset.
package libdiff
