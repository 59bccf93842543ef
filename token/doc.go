// Package token provides the low level readers of the sector text format.
//
// [Cursor] walks one decoded line in whole characters. [ReadInt] and
// [ReadString] read the two literal kinds the format has, signed integers
// and double quoted strings with backslash escapes.
package token
