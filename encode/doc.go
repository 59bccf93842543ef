// Package encode writes [sector.Sector] documents as JSON or YAML.
//
// JSON output is indented by two spaces with fields in model order and
// absent attributes omitted. [EncodeWire] gives one compact line instead.
// YAML output carries the same fields in the same order.
//
// Output may be patched with an RFC 6902 patch ([EncodePatch]), checked
// against the embedded schema ([EncodeValidate]) and highlighted for a
// terminal ([EncodeColors]).
package encode
