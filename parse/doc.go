// Package parse parses sector text into a [sector.Sector].
//
// # Usage
//
//	// Parse a sector file (Windows-1252 unless told otherwise)
//	sec, err := parse.ParseFile("map/1000-1000-7.sec")
//	if err != nil {
//	    return err
//	}
//
//	// Parse decoded text
//	sec, err := parse.ParseString("0-0: Refresh, Content={1000 Amount=2}")
//
//	// Keep going past bad tiles and collect what was skipped
//	var problems []error
//	sec, err := parse.Parse(r, parse.ParseLenient(true), parse.ParseProblems(&problems))
//
// # Format
//
// Each line holds zero or more tile entries
//
//	<x>-<y>: [Refresh][NoLogout][ProtectionZone][Content={<items>}]
//
// where items are `<id> [Keyword=value ...]` separated by ',' and a Content
// attribute nests a further item list. Keywords take ':' or '=' before
// their value.
//
// Tile headers with a negative offset are rejected and reported, the tile
// is skipped. Other failures stop the parse unless [ParseLenient] is set.
//
// # Related Packages
//
//   - github.com/signadot/sector-format/sector - the document model
//   - github.com/signadot/sector-format/encode - encode documents
//   - github.com/signadot/sector-format/token - value readers
package parse
