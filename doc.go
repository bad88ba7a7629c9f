// Package semver parses and formats semantic version strings.
//
// The parser accepts the MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD] shape described by semver.org, plus a set of loose extensions for version strings seen in the
// wild:
//
//   - numeric components may carry leading zeros ("001.20.0301" is 1.20.301)
//   - trailing components may be omitted ("5" and "5.0" are both 5.0.0)
//   - the '-' before a prerelease qualifier may be omitted ("1.2.3foo" is "1.2.3-foo")
//
// The accepted grammar, with ( )? marking optional groups:
//
//	version     := numeric-run ( '.' numeric-run ( '.' numeric-run qualifier? )? )?
//	qualifier   := ( '-'? parts )? ( '+' parts )?
//	parts       := part ( '.' part )*
//	part        := [0-9A-Za-z]+
//	numeric-run := [0-9]+
//
// A part made entirely of decimal digits is a numeric identifier; any other part is opaque text. Formatting always emits the canonical form: dotted decimal
// numbers without leading zeros, '-' before the prerelease identifiers and '+' before the build identifiers, so loosely spelled input does not round-trip
// byte for byte.
//
// Identifiers are kept in source order but carry no precedence logic. Ordering (numeric identifiers compare numerically and sort before alphanumeric ones,
// which compare lexicographically) belongs to a future range-matching layer, not this package.
package semver
