package semver

import (
	"strconv"
	"strings"
)

// Identifier is a single dot-separated segment of a prerelease or build qualifier, such as "beta" or "9" in "beta.9". A segment that parses entirely as
// decimal digits is always numeric; everything else is opaque ASCII-alphanumeric text. The one exception is a digit-only segment too large for uint64, which
// is kept as text rather than truncated.
type Identifier struct {
	Value   string // Literal text for alphanumeric identifiers; empty when Numeric.
	Numeric bool   // Reports whether the segment is a number rather than opaque text.
	Number  uint64 // Parsed value when Numeric is true; 0 otherwise.
}

// NumericIdentifier returns a numeric Identifier for n. Negative signed values convert with the usual two's-complement wraparound into the unsigned 64-bit
// range.
func NumericIdentifier[T int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64](n T) Identifier {
	return Identifier{Numeric: true, Number: uint64(n)}
}

// String returns the identifier's canonical text: the decimal rendering for numeric identifiers, the literal text otherwise.
func (i Identifier) String() string {
	if i.Numeric {
		return strconv.FormatUint(i.Number, 10)
	}
	return i.Value
}

// Version is a parsed semantic version. The zero value is version 0.0.0 with no qualifiers. Values are independent of the input text they were parsed from
// and safe to copy.
type Version struct {
	Major      uint64
	Minor      uint64
	Patch      uint64
	Prerelease []Identifier // Prerelease identifiers in source order; empty means no prerelease qualifier.
	Build      []Identifier // Build identifiers in source order; empty means no build qualifier.
}

// New returns the version major.minor.patch with no qualifiers.
func New(major, minor, patch uint64) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// NewPrerelease returns the version major.minor.patch with the given prerelease identifiers and no build qualifier.
func NewPrerelease(major, minor, patch uint64, prerelease []Identifier) Version {
	return Version{Major: major, Minor: minor, Patch: patch, Prerelease: prerelease}
}

// NewBuild returns the version major.minor.patch with the given build identifiers and no prerelease qualifier.
func NewBuild(major, minor, patch uint64, build []Identifier) Version {
	return Version{Major: major, Minor: minor, Patch: patch, Build: build}
}

// Equal reports whether v and other are structurally identical across all five fields, including qualifier order.
func (v Version) Equal(other Version) bool {
	if v.Major != other.Major || v.Minor != other.Minor || v.Patch != other.Patch {
		return false
	}
	if len(v.Prerelease) != len(other.Prerelease) || len(v.Build) != len(other.Build) {
		return false
	}
	for i := range v.Prerelease {
		if v.Prerelease[i] != other.Prerelease[i] {
			return false
		}
	}
	for i := range v.Build {
		if v.Build[i] != other.Build[i] {
			return false
		}
	}
	return true
}

// String formats the version canonically: MAJOR.MINOR.PATCH, followed by '-' and the dot-joined prerelease identifiers when present, followed by '+' and the
// dot-joined build identifiers when present.
func (v Version) String() string {
	var b strings.Builder
	// Minimal grow hint: major+minor+patch digits and separators.
	b.Grow(16)
	b.WriteString(strconv.FormatUint(v.Major, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.Minor, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.Patch, 10))
	if len(v.Prerelease) > 0 {
		b.WriteByte('-')
		writeIdentifiers(&b, v.Prerelease)
	}
	if len(v.Build) > 0 {
		b.WriteByte('+')
		writeIdentifiers(&b, v.Build)
	}
	return b.String()
}

func writeIdentifiers(b *strings.Builder, ids []Identifier) {
	for i, id := range ids {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(id.String())
	}
}
