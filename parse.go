package semver

import (
	"strconv"
	"unicode/utf8"
)

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	// KindInvalid reports an unexpected character where the grammar required a specific delimiter or terminal. Found holds the offending character.
	KindInvalid ErrorKind = iota
	// KindNumericRange reports a numeric run that was empty or does not fit an unsigned 64-bit integer.
	KindNumericRange
	// KindUnexpectedEOF reports input that ended where at least one more token was required.
	KindUnexpectedEOF
	// KindIO reports a byte-decoding failure in the consumed input. The underlying error is available via Unwrap.
	KindIO
)

// ParseError describes a failure to parse a version or identifier. Parsing stops at the first failure, so callers see exactly one ParseError per failed
// parse and never a partial result.
type ParseError struct {
	Kind   ErrorKind
	Found  rune  // Offending character for KindInvalid; 0 otherwise.
	Offset int   // Byte offset of the failure within the input, or -1 if no specific position applies.
	Err    error // Underlying error for KindIO; nil otherwise.
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	var msg string
	switch e.Kind {
	case KindInvalid:
		msg = "unexpected character " + strconv.QuoteRune(e.Found)
	case KindNumericRange:
		msg = "invalid numeric range"
	case KindUnexpectedEOF:
		msg = "unexpected end of input"
	case KindIO:
		msg = "invalid input: " + e.Err.Error()
	default:
		msg = "invalid input"
	}
	if e.Offset >= 0 {
		return "semver: " + msg + " at position " + strconv.Itoa(e.Offset)
	}
	return "semver: " + msg
}

// Unwrap returns the underlying error for KindIO failures, nil otherwise.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse parses input as a loose semantic version. Fully canonical strings like "1.2.3-beta.9+acd.v3.2" parse exactly as written; the loose extensions
// documented in the package comment (leading zeros, omitted minor/patch, implicit prerelease without '-') are accepted as well. A successful parse always
// consumes the whole input; trailing bytes after a complete version are an error.
func Parse(input string) (Version, error) {
	c := newCursor(input)
	if c.atEOF() {
		return Version{}, &ParseError{Kind: KindUnexpectedEOF, Offset: 0}
	}

	var v Version
	var err error

	v.Major, err = parseNumber(c)
	if err != nil {
		return Version{}, err
	}
	if c.atEOF() {
		return v, nil
	}
	if err := expectDot(c); err != nil {
		return Version{}, err
	}

	v.Minor, err = parseNumber(c)
	if err != nil {
		return Version{}, err
	}
	if c.atEOF() {
		return v, nil
	}
	if err := expectDot(c); err != nil {
		return Version{}, err
	}

	v.Patch, err = parseNumber(c)
	if err != nil {
		return Version{}, err
	}
	if c.atEOF() {
		return v, nil
	}

	// Qualifier disambiguation: '-' and '+' are consumed as separators. Any other byte stays unconsumed and becomes the first character of an implicit
	// prerelease, so "1.2.3foo" parses as "1.2.3-foo".
	sep, _ := c.peek1()
	if sep == '-' || sep == '+' {
		c.take1()
	}
	if sep != '+' {
		v.Prerelease, err = parseParts(c)
		if err != nil {
			return Version{}, err
		}
		if c.atEOF() {
			return v, nil
		}
		b, _ := c.take1()
		if b != '+' {
			return Version{}, invalidAt(c, c.pos-1)
		}
	}

	v.Build, err = parseParts(c)
	if err != nil {
		return Version{}, err
	}
	if c.atEOF() {
		return v, nil
	}
	return Version{}, invalidAt(c, c.pos)
}

// ParseIdentifier parses input as a single qualifier identifier, classified numeric or textual by the same rule the version parser uses. It fails on empty
// input, on an input that does not start with an ASCII alphanumeric character, and on trailing bytes after the identifier.
func ParseIdentifier(input string) (Identifier, error) {
	c := newCursor(input)
	id, err := parsePart(c)
	if err != nil {
		return Identifier{}, err
	}
	if !c.atEOF() {
		return Identifier{}, invalidAt(c, c.pos)
	}
	return id, nil
}

// parseNumber consumes a maximal digit run and parses it as base-10 uint64. Leading zeros are allowed ("007" is 7). An empty run or a value outside the
// unsigned 64-bit range is a KindNumericRange error.
func parseNumber(c *cursor) (uint64, error) {
	start := c.pos
	raw, err := c.takeWhile(isDigit)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, &ParseError{Kind: KindNumericRange, Offset: start}
	}
	return n, nil
}

// parsePart consumes one identifier: a maximal non-empty run of ASCII alphanumerics. Digit-only runs within uint64 range become numeric identifiers; runs
// with letters, and digit-only runs that overflow uint64, stay textual.
func parsePart(c *cursor) (Identifier, error) {
	start := c.pos
	text, err := c.takeWhile(isAlphanumeric)
	if err != nil {
		return Identifier{}, err
	}
	if text == "" {
		if c.atEOF() {
			return Identifier{}, &ParseError{Kind: KindUnexpectedEOF, Offset: start}
		}
		return Identifier{}, invalidAt(c, start)
	}
	if n, perr := strconv.ParseUint(text, 10, 64); perr == nil {
		return NumericIdentifier(n), nil
	}
	return Identifier{Value: text}, nil
}

// parseParts consumes a dot-separated identifier sequence into a slice, stopping before the first byte that neither continues an identifier nor is a '.'
// following one. A sequence starting at end of input is empty, not an error: "1.2.3-" parses as 1.2.3 with no qualifiers.
func parseParts(c *cursor) ([]Identifier, error) {
	var parts []Identifier
	for !c.atEOF() {
		part, err := parsePart(c)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
		if b, ok := c.peek1(); !ok || b != '.' {
			break
		}
		c.take1()
	}
	return parts, nil
}

// expectDot consumes the '.' separating two numeric components.
func expectDot(c *cursor) error {
	b, ok := c.take1()
	if !ok {
		return &ParseError{Kind: KindUnexpectedEOF, Offset: c.pos}
	}
	if b != '.' {
		return invalidAt(c, c.pos-1)
	}
	return nil
}

// invalidAt reports the byte at offset as an unexpected character, decoding a whole rune for the message so multi-byte input reads sensibly.
func invalidAt(c *cursor, offset int) *ParseError {
	r, _ := utf8.DecodeRuneInString(c.input[offset:])
	return &ParseError{Kind: KindInvalid, Found: r, Offset: offset}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlphanumeric(b byte) bool {
	if isDigit(b) {
		return true
	}
	if b >= 'a' && b <= 'z' {
		return true
	}
	return b >= 'A' && b <= 'Z'
}
