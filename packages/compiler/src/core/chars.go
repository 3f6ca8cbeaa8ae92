package core

import (
	"unicode"
	"unicode/utf8"
)

// Character constants used by tag helper name validation
const (
	CharSPACE    = ' '
	CharBANG     = '!'
	CharDQ       = '"'
	CharSQ       = '\''
	CharSTAR     = '*'
	CharSLASH    = '/'
	CharLT       = '<'
	CharEQ       = '='
	CharGT       = '>'
	CharQUESTION = '?'
	CharAT       = '@'
	CharLBRACKET = '['
	CharRBRACKET = ']'
	CharMINUS    = '-'
)

// ElementCatchAllName is the tag name sentinel that matches any element
const ElementCatchAllName = "*"

// DataDashPrefix is the attribute prefix reserved by HTML user agents
const DataDashPrefix = "data-"

// invalidNonWhitespaceNameCharacters are rejected anywhere in a tag, parent tag,
// required attribute, bound attribute or restricted child name.
var invalidNonWhitespaceNameCharacters = [...]rune{
	CharAT,
	CharBANG,
	CharLT,
	CharSLASH,
	CharQUESTION,
	CharLBRACKET,
	CharGT,
	CharRBRACKET,
	CharEQ,
	CharDQ,
	CharSQ,
	CharSTAR,
}

// InvalidNonWhitespaceNameCharacters returns a copy of the disallowed character set
func InvalidNonWhitespaceNameCharacters() []rune {
	chars := invalidNonWhitespaceNameCharacters
	return chars[:]
}

// IsWhitespace checks if a rune is whitespace
func IsWhitespace(ch rune) bool {
	return unicode.IsSpace(ch)
}

// IsInvalidNameCharacter checks if a rune may not appear in a tag helper name
func IsInvalidNameCharacter(ch rune) bool {
	if IsWhitespace(ch) {
		return true
	}
	for _, invalid := range invalidNonWhitespaceNameCharacters {
		if ch == invalid {
			return true
		}
	}
	return false
}

// IsNullOrWhitespace checks if a string is empty or made only of whitespace
func IsNullOrWhitespace(s string) bool {
	for _, ch := range s {
		if !IsWhitespace(ch) {
			return false
		}
	}
	return true
}

// FoldRune returns the smallest rune of r's simple case folding orbit, so two runes
// are equal ignoring case iff their folded runes are equal. This is the equivalence
// strings.EqualFold uses.
func FoldRune(r rune) rune {
	if r < utf8.RuneSelf {
		if 'a' <= r && r <= 'z' {
			return r - 'a' + 'A'
		}
		return r
	}
	folded := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < folded {
			folded = f
		}
	}
	return folded
}

// TrimPrefixFold removes prefix from s, comparing rune by rune ignoring case. It
// reports false and returns s unchanged when s does not start with prefix.
func TrimPrefixFold(s, prefix string) (string, bool) {
	rest := s
	for _, p := range prefix {
		r, size := utf8.DecodeRuneInString(rest)
		if size == 0 || FoldRune(r) != FoldRune(p) {
			return s, false
		}
		rest = rest[size:]
	}
	return rest, true
}
