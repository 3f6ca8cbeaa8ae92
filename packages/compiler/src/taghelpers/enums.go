package taghelpers

import (
	"fmt"
	"strings"
)

// NameComparisonMode controls how a required attribute name is compared with an
// observed attribute name
type NameComparisonMode int

const (
	// NameComparisonFullMatch - the observed name must equal the required name, ignoring case
	NameComparisonFullMatch NameComparisonMode = iota
	// NameComparisonPrefixMatch - the observed name must start with the required name and be longer
	NameComparisonPrefixMatch
)

// String returns the manifest spelling of the mode
func (m NameComparisonMode) String() string {
	switch m {
	case NameComparisonFullMatch:
		return "fullMatch"
	case NameComparisonPrefixMatch:
		return "prefixMatch"
	default:
		return fmt.Sprintf("NameComparisonMode(%d)", int(m))
	}
}

// ParseNameComparisonMode parses the manifest spelling of a name comparison mode.
// The empty string parses as NameComparisonFullMatch.
func ParseNameComparisonMode(s string) (NameComparisonMode, error) {
	switch strings.ToLower(s) {
	case "", "fullmatch":
		return NameComparisonFullMatch, nil
	case "prefixmatch":
		return NameComparisonPrefixMatch, nil
	default:
		return NameComparisonFullMatch, fmt.Errorf("unknown name comparison mode %q", s)
	}
}

// ValueComparisonMode controls how a required attribute value is compared with an
// observed attribute value. Values always compare case-sensitively.
type ValueComparisonMode int

const (
	// ValueComparisonNone - the value is not inspected
	ValueComparisonNone ValueComparisonMode = iota
	// ValueComparisonFullMatch - the observed value must equal the required value
	ValueComparisonFullMatch
	// ValueComparisonPrefixMatch - the observed value must start with the required value
	ValueComparisonPrefixMatch
	// ValueComparisonSuffixMatch - the observed value must end with the required value
	ValueComparisonSuffixMatch
)

// String returns the manifest spelling of the mode
func (m ValueComparisonMode) String() string {
	switch m {
	case ValueComparisonNone:
		return "none"
	case ValueComparisonFullMatch:
		return "fullMatch"
	case ValueComparisonPrefixMatch:
		return "prefixMatch"
	case ValueComparisonSuffixMatch:
		return "suffixMatch"
	default:
		return fmt.Sprintf("ValueComparisonMode(%d)", int(m))
	}
}

// ParseValueComparisonMode parses the manifest spelling of a value comparison mode.
// The empty string parses as ValueComparisonNone.
func ParseValueComparisonMode(s string) (ValueComparisonMode, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return ValueComparisonNone, nil
	case "fullmatch":
		return ValueComparisonFullMatch, nil
	case "prefixmatch":
		return ValueComparisonPrefixMatch, nil
	case "suffixmatch":
		return ValueComparisonSuffixMatch, nil
	default:
		return ValueComparisonNone, fmt.Errorf("unknown value comparison mode %q", s)
	}
}

// TagStructure describes how a matched element is expected to be written. It is
// carried on rules for later phases and does not take part in matching.
type TagStructure int

const (
	TagStructureUnspecified TagStructure = iota
	TagStructureNormalOrSelfClosing
	TagStructureWithoutEndTag
)

// String returns the manifest spelling of the tag structure
func (s TagStructure) String() string {
	switch s {
	case TagStructureUnspecified:
		return "unspecified"
	case TagStructureNormalOrSelfClosing:
		return "normalOrSelfClosing"
	case TagStructureWithoutEndTag:
		return "withoutEndTag"
	default:
		return fmt.Sprintf("TagStructure(%d)", int(s))
	}
}

// ParseTagStructure parses the manifest spelling of a tag structure.
// The empty string parses as TagStructureUnspecified.
func ParseTagStructure(s string) (TagStructure, error) {
	switch strings.ToLower(s) {
	case "", "unspecified":
		return TagStructureUnspecified, nil
	case "normalorselfclosing":
		return TagStructureNormalOrSelfClosing, nil
	case "withoutendtag":
		return TagStructureWithoutEndTag, nil
	default:
		return TagStructureUnspecified, fmt.Errorf("unknown tag structure %q", s)
	}
}
