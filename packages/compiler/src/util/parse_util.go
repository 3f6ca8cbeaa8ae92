package util

import (
	"fmt"
)

// ParseSourceFile identifies the document a location belongs to
type ParseSourceFile struct {
	URL string
}

// NewParseSourceFile creates a new ParseSourceFile
func NewParseSourceFile(url string) *ParseSourceFile {
	return &ParseSourceFile{URL: url}
}

// ParseLocation represents a location in a source file. Offset is in bytes; Line and
// Col are zero-based.
type ParseLocation struct {
	File   *ParseSourceFile
	Offset int
	Line   int
	Col    int
}

// NewParseLocation creates a new ParseLocation
func NewParseLocation(file *ParseSourceFile, offset, line, col int) *ParseLocation {
	return &ParseLocation{
		File:   file,
		Offset: offset,
		Line:   line,
		Col:    col,
	}
}

// String returns "url@line:col" with one-based line and column
func (p *ParseLocation) String() string {
	url := ""
	if p.File != nil {
		url = p.File.URL
	}
	if p.Offset >= 0 {
		return fmt.Sprintf("%s@%d:%d", url, p.Line+1, p.Col+1)
	}
	return url
}

// ParseSourceSpan represents a span of source text
type ParseSourceSpan struct {
	Start   *ParseLocation
	End     *ParseLocation
	Details *string
}

// NewParseSourceSpan creates a new ParseSourceSpan
func NewParseSourceSpan(start, end *ParseLocation, details *string) *ParseSourceSpan {
	return &ParseSourceSpan{
		Start:   start,
		End:     end,
		Details: details,
	}
}

// Length returns the number of bytes covered by the span
func (p *ParseSourceSpan) Length() int {
	if p == nil || p.Start == nil || p.End == nil {
		return 0
	}
	return p.End.Offset - p.Start.Offset
}

// FilePath returns the URL of the file the span belongs to
func (p *ParseSourceSpan) FilePath() string {
	if p == nil || p.Start == nil || p.Start.File == nil {
		return ""
	}
	return p.Start.File.URL
}

// String returns a string representation of the span
func (p *ParseSourceSpan) String() string {
	if p == nil || p.Start == nil {
		return ""
	}
	if p.Details != nil {
		return fmt.Sprintf("%s (%d), %s", p.Start, p.Length(), *p.Details)
	}
	return fmt.Sprintf("%s (%d)", p.Start, p.Length())
}

// Equal reports whether two spans cover the same range of the same file
func (p *ParseSourceSpan) Equal(other *ParseSourceSpan) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.FilePath() == other.FilePath() &&
		offsetOf(p.Start) == offsetOf(other.Start) &&
		offsetOf(p.End) == offsetOf(other.End)
}

func offsetOf(loc *ParseLocation) int {
	if loc == nil {
		return -1
	}
	return loc.Offset
}
