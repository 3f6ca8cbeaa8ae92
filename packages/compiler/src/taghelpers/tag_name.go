package taghelpers

import (
	"strings"

	"github.com/aspnet/Razor-sub002/packages/compiler/src/core"
)

// TagNameSpec is the tag name a rule targets: either a literal name or the
// catch-all that matches every element.
type TagNameSpec struct {
	literal  string
	catchAll bool
}

// LiteralTagName creates a TagNameSpec for a literal tag name. The name is kept as
// written, including a "*", so that validation can flag it.
func LiteralTagName(name string) TagNameSpec {
	return TagNameSpec{literal: name}
}

// CatchAllTagName creates the catch-all TagNameSpec
func CatchAllTagName() TagNameSpec {
	return TagNameSpec{catchAll: true}
}

// ParseTagNameSpec maps the "*" sentinel to the catch-all and anything else to a literal
func ParseTagNameSpec(name string) TagNameSpec {
	if name == core.ElementCatchAllName {
		return CatchAllTagName()
	}
	return LiteralTagName(name)
}

// IsCatchAll reports whether t matches every tag name
func (t TagNameSpec) IsCatchAll() bool {
	return t.catchAll
}

// Literal returns the literal tag name, empty for the catch-all
func (t TagNameSpec) Literal() string {
	return t.literal
}

// String returns the literal name, or "*" for the catch-all
func (t TagNameSpec) String() string {
	if t.catchAll {
		return core.ElementCatchAllName
	}
	return t.literal
}

// FoldName returns the case-insensitive key of a tag, parent or attribute name. Two
// names have the same key iff strings.EqualFold reports them equal, so "ß" and "ss"
// stay distinct. The key is not meant for display.
func FoldName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		b.WriteRune(core.FoldRune(r))
	}
	return b.String()
}
