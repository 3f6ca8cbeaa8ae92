package taghelpers

import (
	"strings"

	"github.com/aspnet/Razor-sub002/packages/compiler/src/diagnostics"
	"github.com/aspnet/Razor-sub002/packages/compiler/src/util"
)

// TagMatchingRuleDescriptor is one alternative under which a tag helper applies.
// All of its constraints must hold for the rule to match.
type TagMatchingRuleDescriptor struct {
	tagName      TagNameSpec
	parentTag    *string
	tagStructure TagStructure
	attributes   []*RequiredAttributeDescriptor
	diagnostics  diagnostics.List
}

// TagName returns the targeted tag name, "*" for the catch-all
func (r *TagMatchingRuleDescriptor) TagName() string {
	return r.tagName.String()
}

// TagNameSpec returns the targeted tag name as a literal/catch-all variant
func (r *TagMatchingRuleDescriptor) TagNameSpec() TagNameSpec {
	return r.tagName
}

// IsCatchAll reports whether the rule targets every tag name
func (r *TagMatchingRuleDescriptor) IsCatchAll() bool {
	return r.tagName.IsCatchAll()
}

// ParentTag returns the required parent tag name, nil when unconstrained
func (r *TagMatchingRuleDescriptor) ParentTag() *string {
	if r.parentTag == nil {
		return nil
	}
	parent := *r.parentTag
	return &parent
}

// TagStructure returns the expected tag structure
func (r *TagMatchingRuleDescriptor) TagStructure() TagStructure {
	return r.tagStructure
}

// Attributes returns the required attributes
func (r *TagMatchingRuleDescriptor) Attributes() []*RequiredAttributeDescriptor {
	attrs := make([]*RequiredAttributeDescriptor, len(r.attributes))
	copy(attrs, r.attributes)
	return attrs
}

// Diagnostics returns the rule's own diagnostics
func (r *TagMatchingRuleDescriptor) Diagnostics() diagnostics.List {
	return copyDiagnostics(r.diagnostics)
}

// GetAllDiagnostics returns the rule's diagnostics followed by those of its required attributes
func (r *TagMatchingRuleDescriptor) GetAllDiagnostics() diagnostics.List {
	all := copyDiagnostics(r.diagnostics)
	for _, attr := range r.attributes {
		all = append(all, attr.diagnostics...)
	}
	return all
}

// HasErrors reports whether the rule or any required attribute carries an error
func (r *TagMatchingRuleDescriptor) HasErrors() bool {
	return r.GetAllDiagnostics().HasErrors()
}

// String returns a selector-like rendering such as "div > a[href]"
func (r *TagMatchingRuleDescriptor) String() string {
	var sb strings.Builder
	if r.parentTag != nil {
		sb.WriteString(*r.parentTag)
		sb.WriteString(" > ")
	}
	sb.WriteString(r.tagName.String())
	for _, attr := range r.attributes {
		sb.WriteString(attr.String())
	}
	return sb.String()
}

// TagMatchingRuleDescriptorBuilder builds a TagMatchingRuleDescriptor
type TagMatchingRuleDescriptorBuilder struct {
	tagName      TagNameSpec
	parentTag    *string
	tagStructure TagStructure
	attributes   []*RequiredAttributeDescriptorBuilder
	span         *util.ParseSourceSpan
	diagnostics  diagnostics.List
}

// NewTagMatchingRuleDescriptorBuilder creates a new TagMatchingRuleDescriptorBuilder
func NewTagMatchingRuleDescriptorBuilder() *TagMatchingRuleDescriptorBuilder {
	return &TagMatchingRuleDescriptorBuilder{}
}

// RequireTagName sets the targeted tag name; "*" selects the catch-all
func (b *TagMatchingRuleDescriptorBuilder) RequireTagName(tagName string) *TagMatchingRuleDescriptorBuilder {
	b.tagName = ParseTagNameSpec(tagName)
	return b
}

// RequireTagNameSpec sets the targeted tag name from a variant
func (b *TagMatchingRuleDescriptorBuilder) RequireTagNameSpec(tagName TagNameSpec) *TagMatchingRuleDescriptorBuilder {
	b.tagName = tagName
	return b
}

// RequireCatchAll targets every tag name
func (b *TagMatchingRuleDescriptorBuilder) RequireCatchAll() *TagMatchingRuleDescriptorBuilder {
	b.tagName = CatchAllTagName()
	return b
}

// RequireParentTag constrains the immediate parent element's tag name
func (b *TagMatchingRuleDescriptorBuilder) RequireParentTag(parentTag string) *TagMatchingRuleDescriptorBuilder {
	b.parentTag = &parentTag
	return b
}

// RequireTagStructure sets the expected tag structure
func (b *TagMatchingRuleDescriptorBuilder) RequireTagStructure(tagStructure TagStructure) *TagMatchingRuleDescriptorBuilder {
	b.tagStructure = tagStructure
	return b
}

// RequireAttribute adds a required attribute configured by configure
func (b *TagMatchingRuleDescriptorBuilder) RequireAttribute(configure func(*RequiredAttributeDescriptorBuilder)) *TagMatchingRuleDescriptorBuilder {
	attr := NewRequiredAttributeDescriptorBuilder()
	if configure != nil {
		configure(attr)
	}
	b.attributes = append(b.attributes, attr)
	return b
}

// Span sets the source span used for diagnostics
func (b *TagMatchingRuleDescriptorBuilder) Span(span *util.ParseSourceSpan) *TagMatchingRuleDescriptorBuilder {
	b.span = span
	return b
}

// AddDiagnostic attaches an externally produced diagnostic
func (b *TagMatchingRuleDescriptorBuilder) AddDiagnostic(d diagnostics.Diagnostic) *TagMatchingRuleDescriptorBuilder {
	b.diagnostics = append(b.diagnostics, d)
	return b
}

// Build validates the builder state and returns an immutable rule. Structurally
// equal required attributes are collapsed, keeping the first.
func (b *TagMatchingRuleDescriptorBuilder) Build() *TagMatchingRuleDescriptor {
	diags := copyDiagnostics(b.diagnostics)
	diags = append(diags, validateTagName(b.tagName, b.span)...)
	diags = append(diags, validateParentTag(b.parentTag, b.span)...)

	var attrs []*RequiredAttributeDescriptor
	for _, builder := range b.attributes {
		attrs = appendDistinct(attrs, builder.Build(), DefaultComparer.RequiredAttributeEqual)
	}

	var parentTag *string
	if b.parentTag != nil {
		parent := *b.parentTag
		parentTag = &parent
	}

	return &TagMatchingRuleDescriptor{
		tagName:      b.tagName,
		parentTag:    parentTag,
		tagStructure: b.tagStructure,
		attributes:   attrs,
		diagnostics:  diags,
	}
}

// appendDistinct appends item unless an equal element is already present
func appendDistinct[T any](items []T, item T, eq func(T, T) bool) []T {
	for _, existing := range items {
		if eq(existing, item) {
			return items
		}
	}
	return append(items, item)
}
