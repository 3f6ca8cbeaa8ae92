package taghelpers

import (
	"github.com/aspnet/Razor-sub002/packages/compiler/src/diagnostics"
	"github.com/aspnet/Razor-sub002/packages/compiler/src/util"
)

// AllowedChildTagDescriptor names one child element a tag helper permits
type AllowedChildTagDescriptor struct {
	name        string
	displayName string
	diagnostics diagnostics.List
}

// Name returns the allowed child tag name
func (c *AllowedChildTagDescriptor) Name() string {
	return c.name
}

// DisplayName returns the name shown in tooling
func (c *AllowedChildTagDescriptor) DisplayName() string {
	return c.displayName
}

// Diagnostics returns a copy of the diagnostics produced while building
func (c *AllowedChildTagDescriptor) Diagnostics() diagnostics.List {
	return copyDiagnostics(c.diagnostics)
}

// HasErrors reports whether any diagnostic is an error
func (c *AllowedChildTagDescriptor) HasErrors() bool {
	return c.diagnostics.HasErrors()
}

// AllowedChildTagDescriptorBuilder builds an AllowedChildTagDescriptor
type AllowedChildTagDescriptorBuilder struct {
	containingTagHelper string
	name                string
	displayName         *string
	span                *util.ParseSourceSpan
	diagnostics         diagnostics.List
}

// NewAllowedChildTagDescriptorBuilder creates a builder for a child of the named tag helper
func NewAllowedChildTagDescriptorBuilder(containingTagHelper string) *AllowedChildTagDescriptorBuilder {
	return &AllowedChildTagDescriptorBuilder{containingTagHelper: containingTagHelper}
}

// Name sets the allowed child tag name; "*" allows any child
func (b *AllowedChildTagDescriptorBuilder) Name(name string) *AllowedChildTagDescriptorBuilder {
	b.name = name
	return b
}

// DisplayName overrides the default display name
func (b *AllowedChildTagDescriptorBuilder) DisplayName(displayName string) *AllowedChildTagDescriptorBuilder {
	b.displayName = &displayName
	return b
}

// Span sets the source span used for diagnostics
func (b *AllowedChildTagDescriptorBuilder) Span(span *util.ParseSourceSpan) *AllowedChildTagDescriptorBuilder {
	b.span = span
	return b
}

// AddDiagnostic attaches an externally produced diagnostic
func (b *AllowedChildTagDescriptorBuilder) AddDiagnostic(d diagnostics.Diagnostic) *AllowedChildTagDescriptorBuilder {
	b.diagnostics = append(b.diagnostics, d)
	return b
}

// Build validates the builder state and returns an immutable descriptor
func (b *AllowedChildTagDescriptorBuilder) Build() *AllowedChildTagDescriptor {
	diags := copyDiagnostics(b.diagnostics)
	diags = append(diags, validateAllowedChildTag(b.name, b.containingTagHelper, b.span)...)

	displayName := b.name
	if b.displayName != nil {
		displayName = *b.displayName
	}
	return &AllowedChildTagDescriptor{
		name:        b.name,
		displayName: displayName,
		diagnostics: diags,
	}
}
