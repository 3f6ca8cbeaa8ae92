package taghelpers

import (
	"fmt"

	"github.com/aspnet/Razor-sub002/packages/compiler/src/diagnostics"
	"github.com/aspnet/Razor-sub002/packages/compiler/src/util"
)

// RequiredAttributeDescriptor is one attribute constraint of a tag matching rule
type RequiredAttributeDescriptor struct {
	name            string
	nameComparison  NameComparisonMode
	value           string
	valueComparison ValueComparisonMode
	displayName     string
	diagnostics     diagnostics.List
}

// Name returns the required attribute name, or the name prefix in prefix mode
func (r *RequiredAttributeDescriptor) Name() string {
	return r.name
}

// NameComparison returns how the name is compared
func (r *RequiredAttributeDescriptor) NameComparison() NameComparisonMode {
	return r.nameComparison
}

// Value returns the required value; meaningful only when ValueComparison is not None
func (r *RequiredAttributeDescriptor) Value() string {
	return r.value
}

// ValueComparison returns how the value is compared
func (r *RequiredAttributeDescriptor) ValueComparison() ValueComparisonMode {
	return r.valueComparison
}

// DisplayName returns the name shown in tooling
func (r *RequiredAttributeDescriptor) DisplayName() string {
	return r.displayName
}

// Diagnostics returns a copy of the diagnostics produced while building
func (r *RequiredAttributeDescriptor) Diagnostics() diagnostics.List {
	return copyDiagnostics(r.diagnostics)
}

// HasErrors reports whether any diagnostic is an error
func (r *RequiredAttributeDescriptor) HasErrors() bool {
	return r.diagnostics.HasErrors()
}

// String returns a selector-like rendering such as [class^=btn]
func (r *RequiredAttributeDescriptor) String() string {
	name := r.name
	if r.nameComparison == NameComparisonPrefixMatch {
		name += "..."
	}
	switch r.valueComparison {
	case ValueComparisonFullMatch:
		return fmt.Sprintf("[%s=%s]", name, r.value)
	case ValueComparisonPrefixMatch:
		return fmt.Sprintf("[%s^=%s]", name, r.value)
	case ValueComparisonSuffixMatch:
		return fmt.Sprintf("[%s$=%s]", name, r.value)
	default:
		return fmt.Sprintf("[%s]", name)
	}
}

// RequiredAttributeDescriptorBuilder builds a RequiredAttributeDescriptor
type RequiredAttributeDescriptorBuilder struct {
	name            string
	nameComparison  NameComparisonMode
	value           string
	valueComparison ValueComparisonMode
	displayName     *string
	span            *util.ParseSourceSpan
	diagnostics     diagnostics.List
}

// NewRequiredAttributeDescriptorBuilder creates a new RequiredAttributeDescriptorBuilder
func NewRequiredAttributeDescriptorBuilder() *RequiredAttributeDescriptorBuilder {
	return &RequiredAttributeDescriptorBuilder{}
}

// Name sets the required attribute name
func (b *RequiredAttributeDescriptorBuilder) Name(name string) *RequiredAttributeDescriptorBuilder {
	b.name = name
	return b
}

// NameComparison sets how the name is compared
func (b *RequiredAttributeDescriptorBuilder) NameComparison(mode NameComparisonMode) *RequiredAttributeDescriptorBuilder {
	b.nameComparison = mode
	return b
}

// Value sets the required value
func (b *RequiredAttributeDescriptorBuilder) Value(value string) *RequiredAttributeDescriptorBuilder {
	b.value = value
	return b
}

// ValueComparison sets how the value is compared
func (b *RequiredAttributeDescriptorBuilder) ValueComparison(mode ValueComparisonMode) *RequiredAttributeDescriptorBuilder {
	b.valueComparison = mode
	return b
}

// DisplayName overrides the default display name
func (b *RequiredAttributeDescriptorBuilder) DisplayName(displayName string) *RequiredAttributeDescriptorBuilder {
	b.displayName = &displayName
	return b
}

// Span sets the source span used for diagnostics
func (b *RequiredAttributeDescriptorBuilder) Span(span *util.ParseSourceSpan) *RequiredAttributeDescriptorBuilder {
	b.span = span
	return b
}

// AddDiagnostic attaches an externally produced diagnostic
func (b *RequiredAttributeDescriptorBuilder) AddDiagnostic(d diagnostics.Diagnostic) *RequiredAttributeDescriptorBuilder {
	b.diagnostics = append(b.diagnostics, d)
	return b
}

// Build validates the builder state and returns an immutable descriptor
func (b *RequiredAttributeDescriptorBuilder) Build() *RequiredAttributeDescriptor {
	diags := copyDiagnostics(b.diagnostics)
	diags = append(diags, validateRequiredAttributeName(b.name, b.span)...)

	displayName := b.name
	if b.nameComparison == NameComparisonPrefixMatch {
		displayName += "..."
	}
	if b.displayName != nil {
		displayName = *b.displayName
	}

	return &RequiredAttributeDescriptor{
		name:            b.name,
		nameComparison:  b.nameComparison,
		value:           b.value,
		valueComparison: b.valueComparison,
		displayName:     displayName,
		diagnostics:     diags,
	}
}

func copyDiagnostics(list diagnostics.List) diagnostics.List {
	if len(list) == 0 {
		return nil
	}
	copied := make(diagnostics.List, len(list))
	copy(copied, list)
	return copied
}
