package taghelpers

import (
	"github.com/aspnet/Razor-sub002/packages/compiler/src/diagnostics"
	"github.com/aspnet/Razor-sub002/packages/compiler/src/util"
)

// BoundAttributeDescriptor maps an HTML attribute (or attribute prefix) to a tag
// helper property. It plays no part in matching and is carried for code generation.
type BoundAttributeDescriptor struct {
	kind              string
	name              string
	typeName          string
	isEnum            bool
	indexerNamePrefix *string
	indexerTypeName   string
	documentation     string
	displayName       string
	metadata          map[string]string
	diagnostics       diagnostics.List
}

// Kind returns the kind of the owning tag helper
func (a *BoundAttributeDescriptor) Kind() string {
	return a.kind
}

// Name returns the bound HTML attribute name
func (a *BoundAttributeDescriptor) Name() string {
	return a.name
}

// TypeName returns the property type name
func (a *BoundAttributeDescriptor) TypeName() string {
	return a.typeName
}

// IsEnum reports whether the property type is an enum
func (a *BoundAttributeDescriptor) IsEnum() bool {
	return a.isEnum
}

// IndexerNamePrefix returns the dictionary attribute prefix, nil when there is no indexer
func (a *BoundAttributeDescriptor) IndexerNamePrefix() *string {
	if a.indexerNamePrefix == nil {
		return nil
	}
	prefix := *a.indexerNamePrefix
	return &prefix
}

// IndexerTypeName returns the dictionary value type name
func (a *BoundAttributeDescriptor) IndexerTypeName() string {
	return a.indexerTypeName
}

// HasIndexer reports whether prefixed attributes bind into a dictionary property
func (a *BoundAttributeDescriptor) HasIndexer() bool {
	return a.indexerNamePrefix != nil && a.indexerTypeName != ""
}

// IsStringProperty reports whether the property is a string
func (a *BoundAttributeDescriptor) IsStringProperty() bool {
	return isStringTypeName(a.typeName)
}

// IsIndexerStringProperty reports whether the dictionary values are strings
func (a *BoundAttributeDescriptor) IsIndexerStringProperty() bool {
	return isStringTypeName(a.indexerTypeName)
}

// IsBooleanProperty reports whether the property is a boolean
func (a *BoundAttributeDescriptor) IsBooleanProperty() bool {
	return a.typeName == "System.Boolean" || a.typeName == "bool"
}

// Documentation returns the property documentation
func (a *BoundAttributeDescriptor) Documentation() string {
	return a.documentation
}

// DisplayName returns the name shown in tooling
func (a *BoundAttributeDescriptor) DisplayName() string {
	return a.displayName
}

// Metadata returns a copy of the attribute metadata
func (a *BoundAttributeDescriptor) Metadata() map[string]string {
	return copyMetadata(a.metadata)
}

// PropertyName returns the bound property name from metadata
func (a *BoundAttributeDescriptor) PropertyName() string {
	return a.metadata[PropertyNameKey]
}

// Diagnostics returns a copy of the diagnostics produced while building
func (a *BoundAttributeDescriptor) Diagnostics() diagnostics.List {
	return copyDiagnostics(a.diagnostics)
}

// HasErrors reports whether any diagnostic is an error
func (a *BoundAttributeDescriptor) HasErrors() bool {
	return a.diagnostics.HasErrors()
}

func isStringTypeName(typeName string) bool {
	return typeName == "System.String" || typeName == "string"
}

// BoundAttributeDescriptorBuilder builds a BoundAttributeDescriptor
type BoundAttributeDescriptorBuilder struct {
	kind                string
	containingTagHelper string
	containingTypeName  string
	name                string
	typeName            string
	isEnum              bool
	indexerNamePrefix   *string
	indexerTypeName     string
	documentation       string
	displayName         *string
	metadata            map[string]string
	span                *util.ParseSourceSpan
	diagnostics         diagnostics.List
}

// NewBoundAttributeDescriptorBuilder creates a builder for an attribute of the tag
// helper with the given kind and type name
func NewBoundAttributeDescriptorBuilder(kind, containingTypeName string) *BoundAttributeDescriptorBuilder {
	return &BoundAttributeDescriptorBuilder{
		kind:                kind,
		containingTagHelper: containingTypeName,
		containingTypeName:  containingTypeName,
		metadata:            map[string]string{},
	}
}

// Name sets the bound HTML attribute name
func (b *BoundAttributeDescriptorBuilder) Name(name string) *BoundAttributeDescriptorBuilder {
	b.name = name
	return b
}

// PropertyName records the bound property name in metadata
func (b *BoundAttributeDescriptorBuilder) PropertyName(propertyName string) *BoundAttributeDescriptorBuilder {
	b.metadata[PropertyNameKey] = propertyName
	return b
}

// TypeName sets the property type name
func (b *BoundAttributeDescriptorBuilder) TypeName(typeName string) *BoundAttributeDescriptorBuilder {
	b.typeName = typeName
	return b
}

// IsEnum marks the property type as an enum
func (b *BoundAttributeDescriptorBuilder) IsEnum(isEnum bool) *BoundAttributeDescriptorBuilder {
	b.isEnum = isEnum
	return b
}

// AsDictionary declares a dictionary property bound through attributes starting with prefix
func (b *BoundAttributeDescriptorBuilder) AsDictionary(prefix, valueTypeName string) *BoundAttributeDescriptorBuilder {
	b.indexerNamePrefix = &prefix
	b.indexerTypeName = valueTypeName
	return b
}

// Documentation sets the property documentation
func (b *BoundAttributeDescriptorBuilder) Documentation(documentation string) *BoundAttributeDescriptorBuilder {
	b.documentation = documentation
	return b
}

// DisplayName overrides the default display name
func (b *BoundAttributeDescriptorBuilder) DisplayName(displayName string) *BoundAttributeDescriptorBuilder {
	b.displayName = &displayName
	return b
}

// AddMetadata sets one metadata entry
func (b *BoundAttributeDescriptorBuilder) AddMetadata(key, value string) *BoundAttributeDescriptorBuilder {
	b.metadata[key] = value
	return b
}

// Span sets the source span used for diagnostics
func (b *BoundAttributeDescriptorBuilder) Span(span *util.ParseSourceSpan) *BoundAttributeDescriptorBuilder {
	b.span = span
	return b
}

// AddDiagnostic attaches an externally produced diagnostic
func (b *BoundAttributeDescriptorBuilder) AddDiagnostic(d diagnostics.Diagnostic) *BoundAttributeDescriptorBuilder {
	b.diagnostics = append(b.diagnostics, d)
	return b
}

// Build validates the builder state and returns an immutable descriptor
func (b *BoundAttributeDescriptorBuilder) Build() *BoundAttributeDescriptor {
	diags := copyDiagnostics(b.diagnostics)
	diags = append(diags, validateBoundAttribute(b)...)

	displayName := b.name
	if property := b.metadata[PropertyNameKey]; property != "" {
		displayName = b.typeName + " " + b.containingTypeName + "." + property
	}
	if b.displayName != nil {
		displayName = *b.displayName
	}

	var prefix *string
	if b.indexerNamePrefix != nil {
		p := *b.indexerNamePrefix
		prefix = &p
	}

	return &BoundAttributeDescriptor{
		kind:              b.kind,
		name:              b.name,
		typeName:          b.typeName,
		isEnum:            b.isEnum,
		indexerNamePrefix: prefix,
		indexerTypeName:   b.indexerTypeName,
		documentation:     b.documentation,
		displayName:       displayName,
		metadata:          copyMetadata(b.metadata),
		diagnostics:       diags,
	}
}

// propertyDisplayName names the property in diagnostics, falling back to the attribute name
func (b *BoundAttributeDescriptorBuilder) propertyDisplayName() string {
	if property := b.metadata[PropertyNameKey]; property != "" {
		return property
	}
	return b.name
}

func copyMetadata(m map[string]string) map[string]string {
	copied := make(map[string]string, len(m))
	for k, v := range m {
		copied[k] = v
	}
	return copied
}
