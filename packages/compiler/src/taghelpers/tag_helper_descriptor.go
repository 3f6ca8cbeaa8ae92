package taghelpers

import (
	"fmt"

	"github.com/aspnet/Razor-sub002/packages/compiler/src/diagnostics"
)

// TagHelperDescriptor describes one tag helper: the rules under which it applies
// to an element and the metadata later phases need to generate code for it.
type TagHelperDescriptor struct {
	kind             string
	name             string
	assemblyName     string
	displayName      string
	documentation    string
	tagOutputHint    string
	tagMatchingRules []*TagMatchingRuleDescriptor
	boundAttributes  []*BoundAttributeDescriptor
	allowedChildTags []*AllowedChildTagDescriptor
	metadata         map[string]string
	diagnostics      diagnostics.List
}

// Kind returns the tag helper kind
func (d *TagHelperDescriptor) Kind() string {
	return d.kind
}

// Name returns the implementing type name
func (d *TagHelperDescriptor) Name() string {
	return d.name
}

// TypeName returns the implementing type name
func (d *TagHelperDescriptor) TypeName() string {
	if typeName, ok := d.metadata[TypeNameKey]; ok {
		return typeName
	}
	return d.name
}

// AssemblyName returns the name of the assembly that contributed the tag helper
func (d *TagHelperDescriptor) AssemblyName() string {
	return d.assemblyName
}

// DisplayName returns the name shown in tooling
func (d *TagHelperDescriptor) DisplayName() string {
	return d.displayName
}

// Documentation returns the tag helper documentation
func (d *TagHelperDescriptor) Documentation() string {
	return d.documentation
}

// TagOutputHint returns the element the tag helper is expected to render
func (d *TagHelperDescriptor) TagOutputHint() string {
	return d.tagOutputHint
}

// TagMatchingRules returns the rules; the descriptor applies when any of them matches
func (d *TagHelperDescriptor) TagMatchingRules() []*TagMatchingRuleDescriptor {
	rules := make([]*TagMatchingRuleDescriptor, len(d.tagMatchingRules))
	copy(rules, d.tagMatchingRules)
	return rules
}

// BoundAttributes returns the attribute to property bindings
func (d *TagHelperDescriptor) BoundAttributes() []*BoundAttributeDescriptor {
	attrs := make([]*BoundAttributeDescriptor, len(d.boundAttributes))
	copy(attrs, d.boundAttributes)
	return attrs
}

// AllowedChildTags returns the permitted children, nil when children are unrestricted
func (d *TagHelperDescriptor) AllowedChildTags() []*AllowedChildTagDescriptor {
	if d.allowedChildTags == nil {
		return nil
	}
	children := make([]*AllowedChildTagDescriptor, len(d.allowedChildTags))
	copy(children, d.allowedChildTags)
	return children
}

// Metadata returns a copy of the descriptor metadata
func (d *TagHelperDescriptor) Metadata() map[string]string {
	return copyMetadata(d.metadata)
}

// MetadataValue looks up one metadata entry
func (d *TagHelperDescriptor) MetadataValue(key string) (string, bool) {
	v, ok := d.metadata[key]
	return v, ok
}

// Diagnostics returns the descriptor's own diagnostics
func (d *TagHelperDescriptor) Diagnostics() diagnostics.List {
	return copyDiagnostics(d.diagnostics)
}

// GetAllDiagnostics aggregates the diagnostics of allowed child tags, bound
// attributes, rules (and their required attributes) and the descriptor itself
func (d *TagHelperDescriptor) GetAllDiagnostics() diagnostics.List {
	var all diagnostics.List
	for _, child := range d.allowedChildTags {
		all = append(all, child.diagnostics...)
	}
	for _, attr := range d.boundAttributes {
		all = append(all, attr.diagnostics...)
	}
	for _, rule := range d.tagMatchingRules {
		all = append(all, rule.GetAllDiagnostics()...)
	}
	return append(all, d.diagnostics...)
}

// HasErrors reports whether the descriptor or anything it contains carries an error.
// It is computed from the current contents on every call.
func (d *TagHelperDescriptor) HasErrors() bool {
	return d.GetAllDiagnostics().HasErrors()
}

// IsAttributeClassifier reports whether the tag helper only classifies attributes
func (d *TagHelperDescriptor) IsAttributeClassifier() bool {
	v, ok := d.metadata[ClassifyAttributesOnlyKey]
	return ok && v == "true"
}

// String returns "DisplayName (AssemblyName)"
func (d *TagHelperDescriptor) String() string {
	return fmt.Sprintf("%s (%s)", d.displayName, d.assemblyName)
}

// TagHelperDescriptorBuilder accumulates the parts of a TagHelperDescriptor
type TagHelperDescriptorBuilder struct {
	kind             string
	name             string
	assemblyName     string
	displayName      *string
	documentation    string
	tagOutputHint    string
	tagMatchingRules []*TagMatchingRuleDescriptorBuilder
	boundAttributes  []*BoundAttributeDescriptorBuilder
	allowedChildTags []*AllowedChildTagDescriptorBuilder
	metadata         map[string]string
	diagnostics      diagnostics.List
}

// NewTagHelperDescriptorBuilder creates a new TagHelperDescriptorBuilder
func NewTagHelperDescriptorBuilder(kind, typeName, assemblyName string) *TagHelperDescriptorBuilder {
	return &TagHelperDescriptorBuilder{
		kind:         kind,
		name:         typeName,
		assemblyName: assemblyName,
		metadata:     map[string]string{TypeNameKey: typeName},
	}
}

// CreateTagHelper creates a builder of the default kind
func CreateTagHelper(typeName, assemblyName string) *TagHelperDescriptorBuilder {
	return NewTagHelperDescriptorBuilder(DefaultKind, typeName, assemblyName)
}

// DisplayName overrides the default display name (the type name)
func (b *TagHelperDescriptorBuilder) DisplayName(displayName string) *TagHelperDescriptorBuilder {
	b.displayName = &displayName
	return b
}

// Documentation sets the tag helper documentation
func (b *TagHelperDescriptorBuilder) Documentation(documentation string) *TagHelperDescriptorBuilder {
	b.documentation = documentation
	return b
}

// TagOutputHint sets the element the tag helper is expected to render
func (b *TagHelperDescriptorBuilder) TagOutputHint(hint string) *TagHelperDescriptorBuilder {
	b.tagOutputHint = hint
	return b
}

// TagMatchingRule adds a rule configured by configure
func (b *TagHelperDescriptorBuilder) TagMatchingRule(configure func(*TagMatchingRuleDescriptorBuilder)) *TagHelperDescriptorBuilder {
	rule := NewTagMatchingRuleDescriptorBuilder()
	if configure != nil {
		configure(rule)
	}
	b.tagMatchingRules = append(b.tagMatchingRules, rule)
	return b
}

// BindAttribute adds a bound attribute configured by configure
func (b *TagHelperDescriptorBuilder) BindAttribute(configure func(*BoundAttributeDescriptorBuilder)) *TagHelperDescriptorBuilder {
	attr := NewBoundAttributeDescriptorBuilder(b.kind, b.name)
	if configure != nil {
		configure(attr)
	}
	b.boundAttributes = append(b.boundAttributes, attr)
	return b
}

// AllowChildTag adds an allowed child tag
func (b *TagHelperDescriptorBuilder) AllowChildTag(name string) *TagHelperDescriptorBuilder {
	return b.AllowedChildTag(func(child *AllowedChildTagDescriptorBuilder) {
		child.Name(name)
	})
}

// AllowedChildTag adds an allowed child tag configured by configure
func (b *TagHelperDescriptorBuilder) AllowedChildTag(configure func(*AllowedChildTagDescriptorBuilder)) *TagHelperDescriptorBuilder {
	child := NewAllowedChildTagDescriptorBuilder(b.name)
	if configure != nil {
		configure(child)
	}
	b.allowedChildTags = append(b.allowedChildTags, child)
	return b
}

// AddMetadata sets one metadata entry
func (b *TagHelperDescriptorBuilder) AddMetadata(key, value string) *TagHelperDescriptorBuilder {
	b.metadata[key] = value
	return b
}

// AddDiagnostic attaches an externally produced diagnostic
func (b *TagHelperDescriptorBuilder) AddDiagnostic(d diagnostics.Diagnostic) *TagHelperDescriptorBuilder {
	b.diagnostics = append(b.diagnostics, d)
	return b
}

// Build validates every part and returns an immutable descriptor. Structurally
// equal rules, bound attributes and allowed child tags are collapsed, keeping the first.
func (b *TagHelperDescriptorBuilder) Build() *TagHelperDescriptor {
	displayName := b.name
	if b.displayName != nil {
		displayName = *b.displayName
	}

	var rules []*TagMatchingRuleDescriptor
	for _, rule := range b.tagMatchingRules {
		rules = appendDistinct(rules, rule.Build(), DefaultComparer.TagMatchingRuleEqual)
	}

	var attrs []*BoundAttributeDescriptor
	for _, attr := range b.boundAttributes {
		attr.containingTagHelper = displayName
		attrs = appendDistinct(attrs, attr.Build(), DefaultComparer.BoundAttributeEqual)
	}

	var children []*AllowedChildTagDescriptor
	for _, child := range b.allowedChildTags {
		child.containingTagHelper = displayName
		children = appendDistinct(children, child.Build(), DefaultComparer.AllowedChildTagEqual)
	}

	return &TagHelperDescriptor{
		kind:             b.kind,
		name:             b.name,
		assemblyName:     b.assemblyName,
		displayName:      displayName,
		documentation:    b.documentation,
		tagOutputHint:    b.tagOutputHint,
		tagMatchingRules: rules,
		boundAttributes:  attrs,
		allowedChildTags: children,
		metadata:         copyMetadata(b.metadata),
		diagnostics:      copyDiagnostics(b.diagnostics),
	}
}
