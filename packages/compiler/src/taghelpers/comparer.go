package taghelpers

// Comparer is a structural equality and hash policy for descriptors. Equal values
// always hash equal under the same Comparer.
//
// Names (tag, parent, attribute names and indexer prefixes) compare ignoring case
// unless CaseSensitiveNames is set. Type names, display names, documentation,
// values and metadata always compare ordinally. Nested collections compare as
// multisets, so insertion order never matters.
type Comparer struct {
	// CaseSensitiveNames compares names ordinally. Useful in tests that must tell
	// "DIV" and "div" apart.
	CaseSensitiveNames bool
}

var (
	// DefaultComparer is used for catalog deduplication and builder sets
	DefaultComparer = Comparer{}
	// StrictComparer additionally distinguishes names by case
	StrictComparer = Comparer{CaseSensitiveNames: true}
)

func (c Comparer) nameKey(name string) string {
	if c.CaseSensitiveNames {
		return name
	}
	return FoldName(name)
}

func (c Comparer) namesEqual(a, b string) bool {
	if a == b {
		return true
	}
	return c.nameKey(a) == c.nameKey(b)
}

func (c Comparer) optionalNamesEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return c.namesEqual(*a, *b)
}

// RequiredAttributeEqual compares two required attributes
func (c Comparer) RequiredAttributeEqual(a, b *RequiredAttributeDescriptor) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.nameComparison == b.nameComparison &&
		a.valueComparison == b.valueComparison &&
		c.namesEqual(a.name, b.name) &&
		a.value == b.value &&
		a.displayName == b.displayName &&
		diagnosticsEqual(a.diagnostics, b.diagnostics)
}

// RequiredAttributeHash hashes a required attribute
func (c Comparer) RequiredAttributeHash(a *RequiredAttributeDescriptor) uint64 {
	if a == nil {
		return 0
	}
	h := newHasher()
	h.addString(c.nameKey(a.name))
	h.addInt(int(a.nameComparison))
	h.addString(a.value)
	h.addInt(int(a.valueComparison))
	return h.sum()
}

// TagMatchingRuleEqual compares two rules
func (c Comparer) TagMatchingRuleEqual(a, b *TagMatchingRuleDescriptor) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.tagName.IsCatchAll() == b.tagName.IsCatchAll() &&
		c.namesEqual(a.tagName.Literal(), b.tagName.Literal()) &&
		c.optionalNamesEqual(a.parentTag, b.parentTag) &&
		a.tagStructure == b.tagStructure &&
		multisetEqual(a.attributes, b.attributes, c.RequiredAttributeEqual) &&
		diagnosticsEqual(a.diagnostics, b.diagnostics)
}

// TagMatchingRuleHash hashes a rule
func (c Comparer) TagMatchingRuleHash(a *TagMatchingRuleDescriptor) uint64 {
	if a == nil {
		return 0
	}
	h := newHasher()
	h.addBool(a.tagName.IsCatchAll())
	h.addString(c.nameKey(a.tagName.Literal()))
	h.addBool(a.parentTag != nil)
	if a.parentTag != nil {
		h.addString(c.nameKey(*a.parentTag))
	}
	h.addInt(int(a.tagStructure))
	h.addUint64(unorderedHash(a.attributes, c.RequiredAttributeHash))
	return h.sum()
}

// BoundAttributeEqual compares two bound attributes
func (c Comparer) BoundAttributeEqual(a, b *BoundAttributeDescriptor) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.kind == b.kind &&
		a.isEnum == b.isEnum &&
		a.HasIndexer() == b.HasIndexer() &&
		a.IsIndexerStringProperty() == b.IsIndexerStringProperty() &&
		c.namesEqual(a.name, b.name) &&
		c.optionalNamesEqual(a.indexerNamePrefix, b.indexerNamePrefix) &&
		a.typeName == b.typeName &&
		a.indexerTypeName == b.indexerTypeName &&
		a.documentation == b.documentation &&
		a.displayName == b.displayName &&
		metadataEqual(a.metadata, b.metadata) &&
		diagnosticsEqual(a.diagnostics, b.diagnostics)
}

// BoundAttributeHash hashes a bound attribute
func (c Comparer) BoundAttributeHash(a *BoundAttributeDescriptor) uint64 {
	if a == nil {
		return 0
	}
	h := newHasher()
	h.addString(a.kind)
	h.addString(c.nameKey(a.name))
	h.addBool(a.indexerNamePrefix != nil)
	if a.indexerNamePrefix != nil {
		h.addString(c.nameKey(*a.indexerNamePrefix))
	}
	h.addString(a.typeName)
	h.addString(a.indexerTypeName)
	h.addBool(a.isEnum)
	h.addUint64(metadataHash(a.metadata))
	return h.sum()
}

// AllowedChildTagEqual compares two allowed child tags
func (c Comparer) AllowedChildTagEqual(a, b *AllowedChildTagDescriptor) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return c.namesEqual(a.name, b.name) &&
		a.displayName == b.displayName &&
		diagnosticsEqual(a.diagnostics, b.diagnostics)
}

// AllowedChildTagHash hashes an allowed child tag
func (c Comparer) AllowedChildTagHash(a *AllowedChildTagDescriptor) uint64 {
	if a == nil {
		return 0
	}
	h := newHasher()
	h.addString(c.nameKey(a.name))
	h.addString(a.displayName)
	return h.sum()
}

// TagHelperDescriptorEqual compares two tag helper descriptors field by field
func (c Comparer) TagHelperDescriptorEqual(a, b *TagHelperDescriptor) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if (a.allowedChildTags == nil) != (b.allowedChildTags == nil) {
		return false
	}
	return a.kind == b.kind &&
		a.assemblyName == b.assemblyName &&
		a.name == b.name &&
		a.displayName == b.displayName &&
		a.documentation == b.documentation &&
		a.tagOutputHint == b.tagOutputHint &&
		multisetEqual(a.tagMatchingRules, b.tagMatchingRules, c.TagMatchingRuleEqual) &&
		multisetEqual(a.boundAttributes, b.boundAttributes, c.BoundAttributeEqual) &&
		multisetEqual(a.allowedChildTags, b.allowedChildTags, c.AllowedChildTagEqual) &&
		metadataEqual(a.metadata, b.metadata) &&
		diagnosticsEqual(a.diagnostics, b.diagnostics)
}

// TagHelperDescriptorHash hashes a tag helper descriptor
func (c Comparer) TagHelperDescriptorHash(a *TagHelperDescriptor) uint64 {
	if a == nil {
		return 0
	}
	h := newHasher()
	h.addString(a.kind)
	h.addString(a.assemblyName)
	h.addString(a.name)
	h.addString(a.displayName)
	h.addString(a.tagOutputHint)
	h.addUint64(unorderedHash(a.tagMatchingRules, c.TagMatchingRuleHash))
	h.addUint64(unorderedHash(a.boundAttributes, c.BoundAttributeHash))
	h.addUint64(unorderedHash(a.allowedChildTags, c.AllowedChildTagHash))
	h.addUint64(metadataHash(a.metadata))
	h.addUint64(diagnosticsHash(a.diagnostics))
	return h.sum()
}
