package binder

import (
	"github.com/aspnet/Razor-sub002/packages/compiler/src/matching"
	"github.com/aspnet/Razor-sub002/packages/compiler/src/taghelpers"
)

// Binding pairs the descriptors that apply to one element with the rules of each
// descriptor that matched. A query with no match yields a nil *Binding, never an
// empty one.
type Binding struct {
	tagName       string
	parentTagName string
	attributes    []matching.Attribute
	prefix        string
	comparer      taghelpers.Comparer
	descriptors   []*taghelpers.TagHelperDescriptor
	mappings      map[*taghelpers.TagHelperDescriptor][]*taghelpers.TagMatchingRuleDescriptor
}

// TagName returns the queried tag name, prefix included
func (b *Binding) TagName() string {
	return b.tagName
}

// ParentTagName returns the queried parent tag name, empty at the document root
func (b *Binding) ParentTagName() string {
	return b.parentTagName
}

// Attributes returns the queried attributes
func (b *Binding) Attributes() []matching.Attribute {
	attrs := make([]matching.Attribute, len(b.attributes))
	copy(attrs, b.attributes)
	return attrs
}

// TagHelperPrefix returns the prefix in effect when the binding was made
func (b *Binding) TagHelperPrefix() string {
	return b.prefix
}

// Descriptors returns the bound descriptors in registration order
func (b *Binding) Descriptors() []*taghelpers.TagHelperDescriptor {
	descriptors := make([]*taghelpers.TagHelperDescriptor, len(b.descriptors))
	copy(descriptors, b.descriptors)
	return descriptors
}

// GetBoundRules returns the rules of descriptor that matched the element. The
// descriptor is looked up by identity first, then by structural equality. The
// result is nil when descriptor is not part of the binding.
func (b *Binding) GetBoundRules(descriptor *taghelpers.TagHelperDescriptor) []*taghelpers.TagMatchingRuleDescriptor {
	rules, ok := b.mappings[descriptor]
	if !ok {
		for _, bound := range b.descriptors {
			if b.comparer.TagHelperDescriptorEqual(bound, descriptor) {
				rules = b.mappings[bound]
				ok = true
				break
			}
		}
	}
	if !ok {
		return nil
	}
	copied := make([]*taghelpers.TagMatchingRuleDescriptor, len(rules))
	copy(copied, rules)
	return copied
}

// Mappings returns a copy of the descriptor to matched rules lookup
func (b *Binding) Mappings() map[*taghelpers.TagHelperDescriptor][]*taghelpers.TagMatchingRuleDescriptor {
	mappings := make(map[*taghelpers.TagHelperDescriptor][]*taghelpers.TagMatchingRuleDescriptor, len(b.mappings))
	for descriptor, rules := range b.mappings {
		copied := make([]*taghelpers.TagMatchingRuleDescriptor, len(rules))
		copy(copied, rules)
		mappings[descriptor] = copied
	}
	return mappings
}

// IsAttributeMatch reports whether every bound descriptor only classifies attributes,
// so the element itself is not owned by a tag helper
func (b *Binding) IsAttributeMatch() bool {
	for _, descriptor := range b.descriptors {
		if !descriptor.IsAttributeClassifier() {
			return false
		}
	}
	return len(b.descriptors) > 0
}

// GetBoundAttributes returns the bound attributes across the binding's descriptors
// that an observed attribute name writes to
func (b *Binding) GetBoundAttributes(attributeName string) []*taghelpers.BoundAttributeDescriptor {
	return matching.GetAttributeMatches(b.descriptors, attributeName)
}
