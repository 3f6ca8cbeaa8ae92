package matching

import (
	"strings"

	"github.com/aspnet/Razor-sub002/packages/compiler/src/taghelpers"
)

// SatisfiesBoundAttributeName reports whether an observed attribute name binds to the
// attribute's property directly
func SatisfiesBoundAttributeName(attributeName string, attr *taghelpers.BoundAttributeDescriptor) bool {
	return attr.Name() != "" && strings.EqualFold(attributeName, attr.Name())
}

// SatisfiesBoundAttributeIndexer reports whether an observed attribute name binds to
// an entry of the attribute's dictionary property. The name must be longer than the
// indexer prefix.
func SatisfiesBoundAttributeIndexer(attributeName string, attr *taghelpers.BoundAttributeDescriptor) bool {
	prefix := attr.IndexerNamePrefix()
	if prefix == nil || attr.IndexerTypeName() == "" {
		return false
	}
	return hasLongerPrefixFold(attributeName, *prefix)
}

// CanSatisfyBoundAttribute reports whether an observed attribute name binds to attr
// either directly or through its indexer
func CanSatisfyBoundAttribute(attributeName string, attr *taghelpers.BoundAttributeDescriptor) bool {
	return SatisfiesBoundAttributeName(attributeName, attr) ||
		SatisfiesBoundAttributeIndexer(attributeName, attr)
}

// GetAttributeMatches returns the bound attributes of descriptors that an observed
// attribute name binds to, in descriptor then declaration order
func GetAttributeMatches(descriptors []*taghelpers.TagHelperDescriptor, attributeName string) []*taghelpers.BoundAttributeDescriptor {
	var matches []*taghelpers.BoundAttributeDescriptor
	for _, descriptor := range descriptors {
		for _, attr := range descriptor.BoundAttributes() {
			if CanSatisfyBoundAttribute(attributeName, attr) {
				matches = append(matches, attr)
			}
		}
	}
	return matches
}
