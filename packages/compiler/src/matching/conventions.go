// Package matching decides whether tag helper rules apply to an observed element.
//
// Everything here is a pure function of its inputs. Tag, parent and attribute names
// compare ignoring case; attribute values compare ordinally.
package matching

import (
	"strings"

	"github.com/aspnet/Razor-sub002/packages/compiler/src/core"
	"github.com/aspnet/Razor-sub002/packages/compiler/src/taghelpers"
)

// Attribute is one attribute observed on an element, with its raw value
type Attribute struct {
	Name  string
	Value string
}

// RuleMatches reports whether rule is satisfied by an element with the given tag
// name, attributes and parent tag name. An empty parentTagName means the element is
// at the document root.
func RuleMatches(rule *taghelpers.TagMatchingRuleDescriptor, tagName string, attributes []Attribute, parentTagName string) bool {
	return SatisfiesTagName(tagName, rule) &&
		SatisfiesParentTag(parentTagName, rule) &&
		SatisfiesAttributes(attributes, rule)
}

// SatisfiesTagName checks the rule's tag name against an unprefixed tag name
func SatisfiesTagName(tagName string, rule *taghelpers.TagMatchingRuleDescriptor) bool {
	if rule.IsCatchAll() {
		return true
	}
	return strings.EqualFold(rule.TagNameSpec().Literal(), tagName)
}

// SatisfiesParentTag checks the rule's parent constraint. A rule without a parent
// constraint accepts any parent, including none.
func SatisfiesParentTag(parentTagName string, rule *taghelpers.TagMatchingRuleDescriptor) bool {
	required := rule.ParentTag()
	if required == nil {
		return true
	}
	if parentTagName == "" {
		return false
	}
	return strings.EqualFold(*required, parentTagName)
}

// SatisfiesAttributes checks that every required attribute is met by at least one
// observed attribute. One observed attribute may satisfy several requirements.
func SatisfiesAttributes(attributes []Attribute, rule *taghelpers.TagMatchingRuleDescriptor) bool {
	for _, required := range rule.Attributes() {
		satisfied := false
		for _, attr := range attributes {
			if AttributeMatches(required, attr.Name, attr.Value) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

// AttributeMatches reports whether one observed attribute satisfies a required attribute
func AttributeMatches(required *taghelpers.RequiredAttributeDescriptor, attributeName, attributeValue string) bool {
	if !SatisfiesRequiredAttributeName(attributeName, required) {
		return false
	}
	return SatisfiesRequiredAttributeValue(attributeValue, required)
}

// SatisfiesRequiredAttributeName compares names. In prefix mode the observed name must
// have at least one character after the prefix.
func SatisfiesRequiredAttributeName(attributeName string, required *taghelpers.RequiredAttributeDescriptor) bool {
	switch required.NameComparison() {
	case taghelpers.NameComparisonPrefixMatch:
		return hasLongerPrefixFold(attributeName, required.Name())
	default:
		return strings.EqualFold(attributeName, required.Name())
	}
}

// SatisfiesRequiredAttributeValue compares values ordinally
func SatisfiesRequiredAttributeValue(attributeValue string, required *taghelpers.RequiredAttributeDescriptor) bool {
	switch required.ValueComparison() {
	case taghelpers.ValueComparisonPrefixMatch:
		return strings.HasPrefix(attributeValue, required.Value())
	case taghelpers.ValueComparisonSuffixMatch:
		return strings.HasSuffix(attributeValue, required.Value())
	case taghelpers.ValueComparisonFullMatch:
		return attributeValue == required.Value()
	default:
		return true
	}
}

// DescriptorMatches evaluates every rule of descriptor independently and returns the
// rules that match, in declaration order. The descriptor applies iff the result is
// non-empty.
func DescriptorMatches(descriptor *taghelpers.TagHelperDescriptor, tagName string, attributes []Attribute, parentTagName string) []*taghelpers.TagMatchingRuleDescriptor {
	var matched []*taghelpers.TagMatchingRuleDescriptor
	for _, rule := range descriptor.TagMatchingRules() {
		if RuleMatches(rule, tagName, attributes, parentTagName) {
			matched = append(matched, rule)
		}
	}
	return matched
}

// hasLongerPrefixFold reports whether s starts with prefix, ignoring case, and
// continues past it
func hasLongerPrefixFold(s, prefix string) bool {
	rest, ok := core.TrimPrefixFold(s, prefix)
	return ok && rest != ""
}
