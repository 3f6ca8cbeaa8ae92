package diagnostics

import "github.com/aspnet/Razor-sub002/packages/compiler/src/util"

// Diagnostic kinds produced by tag helper descriptor validation.
const (
	KindInvalidTagName                          Kind = "invalid-tag-name"
	KindInvalidParentTagName                    Kind = "invalid-parent-tag-name"
	KindInvalidRequiredAttributeName            Kind = "invalid-required-attribute-name"
	KindInvalidBoundAttributeName               Kind = "invalid-bound-attribute-name"
	KindInvalidBoundAttributeNameStartsWithData Kind = "invalid-bound-attribute-name-starts-with-data-dash"
	KindInvalidBoundAttributePrefix             Kind = "invalid-bound-attribute-prefix"
	KindInvalidRestrictedChild                  Kind = "invalid-restricted-child"
)

var (
	// InvalidTargetedTagNameNullOrWhitespace is reported for an empty rule tag name.
	InvalidTargetedTagNameNullOrWhitespace = Descriptor{
		ID:       "RZ3400",
		Kind:     KindInvalidTagName,
		Severity: SeverityError,
		Format:   "Tag name cannot be null or whitespace.",
	}
	// InvalidTargetedTagName is reported once per disallowed character in a rule tag name.
	InvalidTargetedTagName = Descriptor{
		ID:       "RZ3401",
		Kind:     KindInvalidTagName,
		Severity: SeverityError,
		Format:   "Invalid tag helper targeted tag name '%s'. Tag helpers cannot target tag name '%s' because it contains a '%s' character.",
	}
	InvalidTargetedParentTagNameNullOrWhitespace = Descriptor{
		ID:       "RZ3402",
		Kind:     KindInvalidParentTagName,
		Severity: SeverityError,
		Format:   "Parent tag name cannot be null or whitespace.",
	}
	InvalidTargetedParentTagName = Descriptor{
		ID:       "RZ3403",
		Kind:     KindInvalidParentTagName,
		Severity: SeverityError,
		Format:   "Invalid tag helper targeted parent tag name '%s'. Tag helpers cannot target parent tag name '%s' because it contains a '%s' character.",
	}
	InvalidTargetedAttributeNameNullOrWhitespace = Descriptor{
		ID:       "RZ3404",
		Kind:     KindInvalidRequiredAttributeName,
		Severity: SeverityError,
		Format:   "Targeted attribute name cannot be null or whitespace.",
	}
	InvalidTargetedAttributeName = Descriptor{
		ID:       "RZ3405",
		Kind:     KindInvalidRequiredAttributeName,
		Severity: SeverityError,
		Format:   "Invalid tag helper targeted attribute name '%s'. Tag helpers cannot target attribute name '%s' because it contains a '%s' character.",
	}
	InvalidTargetedAttributeNameStartsWith = Descriptor{
		ID:       "RZ3406",
		Kind:     KindInvalidRequiredAttributeName,
		Severity: SeverityError,
		Format:   "Invalid tag helper targeted attribute name '%s'. Tag helpers cannot target attribute name '%s' because it starts with '%s'.",
	}
	InvalidBoundAttributeNullOrWhitespace = Descriptor{
		ID:       "RZ3407",
		Kind:     KindInvalidBoundAttributeName,
		Severity: SeverityError,
		Format:   "Invalid tag helper bound property '%s' on tag helper '%s'. Tag helpers cannot bind to HTML attributes with a null or empty name.",
	}
	InvalidBoundAttributeName = Descriptor{
		ID:       "RZ3408",
		Kind:     KindInvalidBoundAttributeName,
		Severity: SeverityError,
		Format:   "Invalid tag helper bound property '%s' on tag helper '%s'. Tag helpers cannot bind to HTML attributes with name '%s' because the name contains a '%s' character.",
	}
	InvalidBoundAttributeNameStartsWith = Descriptor{
		ID:       "RZ3409",
		Kind:     KindInvalidBoundAttributeNameStartsWithData,
		Severity: SeverityError,
		Format:   "Invalid tag helper bound property '%s' on tag helper '%s'. Tag helpers cannot bind to HTML attributes with name '%s' because the name starts with '%s'.",
	}
	InvalidBoundAttributePrefix = Descriptor{
		ID:       "RZ3410",
		Kind:     KindInvalidBoundAttributePrefix,
		Severity: SeverityError,
		Format:   "Invalid tag helper bound property '%s' on tag helper '%s'. Tag helpers cannot bind to HTML attributes with prefix '%s' because the prefix contains a '%s' character.",
	}
	InvalidBoundAttributePrefixNullOrWhitespace = Descriptor{
		ID:       "RZ3411",
		Kind:     KindInvalidBoundAttributePrefix,
		Severity: SeverityError,
		Format:   "Invalid tag helper bound property '%s' on tag helper '%s'. Tag helpers cannot bind to HTML attributes with a whitespace prefix.",
	}
	InvalidBoundAttributePrefixStartsWith = Descriptor{
		ID:       "RZ3412",
		Kind:     KindInvalidBoundAttributeNameStartsWithData,
		Severity: SeverityError,
		Format:   "Invalid tag helper bound property '%s' on tag helper '%s'. Tag helpers cannot bind to HTML attributes with prefix '%s' because the prefix starts with '%s'.",
	}
	InvalidRestrictedChildNullOrWhitespace = Descriptor{
		ID:       "RZ3413",
		Kind:     KindInvalidRestrictedChild,
		Severity: SeverityError,
		Format:   "Invalid restricted child on tag helper '%s'. Name cannot be null or whitespace.",
	}
	InvalidRestrictedChild = Descriptor{
		ID:       "RZ3414",
		Kind:     KindInvalidRestrictedChild,
		Severity: SeverityError,
		Format:   "Invalid restricted child '%s' on tag helper '%s'. Tag helpers cannot restrict child elements that contain a '%s' character.",
	}
)

// CreateInvalidTargetedTagNameNullOrWhitespace reports an empty rule tag name
func CreateInvalidTargetedTagNameNullOrWhitespace(span *util.ParseSourceSpan) Diagnostic {
	return New(InvalidTargetedTagNameNullOrWhitespace, span)
}

// CreateInvalidTargetedTagName reports a disallowed character in a rule tag name
func CreateInvalidTargetedTagName(span *util.ParseSourceSpan, tagName string, invalid rune) Diagnostic {
	return New(InvalidTargetedTagName, span, tagName, tagName, string(invalid))
}

// CreateInvalidTargetedParentTagNameNullOrWhitespace reports an empty parent tag constraint
func CreateInvalidTargetedParentTagNameNullOrWhitespace(span *util.ParseSourceSpan) Diagnostic {
	return New(InvalidTargetedParentTagNameNullOrWhitespace, span)
}

// CreateInvalidTargetedParentTagName reports a disallowed character in a parent tag constraint
func CreateInvalidTargetedParentTagName(span *util.ParseSourceSpan, parentTagName string, invalid rune) Diagnostic {
	return New(InvalidTargetedParentTagName, span, parentTagName, parentTagName, string(invalid))
}

// CreateInvalidTargetedAttributeNameNullOrWhitespace reports an empty required attribute name
func CreateInvalidTargetedAttributeNameNullOrWhitespace(span *util.ParseSourceSpan) Diagnostic {
	return New(InvalidTargetedAttributeNameNullOrWhitespace, span)
}

// CreateInvalidTargetedAttributeName reports a disallowed character in a required attribute name
func CreateInvalidTargetedAttributeName(span *util.ParseSourceSpan, attributeName string, invalid rune) Diagnostic {
	return New(InvalidTargetedAttributeName, span, attributeName, attributeName, string(invalid))
}

// CreateInvalidTargetedAttributeNameStartsWith reports a required attribute name with a reserved prefix
func CreateInvalidTargetedAttributeNameStartsWith(span *util.ParseSourceSpan, attributeName, prefix string) Diagnostic {
	return New(InvalidTargetedAttributeNameStartsWith, span, attributeName, attributeName, prefix)
}

// CreateInvalidBoundAttributeNullOrWhitespace reports a bound attribute without a name
func CreateInvalidBoundAttributeNullOrWhitespace(span *util.ParseSourceSpan, propertyName, tagHelper string) Diagnostic {
	return New(InvalidBoundAttributeNullOrWhitespace, span, propertyName, tagHelper)
}

// CreateInvalidBoundAttributeName reports a disallowed character in a bound attribute name
func CreateInvalidBoundAttributeName(span *util.ParseSourceSpan, propertyName, tagHelper, attributeName string, invalid rune) Diagnostic {
	return New(InvalidBoundAttributeName, span, propertyName, tagHelper, attributeName, string(invalid))
}

// CreateInvalidBoundAttributeNameStartsWith reports a bound attribute name with a reserved prefix
func CreateInvalidBoundAttributeNameStartsWith(span *util.ParseSourceSpan, propertyName, tagHelper, attributeName, prefix string) Diagnostic {
	return New(InvalidBoundAttributeNameStartsWith, span, propertyName, tagHelper, attributeName, prefix)
}

// CreateInvalidBoundAttributePrefix reports a disallowed character in an indexer prefix
func CreateInvalidBoundAttributePrefix(span *util.ParseSourceSpan, propertyName, tagHelper, prefix string, invalid rune) Diagnostic {
	return New(InvalidBoundAttributePrefix, span, propertyName, tagHelper, prefix, string(invalid))
}

// CreateInvalidBoundAttributePrefixNullOrWhitespace reports an indexer prefix made only of whitespace
func CreateInvalidBoundAttributePrefixNullOrWhitespace(span *util.ParseSourceSpan, propertyName, tagHelper string) Diagnostic {
	return New(InvalidBoundAttributePrefixNullOrWhitespace, span, propertyName, tagHelper)
}

// CreateInvalidBoundAttributePrefixStartsWith reports an indexer prefix with a reserved prefix
func CreateInvalidBoundAttributePrefixStartsWith(span *util.ParseSourceSpan, propertyName, tagHelper, prefix, reserved string) Diagnostic {
	return New(InvalidBoundAttributePrefixStartsWith, span, propertyName, tagHelper, prefix, reserved)
}

// CreateInvalidRestrictedChildNullOrWhitespace reports an empty allowed child tag
func CreateInvalidRestrictedChildNullOrWhitespace(span *util.ParseSourceSpan, tagHelper string) Diagnostic {
	return New(InvalidRestrictedChildNullOrWhitespace, span, tagHelper)
}

// CreateInvalidRestrictedChild reports a disallowed character in an allowed child tag
func CreateInvalidRestrictedChild(span *util.ParseSourceSpan, childName, tagHelper string, invalid rune) Diagnostic {
	return New(InvalidRestrictedChild, span, childName, tagHelper, string(invalid))
}
