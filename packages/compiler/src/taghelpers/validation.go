package taghelpers

import (
	"github.com/aspnet/Razor-sub002/packages/compiler/src/core"
	"github.com/aspnet/Razor-sub002/packages/compiler/src/diagnostics"
	"github.com/aspnet/Razor-sub002/packages/compiler/src/util"
)

// Validation never fails: every finding becomes a diagnostic on the built value.

func validateTagName(tagName TagNameSpec, span *util.ParseSourceSpan) diagnostics.List {
	if tagName.IsCatchAll() {
		return nil
	}
	name := tagName.Literal()
	if core.IsNullOrWhitespace(name) {
		return diagnostics.List{diagnostics.CreateInvalidTargetedTagNameNullOrWhitespace(span)}
	}
	var diags diagnostics.List
	for _, ch := range name {
		if core.IsInvalidNameCharacter(ch) {
			diags = append(diags, diagnostics.CreateInvalidTargetedTagName(span, name, ch))
		}
	}
	return diags
}

func validateParentTag(parentTag *string, span *util.ParseSourceSpan) diagnostics.List {
	if parentTag == nil {
		return nil
	}
	name := *parentTag
	if core.IsNullOrWhitespace(name) {
		return diagnostics.List{diagnostics.CreateInvalidTargetedParentTagNameNullOrWhitespace(span)}
	}
	var diags diagnostics.List
	for _, ch := range name {
		if core.IsInvalidNameCharacter(ch) {
			diags = append(diags, diagnostics.CreateInvalidTargetedParentTagName(span, name, ch))
		}
	}
	return diags
}

func validateRequiredAttributeName(name string, span *util.ParseSourceSpan) diagnostics.List {
	if core.IsNullOrWhitespace(name) {
		return diagnostics.List{diagnostics.CreateInvalidTargetedAttributeNameNullOrWhitespace(span)}
	}
	var diags diagnostics.List
	if hasDataDashPrefix(name) {
		diags = append(diags, diagnostics.CreateInvalidTargetedAttributeNameStartsWith(span, name, core.DataDashPrefix))
	}
	for _, ch := range name {
		if core.IsInvalidNameCharacter(ch) {
			diags = append(diags, diagnostics.CreateInvalidTargetedAttributeName(span, name, ch))
		}
	}
	return diags
}

func validateBoundAttribute(b *BoundAttributeDescriptorBuilder) diagnostics.List {
	var diags diagnostics.List
	property := b.propertyDisplayName()
	tagHelper := b.containingTagHelper

	if core.IsNullOrWhitespace(b.name) {
		// An indexer-only attribute binds by prefix and needs no name.
		if b.indexerNamePrefix == nil {
			diags = append(diags, diagnostics.CreateInvalidBoundAttributeNullOrWhitespace(b.span, property, tagHelper))
		}
	} else {
		if hasDataDashPrefix(b.name) {
			diags = append(diags, diagnostics.CreateInvalidBoundAttributeNameStartsWith(b.span, property, tagHelper, b.name, core.DataDashPrefix))
		}
		for _, ch := range b.name {
			if core.IsInvalidNameCharacter(ch) {
				diags = append(diags, diagnostics.CreateInvalidBoundAttributeName(b.span, property, tagHelper, b.name, ch))
			}
		}
	}

	if b.indexerNamePrefix != nil {
		prefix := *b.indexerNamePrefix
		if prefix != "" && core.IsNullOrWhitespace(prefix) {
			diags = append(diags, diagnostics.CreateInvalidBoundAttributePrefixNullOrWhitespace(b.span, property, tagHelper))
		} else {
			if hasDataDashPrefix(prefix) {
				diags = append(diags, diagnostics.CreateInvalidBoundAttributePrefixStartsWith(b.span, property, tagHelper, prefix, core.DataDashPrefix))
			}
			for _, ch := range prefix {
				if core.IsInvalidNameCharacter(ch) {
					diags = append(diags, diagnostics.CreateInvalidBoundAttributePrefix(b.span, property, tagHelper, prefix, ch))
				}
			}
		}
	}
	return diags
}

func validateAllowedChildTag(name, tagHelper string, span *util.ParseSourceSpan) diagnostics.List {
	if name == core.ElementCatchAllName {
		return nil
	}
	if core.IsNullOrWhitespace(name) {
		return diagnostics.List{diagnostics.CreateInvalidRestrictedChildNullOrWhitespace(span, tagHelper)}
	}
	var diags diagnostics.List
	for _, ch := range name {
		if core.IsInvalidNameCharacter(ch) {
			diags = append(diags, diagnostics.CreateInvalidRestrictedChild(span, name, tagHelper, ch))
		}
	}
	return diags
}

func hasDataDashPrefix(name string) bool {
	_, ok := core.TrimPrefixFold(name, core.DataDashPrefix)
	return ok
}
