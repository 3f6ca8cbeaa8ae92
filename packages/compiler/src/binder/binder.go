// Package binder resolves which tag helpers apply to an observed element.
//
// Resolution strips the catalog's tag name prefix, asks the catalog for candidate
// descriptors and evaluates every rule of every candidate. It never mutates shared
// state, so one Binder may serve many goroutines once its catalog is frozen.
package binder

import (
	"log/slog"

	"github.com/aspnet/Razor-sub002/packages/compiler/src/catalog"
	"github.com/aspnet/Razor-sub002/packages/compiler/src/config"
	"github.com/aspnet/Razor-sub002/packages/compiler/src/core"
	"github.com/aspnet/Razor-sub002/packages/compiler/src/matching"
	"github.com/aspnet/Razor-sub002/packages/compiler/src/taghelpers"
)

// Attribute is one attribute observed on an element
type Attribute = matching.Attribute

// Element is one element produced by the parser
type Element struct {
	TagName    string
	Attributes []Attribute
	// ParentTagName is the nearest enclosing element's tag name, empty at the document root
	ParentTagName string
	// ParentIsTagHelper tells the binder the parent carries the tag helper prefix,
	// which is removed before parent constraints are checked
	ParentIsTagHelper bool
}

// Binder resolves bindings against one catalog
type Binder struct {
	catalog        *catalog.Catalog
	logger         *slog.Logger
	maxConcurrency int
}

// New creates a Binder over c. Without a WithLogger option it logs to the catalog's logger.
func New(c *catalog.Catalog, opts ...config.Option) *Binder {
	cfg := config.NewEngineConfig(append([]config.Option{config.WithLogger(c.Logger())}, opts...)...)
	return &Binder{
		catalog:        c,
		logger:         cfg.Logger,
		maxConcurrency: cfg.MaxConcurrency,
	}
}

// Catalog returns the catalog the binder reads from
func (b *Binder) Catalog() *catalog.Catalog {
	return b.catalog
}

// GetBinding returns the binding for an element, or nil when no tag helper applies.
// parentTagName is empty at the document root.
func (b *Binder) GetBinding(tagName string, attributes []Attribute, parentTagName string) *Binding {
	return b.Bind(Element{
		TagName:       tagName,
		Attributes:    attributes,
		ParentTagName: parentTagName,
	})
}

// Bind returns the binding for el, or nil when no tag helper applies
func (b *Binder) Bind(el Element) *Binding {
	prefix := b.catalog.TagHelperPrefix()

	tagName, ok := stripPrefix(el.TagName, prefix)
	if !ok {
		return nil
	}

	parentTagName := el.ParentTagName
	if el.ParentIsTagHelper {
		if stripped, ok := stripPrefix(parentTagName, prefix); ok {
			parentTagName = stripped
		}
	}

	candidates := b.catalog.Candidates(tagName)

	var descriptors []*taghelpers.TagHelperDescriptor
	var mappings map[*taghelpers.TagHelperDescriptor][]*taghelpers.TagMatchingRuleDescriptor
	for _, descriptor := range candidates {
		matched := matching.DescriptorMatches(descriptor, tagName, el.Attributes, parentTagName)
		if len(matched) == 0 {
			continue
		}
		if mappings == nil {
			mappings = make(map[*taghelpers.TagHelperDescriptor][]*taghelpers.TagMatchingRuleDescriptor)
		}
		if _, seen := mappings[descriptor]; !seen {
			descriptors = append(descriptors, descriptor)
		}
		mappings[descriptor] = matched
	}

	if len(descriptors) == 0 {
		b.logger.Debug("no tag helper binding",
			"tagName", el.TagName,
			"candidates", len(candidates))
		return nil
	}

	attrs := make([]Attribute, len(el.Attributes))
	copy(attrs, el.Attributes)

	b.logger.Debug("tag helper binding resolved",
		"tagName", el.TagName,
		"candidates", len(candidates),
		"matched", len(descriptors))

	return &Binding{
		tagName:       el.TagName,
		parentTagName: el.ParentTagName,
		attributes:    attrs,
		prefix:        prefix,
		comparer:      b.catalog.Comparer(),
		descriptors:   descriptors,
		mappings:      mappings,
	}
}

// GetBinding resolves one element against c without keeping a Binder around
func GetBinding(c *catalog.Catalog, tagName string, attributes []Attribute, parentTagName string) *Binding {
	return New(c).GetBinding(tagName, attributes, parentTagName)
}

// stripPrefix removes prefix from tagName, ignoring case. It fails when a prefix is
// configured and tagName lacks it, or when nothing remains after removing it.
func stripPrefix(tagName, prefix string) (string, bool) {
	if prefix == "" {
		return tagName, true
	}
	rest, ok := core.TrimPrefixFold(tagName, prefix)
	if !ok || rest == "" {
		return "", false
	}
	return rest, true
}
