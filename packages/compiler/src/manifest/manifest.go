// Package manifest decodes tag helper descriptor manifests.
//
// A manifest is a YAML (or JSON) document listing tag helpers and an optional tag
// name prefix. Decoding works on bytes; reading files is left to callers. Diagnostics
// of descriptors built from a parsed manifest carry the position of the offending
// name in the document.
//
//	tagHelperPrefix: "th:"
//	tagHelpers:
//	  - name: App.BoldTagHelper
//	    assemblyName: App
//	    tagMatchingRules:
//	      - tagName: strong
//	        parentTag: p
//	        attributes:
//	          - name: bold
//	            value: "true"
//	            valueComparison: fullMatch
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aspnet/Razor-sub002/packages/compiler/src/catalog"
	"github.com/aspnet/Razor-sub002/packages/compiler/src/config"
	"github.com/aspnet/Razor-sub002/packages/compiler/src/taghelpers"
	"github.com/aspnet/Razor-sub002/packages/compiler/src/util"
)

// Common manifest errors.
var (
	ErrEmptyManifest   = errors.New("manifest is empty")
	ErrInvalidManifest = errors.New("invalid manifest")
)

// Manifest is the decoded document
type Manifest struct {
	TagHelperPrefix string      `yaml:"tagHelperPrefix,omitempty" json:"tagHelperPrefix,omitempty"`
	TagHelpers      []TagHelper `yaml:"tagHelpers" json:"tagHelpers"`
}

// TagHelper describes one tag helper descriptor
type TagHelper struct {
	Kind             string            `yaml:"kind,omitempty" json:"kind,omitempty"`
	Name             string            `yaml:"name" json:"name"`
	AssemblyName     string            `yaml:"assemblyName" json:"assemblyName"`
	DisplayName      string            `yaml:"displayName,omitempty" json:"displayName,omitempty"`
	Documentation    string            `yaml:"documentation,omitempty" json:"documentation,omitempty"`
	TagOutputHint    string            `yaml:"tagOutputHint,omitempty" json:"tagOutputHint,omitempty"`
	TagMatchingRules []Rule            `yaml:"tagMatchingRules" json:"tagMatchingRules"`
	BoundAttributes  []BoundAttribute  `yaml:"boundAttributes,omitempty" json:"boundAttributes,omitempty"`
	AllowedChildTags []string          `yaml:"allowedChildTags,omitempty" json:"allowedChildTags,omitempty"`
	Metadata         map[string]string `yaml:"metadata,omitempty" json:"metadata,omitempty"`

	childSpans []*util.ParseSourceSpan
}

// Rule describes one tag matching rule
type Rule struct {
	TagName      string              `yaml:"tagName" json:"tagName"`
	ParentTag    *string             `yaml:"parentTag,omitempty" json:"parentTag,omitempty"`
	TagStructure string              `yaml:"tagStructure,omitempty" json:"tagStructure,omitempty"`
	Attributes   []RequiredAttribute `yaml:"attributes,omitempty" json:"attributes,omitempty"`

	span *util.ParseSourceSpan
}

// RequiredAttribute describes one required attribute of a rule
type RequiredAttribute struct {
	Name            string `yaml:"name" json:"name"`
	NameComparison  string `yaml:"nameComparison,omitempty" json:"nameComparison,omitempty"`
	Value           string `yaml:"value,omitempty" json:"value,omitempty"`
	ValueComparison string `yaml:"valueComparison,omitempty" json:"valueComparison,omitempty"`

	span *util.ParseSourceSpan
}

// BoundAttribute describes one attribute to property binding
type BoundAttribute struct {
	Name              string            `yaml:"name,omitempty" json:"name,omitempty"`
	PropertyName      string            `yaml:"propertyName,omitempty" json:"propertyName,omitempty"`
	TypeName          string            `yaml:"typeName" json:"typeName"`
	IsEnum            bool              `yaml:"isEnum,omitempty" json:"isEnum,omitempty"`
	IndexerNamePrefix *string           `yaml:"indexerNamePrefix,omitempty" json:"indexerNamePrefix,omitempty"`
	IndexerTypeName   string            `yaml:"indexerTypeName,omitempty" json:"indexerTypeName,omitempty"`
	Documentation     string            `yaml:"documentation,omitempty" json:"documentation,omitempty"`
	Metadata          map[string]string `yaml:"metadata,omitempty" json:"metadata,omitempty"`

	span *util.ParseSourceSpan
}

// Parse decodes a YAML or JSON manifest. Unknown fields are rejected.
func Parse(data []byte) (*Manifest, error) {
	return ParseSource("", data)
}

// ParseSource decodes a manifest read from url. The url names the file in the
// source spans of descriptor diagnostics.
func ParseSource(url string, data []byte) (*Manifest, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyManifest
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var m Manifest
	if err := decoder.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyManifest
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}

	// The strict decode succeeded, so the node tree has the same shape.
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	m.locate(newLocator(url, data), &doc)
	return &m, nil
}

// Options returns the engine options the manifest implies
func (m *Manifest) Options() []config.Option {
	if m.TagHelperPrefix == "" {
		return nil
	}
	return []config.Option{config.WithTagHelperPrefix(m.TagHelperPrefix)}
}

// Descriptors builds every tag helper in document order. Descriptor validation
// problems become diagnostics on the descriptors; only structural manifest problems
// (missing names, unknown enum spellings) are returned as errors.
func (m *Manifest) Descriptors() ([]*taghelpers.TagHelperDescriptor, error) {
	descriptors := make([]*taghelpers.TagHelperDescriptor, 0, len(m.TagHelpers))
	for i, th := range m.TagHelpers {
		descriptor, err := th.build()
		if err != nil {
			return nil, fmt.Errorf("%w: tagHelpers[%d]: %w", ErrInvalidManifest, i, err)
		}
		descriptors = append(descriptors, descriptor)
	}
	return descriptors, nil
}

// NewCatalog builds the descriptors and registers them in a new catalog. The
// manifest prefix is applied before opts, so opts may override it.
func (m *Manifest) NewCatalog(opts ...config.Option) (*catalog.Catalog, error) {
	descriptors, err := m.Descriptors()
	if err != nil {
		return nil, err
	}
	c := catalog.New(append(m.Options(), opts...)...)
	if err := c.RegisterAll(descriptors...); err != nil {
		return nil, err
	}
	return c, nil
}

func (th TagHelper) build() (*taghelpers.TagHelperDescriptor, error) {
	if th.Name == "" {
		return nil, errors.New("name is required")
	}
	kind := th.Kind
	if kind == "" {
		kind = taghelpers.DefaultKind
	}

	builder := taghelpers.NewTagHelperDescriptorBuilder(kind, th.Name, th.AssemblyName).
		Documentation(th.Documentation).
		TagOutputHint(th.TagOutputHint)
	if th.DisplayName != "" {
		builder.DisplayName(th.DisplayName)
	}

	for i, rule := range th.TagMatchingRules {
		if err := addRule(builder, rule); err != nil {
			return nil, fmt.Errorf("tagMatchingRules[%d]: %w", i, err)
		}
	}

	for _, attr := range th.BoundAttributes {
		builder.BindAttribute(func(b *taghelpers.BoundAttributeDescriptorBuilder) {
			b.Name(attr.Name).
				TypeName(attr.TypeName).
				IsEnum(attr.IsEnum).
				Documentation(attr.Documentation).
				Span(attr.span)
			if attr.PropertyName != "" {
				b.PropertyName(attr.PropertyName)
			}
			if attr.IndexerNamePrefix != nil {
				b.AsDictionary(*attr.IndexerNamePrefix, attr.IndexerTypeName)
			}
			for k, v := range attr.Metadata {
				b.AddMetadata(k, v)
			}
		})
	}

	for i, child := range th.AllowedChildTags {
		span := th.childSpan(i)
		builder.AllowedChildTag(func(b *taghelpers.AllowedChildTagDescriptorBuilder) {
			b.Name(child).Span(span)
		})
	}
	for k, v := range th.Metadata {
		builder.AddMetadata(k, v)
	}
	return builder.Build(), nil
}

func (th TagHelper) childSpan(i int) *util.ParseSourceSpan {
	if i < len(th.childSpans) {
		return th.childSpans[i]
	}
	return nil
}

func addRule(builder *taghelpers.TagHelperDescriptorBuilder, rule Rule) error {
	structure, err := taghelpers.ParseTagStructure(rule.TagStructure)
	if err != nil {
		return err
	}

	type requirement struct {
		attr            RequiredAttribute
		nameComparison  taghelpers.NameComparisonMode
		valueComparison taghelpers.ValueComparisonMode
	}
	requirements := make([]requirement, 0, len(rule.Attributes))
	for i, attr := range rule.Attributes {
		nameComparison, err := taghelpers.ParseNameComparisonMode(attr.NameComparison)
		if err != nil {
			return fmt.Errorf("attributes[%d]: %w", i, err)
		}
		valueComparison, err := taghelpers.ParseValueComparisonMode(attr.ValueComparison)
		if err != nil {
			return fmt.Errorf("attributes[%d]: %w", i, err)
		}
		requirements = append(requirements, requirement{attr, nameComparison, valueComparison})
	}

	builder.TagMatchingRule(func(r *taghelpers.TagMatchingRuleDescriptorBuilder) {
		r.RequireTagName(rule.TagName).RequireTagStructure(structure).Span(rule.span)
		if rule.ParentTag != nil {
			r.RequireParentTag(*rule.ParentTag)
		}
		for _, req := range requirements {
			r.RequireAttribute(func(a *taghelpers.RequiredAttributeDescriptorBuilder) {
				a.Name(req.attr.Name).
					NameComparison(req.nameComparison).
					Value(req.attr.Value).
					ValueComparison(req.valueComparison).
					Span(req.attr.span)
			})
		}
	})
	return nil
}
