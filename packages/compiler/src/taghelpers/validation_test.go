package taghelpers_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aspnet/Razor-sub002/packages/compiler/src/diagnostics"
	"github.com/aspnet/Razor-sub002/packages/compiler/src/taghelpers"
)

// diagnosticIDs flattens a list into its ids with their arguments for comparison
func diagnosticIDs(list diagnostics.List) [][]string {
	if len(list) == 0 {
		return nil
	}
	ids := make([][]string, len(list))
	for i, d := range list {
		ids[i] = append([]string{d.ID()}, d.Args()...)
	}
	return ids
}

func buildRule(configure func(*taghelpers.TagMatchingRuleDescriptorBuilder)) *taghelpers.TagMatchingRuleDescriptor {
	b := taghelpers.NewTagMatchingRuleDescriptorBuilder()
	configure(b)
	return b.Build()
}

func TestTagNameValidation(t *testing.T) {
	tests := []struct {
		name    string
		tagName string
		want    [][]string
	}{
		{name: "valid", tagName: "my-tag"},
		{name: "catch-all", tagName: "*"},
		{name: "empty", tagName: "", want: [][]string{{"RZ3400"}}},
		{name: "whitespace", tagName: " \t", want: [][]string{{"RZ3400"}}},
		{
			name:    "one entry per invalid character",
			tagName: "d!v>",
			want:    [][]string{{"RZ3401", "d!v>", "d!v>", "!"}, {"RZ3401", "d!v>", "d!v>", ">"}},
		},
		{
			name:    "embedded whitespace",
			tagName: "my tag",
			want:    [][]string{{"RZ3401", "my tag", "my tag", " "}},
		},
		{
			name:    "star inside a literal",
			tagName: "a*",
			want:    [][]string{{"RZ3401", "a*", "a*", "*"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := buildRule(func(b *taghelpers.TagMatchingRuleDescriptorBuilder) {
				b.RequireTagName(tt.tagName)
			})
			if diff := cmp.Diff(tt.want, diagnosticIDs(rule.Diagnostics())); diff != "" {
				t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
			}
			if rule.HasErrors() != (tt.want != nil) {
				t.Errorf("HasErrors() = %v", rule.HasErrors())
			}
		})
	}

	t.Run("should flag a star literal built without the catch-all", func(t *testing.T) {
		rule := buildRule(func(b *taghelpers.TagMatchingRuleDescriptorBuilder) {
			b.RequireTagNameSpec(taghelpers.LiteralTagName("*"))
		})
		if !rule.HasErrors() || rule.IsCatchAll() {
			t.Errorf("expected a literal \"*\" to be invalid and not a catch-all")
		}
	})
}

func TestParentTagValidation(t *testing.T) {
	tests := []struct {
		name   string
		parent string
		want   [][]string
	}{
		{name: "valid", parent: "ul"},
		{name: "empty", parent: "", want: [][]string{{"RZ3402"}}},
		{name: "whitespace", parent: "  ", want: [][]string{{"RZ3402"}}},
		{name: "invalid character", parent: "p/", want: [][]string{{"RZ3403", "p/", "p/", "/"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := buildRule(func(b *taghelpers.TagMatchingRuleDescriptorBuilder) {
				b.RequireTagName("li").RequireParentTag(tt.parent)
			})
			if diff := cmp.Diff(tt.want, diagnosticIDs(rule.Diagnostics())); diff != "" {
				t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRequiredAttributeValidation(t *testing.T) {
	tests := []struct {
		name     string
		attrName string
		want     [][]string
	}{
		{name: "valid", attrName: "asp-for"},
		{name: "empty", attrName: "", want: [][]string{{"RZ3404"}}},
		{name: "whitespace", attrName: "\n", want: [][]string{{"RZ3404"}}},
		{name: "reserved data prefix", attrName: "data-id", want: [][]string{{"RZ3406", "data-id", "data-id", "data-"}}},
		{name: "reserved data prefix ignoring case", attrName: "DATA-id", want: [][]string{{"RZ3406", "DATA-id", "DATA-id", "data-"}}},
		{name: "data without dash", attrName: "dataset"},
		{
			name:     "reserved data prefix with invalid character",
			attrName: "data-@x",
			want:     [][]string{{"RZ3406", "data-@x", "data-@x", "data-"}, {"RZ3405", "data-@x", "data-@x", "@"}},
		},
		{
			name:     "invalid characters",
			attrName: "a=b'",
			want:     [][]string{{"RZ3405", "a=b'", "a=b'", "="}, {"RZ3405", "a=b'", "a=b'", "'"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := taghelpers.NewRequiredAttributeDescriptorBuilder().Name(tt.attrName).Build()
			if diff := cmp.Diff(tt.want, diagnosticIDs(attr.Diagnostics())); diff != "" {
				t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("should surface attribute errors through the rule", func(t *testing.T) {
		rule := buildRule(func(b *taghelpers.TagMatchingRuleDescriptorBuilder) {
			b.RequireTagName("a").RequireAttribute(func(a *taghelpers.RequiredAttributeDescriptorBuilder) {
				a.Name("data-x")
			})
		})
		if len(rule.Diagnostics()) != 0 {
			t.Errorf("rule's own diagnostics should be empty, got %v", rule.Diagnostics())
		}
		if !rule.HasErrors() {
			t.Errorf("expected HasErrors() to include required attribute diagnostics")
		}
	})
}

func TestBoundAttributeValidation(t *testing.T) {
	tests := []struct {
		name      string
		configure func(*taghelpers.BoundAttributeDescriptorBuilder)
		want      [][]string
	}{
		{
			name: "valid",
			configure: func(b *taghelpers.BoundAttributeDescriptorBuilder) {
				b.Name("bold").PropertyName("Bold").TypeName("System.Boolean")
			},
		},
		{
			name: "missing name",
			configure: func(b *taghelpers.BoundAttributeDescriptorBuilder) {
				b.PropertyName("Bold").TypeName("System.Boolean")
			},
			want: [][]string{{"RZ3407", "Bold", "App.BoldTagHelper"}},
		},
		{
			name: "indexer without name",
			configure: func(b *taghelpers.BoundAttributeDescriptorBuilder) {
				b.PropertyName("Values").AsDictionary("bold-", "System.String")
			},
		},
		{
			name: "reserved data prefix",
			configure: func(b *taghelpers.BoundAttributeDescriptorBuilder) {
				b.Name("data-bold").PropertyName("Bold")
			},
			want: [][]string{{"RZ3409", "Bold", "App.BoldTagHelper", "data-bold", "data-"}},
		},
		{
			name: "reserved data prefix with invalid character",
			configure: func(b *taghelpers.BoundAttributeDescriptorBuilder) {
				b.Name("data-b@ld").PropertyName("Bold")
			},
			want: [][]string{
				{"RZ3409", "Bold", "App.BoldTagHelper", "data-b@ld", "data-"},
				{"RZ3408", "Bold", "App.BoldTagHelper", "data-b@ld", "@"},
			},
		},
		{
			name: "invalid name character",
			configure: func(b *taghelpers.BoundAttributeDescriptorBuilder) {
				b.Name("bo@ld").PropertyName("Bold")
			},
			want: [][]string{{"RZ3408", "Bold", "App.BoldTagHelper", "bo@ld", "@"}},
		},
		{
			name: "reserved data indexer prefix",
			configure: func(b *taghelpers.BoundAttributeDescriptorBuilder) {
				b.PropertyName("Values").AsDictionary("Data-", "System.String")
			},
			want: [][]string{{"RZ3412", "Values", "App.BoldTagHelper", "Data-", "data-"}},
		},
		{
			name: "reserved data indexer prefix with invalid character",
			configure: func(b *taghelpers.BoundAttributeDescriptorBuilder) {
				b.PropertyName("Values").AsDictionary("data-[", "System.String")
			},
			want: [][]string{
				{"RZ3412", "Values", "App.BoldTagHelper", "data-[", "data-"},
				{"RZ3410", "Values", "App.BoldTagHelper", "data-[", "["},
			},
		},
		{
			name: "whitespace indexer prefix",
			configure: func(b *taghelpers.BoundAttributeDescriptorBuilder) {
				b.PropertyName("Values").AsDictionary("  ", "System.String")
			},
			want: [][]string{{"RZ3411", "Values", "App.BoldTagHelper"}},
		},
		{
			name: "invalid indexer prefix character",
			configure: func(b *taghelpers.BoundAttributeDescriptorBuilder) {
				b.PropertyName("Values").AsDictionary("bold[", "System.String")
			},
			want: [][]string{{"RZ3410", "Values", "App.BoldTagHelper", "bold[", "["}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			descriptor := taghelpers.CreateTagHelper("App.BoldTagHelper", "App").
				TagMatchingRule(func(r *taghelpers.TagMatchingRuleDescriptorBuilder) { r.RequireTagName("b") }).
				BindAttribute(tt.configure).
				Build()
			attrs := descriptor.BoundAttributes()
			if len(attrs) != 1 {
				t.Fatalf("expected one bound attribute, got %d", len(attrs))
			}
			if diff := cmp.Diff(tt.want, diagnosticIDs(attrs[0].Diagnostics())); diff != "" {
				t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
			}
			if descriptor.HasErrors() != (tt.want != nil) {
				t.Errorf("descriptor HasErrors() = %v", descriptor.HasErrors())
			}
		})
	}
}

func TestAllowedChildTagValidation(t *testing.T) {
	tests := []struct {
		name  string
		child string
		want  [][]string
	}{
		{name: "valid", child: "li"},
		{name: "any child", child: "*"},
		{name: "empty", child: "", want: [][]string{{"RZ3413", "App.ListTagHelper"}}},
		{name: "invalid character", child: "l?", want: [][]string{{"RZ3414", "l?", "App.ListTagHelper", "?"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			descriptor := taghelpers.CreateTagHelper("App.ListTagHelper", "App").
				TagMatchingRule(func(r *taghelpers.TagMatchingRuleDescriptorBuilder) { r.RequireTagName("ul") }).
				AllowChildTag(tt.child).
				Build()
			children := descriptor.AllowedChildTags()
			if len(children) != 1 {
				t.Fatalf("expected one allowed child, got %d", len(children))
			}
			if diff := cmp.Diff(tt.want, diagnosticIDs(children[0].Diagnostics())); diff != "" {
				t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
			}
			if descriptor.HasErrors() != (tt.want != nil) {
				t.Errorf("descriptor HasErrors() = %v", descriptor.HasErrors())
			}
		})
	}
}
