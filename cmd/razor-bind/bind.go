package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aspnet/Razor-sub002/packages/compiler/src/binder"
)

type bindFlags struct {
	tag               string
	attrs             []string
	parent            string
	parentIsTagHelper bool
	jsonOutput        bool
}

type bindResult struct {
	TagName       string        `json:"tagName"`
	ParentTagName string        `json:"parentTagName,omitempty"`
	Matched       bool          `json:"matched"`
	AttributeOnly bool          `json:"attributeOnly,omitempty"`
	TagHelpers    []boundHelper `json:"tagHelpers,omitempty"`
}

type boundHelper struct {
	Name         string   `json:"name"`
	AssemblyName string   `json:"assemblyName"`
	DisplayName  string   `json:"displayName"`
	Rules        []string `json:"rules"`
}

func newBindCmd(root *rootFlags) *cobra.Command {
	f := &bindFlags{}

	cmd := &cobra.Command{
		Use:   "bind",
		Short: "Show which tag helpers apply to an element",
		Example: `  # Element with attributes under a <p> parent
  razor-bind bind -m taghelpers.yaml --tag strong --parent p --attr class=btn

  # Prefixed tag helper nested in another tag helper
  razor-bind bind -m taghelpers.yaml --tag th:li --parent th:ul --parent-is-tag-helper

  # JSON output
  razor-bind bind -m taghelpers.yaml --tag div --attr style --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBind(cmd, root, f)
		},
	}

	cmd.Flags().StringVarP(&f.tag, "tag", "t", "", "Tag name of the element, prefix included [required]")
	cmd.Flags().StringArrayVarP(&f.attrs, "attr", "a", nil, "Attribute as name=value or name (repeatable)")
	cmd.Flags().StringVarP(&f.parent, "parent", "p", "", "Tag name of the parent element, empty at the document root")
	cmd.Flags().BoolVar(&f.parentIsTagHelper, "parent-is-tag-helper", false, "Remove the tag helper prefix from the parent tag name")
	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "Output in JSON format")
	_ = cmd.MarkFlagRequired("tag")

	return cmd
}

func runBind(cmd *cobra.Command, root *rootFlags, f *bindFlags) error {
	attrs, err := parseAttributes(f.attrs)
	if err != nil {
		return err
	}

	c, err := root.loadCatalog()
	if err != nil {
		return err
	}

	binding := binder.New(c).Bind(binder.Element{
		TagName:           f.tag,
		Attributes:        attrs,
		ParentTagName:     f.parent,
		ParentIsTagHelper: f.parentIsTagHelper,
	})

	result := bindResult{
		TagName:       f.tag,
		ParentTagName: f.parent,
		Matched:       binding != nil,
	}
	if binding != nil {
		result.AttributeOnly = binding.IsAttributeMatch()
		for _, descriptor := range binding.Descriptors() {
			helper := boundHelper{
				Name:         descriptor.Name(),
				AssemblyName: descriptor.AssemblyName(),
				DisplayName:  descriptor.DisplayName(),
			}
			for _, rule := range binding.GetBoundRules(descriptor) {
				helper.Rules = append(helper.Rules, rule.String())
			}
			result.TagHelpers = append(result.TagHelpers, helper)
		}
	}

	if f.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	printBindResult(cmd.OutOrStdout(), result)
	return nil
}

func printBindResult(w io.Writer, result bindResult) {
	if !result.Matched {
		fmt.Fprintf(w, "No tag helpers apply to <%s>\n", result.TagName)
		return
	}
	fmt.Fprintf(w, "<%s> is bound to %d tag helper(s)", result.TagName, len(result.TagHelpers))
	if result.AttributeOnly {
		fmt.Fprint(w, " (attributes only)")
	}
	fmt.Fprintln(w)
	for _, helper := range result.TagHelpers {
		fmt.Fprintf(w, "  %s (%s)\n", helper.DisplayName, helper.AssemblyName)
		for _, rule := range helper.Rules {
			fmt.Fprintf(w, "    %s\n", rule)
		}
	}
}

// parseAttributes turns name=value flags into attributes. A flag without '='
// is an attribute with an empty value.
func parseAttributes(flags []string) ([]binder.Attribute, error) {
	attrs := make([]binder.Attribute, 0, len(flags))
	for _, flag := range flags {
		name, value, _ := strings.Cut(flag, "=")
		if name == "" {
			return nil, fmt.Errorf("invalid --attr %q: missing attribute name", flag)
		}
		attrs = append(attrs, binder.Attribute{Name: name, Value: value})
	}
	return attrs, nil
}
