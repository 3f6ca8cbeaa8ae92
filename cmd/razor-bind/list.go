package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aspnet/Razor-sub002/packages/compiler/src/taghelpers"
)

type listedHelper struct {
	Name         string   `json:"name"`
	AssemblyName string   `json:"assemblyName"`
	DisplayName  string   `json:"displayName"`
	Kind         string   `json:"kind"`
	Rules        []string `json:"rules"`
	HasErrors    bool     `json:"hasErrors,omitempty"`
}

func newListCmd(root *rootFlags) *cobra.Command {
	var tag string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered tag helpers",
		Example: `  # Every tag helper in registration order
  razor-bind list -m taghelpers.yaml

  # Tag helpers that target <a> by name or through a catch-all rule
  razor-bind list -m taghelpers.yaml --tag a`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := root.loadCatalog()
			if err != nil {
				return err
			}

			var descriptors []*taghelpers.TagHelperDescriptor
			if tag != "" {
				descriptors = c.Candidates(tag)
			} else {
				descriptors = c.Descriptors()
			}

			listed := make([]listedHelper, 0, len(descriptors))
			for _, descriptor := range descriptors {
				helper := listedHelper{
					Name:         descriptor.Name(),
					AssemblyName: descriptor.AssemblyName(),
					DisplayName:  descriptor.DisplayName(),
					Kind:         descriptor.Kind(),
					HasErrors:    descriptor.HasErrors(),
				}
				for _, rule := range descriptor.TagMatchingRules() {
					helper.Rules = append(helper.Rules, rule.String())
				}
				listed = append(listed, helper)
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(listed)
			}

			if len(listed) == 0 {
				fmt.Fprintln(out, "No tag helpers found")
				return nil
			}
			for _, helper := range listed {
				fmt.Fprintf(out, "%s (%s)", helper.DisplayName, helper.AssemblyName)
				if helper.HasErrors {
					fmt.Fprint(out, " [invalid]")
				}
				fmt.Fprintln(out)
				for _, rule := range helper.Rules {
					fmt.Fprintf(out, "  %s\n", rule)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Only list tag helpers that may target this unprefixed tag name")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}
