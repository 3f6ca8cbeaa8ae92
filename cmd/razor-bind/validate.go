package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Report descriptor diagnostics; fails when any tag helper has errors",
		Long: `Validate builds every tag helper in the manifest and prints the diagnostics
of each one, including those of its rules, required attributes, bound attributes
and allowed child tags. The command exits non-zero when any diagnostic is an error.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := root.loadManifest()
			if err != nil {
				return err
			}
			descriptors, err := m.Descriptors()
			if err != nil {
				return fmt.Errorf("%s: %w", root.manifest, err)
			}

			out := cmd.OutOrStdout()
			invalid := 0
			for _, descriptor := range descriptors {
				all := descriptor.GetAllDiagnostics()
				if len(all) == 0 {
					continue
				}
				if all.HasErrors() {
					invalid++
				}
				fmt.Fprintf(out, "%s:\n", descriptor)
				for _, d := range all {
					fmt.Fprintf(out, "  %s %s: %s", d.Severity(), d.ID(), d.Message())
					if span := d.Span(); span != nil {
						fmt.Fprintf(out, " [%s]", span.Start)
					}
					fmt.Fprintln(out)
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d tag helper(s) have errors", invalid, len(descriptors))
			}
			fmt.Fprintf(out, "%d tag helper(s) valid\n", len(descriptors))
			return nil
		},
	}
}
