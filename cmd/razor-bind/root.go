package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aspnet/Razor-sub002/packages/compiler/src/catalog"
	"github.com/aspnet/Razor-sub002/packages/compiler/src/config"
	"github.com/aspnet/Razor-sub002/packages/compiler/src/logging"
	"github.com/aspnet/Razor-sub002/packages/compiler/src/manifest"
)

// rootFlags holds the persistent flags shared by every command
type rootFlags struct {
	logLevel  string
	logFormat string
	manifest  string
	logger    *slog.Logger
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	defaults := logging.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "razor-bind",
		Short: "Resolve tag helper bindings from a descriptor manifest",
		Long: `razor-bind loads tag helper descriptors from a YAML or JSON manifest and
answers binding queries against them: which tag helpers apply to an element,
which rules matched, and whether the descriptors themselves are valid.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg := logging.DefaultConfig()
			cfg.Output = cmd.ErrOrStderr()

			var err error
			if cfg.Level, err = logging.ParseLevel(f.logLevel); err != nil {
				return err
			}
			if cfg.Format, err = logging.ParseFormat(f.logFormat); err != nil {
				return err
			}
			f.logger = logging.New(cfg)
			return nil
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.PersistentFlags().StringVar(&f.logLevel, "log-level", strings.ToLower(defaults.Level.String()), "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&f.logFormat, "log-format", string(defaults.Format), "Log format (text, json)")
	cmd.PersistentFlags().StringVarP(&f.manifest, "manifest", "m", "", "Path to the tag helper manifest (YAML or JSON) [required]")
	_ = cmd.MarkPersistentFlagRequired("manifest")

	cmd.AddCommand(
		newBindCmd(f),
		newValidateCmd(f),
		newListCmd(f),
	)
	return cmd
}

// loadManifest reads and decodes the manifest named by --manifest
func (f *rootFlags) loadManifest() (*manifest.Manifest, error) {
	data, err := os.ReadFile(f.manifest)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	m, err := manifest.ParseSource(f.manifest, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.manifest, err)
	}
	f.logger.Debug("manifest loaded", "path", f.manifest, "tagHelpers", len(m.TagHelpers))
	return m, nil
}

// loadCatalog builds a frozen catalog from the manifest
func (f *rootFlags) loadCatalog() (*catalog.Catalog, error) {
	m, err := f.loadManifest()
	if err != nil {
		return nil, err
	}
	c, err := m.NewCatalog(config.WithLogger(f.logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.manifest, err)
	}
	c.Freeze()
	return c, nil
}
