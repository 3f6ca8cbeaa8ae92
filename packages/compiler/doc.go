// Package compiler provides the tag helper binding core of a Razor-style template
// compiler: the descriptors that say which elements a tag helper applies to, the
// catalog that stores them, and the binder that resolves an observed element to the
// tag helpers and rules that apply.
//
// The core does not tokenize text or walk a syntax tree. Callers hand the binder one
// element at a time (tag name, attributes, parent tag name) and consume the
// resulting bindings in later compilation phases.
//
// Main sub-packages:
//
//   - src/taghelpers: Descriptors, their builders and validation, and the structural
//     Comparer used for deduplication
//   - src/matching: Pure rule evaluation for tag names, parents and required attributes
//   - src/catalog: Deduplicating, indexed descriptor store scoped by a tag name prefix
//   - src/binder: Binding resolution, single and batched
//   - src/diagnostics: Validation findings attached to built descriptors
//   - src/manifest: YAML and JSON descriptor manifests
//   - src/config: Engine options shared by the catalog and binder
//   - src/logging: slog loggers for the core and the razor-bind CLI
//   - src/core, src/util: Name character rules and source spans
//
// Typical use:
//
//	c := catalog.New(config.WithTagHelperPrefix("th:"))
//	_ = c.RegisterAll(descriptors...)
//	c.Freeze()
//
//	b := binder.New(c)
//	if binding := b.GetBinding("th:strong", attrs, "p"); binding != nil {
//		for _, d := range binding.Descriptors() {
//			rules := binding.GetBoundRules(d)
//			...
//		}
//	}
package compiler
