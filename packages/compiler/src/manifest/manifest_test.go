package manifest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aspnet/Razor-sub002/packages/compiler/src/binder"
	"github.com/aspnet/Razor-sub002/packages/compiler/src/config"
	"github.com/aspnet/Razor-sub002/packages/compiler/src/manifest"
	"github.com/aspnet/Razor-sub002/packages/compiler/src/taghelpers"
)

const sampleManifest = `
tagHelperPrefix: "th:"
tagHelpers:
  - name: App.BoldTagHelper
    assemblyName: App
    documentation: Makes text bold.
    tagMatchingRules:
      - tagName: strong
        parentTag: p
        tagStructure: normalOrSelfClosing
      - tagName: div
        attributes:
          - name: class
            value: bold
            valueComparison: suffixMatch
          - name: int-prefix-
            nameComparison: prefixMatch
    boundAttributes:
      - name: bold-level
        propertyName: Level
        typeName: System.Int32
      - propertyName: Values
        typeName: System.Collections.Generic.IDictionary<System.String, System.String>
        indexerNamePrefix: "bold-"
        indexerTypeName: System.String
    allowedChildTags: [em, "*"]
  - name: App.CatchAllTagHelper
    assemblyName: App
    kind: Custom
    displayName: Catch all
    tagMatchingRules:
      - tagName: "*"
    metadata:
      Common.ClassifyAttributesOnly: "true"
`

func TestParse(t *testing.T) {
	m, err := manifest.Parse([]byte(sampleManifest))
	require.NoError(t, err)

	assert.Equal(t, "th:", m.TagHelperPrefix)
	require.Len(t, m.TagHelpers, 2)
	assert.Equal(t, "App.BoldTagHelper", m.TagHelpers[0].Name)
	require.Len(t, m.TagHelpers[0].TagMatchingRules, 2)
	require.NotNil(t, m.TagHelpers[0].TagMatchingRules[0].ParentTag)
	assert.Equal(t, "p", *m.TagHelpers[0].TagMatchingRules[0].ParentTag)
	assert.Nil(t, m.TagHelpers[0].TagMatchingRules[1].ParentTag)
	assert.Equal(t, []string{"em", "*"}, m.TagHelpers[0].AllowedChildTags)
}

func TestParseJSON(t *testing.T) {
	doc := `{"tagHelpers": [{"name": "A", "assemblyName": "Asm", "tagMatchingRules": [{"tagName": "a"}]}]}`

	m, err := manifest.Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, m.TagHelpers, 1)
	assert.Equal(t, "a", m.TagHelpers[0].TagMatchingRules[0].TagName)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{name: "empty", doc: "", want: manifest.ErrEmptyManifest},
		{name: "whitespace", doc: "  \n\t", want: manifest.ErrEmptyManifest},
		{name: "comment only", doc: "# nothing here\n", want: manifest.ErrEmptyManifest},
		{name: "unknown field", doc: "tagHelpers: []\nprefix: x\n", want: manifest.ErrInvalidManifest},
		{name: "wrong type", doc: "tagHelpers: 3\n", want: manifest.ErrInvalidManifest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manifest.Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDescriptors(t *testing.T) {
	m, err := manifest.Parse([]byte(sampleManifest))
	require.NoError(t, err)

	descriptors, err := m.Descriptors()
	require.NoError(t, err)
	require.Len(t, descriptors, 2)

	bold := descriptors[0]
	assert.Equal(t, taghelpers.DefaultKind, bold.Kind())
	assert.Equal(t, "App.BoldTagHelper", bold.DisplayName())
	assert.Equal(t, "Makes text bold.", bold.Documentation())
	assert.False(t, bold.HasErrors())

	rules := bold.TagMatchingRules()
	require.Len(t, rules, 2)
	assert.Equal(t, taghelpers.TagStructureNormalOrSelfClosing, rules[0].TagStructure())
	attrs := rules[1].Attributes()
	require.Len(t, attrs, 2)
	assert.Equal(t, taghelpers.ValueComparisonSuffixMatch, attrs[0].ValueComparison())
	assert.Equal(t, taghelpers.NameComparisonPrefixMatch, attrs[1].NameComparison())

	bound := bold.BoundAttributes()
	require.Len(t, bound, 2)
	assert.Equal(t, "Level", bound[0].PropertyName())
	assert.Equal(t, "System.Int32 App.BoldTagHelper.Level", bound[0].DisplayName())
	assert.True(t, bound[1].HasIndexer())
	assert.True(t, bound[1].IsIndexerStringProperty())

	children := bold.AllowedChildTags()
	require.Len(t, children, 2)
	assert.Equal(t, "em", children[0].Name())

	catchAll := descriptors[1]
	assert.Equal(t, "Custom", catchAll.Kind())
	assert.Equal(t, "Catch all", catchAll.DisplayName())
	assert.True(t, catchAll.TagMatchingRules()[0].IsCatchAll())
	assert.True(t, catchAll.IsAttributeClassifier())
	assert.Nil(t, catchAll.AllowedChildTags())
}

func TestDescriptorsKeepValidationDiagnostics(t *testing.T) {
	doc := `
tagHelpers:
  - name: Bad
    assemblyName: Asm
    tagMatchingRules:
      - tagName: "di<v"
        attributes:
          - name: data-foo
`
	m, err := manifest.Parse([]byte(doc))
	require.NoError(t, err)

	descriptors, err := m.Descriptors()
	require.NoError(t, err)
	require.Len(t, descriptors, 1)

	all := descriptors[0].GetAllDiagnostics()
	require.Len(t, all, 2)
	assert.Equal(t, "RZ3401", all[0].ID())
	assert.Equal(t, "RZ3406", all[1].ID())
	assert.True(t, descriptors[0].HasErrors())
}

func TestDiagnosticSpans(t *testing.T) {
	doc := `
tagHelpers:
  - name: Bad
    assemblyName: Asm
    tagMatchingRules:
      - tagName: "di<v"
        attributes:
          - name: data-foo
    boundAttributes:
      - name: 'b@ld'
        propertyName: Bold
        typeName: System.Boolean
    allowedChildTags: [li, "l?"]
`
	m, err := manifest.ParseSource("bad.yaml", []byte(doc))
	require.NoError(t, err)

	descriptors, err := m.Descriptors()
	require.NoError(t, err)
	require.Len(t, descriptors, 1)

	var got []string
	for _, d := range descriptors[0].GetAllDiagnostics() {
		require.NotNil(t, d.Span(), d.ID())
		got = append(got, d.ID()+" "+d.Span().String())
	}
	assert.Equal(t, []string{
		"RZ3414 bad.yaml@13:28 (4)",
		"RZ3408 bad.yaml@10:15 (6)",
		"RZ3401 bad.yaml@6:18 (6)",
		"RZ3406 bad.yaml@8:19 (8)",
	}, got)

	t.Run("without a url", func(t *testing.T) {
		m, err := manifest.Parse([]byte(doc))
		require.NoError(t, err)
		descriptors, err := m.Descriptors()
		require.NoError(t, err)
		rule := descriptors[0].TagMatchingRules()[0]
		require.Len(t, rule.Diagnostics(), 1)
		assert.Equal(t, "@6:18 (6)", rule.Diagnostics()[0].Span().String())
	})

	t.Run("json", func(t *testing.T) {
		m, err := manifest.ParseSource("bad.json", []byte(`{"tagHelpers": [{"name": "A", "tagMatchingRules": [{"tagName": "a b"}]}]}`))
		require.NoError(t, err)
		descriptors, err := m.Descriptors()
		require.NoError(t, err)
		rule := descriptors[0].TagMatchingRules()[0]
		require.Len(t, rule.Diagnostics(), 1)
		assert.Equal(t, "bad.json@1:64 (5)", rule.Diagnostics()[0].Span().String())
	})
}

func TestDescriptorsErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantMsg string
	}{
		{
			name:    "missing name",
			doc:     "tagHelpers:\n  - assemblyName: Asm\n",
			wantMsg: "tagHelpers[0]: name is required",
		},
		{
			name:    "bad tag structure",
			doc:     "tagHelpers:\n  - name: A\n    tagMatchingRules:\n      - tagName: a\n        tagStructure: sometimes\n",
			wantMsg: `tagMatchingRules[0]: unknown tag structure "sometimes"`,
		},
		{
			name:    "bad name comparison",
			doc:     "tagHelpers:\n  - name: A\n    tagMatchingRules:\n      - tagName: a\n        attributes:\n          - name: x\n            nameComparison: fuzzy\n",
			wantMsg: `attributes[0]: unknown name comparison mode "fuzzy"`,
		},
		{
			name:    "bad value comparison",
			doc:     "tagHelpers:\n  - name: A\n    tagMatchingRules:\n      - tagName: a\n        attributes:\n          - name: x\n            valueComparison: contains\n",
			wantMsg: `attributes[0]: unknown value comparison mode "contains"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := manifest.Parse([]byte(tt.doc))
			require.NoError(t, err)

			_, err = m.Descriptors()
			require.ErrorIs(t, err, manifest.ErrInvalidManifest)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestNewCatalog(t *testing.T) {
	m, err := manifest.Parse([]byte(sampleManifest))
	require.NoError(t, err)

	c, err := m.NewCatalog()
	require.NoError(t, err)
	assert.Equal(t, "th:", c.TagHelperPrefix())
	assert.Equal(t, 2, c.Len())

	b := binder.New(c)
	binding := b.GetBinding("th:strong", nil, "p")
	require.NotNil(t, binding)
	assert.Len(t, binding.Descriptors(), 2)

	assert.Nil(t, b.GetBinding("strong", nil, "p"))
}

func TestNewCatalogOptionsOverridePrefix(t *testing.T) {
	m, err := manifest.Parse([]byte(sampleManifest))
	require.NoError(t, err)

	c, err := m.NewCatalog(config.WithTagHelperPrefix(""))
	require.NoError(t, err)
	assert.Equal(t, "", c.TagHelperPrefix())
}
