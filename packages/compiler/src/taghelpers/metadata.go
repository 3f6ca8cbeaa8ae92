package taghelpers

// Well-known metadata keys and values
const (
	// DefaultKind is the kind of a component-style tag helper
	DefaultKind = "ITagHelper"

	// TypeNameKey holds the implementing type name of a tag helper
	TypeNameKey = "Common.TypeName"
	// PropertyNameKey holds the property a bound attribute writes to
	PropertyNameKey = "Common.PropertyName"
	// ClassifyAttributesOnlyKey marks a tag helper that only classifies attributes
	// and never takes ownership of the element
	ClassifyAttributesOnlyKey = "Common.ClassifyAttributesOnly"
)
