package manifest

import (
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/aspnet/Razor-sub002/packages/compiler/src/util"
)

// locator turns yaml node positions into source spans over the manifest bytes
type locator struct {
	file       *util.ParseSourceFile
	data       []byte
	lineStarts []int
}

func newLocator(url string, data []byte) *locator {
	starts := []int{0}
	for i, b := range data {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &locator{
		file:       util.NewParseSourceFile(url),
		data:       data,
		lineStarts: starts,
	}
}

// span covers a scalar node as written, quotes included. Other nodes get an empty
// span at their first character.
func (l *locator) span(n *yaml.Node) *util.ParseSourceSpan {
	if n == nil || n.Line == 0 {
		return nil
	}
	line, col := n.Line-1, n.Column-1
	start := l.offset(line, col)
	end := start
	if n.Kind == yaml.ScalarNode {
		end = l.scalarEnd(start, n)
	}
	return util.NewParseSourceSpan(
		util.NewParseLocation(l.file, start, line, col),
		util.NewParseLocation(l.file, end, line, col+utf8.RuneCount(l.data[start:end])),
		nil,
	)
}

// offset converts a zero-based line and rune column to a byte offset
func (l *locator) offset(line, col int) int {
	if line >= len(l.lineStarts) {
		return len(l.data)
	}
	off := l.lineStarts[line]
	for i := 0; i < col && off < len(l.data) && l.data[off] != '\n'; i++ {
		_, size := utf8.DecodeRune(l.data[off:])
		off += size
	}
	return off
}

func (l *locator) scalarEnd(start int, n *yaml.Node) int {
	data := l.data
	switch n.Style {
	case yaml.DoubleQuotedStyle:
		for i := start + 1; i < len(data); i++ {
			switch data[i] {
			case '\\':
				i++
			case '"':
				return i + 1
			}
		}
	case yaml.SingleQuotedStyle:
		for i := start + 1; i < len(data); i++ {
			if data[i] != '\'' {
				continue
			}
			if i+1 < len(data) && data[i+1] == '\'' {
				i++
				continue
			}
			return i + 1
		}
	case 0:
		return min(start+len(n.Value), len(data))
	}
	return start
}

// mappingValue returns the value node of key in a mapping node
func mappingValue(n *yaml.Node, key string) *yaml.Node {
	n = resolve(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return resolve(n.Content[i+1])
		}
	}
	return nil
}

// sequenceItem returns item i of a sequence node
func sequenceItem(n *yaml.Node, i int) *yaml.Node {
	n = resolve(n)
	if n == nil || n.Kind != yaml.SequenceNode || i >= len(n.Content) {
		return nil
	}
	return resolve(n.Content[i])
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

// firstNode returns the first non-nil node
func firstNode(nodes ...*yaml.Node) *yaml.Node {
	for _, n := range nodes {
		if n != nil {
			return n
		}
	}
	return nil
}

// locate records the source span of every rule, required attribute, bound attribute
// and allowed child tag. Names are preferred over their enclosing mapping.
func (m *Manifest) locate(l *locator, doc *yaml.Node) {
	root := doc
	if root != nil && root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	helpers := mappingValue(root, "tagHelpers")
	for i := range m.TagHelpers {
		m.TagHelpers[i].locate(l, sequenceItem(helpers, i))
	}
}

func (th *TagHelper) locate(l *locator, n *yaml.Node) {
	rules := mappingValue(n, "tagMatchingRules")
	for i := range th.TagMatchingRules {
		rule := &th.TagMatchingRules[i]
		ruleNode := sequenceItem(rules, i)
		rule.span = l.span(firstNode(mappingValue(ruleNode, "tagName"), ruleNode))

		attrs := mappingValue(ruleNode, "attributes")
		for j := range rule.Attributes {
			attrNode := sequenceItem(attrs, j)
			rule.Attributes[j].span = l.span(firstNode(mappingValue(attrNode, "name"), attrNode))
		}
	}

	bound := mappingValue(n, "boundAttributes")
	for i := range th.BoundAttributes {
		attrNode := sequenceItem(bound, i)
		th.BoundAttributes[i].span = l.span(firstNode(mappingValue(attrNode, "name"), attrNode))
	}

	children := mappingValue(n, "allowedChildTags")
	th.childSpans = make([]*util.ParseSourceSpan, len(th.AllowedChildTags))
	for i := range th.AllowedChildTags {
		th.childSpans[i] = l.span(sequenceItem(children, i))
	}
}
