package catalog

import (
	"golang.org/x/text/cases"

	"github.com/aspnet/Razor-sub002/packages/compiler/src/taghelpers"
)

// entry is one registered descriptor; seq records registration order
type entry struct {
	seq        uint64
	hash       uint64
	descriptor *taghelpers.TagHelperDescriptor
}

// tagNameIndex narrows candidate descriptors for a tag name. Descriptors with a
// literal rule are filed under indexKey of the tag name, descriptors with a catch-all
// rule in a separate bucket merged into every lookup. Lookups are a filter only; the
// binder still evaluates every rule of every candidate.
type tagNameIndex struct {
	byTagName map[string][]*entry
	catchAll  []*entry
}

func newTagNameIndex() *tagNameIndex {
	return &tagNameIndex{
		byTagName: make(map[string][]*entry),
	}
}

func (ix *tagNameIndex) add(e *entry) {
	seen := make(map[string]bool)
	addedCatchAll := false
	for _, rule := range e.descriptor.TagMatchingRules() {
		if rule.IsCatchAll() {
			if !addedCatchAll {
				ix.catchAll = append(ix.catchAll, e)
				addedCatchAll = true
			}
			continue
		}
		key := indexKey(rule.TagNameSpec().Literal())
		if seen[key] {
			continue
		}
		seen[key] = true
		ix.byTagName[key] = append(ix.byTagName[key], e)
	}
}

func (ix *tagNameIndex) remove(e *entry) {
	for key, bucket := range ix.byTagName {
		bucket = removeEntry(bucket, e)
		if len(bucket) == 0 {
			delete(ix.byTagName, key)
		} else {
			ix.byTagName[key] = bucket
		}
	}
	ix.catchAll = removeEntry(ix.catchAll, e)
}

// lookup returns the union of the literal bucket for tagName and the catch-all
// bucket, in registration order
func (ix *tagNameIndex) lookup(tagName string) []*entry {
	return mergeBySeq(ix.byTagName[indexKey(tagName)], ix.catchAll)
}

// indexKey applies full Unicode case folding. It is coarser than the simple folding
// rules are matched with ("ß" and "ss" share a bucket), so a bucket always holds
// every descriptor whose rule could match.
func indexKey(tagName string) string {
	// A cases.Caser keeps state between calls and must not be shared.
	return cases.Fold().String(tagName)
}

func removeEntry(bucket []*entry, e *entry) []*entry {
	for i, existing := range bucket {
		if existing == e {
			return append(bucket[:i:i], bucket[i+1:]...)
		}
	}
	return bucket
}

// mergeBySeq merges two seq-ordered buckets, dropping entries present in both
func mergeBySeq(a, b []*entry) []*entry {
	merged := make([]*entry, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].seq == b[j].seq:
			merged = append(merged, a[i])
			i++
			j++
		case a[i].seq < b[j].seq:
			merged = append(merged, a[i])
			i++
		default:
			merged = append(merged, b[j])
			j++
		}
	}
	merged = append(merged, a[i:]...)
	return append(merged, b[j:]...)
}
