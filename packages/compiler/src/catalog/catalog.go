// Package catalog stores the tag helper descriptors available to a compilation.
//
// A Catalog is filled during a setup phase, frozen, and then only read. Registration
// deduplicates by structural equality: registering a value equal to one already
// present is a no-op and the first instance stays the one returned by queries.
package catalog

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/aspnet/Razor-sub002/packages/compiler/src/config"
	"github.com/aspnet/Razor-sub002/packages/compiler/src/taghelpers"
)

var (
	// ErrNilDescriptor is returned when a nil descriptor is registered or unregistered
	ErrNilDescriptor = errors.New("catalog: nil tag helper descriptor")
	// ErrFrozen is returned when the catalog is changed after Freeze
	ErrFrozen = errors.New("catalog: catalog is frozen")
)

// Catalog is a deduplicating, indexed store of tag helper descriptors scoped by an
// optional tag name prefix. It is safe for concurrent use.
type Catalog struct {
	mu       sync.RWMutex
	prefix   string
	comparer taghelpers.Comparer
	logger   *slog.Logger
	nextSeq  uint64
	entries  []*entry
	byHash   map[uint64][]*entry
	index    *tagNameIndex
	frozen   bool
}

// New creates an empty catalog configured by opts
func New(opts ...config.Option) *Catalog {
	return NewFromConfig(config.NewEngineConfig(opts...))
}

// NewFromConfig creates an empty catalog from an engine configuration
func NewFromConfig(cfg *config.EngineConfig) *Catalog {
	if cfg == nil {
		cfg = config.NewEngineConfig()
	}
	return &Catalog{
		prefix:   cfg.TagHelperPrefix,
		comparer: cfg.Comparer,
		logger:   cfg.Logger,
		byHash:   make(map[uint64][]*entry),
		index:    newTagNameIndex(),
	}
}

// TagHelperPrefix returns the prefix every bound tag name must start with
func (c *Catalog) TagHelperPrefix() string {
	return c.prefix
}

// Comparer returns the deduplication policy
func (c *Catalog) Comparer() taghelpers.Comparer {
	return c.comparer
}

// Logger returns the catalog's logger
func (c *Catalog) Logger() *slog.Logger {
	return c.logger
}

// Register adds descriptor unless a structurally equal descriptor is already
// present. It reports whether the descriptor was added.
func (c *Catalog) Register(descriptor *taghelpers.TagHelperDescriptor) (bool, error) {
	if descriptor == nil {
		return false, ErrNilDescriptor
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.frozen {
		return false, ErrFrozen
	}

	hash := c.comparer.TagHelperDescriptorHash(descriptor)
	if existing := c.findLocked(descriptor, hash); existing != nil {
		c.logger.Debug("tag helper already registered",
			"name", descriptor.Name(),
			"assembly", descriptor.AssemblyName())
		return false, nil
	}

	e := &entry{seq: c.nextSeq, hash: hash, descriptor: descriptor}
	c.nextSeq++
	c.entries = append(c.entries, e)
	c.byHash[hash] = append(c.byHash[hash], e)
	c.index.add(e)

	c.logger.Debug("tag helper registered",
		"name", descriptor.Name(),
		"assembly", descriptor.AssemblyName(),
		"rules", len(descriptor.TagMatchingRules()))
	return true, nil
}

// RegisterAll registers every descriptor in order, stopping at the first error
func (c *Catalog) RegisterAll(descriptors ...*taghelpers.TagHelperDescriptor) error {
	for _, descriptor := range descriptors {
		if _, err := c.Register(descriptor); err != nil {
			return err
		}
	}
	return nil
}

// Unregister removes the entry structurally equal to descriptor. The argument need
// not be the registered instance. It reports whether an entry was removed.
func (c *Catalog) Unregister(descriptor *taghelpers.TagHelperDescriptor) (bool, error) {
	if descriptor == nil {
		return false, ErrNilDescriptor
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.frozen {
		return false, ErrFrozen
	}

	hash := c.comparer.TagHelperDescriptorHash(descriptor)
	e := c.findLocked(descriptor, hash)
	if e == nil {
		c.logger.Debug("tag helper not registered", "name", descriptor.Name())
		return false, nil
	}

	c.entries = removeEntry(c.entries, e)
	if bucket := removeEntry(c.byHash[hash], e); len(bucket) == 0 {
		delete(c.byHash, hash)
	} else {
		c.byHash[hash] = bucket
	}
	c.index.remove(e)

	c.logger.Debug("tag helper unregistered", "name", descriptor.Name())
	return true, nil
}

// Freeze ends the setup phase. Later Register and Unregister calls return ErrFrozen.
func (c *Catalog) Freeze() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.frozen {
		c.frozen = true
		c.logger.Debug("tag helper catalog frozen", "descriptors", len(c.entries))
	}
}

// IsFrozen reports whether Freeze has been called
func (c *Catalog) IsFrozen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.frozen
}

// Len returns the number of registered descriptors
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Descriptors returns the registered descriptors in registration order
func (c *Catalog) Descriptors() []*taghelpers.TagHelperDescriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return descriptorsOf(c.entries)
}

// Contains reports whether a descriptor structurally equal to descriptor is registered
func (c *Catalog) Contains(descriptor *taghelpers.TagHelperDescriptor) bool {
	if descriptor == nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.findLocked(descriptor, c.comparer.TagHelperDescriptorHash(descriptor)) != nil
}

// Find returns the registered instance structurally equal to descriptor, or nil
func (c *Catalog) Find(descriptor *taghelpers.TagHelperDescriptor) *taghelpers.TagHelperDescriptor {
	if descriptor == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if e := c.findLocked(descriptor, c.comparer.TagHelperDescriptorHash(descriptor)); e != nil {
		return e.descriptor
	}
	return nil
}

// Candidates returns, in registration order, the descriptors that have a rule
// targeting tagName literally or a catch-all rule. tagName must already have the
// prefix removed. Candidates still need full rule evaluation.
func (c *Catalog) Candidates(tagName string) []*taghelpers.TagHelperDescriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return descriptorsOf(c.index.lookup(tagName))
}

func (c *Catalog) findLocked(descriptor *taghelpers.TagHelperDescriptor, hash uint64) *entry {
	for _, e := range c.byHash[hash] {
		if c.comparer.TagHelperDescriptorEqual(e.descriptor, descriptor) {
			return e
		}
	}
	return nil
}

func descriptorsOf(entries []*entry) []*taghelpers.TagHelperDescriptor {
	descriptors := make([]*taghelpers.TagHelperDescriptor, len(entries))
	for i, e := range entries {
		descriptors[i] = e.descriptor
	}
	return descriptors
}
