// Package registry holds the process-wide set of block-type definitions.
// Block sets register once at startup; lookups happen during loading and
// code generation.
package registry

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/blocklua-lang/blocklua/pkg/block"
	"github.com/blocklua-lang/blocklua/pkg/luagen"
)

// Registry maps canonical block-type names to their definitions.
type Registry struct {
	mu     sync.RWMutex
	defs   map[string]luagen.BlockType
	logger *zap.Logger
}

// New creates an empty registry. A nil logger disables logging.
func New(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		defs:   make(map[string]luagen.BlockType),
		logger: logger,
	}
}

// Register adds a block-type definition under its canonical name. Duplicate
// names are a configuration error.
func (r *Registry) Register(t luagen.BlockType) error {
	name := t.Descriptor().Name

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.defs[name]; exists {
		return block.NewDefinitionError(block.KindConfiguration, block.ErrDuplicateBlock, name,
			"block type %q registered twice", name)
	}
	r.defs[name] = t

	r.logger.Debug("registered block type",
		zap.String("name", name),
		zap.String("prefix", t.Descriptor().Prefix))
	return nil
}

// MustRegister is Register for startup-time block sets.
func (r *Registry) MustRegister(t luagen.BlockType) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (luagen.BlockType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.defs[name]
	return t, ok
}

// Names returns all registered canonical names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all definitions sorted by canonical name.
func (r *Registry) All() []luagen.BlockType {
	names := r.Names()

	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]luagen.BlockType, 0, len(names))
	for _, name := range names {
		defs = append(defs, r.defs[name])
	}
	return defs
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}
