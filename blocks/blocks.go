// Package blocks registers the built-in block sets.
package blocks

import (
	"github.com/blocklua-lang/blocklua/blocks/oslib"
	"github.com/blocklua-lang/blocklua/blocks/turtle"
	"github.com/blocklua-lang/blocklua/pkg/registry"
)

// Options adjusts all built-in block sets at registration time.
type Options struct {
	// BaseHelpURL overrides the wiki root for derived help URLs.
	BaseHelpURL string
}

// RegisterAll adds every built-in block set to a registry.
func RegisterAll(r *registry.Registry, opts Options) error {
	if err := turtle.Register(r, turtle.Options{BaseHelpURL: opts.BaseHelpURL}); err != nil {
		return err
	}
	return oslib.Register(r, oslib.Options{BaseHelpURL: opts.BaseHelpURL})
}
