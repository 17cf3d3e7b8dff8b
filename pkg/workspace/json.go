package workspace

import (
	"encoding/json"
	"fmt"

	"github.com/blocklua-lang/blocklua/pkg/block"
	"github.com/blocklua-lang/blocklua/pkg/registry"
)

// Saved-program JSON:
//
//	{"blocks": [
//	  {"type": "turtle_turn",
//	   "fields": {"DIR": "turnRight"},
//	   "inputs": {"TEXT": {"type": "..."}},
//	   "next": {"type": "turtle_forward"}}
//	]}
type programJSON struct {
	Blocks []*blockJSON `json:"blocks"`
}

type blockJSON struct {
	Type   string                `json:"type"`
	Fields map[string]string     `json:"fields,omitempty"`
	Inputs map[string]*blockJSON `json:"inputs,omitempty"`
	Next   *blockJSON            `json:"next,omitempty"`
}

// Load builds a workspace from saved-program JSON, resolving block types
// through the registry.
func Load(data []byte, reg *registry.Registry) (*Workspace, error) {
	var prog programJSON
	if err := json.Unmarshal(data, &prog); err != nil {
		return nil, fmt.Errorf("failed to parse program: %w", err)
	}

	w := New()
	for _, root := range prog.Blocks {
		b, err := buildBlock(root, reg)
		if err != nil {
			return nil, err
		}
		w.Add(b)
	}
	return w, nil
}

func buildBlock(j *blockJSON, reg *registry.Registry) (*Block, error) {
	if j == nil {
		return nil, fmt.Errorf("failed to parse program: null block entry")
	}

	def, ok := reg.Lookup(j.Type)
	if !ok {
		return nil, block.NewDefinitionError(block.KindConfiguration, block.ErrUnregisteredBlock,
			j.Type, "block type %q is not registered", j.Type)
	}

	b, err := NewBlock(def)
	if err != nil {
		return nil, err
	}

	for name, value := range j.Fields {
		if err := b.SetDropdown(name, value); err != nil {
			return nil, err
		}
	}

	for name, childJSON := range j.Inputs {
		child, err := buildBlock(childJSON, reg)
		if err != nil {
			return nil, err
		}
		if err := b.ConnectValue(name, child); err != nil {
			return nil, err
		}
	}

	if j.Next != nil {
		next, err := buildBlock(j.Next, reg)
		if err != nil {
			return nil, err
		}
		if err := b.SetNext(next); err != nil {
			return nil, err
		}
	}

	return b, nil
}
