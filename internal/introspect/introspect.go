// Package introspect describes registered block types for tooling: the CLI
// listing and the dev server's JSON endpoints.
package introspect

import (
	"github.com/blocklua-lang/blocklua/pkg/luagen"
	"github.com/blocklua-lang/blocklua/pkg/registry"
	"github.com/blocklua-lang/blocklua/pkg/workspace"
)

// BlockInfo is the tooling-facing description of one block type.
type BlockInfo struct {
	Name         string   `json:"name"`
	Prefix       string   `json:"prefix"`
	Colour       int      `json:"colour"`
	Kind         string   `json:"kind"` // "statement" or "expression"
	Previous     bool     `json:"previous"`
	Next         bool     `json:"next"`
	OutputChecks []string `json:"output_checks,omitempty"`
	ExtraOutputs int      `json:"extra_outputs,omitempty"`
	Params       []string `json:"params,omitempty"`
	HelpURL      string   `json:"help_url,omitempty"`
	Tooltip      string   `json:"tooltip,omitempty"`
}

// Describe instantiates a throwaway block of the given type and reports its
// configured state.
func Describe(t luagen.BlockType) (BlockInfo, error) {
	b, err := workspace.NewBlock(t)
	if err != nil {
		return BlockInfo{}, err
	}

	desc := t.Descriptor()
	info := BlockInfo{
		Name:         desc.Name,
		Prefix:       desc.Prefix,
		Colour:       b.Colour(),
		Kind:         "statement",
		Previous:     b.HasPrevious(),
		Next:         b.HasNext(),
		OutputChecks: b.OutputChecks(),
		ExtraOutputs: desc.ExtraOutputs,
		Params:       t.ParamNames(),
		HelpURL:      b.HelpURL(),
		Tooltip:      b.Tooltip(),
	}
	if b.HasOutput() {
		info.Kind = "expression"
	}
	return info, nil
}

// DescribeAll describes every registered type in name order.
func DescribeAll(r *registry.Registry) ([]BlockInfo, error) {
	var infos []BlockInfo
	for _, t := range r.All() {
		info, err := Describe(t)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}
