// Package oslib defines blocks for the os API: timers, labels and the
// computer clock.
package oslib

import (
	"regexp"

	"github.com/blocklua-lang/blocklua/blocks/internal/defs"
	"github.com/blocklua-lang/blocklua/pkg/block"
	"github.com/blocklua-lang/blocklua/pkg/luagen"
	"github.com/blocklua-lang/blocklua/pkg/registry"
)

const (
	prefix = "os"
	hue    = 30
)

var reservedArgs = regexp.MustCompile(`^os_`)

// Options adjusts the block set at registration time.
type Options struct {
	BaseHelpURL string
}

// Register adds the os block set to a registry.
func Register(r *registry.Registry, opts Options) error {
	types, err := definitions()
	if err != nil {
		return err
	}
	for _, t := range types {
		if opts.BaseHelpURL != "" {
			t.Descriptor().BaseHelpURL = opts.BaseHelpURL
		}
		if err := r.Register(t); err != nil {
			return err
		}
	}
	return nil
}

func definitions() ([]luagen.BlockType, error) {
	sleep, err := defs.NewCall(prefix, hue, block.Metadata{
		FuncName:    "sleep",
		HelpURLType: block.HelpURLPrefixAndFuncName,
		Tooltip:     block.FixedTooltip("Pause the program for the given number of seconds."),
	}, reservedArgs, block.Arg{Name: "TIME", Spec: "Number"})
	if err != nil {
		return nil, err
	}

	setLabel, err := defs.NewCall(prefix, hue, block.Metadata{
		FuncName:    "setComputerLabel",
		HelpURLType: block.HelpURLPrefixAndFuncName,
		Tooltip:     block.FixedTooltip("Set the computer's label."),
	}, reservedArgs, block.Arg{Name: "TEXT", Spec: "String"})
	if err != nil {
		return nil, err
	}

	return []luagen.BlockType{
		sleep,
		setLabel,
		newValue("time", block.OutputOf("Number"),
			"The time of day in the game world, in hours."),
		newValue("clock", block.OutputOf("Number"),
			"Seconds the computer has been running."),
		newValue("getComputerLabel", block.OutputOf("String"),
			"The computer's label, if one has been set."),
	}, nil
}

type valueBlock struct {
	luagen.NoDropdowns
	desc *block.Descriptor
}

func newValue(funcName string, out block.OutputSpec, tip string) *valueBlock {
	return &valueBlock{
		desc: block.MustNew(prefix, hue, block.Metadata{
			FuncName:    funcName,
			Output:      out,
			HelpURLType: block.HelpURLPrefixAndFuncName,
			Tooltip:     block.FixedTooltip(tip),
		}),
	}
}

func (b *valueBlock) Descriptor() *block.Descriptor { return b.desc }
func (b *valueBlock) ParamNames() []string          { return nil }
