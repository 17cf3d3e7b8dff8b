// Package defs carries the shared building blocks the concrete block sets
// are assembled from.
package defs

import (
	"regexp"

	"github.com/blocklua-lang/blocklua/pkg/block"
	"github.com/blocklua-lang/blocklua/pkg/luagen"
)

// Call is a plain API-call block: every parameter is a value input, in the
// order the arguments were declared. Block sets use it for functions without
// dropdowns.
type Call struct {
	luagen.NoDropdowns
	desc *block.Descriptor
	args []block.Arg
}

// NewCall builds a Call definition. Argument names are validated against the
// block set's reserved-name pattern before the descriptor is derived.
func NewCall(prefix string, hue int, meta block.Metadata, reserved *regexp.Regexp, args ...block.Arg) (*Call, error) {
	if reserved != nil {
		if err := block.AssertNoReservedNames(args, reserved); err != nil {
			return nil, err
		}
	}
	desc, err := block.New(prefix, hue, meta)
	if err != nil {
		return nil, err
	}
	return &Call{desc: desc, args: args}, nil
}

// Descriptor returns the block-type descriptor.
func (c *Call) Descriptor() *block.Descriptor { return c.desc }

// ParamNames returns the argument names in declared order.
func (c *Call) ParamNames() []string {
	names := make([]string, len(c.args))
	for i, arg := range c.args {
		names[i] = arg.Name
	}
	return names
}

// Shape attaches one value input per argument. A string spec becomes the
// input's type check.
func (c *Call) Shape(b block.Builder) {
	for _, arg := range c.args {
		if check, ok := arg.Spec.(string); ok && check != "" {
			b.AddValueInput(arg.Name, check)
		} else {
			b.AddValueInput(arg.Name)
		}
	}
}
