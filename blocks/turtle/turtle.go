// Package turtle defines blocks for the turtle robot API: movement and
// turning, digging, slot selection, sensing and crafting.
package turtle

import (
	"fmt"
	"regexp"

	"github.com/blocklua-lang/blocklua/blocks/internal/defs"
	"github.com/blocklua-lang/blocklua/pkg/block"
	"github.com/blocklua-lang/blocklua/pkg/luagen"
	"github.com/blocklua-lang/blocklua/pkg/registry"
)

const (
	prefix = "turtle"
	hue    = 120
)

// Argument names starting with "turtle_" are reserved for the block set
// itself.
var reservedArgs = regexp.MustCompile(`^turtle_`)

// Options adjusts the block set at registration time.
type Options struct {
	// BaseHelpURL overrides the wiki root for derived help URLs.
	BaseHelpURL string
}

// Register adds the turtle block set to a registry.
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
	types := []luagen.BlockType{
		newMove("forward", "Move the turtle forward one square."),
		newMove("back", "Move the turtle backward one square."),
		newMove("up", "Move the turtle up one square."),
		newMove("down", "Move the turtle down one square."),
		newTurn(),
		newDig(),
		newSelect(),
		newDetect(),
		newGetFuelLevel(),
		newInspect(),
	}

	place, err := defs.NewCall(prefix, hue, block.Metadata{
		FuncName:    "place",
		HelpURLType: block.HelpURLPrefixAndFuncName,
		Tooltip:     block.FixedTooltip("Place the selected item in front of the turtle. Text becomes sign text."),
	}, reservedArgs, block.Arg{Name: "TEXT", Spec: "String"})
	if err != nil {
		return nil, err
	}
	types = append(types, place)

	craft, err := defs.NewCall(prefix, hue, block.Metadata{
		FuncName:    "craft",
		HelpURLType: block.HelpURLPrefixAndFuncName,
		Tooltip:     block.FixedTooltip("Craft items using the turtle's inventory, at most the given quantity."),
	}, reservedArgs, block.Arg{Name: "QUANTITY", Spec: "Number"})
	if err != nil {
		return nil, err
	}
	types = append(types, craft)

	return types, nil
}

// moveBlock is a parameterless movement statement.
type moveBlock struct {
	luagen.NoDropdowns
	desc *block.Descriptor
}

func newMove(funcName, tip string) *moveBlock {
	return &moveBlock{
		desc: block.MustNew(prefix, hue, block.Metadata{
			FuncName:    funcName,
			HelpURLType: block.HelpURLPrefixAndFuncName,
			Tooltip:     block.FixedTooltip(tip),
		}),
	}
}

func (b *moveBlock) Descriptor() *block.Descriptor { return b.desc }
func (b *moveBlock) ParamNames() []string          { return nil }

// directionBlock is a statement whose dropdown selects which API function is
// called. The dropdown contributes no call argument.
type directionBlock struct {
	desc    *block.Descriptor
	options []block.Option
}

func (b *directionBlock) Descriptor() *block.Descriptor { return b.desc }
func (b *directionBlock) ParamNames() []string          { return []string{"DIR"} }

func (b *directionBlock) Shape(host block.Builder) {
	host.AddDropdown("DIR", b.options)
}

// DropdownCode contributes nothing: the dropdown only selects the function.
func (b *directionBlock) DropdownCode(field block.Dropdown) (string, error) {
	return "", nil
}

func (b *directionBlock) LuaFuncName(host block.Block) (string, error) {
	f, ok := host.Field("DIR")
	if !ok {
		return "", fmt.Errorf("block %s is missing its DIR dropdown", b.desc.Name)
	}
	dd, ok := f.(block.Dropdown)
	if !ok {
		return "", fmt.Errorf("field DIR on block %s is not a dropdown", b.desc.Name)
	}
	return prefix + "." + dd.Value(), nil
}

func newTurn() *directionBlock {
	return &directionBlock{
		desc: block.MustNew(prefix, hue, block.Metadata{
			BlockName:    "turn",
			HelpURLType:  block.HelpURLPrefixAndDropdownValue,
			HelpDropdown: "DIR",
			Tooltip: block.ComputedTooltip(func(d *block.Descriptor) string {
				return "Turn the " + d.Prefix + " 90 degrees in the chosen direction."
			}),
		}),
		options: []block.Option{
			{Label: "turn left", Value: "turnLeft"},
			{Label: "turn right", Value: "turnRight"},
		},
	}
}

func newDig() *directionBlock {
	return &directionBlock{
		desc: block.MustNew(prefix, hue, block.Metadata{
			BlockName:    "dig",
			HelpURLType:  block.HelpURLPrefixAndDropdownValue,
			HelpDropdown: "DIR",
			Tooltip:      block.FixedTooltip("Dig the block in the chosen direction."),
		}),
		options: []block.Option{
			{Label: "dig in front", Value: "dig"},
			{Label: "dig above", Value: "digUp"},
			{Label: "dig below", Value: "digDown"},
		},
	}
}

// selectBlock picks an inventory slot; the dropdown value is the call
// argument.
type selectBlock struct {
	desc *block.Descriptor
}

func newSelect() *selectBlock {
	return &selectBlock{
		desc: block.MustNew(prefix, hue, block.Metadata{
			FuncName:    "select",
			HelpURLType: block.HelpURLPrefixAndFuncName,
			Tooltip:     block.FixedTooltip("Select the inventory slot later commands act on."),
		}),
	}
}

func (b *selectBlock) Descriptor() *block.Descriptor { return b.desc }
func (b *selectBlock) ParamNames() []string          { return []string{"SLOT"} }

func (b *selectBlock) Shape(host block.Builder) {
	options := make([]block.Option, 16)
	for i := range options {
		n := fmt.Sprintf("%d", i+1)
		options[i] = block.Option{Label: "slot " + n, Value: n}
	}
	host.AddDropdown("SLOT", options)
}

func (b *selectBlock) DropdownCode(field block.Dropdown) (string, error) {
	return field.Value(), nil
}

// valueBlock is a parameterless expression.
type valueBlock struct {
	luagen.NoDropdowns
	desc *block.Descriptor
}

func (b *valueBlock) Descriptor() *block.Descriptor { return b.desc }
func (b *valueBlock) ParamNames() []string          { return nil }

func newDetect() *valueBlock {
	return &valueBlock{
		desc: block.MustNew(prefix, hue, block.Metadata{
			FuncName:    "detect",
			Output:      block.OutputOf("Boolean"),
			HelpURLType: block.HelpURLPrefixAndFuncName,
			Tooltip:     block.FixedTooltip("True when there is a solid block in front of the turtle."),
		}),
	}
}

func newGetFuelLevel() *valueBlock {
	return &valueBlock{
		desc: block.MustNew(prefix, hue, block.Metadata{
			FuncName:    "getFuelLevel",
			Output:      block.OutputOf("Number"),
			HelpURLType: block.HelpURLPrefixAndFuncName,
			Tooltip:     block.FixedTooltip("The number of moves the turtle can still make."),
		}),
	}
}

func newInspect() *valueBlock {
	return &valueBlock{
		desc: block.MustNew(prefix, hue, block.Metadata{
			FuncName:        "inspect",
			MultipleOutputs: 1,
			HelpURLType:     block.HelpURLPrefixAndFuncName,
			Tooltip:         block.FixedTooltip("Inspect the block in front: success flag plus block information."),
		}),
	}
}
