// Package block defines metadata-driven descriptors for visual programming
// blocks that generate Lua source for a game scripting API. A Descriptor
// derives the canonical block-type name from its metadata and configures a
// host-provided block object; code generation lives in pkg/luagen.
package block

// Connections is a bitmask of statement connectors on a block.
// The zero value leaves the choice to connector defaulting; ConnNone
// explicitly suppresses both connectors.
type Connections int8

const (
	ConnUnset    Connections = 0
	ConnPrevious Connections = 1 << 0
	ConnNext     Connections = 1 << 1
	ConnBoth     Connections = ConnPrevious | ConnNext
	ConnNone     Connections = -1
)

// has reports whether bit is set. Only meaningful for non-negative values.
func (c Connections) has(bit Connections) bool {
	return c > 0 && c&bit != 0
}

// HelpURLType selects how a block's help URL is derived when no explicit
// HelpURL override is supplied.
type HelpURLType int

const (
	// HelpURLUnset leaves the help URL alone.
	HelpURLUnset HelpURLType = iota
	// HelpURLPrefixAndFuncName points at BaseHelpURL + Prefix + "." + FuncName.
	HelpURLPrefixAndFuncName
	// HelpURLPrefixAndDropdownValue points at the wiki page for whichever
	// function the block's dropdown currently selects. Requires HelpDropdown.
	HelpURLPrefixAndDropdownValue
)

// OutputSpec declares a block's output connection. The zero value means "no
// output declared"; Declared with empty Checks means any type is accepted.
type OutputSpec struct {
	Declared bool
	Checks   []string
}

// OutputAny declares a type-unconstrained output.
func OutputAny() OutputSpec {
	return OutputSpec{Declared: true}
}

// OutputOf declares an output constrained to the given Lua value types.
func OutputOf(types ...string) OutputSpec {
	return OutputSpec{Declared: true, Checks: types}
}

// Tooltip is either a FixedTooltip or a ComputedTooltip.
type Tooltip interface {
	tooltip()
}

// FixedTooltip is static tooltip text.
type FixedTooltip string

func (FixedTooltip) tooltip() {}

// ComputedTooltip is evaluated each time the tooltip is shown, so the text
// can depend on the block's current state.
type ComputedTooltip func(d *Descriptor) string

func (ComputedTooltip) tooltip() {}

// Metadata is the immutable record a block-type definition supplies to
// describe itself. FuncName is required unless BlockName is given.
type Metadata struct {
	// BlockName is an explicit canonical-name suffix. When set, FuncName is
	// not consulted for naming.
	BlockName string

	// FuncName is the Lua API function the block wraps (mixedCase).
	FuncName string

	// Output declares the block's output connection, making it an
	// expression block.
	Output OutputSpec

	// Connections selects statement connectors. Leave unset to let
	// connector defaulting decide.
	Connections Connections

	// MultipleOutputs is the count of additional outputs beyond the first,
	// for API functions returning several values.
	MultipleOutputs int

	Tooltip Tooltip

	HelpURLType HelpURLType

	// HelpDropdown names the dropdown field consulted by
	// HelpURLPrefixAndDropdownValue.
	HelpDropdown string

	// HelpURL overrides any derived help URL.
	HelpURL string
}
