// Package workspace is a headless implementation of the host block object:
// enough of an editor's block model to load a saved program, configure block
// instances from their descriptors, and drive code generation from tests and
// the CLI. It renders nothing and owns no widgets.
package workspace

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/blocklua-lang/blocklua/pkg/block"
	"github.com/blocklua-lang/blocklua/pkg/luagen"
)

// Block is one block instance in a workspace. It satisfies block.Block for
// descriptor initialization and block.Builder for shaping.
type Block struct {
	id       string
	def      luagen.BlockType

	colour    int
	inline    bool
	tooltip   string
	tooltipFn func() string
	helpURL   string
	helpURLFn func() string

	previous     bool
	next         bool
	hasOutput    bool
	outputChecks []string

	inputs       []*Input
	inputsByName map[string]*Input
	fields       map[string]*dropdownField

	nextBlock *Block
}

// NewBlock instantiates a block of the given type: a fresh host object,
// initialized from the type's descriptor and shaped by the type.
func NewBlock(def luagen.BlockType) (*Block, error) {
	b := &Block{
		id:           uuid.NewString(),
		def:          def,
		inputsByName: make(map[string]*Input),
		fields:       make(map[string]*dropdownField),
	}
	if err := def.Descriptor().Init(b); err != nil {
		return nil, err
	}
	if shaped, ok := def.(block.Shaped); ok {
		shaped.Shape(b)
	}
	return b, nil
}

// ID returns the instance identifier.
func (b *Block) ID() string { return b.id }

// Type returns the block-type definition this instance was built from.
func (b *Block) Type() luagen.BlockType { return b.def }

// Next returns the statement block chained after this one, if any.
func (b *Block) Next() *Block { return b.nextBlock }

// Colour returns the applied hue.
func (b *Block) Colour() int { return b.colour }

// InputsInline reports whether inline-input layout was enabled.
func (b *Block) InputsInline() bool { return b.inline }

// HasPrevious reports whether the previous-statement connector is enabled.
func (b *Block) HasPrevious() bool { return b.previous }

// HasNext reports whether the next-statement connector is enabled.
func (b *Block) HasNext() bool { return b.next }

// OutputChecks returns the output type constraint; nil means unconstrained.
func (b *Block) OutputChecks() []string { return b.outputChecks }

// Tooltip evaluates the block's tooltip text.
func (b *Block) Tooltip() string {
	if b.tooltipFn != nil {
		return b.tooltipFn()
	}
	return b.tooltip
}

// HelpURL evaluates the block's help URL.
func (b *Block) HelpURL() string {
	if b.helpURLFn != nil {
		return b.helpURLFn()
	}
	return b.helpURL
}

// block.Block implementation.

func (b *Block) SetColour(hue int)             { b.colour = hue }
func (b *Block) SetInputsInline(inline bool)   { b.inline = inline }
func (b *Block) SetTooltip(text string)        { b.tooltip = text; b.tooltipFn = nil }
func (b *Block) SetTooltipFunc(fn func() string) { b.tooltipFn = fn }
func (b *Block) SetHelpURL(url string)         { b.helpURL = url; b.helpURLFn = nil }
func (b *Block) SetHelpURLFunc(fn func() string) { b.helpURLFn = fn }
func (b *Block) SetPreviousStatement(enabled bool) { b.previous = enabled }
func (b *Block) SetNextStatement(enabled bool)     { b.next = enabled }

func (b *Block) SetOutput(enabled bool, checks []string) {
	b.hasOutput = enabled
	b.outputChecks = checks
}

func (b *Block) HasOutput() bool { return b.hasOutput }

func (b *Block) Input(name string) (block.Input, bool) {
	in, ok := b.inputsByName[name]
	return in, ok
}

func (b *Block) Field(name string) (block.Field, bool) {
	f, ok := b.fields[name]
	return f, ok
}

// block.Builder implementation.

func (b *Block) AddValueInput(name string, checks ...string) {
	in := &Input{name: name, kind: block.InputValue, checks: checks}
	b.inputs = append(b.inputs, in)
	b.inputsByName[name] = in
}

func (b *Block) AddStatementInput(name string) {
	in := &Input{name: name, kind: block.InputStatement}
	b.inputs = append(b.inputs, in)
	b.inputsByName[name] = in
}

func (b *Block) AddDropdown(name string, options []block.Option) {
	f := &dropdownField{name: name, options: options}
	if len(options) > 0 {
		f.value = options[0].Value
	}
	b.fields[name] = f
}

// Wiring.

// SetDropdown selects a dropdown value by field name.
func (b *Block) SetDropdown(name, value string) error {
	f, ok := b.fields[name]
	if !ok {
		return fmt.Errorf("block %s has no dropdown %q", b.def.Descriptor().Name, name)
	}
	for _, opt := range f.options {
		if opt.Value == value {
			f.value = value
			return nil
		}
	}
	return fmt.Errorf("dropdown %q on block %s has no option %q", name, b.def.Descriptor().Name, value)
}

// ConnectValue plugs an expression block into a value input.
func (b *Block) ConnectValue(inputName string, child *Block) error {
	in, ok := b.inputsByName[inputName]
	if !ok {
		return fmt.Errorf("block %s has no input %q", b.def.Descriptor().Name, inputName)
	}
	if in.kind != block.InputValue {
		return fmt.Errorf("input %q on block %s is not a value input", inputName, b.def.Descriptor().Name)
	}
	if !child.HasOutput() {
		return fmt.Errorf("block %s has no output connection and cannot feed input %q",
			child.def.Descriptor().Name, inputName)
	}
	in.child = child
	return nil
}

// SetNext chains a statement block after this one.
func (b *Block) SetNext(next *Block) error {
	if !b.next {
		return fmt.Errorf("block %s has no next connector", b.def.Descriptor().Name)
	}
	if !next.previous {
		return fmt.Errorf("block %s has no previous connector", next.def.Descriptor().Name)
	}
	b.nextBlock = next
	return nil
}

// Input is a slot on a workspace block.
type Input struct {
	name   string
	kind   block.InputKind
	checks []string
	child  *Block
}

func (i *Input) Name() string          { return i.name }
func (i *Input) Kind() block.InputKind { return i.kind }

// Child returns the block plugged into this input, if any.
func (i *Input) Child() *Block { return i.child }

type dropdownField struct {
	name    string
	options []block.Option
	value   string
}

func (f *dropdownField) Name() string  { return f.name }
func (f *dropdownField) Value() string { return f.value }
