package block

// InputKind distinguishes the slot kinds a host block can carry.
type InputKind int

const (
	// InputValue accepts an expression-producing block.
	InputValue InputKind = iota
	// InputStatement accepts a chain of statement blocks.
	InputStatement
	// InputDummy carries fields only.
	InputDummy
)

// String returns the string representation of the input kind
func (k InputKind) String() string {
	switch k {
	case InputValue:
		return "value"
	case InputStatement:
		return "statement"
	case InputDummy:
		return "dummy"
	default:
		return "unknown"
	}
}

// Block is the host editor's mutable block object. Descriptors configure it
// during Init and code generation inspects it; this package never implements
// it.
type Block interface {
	SetColour(hue int)
	SetInputsInline(inline bool)
	SetTooltip(text string)
	SetTooltipFunc(fn func() string)
	SetHelpURL(url string)
	SetHelpURLFunc(fn func() string)
	SetPreviousStatement(enabled bool)
	SetNextStatement(enabled bool)
	// SetOutput enables or disables the output connection. A nil checks
	// slice accepts any type.
	SetOutput(enabled bool, checks []string)
	HasOutput() bool
	// Input looks up an input slot by name.
	Input(name string) (Input, bool)
	// Field looks up an in-block field by title.
	Field(name string) (Field, bool)
}

// Input is a slot on a host block.
type Input interface {
	Name() string
	Kind() InputKind
}

// Field is an in-block field such as a label or dropdown.
type Field interface {
	Name() string
}

// Dropdown is a selectable field; only the selected value is inspectable
// from this side of the host boundary.
type Dropdown interface {
	Field
	Value() string
}

// Option is one dropdown choice: display label plus the value the dropdown
// reports when it is selected.
type Option struct {
	Label string
	Value string
}

// Builder is implemented by host blocks that let a block-type definition
// attach its input slots and fields. Shaping is the definition's job, not
// the descriptor's.
type Builder interface {
	AddValueInput(name string, checks ...string)
	AddStatementInput(name string)
	AddDropdown(name string, options []Option)
}

// Shaped is implemented by block-type definitions that attach inputs or
// fields to their host block.
type Shaped interface {
	Shape(b Builder)
}
