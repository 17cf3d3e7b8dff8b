// Package luagen turns configured block instances into Lua source text. It
// owns the ordered parameter walk and the call-expression assembly; recursion
// into child blocks is delegated to a host-provided Generator.
package luagen

import (
	"strings"

	"github.com/blocklua-lang/blocklua/pkg/block"
)

// Order is a precedence token for generated Lua expressions. The values
// mirror the host generator's ordering table; this package consumes them, it
// does not own the precedence machinery.
type Order int

const (
	// OrderAtomic is a literal or identifier.
	OrderAtomic Order = 0
	// OrderHigh is a function call, which binds at maximum precedence so
	// no caller ever needs to add parentheses around it.
	OrderHigh Order = 1
	// OrderNone means no enclosing operator: the requested fragment must
	// arrive fully self-contained.
	OrderNone Order = 99
)

// Generator is the host's recursive code generator: it returns the code
// already generated for the subtree feeding the named value input.
type Generator interface {
	ValueToCode(host block.Block, inputName string, order Order) (string, error)
}

// BlockType is a complete block-type definition: the descriptor, the ordered
// parameter list, and the dropdown-to-code hook.
type BlockType interface {
	Descriptor() *block.Descriptor

	// ParamNames returns the block's parameter names in declared order.
	// Each name refers to either a value input or a dropdown field title.
	ParamNames() []string

	DropdownCoder
}

// LuaNamer is implemented by block types whose Lua call target depends on
// block state, typically a function-selecting dropdown.
type LuaNamer interface {
	LuaFuncName(host block.Block) (string, error)
}

// Result is one generated fragment. Expression results carry a precedence
// token; statement results are newline-terminated lines of code.
type Result struct {
	Code         string
	Order        Order
	IsExpression bool
}

// ExpressionFor walks the block type's parameters in declared order and
// assembles a single Lua function-call expression. Value inputs defer to the
// host generator; dropdown titles defer to the type's DropdownCode hook, and
// an empty hook result contributes no argument.
func ExpressionFor(t BlockType, host block.Block, gen Generator) (string, error) {
	desc := t.Descriptor()

	funcName := desc.QualifiedFuncName()
	if namer, ok := t.(LuaNamer); ok {
		name, err := namer.LuaFuncName(host)
		if err != nil {
			return "", err
		}
		funcName = name
	}

	var args []string
	for _, param := range t.ParamNames() {
		if in, ok := host.Input(param); ok {
			if in.Kind() != block.InputValue {
				return "", block.NewDefinitionError(block.KindInvariant, block.ErrStatementParameter,
					desc.Name, "parameter %q is a %s input, not a value input", param, in.Kind())
			}
			code, err := gen.ValueToCode(host, param, OrderNone)
			if err != nil {
				return "", err
			}
			args = append(args, code)
			continue
		}

		f, ok := host.Field(param)
		if !ok {
			return "", block.NewDefinitionError(block.KindInvariant, block.ErrUnknownParameter,
				desc.Name, "parameter %q matches neither an input nor a dropdown title", param)
		}
		dd, ok := f.(block.Dropdown)
		if !ok {
			return "", block.NewDefinitionError(block.KindInvariant, block.ErrNotADropdown,
				desc.Name, "field %q is not a dropdown", param)
		}
		code, err := t.DropdownCode(dd)
		if err != nil {
			return "", err
		}
		if code != "" {
			args = append(args, code)
		}
	}

	return funcName + "(" + strings.Join(args, ", ") + ")", nil
}

// CodeFor generates the code for one block instance. Blocks with an output
// connection yield an expression at call precedence; everything else yields
// a standalone statement line.
func CodeFor(t BlockType, host block.Block, gen Generator) (Result, error) {
	expr, err := ExpressionFor(t, host, gen)
	if err != nil {
		return Result{}, err
	}

	if host.HasOutput() {
		return Result{Code: expr, Order: OrderHigh, IsExpression: true}, nil
	}
	return Result{Code: expr + "\n"}, nil
}
