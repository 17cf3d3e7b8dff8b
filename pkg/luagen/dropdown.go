package luagen

import "github.com/blocklua-lang/blocklua/pkg/block"

// DropdownCoder maps a dropdown field's selected value to a Lua source
// fragment. Returning an empty fragment is valid: the dropdown then selects
// behavior without contributing a call argument.
type DropdownCoder interface {
	DropdownCode(field block.Dropdown) (string, error)
}

// NoDropdowns is the base hook for block types without dropdown parameters.
// Embedding it satisfies BlockType; invoking it is a definition error.
type NoDropdowns struct{}

// DropdownCode always fails. Block types with a dropdown parameter must
// supply their own mapping.
func (NoDropdowns) DropdownCode(field block.Dropdown) (string, error) {
	return "", block.NewDefinitionError(block.KindNotImplemented, block.ErrDropdownCodeMissing, "",
		"dropdown code hook not implemented for field %q", field.Name())
}
