package block

import (
	"encoding/json"
	"fmt"
)

// Kind classifies a definition failure.
type Kind int

const (
	// KindConfiguration marks a malformed block-type definition.
	KindConfiguration Kind = iota
	// KindNotImplemented marks a required hook the block type did not supply.
	KindNotImplemented
	// KindInvariant marks a code-generation precondition that did not hold.
	KindInvariant
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindNotImplemented:
		return "not_implemented"
	case KindInvariant:
		return "invariant"
	default:
		return "unknown"
	}
}

// Error code constants organized by phase
// DEF001-DEF099: definition/registration errors
// GEN001-GEN099: code-generation errors
const (
	ErrMissingFuncName      = "DEF001"
	ErrIllegalArgumentName  = "DEF002"
	ErrDuplicateBlock       = "DEF003"
	ErrMissingHelpDropdown  = "DEF004"
	ErrDropdownCodeMissing  = "GEN001"
	ErrUnknownParameter     = "GEN002"
	ErrStatementParameter   = "GEN003"
	ErrNotADropdown         = "GEN004"
	ErrUnregisteredBlock    = "GEN005"
)

// DefinitionError is a programmer-error assertion raised while registering a
// block type or generating code from one. It always indicates a malformed
// block set, never a runtime condition the editor user can recover from.
type DefinitionError struct {
	Kind    Kind   // configuration, not_implemented, invariant
	Code    string // "DEF001", "GEN002", ...
	Block   string // canonical block name when known
	Message string // human-readable message
}

// Error implements the error interface
func (e *DefinitionError) Error() string {
	if e.Block != "" {
		return fmt.Sprintf("%s: %s: %s", e.Block, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MarshalJSON implements json.Marshaler
func (e *DefinitionError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind    string `json:"kind"`
		Code    string `json:"code"`
		Block   string `json:"block,omitempty"`
		Message string `json:"message"`
	}{
		Kind:    e.Kind.String(),
		Code:    e.Code,
		Block:   e.Block,
		Message: e.Message,
	})
}

// NewDefinitionError creates a new DefinitionError
func NewDefinitionError(kind Kind, code, blockName, format string, args ...any) *DefinitionError {
	return &DefinitionError{
		Kind:    kind,
		Code:    code,
		Block:   blockName,
		Message: fmt.Sprintf(format, args...),
	}
}
