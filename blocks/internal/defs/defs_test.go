package defs

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blocklua-lang/blocklua/pkg/block"
)

func TestNewCallRejectsReservedArgNames(t *testing.T) {
	reserved := regexp.MustCompile(`^turtle_`)

	_, err := NewCall("turtle", 120, block.Metadata{FuncName: "drop"}, reserved,
		block.Arg{Name: "turtle_count", Spec: "Number"})
	require.Error(t, err)

	var defErr *block.DefinitionError
	require.True(t, errors.As(err, &defErr))
	assert.Equal(t, block.ErrIllegalArgumentName, defErr.Code)
}

func TestCallParamsFollowDeclarationOrder(t *testing.T) {
	call, err := NewCall("turtle", 120, block.Metadata{FuncName: "transferTo"}, nil,
		block.Arg{Name: "SLOT", Spec: "Number"},
		block.Arg{Name: "COUNT", Spec: "Number"})
	require.NoError(t, err)

	assert.Equal(t, []string{"SLOT", "COUNT"}, call.ParamNames())
	assert.Equal(t, "turtle_transfer_to", call.Descriptor().Name)
}
