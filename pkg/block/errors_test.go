package block

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionErrorFormat(t *testing.T) {
	err := NewDefinitionError(KindInvariant, ErrUnknownParameter, "turtle_place",
		"parameter %q matches neither an input nor a dropdown title", "TEXT")
	assert.Equal(t,
		`turtle_place: GEN002: parameter "TEXT" matches neither an input nor a dropdown title`,
		err.Error())

	noBlock := NewDefinitionError(KindConfiguration, ErrMissingFuncName, "", "funcName not defined")
	assert.Equal(t, "DEF001: funcName not defined", noBlock.Error())
}

func TestDefinitionErrorJSON(t *testing.T) {
	err := NewDefinitionError(KindNotImplemented, ErrDropdownCodeMissing, "turtle_turn",
		"dropdown code hook not implemented")

	payload, merr := json.Marshal(err)
	require.NoError(t, merr)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "not_implemented", decoded["kind"])
	assert.Equal(t, "GEN001", decoded["code"])
	assert.Equal(t, "turtle_turn", decoded["block"])
}
