package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blocklua-lang/blocklua/pkg/block"
)

func TestTableRender(t *testing.T) {
	var buf strings.Builder
	table := NewTable(&buf, []string{"BLOCK", "KIND"}, true)
	table.AddRow("turtle_forward", "statement")
	table.AddRow("turtle_detect", "expression")
	table.Render()

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "BLOCK")
	assert.Contains(t, lines[0], "KIND")
	assert.Contains(t, lines[2], "turtle_forward")
	assert.Contains(t, lines[3], "turtle_detect")

	// Columns align on the widest cell.
	assert.True(t, strings.Index(lines[2], "statement") == strings.Index(lines[3], "expression"))
}

func TestTableNoHeaders(t *testing.T) {
	var buf strings.Builder
	NewTable(&buf, nil, true).Render()
	assert.Empty(t, buf.String())
}

func TestPrintDefinitionError(t *testing.T) {
	var buf strings.Builder
	err := block.NewDefinitionError(block.KindConfiguration, block.ErrMissingFuncName,
		"turtle_turn", "funcName not defined")
	PrintError(&buf, err, true)

	out := buf.String()
	assert.Contains(t, out, "DEF001")
	assert.Contains(t, out, "turtle_turn")
	assert.Contains(t, out, "funcName not defined")
}

func TestPrintPlainError(t *testing.T) {
	var buf strings.Builder
	PrintError(&buf, errors.New("boom"), true)
	assert.Contains(t, buf.String(), "boom")
}
