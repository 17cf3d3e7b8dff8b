package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blocklua-lang/blocklua/pkg/block"
	"github.com/blocklua-lang/blocklua/pkg/luagen"
)

// stmtType is a statement block calling prefix.funcName with value inputs.
type stmtType struct {
	luagen.NoDropdowns
	desc   *block.Descriptor
	inputs []string
}

func (t *stmtType) Descriptor() *block.Descriptor { return t.desc }
func (t *stmtType) ParamNames() []string          { return t.inputs }

func (t *stmtType) Shape(b block.Builder) {
	for _, name := range t.inputs {
		b.AddValueInput(name)
	}
}

// exprType is a parameterless expression block.
type exprType struct {
	luagen.NoDropdowns
	desc *block.Descriptor
}

func (t *exprType) Descriptor() *block.Descriptor { return t.desc }
func (t *exprType) ParamNames() []string          { return nil }

// dropType selects its function via a dropdown.
type dropType struct {
	desc *block.Descriptor
}

func (t *dropType) Descriptor() *block.Descriptor { return t.desc }
func (t *dropType) ParamNames() []string          { return []string{"DIR"} }

func (t *dropType) Shape(b block.Builder) {
	b.AddDropdown("DIR", []block.Option{
		{Label: "left", Value: "turnLeft"},
		{Label: "right", Value: "turnRight"},
	})
}

func (t *dropType) DropdownCode(block.Dropdown) (string, error) { return "", nil }

func (t *dropType) LuaFuncName(host block.Block) (string, error) {
	f, _ := host.Field("DIR")
	return "turtle." + f.(block.Dropdown).Value(), nil
}

func newStmt(t *testing.T, funcName string, inputs ...string) *stmtType {
	desc, err := block.New("turtle", 120, block.Metadata{FuncName: funcName})
	require.NoError(t, err)
	return &stmtType{desc: desc, inputs: inputs}
}

func newExpr(t *testing.T, funcName string) *exprType {
	desc, err := block.New("turtle", 120, block.Metadata{
		FuncName: funcName,
		Output:   block.OutputOf("Number"),
	})
	require.NoError(t, err)
	return &exprType{desc: desc}
}

func newDrop(t *testing.T) *dropType {
	desc, err := block.New("turtle", 120, block.Metadata{BlockName: "turn"})
	require.NoError(t, err)
	return &dropType{desc: desc}
}

func TestNewBlockConfiguresFromDescriptor(t *testing.T) {
	b, err := NewBlock(newStmt(t, "forward"))
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID())
	assert.Equal(t, 120, b.Colour())
	assert.True(t, b.InputsInline())
	assert.True(t, b.HasPrevious())
	assert.True(t, b.HasNext())
	assert.False(t, b.HasOutput())
}

func TestStatementChainGeneration(t *testing.T) {
	first, err := NewBlock(newDrop(t))
	require.NoError(t, err)
	require.NoError(t, first.SetDropdown("DIR", "turnRight"))

	second, err := NewBlock(newStmt(t, "forward"))
	require.NoError(t, err)
	require.NoError(t, first.SetNext(second))

	ws := New()
	ws.Add(first)

	code, err := NewCodeGen(nil).Program(ws)
	require.NoError(t, err)
	assert.Equal(t, "turtle.turnRight()\nturtle.forward()\n", code)
}

func TestValueInputGeneration(t *testing.T) {
	sleep, err := NewBlock(newStmt(t, "refuel", "COUNT"))
	require.NoError(t, err)

	level, err := NewBlock(newExpr(t, "getItemCount"))
	require.NoError(t, err)
	require.NoError(t, sleep.ConnectValue("COUNT", level))

	ws := New()
	ws.Add(sleep)

	code, err := NewCodeGen(nil).Program(ws)
	require.NoError(t, err)
	assert.Equal(t, "turtle.refuel(turtle.getItemCount())\n", code)
}

func TestEmptyValueInputGeneratesNil(t *testing.T) {
	b, err := NewBlock(newStmt(t, "refuel", "COUNT"))
	require.NoError(t, err)

	ws := New()
	ws.Add(b)

	code, err := NewCodeGen(nil).Program(ws)
	require.NoError(t, err)
	assert.Equal(t, "turtle.refuel(nil)\n", code)
}

func TestDisconnectedExpressionIsSkipped(t *testing.T) {
	orphan, err := NewBlock(newExpr(t, "getFuelLevel"))
	require.NoError(t, err)

	stmt, err := NewBlock(newStmt(t, "forward"))
	require.NoError(t, err)

	ws := New()
	ws.Add(orphan)
	ws.Add(stmt)

	code, err := NewCodeGen(nil).Program(ws)
	require.NoError(t, err)
	assert.Equal(t, "turtle.forward()\n", code)
}

func TestConnectValueValidation(t *testing.T) {
	stmt, err := NewBlock(newStmt(t, "refuel", "COUNT"))
	require.NoError(t, err)

	other, err := NewBlock(newStmt(t, "forward"))
	require.NoError(t, err)

	t.Run("unknown input", func(t *testing.T) {
		expr, err := NewBlock(newExpr(t, "getFuelLevel"))
		require.NoError(t, err)
		assert.Error(t, stmt.ConnectValue("MISSING", expr))
	})

	t.Run("statement block cannot feed a value input", func(t *testing.T) {
		assert.Error(t, stmt.ConnectValue("COUNT", other))
	})
}

func TestSetDropdownValidation(t *testing.T) {
	b, err := NewBlock(newDrop(t))
	require.NoError(t, err)

	assert.Error(t, b.SetDropdown("MISSING", "x"))
	assert.Error(t, b.SetDropdown("DIR", "sideways"))
	assert.NoError(t, b.SetDropdown("DIR", "turnLeft"))
}
