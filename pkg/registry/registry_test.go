package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blocklua-lang/blocklua/pkg/block"
	"github.com/blocklua-lang/blocklua/pkg/luagen"
)

type stubType struct {
	luagen.NoDropdowns
	desc *block.Descriptor
}

func (t *stubType) Descriptor() *block.Descriptor { return t.desc }
func (t *stubType) ParamNames() []string          { return nil }

func stub(t *testing.T, funcName string) *stubType {
	desc, err := block.New("turtle", 120, block.Metadata{FuncName: funcName})
	require.NoError(t, err)
	return &stubType{desc: desc}
}

func TestRegisterAndLookup(t *testing.T) {
	r := New(nil)

	require.NoError(t, r.Register(stub(t, "forward")))
	require.NoError(t, r.Register(stub(t, "back")))

	def, ok := r.Lookup("turtle_forward")
	require.True(t, ok)
	assert.Equal(t, "turtle_forward", def.Descriptor().Name)

	_, ok = r.Lookup("turtle_missing")
	assert.False(t, ok)
	assert.Equal(t, 2, r.Len())
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	r := New(nil)
	require.NoError(t, r.Register(stub(t, "forward")))

	err := r.Register(stub(t, "forward"))
	require.Error(t, err)

	var defErr *block.DefinitionError
	require.True(t, errors.As(err, &defErr))
	assert.Equal(t, block.ErrDuplicateBlock, defErr.Code)
	assert.Equal(t, "turtle_forward", defErr.Block)
}

func TestNamesSorted(t *testing.T) {
	r := New(nil)
	require.NoError(t, r.Register(stub(t, "up")))
	require.NoError(t, r.Register(stub(t, "back")))
	require.NoError(t, r.Register(stub(t, "forward")))

	assert.Equal(t, []string{"turtle_back", "turtle_forward", "turtle_up"}, r.Names())

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, "turtle_back", all[0].Descriptor().Name)
}
