package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hostFake records every host mutation a descriptor applies.
type hostFake struct {
	colour      int
	inline      bool
	tooltip     string
	tooltipFn   func() string
	helpURL     string
	helpURLFn   func() string
	previous    bool
	next        bool
	output      bool
	checks      []string
	fields      map[string]Field
	inputs      map[string]Input
}

func newHostFake() *hostFake {
	return &hostFake{
		fields: make(map[string]Field),
		inputs: make(map[string]Input),
	}
}

func (h *hostFake) SetColour(hue int)                  { h.colour = hue }
func (h *hostFake) SetInputsInline(inline bool)        { h.inline = inline }
func (h *hostFake) SetTooltip(text string)             { h.tooltip = text }
func (h *hostFake) SetTooltipFunc(fn func() string)    { h.tooltipFn = fn }
func (h *hostFake) SetHelpURL(url string)              { h.helpURL = url }
func (h *hostFake) SetHelpURLFunc(fn func() string)    { h.helpURLFn = fn }
func (h *hostFake) SetPreviousStatement(enabled bool)  { h.previous = enabled }
func (h *hostFake) SetNextStatement(enabled bool)      { h.next = enabled }
func (h *hostFake) SetOutput(enabled bool, checks []string) {
	h.output = enabled
	h.checks = checks
}
func (h *hostFake) HasOutput() bool { return h.output }
func (h *hostFake) Input(name string) (Input, bool) {
	in, ok := h.inputs[name]
	return in, ok
}
func (h *hostFake) Field(name string) (Field, bool) {
	f, ok := h.fields[name]
	return f, ok
}

type dropdownFake struct {
	name  string
	value string
}

func (f *dropdownFake) Name() string  { return f.name }
func (f *dropdownFake) Value() string { return f.value }

func TestNewDerivesCanonicalName(t *testing.T) {
	d, err := New("turtle", 120, Metadata{FuncName: "turnLeft"})
	require.NoError(t, err)
	assert.Equal(t, "turtle_turn_left", d.Name)
	assert.Equal(t, "turtle.turnLeft", d.QualifiedFuncName())
	assert.Equal(t, DefaultBaseHelpURL, d.BaseHelpURL)
}

func TestNewRejectsEmptyMetadata(t *testing.T) {
	_, err := New("turtle", 120, Metadata{})
	require.Error(t, err)
}

func TestInitAppliesVisualState(t *testing.T) {
	d, err := New("turtle", 120, Metadata{
		FuncName: "forward",
		Tooltip:  FixedTooltip("Move forward."),
	})
	require.NoError(t, err)

	host := newHostFake()
	require.NoError(t, d.Init(host))

	assert.Equal(t, 120, host.colour)
	assert.True(t, host.inline)
	assert.Equal(t, "Move forward.", host.tooltip)
}

func TestInitConnectorDefaulting(t *testing.T) {
	t.Run("statement block gets both connectors", func(t *testing.T) {
		d, err := New("turtle", 120, Metadata{FuncName: "forward"})
		require.NoError(t, err)

		host := newHostFake()
		require.NoError(t, d.Init(host))
		assert.True(t, host.previous)
		assert.True(t, host.next)
		assert.False(t, host.output)
	})

	t.Run("explicit none leaves both disabled", func(t *testing.T) {
		d, err := New("turtle", 120, Metadata{FuncName: "forward", Connections: ConnNone})
		require.NoError(t, err)

		host := newHostFake()
		require.NoError(t, d.Init(host))
		assert.False(t, host.previous)
		assert.False(t, host.next)
	})

	t.Run("idempotent across fresh descriptors with identical metadata", func(t *testing.T) {
		meta := Metadata{FuncName: "forward"}
		for i := 0; i < 3; i++ {
			d, err := New("turtle", 120, meta)
			require.NoError(t, err)

			host := newHostFake()
			require.NoError(t, d.Init(host))
			assert.True(t, host.previous)
			assert.True(t, host.next)
		}
	})
}

func TestInitOutput(t *testing.T) {
	d, err := New("turtle", 120, Metadata{FuncName: "detect", Output: OutputOf("Boolean")})
	require.NoError(t, err)

	host := newHostFake()
	require.NoError(t, d.Init(host))
	assert.True(t, host.output)
	assert.Equal(t, []string{"Boolean"}, host.checks)
	assert.False(t, host.previous)
	assert.False(t, host.next)
}

func TestInitMultipleOutputs(t *testing.T) {
	d, err := New("turtle", 120, Metadata{FuncName: "inspect", MultipleOutputs: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, d.ExtraOutputs)

	host := newHostFake()
	require.NoError(t, d.Init(host))
	assert.True(t, host.output)
	assert.Nil(t, host.checks)
}

func TestInitHelpURL(t *testing.T) {
	t.Run("derived from prefix and funcName", func(t *testing.T) {
		d, err := New("turtle", 120, Metadata{
			FuncName:    "getFuelLevel",
			HelpURLType: HelpURLPrefixAndFuncName,
		})
		require.NoError(t, err)

		host := newHostFake()
		require.NoError(t, d.Init(host))
		assert.Equal(t, DefaultBaseHelpURL+"Turtle.getFuelLevel", host.helpURL)
	})

	t.Run("explicit URL wins", func(t *testing.T) {
		d, err := New("turtle", 120, Metadata{
			FuncName:    "getFuelLevel",
			HelpURLType: HelpURLPrefixAndFuncName,
			HelpURL:     "https://example.com/fuel",
		})
		require.NoError(t, err)

		host := newHostFake()
		require.NoError(t, d.Init(host))
		assert.Equal(t, "https://example.com/fuel", host.helpURL)
		assert.Nil(t, host.helpURLFn)
	})

	t.Run("dropdown value variant follows the selection", func(t *testing.T) {
		d, err := New("turtle", 120, Metadata{
			BlockName:    "turn",
			HelpURLType:  HelpURLPrefixAndDropdownValue,
			HelpDropdown: "DIR",
		})
		require.NoError(t, err)

		host := newHostFake()
		dd := &dropdownFake{name: "DIR", value: "turnLeft"}
		host.fields["DIR"] = dd

		require.NoError(t, d.Init(host))
		require.NotNil(t, host.helpURLFn)
		assert.Equal(t, DefaultBaseHelpURL+"Turtle.turnLeft", host.helpURLFn())

		dd.value = "turnRight"
		assert.Equal(t, DefaultBaseHelpURL+"Turtle.turnRight", host.helpURLFn())
	})

	t.Run("dropdown value variant requires a field name", func(t *testing.T) {
		d, err := New("turtle", 120, Metadata{
			BlockName:   "turn",
			HelpURLType: HelpURLPrefixAndDropdownValue,
		})
		require.NoError(t, err)

		err = d.Init(newHostFake())
		require.Error(t, err)

		defErr, ok := err.(*DefinitionError)
		require.True(t, ok)
		assert.Equal(t, ErrMissingHelpDropdown, defErr.Code)
	})
}

func TestInitComputedTooltip(t *testing.T) {
	calls := 0
	d, err := New("turtle", 120, Metadata{
		BlockName: "turn",
		Tooltip: ComputedTooltip(func(d *Descriptor) string {
			calls++
			return "tooltip for " + d.Name
		}),
	})
	require.NoError(t, err)

	host := newHostFake()
	require.NoError(t, d.Init(host))

	// Lazy: nothing evaluated until the tooltip is requested.
	assert.Equal(t, 0, calls)
	require.NotNil(t, host.tooltipFn)
	assert.Equal(t, "tooltip for turtle_turn", host.tooltipFn())
	assert.Equal(t, "tooltip for turtle_turn", host.tooltipFn())
	assert.Equal(t, 2, calls)
}
