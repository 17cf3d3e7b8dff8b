package block

// DefaultBaseHelpURL is the wiki root that derived help URLs point into.
const DefaultBaseHelpURL = "https://computercraft.info/wiki/"

// Descriptor ties a namespace prefix, a display colour and a metadata record
// to a canonical block-type name. One Descriptor exists per block-type
// definition, created at registration time and never mutated afterwards.
type Descriptor struct {
	Prefix   string
	Colour   int
	Metadata Metadata

	// Name is the canonical block-type identifier, derived once at
	// construction and never recomputed.
	Name string

	// BaseHelpURL may be overridden before the first Init, e.g. from
	// project configuration.
	BaseHelpURL string

	// ExtraOutputs is the count of outputs beyond the first, recorded from
	// metadata for generator consumers.
	ExtraOutputs int
}

// New derives the canonical name and builds a Descriptor. It fails when the
// metadata names neither a BlockName nor a FuncName.
func New(prefix string, colour int, meta Metadata) (*Descriptor, error) {
	name, err := DeriveBlockName(prefix, meta)
	if err != nil {
		return nil, err
	}
	return &Descriptor{
		Prefix:       prefix,
		Colour:       colour,
		Metadata:     meta,
		Name:         name,
		BaseHelpURL:  DefaultBaseHelpURL,
		ExtraOutputs: meta.MultipleOutputs,
	}, nil
}

// MustNew is New for registration-time definitions, where a malformed
// metadata record is a programming error.
func MustNew(prefix string, colour int, meta Metadata) *Descriptor {
	d, err := New(prefix, colour, meta)
	if err != nil {
		panic(err)
	}
	return d
}

// QualifiedFuncName returns the Lua call target, e.g. "turtle.forward".
func (d *Descriptor) QualifiedFuncName() string {
	return d.Prefix + "." + d.Metadata.FuncName
}

// ConnectorSpec resolves the connector policy for this descriptor's
// metadata without touching any host object.
func (d *Descriptor) ConnectorSpec() ConnectorSpec {
	return deriveConnectorSpec(d.Metadata)
}

// Init applies the descriptor to a freshly created host block: colour,
// inline-input layout, help URL, tooltip and connectors. It runs exactly
// once per block instance, before the block participates in the editor.
// Attaching input slots and fields is the definition's job (Shaped).
func (d *Descriptor) Init(host Block) error {
	host.SetColour(d.Colour)
	host.SetInputsInline(true)

	if err := d.applyHelpURL(host); err != nil {
		return err
	}

	switch t := d.Metadata.Tooltip.(type) {
	case FixedTooltip:
		host.SetTooltip(string(t))
	case ComputedTooltip:
		host.SetTooltipFunc(func() string { return t(d) })
	}

	spec := deriveConnectorSpec(d.Metadata)
	host.SetPreviousStatement(spec.Previous)
	host.SetNextStatement(spec.Next)
	if spec.Output {
		host.SetOutput(true, spec.OutputChecks)
	}

	return nil
}

func (d *Descriptor) applyHelpURL(host Block) error {
	// An explicit URL always wins over derivation.
	if d.Metadata.HelpURL != "" {
		host.SetHelpURL(d.Metadata.HelpURL)
		return nil
	}

	switch d.Metadata.HelpURLType {
	case HelpURLPrefixAndFuncName:
		host.SetHelpURL(d.BaseHelpURL + capitalize(d.Prefix) + "." + d.Metadata.FuncName)

	case HelpURLPrefixAndDropdownValue:
		dropdown := d.Metadata.HelpDropdown
		if dropdown == "" {
			return NewDefinitionError(KindConfiguration, ErrMissingHelpDropdown, d.Name,
				"helpUrlType PREFIX_AND_DROPDOWN_VALUE requires a helpDropdown field name")
		}
		host.SetHelpURLFunc(func() string {
			f, ok := host.Field(dropdown)
			if !ok {
				return d.BaseHelpURL
			}
			dd, ok := f.(Dropdown)
			if !ok {
				return d.BaseHelpURL
			}
			return d.BaseHelpURL + capitalize(d.Prefix) + "." + dd.Value()
		})
	}
	return nil
}
