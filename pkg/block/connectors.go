package block

// ConnectorSpec is the fully resolved connector policy for a block: which
// statement connectors to enable, whether an output connection exists and
// with what type constraint, and how many extra outputs the block carries.
// Deriving it is pure; applying it to the host object happens in Init.
type ConnectorSpec struct {
	Previous     bool
	Next         bool
	Output       bool
	OutputChecks []string // nil means unconstrained
	ExtraOutputs int
}

// deriveConnectorSpec resolves the connector policy for a metadata record.
//
// A block that declares neither an output nor multiple outputs must be a
// statement, so unless connectors were explicitly suppressed with ConnNone
// it gets both chaining connectors.
func deriveConnectorSpec(m Metadata) ConnectorSpec {
	conns := m.Connections
	if m.MultipleOutputs == 0 && !m.Output.Declared && conns != ConnNone {
		conns = ConnBoth
	}

	spec := ConnectorSpec{
		Previous: conns.has(ConnPrevious),
		Next:     conns.has(ConnNext),
	}

	if m.Output.Declared {
		spec.Output = true
		spec.OutputChecks = m.Output.Checks
	}

	if m.MultipleOutputs > 0 {
		spec.ExtraOutputs = m.MultipleOutputs
		// Extra outputs imply an output connection even when no type was
		// declared.
		spec.Output = true
	}

	return spec
}
