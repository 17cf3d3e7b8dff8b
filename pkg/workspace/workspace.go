package workspace

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/blocklua-lang/blocklua/pkg/block"
	"github.com/blocklua-lang/blocklua/pkg/luagen"
)

// Workspace holds the top-level blocks of a program in order.
type Workspace struct {
	roots []*Block
}

// New creates an empty workspace.
func New() *Workspace {
	return &Workspace{}
}

// Add appends a top-level block.
func (w *Workspace) Add(b *Block) {
	w.roots = append(w.roots, b)
}

// Roots returns the top-level blocks in insertion order.
func (w *Workspace) Roots() []*Block {
	return w.roots
}

// CodeGen generates Lua source from workspace blocks. It is the recursive
// generator the luagen parameter walk calls back into.
type CodeGen struct {
	logger *zap.Logger
}

// NewCodeGen creates a generator. A nil logger disables logging.
func NewCodeGen(logger *zap.Logger) *CodeGen {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CodeGen{logger: logger}
}

// ValueToCode implements luagen.Generator over workspace blocks. An empty
// value socket generates the Lua nil literal.
func (g *CodeGen) ValueToCode(host block.Block, inputName string, order luagen.Order) (string, error) {
	wb, ok := host.(*Block)
	if !ok {
		return "", fmt.Errorf("host block is not a workspace block")
	}
	in, ok := wb.inputsByName[inputName]
	if !ok {
		return "", fmt.Errorf("block %s has no input %q", wb.def.Descriptor().Name, inputName)
	}
	if in.child == nil {
		g.logger.Debug("empty value input",
			zap.String("block", wb.def.Descriptor().Name),
			zap.String("input", inputName))
		return "nil", nil
	}

	res, err := luagen.CodeFor(in.child.def, in.child, g)
	if err != nil {
		return "", err
	}
	return res.Code, nil
}

// Program generates the Lua source for the whole workspace: each top-level
// statement chain in order, one statement per line. Top-level expression
// blocks are disconnected scratch work and generate nothing.
func (g *CodeGen) Program(w *Workspace) (string, error) {
	var buf strings.Builder

	for _, root := range w.roots {
		if root.HasOutput() {
			g.logger.Debug("skipping disconnected expression block",
				zap.String("block", root.def.Descriptor().Name),
				zap.String("id", root.ID()))
			continue
		}
		for b := root; b != nil; b = b.nextBlock {
			res, err := luagen.CodeFor(b.def, b, g)
			if err != nil {
				return "", err
			}
			buf.WriteString(res.Code)
		}
	}
	return buf.String(), nil
}
