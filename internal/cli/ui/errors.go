package ui

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/blocklua-lang/blocklua/pkg/block"
)

// PrintError writes an error to w, rendering definition errors with their
// code and the block they came from.
func PrintError(w io.Writer, err error, noColor bool) {
	red := color.New(color.FgRed, color.Bold)
	gray := color.New(color.FgHiBlack)
	if noColor {
		red.DisableColor()
		gray.DisableColor()
	}

	var defErr *block.DefinitionError
	if errors.As(err, &defErr) {
		red.Fprintf(w, "Error [%s]", defErr.Code)
		if defErr.Block != "" {
			gray.Fprintf(w, " in %s", defErr.Block)
		}
		fmt.Fprintf(w, ": %s\n", defErr.Message)
		return
	}

	red.Fprint(w, "Error")
	fmt.Fprintf(w, ": %v\n", err)
}
