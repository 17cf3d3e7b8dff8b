package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/blocklua-lang/blocklua/internal/cli/ui"
	"github.com/blocklua-lang/blocklua/internal/introspect"
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered block types",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reg, err := loadRegistry()
			if err != nil {
				return err
			}

			infos, err := introspect.DescribeAll(reg)
			if err != nil {
				return err
			}

			table := ui.NewTable(cmd.OutOrStdout(),
				[]string{"BLOCK", "KIND", "CONNECTORS", "PARAMS", "HELP"}, noColor)
			for _, info := range infos {
				var conns []string
				if info.Previous {
					conns = append(conns, "prev")
				}
				if info.Next {
					conns = append(conns, "next")
				}
				if info.Kind == "expression" {
					out := "output"
					if len(info.OutputChecks) > 0 {
						out += ":" + strings.Join(info.OutputChecks, "|")
					}
					conns = append(conns, out)
				}
				table.AddRow(info.Name, info.Kind,
					strings.Join(conns, ","),
					strings.Join(info.Params, ","),
					info.HelpURL)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	return cmd
}
