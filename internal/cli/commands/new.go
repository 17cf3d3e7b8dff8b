package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blocklua-lang/blocklua/pkg/block"
)

// NewNewCommand creates the new command
func NewNewCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Scaffold a new block-type definition",
		Long:  "Interactively create a Go source stub for a new block type",
		RunE: func(cmd *cobra.Command, args []string) error {
			var answers struct {
				Prefix   string
				FuncName string
				Kind     string
				Output   string
				Tooltip  string
			}

			prompts := []*survey.Question{
				{
					Name:     "prefix",
					Prompt:   &survey.Input{Message: "API prefix (e.g. turtle):"},
					Validate: survey.Required,
				},
				{
					Name:     "funcName",
					Prompt:   &survey.Input{Message: "API function name (mixedCase, e.g. turnLeft):"},
					Validate: survey.Required,
				},
				{
					Name: "kind",
					Prompt: &survey.Select{
						Message: "Block kind:",
						Options: []string{"statement", "expression"},
						Default: "statement",
					},
				},
			}
			if err := survey.Ask(prompts, &answers); err != nil {
				return err
			}

			if answers.Kind == "expression" {
				if err := survey.AskOne(&survey.Select{
					Message: "Output type:",
					Options: []string{"any", "Boolean", "Number", "String", "Table"},
					Default: "any",
				}, &answers.Output); err != nil {
					return err
				}
			}

			if err := survey.AskOne(&survey.Input{Message: "Tooltip text:"}, &answers.Tooltip); err != nil {
				return err
			}

			meta := block.Metadata{FuncName: answers.FuncName}
			name, err := block.DeriveBlockName(answers.Prefix, meta)
			if err != nil {
				return err
			}

			path := filepath.Join(outDir, name+".go")
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}

			src := renderStub(answers.Prefix, answers.FuncName, answers.Output, answers.Tooltip, answers.Kind)
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			success := color.New(color.FgGreen, color.Bold)
			success.Fprintf(cmd.OutOrStdout(), "Created %s", path)
			fmt.Fprintf(cmd.OutOrStdout(), " (block type %s)\n", name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "dir", "d", ".", "Directory to write the definition stub into")
	return cmd
}

func renderStub(prefix, funcName, output, tooltip, kind string) string {
	var b strings.Builder

	ident := strings.ToUpper(funcName[:1]) + funcName[1:]

	fmt.Fprintf(&b, "package %s\n\n", prefix)
	b.WriteString("import (\n")
	b.WriteString("\t\"github.com/blocklua-lang/blocklua/pkg/block\"\n")
	b.WriteString("\t\"github.com/blocklua-lang/blocklua/pkg/luagen\"\n")
	b.WriteString(")\n\n")

	fmt.Fprintf(&b, "type %sBlock struct {\n", funcName)
	b.WriteString("\tluagen.NoDropdowns\n")
	b.WriteString("\tdesc *block.Descriptor\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "func New%s() *%sBlock {\n", ident, funcName)
	fmt.Fprintf(&b, "\treturn &%sBlock{\n", funcName)
	fmt.Fprintf(&b, "\t\tdesc: block.MustNew(%q, hue, block.Metadata{\n", prefix)
	fmt.Fprintf(&b, "\t\t\tFuncName:    %q,\n", funcName)
	if kind == "expression" {
		if output == "any" || output == "" {
			b.WriteString("\t\t\tOutput:      block.OutputAny(),\n")
		} else {
			fmt.Fprintf(&b, "\t\t\tOutput:      block.OutputOf(%q),\n", output)
		}
	}
	b.WriteString("\t\t\tHelpURLType: block.HelpURLPrefixAndFuncName,\n")
	if tooltip != "" {
		fmt.Fprintf(&b, "\t\t\tTooltip:     block.FixedTooltip(%q),\n", tooltip)
	}
	b.WriteString("\t\t}),\n")
	b.WriteString("\t}\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "func (b *%sBlock) Descriptor() *block.Descriptor { return b.desc }\n", funcName)
	fmt.Fprintf(&b, "func (b *%sBlock) ParamNames() []string          { return nil }\n", funcName)

	return b.String()
}
