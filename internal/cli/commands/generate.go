package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blocklua-lang/blocklua/pkg/block"
	"github.com/blocklua-lang/blocklua/pkg/luacheck"
	"github.com/blocklua-lang/blocklua/pkg/workspace"
)

// NewGenerateCommand creates the generate command
func NewGenerateCommand() *cobra.Command {
	var (
		output   string
		check    bool
		jsonErrs bool
	)

	cmd := &cobra.Command{
		Use:   "generate [program.json]",
		Short: "Generate Lua source from a saved program",
		Long:  "Load a saved program, generate its Lua source, and write it to stdout or a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, reg, err := loadRegistry()
			if err != nil {
				return err
			}

			program := cfg.Program
			if len(args) == 1 {
				program = args[0]
			}

			data, err := os.ReadFile(program)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", program, err)
			}

			ws, err := workspace.Load(data, reg)
			if err != nil {
				return describeFailure(cmd, err, jsonErrs)
			}

			code, err := workspace.NewCodeGen(nil).Program(ws)
			if err != nil {
				return describeFailure(cmd, err, jsonErrs)
			}

			if check {
				if err := luacheck.Check(code); err != nil {
					return describeFailure(cmd, err, jsonErrs)
				}
			}

			if output != "" {
				if err := os.WriteFile(output, []byte(code), 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", output, err)
				}
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), code)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "", "Write generated Lua to a file instead of stdout")
	cmd.Flags().BoolVar(&check, "check", false, "Compile the generated Lua to verify its syntax")
	cmd.Flags().BoolVar(&jsonErrs, "json", false, "Report failures as JSON")
	return cmd
}

// describeFailure reports generation failures, as JSON when requested so
// editor tooling can consume them.
func describeFailure(cmd *cobra.Command, err error, asJSON bool) error {
	if !asJSON {
		return err
	}

	var defErr *block.DefinitionError
	if errors.As(err, &defErr) {
		payload, merr := json.Marshal(defErr)
		if merr == nil {
			fmt.Fprintln(cmd.ErrOrStderr(), string(payload))
			return err
		}
	}
	payload, _ := json.Marshal(map[string]string{"message": err.Error()})
	fmt.Fprintln(cmd.ErrOrStderr(), string(payload))
	return err
}
