package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	satchel "github.com/satchel-dev/satchel"
	"github.com/satchel-dev/satchel/schemafile"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(opts *rootOptions) *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "validate --schema schema.yaml data.json [data.json ...]",
		Short: "Validate JSON documents against a schema",
		Long: `Validate reads each JSON document, decodes it with full numeric
precision and runs it through the schema's rule set. Rule violations are
listed per file; any failing file makes the command exit non-zero.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, schemaPath, args)
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "schema definition file (YAML)")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}

func runValidate(cmd *cobra.Command, schemaPath string, files []string) error {
	ty, err := schemafile.LoadFile(schemaPath, schemafile.Options{})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return err
		}
		_, err = ty.MakeJSON(data)
		if err == nil {
			fmt.Fprintf(out, "✓ %s\n", f)
			continue
		}
		vs, ok := satchel.AsViolations(err)
		if !ok {
			// decode failures and unknown rules abort the whole run
			return fmt.Errorf("%s: %w", f, err)
		}
		failed++
		fmt.Fprintf(out, "✗ %s\n", f)
		for _, v := range vs {
			fmt.Fprintf(out, "  %s at /%s: %s\n", v.Rule, v.Field, v.Message)
		}
	}

	if failed > 0 {
		return fmt.Errorf("validation failed for %d of %d file(s)", failed, len(files))
	}
	return nil
}
