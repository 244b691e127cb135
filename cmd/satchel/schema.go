package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/satchel-dev/satchel/schemafile"
)

// NewSchemaCommand creates the schema command, which prints the compiled view
// of a schema file: one block per document with fields, rules and date fields.
func NewSchemaCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "schema schema.yaml",
		Short:        "Show the types a schema file compiles to",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			types, err := schemafile.LoadAll(data, schemafile.Options{})
			if err != nil {
				return err
			}
			if len(types) == 0 {
				return fmt.Errorf("%s: no schema documents", args[0])
			}

			out := cmd.OutOrStdout()
			for i, ty := range types {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, ty.Name())
				for _, field := range ty.Fields() {
					rules := ty.Rules(field)
					specs := make([]string, len(rules))
					for j, r := range rules {
						specs[j] = r.String()
					}
					fmt.Fprintf(out, "  %s: %s\n", field, strings.Join(specs, ", "))
				}
				if dates := ty.Dates(); len(dates) > 0 {
					fmt.Fprintf(out, "  dates: %s\n", strings.Join(dates, ", "))
				}
			}
			return nil
		},
	}
}
