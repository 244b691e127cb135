package main

import (
	"fmt"

	"github.com/spf13/cobra"

	satchel "github.com/satchel-dev/satchel"
)

// NewRulesCommand creates the rules command, listing every rule name in the
// process-wide registry in sorted order.
func NewRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the registered validation rules",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range satchel.DefaultRules().Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
