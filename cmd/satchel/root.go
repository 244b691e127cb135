package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/satchel-dev/satchel/i18n"
)

// rootOptions holds global flags for all commands.
type rootOptions struct {
	Lang string
}

var validLangs = []string{"en", "ja"}

// NewRootCommand creates the satchel CLI root with all subcommands attached.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "satchel",
		Short: "Validate data files against satchel schema definitions",
		Long: `satchel compiles YAML schema definitions into container types and
validates JSON documents against them.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidLang(opts.Lang) {
				return fmt.Errorf("invalid lang %q: must be one of %v", opts.Lang, validLangs)
			}
			i18n.SetLanguage(opts.Lang)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Lang, "lang", "en", "violation message language (en|ja)")

	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewSchemaCommand(opts))
	cmd.AddCommand(NewRulesCommand())

	return cmd
}

func isValidLang(lang string) bool {
	for _, l := range validLangs {
		if l == lang {
			return true
		}
	}
	return false
}
