// Package man provides a hidden "man" subcommand that renders the command
// tree as a roff manual page.
package man

import (
	"fmt"

	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/spf13/cobra"
)

// NewManCmd returns the "man" subcommand. It documents whatever root
// command it is attached to.
func NewManCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "man",
		Short:                 "Generates command line manpages",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Hidden:                true,
		Args:                  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := Generate(cmd.Root())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), page)
			return err
		},
	}
}

// Generate renders root as a section 1 manual page.
func Generate(root *cobra.Command) (string, error) {
	manPage, err := mcobra.NewManPage(1, root)
	if err != nil {
		return "", fmt.Errorf("failed to build man page: %w", err)
	}
	return manPage.Build(roff.NewDocument()), nil
}
