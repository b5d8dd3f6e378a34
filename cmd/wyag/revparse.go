package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spindlymist/wyag-go/plumbing/object"
)

func newRevParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rev-parse <name>",
		Short: "resolve a name to an object hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := findRepo()
			if err != nil {
				return err
			}

			hash, err := repo.Objects.Find(args[0])
			if err != nil {
				var ambiguous *object.AmbiguousIDError
				if errors.As(err, &ambiguous) {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout())
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
