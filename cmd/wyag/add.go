package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <path>",
		Short: "stage a file or directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := findRepo()
			if err != nil {
				return err
			}
			idx, err := repo.Index()
			if err != nil {
				return err
			}
			if idx.HasExtData() {
				fmt.Fprintln(cmd.ErrOrStderr(), "Warning: index contains unsupported extensions.")
			}

			p, err := repo.WD.Canonicalize(args[0])
			if err != nil {
				return err
			}

			if err := idx.Add(p); err != nil {
				return err
			}

			return idx.Write()
		},
	}
}
