package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLsFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls-files",
		Short: "list staged files",
		Args:  cobra.NoArgs,
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

			out := cmd.OutOrStdout()
			for _, p := range idx.Paths() {
				fmt.Fprintln(out, p)
			}
			return nil
		},
	}
}
