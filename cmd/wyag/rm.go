package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <path>",
		Short: "remove a committed file from the working tree and index",
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

			tip, err := repo.HeadTip()
			if err != nil {
				return err
			}

			if err := idx.Remove(p, tip); err != nil {
				return err
			}

			return idx.WriteAllowEmpty()
		},
	}
}
