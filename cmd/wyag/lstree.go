package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spindlymist/wyag-go/plumbing"
	"github.com/spindlymist/wyag-go/plumbing/object"
)

func newLsTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls-tree <object>",
		Short: "list a tree object's entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := findRepo()
			if err != nil {
				return err
			}

			hash, err := repo.Objects.Find(args[0])
			if err != nil {
				return err
			}

			obj, err := repo.Objects.ReadAs(hash, plumbing.TreeObject)
			if err != nil {
				return err
			}
			tree := obj.(*object.Tree)

			out := cmd.OutOrStdout()
			for _, e := range tree.Entries {
				t := "blob"
				if e.Mode.IsDir() {
					t = "tree"
				}
				fmt.Fprintf(out, "%s %s %s\t%s\n", e.Mode, t, e.Hash, e.Name)
			}
			return nil
		},
	}
}
