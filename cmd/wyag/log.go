package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log [<commit>]",
		Short: "print the commit ancestry as a GraphViz digraph",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := findRepo()
			if err != nil {
				return err
			}

			start := "HEAD"
			if len(args) == 1 {
				start = args[0]
			}

			hash, err := repo.Objects.Find(start)
			if err != nil {
				return err
			}

			entries, err := repo.Log(hash)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "digraph wyaglog{")
			for _, e := range entries {
				for _, parent := range e.Commit.Parents() {
					fmt.Fprintf(out, "c_%s -> c_%s\n", e.Hash, parent)
				}
			}
			fmt.Fprintln(out, "}")
			return nil
		},
	}
}
