package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [path]",
		Short: "show unstaged and staged changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := findRepo()
			if err != nil {
				return err
			}
			idx, err := repo.Index()
			if err != nil {
				return err
			}

			rel := "."
			if len(args) == 1 {
				rel = args[0]
			}
			p, err := repo.WD.Canonicalize(rel)
			if err != nil {
				return err
			}

			st, err := repo.ComputeStatus(idx, p)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(st.Staged) > 0 {
				fmt.Fprintln(out, "Changes to be committed:")
				for _, c := range st.Staged {
					fmt.Fprintf(out, "\t%s: %s\n", c.Kind, c.Path)
				}
			}
			if len(st.Unstaged) > 0 {
				fmt.Fprintln(out, "Changes not staged for commit:")
				for _, c := range st.Unstaged {
					fmt.Fprintf(out, "\t%s: %s\n", c.Kind, c.Path)
				}
			}
			if len(st.Staged) == 0 && len(st.Unstaged) == 0 {
				fmt.Fprintln(out, "nothing to commit, working tree clean")
			}

			return nil
		},
	}
}
