package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spindlymist/wyag-go"
	"github.com/spindlymist/wyag-go/plumbing"
)

func newBranchCmd() *cobra.Command {
	var del bool

	cmd := &cobra.Command{
		Use:   "branch [-d] [<name> [<start>]]",
		Short: "list, create, or delete branches",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := findRepo()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				return listBranches(cmd, repo)
			}

			name := args[0]

			if del {
				return repo.Branches.Delete(name)
			}

			var start plumbing.ObjectHash
			if len(args) == 2 {
				start, err = repo.Objects.Find(args[1])
			} else {
				start, err = repo.Objects.Find("HEAD")
			}
			if err != nil {
				return err
			}

			return repo.Branches.Create(name, start)
		},
	}

	cmd.Flags().BoolVarP(&del, "delete", "d", false, "delete the branch")
	return cmd
}

func listBranches(cmd *cobra.Command, repo *wyag.Repository) error {
	entries, err := repo.Refs.List()
	if err != nil {
		return err
	}

	cur, err := repo.Branches.Current()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, e := range entries {
		name, ok := strings.CutPrefix(e.Name, "heads/")
		if !ok {
			continue
		}
		marker := "  "
		if cur.IsNamed() && cur.Name == name {
			marker = "* "
		}
		fmt.Fprintf(out, "%s%s\n", marker, name)
	}
	return nil
}
