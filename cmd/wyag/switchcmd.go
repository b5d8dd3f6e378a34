package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spindlymist/wyag-go/plumbing/branch"
	"github.com/spindlymist/wyag-go/worktree"
)

func newSwitchCmd() *cobra.Command {
	var detach bool

	cmd := &cobra.Command{
		Use:   "switch [--detach] <branch-or-commit>",
		Short: "switch the current branch and update the working tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := findRepo()
			if err != nil {
				return err
			}

			if err := requireClean(repo); err != nil {
				return err
			}

			var target branch.Branch
			var commitHash = args[0]

			if detach {
				hash, err := repo.Objects.Find(commitHash)
				if err != nil {
					return err
				}
				target = branch.Branch{Hash: hash, Detach: true}
			} else {
				target = branch.Branch{Name: args[0]}
			}

			tip, ok := repo.Branches.Tip(target)
			if !ok {
				return fmt.Errorf("switch: %s has no commits yet", args[0])
			}

			if err := repo.RestoreFromCommit(tip, worktree.Root); err != nil {
				return err
			}

			newIdx, err := repo.TreeToIndex(mustCommitTree(repo, tip))
			if err != nil {
				return err
			}
			if err := newIdx.Write(); err != nil {
				return err
			}

			return repo.Branches.Switch(target)
		},
	}

	cmd.Flags().BoolVar(&detach, "detach", false, "detach HEAD at the given commit instead of switching branches")
	return cmd
}
