package main

import (
	"github.com/spf13/cobra"
)

func newRestoreCmd() *cobra.Command {
	var staged, worktreeFlag bool
	var source string

	cmd := &cobra.Command{
		Use:   "restore [--staged] [--worktree] [-s <source>] <path>",
		Short: "restore working tree or staged files from a source commit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := findRepo()
			if err != nil {
				return err
			}

			p, err := repo.WD.Canonicalize(args[0])
			if err != nil {
				return err
			}

			if p.IsRoot() {
				if err := requireClean(repo); err != nil {
					return err
				}
			}

			src := source
			if src == "" {
				src = "HEAD"
			}
			sourceHash, err := repo.Objects.Find(src)
			if err != nil {
				return err
			}

			// Default, matching neither flag given, is worktree-only.
			if !staged && !worktreeFlag {
				worktreeFlag = true
			}

			if worktreeFlag {
				if err := repo.RestoreFromCommit(sourceHash, p); err != nil {
					return err
				}
			}

			if staged {
				idx, err := repo.Index()
				if err != nil {
					return err
				}
				sub, err := repo.TreeToIndex(mustCommitTree(repo, sourceHash))
				if err != nil {
					return err
				}
				for _, sp := range sub.Paths() {
					if !sp.InCone(p) {
						continue
					}
					if e, ok := sub.Get(sp); ok {
						idx.ReplaceEntry(sp, e)
					}
				}
				if err := idx.Write(); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&staged, "staged", false, "restore the index")
	cmd.Flags().BoolVar(&worktreeFlag, "worktree", false, "restore the working tree")
	cmd.Flags().StringVarP(&source, "source", "s", "", "commit to restore from (default HEAD)")
	return cmd
}
