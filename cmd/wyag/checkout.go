package main

import (
	"errors"

	"github.com/spf13/cobra"
)

// ErrNotImplemented is returned by the commands whose algorithms are
// explicitly out of scope: checkout (merge-aware worktree checkout),
// merge, and rebase. switch and restore cover the single-branch and
// single-path cases these would otherwise handle.
var ErrNotImplemented = errors.New("not implemented")

func newCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "checkout <commit>",
		Short:  "not implemented",
		Hidden: true,
		Args:   cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ErrNotImplemented
		},
	}
}
