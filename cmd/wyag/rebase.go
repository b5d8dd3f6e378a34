package main

import (
	"github.com/spf13/cobra"
)

func newRebaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "rebase <branch>",
		Short:  "not implemented",
		Hidden: true,
		Args:   cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ErrNotImplemented
		},
	}
}
