// Command wyag is the developer-facing CLI: init a repository, stage
// edits, commit snapshots, inspect history, manage branches and tags,
// and switch or restore file trees.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wyag:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wyag",
		Short:         "a minimal git reimplementation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newInitCmd(),
		newAddCmd(),
		newRmCmd(),
		newStatusCmd(),
		newCommitCmd(),
		newBranchCmd(),
		newSwitchCmd(),
		newRestoreCmd(),
		newTagCmd(),
		newCatFileCmd(),
		newHashObjectCmd(),
		newLsFilesCmd(),
		newLsTreeCmd(),
		newLogCmd(),
		newShowRefCmd(),
		newRevParseCmd(),
		newCheckoutCmd(),
		newMergeCmd(),
		newRebaseCmd(),
	)

	return root
}
