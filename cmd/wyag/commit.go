package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/spindlymist/wyag-go"
)

func newCommitCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "commit -m <msg>",
		Short: "record a snapshot of the staged changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := findRepo()
			if err != nil {
				return err
			}
			idx, err := repo.Index()
			if err != nil {
				return err
			}

			name := repo.UserName()
			email := repo.UserEmail()

			hash, err := repo.CreateCommit(idx, wyag.CommitMeta{
				AuthorName:     name,
				AuthorEmail:    email,
				CommitterName:  name,
				CommitterEmail: email,
				Message:        message,
				When:           time.Now(),
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "commit message")
	cmd.MarkFlagRequired("message")

	return cmd
}
