package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spindlymist/wyag-go/plumbing"
)

func newHashObjectCmd() *cobra.Command {
	var write bool
	var typeName string

	cmd := &cobra.Command{
		Use:   "hash-object [-w] [-t <type>] <path>",
		Short: "compute (and optionally store) an object's hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := findRepo()
			if err != nil {
				return err
			}

			t, err := plumbing.ParseObjectType(typeName)
			if err != nil {
				return err
			}

			hash, err := repo.HashObject(args[0], t, write)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the object to the database")
	cmd.Flags().StringVarP(&typeName, "type", "t", "blob", "object type")
	return cmd
}
