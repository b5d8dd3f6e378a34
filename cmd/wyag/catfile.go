package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spindlymist/wyag-go/plumbing"
	"github.com/spindlymist/wyag-go/plumbing/object"
)

func newCatFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat-file <type> <object>",
		Short: "print an object's payload",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := findRepo()
			if err != nil {
				return err
			}

			t, err := plumbing.ParseObjectType(args[0])
			if err != nil {
				return err
			}

			hash, err := repo.Objects.Find(args[1])
			if err != nil {
				return err
			}

			obj, err := repo.Objects.ReadAs(hash, t)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch v := obj.(type) {
			case *object.Commit:
				fmt.Fprint(out, string(v.Serialize()))
			case *object.Tag:
				fmt.Fprint(out, string(v.Serialize()))
			default:
				out.Write(obj.Serialize())
			}
			return nil
		},
	}
}
