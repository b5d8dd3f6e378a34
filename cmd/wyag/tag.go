package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newTagCmd() *cobra.Command {
	var annotated, del bool
	var message string

	cmd := &cobra.Command{
		Use:   "tag [-a] [-d] [-m <msg>] [<name> [<object>]]",
		Short: "list, create, or delete tags",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := findRepo()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				entries, err := repo.Refs.List()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, e := range entries {
					if name, ok := strings.CutPrefix(e.Name, "tags/"); ok {
						fmt.Fprintln(out, name)
					}
				}
				return nil
			}

			name := args[0]

			if del {
				return repo.DeleteTag(name)
			}

			objID := "HEAD"
			if len(args) == 2 {
				objID = args[1]
			}
			target, err := repo.Objects.Find(objID)
			if err != nil {
				return err
			}

			if !annotated {
				return repo.CreateLightweightTag(name, target)
			}

			obj, err := repo.Objects.Read(target)
			if err != nil {
				return err
			}

			tagger := repo.UserName() + " <" + repo.UserEmail() + ">"
			_, err = repo.CreateAnnotatedTag(name, target, obj.Type(), tagger, message)
			return err
		},
	}

	cmd.Flags().BoolVarP(&annotated, "annotate", "a", false, "create an annotated tag")
	cmd.Flags().BoolVarP(&del, "delete", "d", false, "delete the tag")
	cmd.Flags().StringVarP(&message, "message", "m", "", "annotated tag message")
	return cmd
}
