package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medvault/medvault-backend/internal/app"
)

func newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "move <from> <to>",
		Aliases: []string{"mv"},
		Short:   "Move one vault object to another path in the same bucket",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == args[1] {
				return fmt.Errorf("source and destination are the same")
			}
			return withStack(cmd, func(ctx context.Context, st *app.Stack) error {
				if err := st.Storage.Move(ctx, args[0], args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "moved %s -> %s (bucket %s)\n", args[0], args[1], st.Storage.Bucket())
				return nil
			})
		},
	}
}
