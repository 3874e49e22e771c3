package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medvault/medvault-backend/internal/app"
)

func newEnumerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "enumerate <prefix>",
		Aliases: []string{"ls"},
		Short:   "Print every vault path under an owner prefix",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStack(cmd, func(ctx context.Context, st *app.Stack) error {
				paths, err := st.Service.ListAllPaths(ctx, args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, p := range paths {
					fmt.Fprintln(out, p)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "%d object(s) under %s\n", len(paths), args[0])
				return nil
			})
		},
	}
}
