package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medvault/medvault-backend/internal/app"
)

func newReapFamiliesCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "reap-families",
		Short: "Delete family groups that have no members left",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive")
			}
			return withStack(cmd, func(ctx context.Context, st *app.Stack) error {
				reaped, err := st.Service.SweepOrphans(ctx, limit)
				if err != nil {
					return err
				}
				for _, id := range reaped {
					fmt.Fprintln(cmd.OutOrStdout(), id)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "%d family group(s) reaped\n", len(reaped))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 500, "maximum number of families to reap")
	return cmd
}
