package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/medvault/medvault-backend/internal/app"
	"github.com/medvault/medvault-backend/internal/service/deletion"
	"github.com/medvault/medvault-backend/pkg/ctxutil"
)

func newDeleteAccountCmd() *cobra.Command {
	var confirm string

	cmd := &cobra.Command{
		Use:   "delete-account <account-id>",
		Short: "Delete an account with all its profiles, records and vault files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID, err := parseID("account id", args[0])
			if err != nil {
				return err
			}
			in := deletion.DeleteAccountInput{Confirmation: confirm}
			if err := in.Validate(); err != nil {
				return fmt.Errorf("--confirm %s is required", deletion.ConfirmationPhrase)
			}

			return withStack(cmd, func(ctx context.Context, st *app.Stack) error {
				res, err := st.Service.DeleteAccount(ctxutil.WithAccountID(ctx, accountID), in)
				if err != nil {
					return err
				}
				printAccountResult(cmd.OutOrStdout(), accountID, res)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&confirm, "confirm", "", `type "DELETE" to confirm`)
	return cmd
}

func newDeleteProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-profile <account-id> <profile-id>",
		Short: "Delete one non-primary profile of an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID, err := parseID("account id", args[0])
			if err != nil {
				return err
			}
			profileID, err := parseID("profile id", args[1])
			if err != nil {
				return err
			}

			return withStack(cmd, func(ctx context.Context, st *app.Stack) error {
				res, err := st.Service.DeleteProfile(ctxutil.WithAccountID(ctx, accountID),
					deletion.DeleteProfileInput{ProfileID: profileID})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "profile %s deleted, %d vault file(s) removed\n",
					profileID, res.RemovedVaultFiles)
				printCascade(cmd.OutOrStdout(), res.Cascade)
				return nil
			})
		},
	}
}

func parseID(what, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("invalid %s %q", what, raw)
	}
	return id, nil
}

func printAccountResult(w io.Writer, accountID uuid.UUID, res *deletion.AccountResult) {
	fmt.Fprintf(w, "account %s deleted (%s)\n", accountID, res.Mode)
	fmt.Fprintf(w, "  profiles:        %d\n", res.ProfilesDeleted)
	fmt.Fprintf(w, "  vault files:     %d\n", res.VaultFilesRemoved)
	fmt.Fprintf(w, "  families reaped: %d\n", len(res.FamiliesReaped))
	printCascade(w, res.Cascade)
}

func printCascade(w io.Writer, r *deletion.CascadeReport) {
	if r == nil {
		return
	}
	for _, t := range r.Tables() {
		fmt.Fprintf(w, "  %-28s %d row(s)\n", t, r.Deleted[t])
	}
	for _, s := range r.Skipped {
		if s.Column == "" {
			fmt.Fprintf(w, "  skipped %s (no such table)\n", s.Table)
			continue
		}
		fmt.Fprintf(w, "  skipped %s.%s (no such column)\n", s.Table, s.Column)
	}
}
