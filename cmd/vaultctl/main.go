// Command vaultctl is the operator CLI for the deletion subsystem. It runs
// the same deletion pipeline as the HTTP API, directly against the
// configured database and vault, for support cases and stuck deletions.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/medvault/medvault-backend/internal/app"
	"github.com/medvault/medvault-backend/internal/config"
)

var timeout time.Duration

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vaultctl",
		Short: "Inspect and delete vault data",
		Long: `Inspect and delete vault data outside the HTTP API.

Configuration is read the same way as the server (CONFIG_PATH, .env, ENV).

Examples:
  # List every vault object under a profile
  vaultctl enumerate 3f0c8d7e-5a61-4a0e-9f4f-2b1d1c6e7a90

  # Delete an account and everything it owns
  vaultctl delete-account <account-id> --confirm DELETE

  # Delete one dependent profile of an account
  vaultctl delete-profile <account-id> <profile-id>

  # Move a stuck object aside before retrying a deletion
  vaultctl move <profile-id>/reports/a.pdf quarantine/a.pdf`,
		SilenceUsage: true,
	}

	root.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Minute, "overall deadline for the command")

	root.AddCommand(
		newEnumerateCmd(),
		newDeleteAccountCmd(),
		newDeleteProfileCmd(),
		newReapFamiliesCmd(),
		newMoveCmd(),
	)
	return root
}

// withStack loads configuration, connects the deletion stack and runs fn
// with a deadline of --timeout.
func withStack(cmd *cobra.Command, fn func(ctx context.Context, st *app.Stack) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	st, err := app.NewStack(ctx, cfg, logger, nil)
	if err != nil {
		return err
	}
	defer st.Close()

	return fn(ctx, st)
}
