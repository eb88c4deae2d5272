package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"lifeos/internal/auth"
	authRepo "lifeos/internal/auth/repository/sqlite"
	authUC "lifeos/internal/auth/usecase"
	calendarUC "lifeos/internal/calendar/usecase"
	itemRepo "lifeos/internal/item/repository/sqlite"
)

// Opening the database already runs AutoMigrate.
func newMigrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Schema is up to date (%s)\n", e.cfg.Database.DSN)
			return nil
		},
	}
}

func newSweepOverdueCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep-overdue",
		Short: "Flag every item whose due date has passed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := calendarUC.New(e.l, itemRepo.New(e.db, e.l), nil, nil, e.dateMath)
			n, err := uc.SweepOverdue(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Flagged %d overdue items\n", n)
			return nil
		},
	}
}

func newCreateUserCmd(e *env) *cobra.Command {
	var password, timezone string

	cmd := &cobra.Command{
		Use:   "create-user [username]",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := authUC.New(authRepo.New(e.db, e.l), e.l, authUC.Config{})
			out, err := uc.Register(cmd.Context(), auth.RegisterInput{
				Username: args[0],
				Password: password,
				Timezone: timezone,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created user #%d %s\n", out.User.ID, out.User.Username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (min 8 characters)")
	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA timezone (default UTC)")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newPurgeSessionsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "purge-sessions",
		Short: "Delete expired login sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := authUC.New(authRepo.New(e.db, e.l), e.l, authUC.Config{})
			n, err := uc.PurgeExpiredSessions(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d expired sessions\n", n)
			return nil
		},
	}
}
