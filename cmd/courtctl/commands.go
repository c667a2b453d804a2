package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"courtside/cmd/bootstrap"
	"courtside/internal/domain/user"
	"courtside/internal/infra/db"
	"courtside/internal/pkg/config"
	"courtside/internal/pkg/jwt"
	"courtside/internal/usecase"
	"courtside/internal/usecase/jobs"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var (
	tokenUserID string
	tokenRole   string
	timeout     time.Duration
)

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Overall deadline for the command")

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
	reaperCmd.AddCommand(reaperSweepCmd)
	outboxCmd.AddCommand(outboxDispatchCmd)

	tokenIssueCmd.Flags().StringVar(&tokenUserID, "user", "", "User ID (random when empty)")
	tokenIssueCmd.Flags().StringVar(&tokenRole, "role", string(user.RoleSuperAdmin), "Role claim")
	tokenCmd.AddCommand(tokenIssueCmd)

	rootCmd.AddCommand(migrateCmd, reaperCmd, outboxCmd, tokenCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withPool(cmd.Context(), db.Migrate)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the latest migration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withPool(cmd.Context(), db.MigrateDown)
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show applied and pending migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		var statuses []db.MigrationStatus
		err := withPool(cmd.Context(), func(ctx context.Context, pool dbPool) error {
			var err error
			statuses, err = db.Status(ctx, pool)
			return err
		})
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "VERSION\tSTATE\tFILE")
		for _, s := range statuses {
			state := "pending"
			if s.Applied {
				state = "applied"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\n", s.Version, state, s.Path)
		}
		return w.Flush()
	},
}

var reaperCmd = &cobra.Command{
	Use:   "reaper",
	Short: "Expired hold maintenance",
}

var reaperSweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Cancel every pending reservation whose hold has expired, once",
	RunE: func(cmd *cobra.Command, _ []string) error {
		var reaper *jobs.Reaper
		return withApp(cmd.Context(), fx.Populate(&reaper), func(ctx context.Context) error {
			result, err := reaper.Sweep(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "expired=%d skipped=%d failed=%d\n", result.Expired, result.Skipped, result.Failed)
			return nil
		})
	},
}

var outboxCmd = &cobra.Command{
	Use:   "outbox",
	Short: "Notification outbox maintenance",
}

var outboxDispatchCmd = &cobra.Command{
	Use:   "dispatch",
	Short: "Publish one batch of due notification jobs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		var dispatcher *jobs.Dispatcher
		return withApp(cmd.Context(), fx.Populate(&dispatcher), func(ctx context.Context) error {
			result, err := dispatcher.Dispatch(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "published=%d retrying=%d failed=%d\n", result.Published, result.Retrying, result.Failed)
			return nil
		})
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Bearer tokens for operators and local testing",
}

var tokenIssueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Mint a signed bearer token",
	RunE: func(cmd *cobra.Command, _ []string) error {
		var cfg config.JWTConfig
		if err := envconfig.Process("", &cfg); err != nil {
			return err
		}
		duration, err := time.ParseDuration(cfg.Duration)
		if err != nil {
			return fmt.Errorf("invalid JWT_DURATION: %w", err)
		}
		role, err := user.NewRole(tokenRole)
		if err != nil {
			return fmt.Errorf("%w: %q", err, tokenRole)
		}
		userID := uuid.New()
		if tokenUserID != "" {
			if userID, err = uuid.Parse(tokenUserID); err != nil {
				return fmt.Errorf("invalid --user: %w", err)
			}
		}

		token, err := usecase.NewTokenIssuer(jwt.NewService(cfg.Secret, duration)).IssueToken(userID, role)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "user=%s role=%s expires_in=%s\n", userID, role, duration)
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

// withApp starts the service graph without the HTTP layer or background loops,
// runs fn, and stops the graph again.
func withApp(parent context.Context, populate fx.Option, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	app := fx.New(
		bootstrap.ConfigModule,
		bootstrap.ServiceModule,
		populate,
		fx.NopLogger,
	)
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			fmt.Fprintf(os.Stderr, "courtctl: shutdown: %v\n", err)
		}
	}()

	return fn(ctx)
}
