// Package commands implements the lifeosctl admin CLI.
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"lifeos/config"
	"lifeos/internal/model"
	"lifeos/pkg/database"
	"lifeos/pkg/datemath"
	"lifeos/pkg/log"
)

var (
	version = "dev"
	commit  = "none"
)

// SetVersion sets the version information
func SetVersion(v, c string) {
	version = v
	commit = c
}

// env is the state shared by every subcommand after PersistentPreRunE.
type env struct {
	configPath string
	cfg        *config.Config
	l          log.Logger
	db         *gorm.DB
	dateMath   *datemath.Parser
}

// NewRootCmd builds the lifeosctl command tree.
func NewRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:           "lifeosctl",
		Short:         "Administer a LifeOS installation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&e.configPath, "config", "c", "", "path to config.yaml (default: search ./config, ., /etc/lifeos)")

	root.AddCommand(
		withEnv(e, newMigrateCmd(e)),
		withEnv(e, newSweepOverdueCmd(e)),
		withEnv(e, newCreateUserCmd(e)),
		withEnv(e, newPurgeSessionsCmd(e)),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// withEnv opens config, logger and database before cmd runs and closes the database after.
func withEnv(e *env, cmd *cobra.Command) *cobra.Command {
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		return e.open()
	}
	cmd.PostRunE = func(cmd *cobra.Command, args []string) error {
		return database.Close(e.db)
	}
	return cmd
}

func (e *env) open() error {
	var err error
	if e.configPath != "" {
		e.cfg, err = config.LoadFile(e.configPath)
	} else {
		e.cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	e.l = log.Init(log.ZapConfig{
		Level:    e.cfg.Logger.Level,
		Mode:     e.cfg.Logger.Mode,
		Encoding: e.cfg.Logger.Encoding,
	})

	e.db, err = database.Open(database.Config{
		DSN:           e.cfg.Database.DSN,
		LogLevel:      e.cfg.Database.LogLevel,
		SlowThreshold: e.cfg.Database.SlowThreshold,
		MaxOpenConns:  e.cfg.Database.MaxOpenConns,
	}, model.All()...)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	e.dateMath, err = datemath.NewParser(e.cfg.App.Timezone)
	return err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lifeosctl %s (%s)\n", version, commit)
		},
	}
}
