// Package jobs registers the maintenance work that runs on a schedule.
package jobs

import (
	"context"
	"fmt"

	"lifeos/pkg/log"
	"lifeos/pkg/scheduler"
)

// OverdueSweeper flags items whose due date has passed.
type OverdueSweeper interface {
	SweepOverdue(ctx context.Context) (int, error)
}

// SessionPurger removes expired sessions.
type SessionPurger interface {
	PurgeExpiredSessions(ctx context.Context) (int, error)
}

// Config holds the HH:MM times at which each job runs.
type Config struct {
	OverdueSweepAt string
	SessionPurgeAt string
}

// Register adds the overdue sweep and the session purge to s.
func Register(s *scheduler.Scheduler, l log.Logger, cfg Config, sweeper OverdueSweeper, purger SessionPurger) error {
	if _, err := s.ScheduleDaily("overdue_sweep", cfg.OverdueSweepAt, SweepOverdue(l, sweeper)); err != nil {
		return fmt.Errorf("schedule overdue sweep: %w", err)
	}
	if _, err := s.ScheduleDaily("session_purge", cfg.SessionPurgeAt, PurgeSessions(l, purger)); err != nil {
		return fmt.Errorf("schedule session purge: %w", err)
	}
	return nil
}

func SweepOverdue(l log.Logger, sweeper OverdueSweeper) scheduler.Job {
	return func(ctx context.Context) error {
		n, err := sweeper.SweepOverdue(ctx)
		if err != nil {
			return err
		}
		l.Infof(ctx, "jobs.SweepOverdue: flagged %d items", n)
		return nil
	}
}

func PurgeSessions(l log.Logger, purger SessionPurger) scheduler.Job {
	return func(ctx context.Context) error {
		n, err := purger.PurgeExpiredSessions(ctx)
		if err != nil {
			return err
		}
		l.Infof(ctx, "jobs.PurgeSessions: removed %d sessions", n)
		return nil
	}
}
