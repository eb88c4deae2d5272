package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeos/pkg/log"
)

func TestBuildDailySpec(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "00:05", want: "0 5 0 * * *"},
		{in: "23:59", want: "0 59 23 * * *"},
		{in: " 7:30 ", want: "0 30 7 * * *"},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "1:2:3", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := BuildDailySpec(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScheduleDaily_RejectsBadTime(t *testing.T) {
	s := New(log.NewNop(), time.UTC)
	_, err := s.ScheduleDaily("sweep", "25:00", func(context.Context) error { return nil })
	assert.Error(t, err)
	assert.Equal(t, 0, s.Entries())
}

func TestScheduleInterval_RunsJob(t *testing.T) {
	s := New(log.NewNop(), time.UTC)

	var runs atomic.Int32
	_, err := s.ScheduleInterval("tick", time.Second, func(context.Context) error {
		runs.Add(1)
		return errors.New("logged, not fatal")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, s.Entries())

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool { return runs.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
}

func TestStop_CancelsJobContext(t *testing.T) {
	s := New(log.NewNop(), nil)
	s.Stop()
	assert.ErrorIs(t, s.ctx.Err(), context.Canceled)
}

func TestScheduleInterval_RejectsNonPositive(t *testing.T) {
	s := New(log.NewNop(), time.UTC)
	_, err := s.ScheduleInterval("bad", 0, func(context.Context) error { return nil })
	assert.Error(t, err)
}
