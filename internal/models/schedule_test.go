package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func statusPtr(status ScheduleStatus) *ScheduleStatus {
	return &status
}

func TestScheduleIsActiveAt(t *testing.T) {
	open := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	closed := time.Date(2025, 3, 8, 20, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		status *ScheduleStatus
		now    time.Time
		want   bool
	}{
		{name: "before window", status: nil, now: open.Add(-time.Minute), want: false},
		{name: "at open", status: nil, now: open, want: true},
		{name: "inside window", status: nil, now: open.Add(24 * time.Hour), want: true},
		{name: "at close", status: nil, now: closed, want: false},
		{name: "after window", status: nil, now: closed.Add(time.Minute), want: false},
		{name: "forced active before window", status: statusPtr(ScheduleStatusActive), now: open.Add(-time.Hour), want: true},
		{name: "forced active after window", status: statusPtr(ScheduleStatusActive), now: closed.Add(time.Hour), want: true},
		{name: "forced closed inside window", status: statusPtr(ScheduleStatusClosed), now: open.Add(time.Hour), want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			schedule := Schedule{Open: open, Closed: closed, Status: tc.status}
			require.Equal(t, tc.want, schedule.IsActiveAt(tc.now))
		})
	}
}

func TestScheduleIsForcedClosed(t *testing.T) {
	require.False(t, Schedule{}.IsForcedClosed())
	require.False(t, Schedule{Status: statusPtr(ScheduleStatusActive)}.IsForcedClosed())
	require.True(t, Schedule{Status: statusPtr(ScheduleStatusClosed)}.IsForcedClosed())
}
