package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func buildParticipants(base time.Time, count int) []Participant {
	participants := make([]Participant, 0, count)
	for i := 0; i < count; i++ {
		participants = append(participants, Participant{
			ID:        fmt.Sprintf("p%d", i+1),
			Name:      fmt.Sprintf("Peserta %d", i+1),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	return participants
}

func names(participants []Participant) []string {
	result := make([]string, 0, len(participants))
	for _, participant := range participants {
		result = append(result, participant.ID)
	}
	return result
}

func TestCapacityPartition(t *testing.T) {
	base := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	category := Category{Slot: 3, Participants: buildParticipants(base, 5)}

	snapshot := category.Capacity()

	require.Equal(t, []string{"p1", "p2", "p3"}, names(snapshot.Confirmed))
	require.Equal(t, []string{"p4", "p5"}, names(snapshot.Waitlist))
	require.Equal(t, -2, snapshot.SlotsLeft)
	require.Empty(t, snapshot.Deleted)

	// confirmed ++ waitlist must reproduce the active list exactly
	require.Equal(t, names(snapshot.Active), append(names(snapshot.Confirmed), names(snapshot.Waitlist)...))
}

func TestCapacityExcludesDeleted(t *testing.T) {
	base := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	participants := buildParticipants(base, 5)
	deletedAt := base.Add(time.Hour)
	participants[1].DeletedAt = &deletedAt

	category := Category{Slot: 3, Participants: participants}
	snapshot := category.Capacity()

	require.Equal(t, []string{"p1", "p3", "p4"}, names(snapshot.Confirmed))
	require.Equal(t, []string{"p5"}, names(snapshot.Waitlist))
	require.Equal(t, []string{"p2"}, names(snapshot.Deleted))
	require.Equal(t, -1, snapshot.SlotsLeft)
}

func TestCapacityRestorePromotesOriginalOrder(t *testing.T) {
	base := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	participants := buildParticipants(base, 4)
	deletedAt := base.Add(time.Hour)
	participants[0].DeletedAt = &deletedAt

	category := Category{Slot: 3, Participants: participants}
	require.Equal(t, []string{"p2", "p3", "p4"}, names(category.Capacity().Confirmed))

	// restoring p1 puts it back in front and demotes p4 to the waitlist
	participants[0].DeletedAt = nil
	category.Participants = participants
	snapshot := category.Capacity()
	require.Equal(t, []string{"p1", "p2", "p3"}, names(snapshot.Confirmed))
	require.Equal(t, []string{"p4"}, names(snapshot.Waitlist))
}

func TestCapacityUnderfilled(t *testing.T) {
	base := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	category := Category{Slot: 10, Participants: buildParticipants(base, 2)}

	snapshot := category.Capacity()
	require.Len(t, snapshot.Confirmed, 2)
	require.Empty(t, snapshot.Waitlist)
	require.Equal(t, 8, snapshot.SlotsLeft)
	require.False(t, category.IsFull())
}

func TestCapacityTieBreakByID(t *testing.T) {
	createdAt := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	category := Category{Slot: 1, Participants: []Participant{
		{ID: "b", CreatedAt: createdAt},
		{ID: "a", CreatedAt: createdAt},
	}}

	snapshot := category.Capacity()
	require.Equal(t, []string{"a"}, names(snapshot.Confirmed))
	require.Equal(t, []string{"b"}, names(snapshot.Waitlist))
}

func TestCapacityEmptyCategory(t *testing.T) {
	category := Category{Slot: 5}
	snapshot := category.Capacity()

	require.Empty(t, snapshot.Active)
	require.Empty(t, snapshot.Confirmed)
	require.Empty(t, snapshot.Waitlist)
	require.Equal(t, 5, snapshot.SlotsLeft)
}
