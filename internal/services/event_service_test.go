package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_RecordAndRecent(t *testing.T) {
	db := newTestDB(t, "eventsvc_recent")
	svc := NewEventService(db)

	alice := int64(1)
	bob := int64(2)

	_, err := svc.CreateEvent("auth.signup", "info", "Account created", &alice)
	require.NoError(t, err)
	_, err = svc.CreateEvent("employee.create", "info", "Record created", &bob)
	require.NoError(t, err)
	_, err = svc.CreateEvent("system.events.prune", "info", "Pruned 0 events", nil)
	require.NoError(t, err)

	// Alice sees her own events plus system-wide ones, never Bob's
	events, err := svc.GetRecentEventsForUser(alice, 20)
	require.NoError(t, err)
	require.Len(t, events, 2)
	for _, e := range events {
		if e.UserID != nil {
			assert.Equal(t, alice, *e.UserID)
		}
	}
}

func TestEventService_RecentLimit(t *testing.T) {
	db := newTestDB(t, "eventsvc_limit")
	svc := NewEventService(db)

	user := int64(1)
	for i := 0; i < 5; i++ {
		_, err := svc.CreateEvent("auth.signin", "info", "Signed in", &user)
		require.NoError(t, err)
	}

	events, err := svc.GetRecentEventsForUser(user, 3)
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestEventService_Prune(t *testing.T) {
	db := newTestDB(t, "eventsvc_prune")
	svc := NewEventService(db)

	user := int64(1)
	old, err := svc.CreateEvent("auth.signup", "info", "Old event", &user)
	require.NoError(t, err)
	// Age the first event past any realistic cutoff
	_, err = db.Exec("UPDATE events SET created_at = ? WHERE id = ?", time.Now().UTC().Add(-48*time.Hour), old.ID)
	require.NoError(t, err)

	_, err = svc.CreateEvent("auth.signin", "info", "Fresh event", &user)
	require.NoError(t, err)

	deleted, err := svc.PruneEventsOlderThan(time.Now().UTC().Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	events, err := svc.GetRecentEventsForUser(user, 20)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Fresh event", events[0].Message)
}
