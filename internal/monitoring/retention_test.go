package monitoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvelin/staffdesk-be/internal/models"
)

type stubEventService struct {
	pruned   []time.Time
	deleted  int64
	recorded []models.Event
}

func (s *stubEventService) CreateEvent(eventType, level, message string, userID *int64) (models.Event, error) {
	e := models.Event{Type: eventType, Level: level, Message: message, UserID: userID}
	s.recorded = append(s.recorded, e)
	return e, nil
}

func (s *stubEventService) GetRecentEventsForUser(userID int64, limit int) ([]models.Event, error) {
	return nil, nil
}

func (s *stubEventService) PruneEventsOlderThan(cutoff time.Time) (int64, error) {
	s.pruned = append(s.pruned, cutoff)
	return s.deleted, nil
}

func TestNewRetentionPrunerRejectsBadExpression(t *testing.T) {
	_, err := NewRetentionPruner(&stubEventService{}, "not a cron expr", time.Hour)
	assert.Error(t, err)
}

func TestPruneUsesRetentionCutoff(t *testing.T) {
	stub := &stubEventService{deleted: 3}
	p, err := NewRetentionPruner(stub, "0 3 * * *", 24*time.Hour)
	require.NoError(t, err)

	before := time.Now().UTC().Add(-24 * time.Hour)
	p.prune()
	after := time.Now().UTC().Add(-24 * time.Hour)

	require.Len(t, stub.pruned, 1)
	cutoff := stub.pruned[0]
	assert.False(t, cutoff.Before(before))
	assert.False(t, cutoff.After(after))

	// A nonzero deletion is recorded as a system-wide event
	require.Len(t, stub.recorded, 1)
	assert.Equal(t, "system.events.prune", stub.recorded[0].Type)
	assert.Nil(t, stub.recorded[0].UserID)
}

func TestPruneSkipsEventWhenNothingDeleted(t *testing.T) {
	stub := &stubEventService{deleted: 0}
	p, err := NewRetentionPruner(stub, "0 3 * * *", 24*time.Hour)
	require.NoError(t, err)

	p.prune()

	require.Len(t, stub.pruned, 1)
	assert.Empty(t, stub.recorded)
}
