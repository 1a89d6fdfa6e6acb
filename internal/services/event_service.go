package services

import (
	"database/sql"
	"time"

	"github.com/arvelin/staffdesk-be/internal/models"
	"github.com/google/uuid"
)

// EventServiceProvider defines the interface for event services.
type EventServiceProvider interface {
	CreateEvent(eventType, level, message string, userID *int64) (models.Event, error)
	GetRecentEventsForUser(userID int64, limit int) ([]models.Event, error)
	PruneEventsOlderThan(cutoff time.Time) (int64, error)
}

// EventService provides business logic for the audit event trail.
type EventService struct {
	db *sql.DB
}

// NewEventService creates a new EventService.
func NewEventService(db *sql.DB) *EventService {
	return &EventService{db: db}
}

// CreateEvent logs a new event to the database. A nil userID marks a
// system-wide event.
func (s *EventService) CreateEvent(eventType, level, message string, userID *int64) (models.Event, error) {
	event := models.Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Level:     level,
		Message:   message,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	stmt, err := s.db.Prepare("INSERT INTO events (id, type, level, message, user_id, created_at) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return models.Event{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(event.ID, event.Type, event.Level, event.Message, event.UserID, event.CreatedAt)
	if err != nil {
		return models.Event{}, err
	}
	return event, nil
}

// GetRecentEventsForUser retrieves the most recent events visible to the
// given user: their own plus system-wide ones.
func (s *EventService) GetRecentEventsForUser(userID int64, limit int) ([]models.Event, error) {
	rows, err := s.db.Query(`SELECT id, type, level, message, user_id, created_at FROM events
		WHERE user_id = ? OR user_id IS NULL ORDER BY created_at DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(&event.ID, &event.Type, &event.Level, &event.Message, &event.UserID, &event.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// PruneEventsOlderThan deletes events created before the cutoff and
// reports how many rows were removed.
func (s *EventService) PruneEventsOlderThan(cutoff time.Time) (int64, error) {
	res, err := s.db.Exec("DELETE FROM events WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
