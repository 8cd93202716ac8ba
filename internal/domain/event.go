package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event represents a scheduled occasion. Titles are not unique: a venue can
// run a recurring "Acara Spesial" repeatedly.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewEvent creates a new event. Title, date, time, and location are mandatory.
func NewEvent(title, date, eventTime, location, description string) (*Event, error) {
	title = strings.TrimSpace(title)
	date = strings.TrimSpace(date)
	eventTime = strings.TrimSpace(eventTime)
	location = strings.TrimSpace(location)

	if title == "" {
		return nil, errors.New("event title is required")
	}
	if date == "" {
		return nil, errors.New("event date is required")
	}
	if eventTime == "" {
		return nil, errors.New("event time is required")
	}
	if location == "" {
		return nil, errors.New("event location is required")
	}

	now := time.Now()
	return &Event{
		ID:          uuid.New().String(),
		Title:       title,
		Date:        date,
		Time:        eventTime,
		Location:    location,
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
