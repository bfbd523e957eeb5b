package model

import (
	"time"
)

type EventStatus string

const (
	EventScheduled EventStatus = "scheduled"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

type Event struct {
	ID              string      `json:"event_id"`
	Title           string      `json:"title"`
	Slug            string      `json:"slug"`
	Description     *string     `json:"description"`
	Location        *string     `json:"location"`
	StartTime       time.Time   `json:"start_time"`
	EndTime         *time.Time  `json:"end_time"` // registration deadline
	Status          EventStatus `json:"status"`
	Fee             float64     `json:"fee"`
	MaxParticipants *int        `json:"max_participants"`
	CreatorID       *string     `json:"creator_id,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// ValidEventStatus reports whether s is one of the known lifecycle states.
func ValidEventStatus(s EventStatus) bool {
	switch s {
	case EventScheduled, EventOngoing, EventCompleted, EventCancelled:
		return true
	}
	return false
}
