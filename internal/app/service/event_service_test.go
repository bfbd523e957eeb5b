package service

import (
	"context"
	"testing"
	"time"

	"golden9_club/internal/common"
	"golden9_club/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_CreateEvent_Defaults(t *testing.T) {
	var created *model.Event
	repo := &mockEventRepo{
		createFn: func(ctx context.Context, event *model.Event) error {
			created = event
			return nil
		},
	}
	svc := NewEventService(repo)

	start := time.Date(2026, 9, 12, 19, 0, 0, 0, time.UTC)
	event, err := svc.CreateEvent(context.Background(), "u-1", EventRequest{
		Title:     "Autumn 9-Ball Open",
		StartTime: &start,
	})
	require.NoError(t, err)

	assert.Equal(t, model.EventScheduled, event.Status)
	assert.Equal(t, "autumn-9-ball-open", event.Slug)
	assert.Equal(t, 0.0, event.Fee)
	require.NotNil(t, event.CreatorID)
	assert.Equal(t, "u-1", *event.CreatorID)
	assert.NotNil(t, created)
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	svc := NewEventService(&mockEventRepo{})
	start := time.Now()
	bad := -1

	tests := []struct {
		name string
		req  EventRequest
	}{
		{"missing title", EventRequest{StartTime: &start}},
		{"missing start_time", EventRequest{Title: "x"}},
		{"negative fee", EventRequest{Title: "x", StartTime: &start, Fee: -5}},
		{"non-positive max_participants", EventRequest{Title: "x", StartTime: &start, MaxParticipants: &bad}},
		{"unknown status", EventRequest{Title: "x", StartTime: &start, Status: "someday"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateEvent(context.Background(), "u-1", tt.req)
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestEventService_UpdateEvent(t *testing.T) {
	var updated *model.Event
	repo := &mockEventRepo{
		updateFn: func(ctx context.Context, event *model.Event) error {
			updated = event
			return nil
		},
	}
	svc := NewEventService(repo)

	start := time.Now()
	event, err := svc.UpdateEvent(context.Background(), "e-1", EventRequest{
		Title:     "Winter League Finals",
		StartTime: &start,
		Status:    model.EventOngoing,
		Fee:       25,
	})
	require.NoError(t, err)

	assert.Equal(t, "winter-league-finals", event.Slug) // slug follows the new title
	assert.Equal(t, model.EventOngoing, event.Status)
	assert.Equal(t, "e-1", updated.ID)
}

func TestEventService_UpdateEvent_NotFound(t *testing.T) {
	repo := &mockEventRepo{
		updateFn: func(ctx context.Context, event *model.Event) error {
			return common.ErrNotFound
		},
	}
	svc := NewEventService(repo)

	start := time.Now()
	_, err := svc.UpdateEvent(context.Background(), "gone", EventRequest{
		Title: "x", StartTime: &start, Status: model.EventScheduled,
	})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestEventService_DeleteEvent_IdempotentFailing(t *testing.T) {
	deleted := map[string]bool{}
	repo := &mockEventRepo{
		deleteFn: func(ctx context.Context, id string) error {
			if deleted[id] {
				return common.ErrNotFound
			}
			deleted[id] = true
			return nil
		},
	}
	svc := NewEventService(repo)

	require.NoError(t, svc.DeleteEvent(context.Background(), "e-1"))
	assert.ErrorIs(t, svc.DeleteEvent(context.Background(), "e-1"), common.ErrNotFound)
}
