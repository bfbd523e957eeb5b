package service

import (
	"context"
	"time"

	"golden9_club/internal/common"
	"golden9_club/internal/domain/model"
	"golden9_club/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type EventService struct {
	eventRepo repository.EventRepository
}

func NewEventService(eventRepo repository.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

type EventRequest struct {
	Title           string            `json:"title"`
	Description     *string           `json:"description"`
	Location        *string           `json:"location"`
	StartTime       *time.Time        `json:"start_time"`
	EndTime         *time.Time        `json:"end_time"`
	Status          model.EventStatus `json:"status"`
	Fee             float64           `json:"fee"`
	MaxParticipants *int              `json:"max_participants"`
}

func (s *EventService) ListEvents(ctx context.Context) ([]model.Event, error) {
	return s.eventRepo.List(ctx)
}

func (s *EventService) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	return s.eventRepo.FindByID(ctx, id)
}

func (s *EventService) GetEventBySlug(ctx context.Context, eventSlug string) (*model.Event, error) {
	return s.eventRepo.FindBySlug(ctx, eventSlug)
}

func (s *EventService) CreateEvent(ctx context.Context, creatorID string, req EventRequest) (*model.Event, error) {
	if err := validateEventRequest(req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.EventScheduled
	}
	if !model.ValidEventStatus(status) {
		return nil, common.Errorf("unknown event status %q: %w", status, common.ErrValidation)
	}

	event := &model.Event{
		ID:              uuid.NewString(),
		Title:           req.Title,
		Slug:            slug.Make(req.Title),
		Description:     req.Description,
		Location:        req.Location,
		StartTime:       *req.StartTime,
		EndTime:         req.EndTime,
		Status:          status,
		Fee:             req.Fee,
		MaxParticipants: req.MaxParticipants,
	}
	if creatorID != "" {
		event.CreatorID = &creatorID
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// UpdateEvent replaces the stored row; the slug follows the new title.
func (s *EventService) UpdateEvent(ctx context.Context, id string, req EventRequest) (*model.Event, error) {
	if err := validateEventRequest(req); err != nil {
		return nil, err
	}
	if !model.ValidEventStatus(req.Status) {
		return nil, common.Errorf("unknown event status %q: %w", req.Status, common.ErrValidation)
	}

	event := &model.Event{
		ID:              id,
		Title:           req.Title,
		Slug:            slug.Make(req.Title),
		Description:     req.Description,
		Location:        req.Location,
		StartTime:       *req.StartTime,
		EndTime:         req.EndTime,
		Status:          req.Status,
		Fee:             req.Fee,
		MaxParticipants: req.MaxParticipants,
	}
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	return s.eventRepo.Delete(ctx, id)
}

func validateEventRequest(req EventRequest) error {
	if req.Title == "" || req.StartTime == nil {
		return common.Errorf("title and start_time are required: %w", common.ErrValidation)
	}
	if req.Fee < 0 {
		return common.Errorf("fee must be non-negative: %w", common.ErrValidation)
	}
	if req.MaxParticipants != nil && *req.MaxParticipants <= 0 {
		return common.Errorf("max_participants must be positive: %w", common.ErrValidation)
	}
	return nil
}
