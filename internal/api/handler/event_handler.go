package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"golden9_club/internal/api/middleware"
	"golden9_club/internal/app/service"
	"golden9_club/internal/common"
	"golden9_club/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type EventHandler struct {
	eventService *service.EventService
}

func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listEvents)
	r.Get("/{eventID}", h.getEvent)
	r.Get("/slug/{eventSlug}", h.getEventBySlug)

	r.Group(func(adminRouter chi.Router) {
		adminRouter.Use(middleware.AdminOnly)
		adminRouter.Post("/", h.createEvent)
		adminRouter.Put("/{eventID}", h.updateEvent)
		adminRouter.Delete("/{eventID}", h.deleteEvent)
	})
}

func (h *EventHandler) listEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.ListEvents(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, events)
}

func (h *EventHandler) getEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.eventService.GetEvent(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, event)
}

func (h *EventHandler) getEventBySlug(w http.ResponseWriter, r *http.Request) {
	event, err := h.eventService.GetEventBySlug(r.Context(), chi.URLParam(r, "eventSlug"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, event)
}

func (h *EventHandler) createEvent(w http.ResponseWriter, r *http.Request) {
	creatorID, _ := middleware.GetUserIDFromContext(r.Context())

	var req service.EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	event, err := h.eventService.CreateEvent(r.Context(), creatorID, req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	common.RespondWithJSON(w, http.StatusCreated, struct {
		Message string       `json:"message"`
		Event   *model.Event `json:"event"`
	}{"Event created successfully", event})
}

func (h *EventHandler) updateEvent(w http.ResponseWriter, r *http.Request) {
	var req service.EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	event, err := h.eventService.UpdateEvent(r.Context(), chi.URLParam(r, "eventID"), req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	common.RespondWithJSON(w, http.StatusOK, struct {
		Message string       `json:"message"`
		Event   *model.Event `json:"event"`
	}{"Event updated successfully", event})
}

func (h *EventHandler) deleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	if err := h.eventService.DeleteEvent(r.Context(), eventID); err != nil {
		h.respondError(w, err)
		return
	}

	common.RespondWithJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
		EventID string `json:"event_id"`
	}{"Event deleted successfully", eventID})
}

func (h *EventHandler) respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, common.ErrNotFound) {
		common.RespondWithError(w, http.StatusNotFound, "Event not found.")
		return
	}
	common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
}
