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

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listUsers)
	r.Get("/{userID}", h.getUser)
	r.Put("/{userID}", h.updateUser) // self-or-admin, enforced in the service

	r.Group(func(adminRouter chi.Router) {
		adminRouter.Use(middleware.AdminOnly)
		adminRouter.Post("/", h.createUser)
		adminRouter.Delete("/{userID}", h.deleteUser)
	})
}

func (h *UserHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, users)
}

func (h *UserHandler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user)
}

func (h *UserHandler) createUser(w http.ResponseWriter, r *http.Request) {
	var req service.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.userService.CreateUser(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	common.RespondWithJSON(w, http.StatusCreated, struct {
		Message string      `json:"message"`
		User    *model.User `json:"user"`
	}{"User created successfully", user})
}

func (h *UserHandler) updateUser(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	actorRole, _ := middleware.GetUserRoleFromContext(r.Context())

	var req service.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), actorID, actorRole, chi.URLParam(r, "userID"), req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	common.RespondWithJSON(w, http.StatusOK, struct {
		Message string      `json:"message"`
		User    *model.User `json:"user"`
	}{"User updated successfully", user})
}

func (h *UserHandler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if err := h.userService.DeleteUser(r.Context(), userID); err != nil {
		h.respondError(w, err)
		return
	}

	common.RespondWithJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
		UserID  string `json:"user_id"`
	}{"User deleted successfully", userID})
}

func (h *UserHandler) respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, common.ErrNotFound) {
		common.RespondWithError(w, http.StatusNotFound, "User not found.")
		return
	}
	common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
}
