package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"golden9_club/internal/app/service"
	"golden9_club/internal/common"
	"golden9_club/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := h.authService.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			common.RespondWithError(w, http.StatusBadRequest, "Username, email, and password are required.")
		case errors.Is(err, common.ErrConflict):
			common.RespondWithError(w, http.StatusConflict, "User already exists with this email address.")
		default:
			common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		}
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			common.RespondWithError(w, http.StatusBadRequest, "Email and password are required.")
		case errors.Is(err, common.ErrUnauthorized):
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password.")
		case errors.Is(err, common.ErrForbidden):
			if strings.ToLower(req.Role) == model.RoleAdmin {
				common.RespondWithError(w, http.StatusForbidden, "Only admin accounts can sign in here.")
			} else {
				common.RespondWithError(w, http.StatusForbidden, "Only member accounts can sign in here.")
			}
		default:
			common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		}
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}
