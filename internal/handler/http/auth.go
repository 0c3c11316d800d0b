// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/legal-dms/internal/app"
	"github.com/MKhiriev/legal-dms/internal/logger"
	"github.com/MKhiriev/legal-dms/internal/service"
	"github.com/MKhiriev/legal-dms/internal/utils"
	"github.com/MKhiriev/legal-dms/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := decodeJSON(w, r, &credentials, false); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.UserID).Str("username", user.Username).Msg("user registered")
	writeResponse(w, r, models.Response{
		Success: true,
		Message: app.MsgUserRegistered,
		User:    &user,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := decodeJSON(w, r, &credentials, false); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", result.User.UserID).Msg("user logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", result.Token.String()))
	writeResponse(w, r, models.Response{
		Success: true,
		Message: app.MsgLoginSuccess,
		Token:   result.Token.String(),
		User:    &result.User,
	}, http.StatusOK)
}

// me returns the identity carried by the verified token.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrNotAuthenticated)
		return
	}

	writeResponse(w, r, models.Response{
		Success: true,
		User: &models.PublicUser{
			UserID:   claims.UserID,
			Username: claims.Username,
			Email:    claims.Email,
			Role:     claims.Role,
			IsActive: true,
		},
	}, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.AuthService.ListActiveUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.Response{
		Success: true,
		Users:   users,
		Count:   count(len(users)),
	}, http.StatusOK)
}

// createAdmin provisions the single admin account. The body is optional
// apart from the password; username and email fall back to defaults.
func (h *Handler) createAdmin(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := decodeJSON(w, r, &credentials, true); err != nil {
		writeError(w, r, err)
		return
	}

	admin, err := h.services.AuthService.ProvisionAdmin(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Warn().Str("user_id", admin.UserID).Str("username", admin.Username).Msg("admin user provisioned")
	writeResponse(w, r, models.Response{
		Success: true,
		Message: app.MsgAdminCreated,
		User:    &admin,
	}, http.StatusCreated)
}

type demoUserRequest struct {
	Password string `json:"password"`
}

func (h *Handler) createDemo(w http.ResponseWriter, r *http.Request) {
	var req demoUserRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		writeError(w, r, err)
		return
	}

	demo, err := h.services.AuthService.ProvisionDemoUser(r.Context(), req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", demo.UserID).Msg("demo user provisioned")
	writeResponse(w, r, models.Response{
		Success: true,
		Message: app.MsgDemoUserCreated,
		User:    &demo,
	}, http.StatusCreated)
}
