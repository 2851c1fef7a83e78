package handler

import (
	"net/http"
	"strconv"

	"sukhan/internal/delivery/http/response"
	"sukhan/internal/domain/repository"
	"sukhan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler covers the back-office surface that is not tied to one
// content type: user administration, settings and maintenance.
type AdminHandler struct {
	userUC       usecase.UserUsecase
	settingsUC   usecase.SettingsUsecase
	engagementUC usecase.EngagementUsecase
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(userUC usecase.UserUsecase, settingsUC usecase.SettingsUsecase, engagementUC usecase.EngagementUsecase) *AdminHandler {
	return &AdminHandler{
		userUC:       userUC,
		settingsUC:   settingsUC,
		engagementUC: engagementUC,
	}
}

type userPage struct {
	Users any   `json:"users"`
	Total int64 `json:"total"`
}

// ListUsers returns the admin user listing.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	filter := repository.UserListFilter{
		Search: c.QueryParam("search"),
		Role:   c.QueryParam("role"),
	}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	users, total, err := h.userUC.ListUsers(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, userPage{Users: users, Total: total}, "")
}

type blockRequest struct {
	Blocked bool `json:"blocked"`
}

// SetUserBlocked toggles the blocked flag on an account.
func (h *AdminHandler) SetUserBlocked(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	var input blockRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}

	if err := h.userUC.SetBlocked(c.Request().Context(), actorFrom(c), userID, input.Blocked); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User block state updated")
}

// DeleteUser removes an account and its engagement facts.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), actorFrom(c), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted")
}

// GetSettings returns all settings merged over the defaults.
func (h *AdminHandler) GetSettings(c echo.Context) error {
	settings, err := h.settingsUC.GetSettings(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, settings, "")
}

type settingRequest struct {
	Value string `json:"value" validate:"required"`
}

// UpdateSetting upserts one setting key.
func (h *AdminHandler) UpdateSetting(c echo.Context) error {
	var input settingRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid setting input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	setting, err := h.settingsUC.UpdateSetting(c.Request().Context(), c.Param("key"), input.Value)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, setting, "Setting updated")
}

// ReconcileCounters recomputes every denormalized counter from the facts.
func (h *AdminHandler) ReconcileCounters(c echo.Context) error {
	if err := h.engagementUC.ReconcileCounters(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Counters reconciled")
}
