package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dealerhub/dealer-portal/internal/api/middleware"
	"github.com/dealerhub/dealer-portal/internal/core/domain"
	"github.com/dealerhub/dealer-portal/internal/core/ports"
)

// ProfileHandler serves the role-neutral profile view. Customers get their
// backend profile; staff see their session identity.
type ProfileHandler struct {
	customers ports.CustomerAPI
}

func NewProfileHandler(customers ports.CustomerAPI) *ProfileHandler {
	return &ProfileHandler{customers: customers}
}

type identityResponse struct {
	User *domain.Session `json:"user"`
}

// Show returns the profile for the current session.
//
// @Summary      Profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /profile [get]
func (h *ProfileHandler) Show(c echo.Context) error {
	state := middleware.State(c)
	if state.Role == domain.RoleCustomer {
		body, err := h.customers.Profile(c.Request().Context(), state.User.Token)
		return proxy(c, body, err)
	}
	return c.JSON(http.StatusOK, identityResponse{User: state.User})
}
