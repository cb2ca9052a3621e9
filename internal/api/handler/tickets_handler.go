package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dealerhub/dealer-portal/internal/api/middleware"
	"github.com/dealerhub/dealer-portal/internal/core/domain"
	"github.com/dealerhub/dealer-portal/internal/core/ports"
)

// TicketsHandler serves the shared /service-tickets route, dispatching to the
// salesperson or mechanic resource API depending on who is asking. Customers
// have their own /customer/service-tickets view and are denied here, mirroring
// the access rules of the per-role areas.
type TicketsHandler struct {
	sales ports.SalespersonAPI
	mech  ports.MechanicAPI
}

func NewTicketsHandler(sales ports.SalespersonAPI, mech ports.MechanicAPI) *TicketsHandler {
	return &TicketsHandler{sales: sales, mech: mech}
}

type ticketsDeniedResponse struct {
	Error   string `json:"error"`
	Recover string `json:"recover"`
}

// List returns the service tickets visible to the session's role.
//
// @Summary      Service tickets (role-dispatched)
// @Tags         tickets
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  ticketsDeniedResponse
// @Router       /service-tickets [get]
func (h *TicketsHandler) List(c echo.Context) error {
	state := middleware.State(c)
	ctx := c.Request().Context()

	switch state.Role {
	case domain.RoleSalesperson:
		body, err := h.sales.ServiceTickets(ctx, state.User.Token)
		return proxy(c, body, err)
	case domain.RoleMechanic:
		body, err := h.mech.ServiceTickets(ctx, state.User.Token)
		return proxy(c, body, err)
	case domain.RoleCustomer, domain.RoleUnknown:
		return c.JSON(http.StatusForbidden, ticketsDeniedResponse{
			Error:   "you don't have permission to access service tickets",
			Recover: middleware.DashboardPath,
		})
	default:
		return c.JSON(http.StatusForbidden, ticketsDeniedResponse{
			Error:   "you don't have permission to access service tickets",
			Recover: middleware.DashboardPath,
		})
	}
}
