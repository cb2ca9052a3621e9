package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dealerhub/dealer-portal/internal/api/middleware"
	"github.com/dealerhub/dealer-portal/internal/core/domain"
)

// DashboardHandler renders the role-dispatched landing view.
type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

type menuEntry struct {
	Title string `json:"title"`
	Path  string `json:"path"`
}

type dashboardResponse struct {
	User *domain.Session `json:"user"`
	Role string          `json:"role"`
	Menu []menuEntry     `json:"menu"`
}

// Overview returns the dashboard for the session's role.
//
// @Summary      Role dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Overview(c echo.Context) error {
	state := middleware.State(c)
	return c.JSON(http.StatusOK, dashboardResponse{
		User: state.User,
		Role: string(state.Role),
		Menu: menuFor(state.Role),
	})
}

// menuFor matches exhaustively over the closed role set, so adding a role
// is a compile-visible change here rather than a silently empty dashboard.
func menuFor(role domain.Role) []menuEntry {
	switch role {
	case domain.RoleSalesperson:
		return []menuEntry{
			{Title: "Customers", Path: "/salesperson/customers"},
			{Title: "Cars", Path: "/salesperson/cars"},
			{Title: "Parts", Path: "/salesperson/parts"},
			{Title: "Invoices", Path: "/salesperson/invoices"},
			{Title: "Service Tickets", Path: "/service-tickets"},
			{Title: "Reports", Path: "/salesperson/reports/cars-sold-by-year"},
		}
	case domain.RoleMechanic:
		return []menuEntry{
			{Title: "Service Tickets", Path: "/service-tickets"},
			{Title: "Services", Path: "/mechanic/services"},
		}
	case domain.RoleCustomer:
		return []menuEntry{
			{Title: "My Service Tickets", Path: "/customer/service-tickets"},
			{Title: "My Invoices", Path: "/customer/invoices"},
			{Title: "Profile", Path: "/profile"},
		}
	case domain.RoleUnknown:
		// Authenticated but unrecognized: the dashboard stays reachable,
		// every role-gated view does not.
		return []menuEntry{}
	default:
		return []menuEntry{}
	}
}
