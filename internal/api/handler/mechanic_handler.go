package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/dealerhub/dealer-portal/internal/core/ports"
)

// MechanicHandler proxies the mechanic resource screens: assigned service
// tickets and the services catalog.
type MechanicHandler struct {
	api ports.MechanicAPI
}

func NewMechanicHandler(api ports.MechanicAPI) *MechanicHandler {
	return &MechanicHandler{api: api}
}

func (h *MechanicHandler) ServiceTickets(c echo.Context) error {
	body, err := h.api.ServiceTickets(c.Request().Context(), token(c))
	return proxy(c, body, err)
}

func (h *MechanicHandler) ServiceTicket(c echo.Context) error {
	body, err := h.api.ServiceTicket(c.Request().Context(), token(c), c.Param("id"))
	return proxy(c, body, err)
}

func (h *MechanicHandler) SearchServiceTickets(c echo.Context) error {
	q := ports.TicketSearch{
		CustID:       c.QueryParam("custID"),
		CarID:        c.QueryParam("carID"),
		DateReceived: c.QueryParam("dateReceived"),
	}
	body, err := h.api.SearchServiceTickets(c.Request().Context(), token(c), q)
	return proxy(c, body, err)
}

func (h *MechanicHandler) UpdateServiceTicket(c echo.Context) error {
	payload, err := readBody(c)
	if err != nil {
		return err
	}
	body, err := h.api.UpdateServiceTicket(c.Request().Context(), token(c), c.Param("id"), payload)
	return proxy(c, body, err)
}

// UpdateWork records hours, a comment, and a rate against a ticket.
//
// @Summary      Update work progress on a ticket
// @Tags         mechanic
// @Produce      json
// @Param        id       path      string  true   "Ticket ID"
// @Param        hours    query     string  false  "Hours worked"
// @Param        comment  query     string  false  "Progress comment"
// @Param        rate     query     string  false  "Hourly rate"
// @Success      200      {object}  map[string]any
// @Router       /mechanic/service-tickets/{id}/update-work [patch]
func (h *MechanicHandler) UpdateWork(c echo.Context) error {
	w := ports.WorkUpdate{
		Hours:   c.QueryParam("hours"),
		Comment: c.QueryParam("comment"),
		Rate:    c.QueryParam("rate"),
	}
	body, err := h.api.UpdateServiceTicketWork(c.Request().Context(), token(c), c.Param("id"), w)
	return proxy(c, body, err)
}

func (h *MechanicHandler) Services(c echo.Context) error {
	body, err := h.api.Services(c.Request().Context(), token(c))
	return proxy(c, body, err)
}

func (h *MechanicHandler) CreateService(c echo.Context) error {
	payload, err := readBody(c)
	if err != nil {
		return err
	}
	body, err := h.api.CreateService(c.Request().Context(), token(c), payload)
	return proxy(c, body, err)
}

func (h *MechanicHandler) UpdateService(c echo.Context) error {
	payload, err := readBody(c)
	if err != nil {
		return err
	}
	body, err := h.api.UpdateService(c.Request().Context(), token(c), c.Param("id"), payload)
	return proxy(c, body, err)
}

func (h *MechanicHandler) DeleteService(c echo.Context) error {
	body, err := h.api.DeleteService(c.Request().Context(), token(c), c.Param("id"))
	return proxy(c, body, err)
}
