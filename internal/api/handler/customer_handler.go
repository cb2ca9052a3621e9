package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/dealerhub/dealer-portal/internal/core/ports"
)

// CustomerHandler proxies the customer self-service screens.
type CustomerHandler struct {
	api ports.CustomerAPI
}

func NewCustomerHandler(api ports.CustomerAPI) *CustomerHandler {
	return &CustomerHandler{api: api}
}

func (h *CustomerHandler) ServiceTickets(c echo.Context) error {
	body, err := h.api.ServiceTickets(c.Request().Context(), token(c))
	return proxy(c, body, err)
}

func (h *CustomerHandler) ServiceTicket(c echo.Context) error {
	body, err := h.api.ServiceTicket(c.Request().Context(), token(c), c.Param("id"))
	return proxy(c, body, err)
}

func (h *CustomerHandler) Invoices(c echo.Context) error {
	body, err := h.api.Invoices(c.Request().Context(), token(c))
	return proxy(c, body, err)
}

func (h *CustomerHandler) Invoice(c echo.Context) error {
	body, err := h.api.Invoice(c.Request().Context(), token(c), c.Param("id"))
	return proxy(c, body, err)
}

func (h *CustomerHandler) UpdateProfile(c echo.Context) error {
	payload, err := readBody(c)
	if err != nil {
		return err
	}
	body, err := h.api.UpdateProfile(c.Request().Context(), token(c), payload)
	return proxy(c, body, err)
}
