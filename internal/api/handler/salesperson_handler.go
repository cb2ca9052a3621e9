package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dealerhub/dealer-portal/internal/api/middleware"
	"github.com/dealerhub/dealer-portal/internal/core/ports"
)

// reportNames whitelists the report endpoints the backend exposes.
var reportNames = map[string]struct{}{
	"cars-sold-by-year":         {},
	"car-sales-revenue-by-year": {},
	"best-selling-car-models":   {},
	"best-used-parts":           {},
	"top-mechanics":             {},
}

// SalespersonHandler proxies the salesperson resource screens: customers,
// cars, parts, invoices, service tickets, and reports.
type SalespersonHandler struct {
	api ports.SalespersonAPI
}

func NewSalespersonHandler(api ports.SalespersonAPI) *SalespersonHandler {
	return &SalespersonHandler{api: api}
}

// token returns the bearer token of the session already admitted by the
// route guard.
func token(c echo.Context) string {
	return middleware.State(c).User.Token
}

func (h *SalespersonHandler) Customers(c echo.Context) error {
	body, err := h.api.Customers(c.Request().Context(), token(c))
	return proxy(c, body, err)
}

func (h *SalespersonHandler) CreateCustomer(c echo.Context) error {
	payload, err := readBody(c)
	if err != nil {
		return err
	}
	body, err := h.api.CreateCustomer(c.Request().Context(), token(c), payload)
	return proxy(c, body, err)
}

func (h *SalespersonHandler) UpdateCustomer(c echo.Context) error {
	payload, err := readBody(c)
	if err != nil {
		return err
	}
	body, err := h.api.UpdateCustomer(c.Request().Context(), token(c), c.Param("id"), payload)
	return proxy(c, body, err)
}

func (h *SalespersonHandler) DeleteCustomer(c echo.Context) error {
	body, err := h.api.DeleteCustomer(c.Request().Context(), token(c), c.Param("id"))
	return proxy(c, body, err)
}

func (h *SalespersonHandler) SearchCustomers(c echo.Context) error {
	body, err := h.api.SearchCustomers(c.Request().Context(), token(c), c.QueryParam("name"))
	return proxy(c, body, err)
}

func (h *SalespersonHandler) Cars(c echo.Context) error {
	body, err := h.api.Cars(c.Request().Context(), token(c))
	return proxy(c, body, err)
}

func (h *SalespersonHandler) CreateCar(c echo.Context) error {
	payload, err := readBody(c)
	if err != nil {
		return err
	}
	body, err := h.api.CreateCar(c.Request().Context(), token(c), payload)
	return proxy(c, body, err)
}

func (h *SalespersonHandler) UpdateCar(c echo.Context) error {
	payload, err := readBody(c)
	if err != nil {
		return err
	}
	body, err := h.api.UpdateCar(c.Request().Context(), token(c), c.Param("id"), payload)
	return proxy(c, body, err)
}

func (h *SalespersonHandler) DeleteCar(c echo.Context) error {
	body, err := h.api.DeleteCar(c.Request().Context(), token(c), c.Param("id"))
	return proxy(c, body, err)
}

func (h *SalespersonHandler) SearchCars(c echo.Context) error {
	q := ports.CarSearch{
		SerialNumber: c.QueryParam("serialNumber"),
		Model:        c.QueryParam("model"),
		Year:         c.QueryParam("year"),
	}
	body, err := h.api.SearchCars(c.Request().Context(), token(c), q)
	return proxy(c, body, err)
}

func (h *SalespersonHandler) Parts(c echo.Context) error {
	body, err := h.api.Parts(c.Request().Context(), token(c))
	return proxy(c, body, err)
}

func (h *SalespersonHandler) CreatePart(c echo.Context) error {
	payload, err := readBody(c)
	if err != nil {
		return err
	}
	body, err := h.api.CreatePart(c.Request().Context(), token(c), payload)
	return proxy(c, body, err)
}

func (h *SalespersonHandler) UpdatePart(c echo.Context) error {
	payload, err := readBody(c)
	if err != nil {
		return err
	}
	body, err := h.api.UpdatePart(c.Request().Context(), token(c), c.Param("id"), payload)
	return proxy(c, body, err)
}

func (h *SalespersonHandler) DeletePart(c echo.Context) error {
	body, err := h.api.DeletePart(c.Request().Context(), token(c), c.Param("id"))
	return proxy(c, body, err)
}

func (h *SalespersonHandler) SearchParts(c echo.Context) error {
	body, err := h.api.SearchParts(c.Request().Context(), token(c), c.QueryParam("partName"))
	return proxy(c, body, err)
}

func (h *SalespersonHandler) Invoices(c echo.Context) error {
	body, err := h.api.Invoices(c.Request().Context(), token(c))
	return proxy(c, body, err)
}

func (h *SalespersonHandler) CreateInvoice(c echo.Context) error {
	payload, err := readBody(c)
	if err != nil {
		return err
	}
	body, err := h.api.CreateInvoice(c.Request().Context(), token(c), payload)
	return proxy(c, body, err)
}

func (h *SalespersonHandler) ServiceTickets(c echo.Context) error {
	body, err := h.api.ServiceTickets(c.Request().Context(), token(c))
	return proxy(c, body, err)
}

func (h *SalespersonHandler) CreateServiceTicket(c echo.Context) error {
	payload, err := readBody(c)
	if err != nil {
		return err
	}
	body, err := h.api.CreateServiceTicket(c.Request().Context(), token(c), payload)
	return proxy(c, body, err)
}

func (h *SalespersonHandler) ServiceTicket(c echo.Context) error {
	body, err := h.api.ServiceTicket(c.Request().Context(), token(c), c.Param("id"))
	return proxy(c, body, err)
}

// Report serves the named sales report.
//
// @Summary      Sales report
// @Tags         salesperson
// @Produce      json
// @Param        name  path      string  true  "Report name"
// @Success      200   {object}  map[string]any
// @Failure      404   {object}  map[string]string
// @Router       /salesperson/reports/{name} [get]
func (h *SalespersonHandler) Report(c echo.Context) error {
	name := c.Param("name")
	if _, ok := reportNames[name]; !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown report")
	}
	body, err := h.api.Report(c.Request().Context(), token(c), name)
	return proxy(c, body, err)
}
