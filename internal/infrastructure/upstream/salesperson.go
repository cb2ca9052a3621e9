package upstream

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/dealerhub/dealer-portal/internal/core/ports"
)

// SalespersonClient implements ports.SalespersonAPI.
type SalespersonClient struct {
	c *Client
}

func NewSalespersonClient(c *Client) *SalespersonClient {
	return &SalespersonClient{c: c}
}

func (s *SalespersonClient) Customers(ctx context.Context, token string) (json.RawMessage, error) {
	return s.c.Get(ctx, token, "/salesperson/customers", nil)
}

func (s *SalespersonClient) CreateCustomer(ctx context.Context, token string, body []byte) (json.RawMessage, error) {
	return s.c.Post(ctx, token, "/salesperson/customers", body)
}

func (s *SalespersonClient) UpdateCustomer(ctx context.Context, token, id string, body []byte) (json.RawMessage, error) {
	return s.c.Put(ctx, token, "/salesperson/customers/"+url.PathEscape(id), body)
}

func (s *SalespersonClient) DeleteCustomer(ctx context.Context, token, id string) (json.RawMessage, error) {
	return s.c.Delete(ctx, token, "/salesperson/customers/"+url.PathEscape(id))
}

func (s *SalespersonClient) SearchCustomers(ctx context.Context, token, name string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("name", name)
	return s.c.Get(ctx, token, "/salesperson/customers/search", q)
}

func (s *SalespersonClient) Cars(ctx context.Context, token string) (json.RawMessage, error) {
	return s.c.Get(ctx, token, "/salesperson/cars", nil)
}

func (s *SalespersonClient) CreateCar(ctx context.Context, token string, body []byte) (json.RawMessage, error) {
	return s.c.Post(ctx, token, "/salesperson/cars", body)
}

func (s *SalespersonClient) UpdateCar(ctx context.Context, token, id string, body []byte) (json.RawMessage, error) {
	return s.c.Put(ctx, token, "/salesperson/cars/"+url.PathEscape(id), body)
}

func (s *SalespersonClient) DeleteCar(ctx context.Context, token, id string) (json.RawMessage, error) {
	return s.c.Delete(ctx, token, "/salesperson/cars/"+url.PathEscape(id))
}

// SearchCars forwards only the parameters the user filled in, matching the
// backend's optional-parameter contract.
func (s *SalespersonClient) SearchCars(ctx context.Context, token string, sc ports.CarSearch) (json.RawMessage, error) {
	q := url.Values{}
	if sc.SerialNumber != "" {
		q.Set("serialNumber", sc.SerialNumber)
	}
	if sc.Model != "" {
		q.Set("model", sc.Model)
	}
	if sc.Year != "" {
		q.Set("year", sc.Year)
	}
	return s.c.Get(ctx, token, "/salesperson/cars/search", q)
}

func (s *SalespersonClient) Parts(ctx context.Context, token string) (json.RawMessage, error) {
	return s.c.Get(ctx, token, "/salesperson/parts", nil)
}

func (s *SalespersonClient) CreatePart(ctx context.Context, token string, body []byte) (json.RawMessage, error) {
	return s.c.Post(ctx, token, "/salesperson/parts", body)
}

func (s *SalespersonClient) UpdatePart(ctx context.Context, token, id string, body []byte) (json.RawMessage, error) {
	return s.c.Put(ctx, token, "/salesperson/parts/"+url.PathEscape(id), body)
}

func (s *SalespersonClient) DeletePart(ctx context.Context, token, id string) (json.RawMessage, error) {
	return s.c.Delete(ctx, token, "/salesperson/parts/"+url.PathEscape(id))
}

func (s *SalespersonClient) SearchParts(ctx context.Context, token, partName string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("partName", partName)
	return s.c.Get(ctx, token, "/salesperson/parts/search", q)
}

func (s *SalespersonClient) Invoices(ctx context.Context, token string) (json.RawMessage, error) {
	return s.c.Get(ctx, token, "/salesperson/invoices", nil)
}

func (s *SalespersonClient) CreateInvoice(ctx context.Context, token string, body []byte) (json.RawMessage, error) {
	return s.c.Post(ctx, token, "/salesperson/invoices", body)
}

func (s *SalespersonClient) ServiceTickets(ctx context.Context, token string) (json.RawMessage, error) {
	return s.c.Get(ctx, token, "/salesperson/service-tickets", nil)
}

func (s *SalespersonClient) CreateServiceTicket(ctx context.Context, token string, body []byte) (json.RawMessage, error) {
	return s.c.Post(ctx, token, "/salesperson/service-tickets", body)
}

func (s *SalespersonClient) ServiceTicket(ctx context.Context, token, id string) (json.RawMessage, error) {
	return s.c.Get(ctx, token, "/salesperson/service-tickets/"+url.PathEscape(id), nil)
}

func (s *SalespersonClient) Report(ctx context.Context, token, name string) (json.RawMessage, error) {
	return s.c.Get(ctx, token, "/salesperson/reports/"+url.PathEscape(name), nil)
}
