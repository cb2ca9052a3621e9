package upstream

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/dealerhub/dealer-portal/internal/core/ports"
)

// MechanicClient implements ports.MechanicAPI.
type MechanicClient struct {
	c *Client
}

func NewMechanicClient(c *Client) *MechanicClient {
	return &MechanicClient{c: c}
}

func (m *MechanicClient) ServiceTickets(ctx context.Context, token string) (json.RawMessage, error) {
	return m.c.Get(ctx, token, "/mechanic/service-tickets", nil)
}

func (m *MechanicClient) ServiceTicket(ctx context.Context, token, id string) (json.RawMessage, error) {
	return m.c.Get(ctx, token, "/mechanic/service-tickets/"+url.PathEscape(id), nil)
}

func (m *MechanicClient) SearchServiceTickets(ctx context.Context, token string, ts ports.TicketSearch) (json.RawMessage, error) {
	q := url.Values{}
	if ts.CustID != "" {
		q.Set("custID", ts.CustID)
	}
	if ts.CarID != "" {
		q.Set("carID", ts.CarID)
	}
	if ts.DateReceived != "" {
		q.Set("dateReceived", ts.DateReceived)
	}
	return m.c.Get(ctx, token, "/mechanic/service-tickets/search", q)
}

func (m *MechanicClient) UpdateServiceTicket(ctx context.Context, token, id string, body []byte) (json.RawMessage, error) {
	return m.c.Put(ctx, token, "/mechanic/service-tickets/"+url.PathEscape(id), body)
}

// UpdateServiceTicketWork forwards the work fields as query parameters; that
// is the shape of the backend's PATCH endpoint, not a portal choice.
func (m *MechanicClient) UpdateServiceTicketWork(ctx context.Context, token, id string, w ports.WorkUpdate) (json.RawMessage, error) {
	q := url.Values{}
	if w.Hours != "" {
		q.Set("hours", w.Hours)
	}
	if w.Comment != "" {
		q.Set("comment", w.Comment)
	}
	if w.Rate != "" {
		q.Set("rate", w.Rate)
	}
	return m.c.Patch(ctx, token, "/mechanic/service-tickets/"+url.PathEscape(id)+"/update-work", q)
}

func (m *MechanicClient) Services(ctx context.Context, token string) (json.RawMessage, error) {
	return m.c.Get(ctx, token, "/mechanic/services", nil)
}

func (m *MechanicClient) CreateService(ctx context.Context, token string, body []byte) (json.RawMessage, error) {
	return m.c.Post(ctx, token, "/mechanic/services", body)
}

func (m *MechanicClient) UpdateService(ctx context.Context, token, id string, body []byte) (json.RawMessage, error) {
	return m.c.Put(ctx, token, "/mechanic/services/"+url.PathEscape(id), body)
}

func (m *MechanicClient) DeleteService(ctx context.Context, token, id string) (json.RawMessage, error) {
	return m.c.Delete(ctx, token, "/mechanic/services/"+url.PathEscape(id))
}
