package upstream

import (
	"context"
	"encoding/json"
	"net/url"
)

// CustomerClient implements ports.CustomerAPI.
type CustomerClient struct {
	c *Client
}

func NewCustomerClient(c *Client) *CustomerClient {
	return &CustomerClient{c: c}
}

func (cc *CustomerClient) ServiceTickets(ctx context.Context, token string) (json.RawMessage, error) {
	return cc.c.Get(ctx, token, "/customer/service-tickets", nil)
}

func (cc *CustomerClient) ServiceTicket(ctx context.Context, token, id string) (json.RawMessage, error) {
	return cc.c.Get(ctx, token, "/customer/service-tickets/"+url.PathEscape(id), nil)
}

func (cc *CustomerClient) Invoices(ctx context.Context, token string) (json.RawMessage, error) {
	return cc.c.Get(ctx, token, "/customer/invoices", nil)
}

func (cc *CustomerClient) Invoice(ctx context.Context, token, id string) (json.RawMessage, error) {
	return cc.c.Get(ctx, token, "/customer/invoices/"+url.PathEscape(id), nil)
}

func (cc *CustomerClient) Profile(ctx context.Context, token string) (json.RawMessage, error) {
	return cc.c.Get(ctx, token, "/customer/profile", nil)
}

func (cc *CustomerClient) UpdateProfile(ctx context.Context, token string, body []byte) (json.RawMessage, error) {
	return cc.c.Put(ctx, token, "/customer/profile", body)
}
