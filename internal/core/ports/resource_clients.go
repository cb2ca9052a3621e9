package ports

import (
	"context"
	"encoding/json"
)

// Resource clients wrap the role-scoped upstream APIs. Each call attaches the
// bearer token exactly as the session store holds it and returns the upstream
// response body unmodified; the portal adds no interpretation of its own.

// CarSearch carries the optional car search parameters; empty fields are
// omitted from the query string.
type CarSearch struct {
	SerialNumber string
	Model        string
	Year         string
}

// TicketSearch carries the optional mechanic ticket search parameters.
type TicketSearch struct {
	CustID       string
	CarID        string
	DateReceived string
}

// WorkUpdate carries the fields of a mechanic work-progress update.
type WorkUpdate struct {
	Hours   string
	Comment string
	Rate    string
}

// SalespersonAPI covers the /salesperson upstream resources.
type SalespersonAPI interface {
	Customers(ctx context.Context, token string) (json.RawMessage, error)
	CreateCustomer(ctx context.Context, token string, body []byte) (json.RawMessage, error)
	UpdateCustomer(ctx context.Context, token, id string, body []byte) (json.RawMessage, error)
	DeleteCustomer(ctx context.Context, token, id string) (json.RawMessage, error)
	SearchCustomers(ctx context.Context, token, name string) (json.RawMessage, error)

	Cars(ctx context.Context, token string) (json.RawMessage, error)
	CreateCar(ctx context.Context, token string, body []byte) (json.RawMessage, error)
	UpdateCar(ctx context.Context, token, id string, body []byte) (json.RawMessage, error)
	DeleteCar(ctx context.Context, token, id string) (json.RawMessage, error)
	SearchCars(ctx context.Context, token string, q CarSearch) (json.RawMessage, error)

	Parts(ctx context.Context, token string) (json.RawMessage, error)
	CreatePart(ctx context.Context, token string, body []byte) (json.RawMessage, error)
	UpdatePart(ctx context.Context, token, id string, body []byte) (json.RawMessage, error)
	DeletePart(ctx context.Context, token, id string) (json.RawMessage, error)
	SearchParts(ctx context.Context, token, partName string) (json.RawMessage, error)

	Invoices(ctx context.Context, token string) (json.RawMessage, error)
	CreateInvoice(ctx context.Context, token string, body []byte) (json.RawMessage, error)

	ServiceTickets(ctx context.Context, token string) (json.RawMessage, error)
	CreateServiceTicket(ctx context.Context, token string, body []byte) (json.RawMessage, error)
	ServiceTicket(ctx context.Context, token, id string) (json.RawMessage, error)

	Report(ctx context.Context, token, name string) (json.RawMessage, error)
}

// MechanicAPI covers the /mechanic upstream resources.
type MechanicAPI interface {
	ServiceTickets(ctx context.Context, token string) (json.RawMessage, error)
	ServiceTicket(ctx context.Context, token, id string) (json.RawMessage, error)
	SearchServiceTickets(ctx context.Context, token string, q TicketSearch) (json.RawMessage, error)
	UpdateServiceTicket(ctx context.Context, token, id string, body []byte) (json.RawMessage, error)
	UpdateServiceTicketWork(ctx context.Context, token, id string, w WorkUpdate) (json.RawMessage, error)

	Services(ctx context.Context, token string) (json.RawMessage, error)
	CreateService(ctx context.Context, token string, body []byte) (json.RawMessage, error)
	UpdateService(ctx context.Context, token, id string, body []byte) (json.RawMessage, error)
	DeleteService(ctx context.Context, token, id string) (json.RawMessage, error)
}

// CustomerAPI covers the /customer upstream resources.
type CustomerAPI interface {
	ServiceTickets(ctx context.Context, token string) (json.RawMessage, error)
	ServiceTicket(ctx context.Context, token, id string) (json.RawMessage, error)
	Invoices(ctx context.Context, token string) (json.RawMessage, error)
	Invoice(ctx context.Context, token, id string) (json.RawMessage, error)
	Profile(ctx context.Context, token string) (json.RawMessage, error)
	UpdateProfile(ctx context.Context, token string, body []byte) (json.RawMessage, error)
}
