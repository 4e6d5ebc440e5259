package payment

import (
	"errors"
	"time"

	"marketplace-api/internal/domain/catalog"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount  = errors.New("payment amount must be positive")
	ErrMissingBooking = errors.New("payment requires a booking")
)

type Method string

const (
	MethodCard Method = "card"
	MethodCash Method = "cash"
)

func (m Method) String() string {
	return string(m)
}

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusFailed  Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// Payment records an attempt against a booking. GatewayReference carries only
// the masked card reference (last 4) plus the gateway's own id; full card
// data is validated client-side of this entity and never stored.
type Payment struct {
	id               uuid.UUID
	companyID        uuid.UUID
	bookingID        uuid.UUID
	amount           catalog.Money
	currency         string
	method           Method
	status           Status
	gatewayReference string
	createdAt        time.Time
	updatedAt        time.Time
}

func NewPayment(companyID, bookingID uuid.UUID, amount catalog.Money, currency string, method Method, gatewayReference string) (*Payment, error) {
	if bookingID == uuid.Nil {
		return nil, ErrMissingBooking
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	status := StatusPending
	if method == MethodCard {
		status = StatusPaid
	}

	return &Payment{
		id:               uuid.New(),
		companyID:        companyID,
		bookingID:        bookingID,
		amount:           amount,
		currency:         currency,
		method:           method,
		status:           status,
		gatewayReference: gatewayReference,
	}, nil
}

func ReconstructPayment(
	id, companyID, bookingID uuid.UUID,
	amount catalog.Money,
	currency string,
	method Method,
	status Status,
	gatewayReference string,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:               id,
		companyID:        companyID,
		bookingID:        bookingID,
		amount:           amount,
		currency:         currency,
		method:           method,
		status:           status,
		gatewayReference: gatewayReference,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (p *Payment) ID() uuid.UUID            { return p.id }
func (p *Payment) CompanyID() uuid.UUID     { return p.companyID }
func (p *Payment) BookingID() uuid.UUID     { return p.bookingID }
func (p *Payment) Amount() catalog.Money    { return p.amount }
func (p *Payment) Currency() string         { return p.currency }
func (p *Payment) Method() Method           { return p.method }
func (p *Payment) Status() Status           { return p.status }
func (p *Payment) GatewayReference() string { return p.gatewayReference }
func (p *Payment) CreatedAt() time.Time     { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time     { return p.updatedAt }
