package booking

import (
	"errors"
	"time"

	"marketplace-api/internal/domain/catalog"

	"github.com/google/uuid"
)

var (
	ErrInvalidTotal     = errors.New("total amount must be positive")
	ErrInvalidSchedule  = errors.New("scheduled time is invalid")
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrNotConfirmable   = errors.New("booking cannot be confirmed from its current status")
	ErrNotCancellable   = errors.New("booking cannot be cancelled from its current status")
	ErrMissingReference = errors.New("service and provider are required")
)

// Booking is the persisted outcome of a completed step-2 transition. It is
// created once per wizard session (the draft token doubles as the
// idempotency key) and confirmed either by the payment transaction (instant)
// or on delivery (cash).
type Booking struct {
	id          uuid.UUID
	companyID   uuid.UUID
	serviceID   uuid.UUID
	providerID  uuid.UUID
	userID      uuid.UUID
	scheduledAt time.Time
	address     string
	notes       string
	addonIDs    []uuid.UUID
	paymentType PaymentType
	total       catalog.Money
	currency    string
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBooking(
	companyID, serviceID, providerID, userID uuid.UUID,
	scheduledAt time.Time,
	address, notes string,
	addonIDs []uuid.UUID,
	paymentType PaymentType,
	total catalog.Money,
	currency string,
) (*Booking, error) {
	if serviceID == uuid.Nil || providerID == uuid.Nil {
		return nil, ErrMissingReference
	}
	if scheduledAt.IsZero() {
		return nil, ErrInvalidSchedule
	}
	if !paymentType.IsValid() {
		return nil, errors.New("invalid payment type")
	}
	if !total.IsPositive() {
		return nil, ErrInvalidTotal
	}

	return &Booking{
		id:          uuid.New(),
		companyID:   companyID,
		serviceID:   serviceID,
		providerID:  providerID,
		userID:      userID,
		scheduledAt: scheduledAt,
		address:     address,
		notes:       notes,
		addonIDs:    addonIDs,
		paymentType: paymentType,
		total:       total,
		currency:    currency,
		status:      StatusPending,
	}, nil
}

func ReconstructBooking(
	id, companyID, serviceID, providerID, userID uuid.UUID,
	scheduledAt time.Time,
	address, notes string,
	addonIDs []uuid.UUID,
	paymentType PaymentType,
	total catalog.Money,
	currency string,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		companyID:   companyID,
		serviceID:   serviceID,
		providerID:  providerID,
		userID:      userID,
		scheduledAt: scheduledAt,
		address:     address,
		notes:       notes,
		addonIDs:    addonIDs,
		paymentType: paymentType,
		total:       total,
		currency:    currency,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *Booking) Confirm() error {
	if b.status != StatusPending {
		return ErrNotConfirmable
	}
	b.status = StatusConfirmed
	return nil
}

func (b *Booking) Cancel() error {
	if b.status == StatusCompleted || b.status == StatusCancelled {
		return ErrNotCancellable
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) Complete() error {
	if b.status != StatusConfirmed {
		return ErrInvalidStatus
	}
	b.status = StatusCompleted
	return nil
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) CompanyID() uuid.UUID     { return b.companyID }
func (b *Booking) ServiceID() uuid.UUID     { return b.serviceID }
func (b *Booking) ProviderID() uuid.UUID    { return b.providerID }
func (b *Booking) UserID() uuid.UUID        { return b.userID }
func (b *Booking) ScheduledAt() time.Time   { return b.scheduledAt }
func (b *Booking) Address() string          { return b.address }
func (b *Booking) Notes() string            { return b.notes }
func (b *Booking) AddonIDs() []uuid.UUID    { return b.addonIDs }
func (b *Booking) PaymentType() PaymentType { return b.paymentType }
func (b *Booking) Total() catalog.Money     { return b.total }
func (b *Booking) Currency() string         { return b.currency }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }
