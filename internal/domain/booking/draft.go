package booking

import (
	"errors"
	"time"

	"marketplace-api/internal/domain/catalog"

	"github.com/google/uuid"
)

var (
	ErrWizardCompleted  = errors.New("wizard already completed")
	ErrStepLocked       = errors.New("details can only change on the first step")
	ErrCannotGoBack     = errors.New("backward navigation not allowed from this step")
	ErrBookingNotCreated = errors.New("booking has not been created yet")
)

// CustomerInfo holds the step-1 contact fields. Prefilled marks fields taken
// from the authenticated profile; those are locked against edits, but the
// address stays editable and required either way.
type CustomerInfo struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Notes     string `json:"notes"`
	Prefilled bool   `json:"prefilled"`
}

// SlotCache is the latest availability fetch for a draft. Seq orders
// overlapping refreshes so a stale response can never clobber a newer one.
type SlotCache struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
	Seq   uint64   `json:"seq"`
}

func (s SlotCache) Contains(date, slot string) bool {
	if s.Date != date {
		return false
	}
	for _, v := range s.Slots {
		if v == slot {
			return true
		}
	}
	return false
}

// Draft is the wizard session persisted between requests. It is a stored
// record rather than a guarded aggregate; ValidateStep is the guard and runs
// on every transition and again right before the booking is created.
type Draft struct {
	Token          uuid.UUID    `json:"token"`
	UserID         uuid.UUID    `json:"userId"`
	ServiceID      uuid.UUID    `json:"serviceId"`
	ProviderID     uuid.UUID    `json:"providerId"`
	Step           Step         `json:"step"`
	ScheduledDate  string       `json:"scheduledDate"` // 2006-01-02
	ScheduledTime  string       `json:"scheduledTime"` // 15:04
	SelectedAddons []uuid.UUID  `json:"selectedAddons"`
	Customer       CustomerInfo `json:"customer"`
	PaymentType    PaymentType  `json:"paymentType"`
	Slots          SlotCache    `json:"slots"`
	BookingID      *uuid.UUID   `json:"bookingId,omitempty"`
	TotalCents     int64        `json:"totalCents"`
	Currency       string       `json:"currency"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// NewDraft opens a wizard session at step 1 with required addons
// pre-selected. A non-nil profile pre-fills and locks the contact fields.
func NewDraft(userID uuid.UUID, service *catalog.Service, addons []catalog.Addon, profile *CustomerInfo, now time.Time) *Draft {
	d := &Draft{
		Token:      uuid.New(),
		UserID:     userID,
		ServiceID:  service.ID(),
		ProviderID: service.ProviderID(),
		Step:       StepDetails,
		Currency:   service.Currency(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	d.SelectedAddons = catalog.NormalizeSelection(addons, nil)
	if profile != nil {
		d.Customer = *profile
		d.Customer.Prefilled = true
	}
	d.TotalCents = catalog.Quote(service, addons, d.SelectedAddons).Cents()
	return d
}

// SetAddons replaces the selection. Deselecting a required addon has no
// effect: the normalized result always contains the required set.
func (d *Draft) SetAddons(service *catalog.Service, addons []catalog.Addon, selected []uuid.UUID) {
	d.SelectedAddons = catalog.NormalizeSelection(addons, selected)
	d.TotalCents = catalog.Quote(service, addons, d.SelectedAddons).Cents()
}

// ApplySlots stores an availability fetch result, rejecting results older
// than what is already cached.
func (d *Draft) ApplySlots(date string, slots []string, seq uint64) bool {
	if seq <= d.Slots.Seq && d.Slots.Seq != 0 {
		return false
	}
	d.Slots = SlotCache{Date: date, Slots: slots, Seq: seq}
	return true
}

func (d *Draft) NextSlotSeq() uint64 {
	return d.Slots.Seq + 1
}

func (d *Draft) Total() catalog.Money {
	m, err := catalog.NewMoney(d.TotalCents)
	if err != nil {
		return catalog.Money{}
	}
	return m
}

// CanGoBack mirrors the wizard's Previous button: disabled on the first step,
// during payment, and on the terminal screen.
func (d *Draft) CanGoBack() bool {
	return d.Step == StepPaymentType || d.Step == StepReview
}

func (d *Draft) Back() error {
	if !d.CanGoBack() {
		return ErrCannotGoBack
	}
	d.Step--
	return nil
}

// ScheduledAt combines the date and time fields into one timestamp.
func (d *Draft) ScheduledAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", d.ScheduledDate+" "+d.ScheduledTime, loc)
}

func (d *Draft) IsCompleted() bool {
	return d.Step.IsTerminal()
}
