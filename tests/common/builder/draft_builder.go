//go:build unit || e2e

package builder

import (
	"time"

	"marketplace-api/internal/domain/booking"

	"github.com/google/uuid"
)

// DraftBuilder assembles a wizard draft that has already passed step 1: a
// valid schedule backed by the slot cache and a complete customer block.
type DraftBuilder struct {
	UserID        uuid.UUID
	ScheduledDate string
	ScheduledTime string
	Slots         []string
	Customer      booking.CustomerInfo
	Step          booking.Step
	PaymentType   booking.PaymentType
	Service       *ServiceBuilder
}

func NewDraftBuilder() *DraftBuilder {
	return &DraftBuilder{
		UserID:        uuid.New(),
		ScheduledDate: "2026-09-15",
		ScheduledTime: "10:00",
		Slots:         []string{"09:00", "10:00", "11:00"},
		Customer: booking.CustomerInfo{
			Name:    "Jordan Smith",
			Email:   "jordan@example.com",
			Phone:   "5551234567",
			Address: "42 Long Enough Street, Springfield",
		},
		Step:    booking.StepDetails,
		Service: NewServiceBuilder(),
	}
}

func (b *DraftBuilder) With(mutate func(*DraftBuilder)) *DraftBuilder {
	mutate(b)
	return b
}

func (b *DraftBuilder) WithStep(step booking.Step) *DraftBuilder {
	b.Step = step
	return b
}

func (b *DraftBuilder) WithPaymentType(pt booking.PaymentType) *DraftBuilder {
	b.PaymentType = pt
	return b
}

func (b *DraftBuilder) WithoutSchedule() *DraftBuilder {
	b.ScheduledDate = ""
	b.ScheduledTime = ""
	b.Slots = nil
	return b
}

func (b *DraftBuilder) BuildDomain() *booking.Draft {
	svc, addons := b.Service.BuildDomain()
	d := booking.NewDraft(b.UserID, svc, addons, nil, time.Now())
	d.ScheduledDate = b.ScheduledDate
	d.ScheduledTime = b.ScheduledTime
	if len(b.Slots) > 0 {
		d.ApplySlots(b.ScheduledDate, b.Slots, d.NextSlotSeq())
	}
	d.Customer = b.Customer
	d.Step = b.Step
	d.PaymentType = b.PaymentType
	return d
}
