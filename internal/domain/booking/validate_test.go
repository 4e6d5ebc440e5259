//go:build unit

package booking_test

import (
	"testing"

	"marketplace-api/internal/domain/booking"
	"marketplace-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateStepDetails(t *testing.T) {
	cases := []struct {
		name       string
		mutate     func(*booking.Draft)
		wantFields []string
	}{
		{
			name:   "complete draft passes",
			mutate: func(*booking.Draft) {},
		},
		{
			name:       "missing date",
			mutate:     func(d *booking.Draft) { d.ScheduledDate = "" },
			wantFields: []string{"scheduledDate", "scheduledTime"},
		},
		{
			name:       "missing time",
			mutate:     func(d *booking.Draft) { d.ScheduledTime = "" },
			wantFields: []string{"scheduledTime"},
		},
		{
			name: "time outside the cached slot list",
			mutate: func(d *booking.Draft) {
				d.ScheduledTime = "23:45"
			},
			wantFields: []string{"scheduledTime"},
		},
		{
			name: "date change invalidates the chosen time",
			mutate: func(d *booking.Draft) {
				d.ApplySlots("2026-09-16", []string{"09:00"}, d.NextSlotSeq())
			},
			wantFields: []string{"scheduledTime"},
		},
		{
			name:       "short name",
			mutate:     func(d *booking.Draft) { d.Customer.Name = "Al" },
			wantFields: []string{"customerName"},
		},
		{
			name:       "bad email",
			mutate:     func(d *booking.Draft) { d.Customer.Email = "not-an-email" },
			wantFields: []string{"customerEmail"},
		},
		{
			name:       "phone with too few digits",
			mutate:     func(d *booking.Draft) { d.Customer.Phone = "555123" },
			wantFields: []string{"customerPhone"},
		},
		{
			name:   "phone with separators still counts ten digits",
			mutate: func(d *booking.Draft) { d.Customer.Phone = "555-123-4567" },
		},
		{
			name:       "short address",
			mutate:     func(d *booking.Draft) { d.Customer.Address = "nowhere" },
			wantFields: []string{"customerAddress"},
		},
		{
			name: "prefilled contact skips name email phone checks",
			mutate: func(d *booking.Draft) {
				d.Customer.Prefilled = true
				d.Customer.Name = ""
				d.Customer.Email = ""
				d.Customer.Phone = ""
			},
		},
		{
			name: "prefilled still requires an address",
			mutate: func(d *booking.Draft) {
				d.Customer.Prefilled = true
				d.Customer.Address = ""
			},
			wantFields: []string{"customerAddress"},
		},
		{
			name:       "missing provider",
			mutate:     func(d *booking.Draft) { d.ProviderID = uuid.Nil },
			wantFields: []string{"providerId"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := builder.NewDraftBuilder().BuildDomain()
			c.mutate(d)

			errs := booking.ValidateStep(d, booking.StepDetails)

			if len(c.wantFields) == 0 {
				assert.False(t, errs.Any(), "unexpected field errors: %v", errs)
				return
			}
			assert.Len(t, errs, len(c.wantFields))
			for _, f := range c.wantFields {
				assert.Contains(t, errs, f)
			}
		})
	}
}

func TestValidateStepPaymentType(t *testing.T) {
	t.Run("no selection blocks", func(t *testing.T) {
		d := builder.NewDraftBuilder().WithStep(booking.StepPaymentType).BuildDomain()

		errs := booking.ValidateStep(d, booking.StepPaymentType)

		assert.Contains(t, errs, "paymentType")
	})

	t.Run("both payment types pass", func(t *testing.T) {
		for _, pt := range []booking.PaymentType{booking.PaymentTypeInstant, booking.PaymentTypeCashOnDelivery} {
			d := builder.NewDraftBuilder().
				WithStep(booking.StepPaymentType).
				WithPaymentType(pt).
				BuildDomain()

			errs := booking.ValidateStep(d, booking.StepPaymentType)

			assert.False(t, errs.Any(), "payment type %s should pass", pt)
		}
	})
}

func TestValidateStepReview(t *testing.T) {
	d := builder.NewDraftBuilder().WithStep(booking.StepReview).BuildDomain()

	assert.False(t, booking.ValidateStep(d, booking.StepReview).Any())
}
