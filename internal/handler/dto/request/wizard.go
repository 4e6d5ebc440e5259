package request

import (
	"marketplace-api/internal/domain/booking"

	"github.com/google/uuid"
)

type StartWizardRequest struct {
	ServiceID uuid.UUID `json:"serviceId" binding:"required"`
}

// UpdateDetailsRequest carries the step-1 fields. Pointers distinguish
// "field absent" from "field cleared" so a partial update leaves the rest of
// the draft alone.
type UpdateDetailsRequest struct {
	ScheduledDate   *string      `json:"scheduledDate,omitempty"` // YYYY-MM-DD
	ScheduledTime   *string      `json:"scheduledTime,omitempty"` // HH:MM
	SelectedAddons  *[]uuid.UUID `json:"selectedAddons,omitempty"`
	CustomerName    *string      `json:"customerName,omitempty"`
	CustomerEmail   *string      `json:"customerEmail,omitempty"`
	CustomerPhone   *string      `json:"customerPhone,omitempty"`
	CustomerAddress *string      `json:"customerAddress,omitempty"`
	Notes           *string      `json:"notes,omitempty"`
}

// NextStepRequest is empty except on the steps that need input: the payment
// type selection on step 2 and the card fields on step 4.
type NextStepRequest struct {
	PaymentType    *string `json:"paymentType,omitempty"`
	CardNumber     *string `json:"cardNumber,omitempty"`
	CardholderName *string `json:"cardholderName,omitempty"`
	ExpiryDate     *string `json:"expiryDate,omitempty"`
	CVV            *string `json:"cvv,omitempty"`
}

func (r *NextStepRequest) Card() booking.Card {
	card := booking.Card{}
	if r.CardNumber != nil {
		card.Number = *r.CardNumber
	}
	if r.CardholderName != nil {
		card.Holder = *r.CardholderName
	}
	if r.ExpiryDate != nil {
		card.Expiry = *r.ExpiryDate
	}
	if r.CVV != nil {
		card.CVV = *r.CVV
	}
	return card
}
