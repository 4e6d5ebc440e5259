package response

import (
	"time"

	"marketplace-api/internal/domain/booking"

	"github.com/google/uuid"
)

type WizardResponse struct {
	Token          uuid.UUID        `json:"token"`
	ServiceID      uuid.UUID        `json:"serviceId"`
	ProviderID     uuid.UUID        `json:"providerId"`
	Step           int              `json:"step"`
	StepName       string           `json:"stepName"`
	ScheduledDate  string           `json:"scheduledDate,omitempty"`
	ScheduledTime  string           `json:"scheduledTime,omitempty"`
	AvailableSlots []string         `json:"availableSlots"`
	SelectedAddons []uuid.UUID      `json:"selectedAddons"`
	Customer       CustomerResponse `json:"customer"`
	PaymentType    string           `json:"paymentType,omitempty"`
	PaymentStatus  string           `json:"paymentStatus,omitempty"`
	BookingID      *uuid.UUID       `json:"bookingId,omitempty"`
	TotalCents     int64            `json:"totalCents"`
	Currency       string           `json:"currency"`
	CanGoBack      bool             `json:"canGoBack"`
	Completed      bool             `json:"completed"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

type CustomerResponse struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Notes     string `json:"notes,omitempty"`
	Prefilled bool   `json:"prefilled"`
}

func FromDraft(d *booking.Draft) *WizardResponse {
	resp := &WizardResponse{
		Token:          d.Token,
		ServiceID:      d.ServiceID,
		ProviderID:     d.ProviderID,
		Step:           int(d.Step),
		StepName:       d.Step.String(),
		ScheduledDate:  d.ScheduledDate,
		ScheduledTime:  d.ScheduledTime,
		AvailableSlots: d.Slots.Slots,
		SelectedAddons: d.SelectedAddons,
		Customer: CustomerResponse{
			Name:      d.Customer.Name,
			Email:     d.Customer.Email,
			Phone:     d.Customer.Phone,
			Address:   d.Customer.Address,
			Notes:     d.Customer.Notes,
			Prefilled: d.Customer.Prefilled,
		},
		PaymentType: d.PaymentType.String(),
		BookingID:   d.BookingID,
		TotalCents:  d.TotalCents,
		Currency:    d.Currency,
		CanGoBack:   d.CanGoBack(),
		Completed:   d.IsCompleted(),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if resp.AvailableSlots == nil {
		resp.AvailableSlots = []string{}
	}
	if resp.SelectedAddons == nil {
		resp.SelectedAddons = []uuid.UUID{}
	}
	if d.IsCompleted() {
		resp.PaymentStatus = d.PaymentType.DerivedPaymentStatus()
	}
	return resp
}
