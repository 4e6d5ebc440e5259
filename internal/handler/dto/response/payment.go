package response

import (
	"time"

	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PaymentResponse struct {
	ID               uuid.UUID `json:"id"`
	BookingID        uuid.UUID `json:"bookingId"`
	ServiceName      string    `json:"serviceName"`
	CustomerName     string    `json:"customerName"`
	Method           string    `json:"method"`
	Status           string    `json:"status"`
	AmountCents      int64     `json:"amountCents"`
	Currency         string    `json:"currency"`
	GatewayReference string    `json:"gatewayReference,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

func FromPaymentViews(items []*queries.PaymentView) []*PaymentResponse {
	result := make([]*PaymentResponse, len(items))
	for i, item := range items {
		var resp PaymentResponse
		_ = copier.Copy(&resp, item)
		result[i] = &resp
	}
	return result
}
