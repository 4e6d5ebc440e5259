package response

import (
	"time"

	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID            uuid.UUID       `json:"id"`
	ServiceID     uuid.UUID       `json:"serviceId"`
	ServiceName   string          `json:"serviceName"`
	ProviderID    uuid.UUID       `json:"providerId"`
	ProviderName  string          `json:"providerName"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	ScheduledAt   time.Time       `json:"scheduledAt"`
	Address       string          `json:"address"`
	Notes         string          `json:"notes,omitempty"`
	Addons        []AddonResponse `json:"addons"`
	PaymentType   string          `json:"paymentType"`
	PaymentStatus string          `json:"paymentStatus"`
	TotalCents    int64           `json:"totalCents"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type BookingListItemResponse struct {
	ID           uuid.UUID `json:"id"`
	ServiceName  string    `json:"serviceName"`
	ProviderName string    `json:"providerName"`
	CustomerName string    `json:"customerName"`
	ScheduledAt  time.Time `json:"scheduledAt"`
	PaymentType  string    `json:"paymentType"`
	TotalCents   int64     `json:"totalCents"`
	Currency     string    `json:"currency"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, v)
	if resp.Addons == nil {
		resp.Addons = []AddonResponse{}
	}
	return &resp
}

func FromBookingListItems(items []*queries.BookingListItem) []*BookingListItemResponse {
	result := make([]*BookingListItemResponse, len(items))
	for i, item := range items {
		var resp BookingListItemResponse
		_ = copier.Copy(&resp, item)
		result[i] = &resp
	}
	return result
}
