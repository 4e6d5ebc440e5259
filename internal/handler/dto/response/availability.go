package response

import (
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	ServiceID uuid.UUID `json:"serviceId"`
	Date      string    `json:"date"`
	Slots     []string  `json:"slots"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	slots := v.Slots
	if slots == nil {
		slots = []string{}
	}
	return &AvailabilityResponse{
		ServiceID: v.ServiceID,
		Date:      v.Date,
		Slots:     slots,
	}
}
