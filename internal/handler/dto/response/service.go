package response

import (
	"time"

	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID           uuid.UUID       `json:"id"`
	ProviderID   uuid.UUID       `json:"providerId"`
	ProviderName string          `json:"providerName"`
	CategoryID   uuid.UUID       `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	PriceCents   int64           `json:"priceCents"`
	Currency     string          `json:"currency"`
	DurationMin  int             `json:"durationMin"`
	Rating       float64         `json:"rating"`
	ReviewCount  int             `json:"reviewCount"`
	IsActive     bool            `json:"isActive"`
	Addons       []AddonResponse `json:"addons"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type AddonResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"priceCents"`
	Required   bool      `json:"required"`
}

type ServiceListItemResponse struct {
	ID           uuid.UUID `json:"id"`
	ProviderID   uuid.UUID `json:"providerId"`
	ProviderName string    `json:"providerName"`
	CategoryName string    `json:"categoryName"`
	Name         string    `json:"name"`
	PriceCents   int64     `json:"priceCents"`
	Currency     string    `json:"currency"`
	DurationMin  int       `json:"durationMin"`
	Rating       float64   `json:"rating"`
	ReviewCount  int       `json:"reviewCount"`
	IsActive     bool      `json:"isActive"`
}

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	var resp ServiceResponse
	_ = copier.Copy(&resp, v)
	if resp.Addons == nil {
		resp.Addons = []AddonResponse{}
	}
	return &resp
}

func FromServiceListItems(items []*queries.ServiceListItem) []*ServiceListItemResponse {
	result := make([]*ServiceListItemResponse, len(items))
	for i, item := range items {
		var resp ServiceListItemResponse
		_ = copier.Copy(&resp, item)
		result[i] = &resp
	}
	return result
}
