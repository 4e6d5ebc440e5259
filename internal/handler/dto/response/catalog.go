package response

import (
	"time"

	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CategoryResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	ServiceCount int       `json:"serviceCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ProviderResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	DisplayName  string    `json:"displayName"`
	Email        string    `json:"email"`
	OpenMin      int       `json:"openMin"`
	CloseMin     int       `json:"closeMin"`
	ServiceCount int       `json:"serviceCount"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromCategoryView(v *queries.CategoryView) *CategoryResponse {
	var resp CategoryResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromCategoryViews(items []*queries.CategoryView) []*CategoryResponse {
	result := make([]*CategoryResponse, len(items))
	for i, item := range items {
		result[i] = FromCategoryView(item)
	}
	return result
}

func FromProviderView(v *queries.ProviderView) *ProviderResponse {
	var resp ProviderResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromProviderViews(items []*queries.ProviderView) []*ProviderResponse {
	result := make([]*ProviderResponse, len(items))
	for i, item := range items {
		result[i] = FromProviderView(item)
	}
	return result
}
