package response

import (
	"marketplace-api/internal/usecase/queries"
)

type PaginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// ListResponse is the collection envelope shared by every list endpoint.
type ListResponse[T any] struct {
	Items      []T                `json:"items"`
	Pagination PaginationResponse `json:"pagination"`
}

func NewListResponse[T any](items []T, p queries.Pagination) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{
		Items: items,
		Pagination: PaginationResponse{
			Total:      p.Total,
			Page:       p.Page,
			Limit:      p.Limit,
			TotalPages: p.TotalPages,
		},
	}
}

// ValidationErrorResponse is the field-keyed map the wizard (and any form
// endpoint) returns on a blocked transition.
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}
