package request

import (
	"github.com/google/uuid"
)

type CreateServiceRequest struct {
	ProviderID  uuid.UUID           `json:"providerId" binding:"required"`
	CategoryID  uuid.UUID           `json:"categoryId" binding:"required"`
	Name        string              `json:"name" binding:"required,min=1,max=200"`
	Description string              `json:"description" binding:"max=2000"`
	PriceCents  int64               `json:"priceCents" binding:"required,gt=0"`
	DurationMin int                 `json:"durationMin" binding:"required,gt=0"`
	Addons      []ServiceAddonInput `json:"addons" binding:"dive"`
}

type ServiceAddonInput struct {
	Name       string `json:"name" binding:"required,min=1,max=200"`
	PriceCents int64  `json:"priceCents" binding:"gte=0"`
	Required   bool   `json:"required"`
}

type UpdateServiceRequest struct {
	CategoryID  uuid.UUID `json:"categoryId" binding:"required"`
	Name        string    `json:"name" binding:"required,min=1,max=200"`
	Description string    `json:"description" binding:"max=2000"`
	PriceCents  int64     `json:"priceCents" binding:"required,gt=0"`
	DurationMin int       `json:"durationMin" binding:"required,gt=0"`
	IsActive    bool      `json:"isActive"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
}

type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
}

type CreateProviderRequest struct {
	UserID      uuid.UUID `json:"userId" binding:"required"`
	DisplayName string    `json:"displayName" binding:"required,min=1,max=200"`
	OpenMin     int       `json:"openMin" binding:"gte=0,lt=1440"`
	CloseMin    int       `json:"closeMin" binding:"gt=0,lte=1440"`
}

type UpdateProviderRequest struct {
	DisplayName string `json:"displayName" binding:"required,min=1,max=200"`
	OpenMin     int    `json:"openMin" binding:"gte=0,lt=1440"`
	CloseMin    int    `json:"closeMin" binding:"gt=0,lte=1440"`
	IsActive    bool   `json:"isActive"`
}
