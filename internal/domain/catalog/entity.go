package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("name must not be empty")
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrServiceInactive = errors.New("service is not bookable")
)

// Service is immutable from the wizard's point of view: it is loaded once per
// booking session together with its addons.
type Service struct {
	id          uuid.UUID
	companyID   uuid.UUID
	providerID  uuid.UUID
	categoryID  uuid.UUID
	name        string
	description string
	price       Money
	currency    string
	durationMin int
	rating      float64
	reviewCount int
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewService(companyID, providerID, categoryID uuid.UUID, name, description string, price Money, currency string, durationMin int) (*Service, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	return &Service{
		id:          uuid.New(),
		companyID:   companyID,
		providerID:  providerID,
		categoryID:  categoryID,
		name:        name,
		description: description,
		price:       price,
		currency:    currency,
		durationMin: durationMin,
		isActive:    true,
	}, nil
}

func ReconstructService(
	id, companyID, providerID, categoryID uuid.UUID,
	name, description string,
	price Money,
	currency string,
	durationMin int,
	rating float64,
	reviewCount int,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Service {
	return &Service{
		id:          id,
		companyID:   companyID,
		providerID:  providerID,
		categoryID:  categoryID,
		name:        name,
		description: description,
		price:       price,
		currency:    currency,
		durationMin: durationMin,
		rating:      rating,
		reviewCount: reviewCount,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *Service) ID() uuid.UUID         { return s.id }
func (s *Service) CompanyID() uuid.UUID  { return s.companyID }
func (s *Service) ProviderID() uuid.UUID { return s.providerID }
func (s *Service) CategoryID() uuid.UUID { return s.categoryID }
func (s *Service) Name() string          { return s.name }
func (s *Service) Description() string   { return s.description }
func (s *Service) Price() Money          { return s.price }
func (s *Service) Currency() string      { return s.currency }
func (s *Service) DurationMin() int      { return s.durationMin }
func (s *Service) Rating() float64       { return s.rating }
func (s *Service) ReviewCount() int      { return s.reviewCount }
func (s *Service) IsActive() bool        { return s.isActive }
func (s *Service) CreatedAt() time.Time  { return s.createdAt }
func (s *Service) UpdatedAt() time.Time  { return s.updatedAt }

type Addon struct {
	ID        uuid.UUID
	ServiceID uuid.UUID
	Name      string
	Price     Money
	Required  bool
}

func RequiredAddonIDs(addons []Addon) []uuid.UUID {
	var ids []uuid.UUID
	for _, a := range addons {
		if a.Required {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// NormalizeSelection drops addon ids that do not belong to the service and
// re-unions the required set, so the selection is always a superset of the
// required addon ids no matter what the client sent.
func NormalizeSelection(addons []Addon, selected []uuid.UUID) []uuid.UUID {
	known := make(map[uuid.UUID]bool, len(addons))
	for _, a := range addons {
		known[a.ID] = true
	}

	seen := make(map[uuid.UUID]bool, len(selected))
	var result []uuid.UUID
	for _, id := range RequiredAddonIDs(addons) {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	for _, id := range selected {
		if known[id] && !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	return result
}

// Quote is the single source of the wizard total: service price plus the
// price of every selected addon. Every screen that shows a total must show
// this value.
func Quote(service *Service, addons []Addon, selected []uuid.UUID) Money {
	total := service.Price()
	chosen := make(map[uuid.UUID]bool, len(selected))
	for _, id := range selected {
		chosen[id] = true
	}
	for _, a := range addons {
		if chosen[a.ID] {
			total = total.Add(a.Price)
		}
	}
	return total
}

type Category struct {
	id          uuid.UUID
	companyID   uuid.UUID
	name        string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCategory(companyID uuid.UUID, name, description string) (*Category, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Category{
		id:          uuid.New(),
		companyID:   companyID,
		name:        name,
		description: description,
	}, nil
}

func ReconstructCategory(id, companyID uuid.UUID, name, description string, createdAt, updatedAt time.Time) *Category {
	return &Category{
		id:          id,
		companyID:   companyID,
		name:        name,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Category) ID() uuid.UUID        { return c.id }
func (c *Category) CompanyID() uuid.UUID { return c.companyID }
func (c *Category) Name() string         { return c.name }
func (c *Category) Description() string  { return c.description }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }
