package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidWorkingHours = errors.New("working hours must satisfy open < close")

// Provider working hours are minutes from midnight; availability slots are
// generated inside [openMin, closeMin) stepped by the service duration.
type Provider struct {
	id          uuid.UUID
	companyID   uuid.UUID
	userID      uuid.UUID
	displayName string
	openMin     int
	closeMin    int
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProvider(companyID, userID uuid.UUID, displayName string, openMin, closeMin int) (*Provider, error) {
	if displayName == "" {
		return nil, ErrEmptyName
	}
	if openMin < 0 || closeMin > 24*60 || openMin >= closeMin {
		return nil, ErrInvalidWorkingHours
	}
	return &Provider{
		id:          uuid.New(),
		companyID:   companyID,
		userID:      userID,
		displayName: displayName,
		openMin:     openMin,
		closeMin:    closeMin,
		isActive:    true,
	}, nil
}

func ReconstructProvider(
	id, companyID, userID uuid.UUID,
	displayName string,
	openMin, closeMin int,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Provider {
	return &Provider{
		id:          id,
		companyID:   companyID,
		userID:      userID,
		displayName: displayName,
		openMin:     openMin,
		closeMin:    closeMin,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Provider) ID() uuid.UUID        { return p.id }
func (p *Provider) CompanyID() uuid.UUID { return p.companyID }
func (p *Provider) UserID() uuid.UUID    { return p.userID }
func (p *Provider) DisplayName() string  { return p.displayName }
func (p *Provider) OpenMin() int         { return p.openMin }
func (p *Provider) CloseMin() int        { return p.closeMin }
func (p *Provider) IsActive() bool       { return p.isActive }
func (p *Provider) CreatedAt() time.Time { return p.createdAt }
func (p *Provider) UpdatedAt() time.Time { return p.updatedAt }
