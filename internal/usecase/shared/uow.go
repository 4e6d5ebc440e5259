package shared

import (
	"context"
	"time"

	"marketplace-api/internal/domain/booking"
	"marketplace-api/internal/domain/catalog"
	"marketplace-api/internal/domain/payment"
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Payments() PaymentRepository
	AuditLogs() AuditLogRepository
	Idempotency() IdempotencyRepository
	Users() UserRepository
	Catalog() CatalogRepository
	DB() db.DBTX
}

// CommandReads hydrates domain entities for the write side without touching
// the read-model views.
type CommandReads interface {
	ServiceByID(ctx context.Context, id uuid.UUID) (*catalog.Service, []catalog.Addon, error)
	ProviderByID(ctx context.Context, id uuid.UUID) (*catalog.Provider, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	CustomerProfile(ctx context.Context, userID uuid.UUID) (*CustomerProfile, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

// CustomerProfile is the slice of the user record the wizard pre-fills from.
type CustomerProfile struct {
	UserID  uuid.UUID
	Name    string
	Email   string
	Phone   string
	Address string
}

type AuditEntry struct {
	ActorID      uuid.UUID
	CompanyID    *uuid.UUID
	Action       string
	ResourceType string
	ResourceID   *uuid.UUID
	Detail       string
	ClientIP     string
	UserAgent    string
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, db db.DBTX, b *booking.Booking) (uuid.UUID, error)
	// Confirm transitions pending -> confirmed; confirming an already
	// confirmed booking is a no-op so the operation is safely retryable.
	Confirm(ctx context.Context, db db.DBTX, id uuid.UUID) error
	// UpdateDetails rewrites the editable fields of a pending booking after
	// back navigation changed the draft; non-pending bookings are untouched.
	UpdateDetails(ctx context.Context, db db.DBTX, id uuid.UUID, b *booking.Booking) error
	UpdateStatus(ctx context.Context, db db.DBTX, id uuid.UUID, status booking.Status) error
}

type PaymentRepository interface {
	Create(ctx context.Context, db db.DBTX, p *payment.Payment) (uuid.UUID, error)
}

type AuditLogRepository interface {
	Insert(ctx context.Context, db db.DBTX, entry AuditEntry) error
	DeleteByID(ctx context.Context, db db.DBTX, id uuid.UUID, companyID *uuid.UUID) (int64, error)
	DeleteByIDs(ctx context.Context, db db.DBTX, ids []uuid.UUID, companyID *uuid.UUID) (int64, error)
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, db db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error
	MarkCompleted(ctx context.Context, db db.DBTX, key, userID uuid.UUID, resultBookingID uuid.UUID) error
	RefreshHash(ctx context.Context, db db.DBTX, key, userID uuid.UUID, requestHash string) error
}

type UserRepository interface {
	Create(ctx context.Context, db db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateProfile(ctx context.Context, db db.DBTX, userID uuid.UUID, firstName, lastName, phone, address string) error
	UpdateLastLogin(ctx context.Context, db db.DBTX, userID uuid.UUID) error
	SetActive(ctx context.Context, db db.DBTX, userID uuid.UUID, active bool) error
}

type CatalogRepository interface {
	CreateService(ctx context.Context, db db.DBTX, s *catalog.Service, addons []catalog.Addon) (uuid.UUID, error)
	UpdateService(ctx context.Context, db db.DBTX, s *catalog.Service) error
	DeleteService(ctx context.Context, db db.DBTX, id, companyID uuid.UUID) (int64, error)
	CreateCategory(ctx context.Context, db db.DBTX, c *catalog.Category) (uuid.UUID, error)
	UpdateCategory(ctx context.Context, db db.DBTX, c *catalog.Category) error
	DeleteCategory(ctx context.Context, db db.DBTX, id, companyID uuid.UUID) (int64, error)
	CreateProvider(ctx context.Context, db db.DBTX, p *catalog.Provider) (uuid.UUID, error)
	UpdateProvider(ctx context.Context, db db.DBTX, p *catalog.Provider) error
	DeactivateProvider(ctx context.Context, db db.DBTX, id, companyID uuid.UUID) (int64, error)
}
