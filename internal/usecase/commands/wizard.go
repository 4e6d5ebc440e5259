package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"marketplace-api/internal/domain/booking"
	"marketplace-api/internal/domain/catalog"
	"marketplace-api/internal/domain/payment"
	reqdto "marketplace-api/internal/handler/dto/request"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/gateway"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/usecase/queries"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDraftNotFound     = errs.New("wizard session not found or expired")
	ErrDraftForbidden    = errs.New("wizard session belongs to another user")
	ErrServiceNotFound   = errs.New("service not found")
	ErrServiceInactive   = errs.New("service is not bookable")
	ErrPaymentFailed     = errs.New("payment could not be processed")
	ErrBookingSaveFailed = errs.New("booking could not be saved")
)

// DraftStore persists wizard sessions between requests. The Redis adapter
// gives drafts a TTL so abandoned sessions expire on their own.
type DraftStore interface {
	Save(ctx context.Context, draft *booking.Draft) error
	Find(ctx context.Context, token uuid.UUID) (*booking.Draft, error)
	Delete(ctx context.Context, token uuid.UUID) error
}

// WizardResult carries either a draft (transition applied or replayed) or a
// field-keyed validation map (transition blocked, no state changed). Exactly
// one outcome is populated.
type WizardResult struct {
	Draft       *booking.Draft
	FieldErrors booking.FieldErrors
}

func blocked(fieldErrors booking.FieldErrors) *WizardResult {
	return &WizardResult{FieldErrors: fieldErrors}
}

type WizardCommands interface {
	Start(ctx context.Context, userID uuid.UUID, req reqdto.StartWizardRequest) (*WizardResult, error)
	Get(ctx context.Context, userID, token uuid.UUID) (*WizardResult, error)
	UpdateDetails(ctx context.Context, userID, token uuid.UUID, req reqdto.UpdateDetailsRequest) (*WizardResult, error)
	Next(ctx context.Context, userID, token uuid.UUID, req reqdto.NextStepRequest, clientIP, userAgent string) (*WizardResult, error)
	Back(ctx context.Context, userID, token uuid.UUID) (*WizardResult, error)
}

type wizardCommandsImpl struct {
	uow          shared.UnitOfWork
	drafts       DraftStore
	availability queries.AvailabilityQueries
	gateway      gateway.PaymentGateway
	clock        clock.Clock
	loc          *time.Location
}

func NewWizardCommands(
	uow shared.UnitOfWork,
	drafts DraftStore,
	availability queries.AvailabilityQueries,
	paymentGateway gateway.PaymentGateway,
	clk clock.Clock,
) WizardCommands {
	return &wizardCommandsImpl{
		uow:          uow,
		drafts:       drafts,
		availability: availability,
		gateway:      paymentGateway,
		clock:        clk,
		loc:          time.Local,
	}
}

func (w *wizardCommandsImpl) Start(ctx context.Context, userID uuid.UUID, req reqdto.StartWizardRequest) (*WizardResult, error) {
	service, addons, err := w.loadService(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	profile := w.loadProfile(ctx, userID)

	draft := booking.NewDraft(userID, service, addons, profile, w.clock.Now())
	if err := w.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}

	return &WizardResult{Draft: draft}, nil
}

func (w *wizardCommandsImpl) Get(ctx context.Context, userID, token uuid.UUID) (*WizardResult, error) {
	draft, err := w.loadDraft(ctx, userID, token)
	if err != nil {
		return nil, err
	}
	return &WizardResult{Draft: draft}, nil
}

func (w *wizardCommandsImpl) UpdateDetails(ctx context.Context, userID, token uuid.UUID, req reqdto.UpdateDetailsRequest) (*WizardResult, error) {
	draft, err := w.loadDraft(ctx, userID, token)
	if err != nil {
		return nil, err
	}
	if draft.IsCompleted() {
		return nil, booking.ErrWizardCompleted
	}
	if draft.Step != booking.StepDetails {
		return nil, booking.ErrStepLocked
	}

	service, addons, err := w.loadService(ctx, draft.ServiceID)
	if err != nil {
		return nil, err
	}

	if req.SelectedAddons != nil {
		draft.SetAddons(service, addons, *req.SelectedAddons)
	}

	w.applyCustomerFields(draft, req)

	if req.ScheduledTime != nil {
		draft.ScheduledTime = *req.ScheduledTime
	}
	if req.ScheduledDate != nil && *req.ScheduledDate != draft.ScheduledDate {
		draft.ScheduledDate = *req.ScheduledDate
		w.refreshSlots(ctx, draft)
	}

	draft.UpdatedAt = w.clock.Now()
	if err := w.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}

	return &WizardResult{Draft: draft}, nil
}

func (w *wizardCommandsImpl) applyCustomerFields(draft *booking.Draft, req reqdto.UpdateDetailsRequest) {
	// prefilled identity fields are locked; the address stays editable
	if !draft.Customer.Prefilled {
		if req.CustomerName != nil {
			draft.Customer.Name = *req.CustomerName
		}
		if req.CustomerEmail != nil {
			draft.Customer.Email = *req.CustomerEmail
		}
		if req.CustomerPhone != nil {
			draft.Customer.Phone = *req.CustomerPhone
		}
	}
	if req.CustomerAddress != nil {
		draft.Customer.Address = *req.CustomerAddress
	}
	if req.Notes != nil {
		draft.Customer.Notes = *req.Notes
	}
}

// refreshSlots fetches availability for the draft's date under the next
// sequence number. A fetch failure leaves an empty slot list, which keeps the
// step-1 guard closed until a later refresh succeeds.
func (w *wizardCommandsImpl) refreshSlots(ctx context.Context, draft *booking.Draft) {
	seq := draft.NextSlotSeq()

	date, err := time.ParseInLocation("2006-01-02", draft.ScheduledDate, w.loc)
	if err != nil {
		draft.ApplySlots(draft.ScheduledDate, []string{}, seq)
		return
	}

	view, err := w.availability.SlotsFor(ctx, draft.ServiceID, date)
	if err != nil {
		slog.Warn("slot refresh failed", "token", draft.Token, "error", err)
		draft.ApplySlots(draft.ScheduledDate, []string{}, seq)
		return
	}

	if !draft.ApplySlots(view.Date, view.Slots, seq) {
		slog.Debug("stale slot fetch discarded", "token", draft.Token, "seq", seq)
	}
}

func (w *wizardCommandsImpl) Next(ctx context.Context, userID, token uuid.UUID, req reqdto.NextStepRequest, clientIP, userAgent string) (*WizardResult, error) {
	draft, err := w.loadDraft(ctx, userID, token)
	if err != nil {
		return nil, err
	}
	if draft.IsCompleted() {
		return nil, booking.ErrWizardCompleted
	}

	switch draft.Step {
	case booking.StepDetails:
		if fieldErrors := booking.ValidateStep(draft, booking.StepDetails); fieldErrors.Any() {
			return blocked(fieldErrors), nil
		}
		draft.Step = booking.StepPaymentType

	case booking.StepPaymentType:
		if req.PaymentType != nil {
			draft.PaymentType = booking.PaymentType(*req.PaymentType)
		}
		if fieldErrors := booking.ValidateStep(draft, booking.StepPaymentType); fieldErrors.Any() {
			return blocked(fieldErrors), nil
		}
		fieldErrors, err := w.ensureBooking(ctx, draft, clientIP, userAgent)
		if err != nil {
			return nil, err
		}
		if fieldErrors.Any() {
			return blocked(fieldErrors), nil
		}
		if draft.PaymentType == booking.PaymentTypeCashOnDelivery {
			draft.Step = booking.StepConfirmation
		} else {
			draft.Step = booking.StepReview
		}

	case booking.StepReview:
		draft.Step = booking.StepPayment

	case booking.StepPayment:
		card := req.Card()
		if fieldErrors := card.Validate(); fieldErrors.Any() {
			return blocked(fieldErrors), nil
		}
		if err := w.settlePayment(ctx, draft, card, clientIP, userAgent); err != nil {
			return nil, err
		}
		draft.Step = booking.StepConfirmation
	}

	draft.UpdatedAt = w.clock.Now()
	if err := w.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}

	return &WizardResult{Draft: draft}, nil
}

func (w *wizardCommandsImpl) Back(ctx context.Context, userID, token uuid.UUID) (*WizardResult, error) {
	draft, err := w.loadDraft(ctx, userID, token)
	if err != nil {
		return nil, err
	}

	if err := draft.Back(); err != nil {
		return nil, err
	}

	draft.UpdatedAt = w.clock.Now()
	if err := w.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}

	return &WizardResult{Draft: draft}, nil
}

// ensureBooking creates the booking exactly once per wizard session: the
// draft token doubles as the idempotency key, so retrying a failed step-2
// transition cannot create a second booking. On a later step-2 exit, after
// back navigation edited the draft, the stored row is realigned instead.
// A non-empty FieldErrors return means re-validation failed and nothing was
// written.
func (w *wizardCommandsImpl) ensureBooking(ctx context.Context, draft *booking.Draft, clientIP, userAgent string) (booking.FieldErrors, error) {
	// the step-1 guard runs again right before submission; both call sites
	// share one rule set so this cannot newly fail for a clean draft
	if fieldErrors := booking.ValidateStep(draft, booking.StepDetails); fieldErrors.Any() {
		return fieldErrors, nil
	}

	service, addons, err := w.loadService(ctx, draft.ServiceID)
	if err != nil {
		return nil, err
	}

	total := catalog.Quote(service, addons, draft.SelectedAddons)
	if !total.IsPositive() {
		return booking.FieldErrors{"selectedAddons": booking.ErrInvalidTotal.Error()}, nil
	}
	draft.TotalCents = total.Cents()

	scheduledAt, err := draft.ScheduledAt(w.loc)
	if err != nil {
		return booking.FieldErrors{"scheduledDate": booking.ErrInvalidSchedule.Error()}, nil
	}

	newBooking, err := booking.NewBooking(
		service.CompanyID(), draft.ServiceID, draft.ProviderID, draft.UserID,
		scheduledAt,
		draft.Customer.Address, draft.Customer.Notes,
		draft.SelectedAddons,
		draft.PaymentType,
		total, draft.Currency,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingSaveFailed)
	}

	requestHash := w.bookingRequestHash(draft)

	if draft.BookingID != nil {
		return nil, w.reconcileBooking(ctx, draft, service, newBooking, requestHash, clientIP, userAgent)
	}

	expiresAt := w.clock.Now().Add(24 * time.Hour)

	err = w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Idempotency().TryInsert(ctx, tx.DB(), draft.Token, draft.UserID, "wizard.create_booking", requestHash, expiresAt); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return nil
			}
			return err
		}

		bookingID, err := tx.Bookings().Create(ctx, tx.DB(), newBooking)
		if err != nil {
			return err
		}

		if err := tx.Idempotency().MarkCompleted(ctx, tx.DB(), draft.Token, draft.UserID, bookingID); err != nil {
			return err
		}

		return tx.AuditLogs().Insert(ctx, tx.DB(), shared.AuditEntry{
			ActorID:      draft.UserID,
			CompanyID:    ptr(service.CompanyID()),
			Action:       "booking.created",
			ResourceType: "booking",
			ResourceID:   &bookingID,
			Detail:       service.Name(),
			ClientIP:     clientIP,
			UserAgent:    userAgent,
		})
	})
	if err != nil {
		return nil, errs.Mark(err, ErrBookingSaveFailed)
	}

	// resolve the booking id through the idempotency record so a replayed
	// request converges on the original booking
	record, err := w.uow.CommandReads().IdempotencyByKey(ctx, draft.Token, draft.UserID)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingSaveFailed)
	}
	if record.ResultBookingID == nil {
		return nil, ErrBookingSaveFailed
	}
	draft.BookingID = record.ResultBookingID

	return nil, nil
}

// reconcileBooking rewrites the stored booking when back-navigation edits
// changed what the confirmation screen will show. The request hash stored
// with the idempotency record fingerprints the submitted details, so an
// unchanged draft costs one read and no writes.
func (w *wizardCommandsImpl) reconcileBooking(ctx context.Context, draft *booking.Draft, service *catalog.Service, updated *booking.Booking, requestHash, clientIP, userAgent string) error {
	record, err := w.uow.CommandReads().IdempotencyByKey(ctx, draft.Token, draft.UserID)
	if err != nil {
		return errs.Mark(err, ErrBookingSaveFailed)
	}
	if record.RequestHash == requestHash {
		return nil
	}

	bookingID := *draft.BookingID
	err = w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().UpdateDetails(ctx, tx.DB(), bookingID, updated); err != nil {
			return err
		}
		if err := tx.Idempotency().RefreshHash(ctx, tx.DB(), draft.Token, draft.UserID, requestHash); err != nil {
			return err
		}
		return tx.AuditLogs().Insert(ctx, tx.DB(), shared.AuditEntry{
			ActorID:      draft.UserID,
			CompanyID:    ptr(service.CompanyID()),
			Action:       "booking.updated",
			ResourceType: "booking",
			ResourceID:   &bookingID,
			Detail:       service.Name(),
			ClientIP:     clientIP,
			UserAgent:    userAgent,
		})
	})
	if err != nil {
		return errs.Mark(err, ErrBookingSaveFailed)
	}

	return nil
}

// settlePayment charges the gateway, then records the payment and confirms
// the booking in one transaction. A gateway failure leaves the draft on step
// 4 untouched, so the user can retry; the idempotent create above means no
// duplicate booking can result.
func (w *wizardCommandsImpl) settlePayment(ctx context.Context, draft *booking.Draft, card booking.Card, clientIP, userAgent string) error {
	if draft.BookingID == nil {
		return booking.ErrBookingNotCreated
	}
	bookingID := *draft.BookingID

	chargeResult, err := w.gateway.Charge(ctx, gateway.ChargeRequest{
		BookingID:     bookingID,
		AmountCents:   draft.TotalCents,
		Currency:      draft.Currency,
		CardReference: card.MaskedReference(),
	})
	if err != nil {
		return errs.Mark(err, ErrPaymentFailed)
	}

	service, _, err := w.loadService(ctx, draft.ServiceID)
	if err != nil {
		return err
	}

	newPayment, err := payment.NewPayment(
		service.CompanyID(), bookingID,
		draft.Total(), draft.Currency,
		payment.MethodCard, chargeResult.Reference,
	)
	if err != nil {
		return errs.Mark(err, ErrPaymentFailed)
	}

	err = w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Payments().Create(ctx, tx.DB(), newPayment); err != nil {
			return err
		}
		if err := tx.Bookings().Confirm(ctx, tx.DB(), bookingID); err != nil {
			return err
		}
		return tx.AuditLogs().Insert(ctx, tx.DB(), shared.AuditEntry{
			ActorID:      draft.UserID,
			CompanyID:    ptr(service.CompanyID()),
			Action:       "booking.confirmed",
			ResourceType: "booking",
			ResourceID:   &bookingID,
			Detail:       "paid " + chargeResult.Reference,
			ClientIP:     clientIP,
			UserAgent:    userAgent,
		})
	})
	if err != nil {
		return errs.Mark(err, ErrPaymentFailed)
	}

	return nil
}

func (w *wizardCommandsImpl) loadDraft(ctx context.Context, userID, token uuid.UUID) (*booking.Draft, error) {
	draft, err := w.drafts.Find(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrDraftNotFound)
		}
		return nil, err
	}
	if draft.UserID != userID {
		return nil, ErrDraftForbidden
	}
	return draft, nil
}

func (w *wizardCommandsImpl) loadService(ctx context.Context, serviceID uuid.UUID) (*catalog.Service, []catalog.Addon, error) {
	service, addons, err := w.uow.CommandReads().ServiceByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.Mark(err, ErrServiceNotFound)
		}
		return nil, nil, err
	}
	if !service.IsActive() {
		return nil, nil, ErrServiceInactive
	}
	return service, addons, nil
}

func (w *wizardCommandsImpl) loadProfile(ctx context.Context, userID uuid.UUID) *booking.CustomerInfo {
	profile, err := w.uow.CommandReads().CustomerProfile(ctx, userID)
	if err != nil {
		slog.Warn("profile prefill unavailable", "user_id", userID, "error", err)
		return nil
	}
	// an incomplete profile is not prefilled: locking empty contact fields
	// would make step 1 impassable
	if profile.Name == "" || profile.Email == "" || profile.Phone == "" {
		return nil
	}
	return &booking.CustomerInfo{
		Name:    profile.Name,
		Email:   profile.Email,
		Phone:   profile.Phone,
		Address: profile.Address,
	}
}

// bookingRequestHash fingerprints every draft field that ends up on the
// booking row; a mismatch against the stored hash means the persisted booking
// drifted from the draft.
func (w *wizardCommandsImpl) bookingRequestHash(draft *booking.Draft) string {
	addonIDs := make([]string, len(draft.SelectedAddons))
	for i, id := range draft.SelectedAddons {
		addonIDs[i] = id.String()
	}
	sort.Strings(addonIDs)

	parts := []string{
		draft.ServiceID.String(),
		draft.ScheduledDate,
		draft.ScheduledTime,
		draft.PaymentType.String(),
		draft.Customer.Address,
		draft.Customer.Notes,
		strconv.FormatInt(draft.TotalCents, 10),
	}
	h := sha256.Sum256([]byte(strings.Join(append(parts, addonIDs...), "|")))
	return hex.EncodeToString(h[:])
}

func ptr[T any](v T) *T {
	return &v
}
