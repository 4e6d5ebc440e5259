//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace-api/internal/domain/booking"
	"marketplace-api/internal/domain/catalog"
	"marketplace-api/internal/domain/payment"
	reqdto "marketplace-api/internal/handler/dto/request"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/db"
	"marketplace-api/internal/infra/gateway"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"
	"marketplace-api/internal/usecase/shared"
	"marketplace-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDraftStore struct {
	drafts map[uuid.UUID]*booking.Draft
}

func newFakeDraftStore() *fakeDraftStore {
	return &fakeDraftStore{drafts: make(map[uuid.UUID]*booking.Draft)}
}

func (s *fakeDraftStore) Save(_ context.Context, draft *booking.Draft) error {
	cp := *draft
	s.drafts[draft.Token] = &cp
	return nil
}

func (s *fakeDraftStore) Find(_ context.Context, token uuid.UUID) (*booking.Draft, error) {
	draft, ok := s.drafts[token]
	if !ok {
		return nil, infra.WrapRepoErr("wizard draft not found or expired", nil, infra.KindNotFound)
	}
	cp := *draft
	return &cp, nil
}

func (s *fakeDraftStore) Delete(_ context.Context, token uuid.UUID) error {
	delete(s.drafts, token)
	return nil
}

type bookingUpdate struct {
	id uuid.UUID
	b  *booking.Booking
}

type fakeBookingRepo struct {
	created   []*booking.Booking
	updated   []bookingUpdate
	confirmed []uuid.UUID
}

func (r *fakeBookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	r.created = append(r.created, b)
	return b.ID(), nil
}

func (r *fakeBookingRepo) Confirm(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	r.confirmed = append(r.confirmed, id)
	return nil
}

func (r *fakeBookingRepo) UpdateDetails(_ context.Context, _ db.DBTX, id uuid.UUID, b *booking.Booking) error {
	r.updated = append(r.updated, bookingUpdate{id: id, b: b})
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, _ db.DBTX, _ uuid.UUID, _ booking.Status) error {
	return nil
}

type fakePaymentRepo struct {
	created []*payment.Payment
}

func (r *fakePaymentRepo) Create(_ context.Context, _ db.DBTX, p *payment.Payment) (uuid.UUID, error) {
	r.created = append(r.created, p)
	return uuid.New(), nil
}

type fakeAuditRepo struct {
	entries []shared.AuditEntry
}

func (r *fakeAuditRepo) Insert(_ context.Context, _ db.DBTX, entry shared.AuditEntry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeAuditRepo) DeleteByID(_ context.Context, _ db.DBTX, _ uuid.UUID, _ *uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *fakeAuditRepo) DeleteByIDs(_ context.Context, _ db.DBTX, _ []uuid.UUID, _ *uuid.UUID) (int64, error) {
	return 0, nil
}

type fakeIdempotencyRepo struct {
	records map[string]*shared.IdempotencyRecord
}

func newFakeIdempotencyRepo() *fakeIdempotencyRepo {
	return &fakeIdempotencyRepo{records: make(map[string]*shared.IdempotencyRecord)}
}

func idemKey(key, userID uuid.UUID) string {
	return key.String() + "|" + userID.String()
}

func (r *fakeIdempotencyRepo) TryInsert(_ context.Context, _ db.DBTX, key, userID uuid.UUID, _ string, requestHash string, expiresAt time.Time) error {
	k := idemKey(key, userID)
	if _, ok := r.records[k]; ok {
		return infra.WrapRepoErr("idempotency key already claimed", nil, infra.KindDuplicateKey)
	}
	r.records[k] = &shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Status:      "processing",
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return nil
}

func (r *fakeIdempotencyRepo) MarkCompleted(_ context.Context, _ db.DBTX, key, userID uuid.UUID, resultBookingID uuid.UUID) error {
	rec, ok := r.records[idemKey(key, userID)]
	if !ok {
		return infra.WrapRepoErr("idempotency record missing", nil, infra.KindNotFound)
	}
	rec.Status = "completed"
	rec.ResultBookingID = &resultBookingID
	return nil
}

func (r *fakeIdempotencyRepo) RefreshHash(_ context.Context, _ db.DBTX, key, userID uuid.UUID, requestHash string) error {
	rec, ok := r.records[idemKey(key, userID)]
	if !ok {
		return infra.WrapRepoErr("idempotency record missing", nil, infra.KindNotFound)
	}
	rec.RequestHash = requestHash
	return nil
}

type fakeCommandReads struct {
	service *catalog.Service
	addons  []catalog.Addon
	profile *shared.CustomerProfile
	idem    *fakeIdempotencyRepo
}

func (r *fakeCommandReads) ServiceByID(_ context.Context, id uuid.UUID) (*catalog.Service, []catalog.Addon, error) {
	if r.service == nil || r.service.ID() != id {
		return nil, nil, infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return r.service, r.addons, nil
}

func (r *fakeCommandReads) ProviderByID(_ context.Context, _ uuid.UUID) (*catalog.Provider, error) {
	return nil, infra.WrapRepoErr("provider not found", nil, infra.KindNotFound)
}

func (r *fakeCommandReads) BookingByID(_ context.Context, _ uuid.UUID) (*booking.Booking, error) {
	return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
}

func (r *fakeCommandReads) CustomerProfile(_ context.Context, _ uuid.UUID) (*shared.CustomerProfile, error) {
	if r.profile == nil {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return r.profile, nil
}

func (r *fakeCommandReads) IdempotencyByKey(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.idem.records[idemKey(key, userID)]
	if !ok {
		return nil, infra.WrapRepoErr("idempotency record not found", nil, infra.KindNotFound)
	}
	return rec, nil
}

type fakeTx struct {
	bookings *fakeBookingRepo
	payments *fakePaymentRepo
	audit    *fakeAuditRepo
	idem     *fakeIdempotencyRepo
}

func (t *fakeTx) Bookings() shared.BookingRepository       { return t.bookings }
func (t *fakeTx) Payments() shared.PaymentRepository       { return t.payments }
func (t *fakeTx) AuditLogs() shared.AuditLogRepository     { return t.audit }
func (t *fakeTx) Idempotency() shared.IdempotencyRepository { return t.idem }
func (t *fakeTx) Users() shared.UserRepository             { return nil }
func (t *fakeTx) Catalog() shared.CatalogRepository        { return nil }
func (t *fakeTx) DB() db.DBTX                              { return nil }

type fakeUoW struct {
	tx    *fakeTx
	reads *fakeCommandReads
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads { return u.reads }

type fakeGateway struct {
	requests  []gateway.ChargeRequest
	reference string
	err       error
}

func (g *fakeGateway) Charge(_ context.Context, req gateway.ChargeRequest) (*gateway.ChargeResult, error) {
	g.requests = append(g.requests, req)
	if g.err != nil {
		return nil, g.err
	}
	return &gateway.ChargeResult{Reference: g.reference}, nil
}

type stubSlots struct {
	slots []string
}

func (s *stubSlots) SlotsFor(_ context.Context, serviceID uuid.UUID, date time.Time) (*queries.AvailabilityView, error) {
	return &queries.AvailabilityView{
		ServiceID: serviceID,
		Date:      date.Format("2006-01-02"),
		Slots:     s.slots,
	}, nil
}

type wizardFixture struct {
	cmd      commands.WizardCommands
	drafts   *fakeDraftStore
	bookings *fakeBookingRepo
	payments *fakePaymentRepo
	audit    *fakeAuditRepo
	idem     *fakeIdempotencyRepo
	gateway  *fakeGateway
	reads    *fakeCommandReads
	slots    *stubSlots
	clk      *clock.MockClock
}

func newWizardFixture(sb *builder.ServiceBuilder) *wizardFixture {
	svc, addons := sb.BuildDomain()

	idem := newFakeIdempotencyRepo()
	f := &wizardFixture{
		drafts:   newFakeDraftStore(),
		bookings: &fakeBookingRepo{},
		payments: &fakePaymentRepo{},
		audit:    &fakeAuditRepo{},
		idem:     idem,
		gateway:  &fakeGateway{reference: "pi_test_1"},
		reads:    &fakeCommandReads{service: svc, addons: addons, idem: idem},
		slots:    &stubSlots{slots: []string{"09:00", "10:00", "11:00"}},
		clk:      clock.NewMockClock(time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)),
	}
	uow := &fakeUoW{
		tx:    &fakeTx{bookings: f.bookings, payments: f.payments, audit: f.audit, idem: f.idem},
		reads: f.reads,
	}
	f.cmd = commands.NewWizardCommands(uow, f.drafts, f.slots, f.gateway, f.clk)
	return f
}

func (f *wizardFixture) seed(t *testing.T, draft *booking.Draft) {
	t.Helper()
	require.NoError(t, f.drafts.Save(context.Background(), draft))
}

func validCardRequest() reqdto.NextStepRequest {
	return reqdto.NextStepRequest{
		CardNumber:     ptrOf("4242424242424242"),
		CardholderName: ptrOf("Jordan Smith"),
		ExpiryDate:     ptrOf("12/28"),
		CVV:            ptrOf("123"),
	}
}

func ptrOf[T any](v T) *T {
	return &v
}

func TestWizardStart(t *testing.T) {
	ctx := context.Background()

	t.Run("opens a step one draft with required addons priced in", func(t *testing.T) {
		sb := builder.NewServiceBuilder().WithAddon("Window Cleaning", 1500, true)
		f := newWizardFixture(sb)
		userID := uuid.New()

		res, err := f.cmd.Start(ctx, userID, reqdto.StartWizardRequest{ServiceID: sb.ID})

		require.NoError(t, err)
		require.NotNil(t, res.Draft)
		assert.Equal(t, booking.StepDetails, res.Draft.Step)
		assert.Equal(t, int64(11500), res.Draft.TotalCents)
		assert.False(t, res.Draft.Customer.Prefilled)

		stored, err := f.drafts.Find(ctx, res.Draft.Token)
		require.NoError(t, err)
		assert.Equal(t, userID, stored.UserID)
	})

	t.Run("prefills and locks contact fields from a complete profile", func(t *testing.T) {
		sb := builder.NewServiceBuilder()
		f := newWizardFixture(sb)
		userID := uuid.New()
		f.reads.profile = &shared.CustomerProfile{
			UserID:  userID,
			Name:    "Casey Doe",
			Email:   "casey@example.com",
			Phone:   "5559876543",
			Address: "7 Harbor View Road, Portsmouth",
		}

		res, err := f.cmd.Start(ctx, userID, reqdto.StartWizardRequest{ServiceID: sb.ID})

		require.NoError(t, err)
		assert.True(t, res.Draft.Customer.Prefilled)
		assert.Equal(t, "Casey Doe", res.Draft.Customer.Name)
		assert.Equal(t, "7 Harbor View Road, Portsmouth", res.Draft.Customer.Address)
	})

	t.Run("an incomplete profile does not lock anything", func(t *testing.T) {
		sb := builder.NewServiceBuilder()
		f := newWizardFixture(sb)
		userID := uuid.New()
		f.reads.profile = &shared.CustomerProfile{UserID: userID, Name: "Casey Doe", Email: "casey@example.com"}

		res, err := f.cmd.Start(ctx, userID, reqdto.StartWizardRequest{ServiceID: sb.ID})

		require.NoError(t, err)
		assert.False(t, res.Draft.Customer.Prefilled)
		assert.Empty(t, res.Draft.Customer.Name)
	})

	t.Run("rejects an inactive service", func(t *testing.T) {
		sb := builder.NewServiceBuilder().AsInactive()
		f := newWizardFixture(sb)

		_, err := f.cmd.Start(ctx, uuid.New(), reqdto.StartWizardRequest{ServiceID: sb.ID})

		assert.ErrorIs(t, err, commands.ErrServiceInactive)
	})

	t.Run("rejects an unknown service", func(t *testing.T) {
		f := newWizardFixture(builder.NewServiceBuilder())

		_, err := f.cmd.Start(ctx, uuid.New(), reqdto.StartWizardRequest{ServiceID: uuid.New()})

		assert.ErrorIs(t, err, commands.ErrServiceNotFound)
	})
}

func TestWizardGet(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the caller's draft", func(t *testing.T) {
		b := builder.NewDraftBuilder()
		f := newWizardFixture(b.Service)
		draft := b.BuildDomain()
		f.seed(t, draft)

		res, err := f.cmd.Get(ctx, draft.UserID, draft.Token)

		require.NoError(t, err)
		assert.Equal(t, draft.Token, res.Draft.Token)
	})

	t.Run("unknown token", func(t *testing.T) {
		f := newWizardFixture(builder.NewServiceBuilder())

		_, err := f.cmd.Get(ctx, uuid.New(), uuid.New())

		assert.ErrorIs(t, err, commands.ErrDraftNotFound)
	})

	t.Run("another user's draft", func(t *testing.T) {
		b := builder.NewDraftBuilder()
		f := newWizardFixture(b.Service)
		draft := b.BuildDomain()
		f.seed(t, draft)

		_, err := f.cmd.Get(ctx, uuid.New(), draft.Token)

		assert.ErrorIs(t, err, commands.ErrDraftForbidden)
	})
}

func TestWizardUpdateDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("applies partial updates and persists", func(t *testing.T) {
		b := builder.NewDraftBuilder()
		f := newWizardFixture(b.Service)
		draft := b.BuildDomain()
		f.seed(t, draft)

		res, err := f.cmd.UpdateDetails(ctx, draft.UserID, draft.Token, reqdto.UpdateDetailsRequest{
			CustomerName: ptrOf("Riley Nguyen"),
			Notes:        ptrOf("gate code 4471"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Riley Nguyen", res.Draft.Customer.Name)
		assert.Equal(t, "gate code 4471", res.Draft.Customer.Notes)
		// untouched fields survive
		assert.Equal(t, "10:00", res.Draft.ScheduledTime)

		stored, err := f.drafts.Find(ctx, draft.Token)
		require.NoError(t, err)
		assert.Equal(t, "Riley Nguyen", stored.Customer.Name)
	})

	t.Run("a date change refreshes the slot cache", func(t *testing.T) {
		b := builder.NewDraftBuilder()
		f := newWizardFixture(b.Service)
		f.slots.slots = []string{"13:00", "14:00"}
		draft := b.BuildDomain()
		f.seed(t, draft)

		res, err := f.cmd.UpdateDetails(ctx, draft.UserID, draft.Token, reqdto.UpdateDetailsRequest{
			ScheduledDate: ptrOf("2026-09-16"),
		})

		require.NoError(t, err)
		assert.Equal(t, "2026-09-16", res.Draft.Slots.Date)
		assert.Equal(t, []string{"13:00", "14:00"}, res.Draft.Slots.Slots)
	})

	t.Run("prefilled contact fields are locked, the address is not", func(t *testing.T) {
		b := builder.NewDraftBuilder()
		b.Customer.Prefilled = true
		f := newWizardFixture(b.Service)
		draft := b.BuildDomain()
		f.seed(t, draft)

		res, err := f.cmd.UpdateDetails(ctx, draft.UserID, draft.Token, reqdto.UpdateDetailsRequest{
			CustomerName:    ptrOf("Impostor"),
			CustomerAddress: ptrOf("99 Replacement Avenue, Springfield"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Jordan Smith", res.Draft.Customer.Name)
		assert.Equal(t, "99 Replacement Avenue, Springfield", res.Draft.Customer.Address)
	})

	t.Run("locked once past step one", func(t *testing.T) {
		b := builder.NewDraftBuilder().WithStep(booking.StepPaymentType)
		f := newWizardFixture(b.Service)
		draft := b.BuildDomain()
		f.seed(t, draft)

		_, err := f.cmd.UpdateDetails(ctx, draft.UserID, draft.Token, reqdto.UpdateDetailsRequest{})

		assert.ErrorIs(t, err, booking.ErrStepLocked)
	})

	t.Run("completed wizard rejects edits", func(t *testing.T) {
		b := builder.NewDraftBuilder().WithStep(booking.StepConfirmation)
		f := newWizardFixture(b.Service)
		draft := b.BuildDomain()
		f.seed(t, draft)

		_, err := f.cmd.UpdateDetails(ctx, draft.UserID, draft.Token, reqdto.UpdateDetailsRequest{})

		assert.ErrorIs(t, err, booking.ErrWizardCompleted)
	})
}

func TestWizardNext(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid details block the transition without an error", func(t *testing.T) {
		b := builder.NewDraftBuilder().WithoutSchedule()
		f := newWizardFixture(b.Service)
		draft := b.BuildDomain()
		f.seed(t, draft)

		res, err := f.cmd.Next(ctx, draft.UserID, draft.Token, reqdto.NextStepRequest{}, "203.0.113.9", "ua")

		require.NoError(t, err)
		assert.Nil(t, res.Draft)
		assert.NotEmpty(t, res.FieldErrors["scheduledDate"])

		stored, err := f.drafts.Find(ctx, draft.Token)
		require.NoError(t, err)
		assert.Equal(t, booking.StepDetails, stored.Step)
	})

	t.Run("cash on delivery creates the booking and jumps to confirmation", func(t *testing.T) {
		b := builder.NewDraftBuilder()
		f := newWizardFixture(b.Service)
		draft := b.BuildDomain()
		f.seed(t, draft)

		res, err := f.cmd.Next(ctx, draft.UserID, draft.Token, reqdto.NextStepRequest{}, "203.0.113.9", "ua")
		require.NoError(t, err)
		require.Equal(t, booking.StepPaymentType, res.Draft.Step)

		res, err = f.cmd.Next(ctx, draft.UserID, draft.Token, reqdto.NextStepRequest{PaymentType: ptrOf("cash_on_delivery")}, "203.0.113.9", "ua")

		require.NoError(t, err)
		assert.Equal(t, booking.StepConfirmation, res.Draft.Step)
		require.NotNil(t, res.Draft.BookingID)

		require.Len(t, f.bookings.created, 1)
		created := f.bookings.created[0]
		assert.Equal(t, *res.Draft.BookingID, created.ID())
		assert.Equal(t, booking.StatusPending, created.Status())
		assert.Equal(t, booking.PaymentTypeCashOnDelivery, created.PaymentType())
		assert.Empty(t, f.bookings.confirmed)
		assert.Empty(t, f.payments.created)
		assert.Empty(t, f.gateway.requests)

		require.Len(t, f.audit.entries, 1)
		assert.Equal(t, "booking.created", f.audit.entries[0].Action)
		assert.Equal(t, "203.0.113.9", f.audit.entries[0].ClientIP)
	})

	t.Run("missing payment type keeps the draft on step two", func(t *testing.T) {
		b := builder.NewDraftBuilder().WithStep(booking.StepPaymentType)
		f := newWizardFixture(b.Service)
		draft := b.BuildDomain()
		f.seed(t, draft)

		res, err := f.cmd.Next(ctx, draft.UserID, draft.Token, reqdto.NextStepRequest{}, "", "")

		require.NoError(t, err)
		assert.NotEmpty(t, res.FieldErrors["paymentType"])
		assert.Empty(t, f.bookings.created)
	})

	t.Run("card flow settles the payment and confirms the booking", func(t *testing.T) {
		b := builder.NewDraftBuilder()
		b.Service.WithAddon("Window Cleaning", 1500, true)
		f := newWizardFixture(b.Service)
		draft := b.BuildDomain()
		f.seed(t, draft)

		advance := func(req reqdto.NextStepRequest) *commands.WizardResult {
			res, err := f.cmd.Next(ctx, draft.UserID, draft.Token, req, "203.0.113.9", "ua")
			require.NoError(t, err)
			require.NotNil(t, res.Draft)
			return res
		}

		res := advance(reqdto.NextStepRequest{})
		require.Equal(t, booking.StepPaymentType, res.Draft.Step)

		res = advance(reqdto.NextStepRequest{PaymentType: ptrOf("instant")})
		require.Equal(t, booking.StepReview, res.Draft.Step)
		require.NotNil(t, res.Draft.BookingID)
		bookingID := *res.Draft.BookingID

		res = advance(reqdto.NextStepRequest{})
		require.Equal(t, booking.StepPayment, res.Draft.Step)

		res = advance(validCardRequest())
		assert.Equal(t, booking.StepConfirmation, res.Draft.Step)

		require.Len(t, f.gateway.requests, 1)
		charge := f.gateway.requests[0]
		assert.Equal(t, bookingID, charge.BookingID)
		assert.Equal(t, int64(11500), charge.AmountCents)
		assert.Equal(t, "card_****4242", charge.CardReference)

		require.Len(t, f.payments.created, 1)
		paid := f.payments.created[0]
		assert.Equal(t, payment.MethodCard, paid.Method())
		assert.Equal(t, "pi_test_1", paid.GatewayReference())
		assert.Equal(t, []uuid.UUID{bookingID}, f.bookings.confirmed)
		assert.Len(t, f.bookings.created, 1)

		require.Len(t, f.audit.entries, 2)
		assert.Equal(t, "booking.confirmed", f.audit.entries[1].Action)
	})

	t.Run("retrying the booking step converges on the original booking", func(t *testing.T) {
		b := builder.NewDraftBuilder().WithStep(booking.StepPaymentType)
		f := newWizardFixture(b.Service)
		draft := b.BuildDomain()
		f.seed(t, draft)

		res, err := f.cmd.Next(ctx, draft.UserID, draft.Token, reqdto.NextStepRequest{PaymentType: ptrOf("instant")}, "", "")
		require.NoError(t, err)
		require.NotNil(t, res.Draft.BookingID)
		firstID := *res.Draft.BookingID

		// simulate a lost response: the transaction committed but the draft
		// save did not, so the retry arrives on step 2 without a booking id
		stale := *res.Draft
		stale.Step = booking.StepPaymentType
		stale.BookingID = nil
		f.seed(t, &stale)

		res, err = f.cmd.Next(ctx, draft.UserID, draft.Token, reqdto.NextStepRequest{PaymentType: ptrOf("instant")}, "", "")

		require.NoError(t, err)
		require.NotNil(t, res.Draft.BookingID)
		assert.Equal(t, firstID, *res.Draft.BookingID)
		assert.Len(t, f.bookings.created, 1)
	})

	t.Run("back navigation edits update the created booking", func(t *testing.T) {
		b := builder.NewDraftBuilder()
		b.Service.WithAddon("Gutter Flush", 2500, false)
		optionalID := b.Service.Addons[0].ID
		f := newWizardFixture(b.Service)
		draft := b.BuildDomain()
		f.seed(t, draft)

		advance := func(req reqdto.NextStepRequest) *commands.WizardResult {
			res, err := f.cmd.Next(ctx, draft.UserID, draft.Token, req, "203.0.113.9", "ua")
			require.NoError(t, err)
			require.NotNil(t, res.Draft)
			return res
		}

		advance(reqdto.NextStepRequest{})
		res := advance(reqdto.NextStepRequest{PaymentType: ptrOf("instant")})
		require.Equal(t, booking.StepReview, res.Draft.Step)
		require.NotNil(t, res.Draft.BookingID)
		bookingID := *res.Draft.BookingID

		_, err := f.cmd.Back(ctx, draft.UserID, draft.Token)
		require.NoError(t, err)
		_, err = f.cmd.Back(ctx, draft.UserID, draft.Token)
		require.NoError(t, err)

		_, err = f.cmd.UpdateDetails(ctx, draft.UserID, draft.Token, reqdto.UpdateDetailsRequest{
			ScheduledTime:   ptrOf("11:00"),
			SelectedAddons:  &[]uuid.UUID{optionalID},
			CustomerAddress: ptrOf("7 Harbor View Road, Portsmouth"),
		})
		require.NoError(t, err)

		advance(reqdto.NextStepRequest{})
		res = advance(reqdto.NextStepRequest{PaymentType: ptrOf("cash_on_delivery")})

		assert.Equal(t, booking.StepConfirmation, res.Draft.Step)
		assert.Equal(t, int64(12500), res.Draft.TotalCents)
		assert.Len(t, f.bookings.created, 1)

		require.Len(t, f.bookings.updated, 1)
		upd := f.bookings.updated[0]
		assert.Equal(t, bookingID, upd.id)
		assert.Equal(t, int64(12500), upd.b.Total().Cents())
		assert.Equal(t, booking.PaymentTypeCashOnDelivery, upd.b.PaymentType())
		assert.Equal(t, "11:00", upd.b.ScheduledAt().Format("15:04"))
		assert.Equal(t, "7 Harbor View Road, Portsmouth", upd.b.Address())
		assert.Equal(t, []uuid.UUID{optionalID}, upd.b.AddonIDs())

		last := f.audit.entries[len(f.audit.entries)-1]
		assert.Equal(t, "booking.updated", last.Action)
	})

	t.Run("revisiting the booking step without edits writes nothing", func(t *testing.T) {
		b := builder.NewDraftBuilder().WithStep(booking.StepPaymentType)
		f := newWizardFixture(b.Service)
		draft := b.BuildDomain()
		f.seed(t, draft)

		_, err := f.cmd.Next(ctx, draft.UserID, draft.Token, reqdto.NextStepRequest{PaymentType: ptrOf("instant")}, "", "")
		require.NoError(t, err)
		_, err = f.cmd.Back(ctx, draft.UserID, draft.Token)
		require.NoError(t, err)

		res, err := f.cmd.Next(ctx, draft.UserID, draft.Token, reqdto.NextStepRequest{PaymentType: ptrOf("instant")}, "", "")

		require.NoError(t, err)
		assert.Equal(t, booking.StepReview, res.Draft.Step)
		assert.Len(t, f.bookings.created, 1)
		assert.Empty(t, f.bookings.updated)
	})

	t.Run("a zero total blocks booking creation with a field error", func(t *testing.T) {
		b := builder.NewDraftBuilder().WithStep(booking.StepPaymentType)
		b.Service.WithPriceCents(0)
		f := newWizardFixture(b.Service)
		draft := b.BuildDomain()
		f.seed(t, draft)

		res, err := f.cmd.Next(ctx, draft.UserID, draft.Token, reqdto.NextStepRequest{PaymentType: ptrOf("cash_on_delivery")}, "", "")

		require.NoError(t, err)
		assert.Nil(t, res.Draft)
		assert.NotEmpty(t, res.FieldErrors["selectedAddons"])
		assert.Empty(t, f.bookings.created)

		stored, err := f.drafts.Find(ctx, draft.Token)
		require.NoError(t, err)
		assert.Equal(t, booking.StepPaymentType, stored.Step)
	})

	t.Run("an invalid card never reaches the gateway", func(t *testing.T) {
		b := builder.NewDraftBuilder().WithStep(booking.StepPayment).WithPaymentType(booking.PaymentTypeInstant)
		f := newWizardFixture(b.Service)
		draft := b.BuildDomain()
		bookingID := uuid.New()
		draft.BookingID = &bookingID
		f.seed(t, draft)

		res, err := f.cmd.Next(ctx, draft.UserID, draft.Token, reqdto.NextStepRequest{CardNumber: ptrOf("1234")}, "", "")

		require.NoError(t, err)
		assert.NotEmpty(t, res.FieldErrors["cardNumber"])
		assert.Empty(t, f.gateway.requests)
	})

	t.Run("a gateway failure leaves the draft on the payment step", func(t *testing.T) {
		b := builder.NewDraftBuilder().WithStep(booking.StepPayment).WithPaymentType(booking.PaymentTypeInstant)
		f := newWizardFixture(b.Service)
		f.gateway.err = errors.New("card_declined")
		draft := b.BuildDomain()
		bookingID := uuid.New()
		draft.BookingID = &bookingID
		f.seed(t, draft)

		_, err := f.cmd.Next(ctx, draft.UserID, draft.Token, validCardRequest(), "", "")

		assert.ErrorIs(t, err, commands.ErrPaymentFailed)
		assert.Empty(t, f.payments.created)
		assert.Empty(t, f.bookings.confirmed)

		stored, ferr := f.drafts.Find(ctx, draft.Token)
		require.NoError(t, ferr)
		assert.Equal(t, booking.StepPayment, stored.Step)
	})

	t.Run("paying without a booking is rejected", func(t *testing.T) {
		b := builder.NewDraftBuilder().WithStep(booking.StepPayment).WithPaymentType(booking.PaymentTypeInstant)
		f := newWizardFixture(b.Service)
		draft := b.BuildDomain()
		f.seed(t, draft)

		_, err := f.cmd.Next(ctx, draft.UserID, draft.Token, validCardRequest(), "", "")

		assert.ErrorIs(t, err, booking.ErrBookingNotCreated)
	})

	t.Run("completed wizard rejects further transitions", func(t *testing.T) {
		b := builder.NewDraftBuilder().WithStep(booking.StepConfirmation)
		f := newWizardFixture(b.Service)
		draft := b.BuildDomain()
		f.seed(t, draft)

		_, err := f.cmd.Next(ctx, draft.UserID, draft.Token, reqdto.NextStepRequest{}, "", "")

		assert.ErrorIs(t, err, booking.ErrWizardCompleted)
	})
}

func TestWizardBack(t *testing.T) {
	ctx := context.Background()

	t.Run("steps back and persists", func(t *testing.T) {
		b := builder.NewDraftBuilder().WithStep(booking.StepPaymentType)
		f := newWizardFixture(b.Service)
		draft := b.BuildDomain()
		f.seed(t, draft)

		res, err := f.cmd.Back(ctx, draft.UserID, draft.Token)

		require.NoError(t, err)
		assert.Equal(t, booking.StepDetails, res.Draft.Step)

		stored, err := f.drafts.Find(ctx, draft.Token)
		require.NoError(t, err)
		assert.Equal(t, booking.StepDetails, stored.Step)
	})

	t.Run("the first step has nowhere to go", func(t *testing.T) {
		b := builder.NewDraftBuilder()
		f := newWizardFixture(b.Service)
		draft := b.BuildDomain()
		f.seed(t, draft)

		_, err := f.cmd.Back(ctx, draft.UserID, draft.Token)

		assert.ErrorIs(t, err, booking.ErrCannotGoBack)
	})
}
