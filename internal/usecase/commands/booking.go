package commands

import (
	"context"

	"marketplace-api/internal/domain/booking"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrBookingForbidden = errs.New("booking belongs to another user")
)

type BookingCommands interface {
	// Cancel is available to the booking's customer and to admins of the
	// booking's company.
	Cancel(ctx context.Context, actor ActorContext, id uuid.UUID, isAdmin bool) error
	// Complete marks delivery; cash bookings collect payment here.
	Complete(ctx context.Context, actor ActorContext, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewBookingCommands(uow shared.UnitOfWork) BookingCommands {
	return &bookingCommandsImpl{uow: uow}
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, actor ActorContext, id uuid.UUID, isAdmin bool) error {
	current, err := c.loadBooking(ctx, id)
	if err != nil {
		return err
	}

	if !isAdmin && current.UserID() != actor.UserID {
		return ErrBookingForbidden
	}

	if err := current.Cancel(); err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), id, booking.StatusCancelled); err != nil {
			return err
		}
		return tx.AuditLogs().Insert(ctx, tx.DB(), shared.AuditEntry{
			ActorID:      actor.UserID,
			CompanyID:    ptr(current.CompanyID()),
			Action:       "booking.cancelled",
			ResourceType: "booking",
			ResourceID:   &id,
			ClientIP:     actor.ClientIP,
			UserAgent:    actor.UserAgent,
		})
	})
}

func (c *bookingCommandsImpl) Complete(ctx context.Context, actor ActorContext, id uuid.UUID) error {
	current, err := c.loadBooking(ctx, id)
	if err != nil {
		return err
	}

	if err := current.Complete(); err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), id, booking.StatusCompleted); err != nil {
			return err
		}
		return tx.AuditLogs().Insert(ctx, tx.DB(), shared.AuditEntry{
			ActorID:      actor.UserID,
			CompanyID:    ptr(current.CompanyID()),
			Action:       "booking.completed",
			ResourceType: "booking",
			ResourceID:   &id,
			ClientIP:     actor.ClientIP,
			UserAgent:    actor.UserAgent,
		})
	})
}

func (c *bookingCommandsImpl) loadBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	current, err := c.uow.CommandReads().BookingByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, ErrBookingNotFound)
	}
	return current, nil
}
