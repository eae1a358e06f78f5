package commands

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/tracking"
	"shiptrack/internal/core/domain/services"
	"shiptrack/internal/core/ports"
)

// AppendTrackingEventCommandHandler performs the append-and-project operation:
// one new ledger entry and the matching overwrite of the shipment's projected
// status, location, and updated-at, committed as a single transaction.
//
// Concurrent appends against the same shipment are not serialized here; the
// last transaction to commit determines the projected state, and both ledger
// entries survive.
type AppendTrackingEventCommandHandler struct {
	uowFactory UoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewAppendTrackingEventCommandHandler creates a handler for status updates.
// Requires a UoWFactory for transactional persistence and a dispatcher for
// the post-commit update notification.
func NewAppendTrackingEventCommandHandler(
	uowFactory UoWFactory,
	dispatcher ports.NotificationDispatcher,
) AppendTrackingEventCommandHandler {
	return AppendTrackingEventCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle appends the tracking event and projects it onto the shipment.
// Returns an error wrapping errs.ErrObjectNotFound when the shipment does not
// exist. The update notification is dispatched only after the commit and its
// failure is invisible to the caller.
func (h AppendTrackingEventCommandHandler) Handle(ctx context.Context, cmd AppendTrackingEventCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	event, err := tracking.NewEvent(
		aggregate.ID(), cmd.Status(), cmd.Location(), cmd.Description(), now,
	)
	if err != nil {
		return err
	}

	if err = uow.TrackingEventRepository().Add(ctx, event); err != nil {
		return err
	}

	if err = aggregate.ApplyStatus(cmd.Status(), cmd.Location(), now); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if aggregate.RecipientPhone() != "" {
		h.dispatcher.Dispatch(services.NewNotificationComposer().StatusUpdateMessage(aggregate, event))
	}

	return nil
}
