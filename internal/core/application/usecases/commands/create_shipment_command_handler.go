package commands

import (
	"context"
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/core/domain/model/tracking"
	"shiptrack/internal/core/domain/services"
	"shiptrack/internal/core/ports"
)

// initialEventDescription is recorded in the ledger entry created together
// with every new shipment.
const initialEventDescription = "Shipment order received and processing."

// maxTrackingNumberAttempts bounds the regenerate-and-retry loop on
// tracking-number collisions. The keyspace makes more than one attempt
// vanishingly rare.
const maxTrackingNumberAttempts = 3

// CreateShipmentCommandHandler handles shipment registration.
// Persists the shipment in pending status together with its initial ledger
// entry in one transaction, then notifies the recipient when a phone number
// was provided.
type CreateShipmentCommandHandler struct {
	uowFactory UoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewCreateShipmentCommandHandler creates a handler for shipment registration.
// Requires a UoWFactory for transactional persistence and a dispatcher for
// the post-commit creation notification.
func NewCreateShipmentCommandHandler(
	uowFactory UoWFactory,
	dispatcher ports.NotificationDispatcher,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the shipment registration command and returns the
// persisted shipment. A tracking-number collision triggers regeneration and a
// fresh attempt, up to maxTrackingNumberAttempts. The creation notification
// is dispatched after the commit and never affects the outcome.
func (h CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < maxTrackingNumberAttempts; attempt++ {
		created, err := h.createOnce(ctx, cmd)
		if errors.Is(err, shipment.ErrDuplicateTrackingNumber) {
			lastErr = err
			continue
		}
		if err != nil {
			return nil, err
		}

		if created.RecipientPhone() != "" {
			h.dispatcher.Dispatch(services.NewNotificationComposer().CreationMessage(created))
		}
		return created, nil
	}

	return nil, lastErr
}

func (h CreateShipmentCommandHandler) createOnce(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	now := time.Now().UTC()

	aggregate, err := shipment.NewShipment(
		kernel.NewUUID(),
		shipment.GenerateTrackingNumber(),
		cmd.SenderName(), cmd.SenderAddress(),
		cmd.RecipientName(), cmd.RecipientAddress(), cmd.RecipientPhone(),
		cmd.EstimatedDelivery(),
		now,
	)
	if err != nil {
		return nil, err
	}

	initialEvent, err := tracking.NewEvent(
		aggregate.ID(), shipment.StatusPending, "", initialEventDescription, now,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.TrackingEventRepository().Add(ctx, initialEvent); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
