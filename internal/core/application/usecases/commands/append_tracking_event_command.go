package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/guard"
)

var ErrAppendTrackingEventCommandIsNotConstructed = errors.New(
	"AppendTrackingEventCommand must be created via NewAppendTrackingEventCommand constructor",
)

// AppendTrackingEventCommand represents a status change for one shipment:
// a new ledger entry plus the projection of its fields onto the shipment row.
// The status is free-form (any non-empty string); location and description
// may be empty.
type AppendTrackingEventCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	status      shipment.Status
	location    string
	description string

	guard guard.ConstructorGuard
}

// NewAppendTrackingEventCommand creates a command to append a tracking event.
// Validates that the shipment id is constructed and the status is non-empty.
func NewAppendTrackingEventCommand(
	shipmentID kernel.UUID,
	status shipment.Status,
	location, description string,
) (AppendTrackingEventCommand, error) {
	cmd := AppendTrackingEventCommand{
		location:    location,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setStatus(status),
	); err != nil {
		return AppendTrackingEventCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AppendTrackingEventCommand) Validate() error {
	return c.guard.Validate(ErrAppendTrackingEventCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to update.
func (c AppendTrackingEventCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Status returns the new status to record.
func (c AppendTrackingEventCommand) Status() shipment.Status {
	return c.status
}

// Location returns the reported location, possibly empty.
func (c AppendTrackingEventCommand) Location() string {
	return c.location
}

// Description returns the human-readable event description, possibly empty.
func (c AppendTrackingEventCommand) Description() string {
	return c.description
}

func (c *AppendTrackingEventCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *AppendTrackingEventCommand) setStatus(status shipment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
