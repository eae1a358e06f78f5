package tracking

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"
)

// ErrEventIsNotConstructed is returned when an Event instance was not created
// through NewEvent or RestoreEvent.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent or RestoreEvent")

// Event is one immutable ledger entry: a snapshot of a shipment's status,
// location, and a human-readable description at the moment it was appended.
//
// The id is the store-assigned monotonic append key; for an Event that has
// not been persisted yet it is zero.
type Event struct {
	id          int64
	shipmentID  kernel.UUID
	status      shipment.Status
	location    string
	description string
	timestamp   time.Time

	isConstructed bool
}

// NewEvent creates a ledger entry awaiting persistence. location and
// description may be empty; status and timestamp may not.
func NewEvent(
	shipmentID kernel.UUID,
	status shipment.Status,
	location, description string,
	timestamp time.Time,
) (*Event, error) {
	e := &Event{
		location:      location,
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setShipmentID(shipmentID),
		e.setStatus(status),
		e.setTimestamp(timestamp),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEvent reconstructs a persisted ledger entry including its
// store-assigned id.
func RestoreEvent(
	id int64,
	shipmentID kernel.UUID,
	status shipment.Status,
	location, description string,
	timestamp time.Time,
) (*Event, error) {
	e, err := NewEvent(shipmentID, status, location, description, timestamp)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("id")
	}

	e.id = id
	return e, nil
}

// Validate ensures the Event was created through a constructor.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned append key, or zero before persistence.
func (e *Event) ID() int64 {
	return e.id
}

// ShipmentID returns the owning shipment's identifier.
func (e *Event) ShipmentID() kernel.UUID {
	return e.shipmentID
}

// Status returns the status recorded by this entry.
func (e *Event) Status() shipment.Status {
	return e.status
}

// Location returns the location recorded by this entry, possibly empty.
func (e *Event) Location() string {
	return e.location
}

// Description returns the human-readable description of this entry.
func (e *Event) Description() string {
	return e.description
}

// Timestamp returns the append time of this entry.
func (e *Event) Timestamp() time.Time {
	return e.timestamp
}

func (e *Event) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	e.shipmentID = shipmentID
	return nil
}

func (e *Event) setStatus(status shipment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}

func (e *Event) setTimestamp(timestamp time.Time) error {
	if timestamp.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}
	e.timestamp = timestamp
	return nil
}
