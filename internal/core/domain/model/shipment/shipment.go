package shipment

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

	// ErrDuplicateTrackingNumber is returned by the persistence layer when the
	// generated tracking number collides with an existing one. Callers are
	// expected to regenerate and retry a bounded number of times.
	ErrDuplicateTrackingNumber = errors.New("tracking number already exists")
)

// Shipment is the aggregate root for one tracked parcel.
//
// Invariants:
//   - id and trackingNumber are immutable after construction
//   - sender and recipient identity fields are set at creation
//   - status, currentLocation, and updatedAt always reflect the most recently
//     appended tracking event; they change only through ApplyStatus
//   - estimatedDelivery and createdAt are set once and never mutated
type Shipment struct {
	id               kernel.UUID
	trackingNumber   TrackingNumber
	senderName       string
	senderAddress    string
	recipientName    string
	recipientAddress string
	recipientPhone   string

	status            Status
	currentLocation   string
	estimatedDelivery string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewShipment creates a shipment in StatusPending with no current location.
// Sender and recipient name and address are required; recipientPhone and
// estimatedDelivery may be empty. createdAt is also used as the initial
// updatedAt so the projection matches the initial ledger event.
func NewShipment(
	id kernel.UUID,
	trackingNumber TrackingNumber,
	senderName, senderAddress string,
	recipientName, recipientAddress, recipientPhone string,
	estimatedDelivery string,
	createdAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:            StatusPending,
		recipientPhone:    recipientPhone,
		estimatedDelivery: estimatedDelivery,
		createdAt:         createdAt,
		updatedAt:         createdAt,
		isConstructed:     true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingNumber(trackingNumber),
		s.setSender(senderName, senderAddress),
		s.setRecipient(recipientName, recipientAddress),
		s.validateCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence, including its
// projected status, location, and timestamps.
func RestoreShipment(
	id kernel.UUID,
	trackingNumber TrackingNumber,
	senderName, senderAddress string,
	recipientName, recipientAddress, recipientPhone string,
	status Status,
	currentLocation, estimatedDelivery string,
	createdAt, updatedAt time.Time,
) (*Shipment, error) {
	s, err := NewShipment(
		id, trackingNumber,
		senderName, senderAddress,
		recipientName, recipientAddress, recipientPhone,
		estimatedDelivery, createdAt,
	)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	s.status = status
	s.currentLocation = currentLocation
	s.updatedAt = updatedAt
	return s, nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by identifier.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's internal identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// TrackingNumber returns the shipment's public identifier.
func (s *Shipment) TrackingNumber() TrackingNumber {
	return s.trackingNumber
}

// SenderName returns the sender's name.
func (s *Shipment) SenderName() string {
	return s.senderName
}

// SenderAddress returns the sender's address.
func (s *Shipment) SenderAddress() string {
	return s.senderAddress
}

// RecipientName returns the recipient's name.
func (s *Shipment) RecipientName() string {
	return s.recipientName
}

// RecipientAddress returns the recipient's address.
func (s *Shipment) RecipientAddress() string {
	return s.recipientAddress
}

// RecipientPhone returns the recipient's phone number, or "" when the
// recipient did not opt into notifications.
func (s *Shipment) RecipientPhone() string {
	return s.recipientPhone
}

// Status returns the projected current status.
func (s *Shipment) Status() Status {
	return s.status
}

// CurrentLocation returns the projected current location.
func (s *Shipment) CurrentLocation() string {
	return s.currentLocation
}

// EstimatedDelivery returns the free-text delivery estimate set at creation.
func (s *Shipment) EstimatedDelivery() string {
	return s.estimatedDelivery
}

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns the timestamp of the last projected status change.
func (s *Shipment) UpdatedAt() time.Time {
	return s.updatedAt
}

// ApplyStatus projects a newly appended tracking event onto the shipment:
// status and currentLocation are overwritten and updatedAt is bumped to the
// event timestamp. The caller must persist the shipment and the event in the
// same transaction to keep the projection consistent with the ledger.
func (s *Shipment) ApplyStatus(status Status, location string, at time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("at")
	}

	s.status = status
	s.currentLocation = location
	s.updatedAt = at
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setTrackingNumber(trackingNumber TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	s.trackingNumber = trackingNumber
	return nil
}

func (s *Shipment) setSender(name, address string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("senderName")
	}
	if address == "" {
		return errs.NewValueIsRequiredError("senderAddress")
	}
	s.senderName = name
	s.senderAddress = address
	return nil
}

func (s *Shipment) setRecipient(name, address string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("recipientName")
	}
	if address == "" {
		return errs.NewValueIsRequiredError("recipientAddress")
	}
	s.recipientName = name
	s.recipientAddress = address
	return nil
}

func (s *Shipment) validateCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	return nil
}
