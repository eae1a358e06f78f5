// Package ports defines the contracts between the core and its collaborators:
// repositories over the durable store, the transactional unit of work, and
// the outbound notification dispatcher. These interfaces establish the
// dependency-inversion boundary that keeps the domain free of infrastructure.
package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment. The store enforces tracking-number
	// uniqueness; a collision is reported as
	// shipment.ErrDuplicateTrackingNumber so callers can regenerate and retry.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists the projected state of an existing shipment.
	// Returns an error wrapping errs.ErrObjectNotFound if the shipment
	// does not exist.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its internal identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByTrackingNumber retrieves a shipment by its public identifier.
	GetByTrackingNumber(ctx context.Context, number shipment.TrackingNumber) (*shipment.Shipment, error)
}
