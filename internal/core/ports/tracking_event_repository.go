package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/tracking"
)

// TrackingEventRepository defines the persistence contract for the append-only
// tracking ledger. Entries are inserted and read, never updated or deleted.
type TrackingEventRepository interface {
	// Add appends one ledger entry. Must run inside the same transaction as
	// the projection update on the owning shipment.
	Add(ctx context.Context, event *tracking.Event) error

	// GetForShipment retrieves the complete ledger for one shipment, newest
	// entry first (timestamp descending, append key descending as tie-break).
	GetForShipment(ctx context.Context, shipmentID kernel.UUID) ([]*tracking.Event, error)
}
