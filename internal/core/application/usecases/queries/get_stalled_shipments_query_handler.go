package queries

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStalledShipmentsQueryHandler scans the shipments table for undelivered
// rows with no recent tracking activity.
type GetStalledShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetStalledShipmentsQueryHandler creates a handler for stalled shipment
// detection. Requires a GORM database connection for query execution.
func NewGetStalledShipmentsQueryHandler(db *gorm.DB) GetStalledShipmentsQueryHandler {
	return GetStalledShipmentsQueryHandler{db: db}
}

// Handle executes the query. A shipment is stalled when it is not delivered
// and its updated_at is older than now minus the query's threshold. Oldest
// shipments come first so the most neglected are reported at the top.
func (h GetStalledShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetStalledShipmentsQuery,
) ([]GetStalledShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-query.Threshold())
	stalled := make([]GetStalledShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			status,
			current_location,
			updated_at
		FROM shipments
		WHERE status != ? AND updated_at < ?
		ORDER BY updated_at
	`, string(shipment.StatusDelivered), cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetStalledShipmentsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.TrackingNumber,
			&resp.Status,
			&resp.CurrentLocation,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = shipmentID

		stalled = append(stalled, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stalled, nil
}
