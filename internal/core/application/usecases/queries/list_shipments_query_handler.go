package queries

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListShipmentsQueryHandler retrieves all shipment rows from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewListShipmentsQueryHandler(db)
//	query := NewListShipmentsQuery()
//
//	shipments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list shipments: %v", err)
//	    return err
//	}
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsQueryHandler creates a handler for shipment listing.
// Requires a GORM database connection for query execution.
func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all shipments.
// Results come back newest first by registration time.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) ([]ListShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]ListShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			sender_name,
			recipient_name,
			status,
			current_location,
			estimated_delivery,
			created_at,
			updated_at
		FROM shipments
		ORDER BY created_at DESC, tracking_number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary ListShipmentsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&summary.TrackingNumber,
			&summary.SenderName,
			&summary.RecipientName,
			&summary.Status,
			&summary.CurrentLocation,
			&summary.EstimatedDelivery,
			&summary.CreatedAt,
			&summary.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.ID = shipmentID

		shipments = append(shipments, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
