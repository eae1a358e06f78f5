package queries

import (
	"context"
	"database/sql"
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentQueryHandler reads one shipment and its tracking history straight
// from the database, bypassing the aggregate for read performance.
//
// Example:
//
//	handler := NewGetShipmentQueryHandler(db)
//	query, _ := NewGetShipmentQuery(trackingNumber)
//
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown tracking number
//	}
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for shipment lookups.
// Requires a GORM database connection for query execution.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the lookup. Returns an error wrapping errs.ErrObjectNotFound
// when no shipment carries the tracking number. History entries come back
// newest first; ties on timestamp break by descending entry id, so the latest
// appended entry always leads.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	var resp GetShipmentQueryResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			sender_name,
			sender_address,
			recipient_name,
			recipient_address,
			recipient_phone,
			status,
			current_location,
			estimated_delivery,
			created_at,
			updated_at
		FROM shipments
		WHERE tracking_number = ?
	`, query.TrackingNumber().String()).Row()

	err := row.Scan(
		&id,
		&resp.TrackingNumber,
		&resp.SenderName,
		&resp.SenderAddress,
		&resp.RecipientName,
		&resp.RecipientAddress,
		&resp.RecipientPhone,
		&resp.Status,
		&resp.CurrentLocation,
		&resp.EstimatedDelivery,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError(
			"trackingNumber", query.TrackingNumber().String(),
		)
	}
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	resp.ID = shipmentID

	events, err := h.loadEvents(ctx, id)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	resp.Events = events

	return resp, nil
}

func (h GetShipmentQueryHandler) loadEvents(
	ctx context.Context,
	shipmentID uuid.UUID,
) ([]TrackingEventResponse, error) {
	events := make([]TrackingEventResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			location,
			description,
			timestamp
		FROM tracking_updates
		WHERE shipment_id = ?
		ORDER BY timestamp DESC, id DESC
	`, shipmentID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event TrackingEventResponse

		err = rows.Scan(
			&event.ID,
			&event.Status,
			&event.Location,
			&event.Description,
			&event.Timestamp,
		)
		if err != nil {
			return nil, err
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
