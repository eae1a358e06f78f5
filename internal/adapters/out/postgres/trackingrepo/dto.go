// Package trackingrepo provides data transfer objects and mapping functions for
// the tracking ledger. Ledger entries are append-only; the store assigns their
// identifiers on insert.
package trackingrepo

import (
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// TrackingEventDTO represents the database structure for persisting tracking
// ledger entries. The primary key is store-assigned and strictly increasing,
// which breaks ordering ties between entries sharing a timestamp.
type TrackingEventDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Status      string    `gorm:"not null"`
	Location    string
	Description string
	Timestamp   time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for tracking ledger entries.
func (TrackingEventDTO) TableName() string {
	return "tracking_updates"
}

// fromDomain converts a tracking event to its database representation.
// The ID is left zero for new entries so the database assigns it.
func fromDomain(event *tracking.Event) TrackingEventDTO {
	return TrackingEventDTO{
		ID:          event.ID(),
		ShipmentID:  event.ShipmentID().Bytes(),
		Status:      string(event.Status()),
		Location:    event.Location(),
		Description: event.Description(),
		Timestamp:   event.Timestamp(),
	}
}

// toDomain converts a database DTO to a tracking event using RestoreEvent.
func toDomain(dto TrackingEventDTO) (*tracking.Event, error) {
	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	return tracking.RestoreEvent(
		dto.ID,
		shipmentID,
		shipment.Status(dto.Status),
		dto.Location,
		dto.Description,
		dto.Timestamp,
	)
}
