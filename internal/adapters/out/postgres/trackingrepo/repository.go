package trackingrepo

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/tracking"

	"gorm.io/gorm"
)

// GormTrackingEventRepository implements TrackingEventRepository using GORM.
// The ledger is append-only: entries are inserted and read, never updated or
// deleted. Entries are not aggregates, so no tracker is involved.
type GormTrackingEventRepository struct {
	db *gorm.DB
}

// NewGormTrackingEventRepository creates a new GORM tracking ledger repository.
func NewGormTrackingEventRepository(db *gorm.DB) *GormTrackingEventRepository {
	return &GormTrackingEventRepository{db: db}
}

// Add appends a ledger entry. The database assigns the entry id.
func (r *GormTrackingEventRepository) Add(ctx context.Context, event *tracking.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetForShipment retrieves the full ledger of one shipment, newest first.
// Ties on timestamp break by descending entry id.
func (r *GormTrackingEventRepository) GetForShipment(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]*tracking.Event, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TrackingEventDTO
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.Bytes()).
		Order("timestamp DESC, id DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]*tracking.Event, 0, len(dtos))
	for _, dto := range dtos {
		event, restoreErr := toDomain(dto)
		if restoreErr != nil {
			return nil, restoreErr
		}
		events = append(events, event)
	}

	return events, nil
}
