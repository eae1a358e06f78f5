package queries

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var (
	ErrGetStalledShipmentsQueryIsNotConstructed = errors.New(
		"GetStalledShipmentsQuery must be created via NewGetStalledShipmentsQuery constructor",
	)
)

// GetStalledShipmentsQuery finds undelivered shipments with no tracking
// activity for at least the given duration. Used by the monitoring job to
// surface shipments that may be stuck in the network.
//
// Example:
//
//	query, err := NewGetStalledShipmentsQuery(48 * time.Hour)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetStalledShipmentsQueryHandler(db)
//
//	stalled, err := handler.Handle(ctx, query)
type GetStalledShipmentsQuery struct {
	threshold time.Duration

	guard guard.ConstructorGuard
}

// NewGetStalledShipmentsQuery creates a query for shipments whose last update
// is older than threshold. The threshold must be positive.
func NewGetStalledShipmentsQuery(threshold time.Duration) (GetStalledShipmentsQuery, error) {
	if threshold <= 0 {
		return GetStalledShipmentsQuery{}, errs.NewValueIsInvalidError("threshold")
	}

	return GetStalledShipmentsQuery{
		threshold: threshold,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStalledShipmentsQueryIsNotConstructed if validation fails.
func (q GetStalledShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetStalledShipmentsQueryIsNotConstructed)
}

// Threshold returns the inactivity duration after which a shipment counts
// as stalled.
func (q GetStalledShipmentsQuery) Threshold() time.Duration {
	return q.threshold
}

// GetStalledShipmentsQueryResponse identifies one stalled shipment.
type GetStalledShipmentsQueryResponse struct {
	ID              kernel.UUID
	TrackingNumber  string
	Status          string
	CurrentLocation string
	UpdatedAt       time.Time
}
