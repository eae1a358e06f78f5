package queries

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var (
	ErrListShipmentsQueryIsNotConstructed = errors.New(
		"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
	)
)

// ListShipmentsQuery retrieves every registered shipment for overview screens
// and operational monitoring. History entries are not included; use
// GetShipmentQuery for a single shipment's full ledger.
//
// Example:
//
//	query := NewListShipmentsQuery()
//	handler := NewListShipmentsQueryHandler(db)
//
//	shipments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list shipments: %w", err)
//	}
//
//	fmt.Printf("Found %d shipments\n", len(shipments))
type ListShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates a parameterless query for all shipments.
func NewListShipmentsQuery() ListShipmentsQuery {
	return ListShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListShipmentsQueryIsNotConstructed if validation fails.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// ListShipmentsQueryResponse is the summary read model of one shipment row.
type ListShipmentsQueryResponse struct {
	ID                kernel.UUID
	TrackingNumber    string
	SenderName        string
	RecipientName     string
	Status            string
	CurrentLocation   string
	EstimatedDelivery string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
