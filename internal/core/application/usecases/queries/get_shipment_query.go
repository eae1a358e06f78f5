package queries

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/guard"
)

var (
	ErrGetShipmentQueryIsNotConstructed = errors.New(
		"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
	)
)

// GetShipmentQuery retrieves one shipment by its public tracking number,
// together with its full tracking history.
//
// Example:
//
//	query, err := NewGetShipmentQuery(trackingNumber)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetShipmentQueryHandler(db)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get shipment: %w", err)
//	}
//
//	fmt.Printf("Shipment %s is %s\n", resp.TrackingNumber, resp.Status)
type GetShipmentQuery struct {
	trackingNumber shipment.TrackingNumber

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query to retrieve a shipment by tracking number.
func NewGetShipmentQuery(trackingNumber shipment.TrackingNumber) (GetShipmentQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}

	return GetShipmentQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentQueryIsNotConstructed if validation fails.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number being looked up.
func (q GetShipmentQuery) TrackingNumber() shipment.TrackingNumber {
	return q.trackingNumber
}

// GetShipmentQueryResponse is the full read model of one shipment:
// the projected row plus every ledger entry, newest first.
type GetShipmentQueryResponse struct {
	ID                kernel.UUID
	TrackingNumber    string
	SenderName        string
	SenderAddress     string
	RecipientName     string
	RecipientAddress  string
	RecipientPhone    string
	Status            string
	CurrentLocation   string
	EstimatedDelivery string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Events            []TrackingEventResponse
}

// TrackingEventResponse is one entry of a shipment's tracking history.
type TrackingEventResponse struct {
	ID          int64
	Status      string
	Location    string
	Description string
	Timestamp   time.Time
}
