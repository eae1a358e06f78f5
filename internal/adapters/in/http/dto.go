package http

import (
	"time"

	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/shipment"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateShipmentRequest is the JSON body for registering a shipment.
type CreateShipmentRequest struct {
	SenderName        string `json:"sender_name"`
	SenderAddress     string `json:"sender_address"`
	RecipientName     string `json:"recipient_name"`
	RecipientAddress  string `json:"recipient_address"`
	RecipientPhone    string `json:"recipient_phone,omitempty"`
	EstimatedDelivery string `json:"estimated_delivery,omitempty"`
}

// AppendTrackingEventRequest is the JSON body for recording a status update.
type AppendTrackingEventRequest struct {
	Status      string `json:"status"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// SignupForAlertsRequest is the JSON body for registering an alert contact.
type SignupForAlertsRequest struct {
	Contact string `json:"contact"`
}

// ShipmentResponse is the JSON representation of one registered shipment.
type ShipmentResponse struct {
	ID                string                  `json:"id"`
	TrackingNumber    string                  `json:"tracking_number"`
	SenderName        string                  `json:"sender_name"`
	SenderAddress     string                  `json:"sender_address"`
	RecipientName     string                  `json:"recipient_name"`
	RecipientAddress  string                  `json:"recipient_address"`
	RecipientPhone    string                  `json:"recipient_phone,omitempty"`
	Status            string                  `json:"status"`
	CurrentLocation   string                  `json:"current_location,omitempty"`
	EstimatedDelivery string                  `json:"estimated_delivery,omitempty"`
	CreatedAt         time.Time               `json:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at"`
	Events            []TrackingEventResponse `json:"events,omitempty"`
}

// TrackingEventResponse is the JSON representation of one ledger entry.
type TrackingEventResponse struct {
	ID          int64     `json:"id"`
	Status      string    `json:"status"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// ShipmentSummaryResponse is the JSON representation of a shipment in list
// output, without its tracking history.
type ShipmentSummaryResponse struct {
	ID                string    `json:"id"`
	TrackingNumber    string    `json:"tracking_number"`
	SenderName        string    `json:"sender_name"`
	RecipientName     string    `json:"recipient_name"`
	Status            string    `json:"status"`
	CurrentLocation   string    `json:"current_location,omitempty"`
	EstimatedDelivery string    `json:"estimated_delivery,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func shipmentResponseFromAggregate(aggregate *shipment.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:                aggregate.ID().String(),
		TrackingNumber:    aggregate.TrackingNumber().String(),
		SenderName:        aggregate.SenderName(),
		SenderAddress:     aggregate.SenderAddress(),
		RecipientName:     aggregate.RecipientName(),
		RecipientAddress:  aggregate.RecipientAddress(),
		RecipientPhone:    aggregate.RecipientPhone(),
		Status:            string(aggregate.Status()),
		CurrentLocation:   aggregate.CurrentLocation(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}
}

func shipmentResponseFromReadModel(model queries.GetShipmentQueryResponse) ShipmentResponse {
	events := make([]TrackingEventResponse, len(model.Events))
	for i, event := range model.Events {
		events[i] = TrackingEventResponse{
			ID:          event.ID,
			Status:      event.Status,
			Location:    event.Location,
			Description: event.Description,
			Timestamp:   event.Timestamp,
		}
	}

	return ShipmentResponse{
		ID:                model.ID.String(),
		TrackingNumber:    model.TrackingNumber,
		SenderName:        model.SenderName,
		SenderAddress:     model.SenderAddress,
		RecipientName:     model.RecipientName,
		RecipientAddress:  model.RecipientAddress,
		RecipientPhone:    model.RecipientPhone,
		Status:            model.Status,
		CurrentLocation:   model.CurrentLocation,
		EstimatedDelivery: model.EstimatedDelivery,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
		Events:            events,
	}
}

func summaryResponseFromReadModel(model queries.ListShipmentsQueryResponse) ShipmentSummaryResponse {
	return ShipmentSummaryResponse{
		ID:                model.ID.String(),
		TrackingNumber:    model.TrackingNumber,
		SenderName:        model.SenderName,
		RecipientName:     model.RecipientName,
		Status:            model.Status,
		CurrentLocation:   model.CurrentLocation,
		EstimatedDelivery: model.EstimatedDelivery,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}
