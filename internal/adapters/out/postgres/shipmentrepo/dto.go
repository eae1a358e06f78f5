// Package shipmentrepo provides data transfer objects and mapping functions for
// shipment persistence. This package implements the repository pattern for the
// shipment aggregate, handling the conversion between domain entities and
// database representations.
package shipmentrepo

import (
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The unique index on TrackingNumber enforces tracking number
// uniqueness at the database level; Status, CurrentLocation, and UpdatedAt
// hold the projection of the latest tracking event.
type ShipmentDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingNumber    string    `gorm:"uniqueIndex;not null"`
	SenderName        string    `gorm:"not null"`
	SenderAddress     string    `gorm:"not null"`
	RecipientName     string    `gorm:"not null"`
	RecipientAddress  string    `gorm:"not null"`
	RecipientPhone    string
	Status            string `gorm:"not null;index"`
	CurrentLocation   string
	EstimatedDelivery string
	CreatedAt         time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime:false;index"`
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database
// representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:                aggregate.ID().Bytes(),
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

// toDomain converts a database DTO to a shipment domain aggregate using
// RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := shipment.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		trackingNumber,
		dto.SenderName, dto.SenderAddress,
		dto.RecipientName, dto.RecipientAddress, dto.RecipientPhone,
		shipment.Status(dto.Status),
		dto.CurrentLocation, dto.EstimatedDelivery,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
