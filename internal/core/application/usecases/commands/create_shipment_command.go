package commands

import (
	"errors"

	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to register a new shipment.
// Sender and recipient name and address are required; the recipient phone is
// optional and, when present, opts the recipient into notifications. The
// estimated delivery is free text and may be empty.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	senderName        string
	senderAddress     string
	recipientName     string
	recipientAddress  string
	recipientPhone    string
	estimatedDelivery string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Validates that the four identity fields are non-empty.
func NewCreateShipmentCommand(
	senderName, senderAddress string,
	recipientName, recipientAddress, recipientPhone string,
	estimatedDelivery string,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		recipientPhone:    recipientPhone,
		estimatedDelivery: estimatedDelivery,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSender(senderName, senderAddress),
		cmd.setRecipient(recipientName, recipientAddress),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// SenderName returns the sender's name.
func (c CreateShipmentCommand) SenderName() string {
	return c.senderName
}

// SenderAddress returns the sender's address.
func (c CreateShipmentCommand) SenderAddress() string {
	return c.senderAddress
}

// RecipientName returns the recipient's name.
func (c CreateShipmentCommand) RecipientName() string {
	return c.recipientName
}

// RecipientAddress returns the recipient's address.
func (c CreateShipmentCommand) RecipientAddress() string {
	return c.recipientAddress
}

// RecipientPhone returns the recipient's phone number, possibly empty.
func (c CreateShipmentCommand) RecipientPhone() string {
	return c.recipientPhone
}

// EstimatedDelivery returns the free-text delivery estimate, possibly empty.
func (c CreateShipmentCommand) EstimatedDelivery() string {
	return c.estimatedDelivery
}

func (c *CreateShipmentCommand) setSender(name, address string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("senderName")
	}
	if address == "" {
		return errs.NewValueIsRequiredError("senderAddress")
	}

	c.senderName = name
	c.senderAddress = address
	return nil
}

func (c *CreateShipmentCommand) setRecipient(name, address string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("recipientName")
	}
	if address == "" {
		return errs.NewValueIsRequiredError("recipientAddress")
	}

	c.recipientName = name
	c.recipientAddress = address
	return nil
}
