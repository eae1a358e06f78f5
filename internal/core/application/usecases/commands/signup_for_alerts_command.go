package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrSignupForAlertsCommandIsNotConstructed = errors.New(
	"SignupForAlertsCommand must be created via NewSignupForAlertsCommand constructor",
)

// SignupForAlertsCommand represents a recipient's request to receive alerts
// for a shipment at the given contact (phone number or email address).
type SignupForAlertsCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	contact    string

	guard guard.ConstructorGuard
}

// NewSignupForAlertsCommand creates a command to register an alert signup.
func NewSignupForAlertsCommand(shipmentID kernel.UUID, contact string) (SignupForAlertsCommand, error) {
	cmd := SignupForAlertsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setContact(contact),
	); err != nil {
		return SignupForAlertsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SignupForAlertsCommand) Validate() error {
	return c.guard.Validate(ErrSignupForAlertsCommandIsNotConstructed)
}

// ShipmentID returns the shipment the signup refers to.
func (c SignupForAlertsCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Contact returns the contact to be alerted.
func (c SignupForAlertsCommand) Contact() string {
	return c.contact
}

func (c *SignupForAlertsCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *SignupForAlertsCommand) setContact(contact string) error {
	if contact == "" {
		return errs.NewValueIsRequiredError("contact")
	}

	c.contact = contact
	return nil
}
