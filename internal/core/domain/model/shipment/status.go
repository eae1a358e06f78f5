package shipment

import "shiptrack/internal/pkg/errs"

// Status is the lifecycle tag of a shipment. The value space is deliberately
// open: any non-empty string is accepted, so carriers can introduce statuses
// without a coordinated deploy. The constants below cover the common path.
//
//	pending -> in_transit -> out_for_delivery -> delivered
//
// No transition table is enforced; the ledger records whatever the carrier
// reported, in the order it was reported.
type Status string

const (
	// StatusPending is assigned to every shipment at creation.
	StatusPending Status = "pending"

	// StatusInTransit marks a shipment moving between facilities.
	StatusInTransit Status = "in_transit"

	// StatusOutForDelivery marks a shipment on the final delivery leg.
	StatusOutForDelivery Status = "out_for_delivery"

	// StatusDelivered marks a shipment handed to the recipient.
	StatusDelivered Status = "delivered"
)

// Validate rejects only the empty string. Unknown status values are
// intentionally accepted.
func (s Status) Validate() error {
	if s == "" {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// IsDelivered reports whether the shipment reached its final state.
func (s Status) IsDelivered() bool {
	return s == StatusDelivered
}
