// Package tracking contains the TrackingEvent entity: one immutable entry in
// a shipment's append-only status ledger.
//
// Events are created exactly once, at shipment creation or on a status
// update, and are never edited or deleted afterwards. The sequence of events
// for a shipment, ordered by timestamp, is the authoritative audit trail;
// the shipment's projected state is derived from its latest entry.
package tracking
