// Package shipment contains the Shipment aggregate and its value objects.
//
// A Shipment is the projected current state of one physical parcel: who sent
// it, who receives it, and where it is right now. The status, current
// location, and updated-at fields are a projection of the most recently
// appended tracking event; they are only mutated through ApplyStatus so the
// projection never drifts from the ledger.
//
// The package also owns the public tracking number format ("GL-" followed by
// ten characters from a 35-character alphabet that excludes the letter O) and
// the free-form Status value object.
package shipment
