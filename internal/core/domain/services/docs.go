// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the shipment tracking system.
// It implements logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - NotificationComposer: builds outbound recipient notifications from a
//     shipment and its ledger events
package services
