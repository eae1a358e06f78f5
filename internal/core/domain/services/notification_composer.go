package services

import (
	"fmt"

	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/core/domain/model/tracking"
	"shiptrack/internal/core/ports"
)

// NotificationComposer is a domain service that turns shipment lifecycle
// moments into outbound notifications for the recipient's phone channel.
//
// It owns the message wording so command handlers stay free of presentation
// concerns. Notifications are only composed for shipments whose recipient
// provided a phone number; callers must check RecipientPhone first.
type NotificationComposer struct{}

// NewNotificationComposer creates a new NotificationComposer instance.
func NewNotificationComposer() NotificationComposer {
	return NotificationComposer{}
}

// CreationMessage builds the notification sent when a shipment is registered.
func (NotificationComposer) CreationMessage(s *shipment.Shipment) ports.Notification {
	return ports.Notification{
		Channel:     ports.ChannelSMS,
		Destination: s.RecipientPhone(),
		Message: fmt.Sprintf(
			"Your shipment %s has been registered and is being processed.",
			s.TrackingNumber(),
		),
	}
}

// StatusUpdateMessage builds the notification sent after a tracking event is
// appended, carrying the tracking number, the new status, and the event
// description.
func (NotificationComposer) StatusUpdateMessage(s *shipment.Shipment, event *tracking.Event) ports.Notification {
	return ports.Notification{
		Channel:     ports.ChannelSMS,
		Destination: s.RecipientPhone(),
		Message: fmt.Sprintf(
			"Shipment %s is now %s. %s",
			s.TrackingNumber(), event.Status(), event.Description(),
		),
	}
}
