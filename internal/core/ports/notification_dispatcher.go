package ports

// NotificationChannel identifies the transport used to reach a contact.
type NotificationChannel string

const (
	// ChannelEmail delivers via SMTP.
	ChannelEmail NotificationChannel = "email"

	// ChannelSMS delivers via an SMS-like gateway (SMS/WhatsApp).
	ChannelSMS NotificationChannel = "sms"
)

// Notification is one outbound message to a contact.
type Notification struct {
	Channel     NotificationChannel
	Destination string
	Message     string
}

// NotificationDispatcher is the fire-and-forget boundary to the notification
// transports. Dispatch must not block the caller, delivery failures are never
// propagated back, and each notification gets at most one delivery attempt.
type NotificationDispatcher interface {
	Dispatch(notification Notification)
}
