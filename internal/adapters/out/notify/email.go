package notify

import (
	"gopkg.in/mail.v2"
)

// EmailSender delivers notifications over SMTP.
type EmailSender struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
}

// NewEmailSender creates an SMTP-backed sender.
func NewEmailSender(smtpHost string, smtpPort int, username, password, from string) *EmailSender {
	return &EmailSender{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		username: username,
		password: password,
		from:     from,
	}
}

// Send delivers one plain-text message to the destination address.
func (s *EmailSender) Send(destination, message string) error {
	msg := mail.NewMessage()

	msg.SetHeader("From", s.from)
	msg.SetHeader("To", destination)
	msg.SetHeader("Subject", "Shipment update")

	msg.SetBody("text/plain", message)

	dialer := mail.NewDialer(s.smtpHost, s.smtpPort, s.username, s.password)

	return dialer.DialAndSend(msg)
}
