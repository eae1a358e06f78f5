package commands

import (
	"context"
	"log/slog"
)

// SignupForAlertsCommandHandler records alert signups.
//
// There is no notification_preferences relation yet, so the signup is only
// logged; the operation succeeds so callers can already build against the
// interface.
// TODO: persist signups once a notification_preferences table exists.
type SignupForAlertsCommandHandler struct {
	logger *slog.Logger
}

// NewSignupForAlertsCommandHandler creates a handler for alert signups.
func NewSignupForAlertsCommandHandler(logger *slog.Logger) SignupForAlertsCommandHandler {
	return SignupForAlertsCommandHandler{
		logger: logger.With("component", "signup_for_alerts"),
	}
}

// Handle records the signup in the log and reports success.
func (h SignupForAlertsCommandHandler) Handle(ctx context.Context, cmd SignupForAlertsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "alert signup received",
		"shipment_id", cmd.ShipmentID().String(),
		"contact", cmd.Contact(),
	)

	return nil
}
