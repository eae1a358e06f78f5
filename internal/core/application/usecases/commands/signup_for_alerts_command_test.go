package commands_test

import (
	"bytes"
	"log/slog"
	"testing"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSignupForAlertsCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewSignupForAlertsCommand(id, "jordan@example.com")

	require.NoError(t, err)
	assert.Equal(t, id, cmd.ShipmentID())
	assert.Equal(t, "jordan@example.com", cmd.Contact())
	assert.NoError(t, cmd.Validate())
}

func TestNewSignupForAlertsCommand_EmptyContact(t *testing.T) {
	_, err := commands.NewSignupForAlertsCommand(kernel.NewUUID(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewSignupForAlertsCommand_InvalidShipmentID(t *testing.T) {
	_, err := commands.NewSignupForAlertsCommand(kernel.UUID{}, "jordan@example.com")

	require.Error(t, err)
}

func TestSignupForAlertsCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.SignupForAlertsCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSignupForAlertsCommandIsNotConstructed)
}

func TestSignupForAlertsCommandHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	cmd, err := commands.NewSignupForAlertsCommand(kernel.NewUUID(), "+15551234567")
	require.NoError(t, err)

	h := commands.NewSignupForAlertsCommandHandler(logger)
	err = h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "alert signup received")
	assert.Contains(t, buf.String(), "+15551234567")
}

func TestSignupForAlertsCommandHandler_Handle_ValidationError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	h := commands.NewSignupForAlertsCommandHandler(logger)

	err := h.Handle(t.Context(), commands.SignupForAlertsCommand{})

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSignupForAlertsCommandIsNotConstructed)
}
