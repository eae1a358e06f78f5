package commands_test

import (
	"errors"
	"testing"
	"time"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/core/domain/model/tracking"
	"shiptrack/internal/core/ports"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedShipment(t *testing.T, phone string) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.NewUUID(), shipment.GenerateTrackingNumber(),
		"Acme Corp", "1 Factory Rd",
		"Jordan Smith", "42 Elm St", phone,
		"2026-09-05", time.Now().UTC().Add(-time.Hour),
	)
	require.NoError(t, err)
	return s
}

func TestAppendTrackingEventCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := storedShipment(t, "+15551234567")
	cmd, err := commands.NewAppendTrackingEventCommand(
		stored.ID(), shipment.StatusInTransit, "Memphis, TN", "Departed facility",
	)
	require.NoError(t, err)

	shipRepo := new(MockShipmentRepository)
	eventRepo := new(MockTrackingEventRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipRepo).Once(),
		shipRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("TrackingEventRepository").Return(eventRepo).Once(),
		eventRepo.On("Add", mock.Anything, mock.AnythingOfType("*tracking.Event")).Return(nil).Once(),
		shipRepo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	dispatcher.On("Dispatch", mock.AnythingOfType("ports.Notification")).Once()

	h := commands.NewAppendTrackingEventCommandHandler(factory, dispatcher)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)

	// Projection matches the appended event.
	assert.Equal(t, shipment.StatusInTransit, stored.Status())
	assert.Equal(t, "Memphis, TN", stored.CurrentLocation())

	persistedEvent := eventRepo.Calls[0].Arguments.Get(1).(*tracking.Event)
	assert.Equal(t, shipment.StatusInTransit, persistedEvent.Status())
	assert.Equal(t, "Memphis, TN", persistedEvent.Location())
	assert.Equal(t, "Departed facility", persistedEvent.Description())
	assert.Equal(t, persistedEvent.Timestamp(), stored.UpdatedAt())

	notification := dispatcher.Calls[0].Arguments.Get(0).(ports.Notification)
	assert.Equal(t, "+15551234567", notification.Destination)
	assert.Contains(t, notification.Message, stored.TrackingNumber().String())
	assert.Contains(t, notification.Message, "in_transit")
	assert.Contains(t, notification.Message, "Departed facility")

	shipRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestAppendTrackingEventCommandHandler_Handle_ShipmentNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewAppendTrackingEventCommand(id, shipment.StatusInTransit, "", "")
	require.NoError(t, err)

	shipRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipRepo).Once(),
		shipRepo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("shipment", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)

	h := commands.NewAppendTrackingEventCommandHandler(factory, dispatcher)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything)
	uow.AssertExpectations(t)
}

func TestAppendTrackingEventCommandHandler_Handle_NoPhoneNoNotification(t *testing.T) {
	ctx := t.Context()
	stored := storedShipment(t, "")
	cmd, err := commands.NewAppendTrackingEventCommand(stored.ID(), shipment.StatusDelivered, "Portland, OR", "Delivered")
	require.NoError(t, err)

	shipRepo := new(MockShipmentRepository)
	eventRepo := new(MockTrackingEventRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipRepo).Once()
	shipRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()
	uow.On("TrackingEventRepository").Return(eventRepo).Once()
	eventRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	shipRepo.On("Update", mock.Anything, stored).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)

	h := commands.NewAppendTrackingEventCommandHandler(factory, dispatcher)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.StatusDelivered, stored.Status())
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything)
}

func TestAppendTrackingEventCommandHandler_Handle_UpdateErrorRollsBack(t *testing.T) {
	ctx := t.Context()
	stored := storedShipment(t, "+15551234567")
	cmd, err := commands.NewAppendTrackingEventCommand(stored.ID(), shipment.StatusInTransit, "Memphis, TN", "")
	require.NoError(t, err)

	shipRepo := new(MockShipmentRepository)
	eventRepo := new(MockTrackingEventRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipRepo).Once(),
		shipRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("TrackingEventRepository").Return(eventRepo).Once(),
		eventRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once(),
		shipRepo.On("Update", mock.Anything, stored).Return(errors.New("update failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)

	h := commands.NewAppendTrackingEventCommandHandler(factory, dispatcher)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything)
	uow.AssertExpectations(t)
}

func TestAppendTrackingEventCommandHandler_Handle_CommitErrorNoNotification(t *testing.T) {
	ctx := t.Context()
	stored := storedShipment(t, "+15551234567")
	cmd, err := commands.NewAppendTrackingEventCommand(stored.ID(), shipment.StatusInTransit, "Memphis, TN", "")
	require.NoError(t, err)

	shipRepo := new(MockShipmentRepository)
	eventRepo := new(MockTrackingEventRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipRepo).Once()
	shipRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()
	uow.On("TrackingEventRepository").Return(eventRepo).Once()
	eventRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	shipRepo.On("Update", mock.Anything, stored).Return(nil).Once()
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)

	h := commands.NewAppendTrackingEventCommandHandler(factory, dispatcher)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything)
}

func TestAppendTrackingEventCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AppendTrackingEventCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	dispatcher := new(MockDispatcher)

	h := commands.NewAppendTrackingEventCommandHandler(factory, dispatcher)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
}
