package queries_test

import (
	"testing"

	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShipmentQuery_Valid(t *testing.T) {
	number := shipment.GenerateTrackingNumber()

	query, err := queries.NewGetShipmentQuery(number)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, number, query.TrackingNumber())
}

func TestNewGetShipmentQuery_ZeroTrackingNumber(t *testing.T) {
	_, err := queries.NewGetShipmentQuery(shipment.TrackingNumber{})

	require.Error(t, err)
}

func TestGetShipmentQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetShipmentQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetShipmentQueryIsNotConstructed)
}
