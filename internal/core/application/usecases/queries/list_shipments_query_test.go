package queries_test

import (
	"testing"
	"time"

	"shiptrack/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListShipmentsQuery_Valid(t *testing.T) {
	query := queries.NewListShipmentsQuery()

	require.NoError(t, query.Validate())
}

func TestListShipmentsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListShipmentsQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListShipmentsQueryIsNotConstructed)
}

func TestNewGetStalledShipmentsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetStalledShipmentsQuery(48 * time.Hour)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 48*time.Hour, query.Threshold())
}

func TestNewGetStalledShipmentsQuery_NonPositiveThreshold(t *testing.T) {
	_, err := queries.NewGetStalledShipmentsQuery(0)
	require.Error(t, err)

	_, err = queries.NewGetStalledShipmentsQuery(-time.Hour)
	require.Error(t, err)
}

func TestGetStalledShipmentsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetStalledShipmentsQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetStalledShipmentsQueryIsNotConstructed)
}
