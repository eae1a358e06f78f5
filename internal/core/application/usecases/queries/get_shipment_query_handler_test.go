package queries_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"shiptrack/internal/adapters/out/postgres/shipmentrepo"
	"shiptrack/internal/adapters/out/postgres/trackingrepo"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/core/domain/model/tracking"
	"shiptrack/internal/pkg/errs"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker satisfies the repositories' tracker dependency when
// seeding query tests outside a unit of work.
type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(kernel.UUID, any) {}

type GetShipmentQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetShipmentQueryHandler
	shipmentRepo *shipmentrepo.GormShipmentRepository
	eventRepo    *trackingrepo.GormTrackingEventRepository
}

func (suite *GetShipmentQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	sqlDB, err := sql.Open("postgres", dsn)
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &trackingrepo.TrackingEventDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetShipmentQueryHandler(db)
	suite.shipmentRepo = shipmentrepo.NewGormShipmentRepository(db, mockAggregateTracker{})
	suite.eventRepo = trackingrepo.NewGormTrackingEventRepository(db)
}

func (suite *GetShipmentQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetShipmentQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments, tracking_updates").Error)
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_ExistingShipment_ReturnsFullHistory() {
	ctx := context.Background()
	aggregate := suite.seedShipment("+15551234567")
	base := aggregate.CreatedAt()

	suite.seedEvent(aggregate.ID(), shipment.StatusPending, "", "Shipment order received and processing.", base)
	suite.seedEvent(aggregate.ID(), shipment.StatusInTransit, "Memphis, TN", "Departed facility", base.Add(time.Hour))
	suite.seedEvent(aggregate.ID(), shipment.StatusDelivered, "Portland, OR", "Delivered", base.Add(2*time.Hour))

	query, err := queries.NewGetShipmentQuery(aggregate.TrackingNumber())
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), resp.ID)
	suite.Equal(aggregate.TrackingNumber().String(), resp.TrackingNumber)
	suite.Equal("Acme Corp", resp.SenderName)
	suite.Equal("Jordan Smith", resp.RecipientName)
	suite.Equal("+15551234567", resp.RecipientPhone)

	suite.Require().Len(resp.Events, 3)
	suite.Equal("delivered", resp.Events[0].Status)
	suite.Equal("in_transit", resp.Events[1].Status)
	suite.Equal("pending", resp.Events[2].Status)
	suite.Equal("Portland, OR", resp.Events[0].Location)
	suite.Equal("Shipment order received and processing.", resp.Events[2].Description)
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_SameTimestampEvents_LatestAppendedFirst() {
	ctx := context.Background()
	aggregate := suite.seedShipment("")
	at := aggregate.CreatedAt().Add(time.Hour)

	suite.seedEvent(aggregate.ID(), shipment.StatusInTransit, "Memphis, TN", "", at)
	suite.seedEvent(aggregate.ID(), shipment.StatusOutForDelivery, "Portland, OR", "", at)

	query, err := queries.NewGetShipmentQuery(aggregate.TrackingNumber())
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Events, 2)
	suite.Equal("out_for_delivery", resp.Events[0].Status)
	suite.Greater(resp.Events[0].ID, resp.Events[1].ID)
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_NoEvents_ReturnsEmptyHistory() {
	ctx := context.Background()
	aggregate := suite.seedShipment("")

	query, err := queries.NewGetShipmentQuery(aggregate.TrackingNumber())
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.NotNil(resp.Events)
	suite.Empty(resp.Events)
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_UnknownTrackingNumber_ReturnsNotFoundError() {
	ctx := context.Background()

	query, err := queries.NewGetShipmentQuery(shipment.GenerateTrackingNumber())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	ctx := context.Background()

	_, err := suite.handler.Handle(ctx, queries.GetShipmentQuery{})

	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrGetShipmentQueryIsNotConstructed)
}

func (suite *GetShipmentQueryHandlerTestSuite) seedShipment(phone string) *shipment.Shipment {
	aggregate, err := shipment.NewShipment(
		kernel.NewUUID(), shipment.GenerateTrackingNumber(),
		"Acme Corp", "1 Factory Rd",
		"Jordan Smith", "42 Elm St", phone,
		"2026-09-05", time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.shipmentRepo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *GetShipmentQueryHandlerTestSuite) seedEvent(
	shipmentID kernel.UUID,
	status shipment.Status,
	location, description string,
	at time.Time,
) {
	event, err := tracking.NewEvent(shipmentID, status, location, description, at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.eventRepo.Add(context.Background(), event))
}

func TestGetShipmentQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetShipmentQueryHandlerTestSuite))
}
