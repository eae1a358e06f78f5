// Package http exposes the shipment tracking API over Echo. Handlers bind
// JSON, build commands and queries, and translate domain errors into HTTP
// status codes; no business logic lives here.
package http

import (
	"errors"
	"net/http"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler      commands.CreateShipmentCommandHandler
	appendTrackingEventHandler commands.AppendTrackingEventCommandHandler
	signupForAlertsHandler     commands.SignupForAlertsCommandHandler

	// Query handlers
	getShipmentHandler   queries.GetShipmentQueryHandler
	listShipmentsHandler queries.ListShipmentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	appendTrackingEventHandler commands.AppendTrackingEventCommandHandler,
	signupForAlertsHandler commands.SignupForAlertsCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	listShipmentsHandler queries.ListShipmentsQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:      createShipmentHandler,
		appendTrackingEventHandler: appendTrackingEventHandler,
		signupForAlertsHandler:     signupForAlertsHandler,
		getShipmentHandler:         getShipmentHandler,
		listShipmentsHandler:       listShipmentsHandler,
	}
}

// RegisterRoutes attaches all API routes to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments", s.ListShipments)
	api.GET("/shipments/:trackingNumber", s.GetShipment)
	api.POST("/shipments/:id/events", s.AppendTrackingEvent)
	api.POST("/shipments/:id/alerts", s.SignupForAlerts)
}

// CreateShipment handles POST /api/v1/shipments - registers a new shipment.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateShipmentCommand(
		req.SenderName, req.SenderAddress,
		req.RecipientName, req.RecipientAddress, req.RecipientPhone,
		req.EstimatedDelivery,
	)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	aggregate, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, shipmentResponseFromAggregate(aggregate))
}

// GetShipment handles GET /api/v1/shipments/:trackingNumber - returns one
// shipment with its full tracking history.
func (s *Server) GetShipment(ctx echo.Context) error {
	number, err := shipment.TrackingNumberFromString(ctx.Param("trackingNumber"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking number")
	}

	query, err := queries.NewGetShipmentQuery(number)
	if err != nil {
		return badRequest(ctx, "Invalid tracking number")
	}

	result, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentResponseFromReadModel(result))
}

// ListShipments handles GET /api/v1/shipments - returns all shipments,
// newest first.
func (s *Server) ListShipments(ctx echo.Context) error {
	query := queries.NewListShipmentsQuery()

	result, err := s.listShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ShipmentSummaryResponse, len(result))
	for i, model := range result {
		response[i] = summaryResponseFromReadModel(model)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AppendTrackingEvent handles POST /api/v1/shipments/:id/events - records a
// status update and projects it onto the shipment.
func (s *Server) AppendTrackingEvent(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	var req AppendTrackingEventRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAppendTrackingEventCommand(
		shipmentID, shipment.Status(req.Status), req.Location, req.Description,
	)
	if err != nil {
		return badRequest(ctx, "Invalid tracking event: "+err.Error())
	}

	if err = s.appendTrackingEventHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SignupForAlerts handles POST /api/v1/shipments/:id/alerts - registers a
// contact for shipment alerts.
func (s *Server) SignupForAlerts(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	var req SignupForAlertsRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSignupForAlertsCommand(shipmentID, req.Contact)
	if err != nil {
		return badRequest(ctx, "Invalid signup: "+err.Error())
	}

	if err = s.signupForAlertsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps domain errors to HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, shipment.ErrDuplicateTrackingNumber):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
