// Package http exposes the application use cases over a JSON REST API.
// Route handlers translate requests into commands and queries, and map domain
// error kinds onto HTTP status codes.
package http

import (
	"net/http"
	"time"

	"tacoshare/internal/core/application/usecases/commands"
	"tacoshare/internal/core/application/usecases/queries"
	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/core/ports"
	"tacoshare/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// actorHeader identifies the acting member. Authentication is handled
// upstream; the gateway forwards the verified user identifier in this header.
const actorHeader = "X-User-ID"

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateGroupOrder       commands.CreateGroupOrderCommandHandler
	SubmitParticipantOrder commands.SubmitParticipantOrderCommandHandler
	DeleteParticipantOrder commands.DeleteParticipantOrderCommandHandler
	LockGroupOrder         commands.LockGroupOrderCommandHandler

	RequestToJoin     commands.RequestToJoinCommandHandler
	AcceptJoinRequest commands.AcceptJoinRequestCommandHandler
	RejectJoinRequest commands.RejectJoinRequestCommandHandler
	UpdateMemberRole  commands.UpdateMemberRoleCommandHandler
	RemoveMember      commands.RemoveMemberCommandHandler
	DirectAddMember   commands.DirectAddMemberCommandHandler
	RepairAdmin       commands.RepairAdminCommandHandler

	GetGroupOrder          queries.GetGroupOrderQueryHandler
	GetOrganizationMembers queries.GetOrganizationMembersQueryHandler
	GetPendingJoinRequests queries.GetPendingJoinRequestsQueryHandler
}

// Server coordinates between HTTP routes and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates an HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")

	api.POST("/group-orders", s.CreateGroupOrder)
	api.GET("/group-orders/:groupOrderID", s.GetGroupOrder)
	api.POST("/group-orders/:groupOrderID/lock", s.LockGroupOrder)
	api.PUT("/group-orders/:groupOrderID/participants/:ownerID/order", s.SubmitParticipantOrder)
	api.DELETE("/group-orders/:groupOrderID/orders/:participantOrderID", s.DeleteParticipantOrder)

	api.POST("/organizations/:orgID/join-requests", s.RequestToJoin)
	api.GET("/organizations/:orgID/join-requests", s.GetPendingJoinRequests)
	api.POST("/organizations/:orgID/join-requests/:userID/accept", s.AcceptJoinRequest)
	api.DELETE("/organizations/:orgID/join-requests/:userID", s.RejectJoinRequest)

	api.GET("/organizations/:orgID/members", s.GetOrganizationMembers)
	api.POST("/organizations/:orgID/members", s.DirectAddMember)
	api.PUT("/organizations/:orgID/members/:userID/role", s.UpdateMemberRole)
	api.DELETE("/organizations/:orgID/members/:userID", s.RemoveMember)
}

func actorID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(actorHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(actorHeader + " header")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(actorHeader+" header", err)
	}
	return id, nil
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func kernelUUIDFromBody(raw string, name string) (kernel.UUID, error) {
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(name)
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// CreateGroupOrder handles POST /api/v1/group-orders. The acting member
// becomes the cart's leader; the new identifier is returned in the body.
func (s *Server) CreateGroupOrder(ctx echo.Context) error {
	leaderID, err := actorID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request createGroupOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	window, err := kernel.NewTimeWindow(request.WindowStart, request.WindowEnd)
	if err != nil {
		return respondError(ctx, err)
	}

	groupOrderID := kernel.NewUUID()
	cmd, err := commands.NewCreateGroupOrderCommand(groupOrderID, leaderID, request.Name, window)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateGroupOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createGroupOrderResponse{ID: groupOrderID.String()})
}

// GetGroupOrder handles GET /api/v1/group-orders/:groupOrderID.
func (s *Server) GetGroupOrder(ctx echo.Context) error {
	groupOrderID, err := pathUUID(ctx, "groupOrderID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetGroupOrderQuery(groupOrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.GetGroupOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toGroupOrderResponse(result))
}

// SubmitParticipantOrder handles
// PUT /api/v1/group-orders/:groupOrderID/participants/:ownerID/order.
// Submitting again replaces the owner's order wholesale.
func (s *Server) SubmitParticipantOrder(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	groupOrderID, err := pathUUID(ctx, "groupOrderID")
	if err != nil {
		return respondError(ctx, err)
	}
	ownerID, err := pathUUID(ctx, "ownerID")
	if err != nil {
		return respondError(ctx, err)
	}

	var request submitOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	configuration, err := toConfiguration(request.Taco)
	if err != nil {
		return respondError(ctx, err)
	}
	sides, err := toSideSelections(request.Sides)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSubmitParticipantOrderCommand(actor, groupOrderID, ownerID, configuration, sides)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.SubmitParticipantOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteParticipantOrder handles
// DELETE /api/v1/group-orders/:groupOrderID/orders/:participantOrderID.
func (s *Server) DeleteParticipantOrder(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	groupOrderID, err := pathUUID(ctx, "groupOrderID")
	if err != nil {
		return respondError(ctx, err)
	}
	participantOrderID, err := pathUUID(ctx, "participantOrderID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteParticipantOrderCommand(actor, groupOrderID, participantOrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteParticipantOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// LockGroupOrder handles POST /api/v1/group-orders/:groupOrderID/lock. A
// successful lock does not guarantee the storefront has confirmed yet; the
// order may stay pending delivery until the retry job gets a receipt.
func (s *Server) LockGroupOrder(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	groupOrderID, err := pathUUID(ctx, "groupOrderID")
	if err != nil {
		return respondError(ctx, err)
	}

	var request lockGroupOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	details := ports.Details{
		CustomerName:  request.CustomerName,
		CustomerPhone: request.CustomerPhone,
		Mode:          ports.DeliveryMode(request.Mode),
		Address:       request.Address,
	}
	if request.RequestedTime != "" {
		requestedTime, parseErr := time.Parse(time.RFC3339, request.RequestedTime)
		if parseErr != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("requested_time", parseErr))
		}
		details.RequestedTime = requestedTime
	}

	cmd, err := commands.NewLockGroupOrderCommand(actor, groupOrderID, details)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.LockGroupOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
