package http

import (
	"net/http"

	"tacoshare/internal/core/application/usecases/commands"
	"tacoshare/internal/core/application/usecases/queries"
	"tacoshare/internal/core/domain/model/membership"
	"tacoshare/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// RequestToJoin handles POST /api/v1/organizations/:orgID/join-requests.
// The acting user files a request for themselves.
func (s *Server) RequestToJoin(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	orgID, err := pathUUID(ctx, "orgID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRequestToJoinCommand(orgID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RequestToJoin.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AcceptJoinRequest handles
// POST /api/v1/organizations/:orgID/join-requests/:userID/accept.
func (s *Server) AcceptJoinRequest(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	orgID, err := pathUUID(ctx, "orgID")
	if err != nil {
		return respondError(ctx, err)
	}
	userID, err := pathUUID(ctx, "userID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAcceptJoinRequestCommand(actor, orgID, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AcceptJoinRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectJoinRequest handles
// DELETE /api/v1/organizations/:orgID/join-requests/:userID.
func (s *Server) RejectJoinRequest(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	orgID, err := pathUUID(ctx, "orgID")
	if err != nil {
		return respondError(ctx, err)
	}
	userID, err := pathUUID(ctx, "userID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRejectJoinRequestCommand(actor, orgID, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RejectJoinRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateMemberRole handles
// PUT /api/v1/organizations/:orgID/members/:userID/role.
func (s *Server) UpdateMemberRole(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	orgID, err := pathUUID(ctx, "orgID")
	if err != nil {
		return respondError(ctx, err)
	}
	userID, err := pathUUID(ctx, "userID")
	if err != nil {
		return respondError(ctx, err)
	}

	var request updateMemberRoleRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewUpdateMemberRoleCommand(actor, orgID, userID, parseRole(request.Role))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateMemberRole.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveMember handles DELETE /api/v1/organizations/:orgID/members/:userID.
func (s *Server) RemoveMember(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	orgID, err := pathUUID(ctx, "orgID")
	if err != nil {
		return respondError(ctx, err)
	}
	userID, err := pathUUID(ctx, "userID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveMemberCommand(actor, orgID, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RemoveMember.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DirectAddMember handles POST /api/v1/organizations/:orgID/members. An admin
// adds a user directly; the status defaults to Active when omitted.
func (s *Server) DirectAddMember(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	orgID, err := pathUUID(ctx, "orgID")
	if err != nil {
		return respondError(ctx, err)
	}

	var request directAddMemberRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	userID, err := kernelUUIDFromBody(request.UserID, "user_id")
	if err != nil {
		return respondError(ctx, err)
	}

	status := parseMemberStatus(request.Status)
	if request.Status == "" {
		status = membership.StatusActive
	}

	cmd, err := commands.NewDirectAddMemberCommand(actor, orgID, userID, parseRole(request.Role), status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DirectAddMember.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetOrganizationMembers handles GET /api/v1/organizations/:orgID/members.
//
// Before reading the roster it runs the admin repair pass for the acting user,
// so an organization that lost its last admin heals on the next visit.
func (s *Server) GetOrganizationMembers(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	orgID, err := pathUUID(ctx, "orgID")
	if err != nil {
		return respondError(ctx, err)
	}

	repairCmd, err := commands.NewRepairAdminCommand(actor, orgID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.handlers.RepairAdmin.Handle(ctx.Request().Context(), repairCmd); err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrganizationMembersQuery(orgID)
	if err != nil {
		return respondError(ctx, err)
	}

	members, err := s.handlers.GetOrganizationMembers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]memberResponse, len(members))
	for i, member := range members {
		response[i] = memberResponse{
			UserID: member.UserID.String(),
			Role:   member.Role,
			Status: member.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPendingJoinRequests handles GET /api/v1/organizations/:orgID/join-requests.
func (s *Server) GetPendingJoinRequests(ctx echo.Context) error {
	orgID, err := pathUUID(ctx, "orgID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetPendingJoinRequestsQuery(orgID)
	if err != nil {
		return respondError(ctx, err)
	}

	pending, err := s.handlers.GetPendingJoinRequests.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]joinRequestResponse, len(pending))
	for i, request := range pending {
		response[i] = joinRequestResponse{UserID: request.UserID.String()}
	}

	return ctx.JSON(http.StatusOK, response)
}
