package http

import (
	"time"

	"tacoshare/internal/core/application/usecases/queries"
	"tacoshare/internal/core/domain/model/catalog"
	"tacoshare/internal/core/domain/model/membership"
	"tacoshare/internal/core/domain/model/taco"
)

// Request bodies. Quantities left at zero default to one; an explicit zero on
// a protein entry removes it from the selection, which is why the field is a
// pointer.

type createGroupOrderRequest struct {
	Name        string    `json:"name"`
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
}

type createGroupOrderResponse struct {
	ID string `json:"id"`
}

type proteinRequest struct {
	ID       string `json:"id"`
	Quantity *int   `json:"quantity,omitempty"`
}

type tacoRequest struct {
	Size      string           `json:"size"`
	Proteins  []proteinRequest `json:"proteins"`
	Sauces    []string         `json:"sauces"`
	Garnishes []string         `json:"garnishes"`
	Note      string           `json:"note"`
	Quantity  int              `json:"quantity"`
}

// sideRequest accepts the free-accompaniment choice in both client shapes:
// legacy clients send a single id, newer clients a list.
type sideRequest struct {
	ID                 string   `json:"id"`
	Category           string   `json:"category"`
	Quantity           int      `json:"quantity"`
	FreeAccompaniment  string   `json:"free_accompaniment,omitempty"`
	FreeAccompaniments []string `json:"free_accompaniments,omitempty"`
}

type submitOrderRequest struct {
	Taco  *tacoRequest  `json:"taco,omitempty"`
	Sides []sideRequest `json:"sides,omitempty"`
}

type lockGroupOrderRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Mode          string `json:"mode"`
	Address       string `json:"address"`
	RequestedTime string `json:"requested_time"`
}

type directAddMemberRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type updateMemberRoleRequest struct {
	Role string `json:"role"`
}

// Response bodies for the read models.

type groupOrderLineResponse struct {
	ID         string `json:"id"`
	OwnerID    string `json:"owner_id"`
	TotalCents int64  `json:"total_cents"`
}

type groupOrderResponse struct {
	ID              string                   `json:"id"`
	LeaderID        string                   `json:"leader_id"`
	Name            string                   `json:"name"`
	Status          string                   `json:"status"`
	PendingDelivery bool                     `json:"pending_delivery"`
	TotalCents      int64                    `json:"total_cents"`
	Orders          []groupOrderLineResponse `json:"orders"`
}

type memberResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type joinRequestResponse struct {
	UserID string `json:"user_id"`
}

func toGroupOrderResponse(result queries.GetGroupOrderQueryResponse) groupOrderResponse {
	lines := make([]groupOrderLineResponse, len(result.Orders))
	for i, line := range result.Orders {
		lines[i] = groupOrderLineResponse{
			ID:         line.ID.String(),
			OwnerID:    line.OwnerID.String(),
			TotalCents: line.TotalCents,
		}
	}

	return groupOrderResponse{
		ID:              result.ID.String(),
		LeaderID:        result.LeaderID.String(),
		Name:            result.Name,
		Status:          result.Status,
		PendingDelivery: result.PendingDelivery,
		TotalCents:      result.TotalCents,
		Orders:          lines,
	}
}

func toConfiguration(request *tacoRequest) (*taco.Configuration, error) {
	if request == nil {
		return nil, nil
	}

	proteins := make([]taco.ComponentSelectionInput, len(request.Proteins))
	for i, protein := range request.Proteins {
		input := taco.ComponentSelectionInput{ID: protein.ID}
		if protein.Quantity != nil {
			input.Quantity = *protein.Quantity
			input.QuantitySet = true
		}
		proteins[i] = input
	}

	quantity := request.Quantity
	if quantity == 0 {
		quantity = 1
	}

	configuration, err := taco.NewConfiguration(
		catalog.Size(request.Size),
		proteins,
		request.Sauces,
		request.Garnishes,
		request.Note,
		quantity,
	)
	if err != nil {
		return nil, err
	}
	return &configuration, nil
}

func toSideSelections(requests []sideRequest) ([]taco.SideSelection, error) {
	if len(requests) == 0 {
		return nil, nil
	}

	sides := make([]taco.SideSelection, len(requests))
	for i, request := range requests {
		quantity := request.Quantity
		if quantity == 0 {
			quantity = 1
		}

		slots := taco.NormalizeFreeAccompaniments(taco.FreeAccompanimentInput{
			Single: request.FreeAccompaniment,
			Many:   request.FreeAccompaniments,
		})

		side, err := taco.NewSideSelection(
			request.ID, catalog.Category(request.Category), quantity, slots)
		if err != nil {
			return nil, err
		}
		sides[i] = side
	}
	return sides, nil
}

// parseRole passes unrecognized names through as the unknown role; the command
// constructors reject it with a validation error.
func parseRole(name string) membership.Role {
	switch name {
	case membership.RoleMember.String():
		return membership.RoleMember
	case membership.RoleAdmin.String():
		return membership.RoleAdmin
	default:
		return membership.RoleUnknown
	}
}

func parseMemberStatus(name string) membership.MemberStatus {
	switch name {
	case membership.StatusPending.String():
		return membership.StatusPending
	case membership.StatusActive.String():
		return membership.StatusActive
	default:
		return membership.StatusUnknown
	}
}
