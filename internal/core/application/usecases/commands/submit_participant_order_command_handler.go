package commands

import (
	"context"
	"errors"

	"tacoshare/internal/core/domain/model/grouporder"
	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/core/domain/services"
	"tacoshare/internal/core/ports"
	"tacoshare/internal/pkg/errs"
)

// SubmitParticipantOrderCommandHandler handles order submission into an open
// cart: validates the composition against a fresh catalog snapshot, prices it,
// and upserts the owner's participant order.
type SubmitParticipantOrderCommandHandler struct {
	uowFactory      CartUoWFactory
	catalogProvider ports.CatalogProvider
	validator       services.CompositionValidator
	pricingEngine   services.PricingEngine
}

// NewSubmitParticipantOrderCommandHandler creates a handler for order submission.
func NewSubmitParticipantOrderCommandHandler(
	uowFactory CartUoWFactory, catalogProvider ports.CatalogProvider,
) SubmitParticipantOrderCommandHandler {
	return SubmitParticipantOrderCommandHandler{
		uowFactory:      uowFactory,
		catalogProvider: catalogProvider,
		validator:       services.NewCompositionValidator(),
		pricingEngine:   services.NewPricingEngine(),
	}
}

// Handle processes the submission.
//
// The catalog snapshot is read before the transaction; a provider failure
// rejects the whole submission rather than serving stale availability. Inside
// the transaction the group order must still be Open and the actor must be the
// owner or the leader. A previous order of the same owner is replaced
// wholesale, never merged.
func (h *SubmitParticipantOrderCommandHandler) Handle(ctx context.Context, cmd SubmitParticipantOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	snapshot, err := h.catalogProvider.GetCatalog(ctx)
	if err != nil {
		return err
	}

	configuration := cmd.Configuration()
	sides := cmd.Sides()

	if configuration != nil {
		if err = h.validator.ValidateConfiguration(*configuration, snapshot); err != nil {
			return err
		}
	}
	if err = h.validator.ValidateSides(sides, snapshot); err != nil {
		return err
	}

	total, err := h.pricingEngine.PriceOrder(configuration, sides, snapshot)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	groupOrder, err := uow.GroupOrderRepository().Get(ctx, cmd.GroupOrderID())
	if err != nil {
		return err
	}
	if !groupOrder.IsOpen() {
		return errs.NewConflictError("group order", "is already locked")
	}
	if err = groupOrder.AuthorizeEdit(cmd.ActorID(), cmd.OwnerID()); err != nil {
		return err
	}

	participantOrderRepo := uow.ParticipantOrderRepository()
	existing, err := participantOrderRepo.GetByOwner(ctx, cmd.GroupOrderID(), cmd.OwnerID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		participantOrder, newErr := grouporder.NewParticipantOrder(
			kernel.NewUUID(), cmd.GroupOrderID(), cmd.OwnerID(), configuration, sides, total)
		if newErr != nil {
			return newErr
		}
		if err = participantOrderRepo.Add(ctx, participantOrder); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err = existing.Replace(configuration, sides, total); err != nil {
			return err
		}
		if err = participantOrderRepo.Update(ctx, existing); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
