// Package participantorderrepo provides data transfer objects and mapping
// functions for participant order persistence.
package participantorderrepo

import (
	"encoding/json"
	"time"

	"tacoshare/internal/core/domain/model/catalog"
	"tacoshare/internal/core/domain/model/grouporder"
	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/core/domain/model/taco"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ParticipantOrderDTO represents the database structure for persisting
// participant order aggregates. An empty size means the order has no taco
// configuration and consists of sides only. Protein selections and side lines
// are stored as JSONB; sauces and garnishes as text arrays.
type ParticipantOrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	GroupOrderID uuid.UUID `gorm:"type:uuid;index"`
	OwnerID      uuid.UUID `gorm:"type:uuid;index"`
	Size         string
	Proteins     []byte         `gorm:"type:jsonb"`
	Sauces       pq.StringArray `gorm:"type:text[]"`
	Garnishes    pq.StringArray `gorm:"type:text[]"`
	Note         string
	Quantity     int
	Sides        []byte `gorm:"type:jsonb"`
	TotalCents   int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for participant order entities.
func (ParticipantOrderDTO) TableName() string {
	return "participant_orders"
}

type proteinJSON struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type sideJSON struct {
	ID                 string   `json:"id"`
	Category           string   `json:"category"`
	Quantity           int      `json:"quantity"`
	FreeAccompaniments []string `json:"free_accompaniments,omitempty"`
}

// fromDomain converts a participant order aggregate to its database
// representation.
func fromDomain(participantOrder *grouporder.ParticipantOrder) (ParticipantOrderDTO, error) {
	dto := ParticipantOrderDTO{
		ID:           participantOrder.ID().Bytes(),
		GroupOrderID: participantOrder.GroupOrderID().Bytes(),
		OwnerID:      participantOrder.OwnerID().Bytes(),
		TotalCents:   participantOrder.Total().Cents(),
	}

	if cfg := participantOrder.Configuration(); cfg != nil {
		proteins := make([]proteinJSON, 0, len(cfg.Proteins()))
		for _, selection := range cfg.Proteins() {
			proteins = append(proteins, proteinJSON{ID: selection.ID(), Quantity: selection.Quantity()})
		}
		raw, err := json.Marshal(proteins)
		if err != nil {
			return ParticipantOrderDTO{}, err
		}

		dto.Size = string(cfg.Size())
		dto.Proteins = raw
		dto.Sauces = append(pq.StringArray(nil), cfg.Sauces()...)
		dto.Garnishes = append(pq.StringArray(nil), cfg.Garnishes()...)
		dto.Note = cfg.Note()
		dto.Quantity = cfg.Quantity()
	}

	sides := make([]sideJSON, 0, len(participantOrder.Sides()))
	for _, side := range participantOrder.Sides() {
		sides = append(sides, sideJSON{
			ID:                 side.ID(),
			Category:           string(side.Category()),
			Quantity:           side.Quantity(),
			FreeAccompaniments: side.FreeAccompaniments(),
		})
	}
	raw, err := json.Marshal(sides)
	if err != nil {
		return ParticipantOrderDTO{}, err
	}
	dto.Sides = raw

	return dto, nil
}

// toDomain converts a database DTO to a participant order aggregate using
// RestoreParticipantOrder.
func toDomain(dto ParticipantOrderDTO) (*grouporder.ParticipantOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	groupOrderID, err := kernel.UUIDFromBytes(dto.GroupOrderID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	var configuration *taco.Configuration
	if dto.Size != "" {
		var proteins []proteinJSON
		if len(dto.Proteins) > 0 {
			if err = json.Unmarshal(dto.Proteins, &proteins); err != nil {
				return nil, err
			}
		}

		inputs := make([]taco.ComponentSelectionInput, 0, len(proteins))
		for _, p := range proteins {
			inputs = append(inputs, taco.ComponentSelectionInput{ID: p.ID, Quantity: p.Quantity})
		}

		cfg, cfgErr := taco.NewConfiguration(
			catalog.Size(dto.Size), inputs, dto.Sauces, dto.Garnishes, dto.Note, dto.Quantity)
		if cfgErr != nil {
			return nil, cfgErr
		}
		configuration = &cfg
	}

	var sideLines []sideJSON
	if len(dto.Sides) > 0 {
		if err = json.Unmarshal(dto.Sides, &sideLines); err != nil {
			return nil, err
		}
	}

	sides := make([]taco.SideSelection, 0, len(sideLines))
	for _, line := range sideLines {
		side, sideErr := taco.NewSideSelection(
			line.ID, catalog.Category(line.Category), line.Quantity, line.FreeAccompaniments)
		if sideErr != nil {
			return nil, sideErr
		}
		sides = append(sides, side)
	}

	total, err := kernel.NewPriceFromCents(dto.TotalCents)
	if err != nil {
		return nil, err
	}

	return grouporder.RestoreParticipantOrder(id, groupOrderID, ownerID, configuration, sides, total)
}
