package grouporder

import (
	"sort"
)

// Snapshot is the cart frozen at lock time: every participant order flattened
// to plain values, plus the summed total. It is persisted alongside the group
// order and resubmitted verbatim on every delivery retry, so its construction
// is deterministic: lines are ordered by participant order id, and amounts are
// integer cents.
//
// Fields are exported with JSON tags because the snapshot crosses two
// boundaries unchanged: the database column and the gateway payload.
type Snapshot struct {
	GroupOrderID string           `json:"group_order_id"`
	Customer     SnapshotCustomer `json:"customer"`
	Lines        []SnapshotLine   `json:"lines"`
	TotalCents   int64            `json:"total_cents"`
}

// SnapshotCustomer is the handover information the leader provides at lock
// time. It is frozen with the cart so every retry submits the same contact
// and delivery choice.
type SnapshotCustomer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	// Mode is "pickup" or "delivery".
	Mode string `json:"mode"`
	// Address is set for delivery mode only.
	Address string `json:"address,omitempty"`
	// RequestedTime is the desired handover time in RFC 3339.
	RequestedTime string `json:"requested_time,omitempty"`
}

// SnapshotLine is one participant's contribution within a snapshot.
type SnapshotLine struct {
	ParticipantOrderID string         `json:"participant_order_id"`
	OwnerID            string         `json:"owner_id"`
	Item               *SnapshotItem  `json:"item,omitempty"`
	Sides              []SnapshotSide `json:"sides,omitempty"`
	TotalCents         int64          `json:"total_cents"`
}

// SnapshotItem is a flattened composed item.
type SnapshotItem struct {
	Size      string              `json:"size"`
	Proteins  []SnapshotComponent `json:"proteins"`
	Sauces    []string            `json:"sauces"`
	Garnishes []string            `json:"garnishes,omitempty"`
	Note      string              `json:"note,omitempty"`
	Quantity  int                 `json:"quantity"`
}

// SnapshotComponent is one protein selection with its portion count.
type SnapshotComponent struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// SnapshotSide is one flattened side line.
type SnapshotSide struct {
	ID                 string   `json:"id"`
	Category           string   `json:"category"`
	Quantity           int      `json:"quantity"`
	FreeAccompaniments []string `json:"free_accompaniments,omitempty"`
}

// BuildSnapshot flattens the participant orders of a group order. Every order
// must already be validated and priced. The same inputs always produce the
// same snapshot.
func BuildSnapshot(groupOrder *GroupOrder, participantOrders []*ParticipantOrder) (Snapshot, error) {
	if err := groupOrder.Validate(); err != nil {
		return Snapshot{}, err
	}

	lines := make([]SnapshotLine, 0, len(participantOrders))
	var totalCents int64
	for _, participantOrder := range participantOrders {
		if err := participantOrder.Validate(); err != nil {
			return Snapshot{}, err
		}
		line := snapshotLine(participantOrder)
		totalCents += line.TotalCents
		lines = append(lines, line)
	}

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].ParticipantOrderID < lines[j].ParticipantOrderID
	})

	return Snapshot{
		GroupOrderID: groupOrder.ID().String(),
		Lines:        lines,
		TotalCents:   totalCents,
	}, nil
}

func snapshotLine(participantOrder *ParticipantOrder) SnapshotLine {
	line := SnapshotLine{
		ParticipantOrderID: participantOrder.ID().String(),
		OwnerID:            participantOrder.OwnerID().String(),
		TotalCents:         participantOrder.Total().Cents(),
	}

	if cfg := participantOrder.Configuration(); cfg != nil {
		item := SnapshotItem{
			Size:      cfg.Size().String(),
			Sauces:    cfg.Sauces(),
			Garnishes: cfg.Garnishes(),
			Note:      cfg.Note(),
			Quantity:  cfg.Quantity(),
		}
		for _, protein := range cfg.Proteins() {
			item.Proteins = append(item.Proteins, SnapshotComponent{
				ID:       protein.ID(),
				Quantity: protein.Quantity(),
			})
		}
		line.Item = &item
	}

	for _, side := range participantOrder.Sides() {
		line.Sides = append(line.Sides, SnapshotSide{
			ID:                 side.ID(),
			Category:           string(side.Category()),
			Quantity:           side.Quantity(),
			FreeAccompaniments: side.FreeAccompaniments(),
		})
	}

	return line
}
