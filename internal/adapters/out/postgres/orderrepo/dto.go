// Package orderrepo persists order aggregates with their lines and cell placements.
package orderrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO maps the orders table. Status is stored by name so the CHECK constraint and
// ad-hoc SQL stay readable.
type OrderDTO struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Status               string         `gorm:"type:varchar(16);not null"`
	CreatedAt            time.Time      `gorm:"type:timestamptz;not null"`
	WorkerID             *uuid.UUID     `gorm:"type:uuid"`
	RecommendedPackaging *string        `gorm:"type:varchar(32)"`
	SelectedPackaging    *string        `gorm:"type:varchar(32)"`
	TotalPackages        *int           `gorm:"type:integer"`
	Lines                []LineDTO      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Placements           []PlacementDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO maps order_lines.
type LineDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemID        uuid.UUID `gorm:"type:uuid;not null"`
	Quantity      int       `gorm:"not null"`
	PackageNumber *int
}

func (LineDTO) TableName() string {
	return "order_lines"
}

// PlacementDTO maps cell_placements. Rows are append-only.
type PlacementDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CellID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemID   uuid.UUID `gorm:"type:uuid;not null"`
	Quantity int       `gorm:"not null"`
}

func (PlacementDTO) TableName() string {
	return "cell_placements"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	var workerID *uuid.UUID
	if id := o.Worker(); id != nil {
		raw := id.Bytes()
		workerID = &raw
	}

	lines := make([]LineDTO, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, LineDTO{
			ID:            l.ID().Bytes(),
			OrderID:       orderID,
			ItemID:        l.ItemID().Bytes(),
			Quantity:      l.Quantity(),
			PackageNumber: l.PackageNumber(),
		})
	}

	placements := make([]PlacementDTO, 0, len(o.Placements()))
	for _, p := range o.Placements() {
		placements = append(placements, PlacementDTO{
			ID:       p.ID().Bytes(),
			OrderID:  orderID,
			CellID:   p.CellID().Bytes(),
			ItemID:   p.ItemID().Bytes(),
			Quantity: p.Quantity(),
		})
	}

	return OrderDTO{
		ID:                   orderID,
		Status:               o.Status().String(),
		CreatedAt:            o.CreatedAt(),
		WorkerID:             workerID,
		RecommendedPackaging: o.RecommendedPackaging(),
		SelectedPackaging:    o.SelectedPackaging(),
		TotalPackages:        o.TotalPackages(),
		Lines:                lines,
		Placements:           placements,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var workerID *kernel.UUID
	if dto.WorkerID != nil {
		wID, workerErr := kernel.UUIDFromBytes((*dto.WorkerID)[:])
		if workerErr != nil {
			return nil, workerErr
		}
		workerID = &wID
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		l, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, l)
	}

	placements := make([]*order.Placement, 0, len(dto.Placements))
	for _, placementDTO := range dto.Placements {
		p, placementErr := placementToDomain(placementDTO)
		if placementErr != nil {
			return nil, placementErr
		}
		placements = append(placements, p)
	}

	return order.RestoreOrder(
		id,
		dto.CreatedAt,
		status,
		workerID,
		dto.RecommendedPackaging,
		dto.SelectedPackaging,
		dto.TotalPackages,
		lines,
		placements,
	)
}

func lineToDomain(dto LineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreLine(id, itemID, dto.Quantity, dto.PackageNumber)
}

func placementToDomain(dto PlacementDTO) (*order.Placement, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	cellID, err := kernel.UUIDFromBytes(dto.CellID[:])
	if err != nil {
		return nil, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}

	return order.RestorePlacement(id, cellID, itemID, dto.Quantity)
}

func idsToDomain(raw []uuid.UUID) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := kernel.UUIDFromBytes(r[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
