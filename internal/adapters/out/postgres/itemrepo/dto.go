// Package itemrepo persists the inventory ledger.
package itemrepo

import (
	"warehouse/internal/core/domain/model/item"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ItemDTO maps the items table. Cargo types are an integer[] column.
type ItemDTO struct {
	ID                uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Name              string        `gorm:"type:varchar(255);not null"`
	Length            int           `gorm:"not null"`
	Width             int           `gorm:"not null"`
	Height            int           `gorm:"not null"`
	Weight            float64       `gorm:"not null"`
	AvailableQuantity int           `gorm:"not null"`
	CargoTypes        pq.Int64Array `gorm:"type:integer[];not null"`
}

func (ItemDTO) TableName() string {
	return "items"
}

func fromDomain(it *item.Item) ItemDTO {
	tags := it.CargoTypes()
	cargoTypes := make(pq.Int64Array, 0, len(tags))
	for _, t := range tags {
		cargoTypes = append(cargoTypes, int64(t))
	}

	dims := it.Dimensions()
	return ItemDTO{
		ID:                it.ID().Bytes(),
		Name:              it.Name(),
		Length:            dims.Length(),
		Width:             dims.Width(),
		Height:            dims.Height(),
		Weight:            it.Weight(),
		AvailableQuantity: it.AvailableQuantity(),
		CargoTypes:        cargoTypes,
	}
}

func toDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	dims, err := kernel.NewDimensions(dto.Length, dto.Width, dto.Height)
	if err != nil {
		return nil, err
	}

	tags := make([]item.CargoType, 0, len(dto.CargoTypes))
	for _, t := range dto.CargoTypes {
		tags = append(tags, item.CargoType(t))
	}

	return item.RestoreItem(id, dto.Name, dims, dto.Weight, dto.AvailableQuantity, tags)
}
