// Package stationrepo persists picking tables and the cells that move between them.
package stationrepo

import (
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/station"

	"github.com/google/uuid"
)

// TableDTO maps the picking_tables table.
type TableDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description string    `gorm:"type:varchar(1024);not null"`
	Available   bool      `gorm:"not null"`
}

func (TableDTO) TableName() string {
	return "picking_tables"
}

// CellDTO maps the cells table. TableID is null for a cell parked outside any table.
type CellDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name    string     `gorm:"type:varchar(255);not null"`
	TableID *uuid.UUID `gorm:"type:uuid;index"`
}

func (CellDTO) TableName() string {
	return "cells"
}

func tableFromDomain(t *station.Table) TableDTO {
	return TableDTO{
		ID:          t.ID().Bytes(),
		Name:        t.Name(),
		Description: t.Description(),
		Available:   t.Available(),
	}
}

func tableToDomain(dto TableDTO) (*station.Table, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return station.RestoreTable(id, dto.Name, dto.Description, dto.Available)
}

func cellFromDomain(c *station.Cell) CellDTO {
	var tableID *uuid.UUID
	if id := c.Table(); id != nil {
		raw := id.Bytes()
		tableID = &raw
	}

	return CellDTO{
		ID:      c.ID().Bytes(),
		Name:    c.Name(),
		TableID: tableID,
	}
}

func cellToDomain(dto CellDTO) (*station.Cell, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var tableID *kernel.UUID
	if dto.TableID != nil {
		tID, tableErr := kernel.UUIDFromBytes((*dto.TableID)[:])
		if tableErr != nil {
			return nil, tableErr
		}
		tableID = &tID
	}

	return station.RestoreCell(id, dto.Name, tableID)
}
