package stationrepo

import (
	"context"
	"errors"

	"warehouse/internal/adapters/out/postgres/pgerr"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/station"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTableRepository implements ports.TableRepository using GORM.
type GormTableRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormTableRepository(db *gorm.DB, tracker aggregateTracker) *GormTableRepository {
	return &GormTableRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a table. A taken id or name is reported as errs.ConflictError.
func (r *GormTableRepository) Add(ctx context.Context, aggregate *station.Table) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := tableFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "table", aggregate.Name())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormTableRepository) Get(ctx context.Context, id kernel.UUID) (*station.Table, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TableDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("table", id.String())
		}
		return nil, err
	}

	return tableToDomain(dto)
}
