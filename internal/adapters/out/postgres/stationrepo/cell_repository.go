package stationrepo

import (
	"context"
	"errors"

	"warehouse/internal/adapters/out/postgres/pgerr"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/station"
	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCellRepository implements ports.CellRepository using GORM.
type GormCellRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormCellRepository(db *gorm.DB, tracker aggregateTracker) *GormCellRepository {
	return &GormCellRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a cell. A clash on (name, table) is reported as errs.ConflictError.
func (r *GormCellRepository) Add(ctx context.Context, aggregate *station.Cell) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := cellFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "cell", aggregate.Name())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update stores the cell's current table. Moving a cell next to a namesake at the target
// table is reported as errs.ConflictError.
func (r *GormCellRepository) Update(ctx context.Context, aggregate *station.Cell) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := cellFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CellDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate(result.Error, "cell", aggregate.Name())
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cell", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCellRepository) Get(ctx context.Context, id kernel.UUID) (*station.Cell, error) {
	return r.get(ctx, r.db, id)
}

func (r *GormCellRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*station.Cell, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormCellRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*station.Cell, error) {
	if len(ids) == 0 {
		return []*station.Cell{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []CellDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Order("name, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	cells := make([]*station.Cell, 0, len(dtos))
	for _, dto := range dtos {
		c, err := cellToDomain(dto)
		if err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}

	return cells, nil
}

func (r *GormCellRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*station.Cell, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CellDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cell", id.String())
		}
		return nil, err
	}

	return cellToDomain(dto)
}
