package orderrepo

import (
	"context"
	"errors"

	"warehouse/internal/adapters/out/postgres/pgerr"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order with its lines and placements.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the order row, upserts line package numbers and inserts placements that
// are not stored yet. Line quantities and existing placements are never rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":                dto.Status,
		"worker_id":             nullable(dto.WorkerID),
		"recommended_packaging": nullable(dto.RecommendedPackaging),
		"selected_packaging":    nullable(dto.SelectedPackaging),
		"total_packages":        nullable(dto.TotalPackages),
	})
	if result.Error != nil {
		return pgerr.Translate(result.Error, "order", aggregate.ID().String())
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	if len(dto.Lines) > 0 {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"package_number"}),
		}).Create(&dto.Lines).Error
		if err != nil {
			return pgerr.Translate(err, "order", aggregate.ID().String())
		}
	}

	if len(dto.Placements) > 0 {
		err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.Placements).Error
		if err != nil {
			return pgerr.Translate(err, "order", aggregate.ID().String())
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate locks the orders row. Lines and placements only change while that lock
// is held.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// ListClaimCandidates is the picking queue read. It never locks: the claim itself is
// decided by TryClaim.
func (r *GormOrderRepository) ListClaimCandidates(
	ctx context.Context,
	tableID kernel.UUID,
	limit int,
) ([]kernel.UUID, error) {
	if err := tableID.Validate(); err != nil {
		return nil, err
	}

	var raw []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("orders.status = ?", order.Forming.String()).
		Where(`EXISTS (
			SELECT 1
			FROM cell_placements p
			JOIN cells c ON c.id = p.cell_id
			WHERE p.order_id = orders.id AND c.table_id = ?
		)`, tableID.Bytes()).
		Order("orders.created_at, orders.id").
		Limit(limit).
		Pluck("orders.id", &raw).Error
	if err != nil {
		return nil, err
	}

	return idsToDomain(raw)
}

// TryClaim is a compare-and-set on the status column: the row is only updated while it is
// still forming. Under READ COMMITTED a concurrent claimer blocks on the row, re-evaluates
// the condition after the winner commits and affects zero rows.
func (r *GormOrderRepository) TryClaim(ctx context.Context, aggregate *order.Order) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	worker := aggregate.Worker()
	if worker == nil {
		return false, errs.NewValueIsRequiredError("worker")
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), order.Forming.String()).
		Updates(map[string]any{
			"status":    aggregate.Status().String(),
			"worker_id": worker.Bytes(),
		})
	if result.Error != nil {
		return false, pgerr.Translate(result.Error, "order", aggregate.ID().String())
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return true, nil
}

func (r *GormOrderRepository) ListAwaitingRecommendation(ctx context.Context, limit int) ([]kernel.UUID, error) {
	var raw []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("status = ? AND recommended_packaging IS NULL", order.Forming.String()).
		Order("created_at, id").
		Limit(limit).
		Pluck("id", &raw).Error
	if err != nil {
		return nil, err
	}

	return idsToDomain(raw)
}

func (r *GormOrderRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := db.WithContext(ctx).
		Preload("Lines", func(tx *gorm.DB) *gorm.DB { return tx.Order("item_id") }).
		Preload("Placements", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// nullable turns a nil pointer into an untyped nil so the driver writes NULL.
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
