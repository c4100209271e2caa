package orderrepo

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
// GORM's soft-delete scope handles the active filter; methods that must see
// tombstoned rows use Unscoped explicitly.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// FindActive retrieves all non-deleted, non-delivered orders with their items,
// ordered by id ascending.
func (r *GormOrderRepository) FindActive(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("status <> ?", order.Delivered.String()).
		Order("order_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// CreateWithItems persists a new order with its line items in one insert and
// returns the stored aggregate with ids and timestamps assigned.
func (r *GormOrderRepository) CreateWithItems(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	created, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(created.ID(), created)
	return created, nil
}

// GetByID retrieves a non-deleted order with its items.
func (r *GormOrderRepository) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&dto, "order_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDIncludingDeleted retrieves an order regardless of its tombstone.
func (r *GormOrderRepository) GetByIDIncludingDeleted(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Unscoped().
		Preload("Items").
		First(&dto, "order_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus persists a new status for the order and returns the updated
// aggregate. Operates on the active scope only.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id int64, status order.Status) (*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("order_id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}

	updated, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(updated.ID(), updated)
	return updated, nil
}

// SoftDelete marks the order with a tombstone timestamp. Deleting an already
// tombstoned order is a no-op, which keeps the terminal transition idempotent.
func (r *GormOrderRepository) SoftDelete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "order_id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		// Distinguish an absent order from one that is already tombstoned.
		var count int64
		err := r.db.WithContext(ctx).
			Unscoped().
			Model(&OrderDTO{}).
			Where("order_id = ?", id).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("orderId", id)
		}
	}

	return nil
}

// Restore clears the tombstone and resets the status to Initiated.
func (r *GormOrderRepository) Restore(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Unscoped().
		Model(&OrderDTO{}).
		Where("order_id = ?", id).
		Updates(map[string]any{
			"deleted_at": nil,
			"status":     order.Initiated.String(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", id)
	}

	return nil
}

// FindStale retrieves active-scope orders last touched before olderThan whose
// status is not Delivered.
func (r *GormOrderRepository) FindStale(ctx context.Context, olderThan time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("updated_at < ?", olderThan).
		Where("status <> ?", order.Delivered.String()).
		Order("order_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
