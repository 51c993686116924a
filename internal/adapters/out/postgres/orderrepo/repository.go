package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database, minting and assigning its identifier.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := aggregate.AssignID(kernel.NewUUID()); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStoreUnavailableError("add order", err)
	}

	r.tracker.TrackAggregate(*aggregate.ID(), aggregate)
	return nil
}

// Update persists a status or payment change to an existing order.
// The write only lands if the stored status still equals the status the
// aggregate was read at; a concurrent writer that got there first makes the
// update fail with an IllegalTransitionError and nothing is persisted.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order, readStatus order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := readStatus.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, readStatus.String()).
		Updates(map[string]any{
			"status":         dto.Status,
			"payment_status": dto.PaymentStatus,
		})
	if result.Error != nil {
		return errs.NewStoreUnavailableError("update order", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err = r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return errs.NewStoreUnavailableError("update order", err)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewIllegalTransitionErrorWithCause(
			readStatus.String(), aggregate.Status().String(),
			fmt.Errorf("order was changed concurrently"))
	}

	r.tracker.TrackAggregate(*aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewStoreUnavailableError("get order", err)
	}

	return toDomain(dto)
}

// GetByUser retrieves all orders of one user, newest first.
// A user with no orders yields an empty slice.
func (r *GormOrderRepository) GetByUser(ctx context.Context, userID string) ([]*order.Order, error) {
	if userID == "" {
		return nil, errs.NewValueIsRequiredError("userId")
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "user_id = ?", userID).Error; err != nil {
		return nil, errs.NewStoreUnavailableError("get orders by user", err)
	}

	return toDomainSlice(dtos)
}

// GetAllUndelivered retrieves every order still on the happy path, oldest first.
func (r *GormOrderRepository) GetAllUndelivered(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&dtos, "status NOT IN ?", []string{
			order.StatusDelivered.String(),
			order.StatusCancelled.String(),
		}).Error; err != nil {
		return nil, errs.NewStoreUnavailableError("get undelivered orders", err)
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}
