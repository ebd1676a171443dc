package orderrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/core/domain/model/order"
	"deliverylink/internal/pkg/errs"
)

// maxNumberAttempts bounds the order number collision retry loop. The number
// space is six random digits per year, so a second collision in a row means
// something is wrong beyond bad luck.
const maxNumberAttempts = 5

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts a new order and attaches the store-assigned id. A unique
// violation on the order number regenerates the number and retries.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		dto := fromDomain(aggregate)
		err := r.db.WithContext(ctx).Create(&dto).Error
		if err == nil {
			aggregate.AttachID(dto.ID)
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}

		number, genErr := kernel.GenerateOrderNumber(time.Now().UTC().Year())
		if genErr != nil {
			return genErr
		}
		if renumberErr := aggregate.Renumber(number); renumberErr != nil {
			return renumberErr
		}
	}

	return errs.NewValueIsInvalidError("orderNumber")
}

// Update writes the full order row.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	return nil
}

// Get retrieves an order by its numeric id.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves an order by id holding a row lock until the
// surrounding transaction ends.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByNumber retrieves an order by its external order number.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_number = ?", number.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", number.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAlive retrieves every non-deleted order.
func (r *GormOrderRepository) GetAllAlive(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainSlice(dtos)
}

// GetAvailable retrieves confirmed, driverless orders, urgent first, then
// oldest first.
func (r *GormOrderRepository) GetAvailable(ctx context.Context, limit, offset int) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND driver_id IS NULL", string(order.Confirmed)).
		Order("(priority = 'urgent') DESC, created_at").
		Limit(limit).
		Offset(offset).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	return toDomainSlice(dtos)
}

// GetActiveByDriver retrieves the driver's orders still moving through the
// lifecycle. The acceptance guard treats a non-empty result as a veto.
func (r *GormOrderRepository) GetActiveByDriver(ctx context.Context, driverID kernel.UUID) ([]*order.Order, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("driver_id = ? AND status IN ?", driverID.Bytes(), []string{
			string(order.Assigned), string(order.PickedUp), string(order.InTransit),
		}).
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
