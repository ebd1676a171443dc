// Package otprepo persists one-time delivery confirmation codes. Codes are
// short-lived rows: issued before the handoff, deleted on consumption, and
// swept by a background job once expired.
package otprepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"deliverylink/internal/core/domain/model/order"
	"deliverylink/internal/pkg/errs"
)

// DeliveryCodeDTO is the database row for one issued code.
type DeliveryCodeDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   int64     `gorm:"column:order_id;index"`
	Code      string    `gorm:"size:6"`
	ExpiresAt time.Time `gorm:"column:expires_at;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName overrides GORM's default naming to use "otp_codes".
func (DeliveryCodeDTO) TableName() string {
	return "otp_codes"
}

func fromDomain(code order.DeliveryCode) DeliveryCodeDTO {
	return DeliveryCodeDTO{
		ID:        code.ID,
		OrderID:   code.OrderID,
		Code:      code.Code,
		ExpiresAt: code.ExpiresAt,
		CreatedAt: code.CreatedAt,
	}
}

func toDomain(dto DeliveryCodeDTO) order.DeliveryCode {
	return order.DeliveryCode{
		ID:        dto.ID,
		OrderID:   dto.OrderID,
		Code:      dto.Code,
		ExpiresAt: dto.ExpiresAt,
		CreatedAt: dto.CreatedAt,
	}
}

// GormDeliveryCodeRepository implements ports.DeliveryCodeRepository using GORM.
type GormDeliveryCodeRepository struct {
	db *gorm.DB
}

// NewGormDeliveryCodeRepository creates a new GORM delivery code repository.
func NewGormDeliveryCodeRepository(db *gorm.DB) *GormDeliveryCodeRepository {
	return &GormDeliveryCodeRepository{db: db}
}

// Add stores a freshly issued code.
func (r *GormDeliveryCodeRepository) Add(ctx context.Context, code order.DeliveryCode) error {
	dto := fromDomain(code)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetLatestMatch retrieves the most recently issued code for the order
// matching the presented value.
func (r *GormDeliveryCodeRepository) GetLatestMatch(ctx context.Context, orderID int64, code string) (order.DeliveryCode, error) {
	var dto DeliveryCodeDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND code = ?", orderID, code).
		Order("created_at DESC, id DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.DeliveryCode{}, errs.NewObjectNotFoundError("delivery code", orderID)
		}
		return order.DeliveryCode{}, err
	}

	return toDomain(dto), nil
}

// Delete removes a consumed code.
func (r *GormDeliveryCodeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&DeliveryCodeDTO{}, id).Error
}

// DeleteExpired removes every code whose validity window has passed.
func (r *GormDeliveryCodeRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&DeliveryCodeDTO{})
	return result.RowsAffected, result.Error
}
