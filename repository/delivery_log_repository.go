package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/take-two/storefront/models"
)

type DeliveryLogRepository interface {
	SaveLog(ctx context.Context, log *models.DeliveryLog) error
	GetLogs(ctx context.Context, filter models.DeliveryLogFilter) ([]models.DeliveryLog, int64, error)
}

type deliveryLogRepository struct {
	db *gorm.DB
}

func NewDeliveryLogRepository(db *gorm.DB) DeliveryLogRepository {
	return &deliveryLogRepository{db: db}
}

func (r *deliveryLogRepository) SaveLog(ctx context.Context, log *models.DeliveryLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *deliveryLogRepository) GetLogs(ctx context.Context, filter models.DeliveryLogFilter) ([]models.DeliveryLog, int64, error) {
	var logs []models.DeliveryLog
	var total int64

	if filter.PageSize < 1 {
		filter.PageSize = 10
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}
	if filter.Page < 1 {
		filter.Page = 1
	}

	query := r.db.WithContext(ctx).Model(&models.DeliveryLog{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PageSize
	err := query.Order("created_at DESC").
		Limit(filter.PageSize).
		Offset(offset).
		Find(&logs).Error

	return logs, total, err
}
