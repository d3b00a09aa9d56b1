// 文件: pkg/pricing/mysql_repo.go

package pricing

import (
	"context"

	"gorm.io/gorm"
)

type MySQLResultRepository struct {
	db *gorm.DB
}

func NewMySQLResultRepository(db *gorm.DB) *MySQLResultRepository {
	return &MySQLResultRepository{db: db}
}

func (r *MySQLResultRepository) Create(ctx context.Context, result *PricingResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *MySQLResultRepository) GetByRequestID(ctx context.Context, requestID int64) (*PricingResult, error) {
	var result PricingResult
	err := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *MySQLResultRepository) ListBySymbol(ctx context.Context, symbol string, limit int) ([]*PricingResult, error) {
	var results []*PricingResult
	err := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error
	return results, err
}
