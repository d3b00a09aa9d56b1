// 文件: pkg/pricing/repository.go

package pricing

import "context"

type ResultRepository interface {
	// 创建
	Create(ctx context.Context, result *PricingResult) error

	// 查询
	GetByRequestID(ctx context.Context, requestID int64) (*PricingResult, error)
	ListBySymbol(ctx context.Context, symbol string, limit int) ([]*PricingResult, error)
}
