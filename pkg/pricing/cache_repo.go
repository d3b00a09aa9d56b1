// 文件: pkg/pricing/cache_repo.go
// 定价结果 Redis 缓存层
//
// 【设计模式】装饰器模式
// - 包装底层 ResultRepository，透明添加缓存能力
// - 调用方无感知，只看到 ResultRepository 接口
//
// 【缓存策略】
// - 定价结果一旦写入不再变化，适合长 TTL 的读缓存
// - 读: 先查 Redis，miss 则查 DB 并回填
// - 写: 先写 DB，成功后直接填缓存 (结果不可变, 无需删缓存)

package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 确保实现了接口
var _ ResultRepository = (*CachedResultRepository)(nil)

const (
	// 单个结果: pricing:result:{request_id}
	cacheKeyResult = "pricing:result:%d"

	// 缓存过期时间; 结果不可变, 只是控制内存占用
	cacheTTL = 24 * time.Hour
)

// CachedResultRepository Redis 缓存装饰器
type CachedResultRepository struct {
	repo  ResultRepository // 被装饰的底层 Repository
	redis *redis.Client
}

// NewCachedResultRepository 创建带缓存的 Repository
//
// 用法:
//
//	mysqlRepo := NewMySQLResultRepository(db)
//	cachedRepo := NewCachedResultRepository(mysqlRepo, redisClient)
//	service := NewService(cachedRepo)
func NewCachedResultRepository(repo ResultRepository, rds *redis.Client) *CachedResultRepository {
	return &CachedResultRepository{
		repo:  repo,
		redis: rds,
	}
}

// Create 写入结果并填缓存
func (r *CachedResultRepository) Create(ctx context.Context, result *PricingResult) error {
	if err := r.repo.Create(ctx, result); err != nil {
		return err
	}

	// 回填缓存 (异步，不阻塞主流程)
	go r.setCache(context.Background(), result)

	return nil
}

// GetByRequestID 查询结果 (带缓存)
func (r *CachedResultRepository) GetByRequestID(ctx context.Context, requestID int64) (*PricingResult, error) {
	cacheKey := fmt.Sprintf(cacheKeyResult, requestID)

	// 1. 查缓存
	data, err := r.redis.Get(ctx, cacheKey).Bytes()
	if err == nil {
		var result PricingResult
		if json.Unmarshal(data, &result) == nil {
			return &result, nil // Cache hit
		}
	}

	// 2. Cache miss, 查底层
	result, err := r.repo.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	// 3. 回填
	go r.setCache(context.Background(), result)

	return result, nil
}

// ListBySymbol 列表查询不缓存，直接透传
func (r *CachedResultRepository) ListBySymbol(ctx context.Context, symbol string, limit int) ([]*PricingResult, error) {
	return r.repo.ListBySymbol(ctx, symbol, limit)
}

// setCache 设置缓存
func (r *CachedResultRepository) setCache(ctx context.Context, result *PricingResult) {
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	r.redis.Set(ctx, fmt.Sprintf(cacheKeyResult, result.RequestID), data, cacheTTL)
}
