// 文件: pkg/pricing/service.go
// 定价服务 - 把定价请求分发到对应的定价模型
//
// 【流程】
// 1. 校验请求并映射成模型参数
// 2. 调用 pkg/binomial 或 pkg/options 计算
// 3. 结果落库 (成功和拒绝都落, 拒绝带原因)
//
// 参数错误和数学退化都是确定性失败, 重试不会改变结果,
// 所以服务内部不做任何重试。

package pricing

import (
	"context"
	"errors"
	"fmt"

	"hull.com/pkg/binomial"
	"hull.com/pkg/options"
)

var (
	// ErrUnknownModel 不支持的定价模型
	ErrUnknownModel = errors.New("pricing: unknown model")

	// ErrRejected 请求被拒绝 (参数或数学域错误), 详情见落库的 Reason
	ErrRejected = errors.New("pricing: request rejected")
)

type Service struct {
	repo ResultRepository
}

func NewService(repo ResultRepository) *Service {
	return &Service{repo: repo}
}

// Handle 处理一个定价请求
// 成功返回已落库的结果; 模型拒绝时落一条 REJECTED 记录并返回 ErrRejected
func (s *Service) Handle(ctx context.Context, req *PricingRequest) (*PricingResult, error) {
	price, err := s.dispatch(req)
	if err != nil {
		// 模型拒绝: 落库记录原因, 让调用方能区分 "没有价格" 和 "价格为零"
		if errors.Is(err, binomial.ErrInvalidParams) ||
			errors.Is(err, binomial.ErrArithmeticDomain) ||
			errors.Is(err, options.ErrInvalidInputs) ||
			errors.Is(err, ErrUnknownModel) {

			rejected := NewRejectedResult(req, err.Error())
			if createErr := s.repo.Create(ctx, rejected); createErr != nil {
				return nil, createErr
			}
			return rejected, fmt.Errorf("%w: %s", ErrRejected, err.Error())
		}
		return nil, err
	}

	result := NewPricedResult(req, price)
	if err := s.repo.Create(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetResult 查询历史结果
func (s *Service) GetResult(ctx context.Context, requestID int64) (*PricingResult, error) {
	return s.repo.GetByRequestID(ctx, requestID)
}

// ListResults 按标的查询最近结果
func (s *Service) ListResults(ctx context.Context, symbol string, limit int) ([]*PricingResult, error) {
	return s.repo.ListBySymbol(ctx, symbol, limit)
}

// dispatch 按模型分发
func (s *Service) dispatch(req *PricingRequest) (float64, error) {
	switch req.Model {
	case ModelBinomial:
		return s.priceBinomial(req)
	case ModelBlackScholes:
		return s.priceBlackScholes(req)
	}
	return 0, ErrUnknownModel
}

// priceBinomial 二叉树定价
func (s *Service) priceBinomial(req *PricingRequest) (float64, error) {
	params := binomial.Params{
		Spot:       req.Spot,
		Strike:     req.Strike,
		Rate:       req.Rate,
		Maturity:   req.Maturity,
		Steps:      req.Steps,
		Volatility: req.Volatility,
		Up:         req.Up,
		Down:       req.Down,
	}

	switch req.Side {
	case SideCall:
		params.Kind = binomial.Call
	case SidePut:
		params.Kind = binomial.Put
	default:
		return 0, binomial.ErrInvalidParams
	}

	switch req.Style {
	case StyleEuropean:
		params.Style = binomial.European
	case StyleAmerican:
		params.Style = binomial.American
	default:
		return 0, binomial.ErrInvalidParams
	}

	return binomial.Price(params)
}

// priceBlackScholes BSM 闭式定价
// 只支持欧式; 美式请求应走二叉树模型
func (s *Service) priceBlackScholes(req *PricingRequest) (float64, error) {
	if req.Style != StyleEuropean {
		return 0, options.ErrInvalidInputs
	}
	// BSM 没有涨跌幅参数的解释
	if req.Up != 0 || req.Down != 0 || req.Steps != 0 {
		return 0, options.ErrInvalidInputs
	}

	switch req.Side {
	case SideCall:
		return options.PriceCallBS(req.Spot, req.Strike, req.Rate, req.Volatility, req.Maturity)
	case SidePut:
		return options.PricePutBS(req.Spot, req.Strike, req.Rate, req.Volatility, req.Maturity)
	}
	return 0, options.ErrInvalidInputs
}
