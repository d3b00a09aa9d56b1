// 文件: pkg/options/implied.go
// 隐含波动率求解
//
// 【方法】区间线性插值 (false position)
// 期权价格对波动率单调递增，先用 [low, high] 夹住市场价，
// 再反复用两端点连线的零点收缩区间，直到模型价和市场价足够接近。
//
// 【不收敛的处理】
// 达到最大迭代次数时不算硬失败: 返回迄今误差最小的估计值，
// 并把 Converged 置为 false，由调用方决定是否采用。

package options

import "math"

// ImpliedVolConfig 求解器配置
type ImpliedVolConfig struct {
	Tolerance     float64 // 价格收敛阈值
	MaxIterations int     // 最大迭代次数
	Low           float64 // 波动率搜索下界
	High          float64 // 波动率搜索上界
}

// DefaultImpliedVolConfig 默认配置
func DefaultImpliedVolConfig() ImpliedVolConfig {
	return ImpliedVolConfig{
		Tolerance:     1e-6,
		MaxIterations: 1000,
		Low:           1e-4,
		High:          5.0,
	}
}

// ImpliedVolResult 求解结果
// 不收敛时 Sigma 是迄今最优估计，Converged 为 false
type ImpliedVolResult struct {
	Sigma      float64 // 隐含波动率
	Iterations int     // 实际迭代次数
	Converged  bool    // 是否在阈值内收敛
}

// ImpliedVolCall 从看涨期权市场价反推隐含波动率
func ImpliedVolCall(S, K, r, marketPrice, T float64) (ImpliedVolResult, error) {
	return ImpliedVolCallWith(S, K, r, marketPrice, T, DefaultImpliedVolConfig())
}

// ImpliedVolCallWith 自定义配置版本
func ImpliedVolCallWith(S, K, r, marketPrice, T float64, cfg ImpliedVolConfig) (ImpliedVolResult, error) {
	if T <= 0 {
		return ImpliedVolResult{}, ErrInvalidInputs
	}
	price := func(sigma float64) (float64, error) {
		return PriceCallBS(S, K, r, sigma, T)
	}
	return solveImpliedVol(price, marketPrice, cfg)
}

// ImpliedVolPut 从看跌期权市场价反推隐含波动率
func ImpliedVolPut(S, K, r, marketPrice, T float64) (ImpliedVolResult, error) {
	return ImpliedVolPutWith(S, K, r, marketPrice, T, DefaultImpliedVolConfig())
}

// ImpliedVolPutWith 自定义配置版本
func ImpliedVolPutWith(S, K, r, marketPrice, T float64, cfg ImpliedVolConfig) (ImpliedVolResult, error) {
	if T <= 0 {
		return ImpliedVolResult{}, ErrInvalidInputs
	}
	price := func(sigma float64) (float64, error) {
		return PricePutBS(S, K, r, sigma, T)
	}
	return solveImpliedVol(price, marketPrice, cfg)
}

// solveImpliedVol 在 [cfg.Low, cfg.High] 上做线性插值求根
func solveImpliedVol(price func(float64) (float64, error), marketPrice float64, cfg ImpliedVolConfig) (ImpliedVolResult, error) {
	if marketPrice <= 0 {
		return ImpliedVolResult{}, ErrInvalidInputs
	}

	lo, hi := cfg.Low, cfg.High

	fLo, err := price(lo)
	if err != nil {
		return ImpliedVolResult{}, err
	}
	fHi, err := price(hi)
	if err != nil {
		return ImpliedVolResult{}, err
	}

	// 市场价不在可达区间内: 没有隐含波动率能解释这个报价
	if marketPrice < fLo || marketPrice > fHi {
		return ImpliedVolResult{}, ErrInvalidInputs
	}

	// 残差形式: f(sigma) = model(sigma) - market, 单调递增
	rLo := fLo - marketPrice
	rHi := fHi - marketPrice

	best := ImpliedVolResult{Sigma: lo}
	bestErr := math.Abs(rLo)
	if math.Abs(rHi) < bestErr {
		best.Sigma = hi
		bestErr = math.Abs(rHi)
	}

	for i := 1; i <= cfg.MaxIterations; i++ {
		// 两端点连线与零的交点
		sigma := lo - rLo*(hi-lo)/(rHi-rLo)

		modelPrice, err := price(sigma)
		if err != nil {
			return ImpliedVolResult{}, err
		}
		resid := modelPrice - marketPrice

		if math.Abs(resid) < bestErr {
			best.Sigma = sigma
			bestErr = math.Abs(resid)
		}
		best.Iterations = i

		if math.Abs(resid) < cfg.Tolerance {
			best.Sigma = sigma
			best.Converged = true
			return best, nil
		}

		// 保持区间两端残差异号
		if resid < 0 {
			lo, rLo = sigma, resid
		} else {
			hi, rHi = sigma, resid
		}
	}

	// 不收敛: 带回最优估计
	return best, nil
}
