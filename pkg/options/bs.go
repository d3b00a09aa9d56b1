// 文件: pkg/options/bs.go
// Black-Scholes-Merton 欧式期权定价 (无分红)
//
// S: 标的现价
// K: 行权价
// r: 无风险利率 (连续复利, 年化)
// sigma: 年化波动率
// T: 剩余到期时间 (年)

package options

import (
	"errors"
	"math"
)

var (
	// ErrInvalidInputs 非法输入
	ErrInvalidInputs = errors.New("options: invalid inputs")
)

// PriceCallBS 欧式看涨期权价格
func PriceCallBS(S, K, r, sigma, T float64) (float64, error) {
	if err := validateBSInputs(S, K, sigma, T); err != nil {
		return 0, err
	}

	// T=0 已到期，价格就是内在价值
	if T == 0 {
		return math.Max(S-K, 0), nil
	}

	// sigma=0 没有不确定性，价格退化为确定性贴现
	if sigma == 0 {
		return math.Max(S-K*math.Exp(-r*T), 0), nil
	}

	d1 := calcD1(S, K, r, sigma, T)
	d2 := d1 - sigma*math.Sqrt(T)

	return S*normCDF(d1) - K*math.Exp(-r*T)*normCDF(d2), nil
}

// PricePutBS 欧式看跌期权价格
func PricePutBS(S, K, r, sigma, T float64) (float64, error) {
	if err := validateBSInputs(S, K, sigma, T); err != nil {
		return 0, err
	}

	if T == 0 {
		return math.Max(K-S, 0), nil
	}

	if sigma == 0 {
		return math.Max(K*math.Exp(-r*T)-S, 0), nil
	}

	d1 := calcD1(S, K, r, sigma, T)
	d2 := d1 - sigma*math.Sqrt(T)

	return K*math.Exp(-r*T)*normCDF(-d2) - S*normCDF(-d1), nil
}

// validateBSInputs 检查输入合法性
// 价格必须为正; 波动率和到期时间不能为负 (允许为零, 退化分支单独处理)
func validateBSInputs(S, K, sigma, T float64) error {
	if S <= 0 || K <= 0 {
		return ErrInvalidInputs
	}
	if sigma < 0 || T < 0 {
		return ErrInvalidInputs
	}
	return nil
}

// calcD1 Black-Scholes 公式中的 d1
// d1 = [ln(S/K) + (r + 0.5*sigma^2)*T] / (sigma*sqrt(T))
func calcD1(S, K, r, sigma, T float64) float64 {
	return (math.Log(S/K) + (r+0.5*sigma*sigma)*T) / (sigma * math.Sqrt(T))
}

// normCDF 标准正态分布累计分布函数
func normCDF(x float64) float64 {
	return 0.5 * (1.0 + math.Erf(x/math.Sqrt2))
}

// normPDF 标准正态分布概率密度函数
func normPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / math.Sqrt(2*math.Pi)
}
