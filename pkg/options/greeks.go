// 文件: pkg/options/greeks.go
// 欧式期权 Greeks - 期权价格对各市场因素的敏感度
//
// Delta: 对标的价格的敏感度
// Gamma: Delta 对标的价格的敏感度
// Vega:  对波动率的敏感度
// Theta: 对时间流逝的敏感度

package options

import "math"

// DeltaCall 看涨期权 Delta = N(d1)
func DeltaCall(S, K, r, sigma, T float64) (float64, error) {
	if err := validateGreekInputs(S, K, sigma, T); err != nil {
		return 0, err
	}
	return normCDF(calcD1(S, K, r, sigma, T)), nil
}

// DeltaPut 看跌期权 Delta = N(d1) - 1
func DeltaPut(S, K, r, sigma, T float64) (float64, error) {
	if err := validateGreekInputs(S, K, sigma, T); err != nil {
		return 0, err
	}
	return normCDF(calcD1(S, K, r, sigma, T)) - 1, nil
}

// Gamma 期权 Gamma (看涨看跌相同)
func Gamma(S, K, r, sigma, T float64) (float64, error) {
	if err := validateGreekInputs(S, K, sigma, T); err != nil {
		return 0, err
	}
	d1 := calcD1(S, K, r, sigma, T)
	return normPDF(d1) / (S * sigma * math.Sqrt(T)), nil
}

// Vega 期权 Vega (看涨看跌相同)
func Vega(S, K, r, sigma, T float64) (float64, error) {
	if err := validateGreekInputs(S, K, sigma, T); err != nil {
		return 0, err
	}
	d1 := calcD1(S, K, r, sigma, T)
	return S * math.Sqrt(T) * normPDF(d1), nil
}

// ThetaCall 看涨期权 Theta
func ThetaCall(S, K, r, sigma, T float64) (float64, error) {
	if err := validateGreekInputs(S, K, sigma, T); err != nil {
		return 0, err
	}
	d1 := calcD1(S, K, r, sigma, T)
	d2 := d1 - sigma*math.Sqrt(T)

	return -S*normPDF(d1)*sigma/(2*math.Sqrt(T)) - r*K*math.Exp(-r*T)*normCDF(d2), nil
}

// ThetaPut 看跌期权 Theta
func ThetaPut(S, K, r, sigma, T float64) (float64, error) {
	if err := validateGreekInputs(S, K, sigma, T); err != nil {
		return 0, err
	}
	d1 := calcD1(S, K, r, sigma, T)
	d2 := d1 - sigma*math.Sqrt(T)

	return -S*normPDF(d1)*sigma/(2*math.Sqrt(T)) + r*K*math.Exp(-r*T)*normCDF(-d2), nil
}

// validateGreekInputs Greeks 计算对 sigma/T 的要求比定价更严:
// 分母中出现 sigma*sqrt(T), 必须严格为正
func validateGreekInputs(S, K, sigma, T float64) error {
	if S <= 0 || K <= 0 || sigma <= 0 || T <= 0 {
		return ErrInvalidInputs
	}
	return nil
}
