// 文件: pkg/forward/forward.go
// 远期/期货定价 (持有成本模型)
//
// 无套利关系: 远期价格 = 现货价格按无风险利率增值到交割日。
// 标的有收益时先扣掉收益 (已知现金收益扣现值, 已知收益率扣利率)。

package forward

import (
	"errors"
	"math"
)

// ErrInvalidInputs 非法输入
var ErrInvalidInputs = errors.New("forward: invalid inputs")

// Price 无收益标的的远期价格: F = S * e^{rT}
func Price(spot, rate, maturity float64) (float64, error) {
	if spot <= 0 || maturity < 0 {
		return 0, ErrInvalidInputs
	}
	return spot * math.Exp(rate*maturity), nil
}

// PriceWithIncome 持有期内有已知现金收益的远期价格
// incomePV: 持有期内全部收益的现值
// F = (S - I) * e^{rT}
func PriceWithIncome(spot, incomePV, rate, maturity float64) (float64, error) {
	if spot <= 0 || maturity < 0 || incomePV < 0 || incomePV >= spot {
		return 0, ErrInvalidInputs
	}
	return (spot - incomePV) * math.Exp(rate*maturity), nil
}

// PriceWithYield 标的有已知收益率 q 的远期价格 (股指、外汇)
// F = S * e^{(r-q)T}
func PriceWithYield(spot, rate, yield, maturity float64) (float64, error) {
	if spot <= 0 || maturity < 0 {
		return 0, ErrInvalidInputs
	}
	return spot * math.Exp((rate-yield)*maturity), nil
}

// ValueLong 已持有多头远期合约的现值
// delivery: 合约约定的交割价, current: 当前远期价格
// f = (F - K) * e^{-rT}
func ValueLong(current, delivery, rate, maturity float64) (float64, error) {
	if current <= 0 || delivery <= 0 || maturity < 0 {
		return 0, ErrInvalidInputs
	}
	return (current - delivery) * math.Exp(-rate*maturity), nil
}
