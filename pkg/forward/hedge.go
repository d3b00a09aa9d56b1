// 文件: pkg/forward/hedge.go
// 期货对冲比例
//
// 最小方差对冲: 让 (现货变动 - h * 期货变动) 的方差最小,
// 最优 h = 相关系数 * 现货波动 / 期货波动。

package forward

// HedgePlan 对冲方案
type HedgePlan struct {
	Ratio     float64 // 最优对冲比例 h
	Contracts float64 // 需要的期货合约数量 (未取整, 由调用方决定舍入)
}

// MinVarianceHedge 计算最小方差对冲方案
// correlation: 现货与期货收益的相关系数
// spotStd / futuresStd: 两者收益的标准差
// positionSize: 待对冲头寸规模, contractSize: 单张合约规模
func MinVarianceHedge(correlation, spotStd, futuresStd, positionSize, contractSize float64) (HedgePlan, error) {
	if correlation < -1 || correlation > 1 {
		return HedgePlan{}, ErrInvalidInputs
	}
	if spotStd <= 0 || futuresStd <= 0 || positionSize <= 0 || contractSize <= 0 {
		return HedgePlan{}, ErrInvalidInputs
	}

	ratio := correlation * spotStd / futuresStd

	return HedgePlan{
		Ratio:     ratio,
		Contracts: ratio * positionSize / contractSize,
	}, nil
}

// IndexHedgeContracts 股指期货对冲张数: N = beta * P / F
// portfolioValue: 组合市值, futuresValue: 单张期货合约名义价值
func IndexHedgeContracts(beta, portfolioValue, futuresValue float64) (float64, error) {
	if portfolioValue <= 0 || futuresValue <= 0 {
		return 0, ErrInvalidInputs
	}
	return beta * portfolioValue / futuresValue, nil
}
