// 文件: pkg/rates/compounding.go
// 计息频率换算
//
// 名义年利率只有配上计息频率才有意义。
// 换算统一走有效年利率 (effective annual rate):
// 先把输入利率折算成一年实际增长多少，再按目标频率反解。

package rates

import (
	"errors"
	"math"
)

// ErrUnknownFrequency 不认识的计息频率
var ErrUnknownFrequency = errors.New("rates: unknown compounding frequency")

// Frequency 计息频率
type Frequency int8

const (
	Yearly     Frequency = iota + 1 // 每年一次
	SemiAnnual                      // 每半年一次
	Quarterly                       // 每季度一次
	Monthly                         // 每月一次
	Continuous                      // 连续复利
)

func (f Frequency) String() string {
	switch f {
	case Yearly:
		return "YEARLY"
	case SemiAnnual:
		return "SEMI_ANNUAL"
	case Quarterly:
		return "QUARTERLY"
	case Monthly:
		return "MONTHLY"
	case Continuous:
		return "CONTINUOUS"
	}
	return "UNKNOWN"
}

// periodsPerYear 每年计息次数; 连续复利返回 0
func (f Frequency) periodsPerYear() (float64, error) {
	switch f {
	case Yearly:
		return 1, nil
	case SemiAnnual:
		return 2, nil
	case Quarterly:
		return 4, nil
	case Monthly:
		return 12, nil
	case Continuous:
		return 0, nil
	}
	return 0, ErrUnknownFrequency
}

// Equivalent 把 from 频率下的名义年利率换算成 to 频率下的等价利率
func Equivalent(rate float64, from, to Frequency) (float64, error) {
	mFrom, err := from.periodsPerYear()
	if err != nil {
		return 0, err
	}
	mTo, err := to.periodsPerYear()
	if err != nil {
		return 0, err
	}

	// 1. 输入利率 -> 有效年利率
	var effective float64
	if from == Continuous {
		effective = math.Exp(rate) - 1
	} else {
		effective = math.Pow(1+rate/mFrom, mFrom) - 1
	}

	// 2. 有效年利率 -> 目标频率利率
	if to == Continuous {
		return math.Log(1 + effective), nil
	}
	return mTo * (math.Pow(1+effective, 1/mTo) - 1), nil
}
