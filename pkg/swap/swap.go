// 文件: pkg/swap/swap.go
// 利率互换 (IRS) 估值
//
// 固定换浮动互换有两种等价的估值方法:
//   1. 债券差: 互换 = 浮动利率债券 - 固定利率债券 (或反向)
//   2. FRA 分解: 每期交换看成一个远期利率协议, 逐期贴现求和
// 两种方法在同一条零息曲线下必须给出完全相同的结果,
// 这里两种都实现, 互为校验。
//
// 利率口径:
//   - ZeroRates: 连续复利零息利率 (贴现用)
//   - FixedRate / FloatingRate: 按期单利 (付款金额 = 名义 * 利率 * 应计比例)

package swap

import (
	"errors"
	"math"
)

// ErrInvalidSwap 互换参数非法
var ErrInvalidSwap = errors.New("swap: invalid parameters")

// IRS 固定换浮动利率互换
type IRS struct {
	Notional  float64 // 名义本金
	FixedRate float64 // 固定腿利率 (年化, 按期单利)
	PayFixed  bool    // true = 支付固定收取浮动

	// 付款时间表 (年, 升序, 全部大于零)
	PaymentTimes []float64
	// 每期应计比例 (年): 半年付为 0.5
	AccrualFractions []float64
	// 每个付款时点的连续复利零息利率
	ZeroRates []float64

	// 下一期浮动付款已确定的利率 (上个重置日定下的)
	FloatingRate float64
}

func (s *IRS) validate() error {
	if s.Notional <= 0 {
		return ErrInvalidSwap
	}
	n := len(s.PaymentTimes)
	if n == 0 || len(s.AccrualFractions) != n || len(s.ZeroRates) != n {
		return ErrInvalidSwap
	}

	prev := 0.0
	for i := 0; i < n; i++ {
		if s.PaymentTimes[i] <= prev {
			return ErrInvalidSwap
		}
		if s.AccrualFractions[i] <= 0 {
			return ErrInvalidSwap
		}
		prev = s.PaymentTimes[i]
	}
	return nil
}

// discount 第 i 个付款时点的贴现因子
func (s *IRS) discount(i int) float64 {
	return math.Exp(-s.ZeroRates[i] * s.PaymentTimes[i])
}

// FixedLegValue 固定利率债券价值
// B_fix = Σ 票息贴现 + 名义本金贴现
func (s *IRS) FixedLegValue() (float64, error) {
	if err := s.validate(); err != nil {
		return 0, err
	}

	value := 0.0
	for i := range s.PaymentTimes {
		value += s.Notional * s.FixedRate * s.AccrualFractions[i] * s.discount(i)
	}
	value += s.Notional * s.discount(len(s.PaymentTimes)-1)

	return value, nil
}

// FloatingLegValue 浮动利率债券价值
// 下一付款日后债券回到面值, 所以只需贴现 (名义 + 已确定的浮动付款)
func (s *IRS) FloatingLegValue() (float64, error) {
	if err := s.validate(); err != nil {
		return 0, err
	}

	nextPayment := s.Notional * s.FloatingRate * s.AccrualFractions[0]
	return (s.Notional + nextPayment) * s.discount(0), nil
}

// Value 债券差法估值
// 支付固定方: V = B_float - B_fix; 收取固定方取反
func (s *IRS) Value() (float64, error) {
	fixed, err := s.FixedLegValue()
	if err != nil {
		return 0, err
	}
	floating, err := s.FloatingLegValue()
	if err != nil {
		return 0, err
	}

	if s.PayFixed {
		return floating - fixed, nil
	}
	return fixed - floating, nil
}

// ForwardRates 从零息曲线推每期的远期利率 (按期单利)
// 第一期用已确定的浮动利率; 之后 1 + f*tau = e^{r_i*t_i - r_{i-1}*t_{i-1}}
func (s *IRS) ForwardRates() ([]float64, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	forwards := make([]float64, len(s.PaymentTimes))
	forwards[0] = s.FloatingRate

	for i := 1; i < len(s.PaymentTimes); i++ {
		growth := math.Exp(s.ZeroRates[i]*s.PaymentTimes[i] - s.ZeroRates[i-1]*s.PaymentTimes[i-1])
		forwards[i] = (growth - 1) / s.AccrualFractions[i]
	}

	return forwards, nil
}

// ValueFRA FRA 分解法估值
// 每期交换 = (浮动预期付款 - 固定付款) 贴现, 逐期求和
func (s *IRS) ValueFRA() (float64, error) {
	forwards, err := s.ForwardRates()
	if err != nil {
		return 0, err
	}

	value := 0.0
	for i := range s.PaymentTimes {
		floatPay := s.Notional * forwards[i] * s.AccrualFractions[i]
		fixedPay := s.Notional * s.FixedRate * s.AccrualFractions[i]
		value += (floatPay - fixedPay) * s.discount(i)
	}

	if s.PayFixed {
		return value, nil
	}
	return -value, nil
}
