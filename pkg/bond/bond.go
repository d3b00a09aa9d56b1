// 文件: pkg/bond/bond.go
// 附息债券定价与利率风险
//
// 现金流模型: 每个付息周期末支付 face*couponRate*interval，
// 到期再偿还面值，全部按连续复利贴现。
//
// 贴现利率的选取:
//   - 给了 YieldToMaturity 用 YieldToMaturity
//   - 否则用 RiskFreeRate
//   - 给了 MarketPrice 可以先 MarketYTM() 反解市场收益率再定价

package bond

import (
	"errors"
	"math"
)

var (
	// ErrInvalidBond 债券参数非法
	ErrInvalidBond = errors.New("bond: invalid parameters")

	// ErrNoMarketPrice 需要市场价的计算但没给市场价
	ErrNoMarketPrice = errors.New("bond: market price not set")

	// ErrYTMNotFound 收益率求解失败 (市场价在可达价格区间之外)
	ErrYTMNotFound = errors.New("bond: yield to maturity not found")
)

// CouponInterval 付息周期
type CouponInterval int8

const (
	IntervalMonthly    CouponInterval = iota + 1 // 每月
	IntervalBiMonthly                            // 每两月
	IntervalQuarterly                            // 每季度
	IntervalSemiAnnual                           // 每半年
	IntervalAnnual                               // 每年
	IntervalTwoYears                             // 每两年
)

// Years 周期长度 (年)
func (ci CouponInterval) Years() (float64, error) {
	switch ci {
	case IntervalMonthly:
		return 1.0 / 12, nil
	case IntervalBiMonthly:
		return 1.0 / 6, nil
	case IntervalQuarterly:
		return 0.25, nil
	case IntervalSemiAnnual:
		return 0.5, nil
	case IntervalAnnual:
		return 1, nil
	case IntervalTwoYears:
		return 2, nil
	}
	return 0, ErrInvalidBond
}

// Bond 附息债券
// 所有输入在构造后不再隐式共享或修改，每次计算自洽
type Bond struct {
	FaceValue  float64        // 面值
	CouponRate float64        // 票面利率 (年化)
	Maturity   float64        // 到期时间 (年)
	Interval   CouponInterval // 付息周期

	RiskFreeRate    float64 // 无风险利率 (连续复利)
	YieldToMaturity float64 // 到期收益率, 0 表示未设置
	MarketPrice     float64 // 市场价, 0 表示未设置
}

func (b *Bond) validate() error {
	if b.FaceValue <= 0 || b.Maturity <= 0 || b.CouponRate < 0 {
		return ErrInvalidBond
	}
	if _, err := b.Interval.Years(); err != nil {
		return err
	}
	return nil
}

// discountRate 实际使用的贴现利率
func (b *Bond) discountRate() float64 {
	if b.YieldToMaturity != 0 {
		return b.YieldToMaturity
	}
	return b.RiskFreeRate
}

// CouponInfo 票息信息
type CouponInfo struct {
	Count        int     // 剩余付息次数
	Amount       float64 // 单次票息金额
	PresentValue float64 // 全部票息的现值
}

// Coupons 票息金额与现值
func (b *Bond) Coupons() (CouponInfo, error) {
	if err := b.validate(); err != nil {
		return CouponInfo{}, err
	}
	return b.couponsAt(b.discountRate()), nil
}

// couponsAt 按给定贴现率计算票息现值
func (b *Bond) couponsAt(rate float64) CouponInfo {
	interval, _ := b.Interval.Years()

	count := int(b.Maturity / interval)
	amount := b.FaceValue * b.CouponRate * interval

	pv := 0.0
	for t := 1; t <= count; t++ {
		pv += amount * math.Exp(-rate*float64(t)*interval)
	}

	return CouponInfo{Count: count, Amount: amount, PresentValue: pv}
}

// Price 债券理论价格 = 票息现值 + 面值现值
func (b *Bond) Price() (float64, error) {
	if err := b.validate(); err != nil {
		return 0, err
	}
	return b.priceAt(b.discountRate()), nil
}

func (b *Bond) priceAt(rate float64) float64 {
	coupons := b.couponsAt(rate)
	return coupons.PresentValue + b.FaceValue*math.Exp(-rate*b.Maturity)
}

// MarketYTM 从市场价反解到期收益率
// 价格对收益率单调递减，用二分法求根
func (b *Bond) MarketYTM() (float64, error) {
	if err := b.validate(); err != nil {
		return 0, err
	}
	if b.MarketPrice <= 0 {
		return 0, ErrNoMarketPrice
	}

	// 收益率搜索区间: 深度负利率到 1000%
	lo, hi := -0.99, 10.0

	// priceAt 递减: lo 端价格最高, hi 端最低
	if b.MarketPrice > b.priceAt(lo) || b.MarketPrice < b.priceAt(hi) {
		return 0, ErrYTMNotFound
	}

	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		if b.priceAt(mid) > b.MarketPrice {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo < 1e-12 {
			break
		}
	}

	return (lo + hi) / 2, nil
}

// UseMarketYield 用市场收益率替换贴现利率
// 之后的 Price/Duration/Convexity 都按市场收益率计算
func (b *Bond) UseMarketYield() error {
	ytm, err := b.MarketYTM()
	if err != nil {
		return err
	}
	b.YieldToMaturity = ytm
	return nil
}

// Duration 麦考利久期 (年)
// 各现金流时间的现值加权平均; 分母优先用市场价
func (b *Bond) Duration() (float64, error) {
	if err := b.validate(); err != nil {
		return 0, err
	}

	rate := b.discountRate()
	interval, _ := b.Interval.Years()
	coupons := b.couponsAt(rate)

	weighted := 0.0
	for t := 1; t <= coupons.Count; t++ {
		tm := float64(t) * interval
		weighted += tm * coupons.Amount * math.Exp(-rate*tm)
	}
	weighted += b.Maturity * b.FaceValue * math.Exp(-rate*b.Maturity)

	return weighted / b.referencePrice(rate), nil
}

// Convexity 凸度 (年²)
// 时间平方的现值加权平均
func (b *Bond) Convexity() (float64, error) {
	if err := b.validate(); err != nil {
		return 0, err
	}

	rate := b.discountRate()
	interval, _ := b.Interval.Years()
	coupons := b.couponsAt(rate)

	weighted := 0.0
	for t := 1; t <= coupons.Count; t++ {
		tm := float64(t) * interval
		weighted += tm * tm * coupons.Amount * math.Exp(-rate*tm)
	}
	weighted += b.Maturity * b.Maturity * b.FaceValue * math.Exp(-rate*b.Maturity)

	return weighted / b.referencePrice(rate), nil
}

// referencePrice 久期/凸度的分母: 优先市场价，否则理论价
func (b *Bond) referencePrice(rate float64) float64 {
	if b.MarketPrice > 0 {
		return b.MarketPrice
	}
	return b.priceAt(rate)
}

// YieldChangeMethod 收益率冲击的估算方法
type YieldChangeMethod int8

const (
	// ByDuration 一阶近似, 适合小幅变动
	ByDuration YieldChangeMethod = iota + 1
	// ByConvexity 二阶近似, 大幅变动时更准
	ByConvexity
)

// YieldChangeResult 收益率变动的价格影响
type YieldChangeResult struct {
	Return      float64 // 价格变动 (收益率形式, ΔB/B)
	ValueChange float64 // 价格变动 (金额)
	NewPrice    float64 // 变动后的价格
}

// YieldChange 估算收益率变动 delta 对价格的影响
//
// ByDuration:  ΔB = -B*D*Δy
// ByConvexity: ΔB = -B*D*Δy + 0.5*B*C*Δy²
func (b *Bond) YieldChange(delta float64, method YieldChangeMethod) (YieldChangeResult, error) {
	price, err := b.Price()
	if err != nil {
		return YieldChangeResult{}, err
	}
	duration, err := b.Duration()
	if err != nil {
		return YieldChangeResult{}, err
	}

	var change float64
	switch method {
	case ByDuration:
		change = -price * duration * delta
	case ByConvexity:
		convexity, err := b.Convexity()
		if err != nil {
			return YieldChangeResult{}, err
		}
		change = -price*duration*delta + 0.5*price*convexity*delta*delta
	default:
		return YieldChangeResult{}, ErrInvalidBond
	}

	return YieldChangeResult{
		Return:      change / price,
		ValueChange: change,
		NewPrice:    price + change,
	}, nil
}
