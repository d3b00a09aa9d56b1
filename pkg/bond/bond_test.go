// 文件: pkg/bond/bond_test.go
// 债券定价回归测试
// 参考场景: 面值1000、票面6%年付、5年期、无风险利率4%、市场价980

package bond

import (
	"errors"
	"math"
	"testing"
)

func refBond() *Bond {
	return &Bond{
		FaceValue:    1000,
		CouponRate:   0.06,
		Maturity:     5,
		Interval:     IntervalAnnual,
		RiskFreeRate: 0.04,
		MarketPrice:  980,
	}
}

func TestBond_Coupons(t *testing.T) {
	b := refBond()

	info, err := b.Coupons()
	if err != nil {
		t.Fatalf("coupons err: %v", err)
	}

	if info.Count != 5 {
		t.Fatalf("coupon count mismatch: got=%d", info.Count)
	}
	if !almostEqual(info.Amount, 60, 1e-12) {
		t.Fatalf("coupon amount mismatch: got=%v", info.Amount)
	}
	if !almostEqual(info.PresentValue, 266.5020, 1e-3) {
		t.Fatalf("coupon pv mismatch: got=%v", info.PresentValue)
	}
}

func TestBond_Price(t *testing.T) {
	b := refBond()

	price, err := b.Price()
	if err != nil {
		t.Fatalf("price err: %v", err)
	}
	// 266.5020 + 1000*e^{-0.2} = 1085.2328
	if !almostEqual(price, 1085.2328, 1e-3) {
		t.Fatalf("price mismatch: got=%v", price)
	}
}

func TestBond_MarketYTM(t *testing.T) {
	b := refBond()

	ytm, err := b.MarketYTM()
	if err != nil {
		t.Fatalf("ytm err: %v", err)
	}

	// 市场价 980 低于面值，收益率应高于票面利率
	if ytm < 0.05 || ytm > 0.08 {
		t.Fatalf("ytm out of expected range: got=%v", ytm)
	}

	// 反解出的收益率必须把市场价复原
	check := &Bond{
		FaceValue: 1000, CouponRate: 0.06, Maturity: 5,
		Interval: IntervalAnnual, YieldToMaturity: ytm,
	}
	price, err := check.Price()
	if err != nil {
		t.Fatalf("price err: %v", err)
	}
	if !almostEqual(price, 980, 1e-6) {
		t.Fatalf("ytm does not reproduce market price: got=%v", price)
	}
}

func TestBond_UseMarketYield(t *testing.T) {
	b := refBond()

	if err := b.UseMarketYield(); err != nil {
		t.Fatalf("use market yield err: %v", err)
	}

	price, err := b.Price()
	if err != nil {
		t.Fatalf("price err: %v", err)
	}
	if !almostEqual(price, 980, 1e-6) {
		t.Fatalf("price after market yield mismatch: got=%v", price)
	}
}

func TestBond_MarketYTM_NoMarketPrice(t *testing.T) {
	b := refBond()
	b.MarketPrice = 0

	_, err := b.MarketYTM()
	if !errors.Is(err, ErrNoMarketPrice) {
		t.Fatalf("expected ErrNoMarketPrice, got %v", err)
	}
	if err := b.UseMarketYield(); !errors.Is(err, ErrNoMarketPrice) {
		t.Fatalf("expected ErrNoMarketPrice, got %v", err)
	}
}

func TestBond_ZeroCouponDuration(t *testing.T) {
	// 零息债券: 久期等于期限, 凸度等于期限平方
	b := &Bond{
		FaceValue: 1000, CouponRate: 0, Maturity: 7,
		Interval: IntervalAnnual, RiskFreeRate: 0.05,
	}

	d, err := b.Duration()
	if err != nil {
		t.Fatalf("duration err: %v", err)
	}
	if !almostEqual(d, 7, 1e-9) {
		t.Fatalf("zero coupon duration mismatch: got=%v", d)
	}

	c, err := b.Convexity()
	if err != nil {
		t.Fatalf("convexity err: %v", err)
	}
	if !almostEqual(c, 49, 1e-9) {
		t.Fatalf("zero coupon convexity mismatch: got=%v", c)
	}
}

func TestBond_CouponDurationBelowMaturity(t *testing.T) {
	// 有票息时久期必须低于期限 (提前收到现金流)
	b := &Bond{
		FaceValue: 1000, CouponRate: 0.06, Maturity: 5,
		Interval: IntervalAnnual, RiskFreeRate: 0.04,
	}

	d, err := b.Duration()
	if err != nil {
		t.Fatalf("duration err: %v", err)
	}
	if d >= 5 || d <= 0 {
		t.Fatalf("duration out of range: got=%v", d)
	}
}

func TestBond_YieldChange(t *testing.T) {
	b := &Bond{
		FaceValue: 1000, CouponRate: 0.06, Maturity: 5,
		Interval: IntervalAnnual, YieldToMaturity: 0.05,
	}

	price, err := b.Price()
	if err != nil {
		t.Fatalf("price err: %v", err)
	}

	const delta = 0.01

	dur, err := b.YieldChange(delta, ByDuration)
	if err != nil {
		t.Fatalf("duration estimate err: %v", err)
	}
	conv, err := b.YieldChange(delta, ByConvexity)
	if err != nil {
		t.Fatalf("convexity estimate err: %v", err)
	}

	// 收益率上升价格下跌
	if dur.ValueChange >= 0 || conv.ValueChange >= 0 {
		t.Fatalf("price should fall on yield rise: dur=%v conv=%v", dur.ValueChange, conv.ValueChange)
	}
	if !almostEqual(dur.NewPrice, price+dur.ValueChange, 1e-9) {
		t.Fatalf("new price inconsistent: got=%v", dur.NewPrice)
	}

	// 和精确重定价比较: 二阶近似应该更准
	shocked := &Bond{
		FaceValue: 1000, CouponRate: 0.06, Maturity: 5,
		Interval: IntervalAnnual, YieldToMaturity: 0.06,
	}
	exact, err := shocked.Price()
	if err != nil {
		t.Fatalf("shocked price err: %v", err)
	}

	durErr := math.Abs(dur.NewPrice - exact)
	convErr := math.Abs(conv.NewPrice - exact)
	if convErr >= durErr {
		t.Fatalf("convexity estimate not better: convErr=%v durErr=%v", convErr, durErr)
	}
}

func TestBond_YieldChange_BadMethod(t *testing.T) {
	b := refBond()
	_, err := b.YieldChange(0.01, YieldChangeMethod(0))
	if !errors.Is(err, ErrInvalidBond) {
		t.Fatalf("expected ErrInvalidBond, got %v", err)
	}
}

func TestBond_InvalidParams(t *testing.T) {
	cases := []struct {
		name string
		b    Bond
	}{
		{"zero face", Bond{FaceValue: 0, Maturity: 5, Interval: IntervalAnnual}},
		{"zero maturity", Bond{FaceValue: 1000, Maturity: 0, Interval: IntervalAnnual}},
		{"negative coupon", Bond{FaceValue: 1000, CouponRate: -0.01, Maturity: 5, Interval: IntervalAnnual}},
		{"bad interval", Bond{FaceValue: 1000, Maturity: 5, Interval: CouponInterval(0)}},
	}

	for _, tc := range cases {
		_, err := tc.b.Price()
		if !errors.Is(err, ErrInvalidBond) {
			t.Fatalf("%s: expected ErrInvalidBond, got %v", tc.name, err)
		}
	}
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
