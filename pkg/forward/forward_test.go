// 文件: pkg/forward/forward_test.go

package forward

import (
	"errors"
	"math"
	"testing"
)

func TestPrice_Reference(t *testing.T) {
	// S=100, r=3%, T=1年: F = 100*e^{0.03} ≈ 103.05
	got, err := Price(100, 0.03, 1)
	if err != nil {
		t.Fatalf("price err: %v", err)
	}
	if !almostEqual(got, 100*math.Exp(0.03), 1e-12) {
		t.Fatalf("forward mismatch: got=%v", got)
	}
	if !almostEqual(got, 103.0455, 1e-3) {
		t.Fatalf("reference mismatch: got=%v", got)
	}
}

func TestPrice_ZeroMaturity(t *testing.T) {
	// 交割就在当下: 远期价格 = 现货价格
	got, err := Price(100, 0.05, 0)
	if err != nil {
		t.Fatalf("price err: %v", err)
	}
	if got != 100 {
		t.Fatalf("spot mismatch: got=%v", got)
	}
}

func TestPriceWithIncome(t *testing.T) {
	// 有收益的标的: 收益现值直接从现货里扣除
	// (100 - 5) * e^{0.05*0.5}
	got, err := PriceWithIncome(100, 5, 0.05, 0.5)
	if err != nil {
		t.Fatalf("price err: %v", err)
	}
	want := 95 * math.Exp(0.025)
	if !almostEqual(got, want, 1e-12) {
		t.Fatalf("mismatch: got=%v want=%v", got, want)
	}

	// 收益现值不能超过现货价
	if _, err := PriceWithIncome(100, 100, 0.05, 0.5); !errors.Is(err, ErrInvalidInputs) {
		t.Fatalf("expected ErrInvalidInputs, got %v", err)
	}
}

func TestPriceWithYield(t *testing.T) {
	// 收益率等于无风险利率时远期价格等于现货
	got, err := PriceWithYield(100, 0.05, 0.05, 2)
	if err != nil {
		t.Fatalf("price err: %v", err)
	}
	if !almostEqual(got, 100, 1e-12) {
		t.Fatalf("mismatch: got=%v", got)
	}
}

func TestValueLong(t *testing.T) {
	// 新签合约 (交割价 = 当前远期价) 价值为零
	got, err := ValueLong(103, 103, 0.05, 1)
	if err != nil {
		t.Fatalf("value err: %v", err)
	}
	if got != 0 {
		t.Fatalf("new contract should be worthless: got=%v", got)
	}

	// 远期价涨过交割价后多头价值为正
	got, err = ValueLong(110, 103, 0.05, 1)
	if err != nil {
		t.Fatalf("value err: %v", err)
	}
	want := 7 * math.Exp(-0.05)
	if !almostEqual(got, want, 1e-12) {
		t.Fatalf("mismatch: got=%v want=%v", got, want)
	}
}

func TestPrice_InvalidInputs(t *testing.T) {
	if _, err := Price(0, 0.05, 1); !errors.Is(err, ErrInvalidInputs) {
		t.Fatalf("expected ErrInvalidInputs for zero spot, got %v", err)
	}
	if _, err := Price(100, 0.05, -1); !errors.Is(err, ErrInvalidInputs) {
		t.Fatalf("expected ErrInvalidInputs for negative maturity, got %v", err)
	}
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
