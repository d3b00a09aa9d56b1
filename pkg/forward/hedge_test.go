// 文件: pkg/forward/hedge_test.go
// 对冲比例测试
// 参考场景: 头寸1000, 合约规模100, 相关系数0.8, 现货波动0.2, 期货波动0.15

package forward

import (
	"errors"
	"testing"
)

func TestMinVarianceHedge_Reference(t *testing.T) {
	plan, err := MinVarianceHedge(0.8, 0.2, 0.15, 1000, 100)
	if err != nil {
		t.Fatalf("hedge err: %v", err)
	}

	// h = 0.8 * 0.2/0.15 ≈ 1.0667
	if !almostEqual(plan.Ratio, 0.8*0.2/0.15, 1e-12) {
		t.Fatalf("ratio mismatch: got=%v", plan.Ratio)
	}
	if !almostEqual(plan.Ratio, 1.0667, 1e-4) {
		t.Fatalf("ratio reference mismatch: got=%v", plan.Ratio)
	}

	// N = h * 1000/100 ≈ 10.667
	if !almostEqual(plan.Contracts, plan.Ratio*10, 1e-12) {
		t.Fatalf("contracts mismatch: got=%v", plan.Contracts)
	}
}

func TestMinVarianceHedge_PerfectCorrelationSameVol(t *testing.T) {
	// 完全相关且波动相同: 一比一对冲
	plan, err := MinVarianceHedge(1, 0.2, 0.2, 500, 50)
	if err != nil {
		t.Fatalf("hedge err: %v", err)
	}
	if plan.Ratio != 1 {
		t.Fatalf("ratio should be 1: got=%v", plan.Ratio)
	}
	if plan.Contracts != 10 {
		t.Fatalf("contracts should be 10: got=%v", plan.Contracts)
	}
}

func TestMinVarianceHedge_InvalidInputs(t *testing.T) {
	cases := []struct {
		name                   string
		corr, sStd, fStd, p, c float64
	}{
		{"correlation above 1", 1.5, 0.2, 0.15, 1000, 100},
		{"zero spot std", 0.8, 0, 0.15, 1000, 100},
		{"zero futures std", 0.8, 0.2, 0, 1000, 100},
		{"zero position", 0.8, 0.2, 0.15, 0, 100},
		{"zero contract size", 0.8, 0.2, 0.15, 1000, 0},
	}

	for _, tc := range cases {
		_, err := MinVarianceHedge(tc.corr, tc.sStd, tc.fStd, tc.p, tc.c)
		if !errors.Is(err, ErrInvalidInputs) {
			t.Fatalf("%s: expected ErrInvalidInputs, got %v", tc.name, err)
		}
	}
}

func TestIndexHedgeContracts(t *testing.T) {
	// beta=1.2, 组合500万, 单张合约25万: N = 1.2*20 = 24
	got, err := IndexHedgeContracts(1.2, 5_000_000, 250_000)
	if err != nil {
		t.Fatalf("hedge err: %v", err)
	}
	if !almostEqual(got, 24, 1e-12) {
		t.Fatalf("contracts mismatch: got=%v", got)
	}

	if _, err := IndexHedgeContracts(1.2, 0, 250_000); !errors.Is(err, ErrInvalidInputs) {
		t.Fatalf("expected ErrInvalidInputs, got %v", err)
	}
}
