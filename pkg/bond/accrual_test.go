// 文件: pkg/bond/accrual_test.go
// 应计利息测试
// 场景来自教科书: 付息日 3月1日 / 9月1日, 结算日 7月3日, 单期票息 4

package bond

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAccruedInterest_Treasury(t *testing.T) {
	// ACT/ACT: 3月1日到7月3日实际 124 天, 周期实际 184 天
	// 应计 = 4 * 124/184 ≈ 2.6957
	prev := date(2024, time.March, 1)
	settle := date(2024, time.July, 3)
	next := date(2024, time.September, 1)

	got, err := AccruedInterest(4, prev, settle, next, ActualActual)
	if err != nil {
		t.Fatalf("accrued err: %v", err)
	}
	if !almostEqual(got, 4.0*124/184, 1e-12) {
		t.Fatalf("accrued mismatch: got=%v", got)
	}
	if !almostEqual(got, 2.6957, 1e-4) {
		t.Fatalf("reference mismatch: got=%v", got)
	}
}

func TestAccruedInterest_Corporate(t *testing.T) {
	// 30/360: 3月1日到7月3日按 122 天, 周期按 180 天
	// 应计 = 4 * 122/180 ≈ 2.7111
	prev := date(2024, time.March, 1)
	settle := date(2024, time.July, 3)
	next := date(2024, time.September, 1)

	got, err := AccruedInterest(4, prev, settle, next, Thirty360)
	if err != nil {
		t.Fatalf("accrued err: %v", err)
	}
	if !almostEqual(got, 4.0*122/180, 1e-12) {
		t.Fatalf("accrued mismatch: got=%v", got)
	}
	if !almostEqual(got, 2.7111, 1e-4) {
		t.Fatalf("reference mismatch: got=%v", got)
	}
}

func TestAccruedInterest_Boundaries(t *testing.T) {
	prev := date(2024, time.March, 1)
	next := date(2024, time.September, 1)

	// 付息日当天应计为零
	got, err := AccruedInterest(4, prev, prev, next, ActualActual)
	if err != nil {
		t.Fatalf("accrued err: %v", err)
	}
	if got != 0 {
		t.Fatalf("accrued at coupon date should be 0: got=%v", got)
	}

	// 下一付息日当天应计等于整期票息
	got, err = AccruedInterest(4, prev, next, next, ActualActual)
	if err != nil {
		t.Fatalf("accrued err: %v", err)
	}
	if !almostEqual(got, 4, 1e-12) {
		t.Fatalf("full period accrued mismatch: got=%v", got)
	}

	// 结算日在周期外
	_, err = AccruedInterest(4, prev, date(2024, time.October, 1), next, ActualActual)
	if !errors.Is(err, ErrInvalidDayCount) {
		t.Fatalf("expected ErrInvalidDayCount, got %v", err)
	}
}

func TestYearFraction(t *testing.T) {
	start := date(2024, time.January, 1)
	end := date(2024, time.July, 1)

	// 2024年上半年实际 182 天 (闰年)
	act360, err := YearFraction(start, end, Actual360)
	if err != nil {
		t.Fatalf("act/360 err: %v", err)
	}
	if !almostEqual(act360, 182.0/360, 1e-12) {
		t.Fatalf("act/360 mismatch: got=%v", act360)
	}

	act365, err := YearFraction(start, end, Actual365F)
	if err != nil {
		t.Fatalf("act/365f err: %v", err)
	}
	if !almostEqual(act365, 182.0/365, 1e-12) {
		t.Fatalf("act/365f mismatch: got=%v", act365)
	}

	thirty, err := YearFraction(start, end, Thirty360)
	if err != nil {
		t.Fatalf("30/360 err: %v", err)
	}
	if !almostEqual(thirty, 0.5, 1e-12) {
		t.Fatalf("30/360 mismatch: got=%v", thirty)
	}

	// ACT/ACT 没有固定年分母
	_, err = YearFraction(start, end, ActualActual)
	if !errors.Is(err, ErrInvalidDayCount) {
		t.Fatalf("expected ErrInvalidDayCount for ACT/ACT, got %v", err)
	}
}
