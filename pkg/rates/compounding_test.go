// 文件: pkg/rates/compounding_test.go

package rates

import (
	"errors"
	"math"
	"testing"
)

func TestEquivalent_YearlyToQuarterly(t *testing.T) {
	// 年利率 5% 换算成季度计息: 4*((1.05)^(1/4)-1) ≈ 0.049089
	got, err := Equivalent(0.05, Yearly, Quarterly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 4 * (math.Pow(1.05, 0.25) - 1)
	if !almostEqual(got, want, 1e-12) {
		t.Fatalf("mismatch: got=%v want=%v", got, want)
	}
	if !almostEqual(got, 0.0490889, 1e-6) {
		t.Fatalf("reference mismatch: got=%v", got)
	}
}

func TestEquivalent_ToContinuous(t *testing.T) {
	// 半年计息 10% 的连续复利等价: 2*ln(1.05) ≈ 0.097580
	got, err := Equivalent(0.10, SemiAnnual, Continuous)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(got, 2*math.Log(1.05), 1e-12) {
		t.Fatalf("mismatch: got=%v", got)
	}
}

func TestEquivalent_FromContinuous(t *testing.T) {
	// 连续复利 r 对应的月计息利率: 12*(e^{r/12}-1)
	got, err := Equivalent(0.06, Continuous, Monthly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 12 * (math.Exp(0.06/12) - 1)
	if !almostEqual(got, want, 1e-12) {
		t.Fatalf("mismatch: got=%v want=%v", got, want)
	}
}

func TestEquivalent_RoundTrip(t *testing.T) {
	// 往返换算应回到原值
	freqs := []Frequency{Yearly, SemiAnnual, Quarterly, Monthly, Continuous}
	for _, from := range freqs {
		for _, to := range freqs {
			mid, err := Equivalent(0.07, from, to)
			if err != nil {
				t.Fatalf("%v->%v err: %v", from, to, err)
			}
			back, err := Equivalent(mid, to, from)
			if err != nil {
				t.Fatalf("%v->%v back err: %v", to, from, err)
			}
			if !almostEqual(back, 0.07, 1e-12) {
				t.Fatalf("%v->%v round trip mismatch: got=%v", from, to, back)
			}
		}
	}
}

func TestEquivalent_SameFrequencyIdentity(t *testing.T) {
	got, err := Equivalent(0.05, Monthly, Monthly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(got, 0.05, 1e-12) {
		t.Fatalf("identity mismatch: got=%v", got)
	}
}

func TestEquivalent_UnknownFrequency(t *testing.T) {
	_, err := Equivalent(0.05, Frequency(99), Yearly)
	if !errors.Is(err, ErrUnknownFrequency) {
		t.Fatalf("expected ErrUnknownFrequency, got %v", err)
	}
	_, err = Equivalent(0.05, Yearly, Frequency(0))
	if !errors.Is(err, ErrUnknownFrequency) {
		t.Fatalf("expected ErrUnknownFrequency, got %v", err)
	}
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
