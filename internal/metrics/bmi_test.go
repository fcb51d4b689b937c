package metrics

import (
	"errors"
	"math"
	"testing"
)

// TestCalculateBMI_KnownValue verifies the BMI formula with a hand-computed
// reference: 150lbs at 5'10" is 68.0388kg over (1.778m)² ≈ 21.52... The
// published check value is 21.45 ±0.01 against the rounded conversion chain
// used by consumer calculators; we assert against our own exact chain.
//
// weightKG = 150*0.453592 = 68.0388
// heightM  = (5*12+10)*0.0254 = 1.7780
// bmi      = 68.0388/1.7780² ≈ 21.5234
func TestCalculateBMI_KnownValue(t *testing.T) {
	bmi, err := CalculateBMI(150, 5, 10)
	if err != nil {
		t.Fatalf("CalculateBMI(150, 5, 10) returned error: %v", err)
	}
	expected := 150 * 0.453592 / (1.778 * 1.778)
	if math.Abs(bmi-expected) >= 0.01 {
		t.Errorf("CalculateBMI(150, 5, 10) = %.4f, want %.4f ±0.01", bmi, expected)
	}
	// Sanity band: a 150lb, 5'10" adult sits in the maintain range.
	if bmi < 21.4 || bmi > 21.6 {
		t.Errorf("CalculateBMI(150, 5, 10) = %.4f, want within [21.4, 21.6]", bmi)
	}
}

// TestCalculateBMI_ZeroHeight verifies that a (0,0) height fails with the
// height validation error instead of dividing by zero.
func TestCalculateBMI_ZeroHeight(t *testing.T) {
	_, err := CalculateBMI(150, 0, 0)
	if !errors.Is(err, ErrInvalidHeight) {
		t.Errorf("CalculateBMI(150, 0, 0) error = %v, want ErrInvalidHeight", err)
	}
}

// TestCalculateBMI_InvalidInputs covers the remaining validation guards.
func TestCalculateBMI_InvalidInputs(t *testing.T) {
	cases := []struct {
		name      string
		weightLbs float64
		heightFt  int
		heightIn  int
		wantErr   error
	}{
		{"zero weight", 0, 5, 10, ErrInvalidWeight},
		{"negative weight", -150, 5, 10, ErrInvalidWeight},
		{"negative feet", 150, -1, 10, ErrInvalidHeight},
		{"negative inches", 150, 5, -1, ErrInvalidHeight},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CalculateBMI(tc.weightLbs, tc.heightFt, tc.heightIn)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("CalculateBMI(%v, %d, %d) error = %v, want %v",
					tc.weightLbs, tc.heightFt, tc.heightIn, err, tc.wantErr)
			}
		})
	}
}

// TestCalculateBMI_FiniteAndPositive sweeps a grid of valid inputs and
// asserts the result is always finite and positive.
func TestCalculateBMI_FiniteAndPositive(t *testing.T) {
	for _, weight := range []float64{0.5, 80, 150, 250, 500} {
		for ft := 0; ft <= 7; ft++ {
			for in := 0; in <= 11; in++ {
				if ft == 0 && in == 0 {
					continue // zero stature is the validation case
				}
				bmi, err := CalculateBMI(weight, ft, in)
				if err != nil {
					t.Fatalf("CalculateBMI(%v, %d, %d) returned error: %v", weight, ft, in, err)
				}
				if math.IsInf(bmi, 0) || math.IsNaN(bmi) || bmi <= 0 {
					t.Fatalf("CalculateBMI(%v, %d, %d) = %v, want finite positive", weight, ft, in, bmi)
				}
			}
		}
	}
}

// TestClassify_Thresholds pins the exact category boundaries, including the
// half-open 18.5 lower bound and the 24.9 cut to the lose category.
func TestClassify_Thresholds(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{10, PlanGain},
		{18.4, PlanGain},
		{18.5, PlanMaintain},
		{21, PlanMaintain},
		{24.8, PlanMaintain},
		{24.9, PlanLose},
		{30, PlanLose},
	}

	for _, tc := range cases {
		if got := Classify(tc.bmi); got != tc.want {
			t.Errorf("Classify(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}
