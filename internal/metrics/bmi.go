// Package metrics holds the pure anthropometric computations: BMI from
// imperial weight and height, and the weight-management classification.
package metrics

import "errors"

var (
	ErrInvalidWeight = errors.New("weight must be a positive number")
	ErrInvalidHeight = errors.New("height must be greater than zero")
)

// Unit conversion factors
const (
	lbsToKg       = 0.453592
	inchesToM     = 0.0254
	inchesPerFoot = 12
)

// Plan categories assigned by Classify.
const (
	PlanGain     = "Gain weight plan"
	PlanMaintain = "Maintain weight plan"
	PlanLose     = "Lose weight plan"
)

// CalculateBMI computes BMI from weight in pounds and height in feet and
// inches. Zero or negative stature is rejected before the division so a
// (0,0) height surfaces as a validation error, never as Inf.
func CalculateBMI(weightLbs float64, heightFt, heightIn int) (float64, error) {
	if weightLbs <= 0 {
		return 0, ErrInvalidWeight
	}
	if heightFt < 0 || heightIn < 0 {
		return 0, ErrInvalidHeight
	}

	heightM := float64(heightFt*inchesPerFoot+heightIn) * inchesToM
	if heightM <= 0 {
		return 0, ErrInvalidHeight
	}

	weightKg := weightLbs * lbsToKg
	return weightKg / (heightM * heightM), nil
}

// Classify maps a BMI value onto a weight-management category. The 24.9
// upper bound for the maintain band is intentional: anything at or above
// 24.9 falls to the lose category.
func Classify(bmi float64) string {
	switch {
	case bmi < 18.5:
		return PlanGain
	case bmi < 24.9:
		return PlanMaintain
	default:
		return PlanLose
	}
}
