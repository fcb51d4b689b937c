package usecase

import (
	"context"
	"errors"
	"math"
	"os"
	"strings"
	"testing"

	"nutritional-planner/internal/delivery/dto"
	"nutritional-planner/internal/metrics"
)

func createTestProfile(t *testing.T, profiles ProfileUsecase, name string) {
	t.Helper()
	if _, err := profiles.CreateProfile(context.Background(), &dto.CreateProfileRequest{Name: name}); err != nil {
		t.Fatalf("CreateProfile(%q) returned error: %v", name, err)
	}
}

func TestSubmit_UnknownProfile(t *testing.T) {
	_, measurements := newTestEnv(t)

	req := &dto.SubmitMeasurementRequest{WeightLbs: 150, HeightFt: 5, HeightIn: 10}
	_, err := measurements.Submit(context.Background(), "nonexistent", req)
	if !errors.Is(err, ErrUnknownProfile) {
		t.Errorf("Submit error = %v, want ErrUnknownProfile", err)
	}
}

// TestSubmit_ZeroHeightRejectedBeforeStore verifies a (0,0) height fails
// validation and commits nothing.
func TestSubmit_ZeroHeightRejectedBeforeStore(t *testing.T) {
	profiles, measurements := newTestEnv(t)
	ctx := context.Background()
	createTestProfile(t, profiles, "Alex")

	req := &dto.SubmitMeasurementRequest{WeightLbs: 150, HeightFt: 0, HeightIn: 0}
	_, err := measurements.Submit(ctx, "Alex", req)
	if !errors.Is(err, metrics.ErrInvalidHeight) {
		t.Fatalf("Submit error = %v, want metrics.ErrInvalidHeight", err)
	}

	history, err := measurements.History(ctx, "Alex")
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if len(history.Points) != 0 {
		t.Errorf("history has %d points after rejected submit, want 0", len(history.Points))
	}
}

func TestSubmit_InvalidVocabulary(t *testing.T) {
	profiles, measurements := newTestEnv(t)
	ctx := context.Background()
	createTestProfile(t, profiles, "Alex")

	cases := []struct {
		name    string
		req     dto.SubmitMeasurementRequest
		wantErr error
	}{
		{"bad activity level", dto.SubmitMeasurementRequest{WeightLbs: 150, HeightFt: 5, HeightIn: 10, ActivityLevel: "Extreme"}, ErrInvalidActivityLevel},
		{"bad dietary preference", dto.SubmitMeasurementRequest{WeightLbs: 150, HeightFt: 5, HeightIn: 10, DietaryPreferences: "Carnivore"}, ErrInvalidDietaryPreference},
		{"bad allergy", dto.SubmitMeasurementRequest{WeightLbs: 150, HeightFt: 5, HeightIn: 10, Allergies: "Shellfish"}, ErrInvalidAllergy},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := measurements.Submit(ctx, "Alex", &tc.req)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Submit error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

// TestSubmit_RoundTripBMI verifies the stored BMI matches an independent
// Metrics Engine call on the same inputs, both in the submit response and
// when read back through History.
func TestSubmit_RoundTripBMI(t *testing.T) {
	profiles, measurements := newTestEnv(t)
	ctx := context.Background()
	createTestProfile(t, profiles, "Alex")

	req := &dto.SubmitMeasurementRequest{
		WeightLbs:          150,
		HeightFt:           5,
		HeightIn:           10,
		Goals:              "feel better",
		ActivityLevel:      "Moderate",
		DietaryPreferences: "Vegetarian",
		Allergies:          "None",
	}

	record, err := measurements.Submit(ctx, "Alex", req)
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	expected, err := metrics.CalculateBMI(150, 5, 10)
	if err != nil {
		t.Fatalf("CalculateBMI returned error: %v", err)
	}
	if math.Abs(record.BMI-expected) > 1e-9 {
		t.Errorf("stored BMI = %v, want %v", record.BMI, expected)
	}

	history, err := measurements.History(ctx, "Alex")
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if len(history.Points) != 1 {
		t.Fatalf("history has %d points, want 1", len(history.Points))
	}
	if math.Abs(history.Points[0].BMI-expected) > 1e-9 {
		t.Errorf("history BMI = %v, want %v", history.Points[0].BMI, expected)
	}
}

// TestSubmit_PlanTextAndArtifacts verifies the stored plan opens with the
// classification for the submitted BMI and that the QR and BMI chart
// artifacts were written.
func TestSubmit_PlanTextAndArtifacts(t *testing.T) {
	profiles, measurements := newTestEnv(t)
	ctx := context.Background()
	createTestProfile(t, profiles, "Alex")

	req := &dto.SubmitMeasurementRequest{WeightLbs: 250, HeightFt: 5, HeightIn: 5, ActivityLevel: "Sedentary"}
	record, err := measurements.Submit(ctx, "Alex", req)
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if !strings.HasPrefix(record.Plan, metrics.PlanLose) {
		t.Errorf("plan text = %q, want prefix %q", record.Plan, metrics.PlanLose)
	}

	for _, path := range []string{record.QRCodePath, record.BMIChartPath} {
		if path == "" {
			t.Fatal("expected artifact path on the submit response, got empty")
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("artifact %q not written: %v", path, err)
		}
	}
}

func TestHistory_UnknownProfile(t *testing.T) {
	_, measurements := newTestEnv(t)

	_, err := measurements.History(context.Background(), "nonexistent")
	if !errors.Is(err, ErrUnknownProfile) {
		t.Errorf("History error = %v, want ErrUnknownProfile", err)
	}
}

// TestHistory_EmptyForNewProfile verifies a known profile with no records
// yields an empty sequence, not an error.
func TestHistory_EmptyForNewProfile(t *testing.T) {
	profiles, measurements := newTestEnv(t)
	ctx := context.Background()
	createTestProfile(t, profiles, "Alex")

	history, err := measurements.History(ctx, "Alex")
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if history.Points == nil {
		t.Error("history points should be an empty slice, got nil")
	}
	if len(history.Points) != 0 {
		t.Errorf("history has %d points, want 0", len(history.Points))
	}
}

// TestHistory_InsertionOrder verifies three submissions come back in exactly
// the order they were made, with non-decreasing timestamps, and that the
// progress chart is rendered once a trend exists.
func TestHistory_InsertionOrder(t *testing.T) {
	profiles, measurements := newTestEnv(t)
	ctx := context.Background()
	createTestProfile(t, profiles, "Alex")

	weights := []float64{220, 210, 205}
	wantBMIs := make([]float64, len(weights))
	for i, weight := range weights {
		req := &dto.SubmitMeasurementRequest{WeightLbs: weight, HeightFt: 5, HeightIn: 10}
		if _, err := measurements.Submit(ctx, "Alex", req); err != nil {
			t.Fatalf("Submit(weight=%v) returned error: %v", weight, err)
		}
		wantBMIs[i], _ = metrics.CalculateBMI(weight, 5, 10)
	}

	history, err := measurements.History(ctx, "Alex")
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if len(history.Points) != len(weights) {
		t.Fatalf("history has %d points, want %d", len(history.Points), len(weights))
	}

	for i, point := range history.Points {
		if math.Abs(point.BMI-wantBMIs[i]) > 1e-9 {
			t.Errorf("point %d BMI = %v, want %v", i, point.BMI, wantBMIs[i])
		}
		if i > 0 && point.Timestamp.Before(history.Points[i-1].Timestamp) {
			t.Errorf("point %d timestamp %v precedes point %d timestamp %v",
				i, point.Timestamp, i-1, history.Points[i-1].Timestamp)
		}
	}

	if history.ProgressChartPath == "" {
		t.Fatal("expected progress chart path for a multi-point history")
	}
	if _, err := os.Stat(history.ProgressChartPath); err != nil {
		t.Errorf("progress chart %q not written: %v", history.ProgressChartPath, err)
	}
}
