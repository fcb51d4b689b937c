package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FormSnapshot is the flat-file exchange format consumed and produced by the
// save/load dialogs: one line of seven comma-joined fields in fixed order.
// Embedded commas are not supported; ParseFormSnapshot rejects lines with the
// wrong field count rather than guessing.
type FormSnapshot struct {
	WeightLbs          float64
	HeightFt           int
	HeightIn           int
	Goals              string
	ActivityLevel      string
	DietaryPreferences string
	Allergies          string
}

const snapshotFieldCount = 7

var ErrMalformedSnapshot = errors.New("malformed form snapshot")

// String encodes the snapshot as the 7-field comma-joined line:
// weight,height_ft,height_in,goals,activity_level,dietary_preferences,allergies
func (s FormSnapshot) String() string {
	return fmt.Sprintf("%g,%d,%d,%s,%s,%s,%s",
		s.WeightLbs, s.HeightFt, s.HeightIn,
		s.Goals, s.ActivityLevel, s.DietaryPreferences, s.Allergies)
}

// ParseFormSnapshot decodes a flat-file line back into a FormSnapshot.
func ParseFormSnapshot(line string) (*FormSnapshot, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != snapshotFieldCount {
		return nil, fmt.Errorf("%w: expected %d fields, got %d",
			ErrMalformedSnapshot, snapshotFieldCount, len(fields))
	}

	weight, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid weight %q", ErrMalformedSnapshot, fields[0])
	}
	heightFt, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid height feet %q", ErrMalformedSnapshot, fields[1])
	}
	heightIn, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid height inches %q", ErrMalformedSnapshot, fields[2])
	}

	return &FormSnapshot{
		WeightLbs:          weight,
		HeightFt:           heightFt,
		HeightIn:           heightIn,
		Goals:              fields[3],
		ActivityLevel:      fields[4],
		DietaryPreferences: fields[5],
		Allergies:          fields[6],
	}, nil
}
