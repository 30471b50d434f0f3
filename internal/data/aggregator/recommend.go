package aggregator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hydralog/go-water-monitor/internal/core/constants"
	"github.com/hydralog/go-water-monitor/internal/core/model"
)

var activityMultipliers = map[string]float64{
	constants.ActivitySedentary: 1.0,
	constants.ActivityModerate:  1.15,
	constants.ActivityActive:    1.3,
}

var climateAdditions = map[string]float64{
	constants.ClimateCold:      0,
	constants.ClimateTemperate: 200,
	constants.ClimateHot:       500,
}

// RecommendedDailyAmount computes a daily intake recommendation in whole
// milliliters: weight*33*activityMultiplier + climateAddition, truncated.
// Unrecognized activity defaults to sedentary, unrecognized climate to
// temperate.
func RecommendedDailyAmount(weightKg float64, activityLevel, climate string) int {
	multiplier, ok := activityMultipliers[strings.ToLower(activityLevel)]
	if !ok {
		multiplier = 1.0
	}
	addition, ok := climateAdditions[strings.ToLower(climate)]
	if !ok {
		addition = 200
	}
	return int(weightKg*constants.MlPerKgFactor*multiplier + addition)
}

// ReminderTimes builds an evenly spaced schedule of HH:MM reminder times
// from wake (inclusive) up to but excluding sleep. A sleep time at or
// before wake yields an empty schedule.
func ReminderTimes(wake, sleep string, intervalHours int) ([]string, error) {
	wakeMin, err := parseClock("wake_time", wake)
	if err != nil {
		return nil, err
	}
	sleepMin, err := parseClock("sleep_time", sleep)
	if err != nil {
		return nil, err
	}
	if intervalHours <= 0 {
		return nil, &model.ValidationError{
			Field:  "interval",
			Value:  fmt.Sprintf("%d", intervalHours),
			Reason: "must be a positive number of hours",
		}
	}

	var times []string
	for current := wakeMin; current < sleepMin; current += intervalHours * 60 {
		times = append(times, fmt.Sprintf("%02d:%02d", current/60, current%60))
	}
	return times, nil
}

// parseClock parses "HH:MM" into minutes since midnight
func parseClock(field, value string) (int, error) {
	invalid := &model.ValidationError{Field: field, Value: value, Reason: "want HH:MM"}

	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, invalid
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, invalid
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, invalid
	}
	return hour*60 + minute, nil
}
