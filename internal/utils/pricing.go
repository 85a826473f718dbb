package utils

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// PlatformFee is the flat surcharge added to every booking, in whole currency units.
const PlatformFee int64 = 9

const day = 24 * time.Hour

// DateLayout is the calendar date format accepted for booking dates.
const DateLayout = "2006-01-02"

// RentalCostBreakdown provides detailed cost breakdown
type RentalCostBreakdown struct {
	Days        int64 `json:"days"`
	DailyRate   int64 `json:"daily_rate"`
	Subtotal    int64 `json:"subtotal"`
	PlatformFee int64 `json:"platform_fee"`
	Total       int64 `json:"total"`
}

// CalculateRentalDays returns the number of billable days between start and
// end. Partial days round up; an empty or inverted range is an error.
func CalculateRentalDays(start, end time.Time) (int64, error) {
	if !end.After(start) {
		return 0, fmt.Errorf("end date must be after start date")
	}
	return int64(math.Ceil(float64(end.Sub(start)) / float64(day))), nil
}

// CalculateCostBreakdown computes days * pricePerDay + PlatformFee.
func CalculateCostBreakdown(start, end time.Time, pricePerDay int64) (RentalCostBreakdown, error) {
	if pricePerDay <= 0 {
		return RentalCostBreakdown{}, fmt.Errorf("price per day must be positive")
	}
	days, err := CalculateRentalDays(start, end)
	if err != nil {
		return RentalCostBreakdown{}, err
	}
	subtotal := days * pricePerDay
	return RentalCostBreakdown{
		Days:        days,
		DailyRate:   pricePerDay,
		Subtotal:    subtotal,
		PlatformFee: PlatformFee,
		Total:       subtotal + PlatformFee,
	}, nil
}

// CalculateTotalCost returns only the total of CalculateCostBreakdown.
func CalculateTotalCost(start, end time.Time, pricePerDay int64) (int64, error) {
	b, err := CalculateCostBreakdown(start, end, pricePerDay)
	if err != nil {
		return 0, err
	}
	return b.Total, nil
}

// ParseBookingTime accepts either a calendar date (yyyy-mm-dd, midnight UTC)
// or an RFC 3339 timestamp.
func ParseBookingTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	if t, err := time.ParseInLocation(DateLayout, s, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd or RFC 3339: %q", s)
	}
	return t.UTC(), nil
}
