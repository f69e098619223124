package services

import (
	"time"

	"hotel-platform/models"
)

// NormalizeDate strips the time-of-day component so adjustments compare as
// calendar dates regardless of how the driver hydrated the time.Time.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EffectivePrice returns the price a room type sells at on referenceDate.
//
// Adjustments dated after referenceDate are ignored; among the remaining ones
// the latest wins (an adjustment dated exactly referenceDate is already in
// effect). Amounts are never summed. With no applicable adjustment the base
// price is returned unchanged.
//
// The result is not clamped: a large negative adjustment may drive it below
// zero, and callers that need a floor must apply one themselves.
//
// Pure function. The reference date is an explicit parameter on purpose —
// resolution must never read the wall clock itself.
func EffectivePrice(basePrice float64, adjustments []models.RateAdjustment, referenceDate time.Time) float64 {
	ref := NormalizeDate(referenceDate)

	var selected *models.RateAdjustment
	for i := range adjustments {
		d := NormalizeDate(adjustments[i].EffectiveDate)
		if d.After(ref) {
			continue
		}
		if selected == nil || d.After(NormalizeDate(selected.EffectiveDate)) {
			selected = &adjustments[i]
		}
	}

	if selected == nil {
		return basePrice
	}
	return basePrice + selected.AdjustmentAmount
}
