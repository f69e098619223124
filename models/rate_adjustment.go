package models

import "time"

// RateAdjustment is a dated delta on a room type's base price. It applies from
// its effective date onward until a later adjustment supersedes it.
//
// The composite unique index uq_rate_adjustment_room_date is what keeps the
// adjustment set unambiguous: at most one adjustment per room type per date,
// enforced by the database at commit time.
type RateAdjustment struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	RoomTypeID uint `gorm:"index;uniqueIndex:uq_rate_adjustment_room_date" json:"room_type_id"`

	// May be negative (a discount).
	AdjustmentAmount float64   `gorm:"column:adjustment_amount" json:"adjustment_amount"`
	EffectiveDate    time.Time `gorm:"type:date;index;uniqueIndex:uq_rate_adjustment_room_date" json:"effective_date"`
	Reason           *string   `gorm:"size:255" json:"reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
