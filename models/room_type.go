package models

import (
	"time"

	"gorm.io/datatypes"
)

// RoomType Struct (single definition in the project)
type RoomType struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HotelID uint `gorm:"index" json:"hotelId"`

	Name        string  `gorm:"size:255" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	BasePrice   float64 `gorm:"column:base_price" json:"basePrice"`
	Capacity    uint    `json:"capacity"`

	// Free-form amenity list, stored as a JSON column (e.g. ["WiFi","Minibar"])
	Amenities datatypes.JSON `json:"amenities,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// One-To-Many Relation: RoomType -> RateAdjustments (cascade on delete)
	RateAdjustments []RateAdjustment `gorm:"foreignKey:RoomTypeID;constraint:OnDelete:CASCADE" json:"-"`
}
