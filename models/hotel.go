package models

import "time"

type Hotel struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:255;index" json:"name"`
	Location    string  `gorm:"size:255" json:"location"`
	Description string  `gorm:"type:text" json:"description"`
	Rating      float64 `json:"rating"`
	ImageURL    string  `gorm:"size:512" json:"imageUrl"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// One-To-Many Relation: Hotel -> RoomTypes (deleting a hotel removes its room types)
	RoomTypes []RoomType `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"roomTypes,omitempty"`
}
