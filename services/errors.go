package services

import "errors"

// Sentinel errors surfaced by the services layer. Controllers map these to
// HTTP statuses with errors.Is; anything else is an opaque store failure.
var (
	ErrHotelNotFound       = errors.New("hotel not found")
	ErrRoomTypeNotFound    = errors.New("room type not found")
	ErrAdjustmentNotFound  = errors.New("rate adjustment not found")
	ErrDuplicateAdjustment = errors.New("rate adjustment already exists for this room type and effective date")
)
