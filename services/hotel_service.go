package services

import (
	"errors"

	"hotel-platform/models"

	"gorm.io/gorm"
)

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

func (s *HotelService) GetAll() ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := s.DB.Find(&hotels).Error
	return hotels, err
}

func (s *HotelService) GetByID(id uint) (models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return hotel, ErrHotelNotFound
		}
		return hotel, err
	}
	return hotel, nil
}

func (s *HotelService) Create(hotel *models.Hotel) error {
	return s.DB.Create(hotel).Error
}

func (s *HotelService) Update(id uint, updates map[string]interface{}) (models.Hotel, error) {
	hotel, err := s.GetByID(id)
	if err != nil {
		return hotel, err
	}

	// protect key fields from client payloads
	delete(updates, "id")
	delete(updates, "created_at")
	delete(updates, "updated_at")

	if err := s.DB.Model(&hotel).Updates(updates).Error; err != nil {
		return hotel, err
	}
	return s.GetByID(id)
}

// ----------------------------------------------------
// Delete — cascade in one transaction:
// rate_adjustments -> room_types -> hotel
// ----------------------------------------------------
func (s *HotelService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var roomTypeIDs []uint
		if err := tx.Model(&models.RoomType{}).Where("hotel_id = ?", id).Pluck("id", &roomTypeIDs).Error; err != nil {
			return err
		}
		if len(roomTypeIDs) > 0 {
			if err := tx.Where("room_type_id IN ?", roomTypeIDs).Delete(&models.RateAdjustment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("hotel_id = ?", id).Delete(&models.RoomType{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Hotel{}, id).Error
	})
}

func (s *HotelService) CreateRoomType(hotelID uint, rt *models.RoomType) error {
	if _, err := s.GetByID(hotelID); err != nil {
		return err
	}
	rt.HotelID = hotelID
	return s.DB.Create(rt).Error
}

func (s *HotelService) GetRoomTypes(hotelID uint) ([]models.RoomType, error) {
	if _, err := s.GetByID(hotelID); err != nil {
		return nil, err
	}
	var types []models.RoomType
	err := s.DB.Where("hotel_id = ?", hotelID).Find(&types).Error
	return types, err
}

func (s *HotelService) GetRoomType(id uint) (models.RoomType, error) {
	var rt models.RoomType
	if err := s.DB.First(&rt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rt, ErrRoomTypeNotFound
		}
		return rt, err
	}
	return rt, nil
}

func (s *HotelService) UpdateRoomType(id uint, updates map[string]interface{}) (models.RoomType, error) {
	rt, err := s.GetRoomType(id)
	if err != nil {
		return rt, err
	}

	delete(updates, "id")
	delete(updates, "hotel_id")
	delete(updates, "created_at")
	delete(updates, "updated_at")

	if err := s.DB.Model(&rt).Updates(updates).Error; err != nil {
		return rt, err
	}
	return s.GetRoomType(id)
}

// DeleteRoomType removes the room type together with its adjustment set.
func (s *HotelService) DeleteRoomType(id uint) error {
	if _, err := s.GetRoomType(id); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_type_id = ?", id).Delete(&models.RateAdjustment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.RoomType{}, id).Error
	})
}
