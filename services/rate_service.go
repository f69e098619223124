package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"hotel-platform/models"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type RateService struct {
	DB *gorm.DB
}

func NewRateService(db *gorm.DB) *RateService {
	return &RateService{DB: db}
}

// isDuplicateKey reports whether err is a unique-constraint violation.
// MySQL raises error 1062; the string checks keep the sqlite test driver and
// older gorm versions covered.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

// ----------------------------------------------------
// CREATE — single atomic insert; the composite unique
// index is the authority, never a check-then-insert
// ----------------------------------------------------
func (s *RateService) Create(roomTypeID uint, amount float64, effectiveDate time.Time, reason *string) (*models.RateAdjustment, error) {
	var rt models.RoomType
	if err := s.DB.First(&rt, roomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, err
	}

	adj := models.RateAdjustment{
		RoomTypeID:       roomTypeID,
		AdjustmentAmount: amount,
		EffectiveDate:    NormalizeDate(effectiveDate),
		Reason:           reason,
	}

	if err := s.DB.Create(&adj).Error; err != nil {
		if isDuplicateKey(err) {
			log.Printf("⚠️ Duplicate rate adjustment for room type %d on %s", roomTypeID, adj.EffectiveDate.Format("2006-01-02"))
			return nil, ErrDuplicateAdjustment
		}
		return nil, err
	}

	return &adj, nil
}

// ListByRoomType returns the complete adjustment set for a room type,
// unordered — ordering is the resolver's concern, not the store's.
func (s *RateService) ListByRoomType(roomTypeID uint) ([]models.RateAdjustment, error) {
	var adjustments []models.RateAdjustment
	err := s.DB.Where("room_type_id = ?", roomTypeID).Find(&adjustments).Error
	return adjustments, err
}

// ListAll returns every adjustment, newest effective date first (admin view).
func (s *RateService) ListAll() ([]models.RateAdjustment, error) {
	var adjustments []models.RateAdjustment
	err := s.DB.Order("effective_date DESC").Find(&adjustments).Error
	return adjustments, err
}

// DeleteByRoomType removes all adjustments owned by a room type. Invoked as
// part of cascading room-type deletion.
func (s *RateService) DeleteByRoomType(roomTypeID uint) error {
	return s.DB.Where("room_type_id = ?", roomTypeID).Delete(&models.RateAdjustment{}).Error
}

func (s *RateService) Delete(id uint) error {
	result := s.DB.Delete(&models.RateAdjustment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdjustmentNotFound
	}
	return nil
}

// ResolvePrice loads a room type's adjustment set and resolves the effective
// price for referenceDate. Resolution itself cannot fail — only the load can.
func (s *RateService) ResolvePrice(roomTypeID uint, referenceDate time.Time) (float64, error) {
	var rt models.RoomType
	if err := s.DB.First(&rt, roomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrRoomTypeNotFound
		}
		return 0, err
	}

	adjustments, err := s.ListByRoomType(roomTypeID)
	if err != nil {
		return 0, err
	}

	return EffectivePrice(rt.BasePrice, adjustments, referenceDate), nil
}
