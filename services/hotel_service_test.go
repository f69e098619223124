package services

import (
	"testing"

	"hotel-platform/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotelService_CRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHotelService(db)

	hotel := models.Hotel{Name: "Sunset Resort", Location: "Miami, FL", Rating: 4.8}
	require.NoError(t, svc.Create(&hotel))
	require.NotZero(t, hotel.ID)

	got, err := svc.GetByID(hotel.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sunset Resort", got.Name)

	updated, err := svc.Update(hotel.ID, map[string]interface{}{
		"name":   "Sunset Resort & Spa",
		"rating": 4.9,
		"id":     12345, // must be stripped, never applied
	})
	require.NoError(t, err)
	assert.Equal(t, hotel.ID, updated.ID)
	assert.Equal(t, "Sunset Resort & Spa", updated.Name)
	assert.Equal(t, 4.9, updated.Rating)

	all, err := svc.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = svc.GetByID(9999)
	assert.ErrorIs(t, err, ErrHotelNotFound)

	_, err = svc.Update(9999, map[string]interface{}{"name": "x"})
	assert.ErrorIs(t, err, ErrHotelNotFound)

	assert.ErrorIs(t, svc.Delete(9999), ErrHotelNotFound)
}

func TestHotelService_RoomTypes(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHotelService(db)

	hotel := models.Hotel{Name: "Grand Plaza Hotel", Location: "New York, NY"}
	require.NoError(t, svc.Create(&hotel))

	rt := models.RoomType{Name: "Deluxe King", BasePrice: 250.0, Capacity: 2}
	require.NoError(t, svc.CreateRoomType(hotel.ID, &rt))
	assert.Equal(t, hotel.ID, rt.HotelID)

	err := svc.CreateRoomType(9999, &models.RoomType{Name: "Ghost Room"})
	assert.ErrorIs(t, err, ErrHotelNotFound)

	types, err := svc.GetRoomTypes(hotel.ID)
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "Deluxe King", types[0].Name)

	updated, err := svc.UpdateRoomType(rt.ID, map[string]interface{}{
		"base_price": 275.0,
		"hotel_id":   9999, // ownership is not reassignable through update
	})
	require.NoError(t, err)
	assert.Equal(t, 275.0, updated.BasePrice)
	assert.Equal(t, hotel.ID, updated.HotelID)

	_, err = svc.GetRoomType(9999)
	assert.ErrorIs(t, err, ErrRoomTypeNotFound)
}

func TestHotelService_DeleteRoomType_CascadesAdjustments(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHotelService(db)
	rates := NewRateService(db)

	hotel := models.Hotel{Name: "Grand Plaza Hotel"}
	require.NoError(t, svc.Create(&hotel))

	rt := models.RoomType{Name: "Deluxe King", BasePrice: 250.0}
	require.NoError(t, svc.CreateRoomType(hotel.ID, &rt))

	_, err := rates.Create(rt.ID, 50.0, date("2025-12-25"), nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRoomType(rt.ID))

	_, err = svc.GetRoomType(rt.ID)
	assert.ErrorIs(t, err, ErrRoomTypeNotFound)

	var count int64
	require.NoError(t, db.Model(&models.RateAdjustment{}).Count(&count).Error)
	assert.Zero(t, count, "room-type deletion must take its adjustments with it")
}

func TestHotelService_DeleteHotel_CascadesEverything(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHotelService(db)
	rates := NewRateService(db)

	hotel := models.Hotel{Name: "Grand Plaza Hotel"}
	require.NoError(t, svc.Create(&hotel))

	other := models.Hotel{Name: "Sunset Resort"}
	require.NoError(t, svc.Create(&other))

	var rts []models.RoomType
	for _, name := range []string{"Deluxe King", "Double Queen"} {
		rt := models.RoomType{Name: name, BasePrice: 250.0}
		require.NoError(t, svc.CreateRoomType(hotel.ID, &rt))
		rts = append(rts, rt)
	}
	survivor := models.RoomType{Name: "Ocean View Suite", BasePrice: 450.0}
	require.NoError(t, svc.CreateRoomType(other.ID, &survivor))

	for i, rt := range rts {
		_, err := rates.Create(rt.ID, float64(10*(i+1)), date("2025-06-01"), nil)
		require.NoError(t, err)
	}
	_, err := rates.Create(survivor.ID, 5.0, date("2025-06-01"), nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(hotel.ID))

	_, err = svc.GetByID(hotel.ID)
	assert.ErrorIs(t, err, ErrHotelNotFound)

	var rtCount int64
	require.NoError(t, db.Model(&models.RoomType{}).Count(&rtCount).Error)
	assert.Equal(t, int64(1), rtCount, "only the other hotel's room type survives")

	var adjCount int64
	require.NoError(t, db.Model(&models.RateAdjustment{}).Count(&adjCount).Error)
	assert.Equal(t, int64(1), adjCount)

	remaining, err := rates.ListByRoomType(survivor.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
