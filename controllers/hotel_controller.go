package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"hotel-platform/models"
	"hotel-platform/services"
	"hotel-platform/utils"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	service *services.HotelService
	rates   *services.RateService
}

func NewHotelController(service *services.HotelService, rates *services.RateService) *HotelController {
	return &HotelController{service: service, rates: rates}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// roomTypeView decorates a room type with the price resolved for the
// requested reference date, so list pages can show both side by side.
type roomTypeView struct {
	models.RoomType
	EffectivePrice float64 `json:"effectivePrice"`
}

// ----------------------------------------------------
// Hotels
// ----------------------------------------------------

func (hc *HotelController) GetHotels(c *gin.Context) {
	hotels, err := hc.service.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func (hc *HotelController) GetHotel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	hotel, err := hc.service.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrHotelNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Hotel not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, hotel)
}

func (hc *HotelController) CreateHotel(c *gin.Context) {
	var hotel models.Hotel
	if err := c.ShouldBindJSON(&hotel); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if hotel.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "Hotel name is required")
		return
	}

	if err := hc.service.Create(&hotel); err != nil {
		log.Printf("❌ DB ERROR: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusCreated, hotel)
}

func (hc *HotelController) UpdateHotel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	hotel, err := hc.service.Update(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrHotelNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Hotel not found")
			return
		}
		log.Printf("❌ Update Error for Hotel %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Update failed")
		return
	}
	c.JSON(http.StatusOK, hotel)
}

func (hc *HotelController) DeleteHotel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := hc.service.Delete(id); err != nil {
		if errors.Is(err, services.ErrHotelNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Hotel not found")
			return
		}
		log.Printf("❌ DB Error during deletion (Hotel %d): %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete hotel")
		return
	}

	log.Printf("✅ Hotel %d deleted (room types and adjustments cascaded).", id)
	utils.JSONMessage(c, http.StatusOK, "Hotel deleted")
}

// ----------------------------------------------------
// Room types (nested under hotels)
// ----------------------------------------------------

func (hc *HotelController) CreateRoomType(c *gin.Context) {
	hotelID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if rt.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "Room type name is required")
		return
	}
	if rt.BasePrice < 0 {
		utils.JSONError(c, http.StatusBadRequest, "basePrice must be non-negative")
		return
	}

	if err := hc.service.CreateRoomType(hotelID, &rt); err != nil {
		if errors.Is(err, services.ErrHotelNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Hotel not found")
			return
		}
		log.Printf("❌ DB ERROR: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusCreated, rt)
}

// GetRoomTypes lists a hotel's room types with prices resolved for the
// requested reference date (?date=YYYY-MM-DD, defaults to today).
func (hc *HotelController) GetRoomTypes(c *gin.Context) {
	hotelID, ok := paramID(c, "id")
	if !ok {
		return
	}

	referenceDate, err := parseDateParam(c.Query("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "date must be in YYYY-MM-DD format")
		return
	}

	types, err := hc.service.GetRoomTypes(hotelID)
	if err != nil {
		if errors.Is(err, services.ErrHotelNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Hotel not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	views := make([]roomTypeView, 0, len(types))
	for _, rt := range types {
		adjustments, err := hc.rates.ListByRoomType(rt.ID)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
			return
		}
		views = append(views, roomTypeView{
			RoomType:       rt,
			EffectivePrice: services.EffectivePrice(rt.BasePrice, adjustments, referenceDate),
		})
	}
	c.JSON(http.StatusOK, views)
}

func (hc *HotelController) UpdateRoomType(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	rt, err := hc.service.UpdateRoomType(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrRoomTypeNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Room type not found")
			return
		}
		log.Printf("❌ Update Error for RoomType %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Update failed")
		return
	}
	c.JSON(http.StatusOK, rt)
}

func (hc *HotelController) DeleteRoomType(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := hc.service.DeleteRoomType(id); err != nil {
		if errors.Is(err, services.ErrRoomTypeNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Room type not found")
			return
		}
		log.Printf("❌ DB Error during deletion (RoomType %d): %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete room type")
		return
	}

	utils.JSONMessage(c, http.StatusOK, "Room type deleted")
}
