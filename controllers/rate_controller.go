package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"hotel-platform/services"
	"hotel-platform/utils"

	"github.com/gin-gonic/gin"
)

type RateController struct {
	service *services.RateService
}

func NewRateController(service *services.RateService) *RateController {
	return &RateController{service: service}
}

type createRatePayload struct {
	RoomTypeID       uint    `json:"room_type_id" binding:"required"`
	AdjustmentAmount float64 `json:"adjustment_amount"`
	EffectiveDate    string  `json:"effective_date" binding:"required"`
	Reason           *string `json:"reason"`
}

// parseDateParam parses a YYYY-MM-DD value, defaulting to today when empty.
// "Today" only ever enters at this boundary — resolution itself always gets
// the date as an argument.
func parseDateParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", raw)
}

// ----------------------------------------------------
// 1. Create Rate Adjustment (POST /api/rates)
// ----------------------------------------------------
func (rc *RateController) CreateRateAdjustment(c *gin.Context) {
	var payload createRatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	effectiveDate, err := time.Parse("2006-01-02", payload.EffectiveDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "effective_date must be in YYYY-MM-DD format")
		return
	}

	adj, err := rc.service.Create(payload.RoomTypeID, payload.AdjustmentAmount, effectiveDate, payload.Reason)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomTypeNotFound):
			utils.JSONError(c, http.StatusNotFound, "Room type not found")
		case errors.Is(err, services.ErrDuplicateAdjustment):
			utils.JSONError(c, http.StatusConflict, "An adjustment for this room type and date already exists")
		default:
			log.Printf("❌ DB ERROR: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusCreated, adj)
}

// ----------------------------------------------------
// 2. List Rate Adjustments (GET /api/rates)
//    optional filter: ?room_type_id=N
// ----------------------------------------------------
func (rc *RateController) GetRateAdjustments(c *gin.Context) {
	rawID := c.Query("room_type_id")
	if rawID == "" {
		adjustments, err := rc.service.ListAll()
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, adjustments)
		return
	}

	roomTypeID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "room_type_id must be a number")
		return
	}

	adjustments, err := rc.service.ListByRoomType(uint(roomTypeID))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, adjustments)
}

// ----------------------------------------------------
// 3. Delete Rate Adjustment (DELETE /api/rates/:id)
// ----------------------------------------------------
func (rc *RateController) DeleteRateAdjustment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	if err := rc.service.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrAdjustmentNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Rate adjustment not found")
			return
		}
		log.Printf("❌ DB Error during deletion (ID: %d): %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete rate adjustment")
		return
	}

	utils.JSONMessage(c, http.StatusOK, "Rate adjustment deleted")
}

// ----------------------------------------------------
// 4. Resolve Effective Price (GET /api/room-types/:id/price)
//    optional ?date=YYYY-MM-DD, defaults to today
// ----------------------------------------------------
func (rc *RateController) GetEffectivePrice(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	referenceDate, err := parseDateParam(c.Query("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "date must be in YYYY-MM-DD format")
		return
	}

	price, err := rc.service.ResolvePrice(uint(id), referenceDate)
	if err != nil {
		if errors.Is(err, services.ErrRoomTypeNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Room type not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"room_type_id":    uint(id),
		"reference_date":  services.NormalizeDate(referenceDate).Format("2006-01-02"),
		"effective_price": price,
	})
}
