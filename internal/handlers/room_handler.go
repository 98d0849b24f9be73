package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/raumbelegung/room-booking-api/internal/httperr"
	"github.com/raumbelegung/room-booking-api/internal/httpresp"
	"github.com/raumbelegung/room-booking-api/internal/models"
	"github.com/raumbelegung/room-booking-api/internal/timeslot"
)

type RoomHandler struct {
	db *gorm.DB
}

func NewRoomHandler(db *gorm.DB) *RoomHandler {
	return &RoomHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type RoomRequest struct {
	Name        string   `json:"name" binding:"required"`
	Capacity    int      `json:"capacity" binding:"required,min=1"`
	Location    string   `json:"location" binding:"required"`
	Features    []string `json:"features"`
	Description string   `json:"description"`

	AvailabilityRules *models.AvailabilityRules `json:"availability_rules"`
}

func validateAvailabilityRules(cfg *models.AvailabilityRules) bool {
	if cfg == nil || cfg.Type == models.AvailabilityAlways {
		return true
	}
	if cfg.Type != models.AvailabilityTimeRestricted {
		return false
	}
	for _, rule := range cfg.Rules {
		if rule.Day < 0 || rule.Day > 6 {
			return false
		}
		start, err := timeslot.Parse(rule.StartTime)
		if err != nil {
			return false
		}
		end, err := timeslot.Parse(rule.EndTime)
		if err != nil {
			return false
		}
		if start > end {
			return false
		}
	}
	return true
}

// ======================================================
// HANDLERS
// ======================================================

func (h *RoomHandler) List(c *gin.Context) {
	var rooms []models.Room
	if err := h.db.Order("name ASC").Find(&rooms).Error; err != nil {
		httperr.Internal(c, "failed_to_list_rooms", "Could not load rooms.")
		return
	}

	httpresp.List(c, rooms)
}

func (h *RoomHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_room_id", "Room id must be numeric.")
		return
	}

	var room models.Room
	if err := h.db.First(&room, id).Error; err != nil {
		httperr.NotFound(c, "room_not_found", "Room not found.")
		return
	}

	httpresp.OK(c, room)
}

func (h *RoomHandler) Create(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid room payload.")
		return
	}

	if !validateAvailabilityRules(req.AvailabilityRules) {
		httperr.BadRequest(c, "invalid_availability_rules", "Availability rules are malformed.")
		return
	}

	room := models.Room{
		Name:              req.Name,
		Capacity:          req.Capacity,
		Location:          req.Location,
		Features:          req.Features,
		Description:       req.Description,
		AvailabilityRules: req.AvailabilityRules,
	}

	if err := h.db.Create(&room).Error; err != nil {
		httperr.Internal(c, "failed_to_create_room", "Could not create room.")
		return
	}

	c.JSON(http.StatusCreated, room)
}

func (h *RoomHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_room_id", "Room id must be numeric.")
		return
	}

	var room models.Room
	if err := h.db.First(&room, id).Error; err != nil {
		httperr.NotFound(c, "room_not_found", "Room not found.")
		return
	}

	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid room payload.")
		return
	}

	if !validateAvailabilityRules(req.AvailabilityRules) {
		httperr.BadRequest(c, "invalid_availability_rules", "Availability rules are malformed.")
		return
	}

	room.Name = req.Name
	room.Capacity = req.Capacity
	room.Location = req.Location
	room.Features = req.Features
	room.Description = req.Description
	room.AvailabilityRules = req.AvailabilityRules

	if err := h.db.Save(&room).Error; err != nil {
		httperr.Internal(c, "failed_to_update_room", "Could not update room.")
		return
	}

	httpresp.OK(c, room)
}

// Delete refuses while any booking still references the room.
func (h *RoomHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_room_id", "Room id must be numeric.")
		return
	}

	var room models.Room
	if err := h.db.First(&room, id).Error; err != nil {
		httperr.NotFound(c, "room_not_found", "Room not found.")
		return
	}

	var count int64
	if err := h.db.Model(&models.Booking{}).
		Where("room_id = ?", room.ID).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_room", "Could not delete room.")
		return
	}
	if count > 0 {
		httperr.Conflict(c, "room_has_bookings", "Room still has bookings and cannot be deleted.")
		return
	}

	if err := h.db.Delete(&room).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_room", "Could not delete room.")
		return
	}

	httpresp.OK(c, gin.H{"deleted": room.ID})
}
