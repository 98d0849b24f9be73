package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/raumbelegung/room-booking-api/internal/httperr"
	"github.com/raumbelegung/room-booking-api/internal/httpresp"
	ucbooking "github.com/raumbelegung/room-booking-api/internal/usecase/booking"
)

type AvailabilityHandler struct {
	availabilityUC *ucbooking.GetAvailability
}

func NewAvailabilityHandler(availabilityUC *ucbooking.GetAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityUC: availabilityUC}
}

// Get answers "may this room be booked" for a date: with a time parameter a
// single yes/no against the room's availability windows, without one the
// permitted / booked / free slot lists.
func (h *AvailabilityHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_room_id", "Room id must be numeric.")
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "date is required.")
		return
	}

	res, err := h.availabilityUC.Execute(c.Request.Context(), ucbooking.AvailabilityInput{
		RoomID: uint(id),
		Date:   date,
		Time:   c.Query("time"),
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	if res.TimeChecked {
		httpresp.OK(c, gin.H{
			"room_id":            res.Room.ID,
			"room_name":          res.Room.Name,
			"date":               res.Date,
			"time":               res.Time,
			"available":          res.Available,
			"availability_rules": res.Room.AvailabilityRules,
		})
		return
	}

	httpresp.OK(c, gin.H{
		"room_id":         res.Room.ID,
		"room_name":       res.Room.Name,
		"date":            res.Date,
		"available_slots": res.PermittedSlots,
		"booked_slots":    res.BookedSlots,
		"free_slots":      res.FreeSlots,
	})
}
