package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/raumbelegung/room-booking-api/internal/domain/booking"
	"github.com/raumbelegung/room-booking-api/internal/httperr"
	"github.com/raumbelegung/room-booking-api/internal/httpresp"
	"github.com/raumbelegung/room-booking-api/internal/models"
	ucbooking "github.com/raumbelegung/room-booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC *ucbooking.CreateBooking
	updateUC *ucbooking.UpdateBooking
	deleteUC *ucbooking.DeleteBooking
	listUC   *ucbooking.ListBookings
}

func NewBookingHandler(
	createUC *ucbooking.CreateBooking,
	updateUC *ucbooking.UpdateBooking,
	deleteUC *ucbooking.DeleteBooking,
	listUC *ucbooking.ListBookings,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookingRequest struct {
	RoomID      uint   `json:"room_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ContactName string `json:"contact_name" binding:"required"`
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time"`

	Recurrence *ucbooking.RecurrenceInput `json:"recurrence"`
}

// ======================================================
// ERROR MAPPING
// ======================================================

func conflictDetails(conflicts []models.Booking) []gin.H {
	out := make([]gin.H, 0, len(conflicts))
	for _, b := range conflicts {
		out = append(out, gin.H{
			"id":         b.ID,
			"title":      b.Title,
			"start_time": b.StartTime,
			"end_time":   b.EndTime,
		})
	}
	return out
}

func writeBookingError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	var notFoundErr *domain.NotFoundError
	var conflictErr *domain.ConflictError
	var unavailableErr *domain.UnavailableError

	switch {
	case errors.As(err, &validationErr):
		httperr.BadRequest(c, "validation_error", validationErr.Error())

	case errors.As(err, &notFoundErr):
		httperr.NotFound(c, notFoundErr.Entity+"_not_found", notFoundErr.Error())

	case errors.As(err, &conflictErr):
		httperr.WriteDetails(
			c,
			http.StatusConflict,
			"time_conflict",
			conflictErr.Error(),
			conflictDetails(conflictErr.Conflicts),
		)

	case errors.As(err, &unavailableErr):
		httperr.Conflict(c, "room_unavailable", unavailableErr.Error())

	default:
		httperr.Internal(c, "storage_error", "The booking store failed; try again.")
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "room_id, title, contact_name, date and start_time are required.")
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), ucbooking.CreateBookingInput{
		RoomID:      req.RoomID,
		Title:       req.Title,
		Description: req.Description,
		ContactName: req.ContactName,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Recurrence:  req.Recurrence,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	var roomID uint
	if raw := c.Query("room_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_room_id", "room_id must be numeric.")
			return
		}
		roomID = uint(id)
	}

	bookings, err := h.listUC.Execute(c.Request.Context(), ucbooking.ListBookingsInput{
		RoomID:          roomID,
		Date:            c.Query("date"),
		StartDate:       c.Query("start_date"),
		EndDate:         c.Query("end_date"),
		IncludeChildren: c.DefaultQuery("include_children", "true") == "true",
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// UPDATE
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Booking id must be numeric.")
		return
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "room_id, title, contact_name, date and start_time are required.")
		return
	}

	b, err := h.updateUC.Execute(c.Request.Context(), ucbooking.UpdateBookingInput{
		BookingID:   uint(id),
		RoomID:      req.RoomID,
		Title:       req.Title,
		Description: req.Description,
		ContactName: req.ContactName,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Recurrence:  req.Recurrence,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Booking id must be numeric.")
		return
	}

	cascade := c.Query("cascade") == "true"

	deleted, err := h.deleteUC.Execute(c.Request.Context(), uint(id), cascade)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"deleted": deleted})
}
