package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/raumbelegung/room-booking-api/internal/domain/booking"
	"github.com/raumbelegung/room-booking-api/internal/models"
	"github.com/raumbelegung/room-booking-api/internal/timeslot"
)

const pgUniqueViolation = "23505"

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Room
// --------------------------------------------------

func (r *BookingGormRepository) GetRoom(
	ctx context.Context,
	id uint,
) (*models.Room, error) {

	var room models.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "room", ID: id}
		}
		return nil, err
	}
	return &room, nil
}

// --------------------------------------------------
// Conflict detection
// --------------------------------------------------

func (r *BookingGormRepository) FindConflicts(
	ctx context.Context,
	roomID uint,
	date string,
	start timeslot.TimeOfDay,
	end timeslot.TimeOfDay,
	excludeBookingID uint,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"room_id = ? AND booking_date = ? AND start_time < ? AND end_time > ?",
			roomID, date, string(end), string(start),
		)

	if excludeBookingID != 0 {
		q = q.Where("id <> ?", excludeBookingID)
	}

	var conflicts []models.Booking
	if err := q.Order("start_time ASC").Find(&conflicts).Error; err != nil {
		return nil, err
	}

	return conflicts, nil
}

// --------------------------------------------------
// Booking (write)
// --------------------------------------------------

// CreateBooking persists the row. When a concurrent caller wins the race
// between conflict check and insert, the unique index on
// (room_id, booking_date, start_time) rejects the loser; that duplicate-key
// error is surfaced as the same ConflictError as a pre-detected overlap.
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return r.mapConflict(err, b)
	}
	return nil
}

func (r *BookingGormRepository) SaveBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	if err := r.db.WithContext(ctx).Save(b).Error; err != nil {
		return r.mapConflict(err, b)
	}
	return nil
}

func (r *BookingGormRepository) mapConflict(err error, b *models.Booking) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return &domain.ConflictError{RoomID: b.RoomID, Date: b.BookingDate}
	}
	return err
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, id).Error
}

func (r *BookingGormRepository) DeleteChildren(
	ctx context.Context,
	parentID uint,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("parent_booking_id = ?", parentID).
		Delete(&models.Booking{})

	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Booking (read)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "booking", ID: id}
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).Model(&models.Booking{}).Preload("Room")

	if filter.RoomID != 0 {
		q = q.Where("room_id = ?", filter.RoomID)
	}
	if filter.Date != "" {
		q = q.Where("booking_date = ?", filter.Date)
	}
	if filter.StartDate != "" && filter.EndDate != "" {
		q = q.Where("booking_date BETWEEN ? AND ?", filter.StartDate, filter.EndDate)
	}
	if !filter.IncludeChildren {
		q = q.Where("parent_booking_id IS NULL")
	}

	var bookings []models.Booking
	if err := q.
		Order("booking_date ASC, start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) CountBookingsForRoom(
	ctx context.Context,
	roomID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
