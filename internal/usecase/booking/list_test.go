package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/raumbelegung/room-booking-api/internal/domain/booking"
	"github.com/raumbelegung/room-booking-api/internal/models"
)

func seedListFixtures(repo *fakeRepo) {
	repo.seedBooking(models.Booking{
		RoomID: 1, Title: "Spaet", ContactName: "A",
		BookingDate: futureTuesday, StartTime: "14:00", EndTime: "15:00",
	})
	repo.seedBooking(models.Booking{
		RoomID: 1, Title: "Frueh", ContactName: "A",
		BookingDate: futureMonday, StartTime: "09:00", EndTime: "10:00",
	})
	repo.seedBooking(models.Booking{
		RoomID: 2, Title: "Anderer Raum", ContactName: "B",
		BookingDate: futureMonday, StartTime: "09:00", EndTime: "10:00",
	})
}

func TestListBookings_OrderedByDateThenStart(t *testing.T) {
	repo := newFakeRepo(openRoom(), openRoom())
	seedListFixtures(repo)
	repo.seedBooking(models.Booking{
		RoomID: 1, Title: "Mittag", ContactName: "A",
		BookingDate: futureMonday, StartTime: "12:00", EndTime: "13:00",
	})
	uc := NewListBookings(repo)

	out, err := uc.Execute(context.Background(), ListBookingsInput{RoomID: 1})
	require.NoError(t, err)

	require.Len(t, out, 3)
	assert.Equal(t, "Frueh", out[0].Title)
	assert.Equal(t, "Mittag", out[1].Title)
	assert.Equal(t, "Spaet", out[2].Title)
	assert.Equal(t, "Konferenzraum", out[0].RoomName)
}

func TestListBookings_FilterByDate(t *testing.T) {
	repo := newFakeRepo(openRoom(), openRoom())
	seedListFixtures(repo)
	uc := NewListBookings(repo)

	out, err := uc.Execute(context.Background(), ListBookingsInput{Date: futureTuesday})
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, "Spaet", out[0].Title)
}

func TestListBookings_FilterByDateRange(t *testing.T) {
	repo := newFakeRepo(openRoom(), openRoom())
	seedListFixtures(repo)
	uc := NewListBookings(repo)

	out, err := uc.Execute(context.Background(), ListBookingsInput{
		RoomID:    1,
		StartDate: futureMonday,
		EndDate:   futureMonday,
	})
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, futureMonday, out[0].Date)
}

func TestListBookings_HalfOpenRangeRejected(t *testing.T) {
	repo := newFakeRepo(openRoom())
	uc := NewListBookings(repo)

	_, err := uc.Execute(context.Background(), ListBookingsInput{StartDate: futureMonday})

	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "date_range", valErr.Field)
}

func TestListBookings_ReversedRangeRejected(t *testing.T) {
	repo := newFakeRepo(openRoom())
	uc := NewListBookings(repo)

	_, err := uc.Execute(context.Background(), ListBookingsInput{
		StartDate: futureTuesday,
		EndDate:   futureMonday,
	})

	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "end_date", valErr.Field)
}

func TestListBookings_ChildVisibility(t *testing.T) {
	repo := newFakeRepo(openRoom())
	parent := repo.seedBooking(models.Booking{
		RoomID: 1, Title: "Serie", ContactName: "A",
		BookingDate: futureMonday, StartTime: "10:00", EndTime: "11:00",
		IsRecurring: true, RecurrenceType: models.RecurrenceWeekly,
	})
	repo.seedBooking(models.Booking{
		RoomID: 1, Title: "Serie", ContactName: "A",
		BookingDate: "2030-06-10", StartTime: "10:00", EndTime: "11:00",
		ParentBookingID: &parent.ID,
	})
	uc := NewListBookings(repo)

	withChildren, err := uc.Execute(context.Background(), ListBookingsInput{IncludeChildren: true})
	require.NoError(t, err)
	assert.Len(t, withChildren, 2)

	parentsOnly, err := uc.Execute(context.Background(), ListBookingsInput{})
	require.NoError(t, err)
	require.Len(t, parentsOnly, 1)
	assert.Nil(t, parentsOnly[0].ParentBookingID)
}

func TestListBookings_Empty(t *testing.T) {
	repo := newFakeRepo(openRoom())
	uc := NewListBookings(repo)

	out, err := uc.Execute(context.Background(), ListBookingsInput{})
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NotNil(t, out)
}
