package booking

import (
	"context"

	domain "github.com/raumbelegung/room-booking-api/internal/domain/booking"
)

type DeleteBooking struct {
	repo domain.Repository
}

func NewDeleteBooking(repo domain.Repository) *DeleteBooking {
	return &DeleteBooking{repo: repo}
}

// Execute removes the booking and returns how many rows were deleted. With
// cascade, a recurring parent takes all of its children along. Without
// cascade only the target row goes; children keep their dangling parent
// reference, which is a tolerated state, not an error.
func (uc *DeleteBooking) Execute(
	ctx context.Context,
	bookingID uint,
	cascade bool,
) (int64, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return 0, err
	}

	var deleted int64

	if cascade && b.IsRecurring {
		n, err := uc.repo.DeleteChildren(ctx, b.ID)
		if err != nil {
			return 0, err
		}
		deleted += n
	}

	if err := uc.repo.DeleteBooking(ctx, b.ID); err != nil {
		return deleted, err
	}
	deleted++

	return deleted, nil
}
