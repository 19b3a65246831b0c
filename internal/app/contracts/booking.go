package contracts

import (
	"context"
	"pathlab-client/internal/pkg/dto/requests"
	"pathlab-client/internal/pkg/dto/responses"
)

type BookingClient interface {
	ListBookings(ctx context.Context) ([]responses.Booking, error)
	FindBookingByID(ctx context.Context, bookingID int64) (*responses.Booking, error)
	CreateBooking(ctx context.Context, request *requests.CreateBookingRequest) (*responses.Booking, error)
	UpdateBooking(ctx context.Context, bookingID int64, request *requests.UpdateBookingRequest) (*responses.Booking, error)
	DeleteBooking(ctx context.Context, bookingID int64) error
	ListBookingTests(ctx context.Context, bookingID int64) ([]responses.BookingTest, error)
}
