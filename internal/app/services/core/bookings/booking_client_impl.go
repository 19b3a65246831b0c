package bookings

import (
	"context"
	"pathlab-client/internal/app/contracts"
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/dto/requests"
	"pathlab-client/internal/pkg/dto/responses"
	"pathlab-client/internal/pkg/exceptions"
	"pathlab-client/internal/pkg/utils"
	"strconv"

	"go.uber.org/zap"
)

type bookingClient struct {
	RestClient contracts.RestClient
	Log        *zap.Logger
}

func NewBookingClient(restClient contracts.RestClient, logger *zap.Logger) contracts.BookingClient {
	return &bookingClient{RestClient: restClient, Log: logger}
}

func (c *bookingClient) ListBookings(ctx context.Context) ([]responses.Booking, error) {
	var bookings []responses.Booking
	if err := c.RestClient.Get(ctx, constvars.EndpointBookings, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *bookingClient) FindBookingByID(ctx context.Context, bookingID int64) (*responses.Booking, error) {
	booking := new(responses.Booking)
	path := constvars.EndpointBookings + "/" + strconv.FormatInt(bookingID, 10)
	if err := c.RestClient.Get(ctx, path, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (c *bookingClient) CreateBooking(ctx context.Context, request *requests.CreateBookingRequest) (*responses.Booking, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	booking := new(responses.Booking)
	if err := c.RestClient.Post(ctx, constvars.EndpointBookings, request, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (c *bookingClient) UpdateBooking(ctx context.Context, bookingID int64, request *requests.UpdateBookingRequest) (*responses.Booking, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	booking := new(responses.Booking)
	path := constvars.EndpointBookings + "/" + strconv.FormatInt(bookingID, 10)
	if err := c.RestClient.Put(ctx, path, request, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (c *bookingClient) DeleteBooking(ctx context.Context, bookingID int64) error {
	path := constvars.EndpointBookings + "/" + strconv.FormatInt(bookingID, 10)
	return c.RestClient.Delete(ctx, path, nil)
}

func (c *bookingClient) ListBookingTests(ctx context.Context, bookingID int64) ([]responses.BookingTest, error) {
	var bookingTests []responses.BookingTest
	path := constvars.EndpointBookings + "/" + strconv.FormatInt(bookingID, 10) + "/tests"
	if err := c.RestClient.Get(ctx, path, &bookingTests); err != nil {
		return nil, err
	}
	return bookingTests, nil
}
