package payments

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

type paymentClient struct {
	RestClient contracts.RestClient
	Log        *zap.Logger
}

func NewPaymentClient(restClient contracts.RestClient, logger *zap.Logger) contracts.PaymentClient {
	return &paymentClient{RestClient: restClient, Log: logger}
}

func (c *paymentClient) ListPayments(ctx context.Context) ([]responses.Payment, error) {
	var payments []responses.Payment
	if err := c.RestClient.Get(ctx, constvars.EndpointPayments, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (c *paymentClient) FindPaymentByID(ctx context.Context, paymentID int64) (*responses.Payment, error) {
	payment := new(responses.Payment)
	path := constvars.EndpointPayments + "/" + strconv.FormatInt(paymentID, 10)
	if err := c.RestClient.Get(ctx, path, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (c *paymentClient) CreatePayment(ctx context.Context, request *requests.CreatePaymentRequest) (*responses.Payment, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	payment := new(responses.Payment)
	if err := c.RestClient.Post(ctx, constvars.EndpointPayments, request, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (c *paymentClient) UpdatePayment(ctx context.Context, paymentID int64, request *requests.UpdatePaymentRequest) (*responses.Payment, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	payment := new(responses.Payment)
	path := constvars.EndpointPayments + "/" + strconv.FormatInt(paymentID, 10)
	if err := c.RestClient.Put(ctx, path, request, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (c *paymentClient) DeletePayment(ctx context.Context, paymentID int64) error {
	path := constvars.EndpointPayments + "/" + strconv.FormatInt(paymentID, 10)
	return c.RestClient.Delete(ctx, path, nil)
}

func (c *paymentClient) DownloadInvoicePDF(ctx context.Context, paymentID int64) ([]byte, error) {
	path := constvars.EndpointPayments + "/" + strconv.FormatInt(paymentID, 10) + "/invoice/pdf"
	_, data, err := c.RestClient.GetBytes(ctx, path)
	if err != nil {
		return nil, err
	}
	return data, nil
}
