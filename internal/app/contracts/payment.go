package contracts

import (
	"context"
	"pathlab-client/internal/pkg/dto/requests"
	"pathlab-client/internal/pkg/dto/responses"
)

type PaymentClient interface {
	ListPayments(ctx context.Context) ([]responses.Payment, error)
	FindPaymentByID(ctx context.Context, paymentID int64) (*responses.Payment, error)
	CreatePayment(ctx context.Context, request *requests.CreatePaymentRequest) (*responses.Payment, error)
	UpdatePayment(ctx context.Context, paymentID int64, request *requests.UpdatePaymentRequest) (*responses.Payment, error)
	DeletePayment(ctx context.Context, paymentID int64) error
	DownloadInvoicePDF(ctx context.Context, paymentID int64) ([]byte, error)
}
