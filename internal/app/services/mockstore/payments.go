package mockstore

import (
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/dto/requests"
	"pathlab-client/internal/pkg/dto/responses"
	"pathlab-client/internal/pkg/exceptions"
	"sort"
	"strconv"
	"time"
)

func (s *Store) toPaymentResponse(record *PaymentRecord) responses.Payment {
	payment := responses.Payment{
		ID:          record.ID,
		BookingID:   record.BookingID,
		Status:      record.Status,
		TotalAmount: record.Amount,
		PaidAt:      record.PaidAt,
	}
	booking, ok := s.bookings[record.BookingID]
	if !ok {
		return payment
	}
	payment.BookingDate = booking.BookingDate
	if patient, exists := s.patients[booking.PatientID]; exists {
		payment.PatientName = patient.Name
		payment.PatientContactNumber = patient.ContactNumber
	}
	for _, bookingTest := range s.bookingTests[record.BookingID] {
		if test, exists := s.tests[bookingTest.TestID]; exists {
			payment.TestNames = append(payment.TestNames, test.TestName)
		}
	}
	return payment
}

func (s *Store) ListPayments() []responses.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payments := make([]responses.Payment, 0, len(s.payments))
	for _, record := range s.payments {
		payments = append(payments, s.toPaymentResponse(record))
	}
	sort.Slice(payments, func(i, j int) bool { return payments[i].ID < payments[j].ID })
	return payments
}

func (s *Store) FindPaymentByID(paymentID int64) (*responses.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.payments[paymentID]
	if !ok {
		return nil, exceptions.ErrResourceNotFound("payment")
	}
	payment := s.toPaymentResponse(record)
	return &payment, nil
}

func (s *Store) CreatePayment(request *requests.CreatePaymentRequest) (*responses.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[request.BookingID]; !ok {
		return nil, exceptions.ErrResourceNotFound("booking")
	}

	record := &PaymentRecord{
		ID:        s.allocateID(),
		BookingID: request.BookingID,
		Amount:    request.Amount,
		Status:    request.PaymentStatus,
		PaidAt:    request.PaidAt,
	}
	if record.Status == constvars.PaymentStatusPaid && record.PaidAt == "" {
		record.PaidAt = time.Now().UTC().Format(timestampLayout)
	}
	s.payments[record.ID] = record

	payment := s.toPaymentResponse(record)
	return &payment, nil
}

func (s *Store) UpdatePayment(paymentID int64, request *requests.UpdatePaymentRequest) (*responses.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.payments[paymentID]
	if !ok {
		return nil, exceptions.ErrResourceNotFound("payment")
	}
	if request.Amount != 0 {
		record.Amount = request.Amount
	}
	if request.PaymentStatus != "" {
		record.Status = request.PaymentStatus
		if record.Status == constvars.PaymentStatusPaid && record.PaidAt == "" {
			record.PaidAt = time.Now().UTC().Format(timestampLayout)
		}
		if record.Status == constvars.PaymentStatusPending {
			record.PaidAt = ""
		}
	}
	if request.PaidAt != "" {
		record.PaidAt = request.PaidAt
	}

	payment := s.toPaymentResponse(record)
	return &payment, nil
}

func (s *Store) DeletePayment(paymentID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.payments[paymentID]; !ok {
		return exceptions.ErrResourceNotFound("payment")
	}
	delete(s.payments, paymentID)
	return nil
}

func (s *Store) InvoicePDF(paymentID int64) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.payments[paymentID]; !ok {
		return nil, exceptions.ErrResourceNotFound("payment")
	}
	return []byte(constvars.MockInvoicePDFHeader + strconv.FormatInt(paymentID, 10)), nil
}
