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

func toReportResponse(record *ReportRecord) responses.Report {
	return responses.Report{
		ID:          record.ID,
		BookingID:   record.BookingID,
		GeneratedBy: record.GeneratedBy,
		ReportFile:  record.ReportFile,
		GeneratedAt: record.GeneratedAt,
	}
}

func (s *Store) ListReports() []responses.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reports := make([]responses.Report, 0, len(s.reports))
	for _, record := range s.reports {
		reports = append(reports, toReportResponse(record))
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].ID < reports[j].ID })
	return reports
}

func (s *Store) FindReportByID(reportID int64) (*responses.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.reports[reportID]
	if !ok {
		return nil, exceptions.ErrResourceNotFound("report")
	}
	report := toReportResponse(record)
	return &report, nil
}

func (s *Store) CreateReport(request *requests.CreateReportRequest) (*responses.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[request.BookingID]; !ok {
		return nil, exceptions.ErrResourceNotFound("booking")
	}

	record := &ReportRecord{
		ID:          s.allocateID(),
		BookingID:   request.BookingID,
		GeneratedBy: request.GeneratedBy,
		GeneratedAt: time.Now().UTC().Format(timestampLayout),
	}
	record.ReportFile = "report_" + strconv.FormatInt(record.BookingID, 10) + ".pdf"
	s.reports[record.ID] = record

	report := toReportResponse(record)
	return &report, nil
}

func (s *Store) ReportPDF(reportID int64) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.reports[reportID]; !ok {
		return nil, exceptions.ErrResourceNotFound("report")
	}
	return []byte(constvars.MockReportPDFHeader + strconv.FormatInt(reportID, 10)), nil
}
