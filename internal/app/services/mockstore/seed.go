package mockstore

import (
	"log"
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/utils"
)

// Seed credentials, also used by the integration tests.
const (
	SeedAdminEmail      = "admin@pathlab.local"
	SeedAdminPassword   = "Admin@1234"
	SeedLabTechEmail    = "tech@pathlab.local"
	SeedLabTechPassword = "LabTech@1234"
	SeedPatientEmail    = "jane.doe@example.com"
	SeedPatientPassword = "Patient@1234"
)

func (s *Store) seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	adminHash, err := utils.HashPassword(SeedAdminPassword)
	if err != nil {
		log.Fatalf("Error while seeding mock store: %v", err)
	}
	techHash, err := utils.HashPassword(SeedLabTechPassword)
	if err != nil {
		log.Fatalf("Error while seeding mock store: %v", err)
	}
	patientHash, err := utils.HashPassword(SeedPatientPassword)
	if err != nil {
		log.Fatalf("Error while seeding mock store: %v", err)
	}

	admin := &Account{
		ID:           s.allocateID(),
		Name:         "Asha Verma",
		Email:        SeedAdminEmail,
		PasswordHash: adminHash,
		UserType:     constvars.UserTypeStaff,
		Role:         constvars.StaffRoleAdmin,
		Verified:     true,
	}
	s.accounts[admin.Email] = admin

	tech := &Account{
		ID:           s.allocateID(),
		Name:         "Ravi Menon",
		Email:        SeedLabTechEmail,
		PasswordHash: techHash,
		UserType:     constvars.UserTypeStaff,
		Role:         constvars.StaffRoleLabTech,
		Verified:     true,
	}
	s.accounts[tech.Email] = tech

	patientAccount := &Account{
		ID:           s.allocateID(),
		Name:         "Jane Doe",
		Email:        SeedPatientEmail,
		PasswordHash: patientHash,
		UserType:     constvars.UserTypePatient,
		Verified:     true,
	}
	s.accounts[patientAccount.Email] = patientAccount

	patient := &PatientRecord{
		ID:            s.allocateID(),
		AccountID:     patientAccount.ID,
		Name:          "Jane Doe",
		Gender:        constvars.GenderFemale,
		DateOfBirth:   "1990-04-12",
		ContactNumber: "9876543210",
		Email:         SeedPatientEmail,
		Address:       "42 Lakeview Road",
		IsActive:      true,
		CreatedAt:     "2026-01-05T09:00:00Z",
	}
	s.patients[patient.ID] = patient

	cbc := &TestRecord{
		ID:          s.allocateID(),
		TestName:    "Complete Blood Count",
		Description: "Cell counts and hemoglobin",
		SampleType:  constvars.SampleTypeBlood,
		Price:       350,
	}
	s.tests[cbc.ID] = cbc
	s.testParameters[cbc.ID] = []*TestParameterRecord{
		{
			ID:             s.allocateID(),
			TestID:         cbc.ID,
			Name:           "Hemoglobin",
			Unit:           "g/dL",
			RefRangeMale:   "13.5-17.5",
			RefRangeFemale: "12.0-15.5",
			RefRangeChild:  "11.0-14.0",
		},
		{
			ID:             s.allocateID(),
			TestID:         cbc.ID,
			Name:           "WBC Count",
			Unit:           "10^3/uL",
			RefRangeMale:   "4.5-11.0",
			RefRangeFemale: "4.5-11.0",
			RefRangeChild:  "5.0-13.0",
		},
	}

	lipid := &TestRecord{
		ID:          s.allocateID(),
		TestName:    "Lipid Profile",
		Description: "Cholesterol panel",
		SampleType:  constvars.SampleTypeBlood,
		Price:       600,
	}
	s.tests[lipid.ID] = lipid
	s.testParameters[lipid.ID] = []*TestParameterRecord{
		{
			ID:             s.allocateID(),
			TestID:         lipid.ID,
			Name:           "Total Cholesterol",
			Unit:           "mg/dL",
			RefRangeMale:   "125-200",
			RefRangeFemale: "125-200",
			RefRangeChild:  "120-170",
		},
	}

	urinalysis := &TestRecord{
		ID:          s.allocateID(),
		TestName:    "Urinalysis",
		Description: "Routine urine examination",
		SampleType:  constvars.SampleTypeUrine,
		Price:       150,
	}
	s.tests[urinalysis.ID] = urinalysis
	s.testParameters[urinalysis.ID] = []*TestParameterRecord{
		{
			ID:             s.allocateID(),
			TestID:         urinalysis.ID,
			Name:           "Appearance",
			RefRangeMale:   "clear",
			RefRangeFemale: "clear",
			RefRangeChild:  "clear",
		},
	}

	booking := &BookingRecord{
		ID:          s.allocateID(),
		PatientID:   patient.ID,
		CreatedBy:   admin.ID,
		BookingDate: "2026-02-10",
		Status:      constvars.BookingStatusPending,
		CreatedAt:   "2026-02-08T10:30:00Z",
	}
	s.bookings[booking.ID] = booking
	s.bookingTests[booking.ID] = []*BookingTestRecord{
		{ID: s.allocateID(), BookingID: booking.ID, TestID: cbc.ID},
		{ID: s.allocateID(), BookingID: booking.ID, TestID: lipid.ID},
	}

	collectedSample := &SampleRecord{
		ID:          s.allocateID(),
		BookingID:   booking.ID,
		TestID:      cbc.ID,
		CollectedAt: "2026-02-10T08:15:00Z",
		CollectedBy: tech.ID,
		Status:      constvars.SampleStatusCollected,
	}
	s.samples[collectedSample.ID] = collectedSample

	pendingSample := &SampleRecord{
		ID:        s.allocateID(),
		BookingID: booking.ID,
		TestID:    lipid.ID,
		Status:    constvars.SampleStatusCollectionPending,
	}
	s.samples[pendingSample.ID] = pendingSample

	cbcParameters := s.testParameters[cbc.ID]
	s.results[booking.ID] = map[int64]*ResultRecord{
		cbc.ID: {
			BookingID:      booking.ID,
			TestID:         cbc.ID,
			EnteredBy:      tech.ID,
			Interpretation: "Within expected limits",
			CreatedAt:      "2026-02-11T14:00:00Z",
			Entries: []ResultEntryRecord{
				{ParameterID: cbcParameters[0].ID, Value: "13.1"},
				{ParameterID: cbcParameters[1].ID, Value: "7.2"},
			},
		},
	}

	payment := &PaymentRecord{
		ID:        s.allocateID(),
		BookingID: booking.ID,
		Amount:    950,
		Status:    constvars.PaymentStatusPaid,
		PaidAt:    "2026-02-10T09:00:00Z",
	}
	s.payments[payment.ID] = payment

	report := &ReportRecord{
		ID:          s.allocateID(),
		BookingID:   booking.ID,
		GeneratedBy: tech.ID,
		ReportFile:  "report_1.pdf",
		GeneratedAt: "2026-02-12T11:00:00Z",
	}
	s.reports[report.ID] = report
}
