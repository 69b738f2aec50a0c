package issuance

import (
	"context"
	"errors"
	"math/rand"
	"regexp"
	"testing"
	"time"

	"go_certify/internal/httpx"
	"go_certify/internal/identifier"
	"go_certify/internal/model"
	"go_certify/internal/store"
)

const testBaseURL = "http://localhost:8080"

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestService(st store.Store) *Service {
	gen := identifier.NewWithSource(rand.NewSource(1), fixedClock(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	s := New(st, gen, testBaseURL)
	s.now = fixedClock(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	s.encodeQR = func(url string) (string, error) {
		return "data:image/png;base64,dGVzdA==", nil
	}
	return s
}

func validInput() Input {
	return Input{
		EmployeeName: "JOHN SMITH",
		EmployeeID:   "123",
		Company:      "ACME",
	}
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	var appErr *httpx.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *httpx.AppError, got %T: %v", err, err)
	}
	if appErr.Code != httpx.CodeValidation {
		t.Errorf("error code = %d, want %d", appErr.Code, httpx.CodeValidation)
	}
}

func TestIssue_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
	}{
		{"missing employee name", func(in *Input) { in.EmployeeName = "" }},
		{"missing employee id", func(in *Input) { in.EmployeeID = "" }},
		{"missing company", func(in *Input) { in.Company = "" }},
		{"whitespace-only name", func(in *Input) { in.EmployeeName = "   " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := store.NewMemoryStore()
			svc := newTestService(st)

			input := validInput()
			tt.mutate(&input)

			_, err := svc.Issue(context.Background(), input)
			assertValidationError(t, err)

			// Fail fast: no generation or storage work happened
			if st.InsertCalls != 0 {
				t.Errorf("store was called %d times, want 0", st.InsertCalls)
			}
		})
	}
}

func TestIssue_OversizedImage(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newTestService(st)

	input := validInput()
	input.EmployeeImage = string(make([]byte, model.MaxEmployeeImageBytes+1))

	_, err := svc.Issue(context.Background(), input)
	assertValidationError(t, err)
	if st.InsertCalls != 0 {
		t.Errorf("store was called %d times, want 0", st.InsertCalls)
	}
}

func TestIssue_Success(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newTestService(st)

	result, err := svc.Issue(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if !regexp.MustCompile(`^BV-JUB-2025-\d{5}$`).MatchString(result.CertificateNumber) {
		t.Errorf("certificate number has wrong format: %s", result.CertificateNumber)
	}
	if !regexp.MustCompile(`^REF-\d{6}$`).MatchString(result.ReferenceNumber) {
		t.Errorf("reference number has wrong format: %s", result.ReferenceNumber)
	}
	if !regexp.MustCompile(`^\d{6}$`).MatchString(result.VerificationPin) {
		t.Errorf("verification PIN has wrong format: %s", result.VerificationPin)
	}

	wantURL := testBaseURL + "/verify?cert=" + result.CertificateNumber
	if result.VerificationURL != wantURL {
		t.Errorf("verification URL = %s, want %s", result.VerificationURL, wantURL)
	}
	if result.QRCodeDataURL == "" {
		t.Error("QR code data URL must be set")
	}

	// The record is retrievable and carries the defaulted fields
	record, err := st.FindByNumber(context.Background(), result.CertificateNumber)
	if err != nil {
		t.Fatalf("FindByNumber() error = %v", err)
	}
	if record.CourseName != model.DefaultCourseName {
		t.Errorf("course name = %q, want default %q", record.CourseName, model.DefaultCourseName)
	}
	if record.TrainerName != model.DefaultTrainerName {
		t.Errorf("trainer name = %q, want default %q", record.TrainerName, model.DefaultTrainerName)
	}
	if !record.IsActive {
		t.Error("new record must be active")
	}
	if record.VerificationPin != result.VerificationPin {
		t.Error("stored PIN must match the returned one")
	}
}

func TestIssue_ExpiryDerivation(t *testing.T) {
	t.Run("derived from issue date", func(t *testing.T) {
		st := store.NewMemoryStore()
		svc := newTestService(st)

		input := validInput()
		input.IssueDate = "2025-01-15"

		result, err := svc.Issue(context.Background(), input)
		if err != nil {
			t.Fatalf("Issue() error = %v", err)
		}

		record, err := st.FindByNumber(context.Background(), result.CertificateNumber)
		if err != nil {
			t.Fatalf("FindByNumber() error = %v", err)
		}
		if record.IssueDate != "2025-01-15" {
			t.Errorf("issue date = %s, want 2025-01-15", record.IssueDate)
		}
		if record.ExpiryDate != "2026-01-15" {
			t.Errorf("expiry date = %s, want 2026-01-15", record.ExpiryDate)
		}
	})

	t.Run("caller-supplied expiry kept", func(t *testing.T) {
		st := store.NewMemoryStore()
		svc := newTestService(st)

		input := validInput()
		input.IssueDate = "2025-01-15"
		input.ExpiryDate = "2025-07-15"

		result, err := svc.Issue(context.Background(), input)
		if err != nil {
			t.Fatalf("Issue() error = %v", err)
		}
		record, _ := st.FindByNumber(context.Background(), result.CertificateNumber)
		if record.ExpiryDate != "2025-07-15" {
			t.Errorf("expiry date = %s, want 2025-07-15", record.ExpiryDate)
		}
	})

	t.Run("expiry before issue rejected", func(t *testing.T) {
		st := store.NewMemoryStore()
		svc := newTestService(st)

		input := validInput()
		input.IssueDate = "2025-01-15"
		input.ExpiryDate = "2024-01-15"

		_, err := svc.Issue(context.Background(), input)
		assertValidationError(t, err)
	})

	t.Run("malformed issue date rejected", func(t *testing.T) {
		st := store.NewMemoryStore()
		svc := newTestService(st)

		input := validInput()
		input.IssueDate = "15/01/2025"

		_, err := svc.Issue(context.Background(), input)
		assertValidationError(t, err)
	})
}

func TestIssue_CollisionRetry(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newTestService(st)

	// Pre-insert a record that collides with the first generated set
	colliding := identifier.NewWithSource(rand.NewSource(1), fixedClock(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))).Generate()
	err := st.Insert(context.Background(), &model.Certificate{
		CertificateNumber: colliding.CertificateNumber,
		ReferenceNumber:   colliding.ReferenceNumber,
		EmployeeName:      "TAKEN",
		EmployeeID:        "0",
		Company:           "TAKEN",
		IsActive:          true,
	})
	if err != nil {
		t.Fatalf("seed insert error = %v", err)
	}

	result, err := svc.Issue(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Issue() error = %v, want collision retry to succeed", err)
	}
	if result.CertificateNumber == colliding.CertificateNumber {
		t.Error("retry must produce a fresh certificate number")
	}
}

type alwaysDuplicateStore struct{ *store.MemoryStore }

func (s *alwaysDuplicateStore) Insert(ctx context.Context, record *model.Certificate) error {
	return store.ErrDuplicate
}

func TestIssue_CollisionExhausted(t *testing.T) {
	svc := newTestService(&alwaysDuplicateStore{store.NewMemoryStore()})

	_, err := svc.Issue(context.Background(), validInput())
	var appErr *httpx.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *httpx.AppError, got %T: %v", err, err)
	}
	if appErr.Code != httpx.CodeStorageError {
		t.Errorf("error code = %d, want %d", appErr.Code, httpx.CodeStorageError)
	}
}

type failingStore struct{ *store.MemoryStore }

func (s *failingStore) Insert(ctx context.Context, record *model.Certificate) error {
	return errors.New("connection refused")
}

func TestIssue_StorageFailure(t *testing.T) {
	svc := newTestService(&failingStore{store.NewMemoryStore()})

	_, err := svc.Issue(context.Background(), validInput())
	var appErr *httpx.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *httpx.AppError, got %T: %v", err, err)
	}
	if appErr.Code != httpx.CodeStorageError {
		t.Errorf("error code = %d, want %d", appErr.Code, httpx.CodeStorageError)
	}
	// The caller-facing message stays generic
	if appErr.Message != "Failed to save certificate" {
		t.Errorf("message = %q leaks internals", appErr.Message)
	}
}
