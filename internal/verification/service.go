// Package verification resolves certificate numbers to sanitized record
// views with a computed validity status.
package verification

import (
	"context"
	"errors"
	"strings"
	"time"

	"go_certify/internal/cert"
	"go_certify/internal/httpx"
	"go_certify/internal/model"
	"go_certify/internal/store"
)

// View is the sanitized, externally visible projection of a certificate
// record. It never carries the verification PIN or internal row IDs.
type View struct {
	CertificateNumber string `json:"certificateNumber"`
	ReferenceNumber   string `json:"referenceNumber"`

	EmployeeName string `json:"employeeName"`
	EmployeeID   string `json:"employeeId"`
	Company      string `json:"company"`

	IssuanceNumber  string `json:"issuanceNumber"`
	CourseName      string `json:"courseName"`
	CertificateType string `json:"certificateType"`
	Model           string `json:"model"`
	TrainerName     string `json:"trainerName"`
	Location        string `json:"location"`
	ContactPhone    string `json:"contactPhone"`
	ContactEmail    string `json:"contactEmail"`

	EmployeeImage string `json:"employeeImage,omitempty"`

	IssueDate  string `json:"issueDate"`
	ExpiryDate string `json:"expiryDate"`

	VerificationURL string `json:"verificationUrl"`
	QRCodeDataURL   string `json:"qrCodeDataUrl"`

	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`

	IsExpired bool   `json:"isExpired"`
	Status    string `json:"status"`
}

// Service looks up certificates and computes their status. Read-only.
type Service struct {
	store store.Store
	now   func() time.Time
}

// New creates a verification service
func New(st store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

// Verify resolves a certificate number to its sanitized view.
// Deactivated certificates are reported exactly like unknown ones: the
// caller cannot distinguish "never existed" from "revoked by an admin".
func (s *Service) Verify(ctx context.Context, certificateNumber string) (*View, error) {
	number := strings.TrimSpace(certificateNumber)
	if number == "" {
		return nil, httpx.ErrValidation("Certificate number is required")
	}

	record, err := s.store.FindByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, httpx.ErrNotFound("Certificate not found or inactive")
		}
		return nil, httpx.ErrStorage("Failed to verify certificate", err)
	}

	view := s.sanitize(record)
	return &view, nil
}

// List returns all certificates sanitized and sorted newest first,
// capped at limit. Used by the administrative listing.
func (s *Service) List(ctx context.Context, limit int) ([]View, error) {
	records, err := s.store.FindAll(ctx, limit)
	if err != nil {
		return nil, httpx.ErrStorage("Failed to fetch certificates", err)
	}

	views := make([]View, 0, len(records))
	for i := range records {
		views = append(views, s.sanitize(&records[i]))
	}
	return views, nil
}

func (s *Service) sanitize(record *model.Certificate) View {
	now := s.now()
	return View{
		CertificateNumber: record.CertificateNumber,
		ReferenceNumber:   record.ReferenceNumber,
		EmployeeName:      record.EmployeeName,
		EmployeeID:        record.EmployeeID,
		Company:           record.Company,
		IssuanceNumber:    record.IssuanceNumber,
		CourseName:        record.CourseName,
		CertificateType:   record.CertificateType,
		Model:             record.Model,
		TrainerName:       record.TrainerName,
		Location:          record.Location,
		ContactPhone:      record.ContactPhone,
		ContactEmail:      record.ContactEmail,
		EmployeeImage:     record.EmployeeImage,
		IssueDate:         record.IssueDate,
		ExpiryDate:        record.ExpiryDate,
		VerificationURL:   record.VerificationURL,
		QRCodeDataURL:     record.QRCodeDataURL,
		IsActive:          record.IsActive,
		CreatedAt:         record.CreatedAt,
		IsExpired:         cert.IsExpired(record.ExpiryDate, now),
		Status:            cert.Status(record.ExpiryDate, record.IsActive, now),
	}
}
