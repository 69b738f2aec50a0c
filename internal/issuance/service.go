// Package issuance creates certificate records with freshly generated
// identifiers.
package issuance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"go_certify/internal/httpx"
	"go_certify/internal/identifier"
	"go_certify/internal/model"
	"go_certify/internal/qr"
	"go_certify/internal/store"
)

// maxGenerateAttempts bounds identifier regeneration when an insert
// collides with an existing certificate or reference number
const maxGenerateAttempts = 3

// Input carries the caller-supplied certificate data.
// EmployeeName, EmployeeID and Company are required; the rest fall back
// to fixed defaults when empty.
type Input struct {
	EmployeeName string `json:"employeeName"`
	EmployeeID   string `json:"employeeId"`
	Company      string `json:"company"`

	IssuanceNumber  string `json:"issuanceNumber"`
	IssueDate       string `json:"issueDate"`
	ExpiryDate      string `json:"expiryDate"`
	CourseName      string `json:"courseName"`
	CertificateType string `json:"certificateType"`
	Model           string `json:"model"`
	TrainerName     string `json:"trainerName"`
	Location        string `json:"location"`
	ContactPhone    string `json:"contactPhone"`
	ContactEmail    string `json:"contactEmail"`
	EmployeeImage   string `json:"employeeImage"`
}

// Result carries everything the caller needs to render the certificate
// artifact. VerificationPin is returned exactly once, here; read APIs
// never expose it again.
type Result struct {
	CertificateNumber string `json:"certificateNumber"`
	ReferenceNumber   string `json:"referenceNumber"`
	VerificationURL   string `json:"verificationUrl"`
	QRCodeDataURL     string `json:"qrCodeDataUrl"`
	VerificationPin   string `json:"verificationPin"`
}

// Service issues certificates
type Service struct {
	store    store.Store
	gen      *identifier.Generator
	baseURL  string
	encodeQR func(string) (string, error)
	now      func() time.Time
	log      *logrus.Entry
}

// New creates an issuance service. baseURL is the public origin used to
// build verification URLs, without a trailing slash.
func New(st store.Store, gen *identifier.Generator, baseURL string) *Service {
	return &Service{
		store:    st,
		gen:      gen,
		baseURL:  strings.TrimRight(baseURL, "/"),
		encodeQR: qr.DataURL,
		now:      time.Now,
		log:      logrus.WithField("service", "issuance"),
	}
}

// Issue validates the input, generates identifiers, persists the record
// and returns the identifiers plus the verification URL and QR payload.
//
// Validation runs before any generation or storage work: a rejected call
// leaves no partial state behind. A retried client submission creates a
// second record under new numbers; there is no idempotency key.
func (s *Service) Issue(ctx context.Context, input Input) (*Result, error) {
	if strings.TrimSpace(input.EmployeeName) == "" ||
		strings.TrimSpace(input.EmployeeID) == "" ||
		strings.TrimSpace(input.Company) == "" {
		return nil, httpx.ErrValidation("Missing required fields")
	}

	if len(input.EmployeeImage) > model.MaxEmployeeImageBytes {
		return nil, httpx.ErrValidation("Employee image exceeds the 10 MiB limit")
	}

	issueDate, expiryDate, err := s.resolveDates(input.IssueDate, input.ExpiryDate)
	if err != nil {
		return nil, err
	}

	record := model.Certificate{
		EmployeeName:    strings.TrimSpace(input.EmployeeName),
		EmployeeID:      strings.TrimSpace(input.EmployeeID),
		Company:         strings.TrimSpace(input.Company),
		IssuanceNumber:  fallback(input.IssuanceNumber, model.DefaultIssuanceNumber),
		CourseName:      fallback(input.CourseName, model.DefaultCourseName),
		CertificateType: fallback(input.CertificateType, model.DefaultCertificateType),
		Model:           fallback(input.Model, model.DefaultModel),
		TrainerName:     fallback(input.TrainerName, model.DefaultTrainerName),
		Location:        fallback(input.Location, model.DefaultLocation),
		ContactPhone:    fallback(input.ContactPhone, model.DefaultContactPhone),
		ContactEmail:    fallback(input.ContactEmail, model.DefaultContactEmail),
		EmployeeImage:   input.EmployeeImage,
		IssueDate:       issueDate,
		ExpiryDate:      expiryDate,
		IsActive:        true,
	}

	for attempt := 1; attempt <= maxGenerateAttempts; attempt++ {
		ids := s.gen.Generate()

		record.CertificateNumber = ids.CertificateNumber
		record.ReferenceNumber = ids.ReferenceNumber
		record.VerificationPin = ids.VerificationPin
		record.VerificationURL = fmt.Sprintf("%s/verify?cert=%s", s.baseURL, ids.CertificateNumber)

		qrDataURL, err := s.encodeQR(record.VerificationURL)
		if err != nil {
			return nil, httpx.ErrInternal("Failed to generate certificate", err)
		}
		record.QRCodeDataURL = qrDataURL

		err = s.store.Insert(ctx, &record)
		if errors.Is(err, store.ErrDuplicate) {
			s.log.WithFields(logrus.Fields{
				"certificateNumber": ids.CertificateNumber,
				"attempt":           attempt,
			}).Warn("identifier collision, regenerating")
			continue
		}
		if err != nil {
			return nil, httpx.ErrStorage("Failed to save certificate", err)
		}

		s.log.WithFields(logrus.Fields{
			"certificateNumber": record.CertificateNumber,
			"employeeId":        record.EmployeeID,
		}).Info("certificate issued")

		return &Result{
			CertificateNumber: record.CertificateNumber,
			ReferenceNumber:   record.ReferenceNumber,
			VerificationURL:   record.VerificationURL,
			QRCodeDataURL:     record.QRCodeDataURL,
			VerificationPin:   record.VerificationPin,
		}, nil
	}

	return nil, httpx.ErrStorage("Failed to save certificate",
		fmt.Errorf("identifier collision persisted after %d attempts", maxGenerateAttempts))
}

// resolveDates validates the issue date and derives the expiry date as
// issue date + 1 calendar year when the caller did not supply one.
func (s *Service) resolveDates(issueDate, expiryDate string) (string, string, error) {
	issue := s.now()
	if issueDate != "" {
		parsed, err := time.Parse(model.DateLayout, issueDate)
		if err != nil {
			return "", "", httpx.ErrValidation("Invalid issueDate, expected YYYY-MM-DD")
		}
		issue = parsed
	}
	issueStr := issue.Format(model.DateLayout)

	if expiryDate == "" {
		return issueStr, issue.AddDate(1, 0, 0).Format(model.DateLayout), nil
	}

	expiry, err := time.Parse(model.DateLayout, expiryDate)
	if err != nil {
		return "", "", httpx.ErrValidation("Invalid expiryDate, expected YYYY-MM-DD")
	}
	if !expiry.After(issue) {
		return "", "", httpx.ErrValidation("expiryDate must be after issueDate")
	}
	return issueStr, expiry.Format(model.DateLayout), nil
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
