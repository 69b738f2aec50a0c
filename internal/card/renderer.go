// Package card renders the printable two-sided certificate artifact.
// The rest of the system treats the output as opaque: it only hands in
// the identifiers, QR payload and display fields.
package card

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// Data carries everything the card template consumes
type Data struct {
	CertificateNumber string
	ReferenceNumber   string
	EmployeeName      string
	EmployeeID        string
	Company           string
	IssuanceNumber    string
	CourseName        string
	CertificateType   string
	Model             string
	TrainerName       string
	Location          string
	ContactPhone      string
	ContactEmail      string
	EmployeeImage     string
	IssueDate         string
	ExpiryDate        string
	VerificationURL   string
	QRCodeDataURL     string
}

var cardTemplate = template.Must(template.New("card").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Certificate {{.CertificateNumber}}</title>
<style>
  body { font-family: Arial, sans-serif; margin: 0; background: #eee; }
  .card { width: 420px; min-height: 280px; background: #fff; margin: 16px auto; padding: 20px; border: 1px solid #333; page-break-after: always; }
  .cert-row { display: flex; justify-content: space-between; margin: 4px 0; }
  .cert-label { font-weight: bold; }
  .photo { width: 96px; height: 120px; object-fit: cover; border: 1px solid #999; float: right; }
  .qr { display: block; width: 160px; height: 160px; margin: 12px auto; }
  .disclaimer { font-size: 10px; color: #555; margin-top: 12px; }
  .footer { font-size: 11px; display: flex; justify-content: space-between; margin-top: 16px; }
  @media print { body { background: #fff; } .card { border: none; margin: 0; } }
</style>
</head>
<body>
<div class="card">
  {{if .PhotoURL}}<img class="photo" src="{{.PhotoURL}}" alt="employee photo">{{end}}
  <h3>{{.CourseName}}</h3>
  <div class="cert-row"><span class="cert-label">Certificate No:</span><span>{{.CertificateNumber}}</span></div>
  <div class="cert-row"><span class="cert-label">Reference No:</span><span>{{.ReferenceNumber}}</span></div>
  <div class="cert-row"><span class="cert-label">Name:</span><span>{{.EmployeeName}}</span></div>
  <div class="cert-row"><span class="cert-label">ID No:</span><span>{{.EmployeeID}}</span></div>
  <div class="cert-row"><span class="cert-label">Company:</span><span>{{.Company}}</span></div>
  <div class="cert-row"><span class="cert-label">Issuance No:</span><span>{{.IssuanceNumber}}</span></div>
  <div class="cert-row"><span class="cert-label">Issued On:</span><span>{{.IssueDate}}</span></div>
  <div class="cert-row"><span class="cert-label">Valid Until:</span><span>{{.ExpiryDate}}</span></div>
  <p>This certifies that the above mentioned person has successfully completed the {{.CourseName}}. Refer to backside for details.</p>
  <div class="footer"><span>For any queries: Tel. {{.ContactPhone}}</span><span>{{.ContactEmail}}</span></div>
</div>
<div class="card">
  <div class="cert-row"><span class="cert-label">TYPE:</span><span>{{.CertificateType}}</span></div>
  <div class="cert-row"><span class="cert-label">MODEL:</span><span>{{.Model}}</span></div>
  <div class="cert-row"><span class="cert-label">TRAINER:</span><span>{{.TrainerName}}</span></div>
  <div class="cert-row"><span class="cert-label">LOCATION:</span><span>{{.Location}}</span></div>
  <img class="qr" src="{{.QRURL}}" alt="verification QR code">
  <div class="disclaimer">
    Scan the QR code or visit {{.VerificationURL}} to verify this certificate.
    This card remains the property of the issuing body and must be returned on request.
  </div>
</div>
</body>
</html>
`))

// templateData mirrors Data with the image payloads typed as
// template.URL: html/template rejects data: URLs in src attributes
// otherwise. The employee image is caller input, so it is only passed
// through when it actually is an inline image payload.
type templateData struct {
	Data
	PhotoURL template.URL
	QRURL    template.URL
}

// Render produces the printable HTML card
func Render(data Data) ([]byte, error) {
	var buf bytes.Buffer
	td := templateData{
		Data:  data,
		QRURL: template.URL(data.QRCodeDataURL),
	}
	if strings.HasPrefix(data.EmployeeImage, "data:image/") {
		td.PhotoURL = template.URL(data.EmployeeImage)
	}
	if err := cardTemplate.Execute(&buf, td); err != nil {
		return nil, fmt.Errorf("failed to render certificate card: %w", err)
	}
	return buf.Bytes(), nil
}
