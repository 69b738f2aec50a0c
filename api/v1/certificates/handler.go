package certificates

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"go_certify/internal/card"
	"go_certify/internal/httpx"
	"go_certify/internal/issuance"
	"go_certify/internal/store"
	"go_certify/internal/verification"
)

// Handler serves the certificate routes
type Handler struct {
	issuance     *issuance.Service
	verification *verification.Service
	store        store.Store
}

// NewHandler creates a certificates handler
func NewHandler(iss *issuance.Service, ver *verification.Service, st store.Store) *Handler {
	return &Handler{
		issuance:     iss,
		verification: ver,
		store:        st,
	}
}

// Generate handles POST /certificates/generate
func (h *Handler) Generate(c *gin.Context) {
	var input issuance.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		httpx.FailErr(c, httpx.ErrValidation("Invalid request body"))
		return
	}

	result, err := h.issuance.Issue(c.Request.Context(), input)
	if err != nil {
		httpx.FailErr(c, err)
		return
	}

	httpx.OK(c, gin.H{
		"certificateNumber": result.CertificateNumber,
		"referenceNumber":   result.ReferenceNumber,
		"verificationUrl":   result.VerificationURL,
		"qrCodeDataUrl":     result.QRCodeDataURL,
		"verificationPin":   result.VerificationPin,
	})
}

// Verify handles GET /certificates/verify?cert=<certificateNumber>
func (h *Handler) Verify(c *gin.Context) {
	view, err := h.verification.Verify(c.Request.Context(), c.Query("cert"))
	if err != nil {
		httpx.FailErr(c, err)
		return
	}

	httpx.OK(c, gin.H{
		"certificate": view,
	})
}

// List handles GET /certificates (administrative listing)
func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	views, err := h.verification.List(c.Request.Context(), limit)
	if err != nil {
		httpx.FailErr(c, err)
		return
	}

	httpx.OK(c, gin.H{
		"certificates": views,
	})
}

// SetStatus handles POST /certificates/status (administrative
// activate/deactivate toggle)
func (h *Handler) SetStatus(c *gin.Context) {
	var req struct {
		CertificateNumber string `json:"certificateNumber" binding:"required"`
		IsActive          *bool  `json:"isActive" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrValidation("certificateNumber and isActive are required"))
		return
	}

	modified, err := h.store.UpdateActive(c.Request.Context(), req.CertificateNumber, *req.IsActive)
	if err != nil {
		httpx.FailErr(c, httpx.ErrStorage("Failed to update certificate", err))
		return
	}

	httpx.OK(c, gin.H{
		"modifiedCount": modified,
	})
}

// Card handles GET /certificates/card?cert=<certificateNumber> and
// returns the printable two-sided HTML card
func (h *Handler) Card(c *gin.Context) {
	view, err := h.verification.Verify(c.Request.Context(), c.Query("cert"))
	if err != nil {
		httpx.FailErr(c, err)
		return
	}

	html, err := card.Render(card.Data{
		CertificateNumber: view.CertificateNumber,
		ReferenceNumber:   view.ReferenceNumber,
		EmployeeName:      view.EmployeeName,
		EmployeeID:        view.EmployeeID,
		Company:           view.Company,
		IssuanceNumber:    view.IssuanceNumber,
		CourseName:        view.CourseName,
		CertificateType:   view.CertificateType,
		Model:             view.Model,
		TrainerName:       view.TrainerName,
		Location:          view.Location,
		ContactPhone:      view.ContactPhone,
		ContactEmail:      view.ContactEmail,
		EmployeeImage:     view.EmployeeImage,
		IssueDate:         view.IssueDate,
		ExpiryDate:        view.ExpiryDate,
		VerificationURL:   view.VerificationURL,
		QRCodeDataURL:     view.QRCodeDataURL,
	})
	if err != nil {
		httpx.FailErr(c, httpx.ErrInternal("Failed to render certificate card", err))
		return
	}

	c.Data(200, "text/html; charset=utf-8", html)
}
