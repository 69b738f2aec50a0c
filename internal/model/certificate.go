package model

import "time"

// Date layout used for issue_date and expiry_date values
const DateLayout = "2006-01-02"

// MaxEmployeeImageBytes is the hard cap for the inline employee photo.
// Anything larger is rejected before it reaches the store.
const MaxEmployeeImageBytes = 10 << 20

// Certificate represents one issued training certificate
type Certificate struct {
	ID                int    `gorm:"primaryKey;autoIncrement" json:"-"`
	CertificateNumber string `gorm:"type:varchar(64);not null;uniqueIndex" json:"certificateNumber"`
	ReferenceNumber   string `gorm:"type:varchar(64);not null;uniqueIndex" json:"referenceNumber"`
	// VerificationPin is a secondary secret. It is stored but must never
	// be serialized by any read API.
	VerificationPin string `gorm:"type:varchar(6)" json:"-"`

	EmployeeName string `gorm:"type:varchar(255);not null" json:"employeeName"`
	EmployeeID   string `gorm:"type:varchar(64);not null" json:"employeeId"`
	Company      string `gorm:"type:varchar(255);not null" json:"company"`

	IssuanceNumber  string `gorm:"type:varchar(32)" json:"issuanceNumber"`
	CourseName      string `gorm:"type:varchar(255)" json:"courseName"`
	CertificateType string `gorm:"type:varchar(255)" json:"certificateType"`
	Model           string `gorm:"type:varchar(255)" json:"model"`
	TrainerName     string `gorm:"type:varchar(255)" json:"trainerName"`
	Location        string `gorm:"type:varchar(255)" json:"location"`
	ContactPhone    string `gorm:"type:varchar(64)" json:"contactPhone"`
	ContactEmail    string `gorm:"type:varchar(255)" json:"contactEmail"`

	// EmployeeImage holds an inline base64 image payload, capped at
	// MaxEmployeeImageBytes by the issuance precondition check.
	EmployeeImage string `gorm:"type:longtext" json:"employeeImage,omitempty"`

	IssueDate  string `gorm:"type:varchar(10)" json:"issueDate"`
	ExpiryDate string `gorm:"type:varchar(10)" json:"expiryDate"`

	VerificationURL string `gorm:"type:varchar(512)" json:"verificationUrl"`
	QRCodeDataURL   string `gorm:"type:longtext" json:"qrCodeDataUrl"`

	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for Certificate
func (Certificate) TableName() string {
	return "certificates"
}

// Certificate status constants
const (
	StatusValid    = "valid"
	StatusExpired  = "expired"
	StatusInactive = "inactive"
)

// Fallback values applied to optional fields left empty at issuance
const (
	DefaultIssuanceNumber  = "1"
	DefaultCourseName      = "BV Safety Course"
	DefaultCertificateType = "FIRE WATCH & STANDBY"
	DefaultModel           = "N/A"
	DefaultTrainerName     = "ZEESHAN KHAN"
	DefaultLocation        = "JUBAIL"
	DefaultContactPhone    = "013 347 9683"
	DefaultContactEmail    = "byjubail.admin@bureauveritas.com"
)
