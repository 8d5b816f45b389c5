package models

import (
	"fmt"
	"strings"
	"time"
)

// CertificateTitle is the closed set of certificate types a grantee may submit.
type CertificateTitle string

const (
	TitleEnrollment CertificateTitle = "ENROLLMENT"
	TitleGrades     CertificateTitle = "GRADES"
)

// Semester identifies the academic semester a certificate covers.
type Semester string

const (
	SemesterFirst  Semester = "FIRST"
	SemesterSecond Semester = "SECOND"
)

// CertificateStatus is the review state of a submitted certificate.
// PENDING is the only initial state; APPROVED and REJECTED are reachable
// from any state, including each other. There is no terminal state.
type CertificateStatus string

const (
	StatusPending  CertificateStatus = "PENDING"
	StatusApproved CertificateStatus = "APPROVED"
	StatusRejected CertificateStatus = "REJECTED"
)

// Accepted spellings per canonical value. The portal frontend sends the
// human-readable labels, older clients send the bare tokens.
var (
	titleAliases = map[string]CertificateTitle{
		"certificate of enrollment": TitleEnrollment,
		"enrollment":                TitleEnrollment,
		"certificate of grades":     TitleGrades,
		"grades":                    TitleGrades,
	}
	semesterAliases = map[string]Semester{
		"first":           SemesterFirst,
		"first semester":  SemesterFirst,
		"second":          SemesterSecond,
		"second semester": SemesterSecond,
	}
	statusAliases = map[string]CertificateStatus{
		"pending":  StatusPending,
		"approved": StatusApproved,
		"rejected": StatusRejected,
	}
)

func normalizeEnumInput(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func ParseCertificateTitle(s string) (CertificateTitle, error) {
	if title, ok := titleAliases[normalizeEnumInput(s)]; ok {
		return title, nil
	}
	return "", fmt.Errorf("unknown certificate title %q", s)
}

func ParseSemester(s string) (Semester, error) {
	if sem, ok := semesterAliases[normalizeEnumInput(s)]; ok {
		return sem, nil
	}
	return "", fmt.Errorf("unknown semester %q", s)
}

func ParseCertificateStatus(s string) (CertificateStatus, error) {
	if status, ok := statusAliases[normalizeEnumInput(s)]; ok {
		return status, nil
	}
	return "", fmt.Errorf("unknown certificate status %q", s)
}

type Certificate struct {
	CertificateID int               `gorm:"primaryKey;column:certificate_id" json:"certificate_id"`
	Title         CertificateTitle  `gorm:"column:title" json:"title"`
	Semester      Semester          `gorm:"column:semester" json:"semester"`
	Description   *string           `gorm:"column:description" json:"description,omitempty"`
	Status        CertificateStatus `gorm:"column:status" json:"status"`
	IsActive      bool              `gorm:"column:is_active" json:"is_active"`
	UserID        int               `gorm:"column:user_id" json:"user_id"`
	CreateAt      time.Time         `gorm:"column:create_at" json:"create_at"`
	UpdateAt      time.Time         `gorm:"column:update_at" json:"update_at"`

	// Relations
	Owner   *User               `gorm:"foreignKey:UserID" json:"owner,omitempty"`
	Files   []CertificateFile   `gorm:"foreignKey:CertificateID" json:"files,omitempty"`
	Remarks []CertificateRemark `gorm:"foreignKey:CertificateID" json:"remarks,omitempty"`
}

// CertificateFile is an attachment created together with its certificate.
// Rows are immutable after creation and owned exclusively by one certificate.
type CertificateFile struct {
	FileID        int       `gorm:"primaryKey;column:file_id" json:"file_id"`
	CertificateID int       `gorm:"column:certificate_id" json:"certificate_id"`
	FileName      string    `gorm:"column:file_name" json:"file_name"`
	FileURL       string    `gorm:"column:file_url" json:"file_url"`
	FileSize      int64     `gorm:"column:file_size" json:"file_size"`
	FileType      string    `gorm:"column:file_type" json:"file_type"`
	CreateAt      time.Time `gorm:"column:create_at" json:"create_at"`
}

// CertificateRemark is an append-only reviewer note. The author role is
// captured at creation time and does not follow later role changes.
type CertificateRemark struct {
	RemarkID      int       `gorm:"primaryKey;column:remark_id" json:"remark_id"`
	CertificateID int       `gorm:"column:certificate_id" json:"certificate_id"`
	Message       string    `gorm:"column:message" json:"message"`
	AuthorID      int       `gorm:"column:author_id" json:"author_id"`
	AuthorRole    Role      `gorm:"column:author_role" json:"author_role"`
	CreateAt      time.Time `gorm:"column:create_at" json:"create_at"`
}

// TableName overrides
func (Certificate) TableName() string {
	return "certificates"
}

func (CertificateFile) TableName() string {
	return "certificate_files"
}

func (CertificateRemark) TableName() string {
	return "certificate_remarks"
}
