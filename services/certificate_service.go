package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"grantee-portal-api/models"

	"gorm.io/gorm"
)

var (
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrReviewerRequired    = errors.New("only admin or personnel can review certificates")
	ErrInvalidStatus       = errors.New("status must be pending, approved or rejected")
	ErrInvalidTitle        = errors.New("certificate title is not allowed")
	ErrInvalidSemester     = errors.New("semester must be first or second")
	ErrNoFiles             = errors.New("at least one file is required")
)

// Actor is the authenticated identity a handler resolved from the request.
// It is decoded once at the middleware boundary and passed explicitly.
type Actor struct {
	ID   int
	Role models.Role
}

type FileInput struct {
	FileName string `json:"file_name" binding:"required"`
	FileURL  string `json:"file_url" binding:"required"`
	FileSize int64  `json:"file_size"`
	FileType string `json:"file_type"`
}

type CreateCertificateInput struct {
	Title       string
	Semester    string
	Description string
	Files       []FileInput
}

// TransitionInput carries a reviewer's update. Status and IsActive are
// optional; a request supplying neither is tolerated as a no-op update.
type TransitionInput struct {
	Status   *string
	IsActive *bool
	Remark   string
}

type CertificateService struct {
	db *gorm.DB
}

func NewCertificateService(db *gorm.DB) *CertificateService {
	return &CertificateService{db: db}
}

// Create stores a new certificate owned by the actor together with its file
// attachments in one transaction. New certificates start PENDING and active.
func (s *CertificateService) Create(actor Actor, in CreateCertificateInput) (*models.Certificate, error) {
	title, err := models.ParseCertificateTitle(in.Title)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTitle, err)
	}

	semester, err := models.ParseSemester(in.Semester)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSemester, err)
	}

	if len(in.Files) == 0 {
		return nil, ErrNoFiles
	}

	now := time.Now()
	cert := models.Certificate{
		Title:    title,
		Semester: semester,
		Status:   models.StatusPending,
		IsActive: true,
		UserID:   actor.ID,
		CreateAt: now,
		UpdateAt: now,
	}
	if desc := strings.TrimSpace(in.Description); desc != "" {
		cert.Description = &desc
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	if err := tx.Create(&cert).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create certificate: %w", err)
	}

	files := make([]models.CertificateFile, 0, len(in.Files))
	for _, f := range in.Files {
		files = append(files, models.CertificateFile{
			CertificateID: cert.CertificateID,
			FileName:      f.FileName,
			FileURL:       f.FileURL,
			FileSize:      f.FileSize,
			FileType:      f.FileType,
			CreateAt:      now,
		})
	}
	if err := tx.Create(&files).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create certificate files: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	cert.Files = files
	return &cert, nil
}

// Transition is the sole mutator of certificate status. It validates the
// actor's role and the requested status before touching the store, applies
// the update and the optional remark transactionally, and returns the
// certificate with owner, files and remarks (newest-first).
//
// Notification dispatch is deliberately NOT part of this method: the caller
// triggers it after the write is durable, on a separate error channel.
func (s *CertificateService) Transition(actor Actor, certificateID int, in TransitionInput) (*models.Certificate, error) {
	if !actor.Role.CanReview() {
		return nil, ErrReviewerRequired
	}

	var newStatus *models.CertificateStatus
	if in.Status != nil {
		parsed, err := models.ParseCertificateStatus(*in.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
		}
		newStatus = &parsed
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var cert models.Certificate
	if err := tx.First(&cert, "certificate_id = ?", certificateID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCertificateNotFound
		}
		return nil, fmt.Errorf("failed to load certificate: %w", err)
	}

	now := time.Now()
	updates := map[string]interface{}{
		"update_at": now,
	}
	if newStatus != nil {
		updates["status"] = *newStatus
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}

	if err := tx.Model(&models.Certificate{}).
		Where("certificate_id = ?", certificateID).
		Updates(updates).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update certificate: %w", err)
	}

	if remark := strings.TrimSpace(in.Remark); remark != "" {
		if err := tx.Create(&models.CertificateRemark{
			CertificateID: certificateID,
			Message:       remark,
			AuthorID:      actor.ID,
			AuthorRole:    actor.Role,
			CreateAt:      now,
		}).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to append remark: %w", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return s.GetWithRelations(certificateID)
}

// GetWithRelations loads a certificate with its owner, files and remarks,
// remarks ordered newest-first for display.
func (s *CertificateService) GetWithRelations(certificateID int) (*models.Certificate, error) {
	var cert models.Certificate
	err := s.db.
		Preload("Files").
		Preload("Owner").
		Preload("Remarks", func(db *gorm.DB) *gorm.DB {
			return db.Order("create_at DESC")
		}).
		First(&cert, "certificate_id = ?", certificateID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCertificateNotFound
		}
		return nil, err
	}
	return &cert, nil
}

// Get loads one certificate, enforcing the actor's visibility.
func (s *CertificateService) Get(actor Actor, certificateID int) (*models.Certificate, error) {
	cert, err := s.GetWithRelations(certificateID)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case models.RoleAdmin:
		return cert, nil
	case models.RolePersonnel:
		if cert.Owner != nil && cert.Owner.AddedBy != nil && *cert.Owner.AddedBy == actor.ID {
			return cert, nil
		}
		return nil, ErrCertificateNotFound
	default:
		if cert.UserID == actor.ID {
			return cert, nil
		}
		return nil, ErrCertificateNotFound
	}
}

// List returns certificates visible to the actor, newest first. A status,
// when given, narrows the result.
func (s *CertificateService) List(actor Actor, status *models.CertificateStatus) ([]models.Certificate, error) {
	q := scopedCertificates(s.db, actor)
	if status != nil {
		q = q.Where("certificates.status = ?", *status)
	}

	var certs []models.Certificate
	if err := q.
		Preload("Files").
		Preload("Owner").
		Order("certificates.create_at DESC").
		Find(&certs).Error; err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}
	return certs, nil
}

// scopedCertificates narrows a certificates query to the actor's visibility:
// admin sees all, personnel sees grantees they registered, everyone else
// sees only their own rows.
func scopedCertificates(db *gorm.DB, actor Actor) *gorm.DB {
	q := db.Model(&models.Certificate{})
	switch actor.Role {
	case models.RoleAdmin:
		return q
	case models.RolePersonnel:
		return q.
			Joins("JOIN users ON users.user_id = certificates.user_id").
			Where("users.added_by = ? AND users.delete_at IS NULL", actor.ID)
	default:
		return q.Where("certificates.user_id = ?", actor.ID)
	}
}
