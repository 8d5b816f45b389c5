package services

import (
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"grantee-portal-api/config"
	"grantee-portal-api/models"
	"grantee-portal-api/utils"

	"gorm.io/gorm"
)

// sendMailFunc is the delivery seam; tests swap it for a stub.
var sendMailFunc = config.SendMail

var ErrNoRecipient = errors.New("certificate owner has no email address")

// Notifier delivers the review outcome to the certificate owner: an in-app
// notification row plus an email. It runs strictly after the status change
// has been committed; its failures are the caller's to log, never to
// propagate into the transition result.
type Notifier struct {
	db *gorm.DB
}

func NewNotifier(db *gorm.DB) *Notifier {
	return &Notifier{db: db}
}

// CertificateStatusChanged notifies the owner of cert that a reviewer moved
// it to APPROVED or REJECTED. remark is the reviewer's optional note.
func (n *Notifier) CertificateStatusChanged(cert *models.Certificate, reviewerID int, remark string) error {
	if cert == nil {
		return errors.New("nil certificate")
	}
	if cert.Status != models.StatusApproved && cert.Status != models.StatusRejected {
		return fmt.Errorf("status %s does not notify", cert.Status)
	}

	owner := cert.Owner
	if owner == nil || owner.UserID == 0 {
		var u models.User
		if err := n.db.First(&u, "user_id = ?", cert.UserID).Error; err != nil {
			return fmt.Errorf("failed to load certificate owner: %w", err)
		}
		owner = &u
	}

	var reviewer models.User
	reviewerName := "the review team"
	if err := n.db.First(&reviewer, "user_id = ?", reviewerID).Error; err == nil {
		if name := reviewer.FullName(); name != "" {
			reviewerName = name
		}
	}

	subject, message := composeStatusMessage(cert, reviewerName, remark)

	// In-app notification first: it shares the durable store with the
	// transition and should survive an SMTP outage.
	now := time.Now()
	certID := cert.CertificateID
	notifType := "success"
	if cert.Status == models.StatusRejected {
		notifType = "error"
	}
	if err := n.db.Create(&models.Notification{
		UserID:               owner.UserID,
		Title:                subject,
		Message:              message,
		Type:                 notifType,
		RelatedCertificateID: &certID,
		IsRead:               false,
		CreateAt:             now,
	}).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	if strings.TrimSpace(owner.Email) == "" {
		return ErrNoRecipient
	}

	html := buildStatusEmailHTML(subject, owner.FullName(), message)
	if err := sendMailFunc([]string{owner.Email}, subject, html); err != nil {
		return fmt.Errorf("failed to send status email: %w", err)
	}
	return nil
}

func composeStatusMessage(cert *models.Certificate, reviewerName, remark string) (subject, message string) {
	titleLabel := utils.TitleLabel(cert.Title)
	statusLabel := utils.StatusLabel(cert.Status)

	subject = fmt.Sprintf("%s - %s", titleLabel, statusLabel)

	verb := "approved"
	if cert.Status == models.StatusRejected {
		verb = "rejected"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Your %s for the %s submitted on %s has been %s by %s.",
		titleLabel,
		utils.SemesterLabel(cert.Semester),
		cert.CreateAt.Format("January 2, 2006"),
		verb,
		reviewerName,
	)
	if remark = strings.TrimSpace(remark); remark != "" {
		fmt.Fprintf(&b, "\n\nReviewer remark: %s", remark)
	}
	return subject, b.String()
}

// buildStatusEmailHTML wraps the plain message in the portal's email shell.
func buildStatusEmailHTML(subject, recipientName, message string) string {
	name := strings.TrimSpace(recipientName)
	if name == "" {
		name = "Grantee"
	}

	escapedSubject := template.HTMLEscapeString(subject)
	escapedGreeting := template.HTMLEscapeString(fmt.Sprintf("Dear %s,", name))
	escapedMessage := template.HTMLEscapeString(strings.TrimSpace(message))
	escapedMessage = strings.ReplaceAll(strings.ReplaceAll(escapedMessage, "\r\n", "\n"), "\r", "\n")
	escapedMessage = strings.ReplaceAll(escapedMessage, "\n", "<br />")

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
</head>
<body style="margin:0;padding:0;background-color:#f9fafb;font-family:'Segoe UI',Tahoma,Arial,sans-serif;">
<div style="max-width:640px;margin:0 auto;padding:24px 20px;">
  <div style="background-color:#ffffff;border:1px solid #e5e7eb;border-radius:12px;padding:24px 24px 28px 24px;">
    <p style="margin:0 0 16px 0;font-size:16px;line-height:1.7;color:#111827;">%s</p>
    <p style="margin:0 0 0 0;font-size:16px;line-height:1.7;color:#111827;word-break:break-word;">%s</p>
  </div>
</div>
</body>
</html>`, escapedSubject, escapedGreeting, escapedMessage)
}
