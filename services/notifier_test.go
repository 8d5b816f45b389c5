package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"grantee-portal-api/models"
)

var (
	selectReviewerPattern     = regexp.MustCompile("(?i)SELECT \\* FROM `users` WHERE user_id = \\?")
	insertNotificationPattern = regexp.MustCompile("(?i)INSERT INTO `notifications`")
)

func approvedCertificate() *models.Certificate {
	return &models.Certificate{
		CertificateID: 7,
		Title:         models.TitleEnrollment,
		Semester:      models.SemesterFirst,
		Status:        models.StatusApproved,
		UserID:        3,
		CreateAt:      time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC),
		Owner: &models.User{
			UserID:    3,
			UserFname: "Ana",
			UserLname: "Reyes",
			Email:     "ana@example.edu",
			Role:      models.RoleUser,
		},
	}
}

func notifierSteps() []*queryStep {
	return []*queryStep{
		{
			kind:    kindQuery,
			pattern: selectReviewerPattern,
			columns: []string{"user_id", "user_fname", "user_lname", "email", "role"},
			rows: [][]driver.Value{
				{int64(1), "Maria", "Cruz", "maria@example.edu", "personnel"},
			},
		},
		{
			kind:    kindExec,
			pattern: insertNotificationPattern,
		},
	}
}

func TestCertificateStatusChangedSendsEmail(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, notifierSteps())
	defer cleanup()

	var gotTo []string
	var gotSubject, gotHTML string
	orig := sendMailFunc
	sendMailFunc = func(to []string, subject, html string) error {
		gotTo = to
		gotSubject = subject
		gotHTML = html
		return nil
	}
	defer func() { sendMailFunc = orig }()

	n := NewNotifier(db)
	err := n.CertificateStatusChanged(approvedCertificate(), 1, "All documents verified.")
	if err != nil {
		t.Fatalf("CertificateStatusChanged returned error: %v", err)
	}

	if len(gotTo) != 1 || gotTo[0] != "ana@example.edu" {
		t.Fatalf("expected email to owner, got %v", gotTo)
	}
	if gotSubject != "Certificate of Enrollment - Approved" {
		t.Fatalf("unexpected subject: %q", gotSubject)
	}
	for _, want := range []string{
		"Dear Ana Reyes,",
		"First Semester",
		"March 3, 2025",
		"approved by Maria Cruz",
		"Reviewer remark: All documents verified.",
	} {
		if !strings.Contains(gotHTML, want) {
			t.Fatalf("email body missing %q:\n%s", want, gotHTML)
		}
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCertificateStatusChangedKeepsNotificationWhenEmailFails(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, notifierSteps())
	defer cleanup()

	orig := sendMailFunc
	sendMailFunc = func([]string, string, string) error {
		return errors.New("smtp connection refused")
	}
	defer func() { sendMailFunc = orig }()

	n := NewNotifier(db)
	err := n.CertificateStatusChanged(approvedCertificate(), 1, "")
	if err == nil {
		t.Fatal("expected delivery error")
	}

	// The in-app notification insert must already have happened.
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("notification row was not written: %v", err)
	}
}

func TestCertificateStatusChangedIgnoresPending(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	orig := sendMailFunc
	called := false
	sendMailFunc = func([]string, string, string) error {
		called = true
		return nil
	}
	defer func() { sendMailFunc = orig }()

	cert := approvedCertificate()
	cert.Status = models.StatusPending

	n := NewNotifier(db)
	if err := n.CertificateStatusChanged(cert, 1, ""); err == nil {
		t.Fatal("expected error for non-terminal status")
	}
	if called {
		t.Fatal("no email must be sent for pending certificates")
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unexpected store access: %v", err)
	}
}

func TestComposeStatusMessageWithoutRemark(t *testing.T) {
	cert := approvedCertificate()
	cert.Status = models.StatusRejected

	subject, message := composeStatusMessage(cert, "the review team", "   ")
	if subject != "Certificate of Enrollment - Rejected" {
		t.Fatalf("unexpected subject: %q", subject)
	}
	if !strings.Contains(message, "rejected by the review team") {
		t.Fatalf("unexpected message: %q", message)
	}
	if strings.Contains(message, "Reviewer remark") {
		t.Fatalf("blank remark must be omitted: %q", message)
	}
}

func TestBuildStatusEmailHTMLEscapes(t *testing.T) {
	html := buildStatusEmailHTML("Subject", "", "line one\n<script>alert(1)</script>")
	if !strings.Contains(html, "Dear Grantee,") {
		t.Fatalf("expected fallback greeting:\n%s", html)
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("message must be escaped:\n%s", html)
	}
	if !strings.Contains(html, "line one<br />") {
		t.Fatalf("newlines must become line breaks:\n%s", html)
	}
}
