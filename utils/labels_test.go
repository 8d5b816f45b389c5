package utils

import (
	"testing"

	"grantee-portal-api/models"
)

func TestLabels(t *testing.T) {
	if got := TitleLabel(models.TitleEnrollment); got != "Certificate of Enrollment" {
		t.Fatalf("TitleLabel = %q", got)
	}
	if got := SemesterLabel(models.SemesterSecond); got != "Second Semester" {
		t.Fatalf("SemesterLabel = %q", got)
	}
	if got := StatusLabel(models.StatusRejected); got != "Rejected" {
		t.Fatalf("StatusLabel = %q", got)
	}
}

func TestLabelsFallBackToRawValue(t *testing.T) {
	if got := TitleLabel(models.CertificateTitle("DIPLOMA")); got != "DIPLOMA" {
		t.Fatalf("expected raw value fallback, got %q", got)
	}
	if got := StatusLabel(models.CertificateStatus("ARCHIVED")); got != "ARCHIVED" {
		t.Fatalf("expected raw value fallback, got %q", got)
	}
}
