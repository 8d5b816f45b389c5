package utils

import "grantee-portal-api/models"

// Human-readable labels used in email bodies and reports. Canonical enum
// values live in the models package; everything user-facing goes through
// these maps.
var (
	titleLabels = map[models.CertificateTitle]string{
		models.TitleEnrollment: "Certificate of Enrollment",
		models.TitleGrades:     "Certificate of Grades",
	}
	semesterLabels = map[models.Semester]string{
		models.SemesterFirst:  "First Semester",
		models.SemesterSecond: "Second Semester",
	}
	statusLabels = map[models.CertificateStatus]string{
		models.StatusPending:  "Pending",
		models.StatusApproved: "Approved",
		models.StatusRejected: "Rejected",
	}
)

func TitleLabel(t models.CertificateTitle) string {
	if label, ok := titleLabels[t]; ok {
		return label
	}
	return string(t)
}

func SemesterLabel(s models.Semester) string {
	if label, ok := semesterLabels[s]; ok {
		return label
	}
	return string(s)
}

func StatusLabel(s models.CertificateStatus) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}
