package services

import (
	"fmt"
	"math"
	"time"

	"grantee-portal-api/models"

	"gorm.io/gorm"
)

const (
	trailingMonths  = 6
	programStatsCap = 5
	insightCount    = 3
)

type CertificateCounts struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

type MonthlyBucket struct {
	Month     string `json:"month"`
	Submitted int64  `json:"submitted"`
}

type ProgramStat struct {
	Program    string `json:"program"`
	Grantees   int64  `json:"grantees"`
	Completion int    `json:"completion"`
	Pending    int64  `json:"pending"`
}

type DashboardStats struct {
	CertificateCounts  CertificateCounts `json:"certificate_counts"`
	MonthlySubmissions []MonthlyBucket   `json:"monthly_submissions"`
	ProgramStats       []ProgramStat     `json:"program_stats"`
	Insights           []string          `json:"insights"`
}

// ReportService derives read-only dashboard statistics over certificates.
// Results are recomputed on every call; nothing is cached or mutated.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// DashboardStats builds the full dashboard payload scoped to the actor's
// visibility. now anchors the trailing monthly window.
func (s *ReportService) DashboardStats(actor Actor, now time.Time) (*DashboardStats, error) {
	counts, err := s.certificateCounts(actor)
	if err != nil {
		return nil, err
	}

	monthly, err := s.monthlySubmissions(actor, now, trailingMonths)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		CertificateCounts:  counts,
		MonthlySubmissions: monthly,
	}

	// Program breakdown only makes sense for reviewers; a grantee's
	// dashboard shows their own counts and trend.
	if actor.Role.CanReview() {
		programs, err := s.programStats(actor)
		if err != nil {
			return nil, err
		}
		stats.ProgramStats = programs
	}

	stats.Insights = buildInsights(counts, monthly)
	return stats, nil
}

func (s *ReportService) certificateCounts(actor Actor) (CertificateCounts, error) {
	var rows []struct {
		Status models.CertificateStatus `gorm:"column:status"`
		Count  int64                    `gorm:"column:count"`
	}

	err := scopedCertificates(s.db, actor).
		Select("certificates.status AS status, COUNT(*) AS count").
		Group("certificates.status").
		Scan(&rows).Error
	if err != nil {
		return CertificateCounts{}, fmt.Errorf("failed to count certificates: %w", err)
	}

	var counts CertificateCounts
	for _, row := range rows {
		counts.Total += row.Count
		switch row.Status {
		case models.StatusPending:
			counts.Pending = row.Count
		case models.StatusApproved:
			counts.Approved = row.Count
		case models.StatusRejected:
			counts.Rejected = row.Count
		}
	}
	return counts, nil
}

// monthlySubmissions returns one bucket per calendar month for the trailing
// window ending at now's month. Months without submissions still appear
// with a zero count.
func (s *ReportService) monthlySubmissions(actor Actor, now time.Time, months int) ([]MonthlyBucket, error) {
	buckets := make([]MonthlyBucket, 0, months)

	for i := months - 1; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		nextMonth := monthStart.AddDate(0, 1, 0)

		var count int64
		err := scopedCertificates(s.db, actor).
			Where("certificates.create_at >= ? AND certificates.create_at < ?", monthStart, nextMonth).
			Count(&count).Error
		if err != nil {
			return nil, fmt.Errorf("failed to count submissions for %s: %w", monthStart.Format("2006-01"), err)
		}

		buckets = append(buckets, MonthlyBucket{
			Month:     monthStart.Format("Jan"),
			Submitted: count,
		})
	}

	return buckets, nil
}

// programStats groups grantees by batch: how many grantees each program has,
// what share of its certificates is approved, and how many are still
// pending. Top five programs by grantee count.
func (s *ReportService) programStats(actor Actor) ([]ProgramStat, error) {
	var rows []struct {
		Program  string `gorm:"column:program"`
		Grantees int64  `gorm:"column:grantees"`
		Total    int64  `gorm:"column:total"`
		Approved int64  `gorm:"column:approved"`
		Pending  int64  `gorm:"column:pending"`
	}

	q := s.db.Table("users u").
		Select(`u.batch AS program,
			COUNT(DISTINCT u.user_id) AS grantees,
			COUNT(c.certificate_id) AS total,
			COUNT(CASE WHEN c.status = ? THEN 1 END) AS approved,
			COUNT(CASE WHEN c.status = ? THEN 1 END) AS pending`,
			models.StatusApproved, models.StatusPending).
		Joins("LEFT JOIN certificates c ON c.user_id = u.user_id").
		Where("u.role = ? AND u.delete_at IS NULL", models.RoleUser)

	if actor.Role == models.RolePersonnel {
		q = q.Where("u.added_by = ?", actor.ID)
	}

	if err := q.Group("u.batch").
		Order("grantees DESC").
		Limit(programStatsCap).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load program stats: %w", err)
	}

	stats := make([]ProgramStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, ProgramStat{
			Program:    row.Program,
			Grantees:   row.Grantees,
			Completion: completionPercent(row.Approved, row.Total),
			Pending:    row.Pending,
		})
	}
	return stats, nil
}

// completionPercent is round(approved/total*100), 0 when there is nothing
// to complete.
func completionPercent(approved, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(approved) / float64(total) * 100))
}

var fillerInsights = []string{
	"Encourage grantees to submit their certificates early in the semester.",
	"Review upcoming deadlines on the program calendar to keep submissions on track.",
	"Regular feedback through remarks helps grantees fix rejected submissions faster.",
}

// buildInsights produces exactly three sentences: threshold rules first,
// generic filler after. Cosmetic text for the dashboard, not a data source.
func buildInsights(counts CertificateCounts, monthly []MonthlyBucket) []string {
	insights := make([]string, 0, insightCount)

	if counts.Pending > 0 {
		insights = append(insights, fmt.Sprintf(
			"%d certificate(s) are awaiting review. Consider sending grantees a status update.",
			counts.Pending))
	}

	if counts.Total > 0 {
		completion := completionPercent(counts.Approved, counts.Total)
		if completion >= 75 {
			insights = append(insights, fmt.Sprintf(
				"Approval completion is strong at %d%% of all submissions.", completion))
		} else if completion < 50 {
			insights = append(insights, fmt.Sprintf(
				"Only %d%% of submissions are approved so far. A review push may help.", completion))
		}
	}

	quietMonths := 0
	for _, bucket := range monthly {
		if bucket.Submitted == 0 {
			quietMonths++
		}
	}
	if quietMonths > 0 && len(monthly) > 0 {
		insights = append(insights, fmt.Sprintf(
			"%d of the last %d months had no submissions. A deadline reminder could help.",
			quietMonths, len(monthly)))
	}

	for _, filler := range fillerInsights {
		if len(insights) >= insightCount {
			break
		}
		insights = append(insights, filler)
	}

	return insights[:insightCount]
}
