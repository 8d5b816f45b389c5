package controllers

import (
	"net/http"
	"time"

	"grantee-portal-api/config"
	"grantee-portal-api/services"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns dashboard statistics scoped to the caller:
// submission counts, the 6-month submission trend, program breakdowns for
// reviewers, and the generated insight sentences.
func GetDashboardStats(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}

	svc := services.NewReportService(config.DB)
	stats, err := svc.DashboardStats(actor, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}
