package controllers

import (
	"net/http"
	"strconv"

	"grantee-portal-api/config"
	"grantee-portal-api/models"

	"github.com/gin-gonic/gin"
)

// GetActivityLogs returns the newest activity log entries. Admin only.
func GetActivityLogs(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	q := config.DB.Preload("User").Order("created_at DESC").Limit(limit)
	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	var logs []models.ActivityLog
	if err := q.Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load activity logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"logs":    logs,
	})
}
