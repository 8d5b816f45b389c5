package controllers

import (
	"net/http"
	"strconv"
	"time"

	"grantee-portal-api/config"
	"grantee-portal-api/models"

	"github.com/gin-gonic/gin"
)

// GetMyNotifications lists the caller's in-app notifications, newest first.
func GetMyNotifications(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	var notifications []models.Notification
	if err := config.DB.
		Where("user_id = ?", actor.ID).
		Order("create_at DESC").
		Limit(limit).
		Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notifications"})
		return
	}

	var unread int64
	config.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", actor.ID, false).
		Count(&unread)

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"notifications": notifications,
		"unread_count":  unread,
	})
}

// MarkNotificationRead marks one of the caller's notifications as read.
func MarkNotificationRead(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}

	notificationID, err := strconv.Atoi(c.Param("id"))
	if err != nil || notificationID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	now := time.Now()
	result := config.DB.Model(&models.Notification{}).
		Where("notification_id = ? AND user_id = ?", notificationID, actor.ID).
		Updates(map[string]interface{}{
			"is_read":   true,
			"update_at": now,
		})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// MarkAllNotificationsRead marks every unread notification of the caller.
func MarkAllNotificationsRead(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}

	now := time.Now()
	if err := config.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", actor.ID, false).
		Updates(map[string]interface{}{
			"is_read":   true,
			"update_at": now,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
