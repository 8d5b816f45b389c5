package controllers

import (
	"net/http"
	"strconv"
	"time"

	"grantee-portal-api/config"
	"grantee-portal-api/models"

	"github.com/gin-gonic/gin"
)

type eventRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"start_date" binding:"required"`
	EndDate     *time.Time `json:"end_date"`
	IsDeadline  bool       `json:"is_deadline"`
}

// GetEvents lists upcoming program events and deadlines for all users.
func GetEvents(c *gin.Context) {
	var events []models.Event
	q := config.DB.Where("delete_at IS NULL")

	if c.Query("upcoming") == "true" {
		q = q.Where("start_date >= ?", time.Now())
	}

	if err := q.Order("start_date ASC").Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"events":  events,
	})
}

// CreateEvent adds a calendar entry. Admin only.
func CreateEvent(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}

	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	now := time.Now()
	event := models.Event{
		Title:      req.Title,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		IsDeadline: req.IsDeadline,
		CreatedBy:  actor.ID,
		CreateAt:   &now,
		UpdateAt:   &now,
	}
	if req.Description != "" {
		event.Description = &req.Description
	}

	if err := config.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"event":   event,
	})
}

// UpdateEvent edits a calendar entry. Admin only.
func UpdateEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil || eventID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	now := time.Now()
	updates := map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
		"start_date":  req.StartDate,
		"end_date":    req.EndDate,
		"is_deadline": req.IsDeadline,
		"update_at":   now,
	}

	result := config.DB.Model(&models.Event{}).
		Where("event_id = ? AND delete_at IS NULL", eventID).
		Updates(updates)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Event updated successfully"})
}

// DeleteEvent soft-deletes a calendar entry. Admin only.
func DeleteEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil || eventID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	now := time.Now()
	result := config.DB.Model(&models.Event{}).
		Where("event_id = ? AND delete_at IS NULL", eventID).
		Update("delete_at", now)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Event deleted successfully"})
}
