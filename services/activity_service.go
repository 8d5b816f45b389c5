package services

import (
	"log"
	"time"

	"grantee-portal-api/models"

	"gorm.io/gorm"
)

// LogActivity appends one row to the activity log. Best effort: a failed
// insert is logged and swallowed so auditing never breaks the request.
func LogActivity(db *gorm.DB, userID int, action, entityType string, entityID *int, description, ip string) {
	entry := models.ActivityLog{
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		IPAddress:  ip,
		CreatedAt:  time.Now(),
	}
	if description != "" {
		entry.Description = &description
	}

	if err := db.Create(&entry).Error; err != nil {
		log.Printf("failed to record activity log (user=%d action=%s): %v", userID, action, err)
	}
}
