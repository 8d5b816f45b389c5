package models

import "time"

// ActivityLog is an append-only record of user actions. Rows are never
// updated or deleted.
type ActivityLog struct {
	LogID       int       `gorm:"primaryKey;column:log_id" json:"log_id"`
	UserID      int       `gorm:"column:user_id" json:"user_id"`
	Action      string    `gorm:"column:action" json:"action"`
	EntityType  string    `gorm:"column:entity_type" json:"entity_type"`
	EntityID    *int      `gorm:"column:entity_id" json:"entity_id,omitempty"`
	Description *string   `gorm:"column:description" json:"description,omitempty"`
	IPAddress   string    `gorm:"column:ip_address" json:"ip_address"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
