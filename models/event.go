package models

import "time"

// Event is a program calendar entry: a submission deadline, orientation,
// or other date grantees need to see.
type Event struct {
	EventID     int        `gorm:"primaryKey;column:event_id" json:"event_id"`
	Title       string     `gorm:"column:title" json:"title"`
	Description *string    `gorm:"column:description" json:"description,omitempty"`
	StartDate   time.Time  `gorm:"column:start_date" json:"start_date"`
	EndDate     *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`
	IsDeadline  bool       `gorm:"column:is_deadline" json:"is_deadline"`
	CreatedBy   int        `gorm:"column:created_by" json:"created_by"`
	CreateAt    *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt    *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt    *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (Event) TableName() string {
	return "events"
}
