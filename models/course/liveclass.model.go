package course

import (
	"time"

	"gorm.io/gorm"
)

const (
	LiveClassStatusScheduled = "SCHEDULED"
	LiveClassStatusCancelled = "CANCELLED"
)

// LiveClass is a scheduled live session for a course, backed by a room
// created at the streaming provider.
type LiveClass struct {
	gorm.Model
	CourseID        uint      `json:"course_id" gorm:"index;not null"`
	InstructorID    uint      `json:"instructor_id" gorm:"index;not null"`
	Topic           string    `json:"topic"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes" gorm:"default:60"`
	RoomID          string    `json:"room_id"`
	JoinURL         string    `json:"join_url"`
	Status          string    `json:"status" gorm:"default:'SCHEDULED'"`
	IsDeleted       bool      `json:"-" gorm:"default:false"`
}
