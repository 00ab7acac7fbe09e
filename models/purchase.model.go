package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PurchaseStatusCompleted = "COMPLETED"
	PurchaseStatusRefunded  = "REFUNDED"
)

// Purchase records a paid course enrollment. Gateway interaction happens
// upstream; only the settled result is stored here.
type Purchase struct {
	gorm.Model
	UserID          uint      `json:"user_id" gorm:"index;not null"`
	CourseID        uint      `json:"course_id" gorm:"index;not null"`
	Amount          float64   `json:"amount" gorm:"not null"`
	Currency        string    `json:"currency" gorm:"default:'USD'"`
	InstructorShare float64   `json:"instructor_share"`
	Reference       string    `json:"reference" gorm:"uniqueIndex;not null"`
	Status          string    `json:"status" gorm:"default:'COMPLETED'"`
	PurchasedAt     time.Time `json:"purchased_at"`
	IsDeleted       bool      `json:"-" gorm:"default:false"`
}
