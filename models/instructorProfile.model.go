package models

import "gorm.io/gorm"

// InstructorProfile holds the public profile and payout balance of an instructor
type InstructorProfile struct {
	gorm.Model
	UserID        uint    `json:"user_id" gorm:"uniqueIndex;not null"`
	Headline      string  `json:"headline"`
	Bio           string  `json:"bio" gorm:"type:text"`
	Website       string  `json:"website"`
	Balance       float64 `json:"balance" gorm:"default:0"`        // Withdrawable earnings
	TotalEarnings float64 `json:"total_earnings" gorm:"default:0"` // Lifetime earnings, never decremented
	IsDeleted     bool    `json:"-" gorm:"default:false"`
}
