package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	WithdrawalStatusPending   = "PENDING"
	WithdrawalStatusProcessed = "PROCESSED"
	WithdrawalStatusRejected  = "REJECTED"
)

// Withdrawal is an instructor's payout request against their earnings balance
type Withdrawal struct {
	gorm.Model
	UserID        uint       `json:"user_id" gorm:"index;not null"`
	Amount        float64    `json:"amount" gorm:"not null"`
	Status        string     `json:"status" gorm:"default:'PENDING'"`
	ProcessedAt   *time.Time `json:"processed_at"`
	FailureReason string     `json:"failure_reason"`
	IsDeleted     bool       `json:"-" gorm:"default:false"`
}
