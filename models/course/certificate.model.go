package course

import (
	"time"

	"gorm.io/gorm"
)

// Certificate is an issued proof of course completion. The certificate
// number is the public verification identifier and never changes.
type Certificate struct {
	gorm.Model
	UserID            uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_certificate_user_course"`
	CourseID          uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_certificate_user_course"`
	EnrollmentID      uint      `json:"enrollment_id" gorm:"index;not null"`
	CertificateNumber string    `json:"certificate_number" gorm:"uniqueIndex;not null"`
	Grade             int       `json:"grade" gorm:"default:100"` // Average best quiz score, 100 if course has no quizzes
	IssuedAt          time.Time `json:"issued_at"`
	IsDeleted         bool      `json:"-" gorm:"default:false"`
}
