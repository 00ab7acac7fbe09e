package services

import (
	"edusphere/models"
	courseModels "edusphere/models/course"
	"edusphere/utils"
	"fmt"
	"log"
	"math"
	"time"

	"gorm.io/gorm"
)

// certNumberRetries bounds retry on a certificate-number collision
const certNumberRetries = 5

// IssueCertificate issues the completion certificate for a (user, course)
// pair. Idempotent: an existing certificate is returned unchanged. The
// enrollment must already be COMPLETED.
func IssueCertificate(db *gorm.DB, userID, courseID uint) (*courseModels.Certificate, error) {
	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return nil, fmt.Errorf("enrollment for course %d: %w", courseID, ErrNotFound)
	}
	if enrollment.Status != courseModels.EnrollmentStatusCompleted {
		return nil, fmt.Errorf("course %d not completed: %w", courseID, ErrConflict)
	}

	var existing courseModels.Certificate
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existing).Error; err == nil {
		return &existing, nil
	}

	grade, err := computeGrade(db, userID, courseID)
	if err != nil {
		return nil, err
	}

	// The number column is unique; regenerate and retry on collision
	var certificate courseModels.Certificate
	for i := 0; ; i++ {
		certificate = courseModels.Certificate{
			UserID:            userID,
			CourseID:          courseID,
			EnrollmentID:      enrollment.ID,
			CertificateNumber: utils.GenerateCertificateNumber(),
			Grade:             grade,
			IssuedAt:          time.Now(),
		}
		err := db.Create(&certificate).Error
		if err == nil {
			break
		}
		if i >= certNumberRetries {
			return nil, fmt.Errorf("failed to issue certificate for course %d: %w", courseID, err)
		}
		// A concurrent issuance may have won; return its certificate
		if dbErr := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existing).Error; dbErr == nil {
			return &existing, nil
		}
	}

	notifyCertificateIssued(db, &certificate)

	return &certificate, nil
}

// computeGrade averages the learner's best score per distinct quiz of the
// course. A course without quizzes grades as 100.
func computeGrade(db *gorm.DB, userID, courseID uint) (int, error) {
	var lessonIDs []uint
	if err := db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Pluck("id", &lessonIDs).Error; err != nil {
		return 0, err
	}

	var quizIDs []uint
	if len(lessonIDs) > 0 {
		if err := db.Model(&courseModels.Quiz{}).
			Where("lesson_id IN ? AND is_deleted = ?", lessonIDs, false).
			Pluck("id", &quizIDs).Error; err != nil {
			return 0, err
		}
	}

	if len(quizIDs) == 0 {
		return 100, nil
	}

	sum := 0
	for _, quizID := range quizIDs {
		var best int
		row := db.Model(&courseModels.QuizAttempt{}).
			Where("quiz_id = ? AND user_id = ? AND completed_at IS NOT NULL AND is_deleted = ?", quizID, userID, false).
			Select("COALESCE(MAX(score), 0)").
			Row()
		if err := row.Scan(&best); err != nil {
			return 0, err
		}
		sum += best
	}

	return int(math.Round(float64(sum) / float64(len(quizIDs)))), nil
}

// VerifyCertificate resolves a public certificate number to its record
func VerifyCertificate(db *gorm.DB, certificateNumber string) (*courseModels.Certificate, error) {
	var certificate courseModels.Certificate
	if err := db.Where("certificate_number = ? AND is_deleted = ?", certificateNumber, false).First(&certificate).Error; err != nil {
		return nil, fmt.Errorf("certificate %s: %w", certificateNumber, ErrNotFound)
	}
	return &certificate, nil
}

func notifyCertificateIssued(db *gorm.DB, certificate *courseModels.Certificate) {
	var user models.User
	if err := db.Select("name, email").First(&user, certificate.UserID).Error; err != nil {
		log.Printf("Certificate notification skipped, user %d not found: %v", certificate.UserID, err)
		return
	}

	var crs courseModels.Course
	if err := db.Select("title").First(&crs, certificate.CourseID).Error; err != nil {
		log.Printf("Certificate notification skipped, course %d not found: %v", certificate.CourseID, err)
		return
	}

	notifier.CertificateIssued(user.Email, user.Name, crs.Title, certificate.CertificateNumber)
}
