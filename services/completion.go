package services

import (
	"edusphere/models"
	courseModels "edusphere/models/course"
	"log"
	"math"
	"time"

	"gorm.io/gorm"
)

// RecalcEnrollmentProgress recomputes the enrollment's completion percentage
// from the Progress rows of the course's published lessons and persists it.
// Reaching 100% marks the enrollment COMPLETED and issues the certificate.
// COMPLETED is sticky: un-marking a lesson afterwards lowers the stored
// percentage but never reverts the status or completion timestamp.
func RecalcEnrollmentProgress(db *gorm.DB, enrollment *courseModels.Enrollment) error {
	var chapterIDs []uint
	if err := db.Model(&courseModels.Chapter{}).
		Where("course_id = ? AND is_published = ? AND is_deleted = ?", enrollment.CourseID, true, false).
		Pluck("id", &chapterIDs).Error; err != nil {
		return err
	}

	var lessonIDs []uint
	if len(chapterIDs) > 0 {
		if err := db.Model(&courseModels.Lesson{}).
			Where("chapter_id IN ? AND is_published = ? AND is_deleted = ?", chapterIDs, true, false).
			Pluck("id", &lessonIDs).Error; err != nil {
			return err
		}
	}

	var completed int64
	if len(lessonIDs) > 0 {
		if err := db.Model(&courseModels.Progress{}).
			Where("enrollment_id = ? AND is_completed = ? AND lesson_id IN ?", enrollment.ID, true, lessonIDs).
			Count(&completed).Error; err != nil {
			return err
		}
	}

	total := len(lessonIDs)

	// A course with no published lessons counts as 0% complete
	percent := 0
	if total > 0 {
		percent = int(math.Round(float64(completed) / float64(total) * 100))
	}

	enrollment.Progress = percent
	enrollment.CompletedLessons = int(completed)
	enrollment.TotalLessons = total

	justCompleted := false
	if enrollment.Status != courseModels.EnrollmentStatusCompleted {
		if percent >= 100 && total > 0 {
			now := time.Now()
			enrollment.Status = courseModels.EnrollmentStatusCompleted
			enrollment.CompletedAt = &now
			justCompleted = true
		} else if percent > 0 {
			enrollment.Status = courseModels.EnrollmentStatusInProgress
		}
	}

	if err := db.Save(enrollment).Error; err != nil {
		return err
	}

	if justCompleted {
		if _, err := IssueCertificate(db, enrollment.UserID, enrollment.CourseID); err != nil {
			return err
		}
		notifyCourseCompleted(db, enrollment)
	}

	return nil
}

// notifyCourseCompleted emails the learner about course completion.
// Best effort: failures are logged, never surfaced.
func notifyCourseCompleted(db *gorm.DB, enrollment *courseModels.Enrollment) {
	var user models.User
	if err := db.Select("name, email").First(&user, enrollment.UserID).Error; err != nil {
		log.Printf("Completion notification skipped, user %d not found: %v", enrollment.UserID, err)
		return
	}

	var crs courseModels.Course
	if err := db.Select("title").First(&crs, enrollment.CourseID).Error; err != nil {
		log.Printf("Completion notification skipped, course %d not found: %v", enrollment.CourseID, err)
		return
	}

	notifier.CourseCompleted(user.Email, user.Name, crs.Title)
}
