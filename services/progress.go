package services

import (
	courseModels "edusphere/models/course"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ProgressUpdate carries the optional fields of a lesson-watch event.
// Nil fields leave the stored value untouched.
type ProgressUpdate struct {
	WatchedSeconds *int
	Completed      *bool
}

// RecordLessonProgress upserts the per-lesson watch state for the caller's
// enrollment and recomputes the enrollment's overall progress. The lesson
// must be a published lesson of a published chapter of the enrolled course.
func RecordLessonProgress(db *gorm.DB, userID, courseID, lessonID uint, update ProgressUpdate) (*courseModels.Progress, *courseModels.Enrollment, error) {
	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return nil, nil, fmt.Errorf("enrollment for course %d: %w", courseID, ErrNotFound)
	}

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND course_id = ? AND is_published = ? AND is_deleted = ?", lessonID, courseID, true, false).First(&lesson).Error; err != nil {
		return nil, nil, fmt.Errorf("lesson %d: %w", lessonID, ErrNotFound)
	}

	var chapter courseModels.Chapter
	if err := db.Where("id = ? AND is_published = ? AND is_deleted = ?", lesson.ChapterID, true, false).First(&chapter).Error; err != nil {
		return nil, nil, fmt.Errorf("lesson %d: %w", lessonID, ErrNotFound)
	}

	var progress courseModels.Progress
	err := db.Where("enrollment_id = ? AND lesson_id = ?", enrollment.ID, lessonID).First(&progress).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, nil, err
		}
		progress = courseModels.Progress{
			EnrollmentID: enrollment.ID,
			LessonID:     lessonID,
		}
	}

	if update.WatchedSeconds != nil {
		progress.WatchedSeconds = *update.WatchedSeconds
	}
	if update.Completed != nil {
		if *update.Completed && !progress.IsCompleted {
			now := time.Now()
			progress.IsCompleted = true
			progress.CompletedAt = &now
		} else if !*update.Completed {
			progress.IsCompleted = false
			progress.CompletedAt = nil
		}
	}

	if err := db.Save(&progress).Error; err != nil {
		return nil, nil, err
	}

	if err := RecalcEnrollmentProgress(db, &enrollment); err != nil {
		return nil, nil, err
	}

	return &progress, &enrollment, nil
}
