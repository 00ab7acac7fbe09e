package controllers

import (
	"edusphere/database"
	"edusphere/middleware"
	courseModels "edusphere/models/course"
	"edusphere/services"

	"github.com/gofiber/fiber/v2"
)

// UpdateLessonProgress records a lesson-watch event and returns the updated
// progress row together with the recomputed overall percentage
func UpdateLessonProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	lessonID := c.Locals("lessonID").(int)

	reqData, ok := c.Locals("validatedProgress").(*struct {
		WatchedSeconds *int  `json:"watched_seconds"`
		Completed      *bool `json:"completed"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	progress, enrollment, err := services.RecordLessonProgress(
		database.Database.Db,
		userID,
		uint(courseID),
		uint(lessonID),
		services.ProgressUpdate{
			WatchedSeconds: reqData.WatchedSeconds,
			Completed:      reqData.Completed,
		},
	)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated!", fiber.Map{
		"progress":          progress,
		"overall_progress":  enrollment.Progress,
		"status":            enrollment.Status,
		"completed_lessons": enrollment.CompletedLessons,
		"total_lessons":     enrollment.TotalLessons,
	})
}

// ChapterProgress is the per-chapter completion breakdown
type ChapterProgress struct {
	ChapterID        uint   `json:"chapter_id"`
	ChapterTitle     string `json:"chapter_title"`
	TotalLessons     int64  `json:"total_lessons"`
	CompletedLessons int64  `json:"completed_lessons"`
	Progress         int    `json:"progress"`
}

// GetCourseProgress gets the user's progress in a course, chapter by chapter
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	// Completed lesson IDs for this enrollment
	var completedIDs []uint
	db.Model(&courseModels.Progress{}).
		Where("enrollment_id = ? AND is_completed = ?", enrollment.ID, true).
		Pluck("lesson_id", &completedIDs)

	var chapters []courseModels.Chapter
	db.Where("course_id = ? AND is_published = ? AND is_deleted = ?", courseID, true, false).
		Order("order_index asc").
		Find(&chapters)

	chapterProgress := make([]ChapterProgress, len(chapters))
	for i, chapter := range chapters {
		var total int64
		db.Model(&courseModels.Lesson{}).
			Where("chapter_id = ? AND is_published = ? AND is_deleted = ?", chapter.ID, true, false).
			Count(&total)

		var completed int64
		if len(completedIDs) > 0 {
			db.Model(&courseModels.Lesson{}).
				Where("chapter_id = ? AND is_published = ? AND is_deleted = ? AND id IN ?", chapter.ID, true, false, completedIDs).
				Count(&completed)
		}

		percent := 0
		if total > 0 {
			percent = int(float64(completed) / float64(total) * 100)
		}

		chapterProgress[i] = ChapterProgress{
			ChapterID:        chapter.ID,
			ChapterTitle:     chapter.Title,
			TotalLessons:     total,
			CompletedLessons: completed,
			Progress:         percent,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"enrollment":       enrollment,
		"completed_ids":    completedIDs,
		"chapter_progress": chapterProgress,
	})
}
