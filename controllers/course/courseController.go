package controllers

import (
	"edusphere/database"
	"edusphere/middleware"
	"edusphere/models"
	courseModels "edusphere/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists published active courses with pagination
func GetAllCourses(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedCourseList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	page := 1
	limit := 10
	if reqData != nil && reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Course{}).
		Where("is_published = ? AND status = ? AND is_deleted = ?", true, courseModels.CourseStatusActive, false)

	if category := c.Query("category"); category != "" {
		db = db.Where("category = ?", category)
	}
	if search := c.Query("search"); search != "" {
		db = db.Where("title ILIKE ?", "%"+search+"%")
	}

	var total int64
	db.Count(&total)

	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// ChapterWithLessons is a chapter and its published lessons
type ChapterWithLessons struct {
	courseModels.Chapter
	Lessons []courseModels.Lesson `json:"lessons"`
}

// GetCourseDetails returns a course with its published chapters and lessons
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_published = ? AND is_deleted = ?", courseID, true, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var instructor models.User
	db.Select("id, name, profile_image").Where("id = ?", course.InstructorID).First(&instructor)

	var chapters []courseModels.Chapter
	db.Where("course_id = ? AND is_published = ? AND is_deleted = ?", courseID, true, false).
		Order("order_index asc").
		Find(&chapters)

	curriculum := make([]ChapterWithLessons, len(chapters))
	for i, chapter := range chapters {
		var lessons []courseModels.Lesson
		db.Where("chapter_id = ? AND is_published = ? AND is_deleted = ?", chapter.ID, true, false).
			Order("order_index asc").
			Find(&lessons)
		curriculum[i] = ChapterWithLessons{Chapter: chapter, Lessons: lessons}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":     course,
		"instructor": instructor,
		"curriculum": curriculum,
	})
}

// GetCourseLiveClasses lists upcoming live classes for an enrolled user
func GetCourseLiveClasses(c *fiber.Ctx) error {
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

	var liveClasses []courseModels.LiveClass
	if err := db.Where("course_id = ? AND status = ? AND is_deleted = ?", courseID, courseModels.LiveClassStatusScheduled, false).
		Order("scheduled_at asc").
		Find(&liveClasses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch live classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Live classes fetched successfully!", fiber.Map{
		"live_classes": liveClasses,
	})
}
