package instructorController

import (
	"edusphere/database"
	"edusphere/middleware"
	courseModels "edusphere/models/course"

	"github.com/gofiber/fiber/v2"
)

// ownedCourse loads a course owned by the calling instructor
func ownedCourse(c *fiber.Ctx, courseID int) (*courseModels.Course, error) {
	userID := c.Locals("userId").(uint)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND instructor_id = ? AND is_deleted = ?", courseID, userID, false).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// CreateCourse creates a draft course owned by the caller
func CreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Category    string  `json:"category"`
		Price       float64 `json:"price"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		InstructorID: userID,
		Title:        reqData.Title,
		Description:  reqData.Description,
		Category:     reqData.Category,
		Price:        reqData.Price,
		Status:       courseModels.CourseStatusDraft,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// PublishCourse activates and publishes a course. A course needs at least
// one published lesson before going live.
func PublishCourse(c *fiber.Ctx) error {
	courseID := c.Locals("course_id").(int)

	course, err := ownedCourse(c, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var lessonCount int64
	database.Database.Db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_published = ? AND is_deleted = ?", course.ID, true, false).
		Count(&lessonCount)
	if lessonCount == 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Publish at least one lesson first!", nil)
	}

	course.IsPublished = true
	course.Status = courseModels.CourseStatusActive
	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course published successfully!", course)
}

// GetInstructorCourses lists all courses owned by the caller
func GetInstructorCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []courseModels.Course
	if err := database.Database.Db.Where("instructor_id = ? AND is_deleted = ?", userID, false).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"total":   len(courses),
	})
}

// CreateChapter adds a chapter to an owned course
func CreateChapter(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	course, err := ownedCourse(c, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedChapter").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		OrderIndex  int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	chapter := courseModels.Chapter{
		CourseID:    course.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
		OrderIndex:  reqData.OrderIndex,
	}

	if err := database.Database.Db.Create(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create chapter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Chapter created successfully!", chapter)
}

// PublishChapter marks a chapter of an owned course as published
func PublishChapter(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	chapterID := c.Locals("chapter_id").(int)

	db := database.Database.Db

	var chapter courseModels.Chapter
	if err := db.Where("id = ? AND is_deleted = ?", chapterID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	var course courseModels.Course
	if err := db.Where("id = ? AND instructor_id = ? AND is_deleted = ?", chapter.CourseID, userID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	chapter.IsPublished = true
	if err := db.Save(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish chapter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter published successfully!", chapter)
}

// CreateLesson adds a lesson to a chapter of an owned course
func CreateLesson(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	chapterID := c.Locals("chapterID").(int)

	course, err := ownedCourse(c, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	db := database.Database.Db

	var chapter courseModels.Chapter
	if err := db.Where("id = ? AND course_id = ? AND is_deleted = ?", chapterID, course.ID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	reqData, ok := c.Locals("validatedLesson").(*struct {
		Title           string `json:"title"`
		ContentType     string `json:"content_type"`
		VideoURL        string `json:"video_url"`
		TextContent     string `json:"text_content"`
		DurationSeconds int    `json:"duration_seconds"`
		OrderIndex      int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson := courseModels.Lesson{
		CourseID:        course.ID,
		ChapterID:       chapter.ID,
		Title:           reqData.Title,
		ContentType:     reqData.ContentType,
		VideoURL:        reqData.VideoURL,
		TextContent:     reqData.TextContent,
		DurationSeconds: reqData.DurationSeconds,
		OrderIndex:      reqData.OrderIndex,
	}

	if err := db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// PublishLesson marks a lesson of an owned course as published
func PublishLesson(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	lessonID := c.Locals("lesson_id").(int)

	db := database.Database.Db

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	var course courseModels.Course
	if err := db.Where("id = ? AND instructor_id = ? AND is_deleted = ?", lesson.CourseID, userID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	// Quiz lessons must carry their quiz before going live
	if lesson.ContentType == courseModels.LessonTypeQuiz {
		var quiz courseModels.Quiz
		if err := db.Where("lesson_id = ? AND is_deleted = ?", lesson.ID, false).First(&quiz).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Attach a quiz to this lesson first!", nil)
		}
	}

	lesson.IsPublished = true
	if err := db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson published successfully!", lesson)
}
