package instructorController

import (
	"edusphere/database"
	"edusphere/middleware"
	"edusphere/models"
	courseModels "edusphere/models/course"
	"edusphere/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ScheduleLiveClass provisions a room at the streaming provider and stores
// the class. Enrolled learners are notified asynchronously.
func ScheduleLiveClass(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	course, err := ownedCourse(c, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedLiveClass").(*struct {
		Topic           string    `json:"topic"`
		ScheduledAt     time.Time `json:"scheduled_at"`
		DurationMinutes int       `json:"duration_minutes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	room, err := utils.CreateLiveRoom(reqData.Topic, reqData.ScheduledAt, reqData.DurationMinutes)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to create live room with the provider!", nil)
	}

	liveClass := courseModels.LiveClass{
		CourseID:        course.ID,
		InstructorID:    userID,
		Topic:           reqData.Topic,
		ScheduledAt:     reqData.ScheduledAt,
		DurationMinutes: reqData.DurationMinutes,
		RoomID:          room.RoomID,
		JoinURL:         room.JoinURL,
		Status:          courseModels.LiveClassStatusScheduled,
	}

	if err := database.Database.Db.Create(&liveClass).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to schedule live class!", nil)
	}

	// Notify enrolled learners (async)
	go func(courseID uint, courseTitle, topic, joinURL string) {
		db := database.Database.Db
		var enrollments []courseModels.Enrollment
		if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).Find(&enrollments).Error; err != nil {
			log.Printf("Failed to fetch enrollments for live class notification: %v", err)
			return
		}
		for _, enrollment := range enrollments {
			var user models.User
			if err := db.Select("name, email").First(&user, enrollment.UserID).Error; err == nil && user.Email != "" {
				utils.SendLiveClassEmail(user.Email, user.Name, courseTitle, topic, joinURL)
			}
		}
	}(course.ID, course.Title, liveClass.Topic, liveClass.JoinURL)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Live class scheduled successfully!", liveClass)
}

// CancelLiveClass cancels a scheduled class and tears down the provider room
func CancelLiveClass(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	liveClassID := c.Locals("live_class_id").(int)

	db := database.Database.Db

	var liveClass courseModels.LiveClass
	if err := db.Where("id = ? AND instructor_id = ? AND is_deleted = ?", liveClassID, userID, false).First(&liveClass).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Live class not found!", nil)
	}

	if liveClass.Status != courseModels.LiveClassStatusScheduled {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Live class is not scheduled!", nil)
	}

	liveClass.Status = courseModels.LiveClassStatusCancelled
	if err := db.Save(&liveClass).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to cancel live class!", nil)
	}

	go utils.CancelLiveRoom(liveClass.RoomID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Live class cancelled successfully!", liveClass)
}

// GetInstructorLiveClasses lists the caller's scheduled classes
func GetInstructorLiveClasses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var liveClasses []courseModels.LiveClass
	if err := database.Database.Db.Where("instructor_id = ? AND is_deleted = ?", userID, false).
		Order("scheduled_at asc").
		Find(&liveClasses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch live classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Live classes fetched successfully!", fiber.Map{
		"live_classes": liveClasses,
	})
}
