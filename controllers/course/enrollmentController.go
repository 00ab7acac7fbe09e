package controllers

import (
	"edusphere/config"
	"edusphere/database"
	"edusphere/middleware"
	"edusphere/models"
	courseModels "edusphere/models/course"
	"edusphere/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse enrolls the caller into a free course
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_published = ? AND status = ? AND is_deleted = ?", courseID, true, courseModels.CourseStatusActive, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not active!", nil)
	}

	if course.Price > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course requires purchase!", nil)
	}

	// Check if user is already enrolled
	var existingEnrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	}

	enrollment := courseModels.Enrollment{
		UserID:   userID,
		CourseID: uint(courseID),
		Status:   courseModels.EnrollmentStatusEnrolled,
	}

	if err := db.Create(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	utils.SendEnrollmentEmail(user.Email, user.Name, course.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// PurchaseCourse records a settled purchase, credits the instructor share
// and creates the enrollment in one transaction. Gateway interaction
// happens upstream of this endpoint.
func PurchaseCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND is_published = ? AND status = ? AND is_deleted = ?", courseID, true, courseModels.CourseStatusActive, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not active!", nil)
	}

	var existingEnrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	}

	feePercent := float64(config.AppConfig.PlatformFeePercent)
	instructorShare := course.Price * (100 - feePercent) / 100

	purchase := models.Purchase{
		UserID:          userID,
		CourseID:        uint(courseID),
		Amount:          course.Price,
		InstructorShare: instructorShare,
		Reference:       utils.GeneratePurchaseReference(),
		Status:          models.PurchaseStatusCompleted,
		PurchasedAt:     time.Now(),
	}

	enrollment := courseModels.Enrollment{
		UserID:   userID,
		CourseID: uint(courseID),
		Status:   courseModels.EnrollmentStatusEnrolled,
	}

	tx := db.Begin()
	if err := tx.Create(&purchase).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record purchase!", nil)
	}
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	var profile models.InstructorProfile
	if err := tx.Where("user_id = ? AND is_deleted = ?", course.InstructorID, false).First(&profile).Error; err == nil {
		profile.Balance += instructorShare
		profile.TotalEarnings += instructorShare
		if err := tx.Save(&profile).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to credit instructor!", nil)
		}
	}
	tx.Commit()

	utils.SendPurchaseEmail(user.Email, user.Name, course.Title, purchase.Amount, purchase.Reference)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course purchased successfully!", fiber.Map{
		"purchase":   purchase,
		"enrollment": enrollment,
	})
}

// EnrollmentWithCourse is an enrollment joined with its course summary
type EnrollmentWithCourse struct {
	courseModels.Enrollment
	CourseTitle        string `json:"course_title"`
	CourseThumbnailURL string `json:"course_thumbnail_url"`
}

// GetUserEnrollmentsList gets all enrollments for the current user
func GetUserEnrollmentsList(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var enrollments []courseModels.Enrollment
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	result := make([]EnrollmentWithCourse, len(enrollments))
	for i, enrollment := range enrollments {
		var course courseModels.Course
		db.Select("title, thumbnail_url").Where("id = ?", enrollment.CourseID).First(&course)
		result[i] = EnrollmentWithCourse{
			Enrollment:         enrollment,
			CourseTitle:        course.Title,
			CourseThumbnailURL: course.ThumbnailURL,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": result,
		"total":       len(result),
	})
}
