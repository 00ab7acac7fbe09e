package controllers

import (
	"edusphere/database"
	"edusphere/middleware"
	courseModels "edusphere/models/course"
	"edusphere/services"

	"github.com/gofiber/fiber/v2"
)

// CertificateWithCourse is a certificate joined with its course title
type CertificateWithCourse struct {
	courseModels.Certificate
	CourseTitle string `json:"course_title"`
}

// GetUserCertificates gets all certificates for the current user
func GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var certificates []courseModels.Certificate
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("issued_at desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	result := make([]CertificateWithCourse, len(certificates))
	for i, certificate := range certificates {
		var course courseModels.Course
		db.Select("title").Where("id = ?", certificate.CourseID).First(&course)
		result[i] = CertificateWithCourse{
			Certificate: certificate,
			CourseTitle: course.Title,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": result,
		"total":        len(result),
	})
}

// GetCourseCertificate returns the caller's certificate for a course.
// Issuance is idempotent, so a completed enrollment whose certificate
// was never written (e.g. an earlier failure) gets one issued here.
func GetCourseCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	certificate, err := services.IssueCertificate(database.Database.Db, userID, uint(courseID))
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate fetched successfully!", certificate)
}

// VerifyCertificate resolves a public certificate number. No auth required.
func VerifyCertificate(c *fiber.Ctx) error {
	number := c.Locals("certificateNumber").(string)

	db := database.Database.Db

	certificate, err := services.VerifyCertificate(db, number)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	var course courseModels.Course
	db.Select("title").Where("id = ?", certificate.CourseID).First(&course)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate is valid!", fiber.Map{
		"certificate_number": certificate.CertificateNumber,
		"course_title":       course.Title,
		"grade":              certificate.Grade,
		"issued_at":          certificate.IssuedAt,
	})
}
