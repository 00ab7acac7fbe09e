package courseValidator

import (
	"edusphere/middleware"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Certificate numbers look like PREFIX-<nanos>-<8 hex chars>
var certificateNumberRe = regexp.MustCompile(`^[A-Z]{2,10}-\d{10,20}-[A-Z0-9]{8}$`)

// GetCourseCertificate validates the course id parameter
func GetCourseCertificate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Valid course ID is required in the URL!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// VerifyCertificate validates the public certificate number parameter
func VerifyCertificate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		number := strings.TrimSpace(c.Params("number"))
		if number == "" || !certificateNumberRe.MatchString(number) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Valid certificate number is required in the URL!", nil)
		}

		c.Locals("certificateNumber", number)
		return c.Next()
	}
}
