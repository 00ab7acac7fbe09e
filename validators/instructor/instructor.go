package instructorValidator

import (
	"edusphere/middleware"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// parseIDParam reads a positive integer route parameter
func parseIDParam(c *fiber.Ctx, name string) (int, bool) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func hasInvalidChars(s string) bool {
	matched, _ := regexp.MatchString(`[<>{}]`, s)
	return matched
}

// CreateCourse validates a new course payload
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string  `json:"title"`
			Description string  `json:"description"`
			Category    string  `json:"category"`
			Price       float64 `json:"price"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else {
			if len(reqData.Title) < 3 {
				errors["title"] = "Title must be at least 3 characters long!"
			}
			if len(reqData.Title) > 100 {
				errors["title"] = "Title must not exceed 100 characters!"
			}
			if hasInvalidChars(reqData.Title) {
				errors["title"] = "Title contains invalid characters (e.g., <, >, {, })!"
			}
		}

		if reqData.Description != "" {
			if len(reqData.Description) > 5000 {
				errors["description"] = "Description must not exceed 5000 characters!"
			}
			if hasInvalidChars(reqData.Description) {
				errors["description"] = "Description contains invalid characters (e.g., <, >, {, })!"
			}
		}

		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CreateChapter validates a new chapter payload
func CreateChapter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Valid course ID is required in the URL!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			OrderIndex  int    `json:"order_index"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" || len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChapter", reqData)
		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// CreateLesson validates a new lesson payload
func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, okCourse := parseIDParam(c, "course_id")
		chapterID, okChapter := parseIDParam(c, "chapter_id")
		if !okCourse || !okChapter {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Valid course and chapter IDs are required in the URL!", nil)
		}

		reqData := new(struct {
			Title           string `json:"title"`
			ContentType     string `json:"content_type"`
			VideoURL        string `json:"video_url"`
			TextContent     string `json:"text_content"`
			DurationSeconds int    `json:"duration_seconds"`
			OrderIndex      int    `json:"order_index"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" || len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		switch reqData.ContentType {
		case "VIDEO":
			if strings.TrimSpace(reqData.VideoURL) == "" {
				errors["video_url"] = "Video URL is required for VIDEO lessons!"
			}
		case "TEXT":
			if strings.TrimSpace(reqData.TextContent) == "" {
				errors["text_content"] = "Text content is required for TEXT lessons!"
			}
		case "QUIZ":
			// Quiz body is attached separately
		default:
			errors["content_type"] = "Content type must be VIDEO, TEXT or QUIZ!"
		}

		if reqData.DurationSeconds < 0 {
			errors["duration_seconds"] = "Duration cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		c.Locals("courseID", courseID)
		c.Locals("chapterID", chapterID)
		return c.Next()
	}
}

// PublishTarget validates the id parameter on publish/unpublish routes
func PublishTarget(paramName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, paramName)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Valid ID is required in the URL!", nil)
		}

		c.Locals(paramName, id)
		return c.Next()
	}
}

// ScheduleLiveClass validates a live class payload
func ScheduleLiveClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Valid course ID is required in the URL!", nil)
		}

		reqData := new(struct {
			Topic           string    `json:"topic"`
			ScheduledAt     time.Time `json:"scheduled_at"`
			DurationMinutes int       `json:"duration_minutes"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Topic = strings.TrimSpace(reqData.Topic)
		if reqData.Topic == "" || len(reqData.Topic) < 3 {
			errors["topic"] = "Topic must be at least 3 characters long!"
		}
		if reqData.ScheduledAt.IsZero() || reqData.ScheduledAt.Before(time.Now()) {
			errors["scheduled_at"] = "Scheduled time must be in the future!"
		}
		if reqData.DurationMinutes < 15 || reqData.DurationMinutes > 480 {
			errors["duration_minutes"] = "Duration must be between 15 and 480 minutes!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLiveClass", reqData)
		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// RequestWithdrawal validates a payout request
func RequestWithdrawal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Amount float64 `json:"amount"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than zero!"
		}
		if reqData.Amount > 100000 {
			errors["amount"] = "Amount exceeds the per-request limit!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedWithdrawal", reqData)
		return c.Next()
	}
}
