package courseValidator

import (
	"edusphere/middleware"

	"github.com/gofiber/fiber/v2"
)

// QuizTarget validates the quiz id parameter
func QuizTarget() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID, ok := parseIDParam(c, "quiz_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Valid quiz ID is required in the URL!", nil)
		}

		c.Locals("quizID", quizID)
		return c.Next()
	}
}

// SubmitQuizAttempt validates the attempt id and the answers mapping.
// Keys are question ids; values are the selected option id(s).
func SubmitQuizAttempt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		attemptID, ok := parseIDParam(c, "attempt_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Valid attempt ID is required in the URL!", nil)
		}

		reqData := new(struct {
			Answers map[uint][]uint `json:"answers"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Answers == nil {
			errors["answers"] = "Answers mapping is required!"
		} else {
			for questionID, optionIDs := range reqData.Answers {
				if questionID == 0 {
					errors["answers"] = "Question IDs must be positive!"
					break
				}
				for _, optionID := range optionIDs {
					if optionID == 0 {
						errors["answers"] = "Option IDs must be positive!"
						break
					}
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAnswers", reqData.Answers)
		c.Locals("attemptID", attemptID)
		return c.Next()
	}
}
