package instructorValidator

import (
	"edusphere/middleware"
	courseModels "edusphere/models/course"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// QuizOptionInput is one option of a question being created
type QuizOptionInput struct {
	OptionText string `json:"option_text"`
	IsCorrect  bool   `json:"is_correct"`
}

// QuizQuestionInput is one question of a quiz being created
type QuizQuestionInput struct {
	QuestionText string            `json:"question_text"`
	QuestionType string            `json:"question_type"`
	Points       int               `json:"points"`
	Explanation  string            `json:"explanation"`
	Options      []QuizOptionInput `json:"options"`
}

// QuizInput is the full quiz-creation payload
type QuizInput struct {
	Title         string              `json:"title"`
	PassingScore  int                 `json:"passing_score"`
	RevealAnswers *bool               `json:"reveal_answers"`
	Questions     []QuizQuestionInput `json:"questions"`
}

// CreateQuiz validates a quiz with its nested questions and options.
// Single-answer types need exactly one correct option; multi-select
// needs at least one; true/false needs exactly two options.
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonID, ok := parseIDParam(c, "lesson_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Valid lesson ID is required in the URL!", nil)
		}

		reqData := new(QuizInput)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" || len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.PassingScore < 0 || reqData.PassingScore > 100 {
			errors["passing_score"] = "Passing score must be between 0 and 100!"
		}
		if len(reqData.Questions) == 0 {
			errors["questions"] = "At least one question is required!"
		}

		for i, question := range reqData.Questions {
			key := fmt.Sprintf("questions[%d]", i)

			if strings.TrimSpace(question.QuestionText) == "" {
				errors[key] = "Question text is required!"
				continue
			}
			if question.Points < 1 {
				errors[key] = "Question points must be at least 1!"
				continue
			}

			correctCount := 0
			for _, option := range question.Options {
				if strings.TrimSpace(option.OptionText) == "" {
					errors[key] = "Option text is required!"
				}
				if option.IsCorrect {
					correctCount++
				}
			}

			switch question.QuestionType {
			case courseModels.QuestionTypeSingleChoice:
				if len(question.Options) < 2 {
					errors[key] = "Single choice questions need at least 2 options!"
				} else if correctCount != 1 {
					errors[key] = "Single choice questions need exactly one correct option!"
				}
			case courseModels.QuestionTypeTrueFalse:
				if len(question.Options) != 2 {
					errors[key] = "True/false questions need exactly 2 options!"
				} else if correctCount != 1 {
					errors[key] = "True/false questions need exactly one correct option!"
				}
			case courseModels.QuestionTypeMultiSelect:
				if len(question.Options) < 2 {
					errors[key] = "Multi select questions need at least 2 options!"
				} else if correctCount < 1 {
					errors[key] = "Multi select questions need at least one correct option!"
				}
			default:
				errors[key] = "Question type must be SINGLE_CHOICE, TRUE_FALSE or MULTI_SELECT!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		c.Locals("lessonID", lessonID)
		return c.Next()
	}
}
