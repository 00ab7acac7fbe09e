package instructorController

import (
	"edusphere/database"
	"edusphere/middleware"
	courseModels "edusphere/models/course"
	instructorValidator "edusphere/validators/instructor"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateQuiz attaches a quiz with its questions and options to a quiz-type
// lesson of an owned course. The whole tree is written in one transaction.
func CreateQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID := c.Locals("lessonID").(int)

	reqData, ok := c.Locals("validatedQuiz").(*instructorValidator.QuizInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	var course courseModels.Course
	if err := db.Where("id = ? AND instructor_id = ? AND is_deleted = ?", lesson.CourseID, userID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if lesson.ContentType != courseModels.LessonTypeQuiz {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Lesson is not a quiz lesson!", nil)
	}

	var existing courseModels.Quiz
	if err := db.Where("lesson_id = ? AND is_deleted = ?", lesson.ID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Lesson already has a quiz!", nil)
	}

	revealAnswers := true
	if reqData.RevealAnswers != nil {
		revealAnswers = *reqData.RevealAnswers
	}
	passingScore := reqData.PassingScore
	if passingScore == 0 {
		passingScore = 70
	}

	quiz := courseModels.Quiz{
		LessonID:      lesson.ID,
		Title:         reqData.Title,
		PassingScore:  passingScore,
		RevealAnswers: revealAnswers,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&quiz).Error; err != nil {
			return err
		}
		for i, questionInput := range reqData.Questions {
			question := courseModels.QuizQuestion{
				QuizID:       quiz.ID,
				QuestionText: questionInput.QuestionText,
				QuestionType: questionInput.QuestionType,
				Points:       questionInput.Points,
				Explanation:  questionInput.Explanation,
				OrderIndex:   i,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
			for j, optionInput := range questionInput.Options {
				option := courseModels.QuizOption{
					QuestionID: question.ID,
					OptionText: optionInput.OptionText,
					IsCorrect:  optionInput.IsCorrect,
					OrderIndex: j,
				}
				if err := tx.Create(&option).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}
