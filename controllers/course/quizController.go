package controllers

import (
	"edusphere/database"
	"edusphere/middleware"
	courseModels "edusphere/models/course"
	"edusphere/services"

	"github.com/gofiber/fiber/v2"
)

// GetLessonQuiz returns quiz metadata and questions without correctness flags
func GetLessonQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(int)

	db := database.Database.Db

	var quiz courseModels.Quiz
	if err := db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", quiz.LessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, lesson.CourseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	type QuestionWithOptions struct {
		courseModels.QuizQuestion
		Options []courseModels.QuizOption `json:"options"`
	}

	var questions []courseModels.QuizQuestion
	db.Where("quiz_id = ? AND is_deleted = ?", quiz.ID, false).Order("order_index asc").Find(&questions)

	result := make([]QuestionWithOptions, len(questions))
	for i, question := range questions {
		var options []courseModels.QuizOption
		db.Where("question_id = ? AND is_deleted = ?", question.ID, false).Order("order_index asc").Find(&options)
		result[i] = QuestionWithOptions{QuizQuestion: question, Options: options}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"quiz":      quiz,
		"questions": result,
	})
}

// StartQuizAttempt opens (or resumes) an attempt on a quiz
func StartQuizAttempt(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(int)

	attempt, err := services.StartQuizAttempt(database.Database.Db, userID, uint(quizID))
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Attempt started!", attempt)
}

// SubmitQuizAttempt grades the submitted answers and returns the result
func SubmitQuizAttempt(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	attemptID := c.Locals("attemptID").(int)

	answers, ok := c.Locals("validatedAnswers").(map[uint][]uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := services.SubmitQuizAttempt(database.Database.Db, userID, uint(attemptID), answers)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempt submitted!", result)
}
