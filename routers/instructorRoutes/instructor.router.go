package instructorRoutes

import (
	instructorController "edusphere/controllers/instructor"
	"edusphere/middleware"
	instructorValidator "edusphere/validators/instructor"

	"github.com/gofiber/fiber/v2"
)

// SetupInstructorRoutes sets up all instructor-facing routes
func SetupInstructorRoutes(app *fiber.App) {
	instructorGroup := app.Group("/instructor", middleware.JWTMiddleware, middleware.RequireRole("INSTRUCTOR", "ADMIN"))

	// Course management
	instructorGroup.Post("/course", instructorValidator.CreateCourse(), instructorController.CreateCourse)
	instructorGroup.Get("/courses", instructorController.GetInstructorCourses)
	instructorGroup.Post("/course/:course_id/publish", instructorValidator.PublishTarget("course_id"), instructorController.PublishCourse)

	// Curriculum
	instructorGroup.Post("/course/:course_id/chapter", instructorValidator.CreateChapter(), instructorController.CreateChapter)
	instructorGroup.Post("/chapter/:chapter_id/publish", instructorValidator.PublishTarget("chapter_id"), instructorController.PublishChapter)
	instructorGroup.Post("/course/:course_id/chapter/:chapter_id/lesson", instructorValidator.CreateLesson(), instructorController.CreateLesson)
	instructorGroup.Post("/lesson/:lesson_id/publish", instructorValidator.PublishTarget("lesson_id"), instructorController.PublishLesson)

	// Quizzes
	instructorGroup.Post("/lesson/:lesson_id/quiz", instructorValidator.CreateQuiz(), instructorController.CreateQuiz)

	// Live classes
	instructorGroup.Post("/course/:course_id/live-class", instructorValidator.ScheduleLiveClass(), instructorController.ScheduleLiveClass)
	instructorGroup.Get("/live-classes", instructorController.GetInstructorLiveClasses)
	instructorGroup.Post("/live-class/:live_class_id/cancel", instructorValidator.PublishTarget("live_class_id"), instructorController.CancelLiveClass)

	// Earnings and payouts
	instructorGroup.Get("/earnings", instructorController.GetEarnings)
	instructorGroup.Post("/withdrawal", instructorValidator.RequestWithdrawal(), instructorController.RequestWithdrawal)
	instructorGroup.Get("/withdrawals", instructorController.GetWithdrawals)
}
