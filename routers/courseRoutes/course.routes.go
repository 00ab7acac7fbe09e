package courseRoutes

import (
	controllers "edusphere/controllers/course"
	"edusphere/middleware"
	validators "edusphere/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all learner-facing routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalog
	courseGroup.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.GetCourseDetail(), controllers.GetCourseDetails)

	// Access
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.EnrollCourse(), controllers.EnrollInCourse)
	courseGroup.Post("/:id/purchase", middleware.JWTMiddleware, validators.PurchaseCourse(), controllers.PurchaseCourse)

	// Progress tracking
	courseGroup.Post("/:course_id/lesson/:lesson_id/progress", middleware.JWTMiddleware, validators.LessonProgress(), controllers.UpdateLessonProgress)
	courseGroup.Get("/:course_id/progress", middleware.JWTMiddleware, validators.GetCourseProgress(), controllers.GetCourseProgress)

	// Live classes
	courseGroup.Get("/:course_id/live-classes", middleware.JWTMiddleware, validators.GetCourseProgress(), controllers.GetCourseLiveClasses)

	// Certificates
	courseGroup.Get("/:course_id/certificate", middleware.JWTMiddleware, validators.GetCourseCertificate(), controllers.GetCourseCertificate)

	// Quizzes
	quizGroup := app.Group("/quiz")
	quizGroup.Get("/:quiz_id", middleware.JWTMiddleware, validators.QuizTarget(), controllers.GetLessonQuiz)
	quizGroup.Post("/:quiz_id/attempt", middleware.JWTMiddleware, validators.QuizTarget(), controllers.StartQuizAttempt)
	quizGroup.Post("/attempt/:attempt_id/submit", middleware.JWTMiddleware, validators.SubmitQuizAttempt(), controllers.SubmitQuizAttempt)

	// User library
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetUserEnrollmentsList)
	userGroup.Get("/certificates", middleware.JWTMiddleware, controllers.GetUserCertificates)

	// Public certificate verification
	app.Get("/certificate/verify/:number", validators.VerifyCertificate(), controllers.VerifyCertificate)
}
