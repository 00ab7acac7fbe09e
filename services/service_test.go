package services

import (
	"edusphere/database"
	"edusphere/models"
	courseModels "edusphere/models/course"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// recordingNotifier captures workflow notifications for assertions
type recordingNotifier struct {
	completed    []string
	certificates []string
}

func (n *recordingNotifier) CourseCompleted(email, name, courseTitle string) {
	n.completed = append(n.completed, courseTitle)
}

func (n *recordingNotifier) CertificateIssued(email, name, courseTitle, certificateNumber string) {
	n.certificates = append(n.certificates, certificateNumber)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared in-memory database keeps the schema visible across
	// pooled connections within one test
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	database.RunMigrations(db)
	return db
}

func setupNotifier(t *testing.T) *recordingNotifier {
	t.Helper()
	n := &recordingNotifier{}
	SetNotifier(n)
	t.Cleanup(func() { SetNotifier(emailNotifier{}) })
	return n
}

func seedUser(t *testing.T, db *gorm.DB, role string) models.User {
	t.Helper()
	user := models.User{
		Name:     "Test " + role,
		Email:    fmt.Sprintf("%s-%d@example.com", strings.ToLower(role), seedCounter(db)),
		Role:     role,
		Password: "not-a-real-hash",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// seedCounter hands out unique suffixes per database
func seedCounter(db *gorm.DB) int64 {
	var count int64
	db.Model(&models.User{}).Count(&count)
	return count + 1
}

// seedCourse creates a published active course with one published chapter
// and the given number of published video lessons
func seedCourse(t *testing.T, db *gorm.DB, instructorID uint, lessonCount int) (courseModels.Course, courseModels.Chapter, []courseModels.Lesson) {
	t.Helper()

	crs := courseModels.Course{
		InstructorID: instructorID,
		Title:        "Go From Scratch",
		Status:       courseModels.CourseStatusActive,
		IsPublished:  true,
	}
	require.NoError(t, db.Create(&crs).Error)

	chapter := courseModels.Chapter{
		CourseID:    crs.ID,
		Title:       "Basics",
		IsPublished: true,
	}
	require.NoError(t, db.Create(&chapter).Error)

	lessons := make([]courseModels.Lesson, lessonCount)
	for i := 0; i < lessonCount; i++ {
		lessons[i] = courseModels.Lesson{
			CourseID:    crs.ID,
			ChapterID:   chapter.ID,
			Title:       fmt.Sprintf("Lesson %d", i+1),
			ContentType: courseModels.LessonTypeVideo,
			VideoURL:    "https://cdn.example.com/v.mp4",
			OrderIndex:  i,
			IsPublished: true,
		}
		require.NoError(t, db.Create(&lessons[i]).Error)
	}

	return crs, chapter, lessons
}

func seedEnrollment(t *testing.T, db *gorm.DB, userID, courseID uint) courseModels.Enrollment {
	t.Helper()
	enrollment := courseModels.Enrollment{
		UserID:   userID,
		CourseID: courseID,
		Status:   courseModels.EnrollmentStatusEnrolled,
	}
	require.NoError(t, db.Create(&enrollment).Error)
	return enrollment
}

// seedQuiz attaches a quiz to a lesson. correctness describes one
// single-choice question per entry: the index of the correct option
// among optionsPerQuestion options, each worth one point.
func seedQuiz(t *testing.T, db *gorm.DB, lessonID uint, passingScore, questionCount, optionsPerQuestion int) (courseModels.Quiz, []courseModels.QuizQuestion, map[uint][]courseModels.QuizOption) {
	t.Helper()

	quiz := courseModels.Quiz{
		LessonID:      lessonID,
		Title:         "Checkpoint",
		PassingScore:  passingScore,
		RevealAnswers: true,
	}
	require.NoError(t, db.Create(&quiz).Error)

	questions := make([]courseModels.QuizQuestion, questionCount)
	options := make(map[uint][]courseModels.QuizOption, questionCount)
	for i := 0; i < questionCount; i++ {
		questions[i] = courseModels.QuizQuestion{
			QuizID:       quiz.ID,
			QuestionText: fmt.Sprintf("Question %d", i+1),
			QuestionType: courseModels.QuestionTypeSingleChoice,
			Points:       1,
			OrderIndex:   i,
		}
		require.NoError(t, db.Create(&questions[i]).Error)

		for j := 0; j < optionsPerQuestion; j++ {
			option := courseModels.QuizOption{
				QuestionID: questions[i].ID,
				OptionText: fmt.Sprintf("Option %d", j+1),
				IsCorrect:  j == 0, // first option is the correct one
				OrderIndex: j,
			}
			require.NoError(t, db.Create(&option).Error)
			options[questions[i].ID] = append(options[questions[i].ID], option)
		}
	}

	return quiz, questions, options
}

func markLessonCompleted(t *testing.T, db *gorm.DB, userID, courseID, lessonID uint) *courseModels.Enrollment {
	t.Helper()
	completed := true
	_, enrollment, err := RecordLessonProgress(db, userID, courseID, lessonID, ProgressUpdate{Completed: &completed})
	require.NoError(t, err)
	return enrollment
}
