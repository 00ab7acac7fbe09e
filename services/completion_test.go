package services

import (
	courseModels "edusphere/models/course"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var certificateNumberPattern = regexp.MustCompile(`^CERT-\d+-[A-Z0-9]{8}$`)

func TestProgressPercentageRounding(t *testing.T) {
	db := setupTestDB(t)
	setupNotifier(t)

	instructor := seedUser(t, db, "INSTRUCTOR")
	learner := seedUser(t, db, "USER")
	crs, _, lessons := seedCourse(t, db, instructor.ID, 3)
	seedEnrollment(t, db, learner.ID, crs.ID)

	// 1 of 3 = 33.33..% rounds to 33
	enrollment := markLessonCompleted(t, db, learner.ID, crs.ID, lessons[0].ID)
	assert.Equal(t, 33, enrollment.Progress)
	assert.Equal(t, courseModels.EnrollmentStatusInProgress, enrollment.Status)

	// 2 of 3 = 66.66..% rounds to 67
	enrollment = markLessonCompleted(t, db, learner.ID, crs.ID, lessons[1].ID)
	assert.Equal(t, 67, enrollment.Progress)
}

func TestProgressWithNoPublishedLessons(t *testing.T) {
	db := setupTestDB(t)
	setupNotifier(t)

	instructor := seedUser(t, db, "INSTRUCTOR")
	learner := seedUser(t, db, "USER")
	crs, _, _ := seedCourse(t, db, instructor.ID, 0)
	enrollment := seedEnrollment(t, db, learner.ID, crs.ID)

	require.NoError(t, RecalcEnrollmentProgress(db, &enrollment))
	assert.Equal(t, 0, enrollment.Progress)
	assert.Equal(t, 0, enrollment.TotalLessons)
	assert.NotEqual(t, courseModels.EnrollmentStatusCompleted, enrollment.Status)
}

func TestProgressIgnoresUnpublishedChapterLessons(t *testing.T) {
	db := setupTestDB(t)
	setupNotifier(t)

	instructor := seedUser(t, db, "INSTRUCTOR")
	learner := seedUser(t, db, "USER")
	crs, _, lessons := seedCourse(t, db, instructor.ID, 2)
	seedEnrollment(t, db, learner.ID, crs.ID)

	// A published lesson inside an unpublished chapter does not count
	// toward the denominator
	hidden := courseModels.Chapter{CourseID: crs.ID, Title: "Hidden", IsPublished: false}
	require.NoError(t, db.Create(&hidden).Error)
	extra := courseModels.Lesson{
		CourseID:    crs.ID,
		ChapterID:   hidden.ID,
		Title:       "Bonus",
		ContentType: courseModels.LessonTypeText,
		TextContent: "extra",
		IsPublished: true,
	}
	require.NoError(t, db.Create(&extra).Error)

	enrollment := markLessonCompleted(t, db, learner.ID, crs.ID, lessons[0].ID)
	assert.Equal(t, 50, enrollment.Progress)
	assert.Equal(t, 2, enrollment.TotalLessons)
}

func TestCompletionIssuesCertificate(t *testing.T) {
	db := setupTestDB(t)
	notifications := setupNotifier(t)

	instructor := seedUser(t, db, "INSTRUCTOR")
	learner := seedUser(t, db, "USER")
	crs, _, lessons := seedCourse(t, db, instructor.ID, 4)
	seedEnrollment(t, db, learner.ID, crs.ID)

	var enrollment *courseModels.Enrollment
	for _, lesson := range lessons[:3] {
		enrollment = markLessonCompleted(t, db, learner.ID, crs.ID, lesson.ID)
	}
	assert.Equal(t, 75, enrollment.Progress)
	assert.Equal(t, courseModels.EnrollmentStatusInProgress, enrollment.Status)
	assert.Nil(t, enrollment.CompletedAt)

	enrollment = markLessonCompleted(t, db, learner.ID, crs.ID, lessons[3].ID)
	assert.Equal(t, 100, enrollment.Progress)
	assert.Equal(t, courseModels.EnrollmentStatusCompleted, enrollment.Status)
	require.NotNil(t, enrollment.CompletedAt)

	var certificate courseModels.Certificate
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", learner.ID, crs.ID).First(&certificate).Error)
	assert.Regexp(t, certificateNumberPattern, certificate.CertificateNumber)
	assert.Equal(t, 100, certificate.Grade) // no quizzes in the course

	assert.Equal(t, []string{crs.Title}, notifications.completed)
	assert.Equal(t, []string{certificate.CertificateNumber}, notifications.certificates)
}

func TestCompletionIsSticky(t *testing.T) {
	db := setupTestDB(t)
	setupNotifier(t)

	instructor := seedUser(t, db, "INSTRUCTOR")
	learner := seedUser(t, db, "USER")
	crs, _, lessons := seedCourse(t, db, instructor.ID, 2)
	seedEnrollment(t, db, learner.ID, crs.ID)

	markLessonCompleted(t, db, learner.ID, crs.ID, lessons[0].ID)
	enrollment := markLessonCompleted(t, db, learner.ID, crs.ID, lessons[1].ID)
	require.Equal(t, courseModels.EnrollmentStatusCompleted, enrollment.Status)
	completedAt := *enrollment.CompletedAt

	// Un-marking a lesson lowers the percentage but keeps COMPLETED
	notDone := false
	_, enrollment, err := RecordLessonProgress(db, learner.ID, crs.ID, lessons[0].ID, ProgressUpdate{Completed: &notDone})
	require.NoError(t, err)
	assert.Equal(t, 50, enrollment.Progress)
	assert.Equal(t, courseModels.EnrollmentStatusCompleted, enrollment.Status)
	require.NotNil(t, enrollment.CompletedAt)
	assert.Equal(t, completedAt.Unix(), enrollment.CompletedAt.Unix())
}

func TestCompletionDoesNotReissueNotifications(t *testing.T) {
	db := setupTestDB(t)
	notifications := setupNotifier(t)

	instructor := seedUser(t, db, "INSTRUCTOR")
	learner := seedUser(t, db, "USER")
	crs, _, lessons := seedCourse(t, db, instructor.ID, 1)
	seedEnrollment(t, db, learner.ID, crs.ID)

	markLessonCompleted(t, db, learner.ID, crs.ID, lessons[0].ID)
	// Re-recording the same completion must not fire a second round
	markLessonCompleted(t, db, learner.ID, crs.ID, lessons[0].ID)

	assert.Len(t, notifications.completed, 1)
	assert.Len(t, notifications.certificates, 1)
}
