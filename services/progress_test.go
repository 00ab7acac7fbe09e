package services

import (
	courseModels "edusphere/models/course"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordLessonProgressRequiresEnrollment(t *testing.T) {
	db := setupTestDB(t)
	setupNotifier(t)

	instructor := seedUser(t, db, "INSTRUCTOR")
	learner := seedUser(t, db, "USER")
	crs, _, lessons := seedCourse(t, db, instructor.ID, 2)

	completed := true
	_, _, err := RecordLessonProgress(db, learner.ID, crs.ID, lessons[0].ID, ProgressUpdate{Completed: &completed})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordLessonProgressRejectsForeignLesson(t *testing.T) {
	db := setupTestDB(t)
	setupNotifier(t)

	instructor := seedUser(t, db, "INSTRUCTOR")
	learner := seedUser(t, db, "USER")
	crs, _, _ := seedCourse(t, db, instructor.ID, 2)
	other, _, otherLessons := seedCourse(t, db, instructor.ID, 1)
	seedEnrollment(t, db, learner.ID, crs.ID)

	completed := true
	_, _, err := RecordLessonProgress(db, learner.ID, crs.ID, otherLessons[0].ID, ProgressUpdate{Completed: &completed})
	assert.ErrorIs(t, err, ErrNotFound)

	// Enrollment in the other course was never created either
	_, _, err = RecordLessonProgress(db, learner.ID, other.ID, otherLessons[0].ID, ProgressUpdate{Completed: &completed})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordLessonProgressIgnoresUnpublishedLesson(t *testing.T) {
	db := setupTestDB(t)
	setupNotifier(t)

	instructor := seedUser(t, db, "INSTRUCTOR")
	learner := seedUser(t, db, "USER")
	crs, chapter, _ := seedCourse(t, db, instructor.ID, 1)
	seedEnrollment(t, db, learner.ID, crs.ID)

	draft := courseModels.Lesson{
		CourseID:    crs.ID,
		ChapterID:   chapter.ID,
		Title:       "Draft lesson",
		ContentType: courseModels.LessonTypeText,
		TextContent: "wip",
		IsPublished: false,
	}
	require.NoError(t, db.Create(&draft).Error)

	completed := true
	_, _, err := RecordLessonProgress(db, learner.ID, crs.ID, draft.ID, ProgressUpdate{Completed: &completed})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordLessonProgressUpsertsSingleRow(t *testing.T) {
	db := setupTestDB(t)
	setupNotifier(t)

	instructor := seedUser(t, db, "INSTRUCTOR")
	learner := seedUser(t, db, "USER")
	crs, _, lessons := seedCourse(t, db, instructor.ID, 2)
	enrollment := seedEnrollment(t, db, learner.ID, crs.ID)

	watched := 30
	progress, _, err := RecordLessonProgress(db, learner.ID, crs.ID, lessons[0].ID, ProgressUpdate{WatchedSeconds: &watched})
	require.NoError(t, err)
	assert.Equal(t, 30, progress.WatchedSeconds)
	assert.False(t, progress.IsCompleted)

	watched = 90
	completed := true
	progress, _, err = RecordLessonProgress(db, learner.ID, crs.ID, lessons[0].ID, ProgressUpdate{WatchedSeconds: &watched, Completed: &completed})
	require.NoError(t, err)
	assert.Equal(t, 90, progress.WatchedSeconds)
	assert.True(t, progress.IsCompleted)
	require.NotNil(t, progress.CompletedAt)

	var count int64
	db.Model(&courseModels.Progress{}).Where("enrollment_id = ?", enrollment.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRecordLessonProgressCanUnmarkCompletion(t *testing.T) {
	db := setupTestDB(t)
	setupNotifier(t)

	instructor := seedUser(t, db, "INSTRUCTOR")
	learner := seedUser(t, db, "USER")
	crs, _, lessons := seedCourse(t, db, instructor.ID, 2)
	seedEnrollment(t, db, learner.ID, crs.ID)

	enrollment := markLessonCompleted(t, db, learner.ID, crs.ID, lessons[0].ID)
	assert.Equal(t, 50, enrollment.Progress)

	completed := false
	progress, enrollment2, err := RecordLessonProgress(db, learner.ID, crs.ID, lessons[0].ID, ProgressUpdate{Completed: &completed})
	require.NoError(t, err)
	assert.False(t, progress.IsCompleted)
	assert.Nil(t, progress.CompletedAt)
	assert.Equal(t, 0, enrollment2.Progress)
}
