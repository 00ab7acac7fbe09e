package services

import (
	courseModels "edusphere/models/course"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func completeEnrollment(t *testing.T, db *gorm.DB, enrollment *courseModels.Enrollment) {
	t.Helper()
	now := time.Now()
	enrollment.Status = courseModels.EnrollmentStatusCompleted
	enrollment.Progress = 100
	enrollment.CompletedAt = &now
	require.NoError(t, db.Save(enrollment).Error)
}

func TestIssueCertificateRequiresCompletion(t *testing.T) {
	db := setupTestDB(t)
	setupNotifier(t)

	instructor := seedUser(t, db, "INSTRUCTOR")
	learner := seedUser(t, db, "USER")
	crs, _, _ := seedCourse(t, db, instructor.ID, 2)
	seedEnrollment(t, db, learner.ID, crs.ID)

	_, err := IssueCertificate(db, learner.ID, crs.ID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestIssueCertificateWithoutEnrollment(t *testing.T) {
	db := setupTestDB(t)
	setupNotifier(t)

	instructor := seedUser(t, db, "INSTRUCTOR")
	learner := seedUser(t, db, "USER")
	crs, _, _ := seedCourse(t, db, instructor.ID, 2)

	_, err := IssueCertificate(db, learner.ID, crs.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIssueCertificateIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	notifications := setupNotifier(t)

	instructor := seedUser(t, db, "INSTRUCTOR")
	learner := seedUser(t, db, "USER")
	crs, _, _ := seedCourse(t, db, instructor.ID, 1)
	enrollment := seedEnrollment(t, db, learner.ID, crs.ID)
	completeEnrollment(t, db, &enrollment)

	first, err := IssueCertificate(db, learner.ID, crs.ID)
	require.NoError(t, err)
	assert.Regexp(t, certificateNumberPattern, first.CertificateNumber)

	second, err := IssueCertificate(db, learner.ID, crs.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CertificateNumber, second.CertificateNumber)

	var count int64
	db.Model(&courseModels.Certificate{}).Where("user_id = ? AND course_id = ?", learner.ID, crs.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	// Only the first issuance notifies
	assert.Len(t, notifications.certificates, 1)
}

func TestCertificateGradeAveragesBestScores(t *testing.T) {
	db := setupTestDB(t)
	setupNotifier(t)

	instructor := seedUser(t, db, "INSTRUCTOR")
	learner := seedUser(t, db, "USER")
	crs, _, lessons := seedCourse(t, db, instructor.ID, 2)
	enrollment := seedEnrollment(t, db, learner.ID, crs.ID)

	quizA, _, _ := seedQuiz(t, db, lessons[0].ID, 70, 1, 2)
	quizB, _, _ := seedQuiz(t, db, lessons[1].ID, 70, 1, 2)

	// Best of 60 and 80 on quiz A, single 100 on quiz B: grade 90
	for _, attempt := range []courseModels.QuizAttempt{
		{QuizID: quizA.ID, UserID: learner.ID, Score: 60, AttemptNumber: 1},
		{QuizID: quizA.ID, UserID: learner.ID, Score: 80, AttemptNumber: 2},
		{QuizID: quizB.ID, UserID: learner.ID, Score: 100, Passed: true, AttemptNumber: 1},
	} {
		now := time.Now()
		attempt.CompletedAt = &now
		require.NoError(t, db.Create(&attempt).Error)
	}

	completeEnrollment(t, db, &enrollment)
	certificate, err := IssueCertificate(db, learner.ID, crs.ID)
	require.NoError(t, err)
	assert.Equal(t, 90, certificate.Grade)
}

func TestCertificateGradeUnattemptedQuizCountsZero(t *testing.T) {
	db := setupTestDB(t)
	setupNotifier(t)

	instructor := seedUser(t, db, "INSTRUCTOR")
	learner := seedUser(t, db, "USER")
	crs, _, lessons := seedCourse(t, db, instructor.ID, 2)
	enrollment := seedEnrollment(t, db, learner.ID, crs.ID)

	quizA, _, _ := seedQuiz(t, db, lessons[0].ID, 70, 1, 2)
	seedQuiz(t, db, lessons[1].ID, 70, 1, 2)

	now := time.Now()
	attempt := courseModels.QuizAttempt{QuizID: quizA.ID, UserID: learner.ID, Score: 100, Passed: true, AttemptNumber: 1, CompletedAt: &now}
	require.NoError(t, db.Create(&attempt).Error)

	completeEnrollment(t, db, &enrollment)
	certificate, err := IssueCertificate(db, learner.ID, crs.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, certificate.Grade)
}

func TestVerifyCertificate(t *testing.T) {
	db := setupTestDB(t)
	setupNotifier(t)

	instructor := seedUser(t, db, "INSTRUCTOR")
	learner := seedUser(t, db, "USER")
	crs, _, _ := seedCourse(t, db, instructor.ID, 1)
	enrollment := seedEnrollment(t, db, learner.ID, crs.ID)
	completeEnrollment(t, db, &enrollment)

	issued, err := IssueCertificate(db, learner.ID, crs.ID)
	require.NoError(t, err)

	found, err := VerifyCertificate(db, issued.CertificateNumber)
	require.NoError(t, err)
	assert.Equal(t, issued.ID, found.ID)
	assert.Equal(t, learner.ID, found.UserID)

	_, err = VerifyCertificate(db, "CERT-0-DEADBEEF")
	assert.ErrorIs(t, err, ErrNotFound)
}
