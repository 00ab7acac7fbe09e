package services

import (
	courseModels "edusphere/models/course"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"

	"gorm.io/gorm"
)

// GradedQuestion is the per-question result returned to the caller when
// the quiz is configured to reveal answers.
type GradedQuestion struct {
	QuestionID       uint   `json:"question_id"`
	QuestionText     string `json:"question_text"`
	QuestionType     string `json:"question_type"`
	SelectedOptions  []uint `json:"selected_options"`
	CorrectOptions   []uint `json:"correct_options,omitempty"`
	IsCorrect        bool   `json:"is_correct"`
	AwardedPoints    int    `json:"awarded_points"`
	AvailablePoints  int    `json:"available_points"`
	Explanation      string `json:"explanation,omitempty"`
}

// QuizResult is the outcome of grading one attempt
type QuizResult struct {
	Attempt   *courseModels.QuizAttempt `json:"attempt"`
	Score     int                       `json:"score"`
	Passed    bool                      `json:"passed"`
	Breakdown []GradedQuestion          `json:"breakdown,omitempty"`
}

// StartQuizAttempt opens a new attempt for the caller, or returns the
// existing open one. The caller must be enrolled in the course owning
// the quiz's lesson.
func StartQuizAttempt(db *gorm.DB, userID, quizID uint) (*courseModels.QuizAttempt, error) {
	var quiz courseModels.Quiz
	if err := db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return nil, fmt.Errorf("quiz %d: %w", quizID, ErrNotFound)
	}

	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", quiz.LessonID, false).First(&lesson).Error; err != nil {
		return nil, fmt.Errorf("quiz %d lesson: %w", quizID, ErrNotFound)
	}

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, lesson.CourseID, false).First(&enrollment).Error; err != nil {
		return nil, fmt.Errorf("enrollment for course %d: %w", lesson.CourseID, ErrNotFound)
	}

	// Resume an open attempt instead of stacking new ones
	var open courseModels.QuizAttempt
	if err := db.Where("quiz_id = ? AND user_id = ? AND completed_at IS NULL AND is_deleted = ?", quizID, userID, false).First(&open).Error; err == nil {
		return &open, nil
	}

	var attemptCount int64
	db.Model(&courseModels.QuizAttempt{}).Where("quiz_id = ? AND user_id = ? AND is_deleted = ?", quizID, userID, false).Count(&attemptCount)

	attempt := courseModels.QuizAttempt{
		QuizID:        quizID,
		UserID:        userID,
		AttemptNumber: int(attemptCount) + 1,
	}
	if err := db.Create(&attempt).Error; err != nil {
		return nil, err
	}

	return &attempt, nil
}

// SubmitQuizAttempt grades the submitted answers mapping, persists the
// attempt result and its answer rows atomically, and on pass marks the
// owning lesson complete through the progress recorder.
//
// Unanswered questions count as incorrect and contribute zero points.
func SubmitQuizAttempt(db *gorm.DB, userID, attemptID uint, answers map[uint][]uint) (*QuizResult, error) {
	var attempt courseModels.QuizAttempt
	if err := db.Where("id = ? AND is_deleted = ?", attemptID, false).First(&attempt).Error; err != nil {
		return nil, fmt.Errorf("attempt %d: %w", attemptID, ErrNotFound)
	}
	if attempt.UserID != userID {
		// Foreign attempts look absent to the caller
		return nil, fmt.Errorf("attempt %d: %w", attemptID, ErrNotFound)
	}
	if attempt.CompletedAt != nil {
		return nil, fmt.Errorf("attempt %d already submitted: %w", attemptID, ErrConflict)
	}

	var quiz courseModels.Quiz
	if err := db.Where("id = ? AND is_deleted = ?", attempt.QuizID, false).First(&quiz).Error; err != nil {
		return nil, fmt.Errorf("quiz %d: %w", attempt.QuizID, ErrNotFound)
	}

	var questions []courseModels.QuizQuestion
	if err := db.Where("quiz_id = ? AND is_deleted = ?", quiz.ID, false).Order("order_index asc").Find(&questions).Error; err != nil {
		return nil, err
	}

	totalPoints := 0
	awardedPoints := 0
	breakdown := make([]GradedQuestion, 0, len(questions))
	answerRows := make([]courseModels.QuizAnswer, 0, len(questions))

	for _, question := range questions {
		totalPoints += question.Points

		var options []courseModels.QuizOption
		if err := db.Where("question_id = ? AND is_deleted = ?", question.ID, false).Find(&options).Error; err != nil {
			return nil, err
		}

		correctIDs := make([]uint, 0, len(options))
		for _, opt := range options {
			if opt.IsCorrect {
				correctIDs = append(correctIDs, opt.ID)
			}
		}

		submitted := answers[question.ID]
		correct, err := gradeQuestion(question.QuestionType, submitted, correctIDs)
		if err != nil {
			return nil, err
		}

		awarded := 0
		if correct {
			awarded = question.Points
			awardedPoints += awarded
		}

		selectedJSON, _ := json.Marshal(submitted)
		answerRows = append(answerRows, courseModels.QuizAnswer{
			QuestionID:      question.ID,
			SelectedOptions: selectedJSON,
			IsCorrect:       correct,
			AwardedPoints:   awarded,
		})

		graded := GradedQuestion{
			QuestionID:      question.ID,
			QuestionText:    question.QuestionText,
			QuestionType:    question.QuestionType,
			SelectedOptions: submitted,
			IsCorrect:       correct,
			AwardedPoints:   awarded,
			AvailablePoints: question.Points,
		}
		if quiz.RevealAnswers {
			graded.CorrectOptions = correctIDs
			graded.Explanation = question.Explanation
		}
		breakdown = append(breakdown, graded)
	}

	// A quiz with no points cannot be failed arithmetically; score is 0
	score := 0
	if totalPoints > 0 {
		score = int(math.Round(float64(awardedPoints) / float64(totalPoints) * 100))
	}
	passed := score >= quiz.PassingScore

	now := time.Now()
	attempt.Score = score
	attempt.Passed = passed
	attempt.CompletedAt = &now

	// Attempt result and answer rows land together or not at all
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&attempt).Error; err != nil {
			return err
		}
		for i := range answerRows {
			answerRows[i].AttemptID = attempt.ID
			if err := tx.Create(&answerRows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if passed {
		markQuizLessonComplete(db, userID, quiz.LessonID)
	}

	result := &QuizResult{
		Attempt: &attempt,
		Score:   score,
		Passed:  passed,
	}
	if quiz.RevealAnswers {
		result.Breakdown = breakdown
	}
	return result, nil
}

// gradeQuestion decides correctness for one question type. Single-answer
// types need the one correct option; multi-select needs exact set equality.
func gradeQuestion(questionType string, submitted, correct []uint) (bool, error) {
	switch questionType {
	case courseModels.QuestionTypeSingleChoice, courseModels.QuestionTypeTrueFalse:
		if len(submitted) != 1 || len(correct) != 1 {
			return false, nil
		}
		return submitted[0] == correct[0], nil
	case courseModels.QuestionTypeMultiSelect:
		if len(submitted) == 0 || len(submitted) != len(correct) {
			return false, nil
		}
		correctSet := make(map[uint]bool, len(correct))
		for _, id := range correct {
			correctSet[id] = true
		}
		seen := make(map[uint]bool, len(submitted))
		for _, id := range submitted {
			if !correctSet[id] || seen[id] {
				return false, nil
			}
			seen[id] = true
		}
		return true, nil
	default:
		return false, fmt.Errorf("unknown question type %q: %w", questionType, ErrValidation)
	}
}

// markQuizLessonComplete cascades a passed quiz into lesson completion.
// The enrollment percentage self-corrects on the next recompute, so a
// failure here is logged rather than surfaced after the attempt committed.
func markQuizLessonComplete(db *gorm.DB, userID, lessonID uint) {
	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		log.Printf("Quiz pass cascade skipped, lesson %d not found: %v", lessonID, err)
		return
	}

	completed := true
	if _, _, err := RecordLessonProgress(db, userID, lesson.CourseID, lessonID, ProgressUpdate{Completed: &completed}); err != nil {
		log.Printf("Quiz pass cascade failed for lesson %d: %v", lessonID, err)
	}
}
