package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Quiz belongs to exactly one quiz-type lesson
type Quiz struct {
	gorm.Model
	LessonID      uint   `json:"lesson_id" gorm:"uniqueIndex;not null"`
	Title         string `json:"title"`
	PassingScore  int    `json:"passing_score" gorm:"default:70"` // Percentage 0-100
	RevealAnswers bool   `json:"reveal_answers" gorm:"default:true"`
	IsDeleted     bool   `json:"-" gorm:"default:false"`
}

const (
	QuestionTypeSingleChoice = "SINGLE_CHOICE"
	QuestionTypeTrueFalse    = "TRUE_FALSE"
	QuestionTypeMultiSelect  = "MULTI_SELECT"
)

// QuizQuestion holds one question and its point value. Options carry the
// correct set; single-answer types have exactly one correct option.
type QuizQuestion struct {
	gorm.Model
	QuizID       uint   `json:"quiz_id" gorm:"index;not null"`
	QuestionText string `json:"question_text" gorm:"type:text"`
	QuestionType string `json:"question_type" gorm:"default:'SINGLE_CHOICE'"` // SINGLE_CHOICE, TRUE_FALSE, MULTI_SELECT
	Points       int    `json:"points" gorm:"default:1"`
	Explanation  string `json:"explanation" gorm:"type:text"`
	OrderIndex   int    `json:"order_index" gorm:"default:0"`
	IsDeleted    bool   `json:"-" gorm:"default:false"`
}

// QuizOption represents an answer option for a question
type QuizOption struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	OptionText string `json:"option_text"`
	IsCorrect  bool   `json:"-" gorm:"default:false"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `json:"-" gorm:"default:false"`
}

// QuizAttempt represents one scored submission of a quiz by a user.
// CompletedAt is nil while the attempt is still open.
type QuizAttempt struct {
	gorm.Model
	QuizID        uint       `json:"quiz_id" gorm:"index;not null"`
	UserID        uint       `json:"user_id" gorm:"index;not null"`
	Score         int        `json:"score" gorm:"default:0"` // Percentage 0-100
	Passed        bool       `json:"passed" gorm:"default:false"`
	AttemptNumber int        `json:"attempt_number" gorm:"default:1"`
	CompletedAt   *time.Time `json:"completed_at"`
	IsDeleted     bool       `json:"-" gorm:"default:false"`
}

// QuizAnswer records the submitted option set and awarded points for one question
type QuizAnswer struct {
	gorm.Model
	AttemptID       uint           `json:"attempt_id" gorm:"index;not null"`
	QuestionID      uint           `json:"question_id" gorm:"index;not null"`
	SelectedOptions datatypes.JSON `json:"selected_options"` // JSON array of option IDs
	IsCorrect       bool           `json:"is_correct" gorm:"default:false"`
	AwardedPoints   int            `json:"awarded_points" gorm:"default:0"`
	IsDeleted       bool           `json:"-" gorm:"default:false"`
}
