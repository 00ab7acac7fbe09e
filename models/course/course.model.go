package course

import "gorm.io/gorm"

const (
	CourseStatusDraft    = "DRAFT"
	CourseStatusActive   = "ACTIVE"
	CourseStatusInactive = "INACTIVE"
)

// Course represents a marketplace course owned by an instructor
type Course struct {
	gorm.Model
	InstructorID uint    `json:"instructor_id" gorm:"index;not null"`
	Title        string  `json:"title"`
	Description  string  `json:"description" gorm:"type:text"`
	Category     string  `json:"category"`
	Price        float64 `json:"price" gorm:"default:0"` // 0 means free enrollment
	Status       string  `json:"status" gorm:"default:'DRAFT'"`
	ThumbnailURL string  `json:"thumbnail_url"`
	IsPublished  bool    `json:"is_published" gorm:"default:false"`
	IsDeleted    bool    `json:"-" gorm:"default:false"`
}

// Chapter represents a section within a course
type Chapter struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}

const (
	LessonTypeVideo = "VIDEO"
	LessonTypeText  = "TEXT"
	LessonTypeQuiz  = "QUIZ"
)

// Lesson represents a single learning unit within a chapter
type Lesson struct {
	gorm.Model
	CourseID        uint   `json:"course_id" gorm:"index;not null"` // Denormalized for cheap course-wide queries
	ChapterID       uint   `json:"chapter_id" gorm:"index;not null"`
	Title           string `json:"title"`
	ContentType     string `json:"content_type" gorm:"default:'VIDEO'"` // VIDEO, TEXT, QUIZ
	VideoURL        string `json:"video_url"`
	TextContent     string `json:"text_content" gorm:"type:text"`
	DurationSeconds int    `json:"duration_seconds" gorm:"default:0"`
	OrderIndex      int    `json:"order_index" gorm:"default:0"`
	IsPublished     bool   `json:"is_published" gorm:"default:false"`
	IsDeleted       bool   `json:"-" gorm:"default:false"`
}
