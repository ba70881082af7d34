package model

import (
	"time"

	"gorm.io/gorm"
)

// Submission is one grading outcome. Append-only: created once per grading
// request, never mutated or deleted.
// swagger:model Submission
type Submission struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID       string    `gorm:"type:varchar(36);index;not null" json:"user_id"`
	SimulationID string    `gorm:"size:64;index;not null" json:"simulation_id"`
	Answer       string    `gorm:"type:text" json:"answer"`
	Feedback     string    `gorm:"type:text" json:"ai_feedback"`
	IsCorrect    bool      `json:"is_correct"`
	BadgeEarned  string    `gorm:"size:100" json:"skill_badge_earned,omitempty"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

func (Submission) TableName() string {
	return "submissions"
}

func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = GenerateUUID()
	}
	if s.SubmittedAt.IsZero() {
		s.SubmittedAt = time.Now().UTC()
	}
	return nil
}

// QuestionResult is one graded entry of a multi-question submission; the
// full list is JSON-encoded into Submission.Answer.
type QuestionResult struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
	IsCorrect  bool   `json:"is_correct"`
	Feedback   string `json:"feedback"`
}
