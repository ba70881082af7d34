package model

import "strings"

type AnswerType string

const (
	AnswerNumber     AnswerType = "number"
	AnswerText       AnswerType = "text"
	AnswerPercentage AnswerType = "percentage"
	AnswerList       AnswerType = "list"
	AnswerCode       AnswerType = "code"
	AnswerBoolean    AnswerType = "boolean"
)

type MatchMode string

const (
	// MatchExact compares the normalized submission against the correct
	// answer (or any accepted alternate) for equality.
	MatchExact MatchMode = "exact"
	// MatchContains accepts the submission when any accepted answer occurs
	// inside it, e.g. "the router uses default credentials".
	MatchContains MatchMode = "contains"
)

// GradingRule is the per-question (or per-simulation, for the single-answer
// path) evaluation policy. It lives on the catalog record so the evaluator
// and the seeding routine share one authoritative source.
type GradingRule struct {
	MatchMode       MatchMode  `gorm:"size:20;default:'exact'" json:"-"`
	AcceptedAnswers StringList `gorm:"type:json" json:"-"`
	// MinListMatches relaxes list grading to "at least N of the expected set
	// present". Zero means every expected element is required.
	MinListMatches int `gorm:"default:0" json:"-"`
}

// Simulation is one career exercise. Immutable after seeding except for
// administrative bulk overwrite.
// swagger:model Simulation
type Simulation struct {
	ID                 string     `gorm:"primaryKey;size:64" json:"id"`
	Title              string     `gorm:"size:255;not null" json:"title"`
	Description        string     `gorm:"size:512" json:"description"`
	FieldID            string     `gorm:"size:64;index" json:"field_id"`
	SubField           string     `gorm:"size:100" json:"sub_field"`
	Difficulty         string     `gorm:"size:32" json:"difficulty"`
	EstimatedTime      string     `gorm:"size:32" json:"estimated_time"`
	Briefing           string     `gorm:"type:text" json:"briefing"`
	Instructions       string     `gorm:"type:text" json:"instructions"`
	TaskType           string     `gorm:"size:32" json:"task_type"`
	ExpectedAnswerType AnswerType `gorm:"size:20" json:"expected_answer_type"`
	Hints              StringList `gorm:"type:json" json:"hints"`
	Checklist          StringList `gorm:"type:json" json:"checklist"`

	// Server-only grading data, never serialized to clients.
	Badge             string      `gorm:"size:100" json:"-"`
	CorrectAnswer     string      `gorm:"size:255" json:"-"`
	Rule              GradingRule `gorm:"embedded;embeddedPrefix:rule_" json:"-"`
	FeedbackCorrect   string      `gorm:"type:text" json:"-"`
	FeedbackIncorrect string      `gorm:"type:text" json:"-"`

	Questions []Question `gorm:"foreignKey:SimulationID;constraint:OnDelete:CASCADE" json:"questions"`
}

func (Simulation) TableName() string {
	return "simulations"
}

// Question belongs to a simulation; QuestionID ("q1", "q2"...) is unique
// within it. CorrectAnswer and the grading rule stay server-side.
// swagger:model Question
type Question struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	SimulationID string `gorm:"size:64;uniqueIndex:idx_simulation_question;not null" json:"-"`
	QuestionID   string `gorm:"size:32;uniqueIndex:idx_simulation_question;not null" json:"id"`
	Position     int    `gorm:"default:0" json:"-"`

	Prompt             string     `gorm:"type:text;not null" json:"prompt"`
	ExpectedAnswerType AnswerType `gorm:"size:20;not null" json:"expected_answer_type"`
	Hints              StringList `gorm:"type:json" json:"hints"`

	CorrectAnswer     string      `gorm:"size:255" json:"-"`
	Rule              GradingRule `gorm:"embedded;embeddedPrefix:rule_" json:"-"`
	FeedbackCorrect   string      `gorm:"type:text" json:"-"`
	FeedbackIncorrect string      `gorm:"type:text" json:"-"`
}

func (Question) TableName() string {
	return "questions"
}

// QuestionPublic exposes a question without its grading data. The mask and
// length hints are derived from the normalized correct answer (underscores
// count as spaces) so the UI can size inputs without leaking content.
// swagger:model QuestionPublic
type QuestionPublic struct {
	ID                 string     `json:"id"`
	Prompt             string     `json:"prompt"`
	ExpectedAnswerType AnswerType `json:"expected_answer_type"`
	Hints              []string   `json:"hints"`
	AnswerMask         string     `json:"answer_mask,omitempty"`
	MaxLength          int        `json:"max_length,omitempty"`
}

// SimulationPublic is the client-facing projection of a Simulation.
// swagger:model SimulationPublic
type SimulationPublic struct {
	ID                 string           `json:"id"`
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	FieldID            string           `json:"field_id"`
	SubField           string           `json:"sub_field"`
	Difficulty         string           `json:"difficulty"`
	EstimatedTime      string           `json:"estimated_time"`
	Briefing           string           `json:"briefing"`
	Instructions       string           `json:"instructions"`
	TaskType           string           `json:"task_type"`
	ExpectedAnswerType AnswerType       `json:"expected_answer_type"`
	Hints              []string         `json:"hints"`
	Checklist          []string         `json:"checklist"`
	Questions          []QuestionPublic `json:"questions"`
}

func (q *Question) Public() QuestionPublic {
	pub := QuestionPublic{
		ID:                 q.QuestionID,
		Prompt:             q.Prompt,
		ExpectedAnswerType: q.ExpectedAnswerType,
		Hints:              emptyIfNil(q.Hints),
	}
	if q.CorrectAnswer != "" {
		masked := strings.ReplaceAll(q.CorrectAnswer, "_", " ")
		pub.AnswerMask = strings.Repeat("*", len(masked))
		pub.MaxLength = len(masked)
	}
	return pub
}

func (s *Simulation) Public() SimulationPublic {
	pub := SimulationPublic{
		ID:                 s.ID,
		Title:              s.Title,
		Description:        s.Description,
		FieldID:            s.FieldID,
		SubField:           s.SubField,
		Difficulty:         s.Difficulty,
		EstimatedTime:      s.EstimatedTime,
		Briefing:           s.Briefing,
		Instructions:       s.Instructions,
		TaskType:           s.TaskType,
		ExpectedAnswerType: s.ExpectedAnswerType,
		Hints:              emptyIfNil(s.Hints),
		Checklist:          emptyIfNil(s.Checklist),
		Questions:          make([]QuestionPublic, 0, len(s.Questions)),
	}
	for i := range s.Questions {
		pub.Questions = append(pub.Questions, s.Questions[i].Public())
	}
	return pub
}

func emptyIfNil(l StringList) []string {
	if l == nil {
		return []string{}
	}
	return l
}
