package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"pathfinder_backend/internal/model"
	"pathfinder_backend/internal/repository"
	"pathfinder_backend/internal/util"
	"pathfinder_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// fallbackFeedback is returned when grading cannot run at all; the user is
// not penalized for a server-side fault.
const fallbackFeedback = "Great work completing this career simulation! This hands-on experience helps you understand what this field involves day-to-day. Keep exploring different career paths to find what truly engages you."

const (
	defaultFeedbackCorrect   = "Great work on the career simulation! You've demonstrated strong skills in this area."
	defaultFeedbackIncorrect = "Good effort on the career task! Review the instructions and try again - practice makes perfect."
	incompleteFeedback       = "Good effort! Review the guidance above for incorrect questions and try again."
)

// QuestionAnswer is one entry of a multi-question submission payload.
type QuestionAnswer struct {
	QuestionID string
	Answer     string
}

type SubmissionService struct {
	simRepo        *repository.SimulationRepository
	userRepo       *repository.UserRepository
	submissionRepo *repository.SubmissionRepository
}

func NewSubmissionService(
	simRepo *repository.SimulationRepository,
	userRepo *repository.UserRepository,
	submissionRepo *repository.SubmissionRepository,
) *SubmissionService {
	return &SubmissionService{
		simRepo:        simRepo,
		userRepo:       userRepo,
		submissionRepo: submissionRepo,
	}
}

// Submit grades one submission and persists the outcome. A non-empty answers
// slice selects the multi-question path; otherwise the single answer is
// graded against the simulation-level rule.
func (s *SubmissionService) Submit(userID, simulationID, answer string, answers []QuestionAnswer) (*model.Submission, error) {
	if len(answers) > 0 {
		return s.submitQuestions(userID, simulationID, answers)
	}
	return s.submitSingle(userID, simulationID, answer)
}

// History returns the user's past submissions, newest first.
func (s *SubmissionService) History(userID string) ([]model.Submission, error) {
	subs, err := s.submissionRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []model.Submission{}
	}
	return subs, nil
}

func (s *SubmissionService) submitQuestions(userID, simulationID string, answers []QuestionAnswer) (*model.Submission, error) {
	sim, err := s.simRepo.FindByID(simulationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSimulationNotFound
		}
		return nil, err
	}

	questions := make(map[string]*model.Question, len(sim.Questions))
	for i := range sim.Questions {
		questions[sim.Questions[i].QuestionID] = &sim.Questions[i]
	}

	results := make([]model.QuestionResult, 0, len(answers))
	allCorrect := true
	for _, qa := range answers {
		qid := strings.TrimSpace(qa.QuestionID)
		ans := strings.TrimSpace(qa.Answer)

		if qid == "" {
			allCorrect = false
			results = append(results, model.QuestionResult{
				Answer:    ans,
				Feedback:  "Missing question_id",
				IsCorrect: false,
			})
			continue
		}

		result := model.QuestionResult{QuestionID: qid, Answer: ans}
		if q, ok := questions[qid]; ok {
			result.IsCorrect = EvaluateAnswer(q.ExpectedAnswerType, q.CorrectAnswer, ans, q.Rule)
			if result.IsCorrect {
				result.Feedback = q.FeedbackCorrect
			} else {
				result.Feedback = q.FeedbackIncorrect
			}
		}
		if !result.IsCorrect {
			allCorrect = false
		}
		results = append(results, result)
	}

	// All-correct submissions get one completion summary instead of the
	// per-question feedback repeated back.
	var feedback string
	if allCorrect {
		feedback = fmt.Sprintf("Excellent work! You completed '%s' and answered all questions correctly.", sim.Title)
	} else {
		parts := make([]string, 0, len(results))
		for _, r := range results {
			if r.Feedback != "" {
				parts = append(parts, r.Feedback)
			}
		}
		feedback = strings.Join(parts, "; ")
		if feedback == "" {
			feedback = incompleteFeedback
		}
	}

	encoded, err := json.Marshal(results)
	if err != nil {
		return nil, err
	}

	submission := &model.Submission{
		UserID:       userID,
		SimulationID: simulationID,
		Answer:       string(encoded),
		Feedback:     feedback,
		IsCorrect:    allCorrect,
	}

	if allCorrect {
		s.award(submission, sim.Badge)
	}

	if err := s.submissionRepo.Create(submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *SubmissionService) submitSingle(userID, simulationID, answer string) (*model.Submission, error) {
	submission := &model.Submission{
		UserID:       userID,
		SimulationID: simulationID,
		Answer:       answer,
	}

	sim, err := s.simRepo.FindByID(simulationID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Unknown simulation is still recorded, graded incorrect.
		submission.Feedback = "Simulation not found"
	case err != nil:
		// Grading is unavailable; do not penalize the user.
		logger.Log.Error("Grading failed, returning fallback feedback",
			zap.String("simulation_id", simulationID), zap.Error(err))
		submission.Feedback = fallbackFeedback
		submission.IsCorrect = true
	default:
		if sim.CorrectAnswer != "" {
			submission.IsCorrect = EvaluateAnswer(sim.ExpectedAnswerType, sim.CorrectAnswer, answer, sim.Rule)
		}
		submission.Feedback = singleFeedback(sim, submission.IsCorrect)
		if submission.IsCorrect {
			s.award(submission, sim.Badge)
		}
	}

	if err := s.submissionRepo.Create(submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func singleFeedback(sim *model.Simulation, correct bool) string {
	if correct {
		if sim.FeedbackCorrect != "" {
			return sim.FeedbackCorrect
		}
		return defaultFeedbackCorrect
	}
	if sim.FeedbackIncorrect != "" {
		return sim.FeedbackIncorrect
	}
	return defaultFeedbackIncorrect
}

// award records the badge and completion. BadgeEarned is only set when this
// submission actually added the badge, so repeat completions report nothing.
// A failed award never fails the submission.
func (s *SubmissionService) award(submission *model.Submission, badge string) {
	if badge == "" {
		return
	}
	awarded, err := s.userRepo.AwardBadge(submission.UserID, badge, submission.SimulationID)
	if err != nil {
		logger.Log.Error("Badge award failed",
			zap.String("user_id", submission.UserID),
			zap.String("badge", badge),
			zap.Error(err))
		return
	}
	if awarded {
		submission.BadgeEarned = badge
	}
}
