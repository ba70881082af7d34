package service

import (
	"encoding/json"
	"testing"

	"pathfinder_backend/internal/model"
	"pathfinder_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitSingleAnswer(t *testing.T) {
	env := seededEnv(t)
	userID := env.registerUser(t, "single@example.com")

	t.Run("correct answer earns the badge", func(t *testing.T) {
		sub, err := env.submission.Submit(userID, "se-debugging-1", "5", nil)
		require.NoError(t, err)

		assert.True(t, sub.IsCorrect)
		assert.Equal(t, "Debugging Specialist", sub.BadgeEarned)
		assert.Contains(t, sub.Feedback, "Excellent debugging skills")
		assert.NotEmpty(t, sub.ID)
		assert.False(t, sub.SubmittedAt.IsZero())
	})

	t.Run("repeat completion does not re-earn", func(t *testing.T) {
		sub, err := env.submission.Submit(userID, "se-debugging-1", "5", nil)
		require.NoError(t, err)

		assert.True(t, sub.IsCorrect)
		assert.Empty(t, sub.BadgeEarned)

		badges, err := env.userRepo.ListBadges(userID)
		require.NoError(t, err)
		assert.Equal(t, []string{"Debugging Specialist"}, badges)

		completions, err := env.userRepo.ListCompletions(userID)
		require.NoError(t, err)
		assert.Equal(t, []string{"se-debugging-1"}, completions)
	})

	t.Run("wrong answer gets corrective feedback and no badge", func(t *testing.T) {
		sub, err := env.submission.Submit(userID, "cloud-aws-1", "3", nil)
		require.NoError(t, err)

		assert.False(t, sub.IsCorrect)
		assert.Empty(t, sub.BadgeEarned)
		assert.Contains(t, sub.Feedback, "12 services")
	})

	t.Run("unknown simulation is recorded as incorrect", func(t *testing.T) {
		sub, err := env.submission.Submit(userID, "no-such-sim", "whatever", nil)
		require.NoError(t, err)

		assert.False(t, sub.IsCorrect)
		assert.Equal(t, "Simulation not found", sub.Feedback)
	})

	t.Run("password list needs two of three", func(t *testing.T) {
		sub, err := env.submission.Submit(userID, "cyber-password-1", "admin, letmein", nil)
		require.NoError(t, err)
		assert.True(t, sub.IsCorrect)

		sub, err = env.submission.Submit(userID, "cyber-password-1", "admin", nil)
		require.NoError(t, err)
		assert.False(t, sub.IsCorrect)
	})

	t.Run("contains match on vulnerability phrasing", func(t *testing.T) {
		sub, err := env.submission.Submit(userID, "cyber-penetration-1", "router has default credentials", nil)
		require.NoError(t, err)
		assert.True(t, sub.IsCorrect)
	})
}

func TestSubmitQuestionAnswers(t *testing.T) {
	env := seededEnv(t)
	userID := env.registerUser(t, "multi@example.com")

	t.Run("unknown simulation is rejected", func(t *testing.T) {
		_, err := env.submission.Submit(userID, "no-such-sim", "", []QuestionAnswer{{QuestionID: "q1", Answer: "5"}})
		assert.ErrorIs(t, err, util.ErrSimulationNotFound)
	})

	t.Run("all correct produces a completion summary and badge", func(t *testing.T) {
		sub, err := env.submission.Submit(userID, "se-debugging-1", "", []QuestionAnswer{
			{QuestionID: "q1", Answer: "5"},
			{QuestionID: "q2", Answer: "negative discount validation"},
		})
		require.NoError(t, err)

		assert.True(t, sub.IsCorrect)
		assert.Equal(t, "Debugging Specialist", sub.BadgeEarned)
		assert.Contains(t, sub.Feedback, "Excellent work! You completed 'Debug Shopping Cart Code'")

		var results []model.QuestionResult
		require.NoError(t, json.Unmarshal([]byte(sub.Answer), &results))
		require.Len(t, results, 2)
		assert.True(t, results[0].IsCorrect)
		assert.True(t, results[1].IsCorrect)
	})

	t.Run("one wrong answer fails the whole submission", func(t *testing.T) {
		sub, err := env.submission.Submit(userID, "ds-analysis-1", "", []QuestionAnswer{
			{QuestionID: "q1", Answer: "Monthly_Charges"},
			{QuestionID: "q2", Answer: "no"},
			{QuestionID: "q3", Answer: "online_security"},
		})
		require.NoError(t, err)

		assert.False(t, sub.IsCorrect)
		assert.Empty(t, sub.BadgeEarned)
		assert.Contains(t, sub.Feedback, "month-to-month")

		var results []model.QuestionResult
		require.NoError(t, json.Unmarshal([]byte(sub.Answer), &results))
		require.Len(t, results, 3)
		assert.True(t, results[0].IsCorrect)
		assert.False(t, results[1].IsCorrect)
		assert.True(t, results[2].IsCorrect)
	})

	t.Run("missing question id marks the entry incorrect", func(t *testing.T) {
		sub, err := env.submission.Submit(userID, "se-testing-1", "", []QuestionAnswer{
			{QuestionID: "", Answer: "7"},
			{QuestionID: "q2", Answer: "division by zero"},
		})
		require.NoError(t, err)

		assert.False(t, sub.IsCorrect)

		var results []model.QuestionResult
		require.NoError(t, json.Unmarshal([]byte(sub.Answer), &results))
		require.Len(t, results, 2)
		assert.Equal(t, "Missing question_id", results[0].Feedback)
		assert.True(t, results[1].IsCorrect)
	})

	t.Run("unknown question id is incorrect without feedback", func(t *testing.T) {
		sub, err := env.submission.Submit(userID, "se-testing-1", "", []QuestionAnswer{
			{QuestionID: "q9", Answer: "7"},
		})
		require.NoError(t, err)

		assert.False(t, sub.IsCorrect)
	})

	t.Run("questions without custom feedback get the generic fallback", func(t *testing.T) {
		sub, err := env.submission.Submit(userID, "se-development-1", "", []QuestionAnswer{
			{QuestionID: "q1", Answer: "404"},
		})
		require.NoError(t, err)

		assert.False(t, sub.IsCorrect)
		assert.Equal(t, incompleteFeedback, sub.Feedback)
	})
}

func TestSubmissionHistory(t *testing.T) {
	env := seededEnv(t)
	userID := env.registerUser(t, "history@example.com")

	t.Run("empty history is an empty list", func(t *testing.T) {
		subs, err := env.submission.History(userID)
		require.NoError(t, err)
		assert.NotNil(t, subs)
		assert.Empty(t, subs)
	})

	t.Run("newest first", func(t *testing.T) {
		_, err := env.submission.Submit(userID, "se-debugging-1", "5", nil)
		require.NoError(t, err)
		_, err = env.submission.Submit(userID, "cloud-aws-1", "3", nil)
		require.NoError(t, err)

		subs, err := env.submission.History(userID)
		require.NoError(t, err)
		require.Len(t, subs, 2)
		assert.Equal(t, "cloud-aws-1", subs[0].SimulationID)
		assert.Equal(t, "se-debugging-1", subs[1].SimulationID)
	})

	t.Run("scoped to the user", func(t *testing.T) {
		otherID := env.registerUser(t, "other@example.com")
		subs, err := env.submission.History(otherID)
		require.NoError(t, err)
		assert.Empty(t, subs)
	})
}

func TestBadgeIdempotencyAcrossPaths(t *testing.T) {
	env := seededEnv(t)
	userID := env.registerUser(t, "both@example.com")

	sub, err := env.submission.Submit(userID, "se-testing-1", "7", nil)
	require.NoError(t, err)
	assert.Equal(t, "Quality Assurance Professional", sub.BadgeEarned)

	sub, err = env.submission.Submit(userID, "se-testing-1", "", []QuestionAnswer{
		{QuestionID: "q1", Answer: "7"},
		{QuestionID: "q2", Answer: "division by zero"},
	})
	require.NoError(t, err)
	assert.True(t, sub.IsCorrect)
	assert.Empty(t, sub.BadgeEarned)

	badges, err := env.userRepo.ListBadges(userID)
	require.NoError(t, err)
	assert.Len(t, badges, 1)
}
