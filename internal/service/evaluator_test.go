package service

import (
	"testing"

	"pathfinder_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateAnswer_Numeric(t *testing.T) {
	rule := model.GradingRule{}

	t.Run("exact integer", func(t *testing.T) {
		assert.True(t, EvaluateAnswer(model.AnswerNumber, "5", "5", rule))
		assert.False(t, EvaluateAnswer(model.AnswerNumber, "5", "6", rule))
	})

	t.Run("whitespace and sign formats", func(t *testing.T) {
		assert.True(t, EvaluateAnswer(model.AnswerNumber, "200", " 200 ", rule))
		assert.True(t, EvaluateAnswer(model.AnswerNumber, "5", "5.0", rule))
	})

	t.Run("percentage accepts with or without percent sign", func(t *testing.T) {
		assert.True(t, EvaluateAnswer(model.AnswerPercentage, "85%", "85", rule))
		assert.True(t, EvaluateAnswer(model.AnswerPercentage, "85%", "85%", rule))
		assert.True(t, EvaluateAnswer(model.AnswerPercentage, "85%", "85.0%", rule))
	})

	t.Run("tolerance absorbs rounding", func(t *testing.T) {
		assert.True(t, EvaluateAnswer(model.AnswerPercentage, "85%", "84.995", rule))
		assert.False(t, EvaluateAnswer(model.AnswerPercentage, "85%", "84.98", rule))
		assert.False(t, EvaluateAnswer(model.AnswerPercentage, "85%", "80%", rule))
	})

	t.Run("unparsable submission is incorrect", func(t *testing.T) {
		assert.False(t, EvaluateAnswer(model.AnswerNumber, "5", "five-ish", rule))
		assert.False(t, EvaluateAnswer(model.AnswerNumber, "5", "", rule))
	})

	t.Run("unparsable on both sides falls back to string equality", func(t *testing.T) {
		assert.True(t, EvaluateAnswer(model.AnswerNumber, "N/A", "n/a", rule))
	})
}

func TestEvaluateAnswer_Text(t *testing.T) {
	t.Run("case and whitespace insensitive", func(t *testing.T) {
		assert.True(t, EvaluateAnswer(model.AnswerText, "md5", " MD5 ", model.GradingRule{}))
	})

	t.Run("underscores equal spaces", func(t *testing.T) {
		assert.True(t, EvaluateAnswer(model.AnswerText, "slow_loading", "slow loading", model.GradingRule{}))
		assert.True(t, EvaluateAnswer(model.AnswerText, "online_security", "Online_Security", model.GradingRule{}))
	})

	t.Run("exact mode rejects supersets", func(t *testing.T) {
		assert.False(t, EvaluateAnswer(model.AnswerText, "md5", "it is md5", model.GradingRule{}))
	})

	t.Run("contains mode accepts phrasing around the answer", func(t *testing.T) {
		rule := model.GradingRule{
			MatchMode:       model.MatchContains,
			AcceptedAnswers: model.StringList{"default credentials", "weak password"},
		}
		assert.True(t, EvaluateAnswer(model.AnswerText, "default_credentials", "the router still has default credentials", rule))
		assert.True(t, EvaluateAnswer(model.AnswerText, "default_credentials", "weak_password", rule))
		assert.False(t, EvaluateAnswer(model.AnswerText, "default_credentials", "open ports", rule))
	})

	t.Run("accepted alternates in exact mode", func(t *testing.T) {
		rule := model.GradingRule{AcceptedAnswers: model.StringList{"monthly charges", "monthlycharges"}}
		assert.True(t, EvaluateAnswer(model.AnswerText, "Monthly_Charges", "monthlycharges", rule))
		assert.False(t, EvaluateAnswer(model.AnswerText, "Monthly_Charges", "tenure", rule))
	})

	t.Run("empty submission never matches", func(t *testing.T) {
		rule := model.GradingRule{MatchMode: model.MatchContains, AcceptedAnswers: model.StringList{"md5"}}
		assert.False(t, EvaluateAnswer(model.AnswerText, "md5", "", rule))
	})

	t.Run("code and boolean grade as text", func(t *testing.T) {
		assert.True(t, EvaluateAnswer(model.AnswerCode, "alpine", "Alpine", model.GradingRule{}))
		assert.True(t, EvaluateAnswer(model.AnswerBoolean, "no", "NO", model.GradingRule{}))
	})
}

func TestEvaluateAnswer_List(t *testing.T) {
	passwords := model.GradingRule{
		AcceptedAnswers: model.StringList{"password123", "admin", "letmein"},
		MinListMatches:  2,
	}

	t.Run("minimum match count satisfied", func(t *testing.T) {
		assert.True(t, EvaluateAnswer(model.AnswerList, "password123,admin,letmein", "admin, letmein", passwords))
		assert.True(t, EvaluateAnswer(model.AnswerList, "password123,admin,letmein", "password123,admin,letmein", passwords))
	})

	t.Run("one match is not enough", func(t *testing.T) {
		assert.False(t, EvaluateAnswer(model.AnswerList, "password123,admin,letmein", "admin", passwords))
		assert.False(t, EvaluateAnswer(model.AnswerList, "password123,admin,letmein", "qwerty, 123456", passwords))
	})

	t.Run("elements must match exactly, not as substrings", func(t *testing.T) {
		assert.False(t, EvaluateAnswer(model.AnswerList, "password123,admin,letmein", "badminton, letmein2", passwords))
		assert.False(t, EvaluateAnswer(model.AnswerList, "password123,admin,letmein", "my password123 guess, administrator", passwords))
	})

	t.Run("alternate separators", func(t *testing.T) {
		assert.True(t, EvaluateAnswer(model.AnswerList, "password123,admin,letmein", "admin; letmein", passwords))
		assert.True(t, EvaluateAnswer(model.AnswerList, "password123,admin,letmein", "admin\nletmein", passwords))
	})

	t.Run("all elements required when no minimum is set", func(t *testing.T) {
		rule := model.GradingRule{}
		assert.True(t, EvaluateAnswer(model.AnswerList, "a,b,c", "a, b, c", rule))
		assert.False(t, EvaluateAnswer(model.AnswerList, "a,b,c", "a, b", rule))
	})

	t.Run("empty submission is incorrect", func(t *testing.T) {
		assert.False(t, EvaluateAnswer(model.AnswerList, "a,b", "", model.GradingRule{}))
	})
}
