package service

import (
	"strconv"
	"strings"

	"pathfinder_backend/internal/model"
)

// numericTolerance absorbs rounding differences between the generated data
// files and a hand-computed answer (e.g. 85 vs 84.998).
const numericTolerance = 0.01

// EvaluateAnswer grades one submitted answer against its catalog record.
// The answer type selects the comparison family; the grading rule supplies
// alternates and list leniency.
func EvaluateAnswer(answerType model.AnswerType, correct, submitted string, rule model.GradingRule) bool {
	switch answerType {
	case model.AnswerNumber, model.AnswerPercentage:
		return evaluateNumeric(correct, submitted)
	case model.AnswerList:
		return evaluateList(correct, submitted, rule)
	default:
		// text, code, boolean and anything unrecognized grade as text
		return evaluateText(correct, submitted, rule)
	}
}

func normalizeNumeric(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "%", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

func evaluateNumeric(correct, submitted string) bool {
	c := normalizeNumeric(correct)
	s := normalizeNumeric(submitted)
	if c == s {
		return true
	}
	cv, cerr := strconv.ParseFloat(c, 64)
	sv, serr := strconv.ParseFloat(s, 64)
	if cerr != nil || serr != nil {
		return false
	}
	diff := cv - sv
	if diff < 0 {
		diff = -diff
	}
	return diff < numericTolerance
}

// normalizeText lowercases, trims and treats underscores as spaces so that
// "default_credentials" and "default credentials" grade the same.
func normalizeText(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "_", " ")
}

func acceptedSet(correct string, rule model.GradingRule) []string {
	if len(rule.AcceptedAnswers) > 0 {
		out := make([]string, 0, len(rule.AcceptedAnswers))
		for _, a := range rule.AcceptedAnswers {
			out = append(out, normalizeText(a))
		}
		return out
	}
	return []string{normalizeText(correct)}
}

func evaluateText(correct, submitted string, rule model.GradingRule) bool {
	sub := normalizeText(submitted)
	if sub == "" {
		return false
	}
	for _, want := range acceptedSet(correct, rule) {
		if want == "" {
			continue
		}
		if rule.MatchMode == model.MatchContains {
			if strings.Contains(sub, want) {
				return true
			}
		} else if sub == want {
			return true
		}
	}
	return false
}

// evaluateList checks how many expected elements appear in the submission.
// The submission is split on commas, semicolons and newlines; each fragment
// is normalized and must equal an expected element, so near-misses like
// "badminton" never stand in for "admin". MinListMatches relaxes the default
// all-elements requirement.
func evaluateList(correct, submitted string, rule model.GradingRule) bool {
	expected := rule.AcceptedAnswers
	if len(expected) == 0 {
		expected = strings.Split(correct, ",")
	}

	fragments := strings.FieldsFunc(submitted, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	normalized := make([]string, 0, len(fragments))
	for _, f := range fragments {
		normalized = append(normalized, normalizeText(f))
	}

	matches := 0
	for _, e := range expected {
		want := normalizeText(e)
		if want == "" {
			continue
		}
		for _, got := range normalized {
			if got == want {
				matches++
				break
			}
		}
	}

	required := rule.MinListMatches
	if required <= 0 {
		required = 0
		for _, e := range expected {
			if normalizeText(e) != "" {
				required++
			}
		}
	}
	if required == 0 {
		return false
	}
	return matches >= required
}
