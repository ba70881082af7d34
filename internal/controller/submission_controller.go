package controller

import (
	"errors"
	"fmt"
	"strings"

	"pathfinder_backend/internal/service"
	"pathfinder_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	submissionService *service.SubmissionService
}

func NewSubmissionController(submissionService *service.SubmissionService) *SubmissionController {
	return &SubmissionController{submissionService: submissionService}
}

// Submit godoc
// @Summary Submit answers for grading
// @Description Grades a single answer or a list of per-question answers and records the submission
// @Tags submissions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body object true "Submission payload: simulation_id plus answer or answers"
// @Success 200 {object} util.Response{data=model.Submission}
// @Failure 404 {object} util.Response
// @Failure 422 {object} util.Response
// @Router /simulations/submit [post]
func (ctl *SubmissionController) Submit(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	// Clients have shipped several payload shapes; bind loosely and pick the
	// fields out by hand instead of rejecting older ones.
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		util.UnprocessableEntity(c, "Invalid JSON body")
		return
	}

	simulationID := strings.TrimSpace(asString(payload["simulation_id"]))
	if simulationID == "" {
		simulationID = strings.TrimSpace(asString(payload["id"]))
	}
	if simulationID == "" {
		util.UnprocessableEntity(c, "simulation_id is required")
		return
	}

	answer := asString(payload["answer"])
	answers := parseAnswers(payload["answers"])

	submission, err := ctl.submissionService.Submit(claims.Subject, simulationID, answer, answers)
	if err != nil {
		if errors.Is(err, util.ErrSimulationNotFound) {
			util.NotFound(c, "Simulation not found")
			return
		}
		util.LogInternalError(c, err)
		return
	}

	util.Success(c, submission)
}

// History godoc
// @Summary List the user's past submissions
// @Description Returns every recorded submission for the authenticated user, newest first
// @Tags submissions
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Submission}
// @Failure 401 {object} util.Response
// @Router /submissions [get]
func (ctl *SubmissionController) History(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	subs, err := ctl.submissionService.History(claims.Subject)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}

	util.Success(c, subs)
}

func parseAnswers(v interface{}) []service.QuestionAnswer {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	answers := make([]service.QuestionAnswer, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		qid := asString(entry["question_id"])
		if qid == "" {
			qid = asString(entry["id"])
		}
		answers = append(answers, service.QuestionAnswer{
			QuestionID: qid,
			Answer:     asString(entry["answer"]),
		})
	}
	return answers
}

// asString renders any JSON scalar the way a user typed it, so numeric
// answers sent as JSON numbers still grade.
func asString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
