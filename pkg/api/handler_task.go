package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/forgeproject/forge/pkg/container"
	"github.com/forgeproject/forge/pkg/events"
	"github.com/forgeproject/forge/pkg/queue"
	"github.com/forgeproject/forge/pkg/store"
)

// createTaskRequest is the POST /api/tasks body.
type createTaskRequest struct {
	Description string `json:"description" binding:"required"`
	Mode        string `json:"mode"`
	TemplateID  string `json:"template_id"`
	ProjectID   string `json:"project_id"`
	RequestID   string `json:"request_id"`
	UserID      string `json:"user_id"`
}

// taskResponse is the JSON projection of a task row.
type taskResponse struct {
	ID               string          `json:"id"`
	Description      string          `json:"description"`
	Status           string          `json:"status"`
	Progress         float64         `json:"progress"`
	CurrentStage     string          `json:"current_stage,omitempty"`
	Mode             string          `json:"mode,omitempty"`
	TemplateID       string          `json:"template_id,omitempty"`
	ProjectID        string          `json:"project_id,omitempty"`
	FailureReason    string          `json:"failure_reason,omitempty"`
	PendingQuestions json.RawMessage `json:"pending_questions,omitempty"`
	ResumeFromStage  string          `json:"resume_from_stage,omitempty"`
	Result           json.RawMessage `json:"result,omitempty"`
	CreatedAt        string          `json:"created_at"`
	CompletedAt      string          `json:"completed_at,omitempty"`
}

func toTaskResponse(t *store.Task) taskResponse {
	r := taskResponse{
		ID:               t.ID,
		Description:      t.Description,
		Status:           string(t.Status),
		Progress:         t.Progress,
		CurrentStage:     t.CurrentStage,
		Mode:             t.Mode,
		TemplateID:       t.TemplateID,
		ProjectID:        t.ProjectID,
		FailureReason:    t.FailureReason,
		PendingQuestions: t.PendingQuestions,
		ResumeFromStage:  t.ResumeFromStage,
		Result:           t.Result,
		CreatedAt:        t.CreatedAt.UTC().Format(time.RFC3339),
	}
	if t.CompletedAt != nil {
		r.CompletedAt = t.CompletedAt.UTC().Format(time.RFC3339)
	}
	return r
}

// createTaskHandler handles POST /api/tasks. Retried requests carrying
// the same request_id return the original task instead of a duplicate.
func (s *Server) createTaskHandler(c *gin.Context) {
	if !s.checkRate(c, queue.ScopeCreateTask) {
		return
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: %v", err)
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		badRequest(c, "description must not be empty")
		return
	}
	if req.Mode != "" {
		if _, err := s.codex.Plan(req.Mode); err != nil {
			badRequest(c, "unknown mode %q", req.Mode)
			return
		}
	}
	if req.TemplateID != "" {
		if _, ok := s.templates.Get(req.TemplateID); !ok {
			badRequest(c, "unknown template %q", req.TemplateID)
			return
		}
	}

	ctx := c.Request.Context()
	if req.RequestID != "" {
		if existing, err := s.store.FindTaskByRequestID(ctx, owner(c), req.RequestID); err == nil {
			c.JSON(http.StatusOK, toTaskResponse(existing))
			return
		}
	}

	task := &store.Task{
		ID:           uuid.New().String(),
		OwnerKeyHash: owner(c),
		OwnerUserID:  req.UserID,
		Description:  req.Description,
		Status:       store.StatusQueued,
		Mode:         req.Mode,
		TemplateID:   req.TemplateID,
		ProjectID:    req.ProjectID,
		RequestID:    req.RequestID,
	}
	if err := s.store.CreateTask(ctx, task); err != nil {
		internalError(c, err)
		return
	}

	if s.governor != nil {
		if err := s.governor.Enqueue(ctx, task.ID); err != nil {
			if errors.Is(err, queue.ErrQueueFull) {
				task.Status = store.StatusError
				task.FailureReason = "queue_full"
				_ = s.store.UpdateTask(ctx, task)
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "task queue is full"})
				return
			}
			internalError(c, err)
			return
		}
	}

	s.pub.PublishQuiet(ctx, task.ID, events.TypeTaskCreated, events.TaskCreatedPayload{
		Description: task.Description,
		Mode:        task.Mode,
		TemplateID:  task.TemplateID,
		ProjectID:   task.ProjectID,
	})

	c.JSON(http.StatusAccepted, toTaskResponse(task))
}

// getTaskHandler handles GET /api/tasks/:id.
func (s *Server) getTaskHandler(c *gin.Context) {
	t, ok := s.taskForOwner(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(t))
}

// listTaskEventsHandler handles GET /api/tasks/:id/events?after_seq=N.
func (s *Server) listTaskEventsHandler(c *gin.Context) {
	t, ok := s.taskForOwner(c)
	if !ok {
		return
	}
	var afterSeq int64
	if v := c.Query("after_seq"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			badRequest(c, "after_seq must be a non-negative integer")
			return
		}
		afterSeq = n
	}

	envelopes, err := s.pub.Replay(c.Request.Context(), t.ID, afterSeq)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task_id": t.ID, "events": envelopes})
}

// listQuestionsHandler handles GET /api/tasks/:id/questions.
func (s *Server) listQuestionsHandler(c *gin.Context) {
	t, ok := s.taskForOwner(c)
	if !ok {
		return
	}
	questions := json.RawMessage("[]")
	if len(t.PendingQuestions) > 0 {
		questions = t.PendingQuestions
	}
	c.JSON(http.StatusOK, gin.H{
		"task_id":           t.ID,
		"status":            t.Status,
		"questions":         questions,
		"resume_from_stage": t.ResumeFromStage,
	})
}

// provideInputRequest is the POST /api/tasks/:id/input body. AutoResume
// defaults to true; false records the answers but leaves the task paused
// until an explicit resume.
type provideInputRequest struct {
	Answers    map[string]string `json:"answers" binding:"required"`
	AutoResume *bool             `json:"auto_resume"`
}

// missingRequiredAnswers returns the IDs of required questions that have
// no non-blank answer.
func missingRequiredAnswers(questions []container.ClarificationQuestion, answers map[string]string) []string {
	var missing []string
	for _, q := range questions {
		if !q.Required {
			continue
		}
		if strings.TrimSpace(answers[q.ID]) == "" {
			missing = append(missing, q.ID)
		}
	}
	return missing
}

// provideInputHandler handles POST /api/tasks/:id/input: answers the
// pending questions and re-enqueues the task.
func (s *Server) provideInputHandler(c *gin.Context) {
	t, ok := s.taskForOwner(c)
	if !ok {
		return
	}
	if t.Status != store.StatusNeedsInput {
		conflict(c, "task is not waiting for input")
		return
	}

	var req provideInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: %v", err)
		return
	}

	var questions []container.ClarificationQuestion
	if len(t.PendingQuestions) > 0 {
		if err := json.Unmarshal(t.PendingQuestions, &questions); err != nil {
			internalError(c, err)
			return
		}
	}

	answered := make([]string, 0, len(req.Answers))
	for _, q := range questions {
		answer, got := req.Answers[q.ID]
		if !got || strings.TrimSpace(answer) == "" {
			continue
		}
		if q.Type == "choice" && len(q.Choices) > 0 && !containsString(q.Choices, answer) {
			badRequest(c, "answer for %q must be one of: %s", q.ID, strings.Join(q.Choices, ", "))
			return
		}
		answered = append(answered, q.ID)
	}
	if missing := missingRequiredAnswers(questions, req.Answers); len(missing) > 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":   "missing_answers",
			"missing": missing,
		})
		return
	}

	raw, err := json.Marshal(req.Answers)
	if err != nil {
		internalError(c, err)
		return
	}

	autoResume := req.AutoResume == nil || *req.AutoResume

	ctx := c.Request.Context()
	t.ProvidedAnswers = raw
	if autoResume {
		t.Status = store.StatusQueued
	}
	if err := s.store.UpdateTask(ctx, t); err != nil {
		internalError(c, err)
		return
	}

	s.pub.PublishQuiet(ctx, t.ID, events.TypeClarificationReceived, events.ClarificationReceivedPayload{
		Answered:   answered,
		AutoResume: autoResume,
	})

	status := http.StatusOK
	if autoResume {
		status = http.StatusAccepted
		if s.governor != nil {
			s.governor.Wake()
		}
	}
	c.JSON(status, gin.H{
		"task_id":     t.ID,
		"status":      t.Status,
		"auto_resume": autoResume,
	})
}

// resumeTaskHandler handles POST /api/tasks/:id/resume: re-enqueues a
// paused or failed task.
func (s *Server) resumeTaskHandler(c *gin.Context) {
	t, ok := s.taskForOwner(c)
	if !ok {
		return
	}
	switch t.Status {
	case store.StatusNeedsInput, store.StatusFailed, store.StatusError:
	case store.StatusQueued, store.StatusProcessing:
		conflict(c, "task is already running")
		return
	default:
		conflict(c, "task is already completed")
		return
	}

	// A paused task may only resume once every required question is
	// answered; answers arrive via the /input endpoint.
	if t.Status == store.StatusNeedsInput && len(t.PendingQuestions) > 0 {
		var questions []container.ClarificationQuestion
		if err := json.Unmarshal(t.PendingQuestions, &questions); err != nil {
			internalError(c, err)
			return
		}
		answers := map[string]string{}
		if len(t.ProvidedAnswers) > 0 {
			if err := json.Unmarshal(t.ProvidedAnswers, &answers); err != nil {
				internalError(c, err)
				return
			}
		}
		if missing := missingRequiredAnswers(questions, answers); len(missing) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":   "missing_answers",
				"missing": missing,
			})
			return
		}
	}

	ctx := c.Request.Context()
	t.Status = store.StatusQueued
	t.FailureReason = ""
	if err := s.store.UpdateTask(ctx, t); err != nil {
		internalError(c, err)
		return
	}
	if s.governor != nil {
		s.governor.Wake()
	}

	c.JSON(http.StatusAccepted, gin.H{"task_id": t.ID, "status": t.Status})
}

// rerunReviewHandler handles POST /api/tasks/:id/rerun-review: runs the
// review stage again over the persisted container.
func (s *Server) rerunReviewHandler(c *gin.Context) {
	if !s.checkRate(c, queue.ScopeRerunReview) {
		return
	}
	t, ok := s.taskForOwner(c)
	if !ok {
		return
	}
	if t.Status != store.StatusCompleted && t.Status != store.StatusError {
		conflict(c, "task has no finished run to re-review")
		return
	}

	ctx := c.Request.Context()
	if _, err := s.store.LoadSnapshot(ctx, t.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			conflict(c, "task has no persisted state to re-review")
			return
		}
		internalError(c, err)
		return
	}

	t.Status = store.StatusQueued
	t.ResumeFromStage = "review"
	t.FailureReason = ""
	if err := s.store.UpdateTask(ctx, t); err != nil {
		internalError(c, err)
		return
	}
	if s.governor != nil {
		s.governor.Wake()
	}

	c.JSON(http.StatusAccepted, gin.H{"task_id": t.ID, "status": t.Status, "resume_from_stage": "review"})
}

// listUserTasksHandler handles GET /api/users/:user_id/tasks, scoped to
// the caller's own tasks.
func (s *Server) listUserTasksHandler(c *gin.Context) {
	userID := c.Param("user_id")

	filter := store.TaskFilter{OwnerKeyHash: owner(c)}
	if v := c.Query("status"); v != "" {
		filter.Status = store.TaskStatus(v)
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Limit = n
		}
	}

	tasks, err := s.store.ListTasks(c.Request.Context(), filter)
	if err != nil {
		internalError(c, err)
		return
	}

	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		if userID != "" && t.OwnerUserID != userID {
			continue
		}
		out = append(out, toTaskResponse(t))
	}
	c.JSON(http.StatusOK, gin.H{"user_id": userID, "tasks": out})
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
