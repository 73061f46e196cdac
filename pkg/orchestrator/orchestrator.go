// Package orchestrator drives one task through its stages: it loads or
// creates the Container, materializes the workspace, sequences the
// roles under the codex plan, enforces iteration and budget ceilings,
// and persists state at every stage boundary.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/forgeproject/forge/pkg/config"
	"github.com/forgeproject/forge/pkg/container"
	"github.com/forgeproject/forge/pkg/contract"
	"github.com/forgeproject/forge/pkg/events"
	"github.com/forgeproject/forge/pkg/llm"
	"github.com/forgeproject/forge/pkg/patch"
	"github.com/forgeproject/forge/pkg/roles"
	"github.com/forgeproject/forge/pkg/sandbox"
	"github.com/forgeproject/forge/pkg/store"
	"github.com/forgeproject/forge/pkg/workspace"
)

// Manual gate question ID and its accepted answers.
const (
	ManualStepQuestionID = "manual_step"

	ManualContinue = "continue"
	ManualStop     = "stop"
	ManualRetry    = "retry"
)

// Outcome is the terminal result of one RunTask invocation.
type Outcome struct {
	Status          store.TaskStatus
	Questions       []container.ClarificationQuestion
	ResumeFromStage string
	FailureReason   string
	Result          json.RawMessage
}

// Orchestrator runs tasks. One instance serves the whole process; each
// RunTask call is independent.
type Orchestrator struct {
	store     store.Store
	pub       *events.Publisher
	gateway   *llm.Gateway
	codex     *config.Codex
	codexHash string
	templates *config.TemplateCatalog
	quota     QuotaGuard
	hooks     *Hooks

	llmCfg        config.LLMConfig
	sandboxCfg    config.SandboxConfig
	workspaceRoot string
	microMaxIter  int
	manualStep    bool
	persistFiles  bool
	toolVersions  map[string]string
}

// New wires an orchestrator. quota may be nil for unlimited owners.
func New(st store.Store, pub *events.Publisher, gateway *llm.Gateway,
	codex *config.Codex, codexHash string, templates *config.TemplateCatalog,
	cfg config.Config, quota QuotaGuard) *Orchestrator {
	return &Orchestrator{
		store:         st,
		pub:           pub,
		gateway:       gateway,
		codex:         codex,
		codexHash:     codexHash,
		templates:     templates,
		quota:         quota,
		hooks:         NewHooks(),
		llmCfg:        cfg.LLM,
		sandboxCfg:    cfg.Sandbox,
		workspaceRoot: cfg.Workspace.Root,
		microMaxIter:  cfg.Orchestrator.MicroMaxIterations,
		manualStep:    cfg.Orchestrator.ManualStepEnabled,
		persistFiles:  cfg.EnableFilePersistence,
		toolVersions:  map[string]string{"provider": gateway.Provider(), "model": cfg.LLM.Model},
	}
}

// Hooks returns the observer registry.
func (o *Orchestrator) Hooks() *Hooks { return o.hooks }

// run bundles everything one task execution needs.
type run struct {
	task    *store.Task
	c       *container.Container
	ws      *workspace.Workspace
	mode    contract.Mode
	plan    config.ModePlan
	maxIter int
	answers map[string]string

	mllm     *meteredLLM
	runner   *meteredRunner
	reviewer *roles.Reviewer
	template *config.Template
}

// RunTask executes one claimed task to a terminal outcome. The caller
// (the governor's worker) has already flipped the row to processing.
func (o *Orchestrator) RunTask(ctx context.Context, taskID string) (*Outcome, error) {
	task, err := o.store.GetTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("loading task %s: %w", taskID, err)
	}
	log := slog.With("task_id", taskID)

	r, err := o.prepare(ctx, task)
	if err != nil {
		log.Error("Task preparation failed", "error", err)
		return o.terminate(ctx, nil, task, "prepare", err)
	}
	defer func() {
		if _, err := r.ws.SyncToContainer(r.c); err != nil {
			log.Warn("Final workspace sync failed", "error", err)
		}
	}()

	// The pause that produced this resume is consumed; clear it so a
	// crash mid-run does not replay stale questions.
	if task.ResumeFromStage != "" {
		if err := o.updateTask(ctx, task.ID, func(t *store.Task) {
			t.PendingQuestions = nil
			t.ResumeFromStage = ""
		}); err != nil {
			return nil, err
		}
	}

	stages := o.stagesFor(r)
	log.Info("Task starting", "mode", r.mode, "stages", stages, "max_iterations", r.maxIter)

	for _, stage := range stages {
		outcome, err := o.runStage(ctx, r, stage)
		if err != nil {
			return o.terminate(ctx, r, task, stage, err)
		}
		if outcome != nil {
			return outcome, nil
		}
		if err := o.saveState(ctx, task.ID, r.c); err != nil {
			return o.terminate(ctx, r, task, stage, err)
		}
	}

	return o.complete(ctx, r)
}

// prepare loads or creates the Container, binds the workspace, and
// builds the per-run role toolchain.
func (o *Orchestrator) prepare(ctx context.Context, task *store.Task) (*run, error) {
	mode := contract.Mode(task.Mode)
	if mode == "" {
		mode = ClassifyMode(task.Description, task.TemplateID)
		task.Mode = string(mode)
		if err := o.store.UpdateTask(ctx, task); err != nil {
			return nil, err
		}
	}

	plan, err := o.codex.Plan(string(mode))
	if err != nil {
		return nil, err
	}
	maxIter := plan.MaxIterations
	if mode == contract.ModeMicroFile && o.microMaxIter > 0 {
		maxIter = o.microMaxIter
	}

	var tmpl *config.Template
	if task.TemplateID != "" {
		t, ok := o.templates.Get(task.TemplateID)
		if !ok {
			return nil, fmt.Errorf("unknown template %q", task.TemplateID)
		}
		tmpl = t
	}

	resuming := task.ResumeFromStage != ""
	var c *container.Container
	if resuming {
		c, err = o.loadContainer(ctx, task.ID)
		if err != nil {
			return nil, err
		}
		o.pub.PublishQuiet(ctx, task.ID, events.TypeTaskResumed,
			events.TaskResumedPayload{FromStage: task.ResumeFromStage})
	} else {
		c = container.New(task.ID)
		c.SetCurrentTask(task.Description)
		if tmpl != nil {
			for p, content := range tmpl.Files {
				if err := c.AddFileQuiet(p, content); err != nil {
					return nil, fmt.Errorf("template file %s: %w", p, err)
				}
			}
		}
		c.CaptureBaseline()
	}

	c.MutateMeta(func(m *container.Metadata) {
		m.MaxIterations = maxIter
		m.OwnerKeyHash = task.OwnerKeyHash
		m.CodexHash = o.codexHash
		m.RequestID = task.RequestID
		if tmpl != nil {
			m.TemplateID = tmpl.ID
			m.TemplateHash = tmpl.Hash
		}
	})

	ws, err := workspace.New(o.workspaceRoot, task.ID)
	if err != nil {
		return nil, err
	}
	if err := ws.Materialize(c); err != nil {
		return nil, err
	}
	c.SetFileSink(ws)
	c.MutateMeta(func(m *container.Metadata) { m.WorkspacePath = ws.Root() })

	sandboxRunner, err := sandbox.NewRunner(sandbox.Config{
		WorkspaceRoot:  o.workspaceRoot,
		Allowlist:      o.sandboxCfg.AllowedCommands,
		Timeout:        o.sandboxCfg.CommandTimeout,
		MaxOutputBytes: o.sandboxCfg.MaxOutputBytes,
	})
	if err != nil {
		return nil, err
	}
	sandboxRunner.SetNotifier(&eventNotifier{ctx: ctx, pub: o.pub, taskID: task.ID})
	runner := &meteredRunner{runner: sandboxRunner, quota: o.quota, owner: task.OwnerKeyHash}

	mllm := &meteredLLM{
		gateway:   o.gateway,
		c:         c,
		quota:     o.quota,
		pub:       o.pub,
		hooks:     o.hooks,
		taskID:    task.ID,
		owner:     task.OwnerKeyHash,
		maxCalls:  o.llmCfg.MaxCallsPerTask,
		maxTokens: o.llmCfg.MaxTotalTokensPerTask,
	}

	answers := map[string]string{}
	if len(task.ProvidedAnswers) > 0 {
		if err := json.Unmarshal(task.ProvidedAnswers, &answers); err != nil {
			return nil, fmt.Errorf("decoding provided answers: %w", err)
		}
	}

	return &run{
		task:     task,
		c:        c,
		ws:       ws,
		mode:     mode,
		plan:     plan,
		maxIter:  maxIter,
		answers:  answers,
		mllm:     mllm,
		runner:   runner,
		reviewer: roles.NewReviewer(runner, task.ID, tmpl),
		template: tmpl,
	}, nil
}

// stagesFor returns the stages still to run: resume jumps to the
// requested stage, and stages whose artifacts already exist are
// skipped.
func (o *Orchestrator) stagesFor(r *run) []string {
	stages := r.plan.Stages
	if from := r.task.ResumeFromStage; from != "" {
		for i, s := range stages {
			if s == from {
				stages = stages[i:]
				break
			}
		}
	}

	var out []string
	for _, s := range stages {
		switch s {
		case config.StageResearch:
			// Re-run research when resuming into it (it consumes the
			// user's answers); skip it otherwise once done.
			if r.task.ResumeFromStage != config.StageResearch {
				if _, done := r.c.LatestArtifact(container.KindRequirements); done {
					continue
				}
			}
		case config.StageDesign:
			if r.c.TargetArchitecture() != nil {
				continue
			}
		}
		out = append(out, s)
	}
	return out
}

// runStage executes one stage. A non-nil Outcome pauses the task
// (clarification or manual gate); a nil, nil return moves on.
func (o *Orchestrator) runStage(ctx context.Context, r *run, stage string) (*Outcome, error) {
	o.pub.PublishQuiet(ctx, r.task.ID, events.TypeStageStarted, events.StageStartedPayload{Stage: stage})
	if err := o.hooks.Fire(ctx, HookStageStarted, r.task.ID, stage); err != nil {
		return nil, err
	}

	switch stage {
	case config.StageResearch:
		return o.runResearch(ctx, r)
	case config.StageDesign:
		return nil, o.runDesign(ctx, r)
	case config.StageImplementation:
		return o.runImplementation(ctx, r)
	case config.StageReview:
		return nil, o.runFinalReview(ctx, r)
	default:
		return nil, fmt.Errorf("unknown stage %q", stage)
	}
}

func (o *Orchestrator) runResearch(ctx context.Context, r *run) (*Outcome, error) {
	r.c.UpdateState(container.StateResearch, r.task.Description)
	r.mllm.setStage(config.StageResearch, container.RoleResearcher)

	rules, err := o.codex.Role("researcher")
	if err != nil {
		return nil, err
	}
	researcher := roles.NewResearcher(r.mllm, rules, o.llmCfg)

	res, err := researcher.Execute(ctx, r.c, r.answers)
	if err != nil {
		return nil, err
	}

	if res.Questions != nil {
		return o.pause(ctx, r, config.StageResearch, res.Questions.Questions)
	}

	o.publishProgress(ctx, r, 0.1, config.StageResearch)
	return nil, o.hooks.Fire(ctx, HookResearchComplete, r.task.ID, res.Doc)
}

func (o *Orchestrator) runDesign(ctx context.Context, r *run) error {
	r.c.UpdateState(container.StateDesign, r.task.Description)
	r.mllm.setStage(config.StageDesign, container.RoleDesigner)

	rules, err := o.codex.Role("designer")
	if err != nil {
		return err
	}
	designer := roles.NewDesigner(r.mllm, rules, o.llmCfg)

	res, err := designer.Execute(ctx, r.c)
	if err != nil {
		return err
	}

	o.publishProgress(ctx, r, 0.25, config.StageDesign)
	return o.hooks.Fire(ctx, HookDesignComplete, r.task.ID, res.Doc)
}

// runImplementation is the central loop: pick a sub-task, run the
// coder, optionally review, repeat until done or the iteration budget
// is spent.
func (o *Orchestrator) runImplementation(ctx context.Context, r *run) (*Outcome, error) {
	r.c.UpdateState(container.StateImplementation, r.task.Description)

	rules, err := o.codex.Role("coder")
	if err != nil {
		return nil, err
	}
	coder := roles.NewCoder(r.mllm, rules, o.llmCfg, r.mode)

	// Consume an operator decision from a manual-step pause.
	switch r.answers[ManualStepQuestionID] {
	case ManualStop:
		delete(r.answers, ManualStepQuestionID)
		return nil, nil
	case ManualRetry:
		delete(r.answers, ManualStepQuestionID)
		r.c.MutateMeta(func(m *container.Metadata) {
			if m.Iterations > 0 {
				m.Iterations--
			}
		})
	case ManualContinue:
		delete(r.answers, ManualStepQuestionID)
	}

	correction := ""
	var lastTask *roles.SubTask
	for r.c.Meta().Iterations < r.maxIter && !r.c.IsComplete() {
		subTask := o.nextSubTask(r)
		if correction != "" && lastTask != nil {
			// A rejected review retries the same sub-task with the
			// feedback attached.
			subTask = lastTask
		}
		if subTask == nil {
			return nil, nil
		}
		lastTask = subTask

		r.c.MutateMeta(func(m *container.Metadata) { m.Iterations++ })
		iteration := r.c.Meta().Iterations
		r.c.SetCurrentTask(subTask.Description)
		o.pub.PublishQuiet(ctx, r.task.ID, events.TypeStageStarted,
			events.StageStartedPayload{Stage: config.StageImplementation, Iteration: iteration})

		r.mllm.setStage(config.StageImplementation, container.RoleCoder)
		coderRes, err := coder.Execute(ctx, r.c, *subTask, correction)
		if err != nil {
			return nil, err
		}
		if err := o.hooks.Fire(ctx, HookCoderFinished, r.task.ID, coderRes); err != nil {
			return nil, err
		}
		if _, err := r.ws.SyncToContainer(r.c); err != nil {
			return nil, err
		}

		if r.plan.RequireReview {
			report, err := o.review(ctx, r, false)
			if err != nil {
				return nil, err
			}
			if report.Passed {
				o.publishProgress(ctx, r, r.c.Progress()+1.0/float64(r.maxIter), config.StageImplementation)
				correction = ""
			} else {
				correction = reviewFeedback(report)
			}

			if o.manualStep {
				return o.pauseManual(ctx, r)
			}
		} else {
			o.publishProgress(ctx, r, r.c.Progress()+1.0/float64(r.maxIter), config.StageImplementation)
		}

		if err := o.saveState(ctx, r.task.ID, r.c); err != nil {
			return nil, err
		}
	}

	if o.nextSubTask(r) != nil {
		return nil, &BudgetError{Reason: ReasonMaxIterationsExhausted,
			Detail: fmt.Sprintf("%d iterations spent with work remaining", r.maxIter)}
	}
	return nil, nil
}

// nextSubTask asks the scheduler for work. Modes without an
// architecture get a single synthetic sub-task covering the whole
// description until the first file lands; micro tasks never go past it.
func (o *Orchestrator) nextSubTask(r *run) *roles.SubTask {
	if r.mode == contract.ModeMicroFile {
		if r.c.FileCount() == 0 {
			return &roles.SubTask{
				Type:        roles.TaskCreateFile,
				Description: r.task.Description,
			}
		}
		return nil
	}
	if t := roles.NextTask(r.c); t != nil {
		return t
	}
	if r.c.TargetArchitecture() == nil && r.c.FileCount() == 0 {
		return &roles.SubTask{
			Type:        roles.TaskCreateFile,
			Description: r.task.Description,
		}
	}
	return nil
}

// review runs the reviewer with full event and hook traffic.
func (o *Orchestrator) review(ctx context.Context, r *run, final bool) (*container.ReviewReport, error) {
	r.c.UpdateState(container.StateReview, r.c.CurrentTask())
	r.mllm.setStage(config.StageReview, container.RoleReviewer)

	o.pub.PublishQuiet(ctx, r.task.ID, events.TypeReviewStarted, nil)
	if err := o.hooks.Fire(ctx, HookReviewStarted, r.task.ID, nil); err != nil {
		return nil, err
	}

	report, err := r.reviewer.Execute(ctx, r.c, final)
	if err != nil {
		return nil, err
	}
	if be := r.runner.BudgetErr(); be != nil {
		return nil, be
	}

	payload := events.ReviewResultPayload{
		Status:   report.Status,
		Errors:   len(report.Issues),
		Warnings: len(report.Warnings),
		Final:    final,
	}
	o.pub.PublishQuiet(ctx, r.task.ID, events.TypeReviewFinished, nil)
	if err := o.hooks.Fire(ctx, HookReviewFinished, r.task.ID, report); err != nil {
		return nil, err
	}
	o.pub.PublishQuiet(ctx, r.task.ID, events.TypeReviewResult, payload)
	if err := o.hooks.Fire(ctx, HookReviewResult, r.task.ID, payload); err != nil {
		return nil, err
	}
	return report, nil
}

// runFinalReview gates completion: approved or approved_with_warnings
// passes, rejected terminates the task.
func (o *Orchestrator) runFinalReview(ctx context.Context, r *run) error {
	report, err := o.review(ctx, r, true)
	if err != nil {
		return err
	}
	// approved_with_warnings passes the final gate.
	if !report.Passed {
		return &BudgetError{Reason: ReasonFinalReviewFailed,
			Detail: fmt.Sprintf("%d errors", len(report.Issues))}
	}
	return nil
}

// pause persists pending questions and returns the needs_input outcome.
func (o *Orchestrator) pause(ctx context.Context, r *run, stage string, questions []container.ClarificationQuestion) (*Outcome, error) {
	raw, err := json.Marshal(questions)
	if err != nil {
		return nil, err
	}
	if err := o.updateTask(ctx, r.task.ID, func(t *store.Task) {
		t.Status = store.StatusNeedsInput
		t.PendingQuestions = raw
		t.ResumeFromStage = stage
	}); err != nil {
		return nil, err
	}
	if err := o.saveState(ctx, r.task.ID, r.c); err != nil {
		return nil, err
	}

	payload := events.ClarificationRequestedPayload{Questions: questions, ResumeFromStage: stage}
	o.pub.PublishQuiet(ctx, r.task.ID, events.TypeClarificationRequested, payload)
	if err := o.hooks.Fire(ctx, HookClarificationRequested, r.task.ID, payload); err != nil {
		return nil, err
	}

	return &Outcome{Status: store.StatusNeedsInput, Questions: questions, ResumeFromStage: stage}, nil
}

// pauseManual stops after an iteration's review for an operator
// decision: continue, stop, or retry.
func (o *Orchestrator) pauseManual(ctx context.Context, r *run) (*Outcome, error) {
	return o.pause(ctx, r, config.StageImplementation, []container.ClarificationQuestion{{
		ID:       ManualStepQuestionID,
		Text:     "Iteration finished. Continue, stop, or retry?",
		Type:     "choice",
		Choices:  []string{ManualContinue, ManualStop, ManualRetry},
		Required: true,
	}})
}

// complete finishes a successful run: patch artifacts, final state,
// result document, terminal event.
func (o *Orchestrator) complete(ctx context.Context, r *run) (*Outcome, error) {
	if err := patch.Attach(r.c, o.toolVersions); err != nil {
		return nil, fmt.Errorf("building patch artifacts: %w", err)
	}

	r.c.UpdateState(container.StateComplete, "")
	r.c.UpdateProgress(1.0)
	if err := o.saveState(ctx, r.task.ID, r.c); err != nil {
		return nil, err
	}

	result, err := buildResult(r.c)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := o.updateTask(ctx, r.task.ID, func(t *store.Task) {
		t.Status = store.StatusCompleted
		t.Progress = 1.0
		t.CurrentStage = ""
		t.Result = result
		t.CompletedAt = &now
	}); err != nil {
		return nil, err
	}

	o.pub.PublishQuiet(ctx, r.task.ID, events.TypeTaskCompleted, events.TaskCompletedPayload{Result: result})
	slog.Info("Task completed", "task_id", r.task.ID,
		"files", r.c.FileCount(), "iterations", r.c.Meta().Iterations)

	return &Outcome{Status: store.StatusCompleted, Result: result}, nil
}

// terminate ends a task on a terminal error: stage_failed event,
// failure reason on the row, progress forced to 1.0.
func (o *Orchestrator) terminate(ctx context.Context, r *run, task *store.Task, stage string, cause error) (*Outcome, error) {
	reason := failureReason(cause)
	status := store.StatusFailed
	if reason == ReasonFinalReviewFailed {
		status = store.StatusError
	}

	if r != nil {
		r.c.RecordStageFailure(stage, reason)
		r.c.UpdateState(container.StateError, "")
		r.c.UpdateProgress(1.0)
		if err := o.saveState(ctx, task.ID, r.c); err != nil {
			slog.Warn("Saving failed task state", "task_id", task.ID, "error", err)
		}
	}

	if err := o.updateTask(ctx, task.ID, func(t *store.Task) {
		t.Status = status
		t.Progress = 1.0
		t.FailureReason = reason
	}); err != nil {
		slog.Warn("Updating failed task row", "task_id", task.ID, "error", err)
	}

	payload := events.StageFailedPayload{Stage: stage, Reason: reason}
	o.pub.PublishQuiet(ctx, task.ID, events.TypeStageFailed, payload)
	_ = o.hooks.Fire(ctx, HookStageFailed, task.ID, payload)
	o.pub.PublishQuiet(ctx, task.ID, events.TypeTaskFailed, events.TaskFailedPayload{Reason: reason})

	slog.Warn("Task terminated", "task_id", task.ID, "stage", stage, "reason", reason, "error", cause)
	return &Outcome{Status: status, FailureReason: reason}, nil
}

func (o *Orchestrator) publishProgress(ctx context.Context, r *run, progress float64, stage string) {
	if progress > 1.0 {
		progress = 1.0
	}
	r.c.UpdateProgress(progress)
	o.pub.PublishQuiet(ctx, r.task.ID, events.TypeProgressUpdate,
		events.ProgressPayload{Progress: r.c.Progress(), Stage: stage})
	if err := o.updateTask(ctx, r.task.ID, func(t *store.Task) {
		t.Progress = r.c.Progress()
		t.CurrentStage = stage
	}); err != nil {
		slog.Warn("Updating task progress", "task_id", r.task.ID, "error", err)
	}
}

// failureReason maps a terminal error to the recorded reason string.
func failureReason(err error) string {
	var be *BudgetError
	if errors.As(err, &be) {
		return be.Reason
	}
	if errors.Is(err, roles.ErrUnparsableResponse) {
		return ReasonLLMInvalidJSON
	}
	if errors.Is(err, llm.ErrOutputTruncated) {
		return "output_truncated"
	}
	var provErr *llm.ProviderError
	if errors.As(err, &provErr) {
		return "llm_provider_error"
	}
	return "internal_error"
}

// reviewFeedback flattens a rejected report into the next iteration's
// correction prompt.
func reviewFeedback(report *container.ReviewReport) string {
	var b strings.Builder
	b.WriteString("The review rejected the previous iteration:\n")
	for _, issue := range report.Issues {
		if issue.Path != "" {
			fmt.Fprintf(&b, "- %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(&b, "- %s\n", issue.Message)
		}
	}
	return b.String()
}

// buildResult summarizes the finished task for the task row.
func buildResult(c *container.Container) (json.RawMessage, error) {
	type resultDoc struct {
		Files        int                   `json:"files"`
		Artifacts    int                   `json:"artifacts"`
		Iterations   int                   `json:"iterations"`
		ReviewStatus string                `json:"review_status,omitempty"`
		PatchStats   *container.PatchStats `json:"patch_stats,omitempty"`
		TotalTokens  int                   `json:"total_tokens"`
	}

	doc := resultDoc{
		Files:       c.FileCount(),
		Artifacts:   len(c.AllArtifacts()),
		Iterations:  c.Meta().Iterations,
		TotalTokens: c.Meta().LLMSummary.TotalTokens,
	}
	if a, ok := c.LatestArtifact(container.KindReviewReport); ok {
		if report, ok := a.Payload.(*container.ReviewReport); ok {
			doc.ReviewStatus = report.Status
		}
	}
	if a, ok := c.LatestArtifact(container.KindPatchDiff); ok {
		if diff, ok := a.Payload.(*container.PatchDiff); ok {
			stats := diff.Stats
			doc.PatchStats = &stats
		}
	}
	return json.Marshal(doc)
}
