// Package entstore is the PostgreSQL Store backed by the Ent client.
// Schema lives in ent/schema; migrations are applied by pkg/database at
// startup.
package entstore

import (
	"context"
	"crypto/sha256"
	stdsql "database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/forgeproject/forge/ent"
	"github.com/forgeproject/forge/ent/artifact"
	"github.com/forgeproject/forge/ent/containersnapshot"
	"github.com/forgeproject/forge/ent/event"
	"github.com/forgeproject/forge/ent/oauthaccount"
	"github.com/forgeproject/forge/ent/project"
	"github.com/forgeproject/forge/ent/ratelimitbucket"
	"github.com/forgeproject/forge/ent/task"
	"github.com/forgeproject/forge/ent/taskfile"
	"github.com/forgeproject/forge/ent/usagecounter"
	"github.com/forgeproject/forge/pkg/store"
)

// Store implements store.Store over Ent.
type Store struct {
	client *ent.Client
	db     *stdsql.DB
	caps   store.FileCaps
}

var _ store.Store = (*Store)(nil)

// New wraps an Ent client. db is kept for health pings.
func New(client *ent.Client, db *stdsql.DB, caps store.FileCaps) *Store {
	return &Store{client: client, db: db, caps: caps}
}

func toTask(row *ent.Task) *store.Task {
	return &store.Task{
		ID:               row.ID,
		OwnerKeyHash:     row.OwnerKeyHash,
		OwnerUserID:      row.OwnerUserID,
		Description:      row.Description,
		Status:           store.TaskStatus(row.Status),
		Progress:         row.Progress,
		CurrentStage:     row.CurrentStage,
		Mode:             row.Mode,
		TemplateID:       row.TemplateID,
		ProjectID:        row.ProjectID,
		RequestID:        row.RequestID,
		PendingQuestions: row.PendingQuestions,
		ProvidedAnswers:  row.ProvidedAnswers,
		ResumeFromStage:  row.ResumeFromStage,
		FailureReason:    row.FailureReason,
		WorkerID:         row.WorkerID,
		HeartbeatAt:      row.HeartbeatAt,
		Result:           row.Result,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
		CompletedAt:      row.CompletedAt,
	}
}

// CreateTask stores a new task row.
func (s *Store) CreateTask(ctx context.Context, t *store.Task) error {
	create := s.client.Task.Create().
		SetID(t.ID).
		SetOwnerKeyHash(t.OwnerKeyHash).
		SetOwnerUserID(t.OwnerUserID).
		SetDescription(t.Description).
		SetStatus(task.Status(t.Status)).
		SetProgress(t.Progress).
		SetCurrentStage(t.CurrentStage).
		SetMode(t.Mode).
		SetTemplateID(t.TemplateID).
		SetProjectID(t.ProjectID).
		SetRequestID(t.RequestID).
		SetResumeFromStage(t.ResumeFromStage).
		SetFailureReason(t.FailureReason)
	if t.PendingQuestions != nil {
		create.SetPendingQuestions(t.PendingQuestions)
	}
	if t.ProvidedAnswers != nil {
		create.SetProvidedAnswers(t.ProvidedAnswers)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("creating task: %w", err)
	}
	return nil
}

// GetTask returns one task row.
func (s *Store) GetTask(ctx context.Context, id string) (*store.Task, error) {
	row, err := s.client.Task.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting task: %w", err)
	}
	return toTask(row), nil
}

// FindTaskByRequestID returns the owner's task created with requestID.
func (s *Store) FindTaskByRequestID(ctx context.Context, ownerKeyHash, requestID string) (*store.Task, error) {
	if requestID == "" {
		return nil, store.ErrNotFound
	}
	row, err := s.client.Task.Query().
		Where(task.OwnerKeyHashEQ(ownerKeyHash), task.RequestIDEQ(requestID)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding task by request id: %w", err)
	}
	return toTask(row), nil
}

// ListTasks returns tasks matching the filter, newest first.
func (s *Store) ListTasks(ctx context.Context, f store.TaskFilter) ([]*store.Task, error) {
	q := s.client.Task.Query()
	if f.OwnerKeyHash != "" {
		q = q.Where(task.OwnerKeyHashEQ(f.OwnerKeyHash))
	}
	if f.Status != "" {
		q = q.Where(task.StatusEQ(task.Status(f.Status)))
	}
	if f.ProjectID != "" {
		q = q.Where(task.ProjectIDEQ(f.ProjectID))
	}
	q = q.Order(ent.Desc(task.FieldCreatedAt))
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	out := make([]*store.Task, 0, len(rows))
	for _, row := range rows {
		out = append(out, toTask(row))
	}
	return out, nil
}

// UpdateTask overwrites the mutable columns of a task row.
func (s *Store) UpdateTask(ctx context.Context, t *store.Task) error {
	update := s.client.Task.UpdateOneID(t.ID).
		SetStatus(task.Status(t.Status)).
		SetProgress(t.Progress).
		SetCurrentStage(t.CurrentStage).
		SetMode(t.Mode).
		SetResumeFromStage(t.ResumeFromStage).
		SetFailureReason(t.FailureReason).
		SetWorkerID(t.WorkerID)
	if t.PendingQuestions != nil {
		update.SetPendingQuestions(t.PendingQuestions)
	}
	if t.ProvidedAnswers != nil {
		update.SetProvidedAnswers(t.ProvidedAnswers)
	}
	if t.Result != nil {
		update.SetResult(t.Result)
	}
	if t.HeartbeatAt != nil {
		update.SetHeartbeatAt(*t.HeartbeatAt)
	} else {
		update.ClearHeartbeatAt()
	}
	if t.CompletedAt != nil {
		update.SetCompletedAt(*t.CompletedAt)
	}
	_, err := update.Save(ctx)
	if ent.IsNotFound(err) {
		return store.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return nil
}

// ClaimTask flips queued→processing with a conditional update so only
// one worker wins.
func (s *Store) ClaimTask(ctx context.Context, id, workerID string) (bool, error) {
	n, err := s.client.Task.Update().
		Where(task.IDEQ(id), task.StatusEQ(task.StatusQueued)).
		SetStatus(task.StatusProcessing).
		SetWorkerID(workerID).
		SetHeartbeatAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("claiming task: %w", err)
	}
	return n > 0, nil
}

// Heartbeat records liveness for a processing task.
func (s *Store) Heartbeat(ctx context.Context, id string, at time.Time) error {
	n, err := s.client.Task.Update().
		Where(task.IDEQ(id)).
		SetHeartbeatAt(at.UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("recording heartbeat: %w", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// RequeueProcessing flips every processing task back to queued.
func (s *Store) RequeueProcessing(ctx context.Context) (int, error) {
	n, err := s.client.Task.Update().
		Where(task.StatusEQ(task.StatusProcessing)).
		SetStatus(task.StatusQueued).
		SetWorkerID("").
		ClearHeartbeatAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("requeueing processing tasks: %w", err)
	}
	return n, nil
}

// RequeueOrphaned requeues processing tasks with heartbeats older than
// cutoff and returns their IDs.
func (s *Store) RequeueOrphaned(ctx context.Context, cutoff time.Time) ([]string, error) {
	ids, err := s.client.Task.Query().
		Where(
			task.StatusEQ(task.StatusProcessing),
			task.Or(
				task.HeartbeatAtLT(cutoff),
				task.HeartbeatAtIsNil(),
			),
		).
		Order(ent.Asc(task.FieldID)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("finding orphaned tasks: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	_, err = s.client.Task.Update().
		Where(task.IDIn(ids...), task.StatusEQ(task.StatusProcessing)).
		SetStatus(task.StatusQueued).
		SetWorkerID("").
		ClearHeartbeatAt().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("requeueing orphaned tasks: %w", err)
	}
	return ids, nil
}

// PurgeTasksBefore removes terminal tasks older than cutoff together
// with their dependent rows.
func (s *Store) PurgeTasksBefore(ctx context.Context, cutoff time.Time) (int, error) {
	ids, err := s.client.Task.Query().
		Where(
			task.StatusIn(task.StatusCompleted, task.StatusFailed, task.StatusError),
			task.UpdatedAtLT(cutoff),
		).
		IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("finding purgeable tasks: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("starting purge transaction: %w", err)
	}
	if _, err := tx.Event.Delete().Where(event.TaskIDIn(ids...)).Exec(ctx); err != nil {
		return 0, rollback(tx, fmt.Errorf("purging events: %w", err))
	}
	if _, err := tx.Artifact.Delete().Where(artifact.TaskIDIn(ids...)).Exec(ctx); err != nil {
		return 0, rollback(tx, fmt.Errorf("purging artifacts: %w", err))
	}
	if _, err := tx.ContainerSnapshot.Delete().Where(containersnapshot.TaskIDIn(ids...)).Exec(ctx); err != nil {
		return 0, rollback(tx, fmt.Errorf("purging snapshots: %w", err))
	}
	if _, err := tx.TaskFile.Delete().Where(taskfile.TaskIDIn(ids...)).Exec(ctx); err != nil {
		return 0, rollback(tx, fmt.Errorf("purging task files: %w", err))
	}
	n, err := tx.Task.Delete().Where(task.IDIn(ids...)).Exec(ctx)
	if err != nil {
		return 0, rollback(tx, fmt.Errorf("purging tasks: %w", err))
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing purge: %w", err)
	}
	return n, nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w (rollback failed: %v)", err, rerr)
	}
	return err
}

// AppendEvent appends one event; a replayed (task_id, event_id) pair is
// a no-op.
func (s *Store) AppendEvent(ctx context.Context, e *store.Event) error {
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	row, err := s.client.Event.Create().
		SetEventID(e.ID).
		SetTaskID(e.TaskID).
		SetType(e.Type).
		SetPayload(e.Payload).
		SetCreatedAt(createdAt).
		Save(ctx)
	if ent.IsConstraintError(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("appending event: %w", err)
	}
	e.Seq = int64(row.ID)
	return nil
}

// ListEvents returns events with Seq > afterSeq in append order.
func (s *Store) ListEvents(ctx context.Context, taskID string, afterSeq int64) ([]*store.Event, error) {
	rows, err := s.client.Event.Query().
		Where(event.TaskIDEQ(taskID), event.IDGT(int(afterSeq))).
		Order(ent.Asc(event.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	out := make([]*store.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, &store.Event{
			ID:        row.EventID,
			Seq:       int64(row.ID),
			TaskID:    row.TaskID,
			Type:      row.Type,
			Payload:   row.Payload,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

// SaveArtifact stores one artifact row; a replayed ID is a no-op.
func (s *Store) SaveArtifact(ctx context.Context, a *store.Artifact) error {
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	err := s.client.Artifact.Create().
		SetID(a.ID).
		SetTaskID(a.TaskID).
		SetKind(a.Kind).
		SetProducedBy(a.ProducedBy).
		SetPayload(a.Payload).
		SetCreatedAt(createdAt).
		OnConflictColumns(artifact.FieldID).
		Ignore().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("saving artifact: %w", err)
	}
	return nil
}

// ListArtifacts returns a task's artifacts in creation order.
func (s *Store) ListArtifacts(ctx context.Context, taskID string) ([]*store.Artifact, error) {
	rows, err := s.client.Artifact.Query().
		Where(artifact.TaskIDEQ(taskID)).
		Order(ent.Asc(artifact.FieldCreatedAt), ent.Asc(artifact.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing artifacts: %w", err)
	}
	out := make([]*store.Artifact, 0, len(rows))
	for _, row := range rows {
		out = append(out, &store.Artifact{
			ID:         row.ID,
			TaskID:     row.TaskID,
			Kind:       row.Kind,
			ProducedBy: row.ProducedBy,
			Payload:    row.Payload,
			CreatedAt:  row.CreatedAt,
		})
	}
	return out, nil
}

// SaveSnapshot upserts the container snapshot for a task.
func (s *Store) SaveSnapshot(ctx context.Context, taskID string, snapshot json.RawMessage) error {
	err := s.client.ContainerSnapshot.Create().
		SetTaskID(taskID).
		SetSnapshot(snapshot).
		OnConflictColumns(containersnapshot.FieldTaskID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot returns the last stored snapshot.
func (s *Store) LoadSnapshot(ctx context.Context, taskID string) (json.RawMessage, error) {
	row, err := s.client.ContainerSnapshot.Query().
		Where(containersnapshot.TaskIDEQ(taskID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	return row.Snapshot, nil
}

// SaveFiles replaces the task's file bodies in one transaction.
func (s *Store) SaveFiles(ctx context.Context, taskID string, files map[string][]byte) error {
	if err := s.caps.CheckFiles(files); err != nil {
		return err
	}
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting file transaction: %w", err)
	}
	if _, err := tx.TaskFile.Delete().Where(taskfile.TaskIDEQ(taskID)).Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("clearing task files: %w", err))
	}
	builders := make([]*ent.TaskFileCreate, 0, len(files))
	for path, content := range files {
		builders = append(builders, tx.TaskFile.Create().
			SetTaskID(taskID).
			SetPath(path).
			SetContent(content).
			SetSha256(hashHex(content)).
			SetSize(len(content)))
	}
	if len(builders) > 0 {
		if _, err := tx.TaskFile.CreateBulk(builders...).Save(ctx); err != nil {
			return rollback(tx, fmt.Errorf("saving task files: %w", err))
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing task files: %w", err)
	}
	return nil
}

// LoadFiles returns the task's file bodies.
func (s *Store) LoadFiles(ctx context.Context, taskID string) (map[string][]byte, error) {
	rows, err := s.client.TaskFile.Query().
		Where(taskfile.TaskIDEQ(taskID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading task files: %w", err)
	}
	if len(rows) == 0 {
		return nil, store.ErrNotFound
	}
	out := make(map[string][]byte, len(rows))
	for _, row := range rows {
		out[row.Path] = row.Content
	}
	return out, nil
}

// AddUsage atomically increments the owner's daily counters.
func (s *Store) AddUsage(ctx context.Context, ownerKeyHash, day string, delta store.Usage) (*store.Usage, error) {
	err := s.client.UsageCounter.Create().
		SetOwnerKeyHash(ownerKeyHash).
		SetDay(day).
		SetTokensIn(delta.TokensIn).
		SetTokensOut(delta.TokensOut).
		SetCommandRuns(delta.CommandRuns).
		OnConflictColumns(usagecounter.FieldOwnerKeyHash, usagecounter.FieldDay).
		Update(func(u *ent.UsageCounterUpsert) {
			u.AddTokensIn(delta.TokensIn)
			u.AddTokensOut(delta.TokensOut)
			u.AddCommandRuns(delta.CommandRuns)
		}).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("adding usage: %w", err)
	}
	return s.GetUsage(ctx, ownerKeyHash, day)
}

// GetUsage returns the owner's counters for one UTC day. A missing row
// reads as zeros.
func (s *Store) GetUsage(ctx context.Context, ownerKeyHash, day string) (*store.Usage, error) {
	row, err := s.client.UsageCounter.Query().
		Where(usagecounter.OwnerKeyHashEQ(ownerKeyHash), usagecounter.DayEQ(day)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return &store.Usage{OwnerKeyHash: ownerKeyHash, Day: day}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting usage: %w", err)
	}
	return &store.Usage{
		OwnerKeyHash: row.OwnerKeyHash,
		Day:          row.Day,
		TokensIn:     row.TokensIn,
		TokensOut:    row.TokensOut,
		CommandRuns:  row.CommandRuns,
	}, nil
}

// TakeRateToken counts one request in the fixed 60-second window for
// (owner, scope). The counter row is upserted atomically; the decision
// is derived from the incremented count.
func (s *Store) TakeRateToken(ctx context.Context, ownerKeyHash, scope string, limit int, now time.Time) (store.RateDecision, error) {
	window := now.UTC().Truncate(time.Minute)
	err := s.client.RateLimitBucket.Create().
		SetOwnerKeyHash(ownerKeyHash).
		SetScope(scope).
		SetWindowStart(window).
		SetCount(1).
		OnConflictColumns(
			ratelimitbucket.FieldOwnerKeyHash,
			ratelimitbucket.FieldScope,
			ratelimitbucket.FieldWindowStart,
		).
		Update(func(u *ent.RateLimitBucketUpsert) {
			u.AddCount(1)
		}).
		Exec(ctx)
	if err != nil {
		return store.RateDecision{}, fmt.Errorf("incrementing rate bucket: %w", err)
	}
	row, err := s.client.RateLimitBucket.Query().
		Where(
			ratelimitbucket.OwnerKeyHashEQ(ownerKeyHash),
			ratelimitbucket.ScopeEQ(scope),
			ratelimitbucket.WindowStartEQ(window),
		).
		Only(ctx)
	if err != nil {
		return store.RateDecision{}, fmt.Errorf("reading rate bucket: %w", err)
	}
	if row.Count > limit {
		return store.RateDecision{
			Allowed:    false,
			RetryAfter: window.Add(time.Minute).Sub(now.UTC()),
		}, nil
	}
	return store.RateDecision{Allowed: true, Remaining: limit - row.Count}, nil
}

// CreateProject stores a project row.
func (s *Store) CreateProject(ctx context.Context, p *store.Project) error {
	_, err := s.client.Project.Create().
		SetID(p.ID).
		SetOwnerKeyHash(p.OwnerKeyHash).
		SetName(p.Name).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("creating project: %w", err)
	}
	return nil
}

// GetProject returns one project row.
func (s *Store) GetProject(ctx context.Context, id string) (*store.Project, error) {
	row, err := s.client.Project.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return &store.Project{
		ID:           row.ID,
		OwnerKeyHash: row.OwnerKeyHash,
		Name:         row.Name,
		CreatedAt:    row.CreatedAt,
	}, nil
}

// ListProjects returns an owner's projects, newest first.
func (s *Store) ListProjects(ctx context.Context, ownerKeyHash string) ([]*store.Project, error) {
	rows, err := s.client.Project.Query().
		Where(project.OwnerKeyHashEQ(ownerKeyHash)).
		Order(ent.Desc(project.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	out := make([]*store.Project, 0, len(rows))
	for _, row := range rows {
		out = append(out, &store.Project{
			ID:           row.ID,
			OwnerKeyHash: row.OwnerKeyHash,
			Name:         row.Name,
			CreatedAt:    row.CreatedAt,
		})
	}
	return out, nil
}

// UpsertOAuthAccount stores or refreshes a linked account.
func (s *Store) UpsertOAuthAccount(ctx context.Context, a *store.OAuthAccount) error {
	err := s.client.OAuthAccount.Create().
		SetID(a.ID).
		SetProvider(a.Provider).
		SetSubject(a.Subject).
		SetOwnerKeyHash(a.OwnerKeyHash).
		SetEmail(a.Email).
		OnConflictColumns(oauthaccount.FieldProvider, oauthaccount.FieldSubject).
		Update(func(u *ent.OAuthAccountUpsert) {
			u.SetOwnerKeyHash(a.OwnerKeyHash)
			u.SetEmail(a.Email)
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upserting oauth account: %w", err)
	}
	return nil
}

// GetOAuthAccount returns a linked account by (provider, subject).
func (s *Store) GetOAuthAccount(ctx context.Context, provider, subject string) (*store.OAuthAccount, error) {
	row, err := s.client.OAuthAccount.Query().
		Where(oauthaccount.ProviderEQ(provider), oauthaccount.SubjectEQ(subject)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting oauth account: %w", err)
	}
	return &store.OAuthAccount{
		ID:           row.ID,
		Provider:     row.Provider,
		Subject:      row.Subject,
		OwnerKeyHash: row.OwnerKeyHash,
		Email:        row.Email,
		CreatedAt:    row.CreatedAt,
	}, nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.PingContext(ctx)
}

// Close closes the Ent client.
func (s *Store) Close() error {
	return s.client.Close()
}

func hashHex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
