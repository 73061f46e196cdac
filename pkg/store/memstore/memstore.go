// Package memstore is the in-memory Store used for tests and for
// running without a database. State is lost on process exit; resume
// within a process still works because snapshots and files round-trip.
package memstore

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/forgeproject/forge/pkg/store"
)

// Store implements store.Store entirely in memory.
type Store struct {
	mu    sync.Mutex
	caps  store.FileCaps
	tasks map[string]*store.Task

	events    map[string][]*store.Event // taskID → ordered events
	eventIDs  map[string]bool           // taskID|eventID dedupe
	eventSeq  map[string]int64
	artifacts map[string][]*store.Artifact
	snapshots map[string]json.RawMessage
	files     map[string]map[string][]byte

	usage    map[string]*store.Usage // owner|day
	rate     map[string]int          // owner|scope|window
	projects map[string]*store.Project
	oauth    map[string]*store.OAuthAccount // provider|subject
}

var _ store.Store = (*Store)(nil)

// New creates an empty store with default file caps.
func New() *Store {
	return NewWithCaps(store.DefaultFileCaps())
}

// NewWithCaps creates an empty store with explicit file caps.
func NewWithCaps(caps store.FileCaps) *Store {
	return &Store{
		caps:      caps,
		tasks:     make(map[string]*store.Task),
		events:    make(map[string][]*store.Event),
		eventIDs:  make(map[string]bool),
		eventSeq:  make(map[string]int64),
		artifacts: make(map[string][]*store.Artifact),
		snapshots: make(map[string]json.RawMessage),
		files:     make(map[string]map[string][]byte),
		usage:     make(map[string]*store.Usage),
		rate:      make(map[string]int),
		projects:  make(map[string]*store.Project),
		oauth:     make(map[string]*store.OAuthAccount),
	}
}

func cloneTask(t *store.Task) *store.Task {
	cp := *t
	if t.HeartbeatAt != nil {
		hb := *t.HeartbeatAt
		cp.HeartbeatAt = &hb
	}
	if t.CompletedAt != nil {
		ca := *t.CompletedAt
		cp.CompletedAt = &ca
	}
	cp.PendingQuestions = append(json.RawMessage(nil), t.PendingQuestions...)
	cp.ProvidedAnswers = append(json.RawMessage(nil), t.ProvidedAnswers...)
	cp.Result = append(json.RawMessage(nil), t.Result...)
	return &cp
}

// CreateTask stores a new task row.
func (s *Store) CreateTask(_ context.Context, t *store.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	cp := cloneTask(t)
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = now
	}
	if cp.UpdatedAt.IsZero() {
		cp.UpdatedAt = now
	}
	s.tasks[cp.ID] = cp
	return nil
}

// GetTask returns one task row.
func (s *Store) GetTask(_ context.Context, id string) (*store.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneTask(t), nil
}

// FindTaskByRequestID returns the owner's task created with requestID.
func (s *Store) FindTaskByRequestID(_ context.Context, ownerKeyHash, requestID string) (*store.Task, error) {
	if requestID == "" {
		return nil, store.ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.OwnerKeyHash == ownerKeyHash && t.RequestID == requestID {
			return cloneTask(t), nil
		}
	}
	return nil, store.ErrNotFound
}

// ListTasks returns tasks matching the filter, newest first.
func (s *Store) ListTasks(_ context.Context, f store.TaskFilter) ([]*store.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*store.Task
	for _, t := range s.tasks {
		if f.OwnerKeyHash != "" && t.OwnerKeyHash != f.OwnerKeyHash {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.ProjectID != "" && t.ProjectID != f.ProjectID {
			continue
		}
		out = append(out, cloneTask(t))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

// UpdateTask overwrites a task row.
func (s *Store) UpdateTask(_ context.Context, t *store.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[t.ID]; !ok {
		return store.ErrNotFound
	}
	cp := cloneTask(t)
	cp.UpdatedAt = time.Now().UTC()
	s.tasks[t.ID] = cp
	return nil
}

// ClaimTask flips queued→processing for one worker.
func (s *Store) ClaimTask(_ context.Context, id, workerID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return false, store.ErrNotFound
	}
	if t.Status != store.StatusQueued {
		return false, nil
	}
	now := time.Now().UTC()
	t.Status = store.StatusProcessing
	t.WorkerID = workerID
	t.HeartbeatAt = &now
	t.UpdatedAt = now
	return true, nil
}

// Heartbeat records liveness for a processing task.
func (s *Store) Heartbeat(_ context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return store.ErrNotFound
	}
	hb := at.UTC()
	t.HeartbeatAt = &hb
	return nil
}

// RequeueProcessing flips every processing task back to queued.
func (s *Store) RequeueProcessing(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if t.Status == store.StatusProcessing {
			t.Status = store.StatusQueued
			t.WorkerID = ""
			t.HeartbeatAt = nil
			t.UpdatedAt = time.Now().UTC()
			n++
		}
	}
	return n, nil
}

// RequeueOrphaned requeues processing tasks with stale heartbeats.
func (s *Store) RequeueOrphaned(_ context.Context, cutoff time.Time) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []string
	for _, t := range s.tasks {
		if t.Status != store.StatusProcessing {
			continue
		}
		if t.HeartbeatAt != nil && !t.HeartbeatAt.Before(cutoff) {
			continue
		}
		t.Status = store.StatusQueued
		t.WorkerID = ""
		t.HeartbeatAt = nil
		t.UpdatedAt = time.Now().UTC()
		ids = append(ids, t.ID)
	}
	sort.Strings(ids)
	return ids, nil
}

// PurgeTasksBefore removes terminal tasks older than cutoff with all
// their dependent rows.
func (s *Store) PurgeTasksBefore(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, t := range s.tasks {
		if !t.Status.Terminal() || !t.UpdatedAt.Before(cutoff) {
			continue
		}
		delete(s.tasks, id)
		for _, e := range s.events[id] {
			delete(s.eventIDs, id+"|"+e.ID)
		}
		delete(s.events, id)
		delete(s.eventSeq, id)
		delete(s.artifacts, id)
		delete(s.snapshots, id)
		delete(s.files, id)
		n++
	}
	return n, nil
}

// AppendEvent appends one event, deduplicating by (task_id, event_id).
func (s *Store) AppendEvent(_ context.Context, e *store.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := e.TaskID + "|" + e.ID
	if s.eventIDs[key] {
		return nil
	}
	s.eventIDs[key] = true
	s.eventSeq[e.TaskID]++
	cp := *e
	cp.Seq = s.eventSeq[e.TaskID]
	cp.Payload = append(json.RawMessage(nil), e.Payload...)
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now().UTC()
	}
	s.events[e.TaskID] = append(s.events[e.TaskID], &cp)
	e.Seq = cp.Seq
	return nil
}

// ListEvents returns events for a task with Seq > afterSeq, in order.
func (s *Store) ListEvents(_ context.Context, taskID string, afterSeq int64) ([]*store.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*store.Event
	for _, e := range s.events[taskID] {
		if e.Seq <= afterSeq {
			continue
		}
		cp := *e
		cp.Payload = append(json.RawMessage(nil), e.Payload...)
		out = append(out, &cp)
	}
	return out, nil
}

// SaveArtifact stores one artifact row; duplicate IDs overwrite.
func (s *Store) SaveArtifact(_ context.Context, a *store.Artifact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *a
	cp.Payload = append(json.RawMessage(nil), a.Payload...)
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now().UTC()
	}
	list := s.artifacts[a.TaskID]
	for i, existing := range list {
		if existing.ID == a.ID {
			list[i] = &cp
			return nil
		}
	}
	s.artifacts[a.TaskID] = append(list, &cp)
	return nil
}

// ListArtifacts returns a task's artifacts in append order.
func (s *Store) ListArtifacts(_ context.Context, taskID string) ([]*store.Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*store.Artifact, 0, len(s.artifacts[taskID]))
	for _, a := range s.artifacts[taskID] {
		cp := *a
		cp.Payload = append(json.RawMessage(nil), a.Payload...)
		out = append(out, &cp)
	}
	return out, nil
}

// SaveSnapshot stores the container snapshot (last write wins).
func (s *Store) SaveSnapshot(_ context.Context, taskID string, snapshot json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[taskID] = append(json.RawMessage(nil), snapshot...)
	return nil
}

// LoadSnapshot returns the last stored snapshot.
func (s *Store) LoadSnapshot(_ context.Context, taskID string) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.snapshots[taskID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return append(json.RawMessage(nil), snap...), nil
}

// SaveFiles replaces the task's file bodies, enforcing caps.
func (s *Store) SaveFiles(_ context.Context, taskID string, files map[string][]byte) error {
	if err := s.caps.CheckFiles(files); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make(map[string][]byte, len(files))
	for p, b := range files {
		cp[p] = append([]byte(nil), b...)
	}
	s.files[taskID] = cp
	return nil
}

// LoadFiles returns the task's file bodies.
func (s *Store) LoadFiles(_ context.Context, taskID string) (map[string][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	files, ok := s.files[taskID]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := make(map[string][]byte, len(files))
	for p, b := range files {
		out[p] = append([]byte(nil), b...)
	}
	return out, nil
}

// AddUsage atomically increments the owner's daily counters.
func (s *Store) AddUsage(_ context.Context, ownerKeyHash, day string, delta store.Usage) (*store.Usage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := ownerKeyHash + "|" + day
	u, ok := s.usage[key]
	if !ok {
		u = &store.Usage{OwnerKeyHash: ownerKeyHash, Day: day}
		s.usage[key] = u
	}
	u.TokensIn += delta.TokensIn
	u.TokensOut += delta.TokensOut
	u.CommandRuns += delta.CommandRuns
	cp := *u
	return &cp, nil
}

// GetUsage returns the owner's counters for one UTC day. A missing row
// reads as zeros.
func (s *Store) GetUsage(_ context.Context, ownerKeyHash, day string) (*store.Usage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.usage[ownerKeyHash+"|"+day]; ok {
		cp := *u
		return &cp, nil
	}
	return &store.Usage{OwnerKeyHash: ownerKeyHash, Day: day}, nil
}

// TakeRateToken counts one request in the fixed 60-second window.
func (s *Store) TakeRateToken(_ context.Context, ownerKeyHash, scope string, limit int, now time.Time) (store.RateDecision, error) {
	window := now.UTC().Truncate(time.Minute)
	key := strings.Join([]string{ownerKeyHash, scope, window.Format(time.RFC3339)}, "|")

	s.mu.Lock()
	defer s.mu.Unlock()
	count := s.rate[key]
	if count >= limit {
		return store.RateDecision{
			Allowed:    false,
			RetryAfter: window.Add(time.Minute).Sub(now.UTC()),
		}, nil
	}
	s.rate[key] = count + 1
	return store.RateDecision{Allowed: true, Remaining: limit - count - 1}, nil
}

// CreateProject stores a project row.
func (s *Store) CreateProject(_ context.Context, p *store.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now().UTC()
	}
	s.projects[p.ID] = &cp
	return nil
}

// GetProject returns one project row.
func (s *Store) GetProject(_ context.Context, id string) (*store.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

// ListProjects returns an owner's projects, newest first.
func (s *Store) ListProjects(_ context.Context, ownerKeyHash string) ([]*store.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*store.Project
	for _, p := range s.projects {
		if p.OwnerKeyHash != ownerKeyHash {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// UpsertOAuthAccount stores or refreshes a linked account.
func (s *Store) UpsertOAuthAccount(_ context.Context, a *store.OAuthAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *a
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now().UTC()
	}
	s.oauth[a.Provider+"|"+a.Subject] = &cp
	return nil
}

// GetOAuthAccount returns a linked account by (provider, subject).
func (s *Store) GetOAuthAccount(_ context.Context, provider, subject string) (*store.OAuthAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.oauth[provider+"|"+subject]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

// Ping implements store.Store.
func (s *Store) Ping(context.Context) error { return nil }

// Close implements store.Store.
func (s *Store) Close() error { return nil }
