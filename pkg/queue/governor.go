// Package queue is the governor: it admits tasks into the system,
// bounds how many run at once, keeps claimed tasks alive through
// heartbeats, and requeues work whose worker died. It also owns the
// per-owner rate limits and daily quotas.
package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/forgeproject/forge/pkg/config"
	"github.com/forgeproject/forge/pkg/orchestrator"
	"github.com/forgeproject/forge/pkg/store"
)

// ErrQueueFull rejects new tasks once the backlog hits MaxQueueDepth.
var ErrQueueFull = errors.New("task queue is full")

// TaskExecutor runs one claimed task to a terminal outcome. The
// orchestrator satisfies this directly.
type TaskExecutor interface {
	RunTask(ctx context.Context, taskID string) (*orchestrator.Outcome, error)
}

// Health is the governor's snapshot for the ops endpoint.
type Health struct {
	Healthy         bool      `json:"healthy"`
	DBReachable     bool      `json:"db_reachable"`
	WorkerID        string    `json:"worker_id"`
	ActiveTasks     int64     `json:"active_tasks"`
	MaxConcurrent   int       `json:"max_concurrent"`
	QueueDepth      int       `json:"queue_depth"`
	TasksProcessed  int64     `json:"tasks_processed"`
	LastOrphanScan  time.Time `json:"last_orphan_scan,omitempty"`
	OrphansRequeued int64     `json:"orphans_requeued"`
}

// Governor dispatches queued tasks to the executor under a concurrency
// bound. One instance per process; the store mediates between
// processes.
type Governor struct {
	workerID string
	store    store.Store
	cfg      config.GovernorConfig
	executor TaskExecutor

	sem    *semaphore.Weighted
	wakeup chan struct{}

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	started atomic.Bool

	active          atomic.Int64
	processed       atomic.Int64
	orphansRequeued atomic.Int64

	mu             sync.Mutex
	lastOrphanScan time.Time
}

// NewGovernor wires a governor. workerID identifies this process in
// task claims and heartbeats.
func NewGovernor(workerID string, st store.Store, cfg config.GovernorConfig, executor TaskExecutor) *Governor {
	return &Governor{
		workerID: workerID,
		store:    st,
		cfg:      cfg,
		executor: executor,
		sem:      semaphore.NewWeighted(int64(cfg.MaxConcurrentTasks)),
		wakeup:   make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
	}
}

// Start recovers crashed work, then runs the dispatcher and the orphan
// scanner. Safe to call once; later calls are no-ops.
func (g *Governor) Start(ctx context.Context) error {
	if !g.started.CompareAndSwap(false, true) {
		slog.Warn("Governor already started, ignoring duplicate Start call", "worker_id", g.workerID)
		return nil
	}

	// Crash recovery: anything still marked processing belongs to a
	// previous run of this process topology.
	requeued, err := g.store.RequeueProcessing(ctx)
	if err != nil {
		return fmt.Errorf("requeueing in-flight tasks at startup: %w", err)
	}
	if requeued > 0 {
		slog.Warn("Requeued in-flight tasks from previous run", "count", requeued)
	}

	slog.Info("Governor starting",
		"worker_id", g.workerID,
		"max_concurrent", g.cfg.MaxConcurrentTasks,
		"max_queue_depth", g.cfg.MaxQueueDepth)

	g.wg.Add(2)
	go func() {
		defer g.wg.Done()
		g.runDispatcher(ctx)
	}()
	go func() {
		defer g.wg.Done()
		g.runOrphanScanner(ctx)
	}()
	return nil
}

// Stop signals shutdown and waits for in-flight tasks to finish.
func (g *Governor) Stop() {
	slog.Info("Governor stopping", "active_tasks", g.active.Load())
	g.stopOnce.Do(func() { close(g.stopCh) })
	g.wg.Wait()
	slog.Info("Governor stopped")
}

// Enqueue admits a task into the backlog. The row must already exist
// with status queued; this only enforces the depth bound and wakes the
// dispatcher.
func (g *Governor) Enqueue(ctx context.Context, taskID string) error {
	depth, err := g.queueDepth(ctx)
	if err != nil {
		return err
	}
	if g.cfg.MaxQueueDepth > 0 && depth > g.cfg.MaxQueueDepth {
		return ErrQueueFull
	}
	g.Wake()
	slog.Debug("Task enqueued", "task_id", taskID, "queue_depth", depth)
	return nil
}

// Wake nudges the dispatcher without waiting for the poll tick.
func (g *Governor) Wake() {
	select {
	case g.wakeup <- struct{}{}:
	default:
	}
}

// Health reports the governor snapshot for /ops/status.
func (g *Governor) Health(ctx context.Context) Health {
	depth, err := g.queueDepth(ctx)
	dbReachable := err == nil
	if err != nil {
		slog.Error("Queue depth query failed during health check", "error", err)
	}

	g.mu.Lock()
	lastScan := g.lastOrphanScan
	g.mu.Unlock()

	active := g.active.Load()
	return Health{
		Healthy:         dbReachable && active <= int64(g.cfg.MaxConcurrentTasks),
		DBReachable:     dbReachable,
		WorkerID:        g.workerID,
		ActiveTasks:     active,
		MaxConcurrent:   g.cfg.MaxConcurrentTasks,
		QueueDepth:      depth,
		TasksProcessed:  g.processed.Load(),
		LastOrphanScan:  lastScan,
		OrphansRequeued: g.orphansRequeued.Load(),
	}
}

// runDispatcher claims queued tasks oldest-first whenever a slot is
// free, sleeping between polls unless woken.
func (g *Governor) runDispatcher(ctx context.Context) {
	log := slog.With("worker_id", g.workerID)
	log.Info("Dispatcher started")

	pollInterval := g.cfg.HeartbeatInterval
	if pollInterval <= 0 {
		pollInterval = time.Second
	}

	for {
		select {
		case <-g.stopCh:
			log.Info("Dispatcher shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, dispatcher shutting down")
			return
		default:
		}

		// Hold a slot before claiming so a claimed task never sits
		// without a heartbeat waiting for capacity.
		if err := g.sem.Acquire(ctx, 1); err != nil {
			return
		}

		taskID, err := g.claimNext(ctx)
		if err != nil {
			g.sem.Release(1)
			log.Error("Claiming next task", "error", err)
			g.sleep(time.Second)
			continue
		}
		if taskID == "" {
			g.sem.Release(1)
			g.sleep(pollInterval)
			continue
		}

		g.wg.Add(1)
		go func() {
			defer g.wg.Done()
			defer g.sem.Release(1)
			g.execute(ctx, taskID)
		}()
	}
}

// claimNext returns the oldest claimable queued task, or "" when the
// backlog is empty. Claims race between processes; losing a claim just
// moves on to the next candidate.
func (g *Governor) claimNext(ctx context.Context) (string, error) {
	tasks, err := g.store.ListTasks(ctx, store.TaskFilter{Status: store.StatusQueued})
	if err != nil {
		return "", fmt.Errorf("listing queued tasks: %w", err)
	}
	// ListTasks is newest-first; claim from the back for FIFO.
	for i := len(tasks) - 1; i >= 0; i-- {
		claimed, err := g.store.ClaimTask(ctx, tasks[i].ID, g.workerID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return "", fmt.Errorf("claiming task %s: %w", tasks[i].ID, err)
		}
		if claimed {
			return tasks[i].ID, nil
		}
	}
	return "", nil
}

// execute runs one claimed task with a heartbeat alongside.
func (g *Governor) execute(ctx context.Context, taskID string) {
	log := slog.With("task_id", taskID, "worker_id", g.workerID)
	log.Info("Task claimed")

	g.active.Add(1)
	defer g.active.Add(-1)

	hbCtx, stopHeartbeat := context.WithCancel(ctx)
	defer stopHeartbeat()
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		g.runHeartbeat(hbCtx, taskID)
	}()

	outcome, err := g.executor.RunTask(ctx, taskID)
	stopHeartbeat()
	g.processed.Add(1)

	if err != nil {
		log.Error("Task execution failed", "error", err)
		g.markExecutionFailure(taskID, err)
		return
	}
	log.Info("Task execution finished", "status", outcome.Status, "failure_reason", outcome.FailureReason)
}

// markExecutionFailure records an infrastructure-level failure the
// orchestrator could not record itself. Uses a fresh context: the task
// context may already be cancelled.
func (g *Governor) markExecutionFailure(taskID string, cause error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	t, err := g.store.GetTask(ctx, taskID)
	if err != nil {
		slog.Error("Loading task after execution failure", "task_id", taskID, "error", err)
		return
	}
	if t.Status.Terminal() || t.Status == store.StatusNeedsInput {
		return
	}
	t.Status = store.StatusError
	t.FailureReason = "internal_error"
	t.Progress = 1.0
	if err := g.store.UpdateTask(ctx, t); err != nil {
		slog.Error("Recording execution failure", "task_id", taskID, "error", err, "cause", cause)
	}
}

// runHeartbeat keeps the task's claim fresh until execution ends.
func (g *Governor) runHeartbeat(ctx context.Context, taskID string) {
	interval := g.cfg.HeartbeatInterval
	if interval <= 0 {
		interval = 15 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := g.store.Heartbeat(context.Background(), taskID, time.Now()); err != nil {
				slog.Warn("Heartbeat update failed", "task_id", taskID, "error", err)
			}
		}
	}
}

// runOrphanScanner periodically requeues processing tasks whose worker
// stopped heartbeating. Every process runs this; requeueing is
// idempotent.
func (g *Governor) runOrphanScanner(ctx context.Context) {
	interval := g.cfg.OrphanScanInterval
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-g.stopCh:
			return
		case <-ticker.C:
			g.scanOrphans(ctx)
		}
	}
}

func (g *Governor) scanOrphans(ctx context.Context) {
	cutoff := time.Now().Add(-g.cfg.OrphanThreshold)
	ids, err := g.store.RequeueOrphaned(ctx, cutoff)

	g.mu.Lock()
	g.lastOrphanScan = time.Now()
	g.mu.Unlock()

	if err != nil {
		slog.Error("Orphan scan failed", "error", err)
		return
	}
	if len(ids) == 0 {
		return
	}

	g.orphansRequeued.Add(int64(len(ids)))
	slog.Warn("Requeued orphaned tasks", "count", len(ids), "task_ids", ids)
	g.Wake()
}

func (g *Governor) queueDepth(ctx context.Context) (int, error) {
	tasks, err := g.store.ListTasks(ctx, store.TaskFilter{Status: store.StatusQueued})
	if err != nil {
		return 0, fmt.Errorf("listing queued tasks: %w", err)
	}
	return len(tasks), nil
}

// sleep waits for d or until stop is signalled.
func (g *Governor) sleep(d time.Duration) {
	select {
	case <-g.stopCh:
	case <-g.wakeup:
	case <-time.After(d):
	}
}
