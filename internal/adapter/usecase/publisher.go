package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/metrics"
)

// runRetention is how long a finished run stays queryable.
const runRetention = time.Hour

// Publisher starts background queue runs over stored drafts and keeps their
// progress in memory. Runs are not persisted across restarts, and finished
// runs are forgotten after the retention period.
type Publisher struct {
	drafts    port.DraftRepository
	queue     *Queue
	logger    *slog.Logger
	metrics   *metrics.Metrics
	retention time.Duration
	now       func() time.Time

	mu   sync.Mutex
	runs map[string]*publishRun
	wg   sync.WaitGroup
}

type publishRun struct {
	draftID    string
	progress   domain.Progress
	items      []domain.QueueItem
	cancel     context.CancelFunc
	finishedAt time.Time
}

var _ port.Publisher = (*Publisher)(nil)

// NewPublisher creates a publisher backed by the draft repository.
func NewPublisher(drafts port.DraftRepository, queue *Queue, logger *slog.Logger, m *metrics.Metrics) *Publisher {
	return &Publisher{
		drafts:    drafts,
		queue:     queue,
		logger:    logger,
		metrics:   m,
		retention: runRetention,
		now:       time.Now,
		runs:      make(map[string]*publishRun),
	}
}

// Start loads the draft, builds the queue from the selected node ids and
// processes it in the background. The run outlives ctx.
func (p *Publisher) Start(ctx context.Context, acct domain.Account, draftID string, selected []string) (string, error) {
	tree, err := p.drafts.GetDraft(ctx, draftID)
	if err != nil {
		return "", fmt.Errorf("load draft %s: %w", draftID, err)
	}

	items := BuildQueue(*tree, selected)
	remoteIDs := knownRemoteIDs(*tree)

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	id := uuid.NewString()
	run := &publishRun{
		draftID:  draftID,
		progress: domain.Progress{Total: len(items), Logs: []string{}},
		items:    slices.Clone(items),
		cancel:   cancel,
	}

	p.mu.Lock()
	p.evictLocked()
	p.runs[id] = run
	p.mu.Unlock()

	p.metrics.AddActiveRuns(1)
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer p.metrics.AddActiveRuns(-1)
		defer cancel()

		final := p.queue.Run(runCtx, acct, items, remoteIDs, func(pr domain.Progress, snapshot []domain.QueueItem) {
			p.mu.Lock()
			run.progress = pr
			run.items = snapshot
			p.mu.Unlock()
		})

		applyRemoteIDs(tree, items)
		if err := p.drafts.SaveDraft(context.WithoutCancel(ctx), *tree); err != nil {
			p.logger.Error("save draft after publish failed", "draft_id", draftID, "run_id", id, "err", err)
		}
		p.mu.Lock()
		run.finishedAt = p.now()
		p.mu.Unlock()
		p.logger.Info("publish run finished",
			"run_id", id,
			"draft_id", draftID,
			"processed", final.Current,
			"total", final.Total,
			"stopped", final.Stopped,
		)
	}()

	p.logger.Info("publish run started", "run_id", id, "draft_id", draftID, "items", len(items))
	return id, nil
}

// Progress returns a snapshot of a run.
func (p *Publisher) Progress(runID string) (*port.RunStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.evictLocked()
	run, ok := p.runs[runID]
	if !ok {
		return nil, port.ErrRunNotFound
	}
	return &port.RunStatus{
		ID:       runID,
		DraftID:  run.draftID,
		Progress: cloneProgress(run.progress),
		Items:    slices.Clone(run.items),
	}, nil
}

// Stop asks a run to halt before its next item.
func (p *Publisher) Stop(runID string) error {
	p.mu.Lock()
	run, ok := p.runs[runID]
	p.mu.Unlock()
	if !ok {
		return port.ErrRunNotFound
	}
	run.cancel()
	return nil
}

// evictLocked drops runs that finished more than the retention period ago.
// p.mu must be held.
func (p *Publisher) evictLocked() {
	cutoff := p.now().Add(-p.retention)
	for id, run := range p.runs {
		if !run.finishedAt.IsZero() && run.finishedAt.Before(cutoff) {
			delete(p.runs, id)
		}
	}
}

// Wait blocks until every started run has finished.
func (p *Publisher) Wait() {
	p.wg.Wait()
}

// Shutdown stops all runs and waits for them.
func (p *Publisher) Shutdown() {
	p.mu.Lock()
	for _, run := range p.runs {
		run.cancel()
	}
	p.mu.Unlock()
	p.wg.Wait()
}
