package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"adpilot/internal/core/domain"
	"adpilot/internal/metrics"
)

var errParentNotPublished = errors.New("parent was not published")

// BuildQueue flattens the selected nodes of a draft tree in campaign, ad set,
// ad order. An empty selection takes the whole tree. Nodes published in an
// earlier run are skipped; their remote ids still serve as parents.
func BuildQueue(tree domain.DraftTree, selected []string) []domain.QueueItem {
	pick := func(id string) bool {
		return len(selected) == 0 || slices.Contains(selected, id)
	}

	var items []domain.QueueItem
	c := tree.Campaign
	if pick(c.ID) && c.RemoteID == "" {
		items = append(items, domain.QueueItem{
			ID:     c.ID,
			Type:   domain.QueueCampaign,
			Name:   c.Name,
			Status: domain.QueuePending,
			Data:   domain.DraftCampaign{Name: c.Name, Objective: c.Objective},
		})
	}
	for _, as := range c.AdSets {
		if pick(as.ID) && as.RemoteID == "" {
			data := as.Draft
			data.Name = as.Name
			if data.Objective == "" {
				data.Objective = c.Objective
			}
			items = append(items, domain.QueueItem{
				ID:       as.ID,
				ParentID: c.ID,
				Type:     domain.QueueAdSet,
				Name:     as.Name,
				Status:   domain.QueuePending,
				Data:     data,
				Audience: as.CustomAudiences,
			})
		}
		for _, ad := range as.Ads {
			if !pick(ad.ID) || ad.RemoteID != "" {
				continue
			}
			items = append(items, domain.QueueItem{
				ID:       ad.ID,
				ParentID: as.ID,
				Type:     domain.QueueAd,
				Name:     ad.Name,
				Status:   domain.QueuePending,
				Data: domain.DraftCampaign{
					Name:           ad.Name,
					PostURL:        ad.PostURL,
					ResolvedPostID: ad.ResolvedPostID,
				},
			})
		}
	}
	return items
}

// knownRemoteIDs maps node ids of tree to remote ids published earlier.
func knownRemoteIDs(tree domain.DraftTree) map[string]string {
	ids := make(map[string]string)
	c := tree.Campaign
	if c.RemoteID != "" {
		ids[c.ID] = c.RemoteID
	}
	for _, as := range c.AdSets {
		if as.RemoteID != "" {
			ids[as.ID] = as.RemoteID
		}
		for _, ad := range as.Ads {
			if ad.RemoteID != "" {
				ids[ad.ID] = ad.RemoteID
			}
		}
	}
	return ids
}

// ProgressFunc receives a progress snapshot and a copy of the items after
// every processed item.
type ProgressFunc func(p domain.Progress, items []domain.QueueItem)

// Queue replays the creation steps for queue items one at a time with a
// fixed pause between remote calls.
type Queue struct {
	pipeline *Pipeline
	delay    time.Duration
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewQueue creates a queue runner.
func NewQueue(pipeline *Pipeline, delay time.Duration, logger *slog.Logger, m *metrics.Metrics) *Queue {
	return &Queue{pipeline: pipeline, delay: delay, logger: logger, metrics: m}
}

// Run processes items in order, mutating them in place. A failed item is
// logged and the queue moves on. Cancelling ctx stops the run before the
// next item; a call already in flight completes.
func (q *Queue) Run(ctx context.Context, acct domain.Account, items []domain.QueueItem, remoteIDs map[string]string, report ProgressFunc) domain.Progress {
	if remoteIDs == nil {
		remoteIDs = make(map[string]string)
	}
	progress := domain.Progress{Total: len(items), Logs: []string{}}
	callCtx := context.WithoutCancel(ctx)

	for i := range items {
		if ctx.Err() != nil {
			progress.Stopped = true
			progress.Logs = append(progress.Logs, fmt.Sprintf("Đã dừng trước mục %d/%d", i+1, len(items)))
			break
		}
		if i > 0 && q.delay > 0 {
			select {
			case <-ctx.Done():
				progress.Stopped = true
				progress.Logs = append(progress.Logs, fmt.Sprintf("Đã dừng trước mục %d/%d", i+1, len(items)))
			case <-time.After(q.delay):
			}
			if progress.Stopped {
				break
			}
		}

		item := &items[i]
		item.Status = domain.QueueRunning
		err := q.process(callCtx, acct, item, remoteIDs)
		if err != nil {
			item.Status = domain.QueueFailed
			item.Error = err.Error()
			q.logger.Warn("queue item failed", "id", item.ID, "type", item.Type, "err", err)
			progress.Logs = append(progress.Logs, fmt.Sprintf("[%d/%d] %s %q: lỗi: %v", i+1, len(items), item.Type, item.Name, err))
		} else {
			item.Status = domain.QueueSuccess
			remoteIDs[item.ID] = item.RemoteID
			progress.Logs = append(progress.Logs, fmt.Sprintf("[%d/%d] %s %q: %s", i+1, len(items), item.Type, item.Name, item.RemoteID))
		}
		q.metrics.IncQueueItem(string(item.Type), string(item.Status))

		progress.Current = i + 1
		progress.Percent = progress.Current * 100 / progress.Total
		if report != nil {
			report(cloneProgress(progress), slices.Clone(items))
		}
	}

	progress.Done = true
	if progress.Total == 0 {
		progress.Percent = 100
	}
	if report != nil {
		report(cloneProgress(progress), slices.Clone(items))
	}
	return progress
}

func (q *Queue) process(ctx context.Context, acct domain.Account, item *domain.QueueItem, remoteIDs map[string]string) error {
	parent := ""
	if item.Type != domain.QueueCampaign {
		parent = remoteIDs[item.ParentID]
		if parent == "" {
			return errParentNotPublished
		}
	}

	switch item.Type {
	case domain.QueueCampaign:
		id, err := q.pipeline.CreateCampaign(ctx, acct, item.Name, item.Data.Objective)
		if err != nil {
			return err
		}
		item.RemoteID = id
	case domain.QueueAdSet:
		targeting, err := Compile(item.Data, item.Audience)
		if err != nil {
			return err
		}
		id, err := q.pipeline.CreateAdSet(ctx, acct, parent, item.Name, item.Data, *targeting)
		if err != nil {
			return err
		}
		item.RemoteID = id
	case domain.QueueAd:
		res, err := q.pipeline.CreateAd(ctx, acct, parent, item.Name, item.Data)
		if err != nil {
			return err
		}
		item.RemoteID = res.AdID
		item.Data.ResolvedPostID = res.PostID
	default:
		return fmt.Errorf("unknown queue item type %q", item.Type)
	}
	return nil
}

func cloneProgress(p domain.Progress) domain.Progress {
	p.Logs = slices.Clone(p.Logs)
	return p
}

// applyRemoteIDs writes the ids created by a run back into the tree.
func applyRemoteIDs(tree *domain.DraftTree, items []domain.QueueItem) {
	byID := make(map[string]domain.QueueItem, len(items))
	for _, it := range items {
		if it.Status == domain.QueueSuccess {
			byID[it.ID] = it
		}
	}
	c := &tree.Campaign
	if it, ok := byID[c.ID]; ok {
		c.RemoteID = it.RemoteID
	}
	for i := range c.AdSets {
		as := &c.AdSets[i]
		if it, ok := byID[as.ID]; ok {
			as.RemoteID = it.RemoteID
		}
		for j := range as.Ads {
			ad := &as.Ads[j]
			if it, ok := byID[ad.ID]; ok {
				ad.RemoteID = it.RemoteID
				ad.ResolvedPostID = it.Data.ResolvedPostID
			}
		}
	}
}
