package harvest

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/pmilosz/leadharvest"
	"golang.org/x/sync/errgroup"
)

// Runner orchestrates a harvest run over a batch of leads: it harvests
// each distinct website once, records the outcome on every lead sharing
// that website, and optionally resolves property owners.
type Runner struct {
	Harvester leadharvest.Harvester
	Leads     leadharvest.LeadService
	Owners    leadharvest.OwnerLookup
	Logger    *slog.Logger

	// Concurrency bounds the worker pool. Zero means 5.
	Concurrency int

	// Refresh forces re-harvesting of leads whose stored snapshot hash
	// still matches the fetched page.
	Refresh bool
}

// Result holds the outcome of a batch run.
type Result struct {
	Harvested int // leads processed through a fetch
	Found     int // leads that ended with at least one email
	NoEmails  int // leads whose page had no emails
	Failed    int // leads whose fetch failed
	Skipped   int // leads skipped (no website, or page unchanged)
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types emitted during a run.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Lead      *leadharvest.Lead
	Emails    int
	Error     error
}

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// Run harvests emails for every lead in the batch. Individual fetch
// failures never abort the run; they are recorded on the lead and counted.
// The returned error is non-nil only for cancellation.
func (r *Runner) Run(ctx context.Context, leads []*leadharvest.Lead, progress ProgressFunc) (*Result, error) {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 5
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(leads)})
	}

	// Leads frequently share a website (franchises, marketplace listings).
	// Group by normalized URL so each site is fetched exactly once.
	groups := make(map[string][]*leadharvest.Lead)
	var order []string
	var noSite []*leadharvest.Lead
	for _, lead := range leads {
		site := NormalizeURL(lead.Website)
		if site == "" {
			noSite = append(noSite, lead)
			continue
		}
		if _, ok := groups[site]; !ok {
			order = append(order, site)
		}
		groups[site] = append(groups[site], lead)
	}

	var (
		mu        sync.Mutex
		result    Result
		completed atomic.Int64
	)
	total := len(leads)

	result.Skipped += len(noSite)
	for _, lead := range noSite {
		completed.Add(1)
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				Lead:      lead,
			})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, site := range order {
		group := groups[site]
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			res := r.harvestSite(gctx, site)

			for _, lead := range group {
				outcome := r.applyResult(gctx, lead, res)

				mu.Lock()
				switch outcome {
				case leadOutcomeFound:
					result.Harvested++
					result.Found++
				case leadOutcomeNoEmails:
					result.Harvested++
					result.NoEmails++
				case leadOutcomeFailed:
					result.Failed++
				case leadOutcomeSkipped:
					result.Skipped++
				}
				mu.Unlock()

				completed.Add(1)
				if progress != nil {
					eventType := ProgressCompleted
					if outcome == leadOutcomeFailed {
						eventType = ProgressFailed
					}
					progress(ProgressEvent{
						Type:      eventType,
						Completed: int(completed.Load()),
						Total:     total,
						Lead:      lead,
						Emails:    len(res.Emails),
						Error:     res.Err,
					})
				}
			}
			return nil
		})
	}

	err := g.Wait()

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	if err != nil && ctx.Err() != nil {
		return &result, ctx.Err()
	}
	return &result, nil
}

// harvestSite prefers the deep site harvest when the configured Harvester
// supports it.
func (r *Runner) harvestSite(ctx context.Context, site string) *leadharvest.HarvestResult {
	type siteHarvester interface {
		HarvestSite(ctx context.Context, rawURL string) *leadharvest.HarvestResult
	}
	if deep, ok := r.Harvester.(siteHarvester); ok {
		return deep.HarvestSite(ctx, site)
	}
	return r.Harvester.HarvestURL(ctx, site)
}

type leadOutcome int

const (
	leadOutcomeFound leadOutcome = iota
	leadOutcomeNoEmails
	leadOutcomeFailed
	leadOutcomeSkipped
)

// applyResult records a harvest result on a lead and resolves its owner.
// Storage errors are logged and counted as failures rather than aborting
// the batch.
func (r *Runner) applyResult(ctx context.Context, lead *leadharvest.Lead, res *leadharvest.HarvestResult) leadOutcome {
	var outcome leadOutcome
	upd := leadharvest.LeadUpdate{}

	switch res.Status {
	case leadharvest.StatusFetched:
		if !r.Refresh && res.SnapshotHash != "" && res.SnapshotHash == lead.SnapshotHash {
			return leadOutcomeSkipped
		}
		status := leadharvest.HarvestStatusFound
		outcome = leadOutcomeFound
		if len(res.Emails) == 0 {
			status = leadharvest.HarvestStatusNone
			outcome = leadOutcomeNoEmails
		}
		emails := res.Emails
		upd.Emails = &emails
		upd.HarvestStatus = &status
		upd.SnapshotHash = &res.SnapshotHash
	case leadharvest.StatusFetchFailed:
		status := leadharvest.HarvestStatusFetchFailed
		upd.HarvestStatus = &status
		outcome = leadOutcomeFailed
	default:
		return leadOutcomeSkipped
	}

	if r.Owners != nil && lead.Owner == "" && lead.Address != "" {
		owner, err := r.Owners.LookupOwner(ctx, lead.Address)
		if err == nil && owner != nil {
			upd.Owner = &owner.Owner
		} else if err != nil && leadharvest.ErrorCode(err) != leadharvest.ENOTFOUND {
			r.log().Warn("owner lookup failed", "address", lead.Address, "err", err)
		}
	}

	if r.Leads != nil {
		if _, err := r.Leads.UpdateLead(ctx, lead.ID, upd); err != nil {
			r.log().Error("lead update failed", "lead", lead.ID, "err", err)
			return leadOutcomeFailed
		}
	}
	return outcome
}

func (r *Runner) log() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}
