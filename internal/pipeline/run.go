// Package pipeline provides the high-level orchestration for one
// content-brief planning run.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/content-planner/internal/cannibalization"
	"github.com/jonathan/content-planner/internal/contentindex"
	"github.com/jonathan/content-planner/internal/ingestion"
	"github.com/jonathan/content-planner/internal/intent"
	"github.com/jonathan/content-planner/internal/keywords"
	"github.com/jonathan/content-planner/internal/links"
	"github.com/jonathan/content-planner/internal/pillar"
	"github.com/jonathan/content-planner/internal/refine"
	"github.com/jonathan/content-planner/internal/schedule"
	"github.com/jonathan/content-planner/internal/types"
)

// ContextSource supplies the site's inventory snapshot (the context
// contract). db.DB satisfies it; tests substitute fakes.
type ContextSource interface {
	ListKeywords(ctx context.Context, siteID uuid.UUID) ([]types.KeywordRecord, error)
	ListExistingContent(ctx context.Context, siteID uuid.UUID) ([]types.ExistingContentRecord, error)
}

// BriefStore receives the final brief set for durable storage.
type BriefStore interface {
	CreateRun(ctx context.Context, siteID uuid.UUID) (uuid.UUID, error)
	SaveBriefs(ctx context.Context, runID uuid.UUID, briefs []types.ContentBrief) []types.BriefOutcome
	CompleteRun(ctx context.Context, runID uuid.UUID, status string, summary types.RunSummary) error
}

// RunOptions holds configuration for one planning batch.
type RunOptions struct {
	SiteID          uuid.UUID
	Count           int
	Clusters        []string
	IncludePillar   bool
	Horizon         time.Duration
	Candidates      []types.TopicCandidate
	NamingRules     []refine.NamingRule
	LocationMarkers []string
	Tone            string
	Verbose         bool
	DryRun          bool
}

// Planner wires the planning stages together. Both collaborators are
// optional: a nil source forces degraded mode and a nil store (or
// DryRun) skips persistence.
type Planner struct {
	source    ContextSource
	store     BriefStore
	scheduler *schedule.Scheduler
	out       io.Writer
}

// New creates a Planner on the real clock, writing progress to stdout.
func New(source ContextSource, store BriefStore) *Planner {
	return &Planner{
		source:    source,
		store:     store,
		scheduler: schedule.New(),
		out:       os.Stdout,
	}
}

// SetOutput redirects progress output (used by tests and the server).
func (p *Planner) SetOutput(w io.Writer) { p.out = w }

// SetScheduler swaps the scheduler, letting tests pin the clock.
func (p *Planner) SetScheduler(s *schedule.Scheduler) { p.scheduler = s }

// Run executes one planning batch end to end: concurrent context
// fetch, the sequential per-candidate pass, pillar synthesis,
// scheduling, and persistence. The computed brief set is always
// returned, even when zero briefs were durably stored.
func (p *Planner) Run(ctx context.Context, opts RunOptions) (*types.PlanResult, error) {
	summary := types.NewRunSummary()

	fmt.Fprintf(p.out, "Step 1/6: Fetching site context...\n")
	idxResult := p.fetchContext(ctx, opts.SiteID)
	if idxResult.Degraded {
		fmt.Fprintf(p.out, "Warning: context fetch degraded (%s); cannibalization confidence reduced\n", idxResult.Reason)
		summary.Degraded = true
		summary.DegradedWhy = idxResult.Reason
	}
	idx := idxResult.Index

	fmt.Fprintf(p.out, "Step 2/6: Filtering %d candidates...\n", len(opts.Candidates))
	filtered := ingestion.Filter(opts.Candidates, opts.Count, opts.Clusters)
	summary.Skipped = filtered.Skipped
	if filtered.Skipped > 0 {
		fmt.Fprintf(p.out, "Warning: skipped %d malformed candidates\n", filtered.Skipped)
	}

	fmt.Fprintf(p.out, "Step 3/6: Building briefs for %d candidates...\n", len(filtered.Candidates))
	rules := intent.DefaultRules(opts.LocationMarkers)
	used := make(map[string]bool)
	briefs := make([]types.ContentBrief, 0, len(filtered.Candidates))
	for i := range filtered.Candidates {
		brief, flagged := p.buildBrief(&filtered.Candidates[i], used, idx, rules, &opts)
		if flagged {
			summary.FlaggedCount++
		}
		briefs = append(briefs, brief)
		if opts.Verbose {
			fmt.Fprintf(p.out, "[VERBOSE] %q -> primary=%q intent=%s risk=%s\n",
				brief.Title, brief.PrimaryKeyword, brief.Intent, brief.Cannibalization.Risk)
		}
	}

	if opts.IncludePillar {
		fmt.Fprintf(p.out, "Step 4/6: Synthesizing pillar briefs...\n")
		briefs = pillar.Synthesize(briefs, idx, opts.NamingRules)
	} else {
		fmt.Fprintf(p.out, "Step 4/6: Pillar synthesis disabled, skipping...\n")
	}

	fmt.Fprintf(p.out, "Step 5/6: Scheduling %d briefs...\n", len(briefs))
	p.scheduler.Spread(briefs, opts.Horizon)

	for _, b := range briefs {
		summary.Total++
		summary.ByIntent[b.Intent]++
		summary.ByRisk[b.Cannibalization.Risk]++
		if b.PageType == types.PagePillar {
			summary.PillarCount++
		}
	}

	result := &types.PlanResult{Briefs: briefs, Summary: summary}

	if p.store == nil || opts.DryRun {
		fmt.Fprintf(p.out, "Step 6/6: Persistence skipped (dry run)\n")
		return result, nil
	}

	fmt.Fprintf(p.out, "Step 6/6: Persisting briefs...\n")
	p.persist(ctx, opts.SiteID, result)
	return result, nil
}

// fetchContext reads the keyword inventory and existing content
// concurrently. Either read failing degrades the run to empty indices
// instead of aborting: degraded cannibalization detection is preferred
// over no briefs at all.
func (p *Planner) fetchContext(ctx context.Context, siteID uuid.UUID) contentindex.Result {
	if p.source == nil {
		return contentindex.DegradedResult("no context source configured")
	}

	var (
		kws        []types.KeywordRecord
		content    []types.ExistingContentRecord
		kwErr      error
		contentErr error
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		kws, kwErr = p.source.ListKeywords(gCtx, siteID)
		return nil
	})
	g.Go(func() error {
		content, contentErr = p.source.ListExistingContent(gCtx, siteID)
		return nil
	})
	_ = g.Wait() // goroutines report through kwErr/contentErr

	if kwErr != nil {
		return contentindex.DegradedResult(fmt.Sprintf("keyword inventory fetch failed: %v", kwErr))
	}
	if contentErr != nil {
		return contentindex.DegradedResult(fmt.Sprintf("existing content fetch failed: %v", contentErr))
	}
	return contentindex.Ok(contentindex.Build(kws, content))
}

// buildBrief runs stages 4.3-4.8 for one candidate. The used set is
// shared across the batch and mutated in allocation order, which is why
// this pass must stay sequential.
func (p *Planner) buildBrief(c *types.TopicCandidate, used map[string]bool, idx *contentindex.Index, rules []intent.Rule, opts *RunOptions) (types.ContentBrief, bool) {
	alloc := keywords.AllocatePrimary(c, used)

	brief := types.ContentBrief{
		ID:                uuid.New(),
		PageType:          types.PageSupporting,
		ParentCluster:     c.ParentTopic,
		PrimaryKeyword:    alloc.Primary,
		Intent:            intent.Classify(c.Title, c.Format, rules),
		SecondaryKeywords: keywords.SelectSecondary(c, alloc.Primary),
		Cannibalization:   cannibalization.Detect(alloc.Primary, c.ParentTopic, idx),
		InternalLinks:     links.Plan(c.ParentTopic, idx),
		Status:            types.StatusDraft,
		Metadata:          types.BriefMetadata{Tone: opts.Tone},
	}
	if c.ParentTopic != "" {
		brief.PageType = types.PageCluster
	}
	if c.Format != nil {
		brief.Metadata.MinWordCount = c.Format.MinWordCount
		brief.Metadata.MaxWordCount = c.Format.MaxWordCount
	}

	brief.Title = refine.Title(c.Title, alloc.Primary, c.ParentTopic, opts.NamingRules)
	brief.H1 = brief.Title
	brief.URLPath = refine.URLPath(c.ParentTopic, alloc.Primary, c.Title)

	flagged := !alloc.Unique
	if flagged {
		fmt.Fprintf(p.out, "Warning: no unique primary keyword available for %q, emitting with fallback %q\n", c.Title, alloc.Primary)
		brief.Metadata.Notes = append(brief.Metadata.Notes, "primary keyword is not unique within this batch; review before publishing")
	}
	return brief, flagged
}

// persist writes the run and its briefs. Failures are warnings: the
// caller still receives the full computed result.
func (p *Planner) persist(ctx context.Context, siteID uuid.UUID, result *types.PlanResult) {
	runID, err := p.store.CreateRun(ctx, siteID)
	if err != nil {
		fmt.Fprintf(p.out, "Warning: failed to create planning run: %v\n", err)
		return
	}
	result.RunID = runID

	result.Outcomes = p.store.SaveBriefs(ctx, runID, result.Briefs)
	stored := 0
	for _, o := range result.Outcomes {
		if o.Stored {
			stored++
		} else {
			fmt.Fprintf(p.out, "Warning: failed to store brief %q: %s\n", o.Title, o.Error)
		}
	}

	status := "completed"
	if stored < len(result.Briefs) {
		status = "failed"
	}
	if err := p.store.CompleteRun(ctx, runID, status, result.Summary); err != nil {
		fmt.Fprintf(p.out, "Warning: failed to complete planning run: %v\n", err)
	}
	fmt.Fprintf(p.out, "Stored %d/%d briefs (run: %s)\n", stored, len(result.Briefs), runID)
}
