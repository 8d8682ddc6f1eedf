// Package pipeline orchestrates a search end to end: fan out to every
// configured source, merge in priority order, deduplicate, score against the
// candidate profile and rank. Sources fail independently; the pipeline keeps
// whatever the others returned and reports failures as per-source
// diagnostics.
package pipeline

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/careerpilot/jobmatch/internal/listing"
	"github.com/careerpilot/jobmatch/internal/profile"
	"github.com/careerpilot/jobmatch/internal/scoring"
	"github.com/careerpilot/jobmatch/internal/source"
)

// DefaultTopN caps the ranked result set when the caller does not override it.
const DefaultTopN = 20

// Diagnostic records why a source contributed nothing to a search.
type Diagnostic struct {
	Source  string `json:"source"`
	Message string `json:"message"`
}

// NoResultsError is returned when a search yields zero listings. It carries
// the per-source diagnostics so callers can distinguish "no listings exist"
// from "all providers failed".
type NoResultsError struct {
	Diagnostics []Diagnostic
}

func (e *NoResultsError) Error() string {
	if len(e.Diagnostics) == 0 {
		return "no listings found"
	}

	parts := make([]string, 0, len(e.Diagnostics))
	for _, diag := range e.Diagnostics {
		parts = append(parts, fmt.Sprintf("%s: %s", diag.Source, diag.Message))
	}
	return "no listings found: " + strings.Join(parts, "; ")
}

// AllSourcesFailed reports whether every configured source produced a
// diagnostic, i.e. the empty result reflects provider failures rather than a
// genuinely empty market.
func (e *NoResultsError) AllSourcesFailed(configured int) bool {
	return configured > 0 && len(e.Diagnostics) == configured
}

// Pipeline wires the sources, the scoring engine and the result policy
// together. Source order expresses dedup priority: the first source's record
// wins when two sources surface the same posting.
type Pipeline struct {
	sources []source.Source
	engine  *scoring.Engine
	logger  *zap.Logger
	topN    int
}

func New(sources []source.Source, engine *scoring.Engine, logger *zap.Logger, topN int) *Pipeline {
	if topN <= 0 {
		topN = DefaultTopN
	}

	return &Pipeline{
		sources: sources,
		engine:  engine,
		logger:  logger,
		topN:    topN,
	}
}

// Search runs the full aggregation for one request and returns the ranked
// matches. The returned error is a *NoResultsError when nothing survived;
// partial provider failures do not fail the search as long as one source
// returned listings.
func (p *Pipeline) Search(ctx context.Context, candidate *profile.Candidate, query, location string) (*Result, error) {
	perSource := make([]*listing.Listings, len(p.sources))
	failures := make([]error, len(p.sources))

	var group errgroup.Group
	for idx, src := range p.sources {
		idx, src := idx, src
		group.Go(func() error {
			found, err := src.Search(ctx, query, location)
			if err != nil {
				failures[idx] = err
				return nil
			}
			perSource[idx] = found
			return nil
		})
	}
	// The closures never return errors; failures land in the diagnostics.
	_ = group.Wait()

	diagnostics := make([]Diagnostic, 0, len(p.sources))
	merged := &listing.Listings{}
	for idx, src := range p.sources {
		if failures[idx] != nil {
			diagnostics = append(diagnostics, Diagnostic{Source: src.Name(), Message: failures[idx].Error()})
			p.logger.Warn("source failed",
				zap.String("source", src.Name()),
				zap.Error(failures[idx]),
			)
			continue
		}

		p.logger.Info("source returned listings",
			zap.String("source", src.Name()),
			zap.Int("count", perSource[idx].Len()),
		)
		merged.Append(perSource[idx])
	}

	initial := merged.Len()
	deduped := merged.Dedupe()
	p.logger.Info("deduplication",
		zap.Int("initial", initial),
		zap.Int("dropped", initial-deduped.Len()),
		zap.Int("left", deduped.Len()),
	)

	if deduped.Len() == 0 {
		return nil, &NoResultsError{Diagnostics: diagnostics}
	}

	matches := p.rank(candidate, deduped)

	return &Result{
		Query:       query,
		Location:    location,
		Matches:     matches,
		Diagnostics: diagnostics,
	}, nil
}

// rank scores every record, stable-sorts descending by score (ties keep the
// priority-ordered input order) and truncates to the top N.
func (p *Pipeline) rank(candidate *profile.Candidate, deduped *listing.Listings) []Match {
	matches := make([]Match, 0, deduped.Len())
	for _, record := range deduped.Items {
		matches = append(matches, Match{
			Listing: record,
			Fit:     p.engine.Score(candidate, record),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Fit.Score > matches[j].Fit.Score
	})

	if len(matches) > p.topN {
		matches = matches[:p.topN]
	}

	if len(matches) > 0 {
		p.logger.Info("ranking",
			zap.Int("returned", len(matches)),
			zap.Int("top_score", matches[0].Fit.Score),
			zap.Int("bottom_score", matches[len(matches)-1].Fit.Score),
		)
	}

	return matches
}

// SourceCount returns the number of configured sources.
func (p *Pipeline) SourceCount() int {
	return len(p.sources)
}
