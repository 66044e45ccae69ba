package scoring

import (
	"context"
	"errors"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/skillpath/internal/types"
)

// scoreWorkers bounds the per-role scoring fan-out. Scoring is pure CPU
// work, so a small fixed limit is enough.
const scoreWorkers = 4

// ScoreRoles scores a batch of candidate roles in parallel. Per-role
// failures are absorbed into RoleReports instead of failing the batch.
// Results are recombined into the canonical order — score descending, then
// title ascending — so parallel execution never affects output, and the
// untrusted payload's insertion order never leaks into results.
func (s *Scorer) ScoreRoles(ctx context.Context, skills *types.SkillSet, roles []types.CandidateRole) ([]types.ScoredRole, []types.RoleReport, error) {
	scored := make([]*types.ScoredRole, len(roles))
	reports := make([]*types.RoleReport, len(roles))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(scoreWorkers)

	for i, role := range roles {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			result, err := s.Score(skills, role)
			if err != nil {
				var invalid *InvalidRoleError
				if errors.As(err, &invalid) {
					reports[i] = &types.RoleReport{Title: invalid.Title, Reason: invalid.Reason}
					return nil
				}
				return err
			}
			scored[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	results := make([]types.ScoredRole, 0, len(roles))
	for _, r := range scored {
		if r != nil {
			results = append(results, *r)
		}
	}
	excluded := make([]types.RoleReport, 0)
	for _, r := range reports {
		if r != nil {
			excluded = append(excluded, *r)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Title < results[j].Title
	})

	return results, excluded, nil
}
