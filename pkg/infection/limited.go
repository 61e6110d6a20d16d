package infection

import (
	"container/heap"
	"context"
	"fmt"

	apperrors "github.com/matzehuels/infection/pkg/errors"
	"github.com/matzehuels/infection/pkg/member"
)

// InvalidRangeError is returned when the requested size range is unusable:
// a negative bound, or minUsers greater than maxUsers.
type InvalidRangeError struct {
	Min, Max int
}

// Error implements the error interface.
func (e *InvalidRangeError) Error() string {
	if e.Min < 0 || e.Max < 0 {
		return fmt.Sprintf("invalid range [%d, %d]: bounds must be non-negative", e.Min, e.Max)
	}
	return fmt.Sprintf("invalid range [%d, %d]: min exceeds max", e.Min, e.Max)
}

// Code returns the error code for this error type.
func (e *InvalidRangeError) Code() apperrors.Code {
	return apperrors.ErrCodeInvalidRange
}

// Step is one pick of the limited selector, in the order it happened.
type Step struct {
	ID      member.ID
	Badness int  // badness against the infected set before the pick
	Size    int  // infected set size after the pick
	Trimmed bool // removed from the final result as part of the bad tail
}

// Selection is the full outcome of a limited infection run.
type Selection struct {
	Infected member.Set // final result
	Trimmed  member.Set // picks removed as the trailing bad run
	Steps    []Step
	// Exhausted is set when the seed's component ran out of candidates
	// before maxUsers was reached.
	Exhausted bool
}

// Limited selects a connected set of members containing seed whose size
// lies in [minUsers, maxUsers] while keeping boundary edges low. The result
// is smaller than minUsers only when the seed's component is.
//
// Returns an *InvalidRangeError for negative bounds or minUsers > maxUsers,
// and an *member.UnknownMemberError if seed is not in g.
func Limited(g *member.Graph, seed member.ID, minUsers, maxUsers int) (member.Set, error) {
	return LimitedContext(context.Background(), g, seed, minUsers, maxUsers)
}

// LimitedContext is Limited with cooperative cancellation. ctx is checked
// once per pick; a cancelled run returns ctx.Err() and no set.
func LimitedContext(ctx context.Context, g *member.Graph, seed member.ID, minUsers, maxUsers int) (member.Set, error) {
	sel, err := LimitedTrace(ctx, g, seed, minUsers, maxUsers)
	if err != nil {
		return nil, err
	}
	return sel.Infected, nil
}

// LimitedTrace runs the limited selector and returns every pick along with
// the final set.
func LimitedTrace(ctx context.Context, g *member.Graph, seed member.ID, minUsers, maxUsers int) (*Selection, error) {
	if minUsers < 0 || maxUsers < 0 || minUsers > maxUsers {
		return nil, &InvalidRangeError{Min: minUsers, Max: maxUsers}
	}
	if !g.Has(seed) {
		return nil, &member.UnknownMemberError{ID: seed}
	}

	// The seed is never optional, even when minUsers is zero.
	floor := max(minUsers, 1)

	sel := &Selection{Infected: member.Set{}}
	infected := member.Set{}
	queue := candidateQueue{{id: seed, badness: 0}}
	var trimmer tailTrimmer

	for len(infected) < maxUsers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next := heap.Pop(&queue).(candidate)
		infected.Add(next.id)
		sel.Steps = append(sel.Steps, Step{ID: next.id, Badness: next.badness, Size: len(infected)})

		// The pick that exhausts the component still counts toward the tail.
		if len(infected) > floor {
			trimmer.observe(next.id, next.badness)
		}

		// Every pending badness depends on the infected set, so the pool is
		// rebuilt and rescored after each pick.
		links, _ := g.Links(next.id)
		pool := make(member.Set, len(queue)+len(links))
		for _, c := range queue {
			pool.Add(c.id)
		}
		for l := range links {
			if !infected.Has(l) {
				pool.Add(l)
			}
		}
		if len(pool) == 0 {
			sel.Exhausted = true
			break
		}
		queue = rescore(g, pool, infected)
	}

	sel.Trimmed = trimmer.tail()
	for id := range infected {
		if !sel.Trimmed.Has(id) {
			sel.Infected.Add(id)
		}
	}
	for i := range sel.Steps {
		sel.Steps[i].Trimmed = sel.Trimmed.Has(sel.Steps[i].ID)
	}
	return sel, nil
}
