package comm

import (
	"context"
	"fmt"
	"sync"

	"github.com/SWOT-Confluence/extract-sos/types"
	"github.com/puzpuzpuz/xsync/v4"
)

// localGroup holds the rendezvous state shared by all Local participants.
//
// Each collective call joins a round keyed by operation and per-rank call
// sequence, so the primitives can be reused any number of times as long as
// every rank makes the same calls in the same order.
type localGroup struct {
	size   int
	rounds *xsync.Map[string, *localRound]
}

type localRound struct {
	mu      sync.Mutex
	arrived int
	done    chan struct{}
	plan    *types.Plan
	results []types.RankResult
}

// Local is one rank's handle on an in-process coordination group.
//
// A Local must only be used by the goroutine driving its rank; the group
// state behind it is safe for all ranks concurrently.
type Local struct {
	group *localGroup
	rank  int
	seq   map[string]int
}

var _ types.Comm = (*Local)(nil)

// NewLocalGroup creates a coordination group of size ranks within one
// process.
//
// Element i of the returned slice is rank i's handle. Useful for tests and
// for running a whole pool as goroutines in a single process.
//
// Parameters:
//   - size: Number of ranks in the group (must be >= 1)
//
// Returns:
//   - []*Local: One handle per rank, indexed by rank
//   - error: types.ErrInvalidWorkerCount when size < 1
func NewLocalGroup(size int) ([]*Local, error) {
	if size < 1 {
		return nil, types.ErrInvalidWorkerCount
	}

	group := &localGroup{
		size:   size,
		rounds: xsync.NewMap[string, *localRound](),
	}

	handles := make([]*Local, size)
	for rank := range size {
		handles[rank] = &Local{
			group: group,
			rank:  rank,
			seq:   make(map[string]int),
		}
	}

	return handles, nil
}

// Rank returns this participant's rank.
func (l *Local) Rank() int { return l.rank }

// Size returns the fixed number of ranks in the group.
func (l *Local) Size() int { return l.group.size }

// join returns the current round for op, advancing this rank's sequence.
func (l *Local) join(op string) *localRound {
	n := l.seq[op]
	l.seq[op]++

	key := fmt.Sprintf("%s/%d", op, n)
	fresh := &localRound{
		done:    make(chan struct{}),
		results: make([]types.RankResult, l.group.size),
	}
	round, _ := l.group.rounds.LoadOrStore(key, fresh)

	return round
}

// arrive marks this rank present and closes the round once all have arrived.
func (l *Local) arrive(round *localRound, contribute func(*localRound)) {
	round.mu.Lock()
	if contribute != nil {
		contribute(round)
	}
	round.arrived++
	complete := round.arrived == l.group.size
	round.mu.Unlock()

	if complete {
		close(round.done)
	}
}

// Broadcast distributes the plan from fromRank to every rank in the group.
func (l *Local) Broadcast(ctx context.Context, plan *types.Plan, fromRank int) (*types.Plan, error) {
	if fromRank < 0 || fromRank >= l.group.size {
		return nil, types.ErrRankOutOfRange
	}

	round := l.join("broadcast")
	var contribute func(*localRound)
	if l.rank == fromRank {
		contribute = func(r *localRound) { r.plan = plan }
	}
	l.arrive(round, contribute)

	select {
	case <-round.done:
		return round.plan, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("broadcast interrupted: %w", ctx.Err())
	}
}

// Barrier blocks until every rank in the group has called it.
func (l *Local) Barrier(ctx context.Context) error {
	round := l.join("barrier")
	l.arrive(round, nil)

	select {
	case <-round.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("barrier interrupted: %w", ctx.Err())
	}
}

// Gather collects every rank's result at toRank.
func (l *Local) Gather(ctx context.Context, result types.RankResult, toRank int) ([]types.RankResult, error) {
	if toRank < 0 || toRank >= l.group.size {
		return nil, types.ErrRankOutOfRange
	}

	round := l.join("gather")
	rank := l.rank
	l.arrive(round, func(r *localRound) { r.results[rank] = result })

	select {
	case <-round.done:
	case <-ctx.Done():
		return nil, fmt.Errorf("gather interrupted: %w", ctx.Err())
	}

	if l.rank != toRank {
		return nil, nil
	}

	gathered := make([]types.RankResult, l.group.size)
	copy(gathered, round.results)

	return gathered, nil
}
