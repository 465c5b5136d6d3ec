package comm

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/SWOT-Confluence/extract-sos/types"
)

func TestNewLocalGroup(t *testing.T) {
	t.Run("creates one handle per rank", func(t *testing.T) {
		group, err := NewLocalGroup(3)

		require.NoError(t, err)
		require.Len(t, group, 3)
		for rank, handle := range group {
			require.Equal(t, rank, handle.Rank())
			require.Equal(t, 3, handle.Size())
		}
	})

	t.Run("rejects sizes below one", func(t *testing.T) {
		_, err := NewLocalGroup(0)
		require.ErrorIs(t, err, types.ErrInvalidWorkerCount)
	})
}

func TestLocal_Broadcast(t *testing.T) {
	t.Run("every rank receives the source's plan", func(t *testing.T) {
		group, err := NewLocalGroup(4)
		require.NoError(t, err)

		plan := &types.Plan{Assignments: [][]string{{"1_2"}, {"3_4"}, {}, {"5_6"}}}

		var wg sync.WaitGroup
		received := make([]*types.Plan, 4)
		errs := make([]error, 4)
		for rank, handle := range group {
			wg.Add(1)
			go func() {
				defer wg.Done()
				sent := (*types.Plan)(nil)
				if rank == 0 {
					sent = plan
				}
				received[rank], errs[rank] = handle.Broadcast(context.Background(), sent, 0)
			}()
		}
		wg.Wait()

		for rank := range group {
			require.NoError(t, errs[rank])
			require.Equal(t, plan.Assignments, received[rank].Assignments)
		}
	})

	t.Run("rejects an out-of-range source rank", func(t *testing.T) {
		group, err := NewLocalGroup(2)
		require.NoError(t, err)

		_, err = group[0].Broadcast(context.Background(), &types.Plan{}, 2)
		require.ErrorIs(t, err, types.ErrRankOutOfRange)
	})
}

func TestLocal_Barrier(t *testing.T) {
	t.Run("no rank passes until all arrive", func(t *testing.T) {
		group, err := NewLocalGroup(3)
		require.NoError(t, err)

		passed := make(chan int, 3)
		for i, handle := range group {
			go func() {
				if err := handle.Barrier(context.Background()); err == nil {
					passed <- handle.Rank()
				}
			}()
			if i == len(group)-1 {
				break
			}
			// Stagger arrivals; early ranks must still be blocked.
			select {
			case rank := <-passed:
				t.Fatalf("rank %d passed the barrier before the group arrived", rank)
			case <-time.After(20 * time.Millisecond):
			}
		}

		for range 3 {
			select {
			case <-passed:
			case <-time.After(time.Second):
				t.Fatal("barrier never released")
			}
		}
	})

	t.Run("is reusable across rounds", func(t *testing.T) {
		group, err := NewLocalGroup(2)
		require.NoError(t, err)

		var wg sync.WaitGroup
		for _, handle := range group {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 5 {
					require.NoError(t, handle.Barrier(context.Background()))
				}
			}()
		}
		wg.Wait()
	})

	t.Run("a cancelled context surfaces the stall", func(t *testing.T) {
		group, err := NewLocalGroup(2)
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		// Rank 1 never arrives.
		err = group[0].Barrier(ctx)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestLocal_Gather(t *testing.T) {
	t.Run("target receives results in rank order, others nil", func(t *testing.T) {
		group, err := NewLocalGroup(3)
		require.NoError(t, err)

		var wg sync.WaitGroup
		gathered := make([][]types.RankResult, 3)
		for rank, handle := range group {
			wg.Add(1)
			go func() {
				defer wg.Done()
				result := types.RankResult{
					Rank:  rank,
					Valid: []string{fmt.Sprintf("%d_%d", rank, rank)},
				}
				var gerr error
				gathered[rank], gerr = handle.Gather(context.Background(), result, 0)
				require.NoError(t, gerr)
			}()
		}
		wg.Wait()

		require.Nil(t, gathered[1])
		require.Nil(t, gathered[2])
		require.Len(t, gathered[0], 3)
		for rank, result := range gathered[0] {
			require.Equal(t, rank, result.Rank)
			require.Equal(t, []string{fmt.Sprintf("%d_%d", rank, rank)}, result.Valid)
		}
	})

	t.Run("rejects an out-of-range target rank", func(t *testing.T) {
		group, err := NewLocalGroup(2)
		require.NoError(t, err)

		_, err = group[0].Gather(context.Background(), types.RankResult{}, -1)
		require.ErrorIs(t, err, types.ErrRankOutOfRange)
	})
}
