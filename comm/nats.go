package comm

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/SWOT-Confluence/extract-sos/internal/kvutil"
	"github.com/SWOT-Confluence/extract-sos/types"
)

// NATSConfig configures the NATS-backed coordination transport.
type NATSConfig struct {
	// RunID namespaces all KV keys for one run so concurrent runs can share
	// a bucket. Must consist of letters, digits, '-' or '_'.
	RunID string `yaml:"runId"`

	// Bucket is the JetStream KV bucket used for coordination
	// (default: "extract-sos-coord").
	Bucket string `yaml:"bucket"`

	// BucketTTL expires coordination keys after the run (default: 1h).
	// Keys are rendezvous state, not durable data; they only need to outlive
	// the slowest rank.
	BucketTTL time.Duration `yaml:"bucketTtl"`

	// Rank is this participant's rank (0..Size-1).
	Rank int `yaml:"rank"`

	// Size is the fixed number of ranks in the group.
	Size int `yaml:"size"`
}

func (c *NATSConfig) setDefaults() {
	if c.RunID == "" {
		c.RunID = "run"
	}
	if c.Bucket == "" {
		c.Bucket = "extract-sos-coord"
	}
	if c.BucketTTL <= 0 {
		c.BucketTTL = time.Hour
	}
}

func (c *NATSConfig) validate() error {
	if c.Size < 1 {
		return types.ErrInvalidWorkerCount
	}
	if c.Rank < 0 || c.Rank >= c.Size {
		return types.ErrRankOutOfRange
	}
	for _, r := range c.RunID {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("invalid run ID %q: only letters, digits, '-' and '_' are allowed", c.RunID)
		}
	}

	return nil
}

// NATS coordinates ranks across processes through a JetStream KeyValue
// bucket.
//
// Every primitive is expressed as durable KV state rather than fire-and-
// forget messages, so ranks may join the group at any time without missing
// a peer's arrival:
//   - Broadcast: the source puts the plan under "<run>.plan.<seq>"; every
//     other rank watches that key until it appears.
//   - Barrier: each rank puts "<run>.barrier.<seq>.<rank>" and watches the
//     round's keys until all Size ranks are present.
//   - Gather: each rank puts its encoded result under
//     "<run>.gather.<seq>.<rank>"; all ranks watch until the round is
//     complete and the target decodes the entries in rank order.
//
// Rounds are numbered per operation, so the primitives can be reused as
// long as every rank makes the same calls in the same order.
type NATS struct {
	kv   jetstream.KeyValue
	cfg  NATSConfig
	seq  map[string]int
	root string
}

var _ types.Comm = (*NATS)(nil)

// NewNATS creates a NATS-backed coordination handle for one rank.
//
// All ranks of a run must use the same RunID, Bucket and Size. The bucket is
// created on first use; ranks racing to create it fall back to opening it.
//
// Parameters:
//   - ctx: Context for bucket creation
//   - nc: Connected NATS client with JetStream available
//   - cfg: Transport configuration
//
// Returns:
//   - *NATS: The rank's coordination handle
//   - error: Configuration or JetStream error
func NewNATS(ctx context.Context, nc *nats.Conn, cfg NATSConfig) (*NATS, error) {
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	kv, err := kvutil.EnsureBucket(ctx, js, jetstream.KeyValueConfig{
		Bucket: cfg.Bucket,
		TTL:    cfg.BucketTTL,
	}, 3)
	if err != nil {
		return nil, err
	}

	return &NATS{
		kv:   kv,
		cfg:  cfg,
		seq:  make(map[string]int),
		root: cfg.RunID,
	}, nil
}

// Rank returns this participant's rank.
func (n *NATS) Rank() int { return n.cfg.Rank }

// Size returns the fixed number of ranks in the group.
func (n *NATS) Size() int { return n.cfg.Size }

func (n *NATS) next(op string) int {
	s := n.seq[op]
	n.seq[op]++

	return s
}

// Broadcast distributes the plan from fromRank to every rank.
func (n *NATS) Broadcast(ctx context.Context, plan *types.Plan, fromRank int) (*types.Plan, error) {
	if fromRank < 0 || fromRank >= n.cfg.Size {
		return nil, types.ErrRankOutOfRange
	}

	key := fmt.Sprintf("%s.plan.%d", n.root, n.next("plan"))

	if n.cfg.Rank == fromRank {
		data, err := encodePlan(plan)
		if err != nil {
			return nil, err
		}
		if _, err := n.kv.Put(ctx, key, data); err != nil {
			return nil, fmt.Errorf("failed to publish plan: %w", err)
		}
	}

	received, err := n.waitForPlan(ctx, key)
	if err != nil {
		return nil, err
	}
	if received.Size() != n.cfg.Size {
		return nil, fmt.Errorf("plan built for %d ranks, group has %d: %w",
			received.Size(), n.cfg.Size, types.ErrGroupSizeMismatch)
	}

	return received, nil
}

func (n *NATS) waitForPlan(ctx context.Context, key string) (*types.Plan, error) {
	watcher, err := n.kv.Watch(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to watch plan key: %w", err)
	}
	defer func() { _ = watcher.Stop() }()

	for {
		select {
		case entry, ok := <-watcher.Updates():
			if !ok {
				return nil, fmt.Errorf("plan watcher closed before plan arrived")
			}
			if entry == nil || entry.Operation() != jetstream.KeyValuePut {
				continue
			}

			return decodePlan(entry.Value())
		case <-ctx.Done():
			return nil, fmt.Errorf("broadcast interrupted: %w", ctx.Err())
		}
	}
}

// Barrier blocks until every rank of the group has arrived.
func (n *NATS) Barrier(ctx context.Context) error {
	seq := n.next("barrier")
	prefix := fmt.Sprintf("%s.barrier.%d", n.root, seq)

	key := fmt.Sprintf("%s.%d", prefix, n.cfg.Rank)
	if _, err := n.kv.Put(ctx, key, []byte{1}); err != nil {
		return fmt.Errorf("failed to announce barrier arrival: %w", err)
	}

	_, err := n.collectRound(ctx, "barrier", prefix)

	return err
}

// Gather collects every rank's result at toRank.
func (n *NATS) Gather(ctx context.Context, result types.RankResult, toRank int) ([]types.RankResult, error) {
	if toRank < 0 || toRank >= n.cfg.Size {
		return nil, types.ErrRankOutOfRange
	}

	seq := n.next("gather")
	prefix := fmt.Sprintf("%s.gather.%d", n.root, seq)

	data, err := encodeResult(result)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("%s.%d", prefix, n.cfg.Rank)
	if _, err := n.kv.Put(ctx, key, data); err != nil {
		return nil, fmt.Errorf("failed to publish rank result: %w", err)
	}

	payloads, err := n.collectRound(ctx, "gather", prefix)
	if err != nil {
		return nil, err
	}
	if n.cfg.Rank != toRank {
		return nil, nil
	}

	gathered := make([]types.RankResult, n.cfg.Size)
	for rank, payload := range payloads {
		decoded, err := decodeResult(payload)
		if err != nil {
			return nil, err
		}
		gathered[rank] = decoded
	}

	return gathered, nil
}

// collectRound watches the round's keys until all Size ranks have put one,
// returning each rank's payload. The watch replays existing keys first, so
// arrivals are never missed regardless of rank timing.
func (n *NATS) collectRound(ctx context.Context, op, prefix string) ([][]byte, error) {
	watcher, err := n.kv.Watch(ctx, prefix+".*")
	if err != nil {
		return nil, fmt.Errorf("failed to watch %s round: %w", op, err)
	}
	defer func() { _ = watcher.Stop() }()

	payloads := make([][]byte, n.cfg.Size)
	arrived := 0
	for arrived < n.cfg.Size {
		select {
		case entry, ok := <-watcher.Updates():
			if !ok {
				return nil, fmt.Errorf("%s watcher closed before round completed", op)
			}
			if entry == nil || entry.Operation() != jetstream.KeyValuePut {
				continue
			}

			rank, err := rankFromKey(entry.Key())
			if err != nil {
				return nil, fmt.Errorf("unexpected %s key %q: %w", op, entry.Key(), err)
			}
			if rank >= n.cfg.Size {
				return nil, fmt.Errorf("peer rank %d beyond group size %d: %w",
					rank, n.cfg.Size, types.ErrGroupSizeMismatch)
			}
			if payloads[rank] != nil {
				continue
			}
			payloads[rank] = entry.Value()
			arrived++
		case <-ctx.Done():
			return nil, fmt.Errorf("%s interrupted: %w", op, ctx.Err())
		}
	}

	return payloads, nil
}

func rankFromKey(key string) (int, error) {
	idx := strings.LastIndexByte(key, '.')
	if idx < 0 {
		return 0, fmt.Errorf("no rank suffix")
	}
	rank, err := strconv.Atoi(key[idx+1:])
	if err != nil || rank < 0 {
		return 0, fmt.Errorf("malformed rank suffix %q", key[idx+1:])
	}

	return rank, nil
}
