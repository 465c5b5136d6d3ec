package types

import "context"

// Comm provides the collective operations a fixed pool of ranks uses to
// coordinate a run: a broadcast of the plan, a completion barrier, and a
// gather of per-rank results.
//
// All three calls are collective: every rank in the group must make the
// matching call, and each call blocks until the whole group has arrived.
// A rank that crashes or never calls the matching primitive stalls the
// run; there is no timeout at this layer. Transports that cross process
// boundaries honor context cancellation so a caller can at least turn an
// indefinite stall into an error.
//
// Implementations:
//   - comm.Local: channel rendezvous within one process
//   - comm.NATS: NATS JetStream KV + core subjects across processes
//   - comm.AMQP: RabbitMQ exchanges and queues across processes
type Comm interface {
	// Rank returns this participant's rank (0..Size()-1).
	Rank() int

	// Size returns the fixed number of ranks in the group.
	Size() int

	// Broadcast distributes the plan from fromRank to every rank.
	//
	// The source rank passes the plan to send; every other rank passes nil.
	// All ranks receive an identical copy (the source gets its own plan
	// back). Blocks until every rank holds the plan.
	Broadcast(ctx context.Context, plan *Plan, fromRank int) (*Plan, error)

	// Barrier blocks until all ranks in the group have called it.
	Barrier(ctx context.Context) error

	// Gather collects one RankResult from every rank at toRank.
	//
	// The target rank receives the results ordered by rank; every other
	// rank receives nil. Blocks until all ranks have supplied a result.
	Gather(ctx context.Context, result RankResult, toRank int) ([]RankResult, error)
}
