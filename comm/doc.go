// Package comm implements the collective operations (broadcast, barrier,
// gather) a fixed group of ranks uses to coordinate a run.
//
// Three transports implement types.Comm:
//   - Local: channel rendezvous between goroutines in one process
//   - NATS: JetStream KeyValue coordination across processes
//   - AMQP: RabbitMQ queues across processes
//
// All transports share the collective contract: every rank must make the
// matching call, each call blocks until the whole group arrives, and a rank
// that never arrives stalls the group. The network transports honor context
// cancellation so a stall can be surfaced as an error instead of a hang.
package comm
