// Package extractsos coordinates a fixed-size pool of parallel workers that
// process a large set of independently-keyed river reaches and merges the
// per-worker outcomes into one consolidated report.
//
// Rank 0 derives the deduplicated reach set from a data source, splits it
// into balanced per-rank assignments, and broadcasts the plan. Every rank
// (rank 0 included) processes its slice, a barrier guarantees all local work
// is finished, and the results are gathered back to rank 0 for aggregation
// and reporting.
//
// # Quick Start
//
// Run a whole pool as goroutines in one process:
//
//	group, _ := comm.NewLocalGroup(4)
//
//	cfg := extractsos.Config{DataDir: "/data/swot", LogDir: "/var/log/sos"}
//	src := source.NewDir(cfg.DataDir)
//
//	for _, handle := range group {
//	    go func() {
//	        runner, _ := extractsos.NewRunner(&cfg, handle, src, proc)
//	        report, err := runner.Run(ctx)
//	        // rank 0 receives the report; other ranks get nil
//	    }()
//	}
//
// For multi-process deployments swap the Local transport for comm.NATS or
// comm.AMQP; the runner is transport-agnostic.
//
// # Coordination contract
//
// Broadcast, barrier and gather are collective: every rank must make the
// matching call and each call blocks until the whole group arrives. A rank
// that crashes mid-run stalls the group; there is no partial-result path.
// Per-reach processing failures, by contrast, never abort a run: the
// processor resolves them to an invalid classification and the run
// continues.
//
// See the examples/ directory for complete working examples.
package extractsos
