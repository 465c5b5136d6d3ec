package extractsos

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/SWOT-Confluence/extract-sos/internal/logging"
	"github.com/SWOT-Confluence/extract-sos/internal/metrics"
	"github.com/SWOT-Confluence/extract-sos/plan"
	"github.com/SWOT-Confluence/extract-sos/report"
	"github.com/SWOT-Confluence/extract-sos/types"
)

// Runner drives one rank through a complete run.
//
// Every rank of the pool constructs its own Runner around its coordination
// handle and calls Run. The coordinator rank (rank 0) additionally plans the
// run and writes the consolidated report; the code path is otherwise
// identical on every rank.
//
// A Runner is single-use: Run may be called once.
type Runner struct {
	cfg       Config
	comm      types.Comm
	source    types.ReachSource
	processor types.Processor

	logger  types.Logger
	metrics types.MetricsCollector
	rankLog io.Writer
	mainLog io.Writer

	ran atomic.Bool
}

// NewRunner creates a Runner for one rank of the pool.
//
// Returns a concrete *Runner following the "accept interfaces, return
// structs" principle; consumers can define their own narrow interface for
// mocking.
//
// Parameters:
//   - cfg: Run configuration
//   - comm: This rank's coordination handle (fixes rank and group size)
//   - source: Reach source, consulted by the coordinator rank only
//   - processor: The processing unit applied to each assigned reach
//   - opts: Optional logger, metrics and log sinks
//
// Returns:
//   - *Runner: Initialized runner
//   - error: Validation error when a required collaborator is missing
func NewRunner(
	cfg *Config,
	comm types.Comm,
	source types.ReachSource,
	processor types.Processor,
	opts ...Option,
) (*Runner, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if comm == nil {
		return nil, ErrCommRequired
	}
	if source == nil {
		return nil, ErrReachSourceRequired
	}
	if processor == nil {
		return nil, ErrProcessorRequired
	}

	options := &runnerOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = logging.NewNop()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}
	// Explicit sinks bypass the config entirely; anything falling back to
	// LogDir needs a structurally valid config first.
	if options.rankLog == nil || (comm.Rank() == CoordinatorRank && options.mainLog == nil) {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		if cfg.LogDir == "" {
			return nil, ErrLogSinkRequired
		}
	}

	return &Runner{
		cfg:       *cfg,
		comm:      comm,
		source:    source,
		processor: processor,
		logger:    options.logger,
		metrics:   options.metrics,
		rankLog:   options.rankLog,
		mainLog:   options.mainLog,
	}, nil
}

// Run executes the full coordination protocol for this rank.
//
// The coordinator plans and broadcasts, every rank processes its slice, the
// barrier guarantees all local work (and all rank log writes) finished, the
// results are gathered, and the coordinator aggregates and reports.
//
// Per-reach failures are contained by the processor and never abort the
// run. Configuration and discovery errors surface before any coordination
// begins. A peer that never arrives at a collective call blocks Run until
// ctx is cancelled.
//
// Returns:
//   - *types.Report: The consolidated report on the coordinator rank; nil
//     on every other rank
//   - error: Fatal run error
func (r *Runner) Run(ctx context.Context) (*types.Report, error) {
	if r.ran.Swap(true) {
		return nil, ErrAlreadyRun
	}

	rank := r.comm.Rank()
	size := r.comm.Size()

	rankLog, mainLog, closeLogs, err := r.openSinks(rank)
	if err != nil {
		return nil, err
	}
	defer closeLogs()

	var runPlan *types.Plan
	if rank == CoordinatorRank {
		runPlan, err = r.buildPlan(ctx, size, mainLog)
		if err != nil {
			return nil, err
		}
	}

	start := time.Now()
	runPlan, err = r.comm.Broadcast(ctx, runPlan, CoordinatorRank)
	if err != nil {
		return nil, fmt.Errorf("plan broadcast failed: %w", err)
	}
	r.metrics.RecordPhaseDuration("broadcast", time.Since(start).Seconds())

	assigned := runPlan.Slice(rank)
	r.logger.Info("assignment received", "rank", rank, "reaches", len(assigned))

	start = time.Now()
	result := RunSession(ctx, rank, assigned, r.processor, rankLog, r.metrics)
	r.metrics.RecordPhaseDuration("process", time.Since(start).Seconds())
	r.logger.Info("local processing complete",
		"rank", rank, "valid", len(result.Valid), "invalid", len(result.Invalid))

	if err := r.comm.Barrier(ctx); err != nil {
		return nil, fmt.Errorf("completion barrier failed: %w", err)
	}

	start = time.Now()
	results, err := r.comm.Gather(ctx, result, CoordinatorRank)
	if err != nil {
		return nil, fmt.Errorf("result gather failed: %w", err)
	}
	r.metrics.RecordPhaseDuration("gather", time.Since(start).Seconds())

	if rank != CoordinatorRank {
		return nil, nil
	}

	aggregated := report.Aggregate(results)
	if err := report.NewEmitter(mainLog).EmitReport(aggregated); err != nil {
		return nil, err
	}
	r.logger.Info("run complete",
		"totalValid", aggregated.TotalValid, "totalInvalid", aggregated.TotalInvalid)

	return &aggregated, nil
}

// buildPlan discovers the raw item universe, derives and splits the reach
// set, and writes the plan summary to the coordinator stream.
func (r *Runner) buildPlan(ctx context.Context, size int, mainLog io.Writer) (*types.Plan, error) {
	start := time.Now()

	rawIDs, err := r.source.ListRawIDs(ctx)
	if err != nil {
		// An unreachable source is a configuration problem, surfaced before
		// any coordination begins.
		return nil, fmt.Errorf("%w: reach discovery failed: %w", ErrInvalidConfig, err)
	}

	runPlan, err := plan.Build(rawIDs, size)
	if err != nil {
		return nil, err
	}
	for rank, reaches := range runPlan.Assignments {
		r.metrics.RecordPlanSize(rank, len(reaches))
	}
	r.metrics.RecordPhaseDuration("plan", time.Since(start).Seconds())
	r.logger.Info("plan built", "reaches", runPlan.Total(), "ranks", size)

	if err := report.NewEmitter(mainLog).EmitPlan(runPlan); err != nil {
		return nil, err
	}

	return runPlan, nil
}

// openSinks resolves the rank and coordinator log streams, creating files
// under LogDir unless explicit sinks were supplied.
func (r *Runner) openSinks(rank int) (rankLog, mainLog io.Writer, closeLogs func(), err error) {
	var files []*os.File
	closeLogs = func() {
		for _, f := range files {
			_ = f.Close()
		}
	}

	rankLog = r.rankLog
	if rankLog == nil {
		f, ferr := os.OpenFile(
			filepath.Join(r.cfg.LogDir, fmt.Sprintf("%d.log", rank)),
			os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if ferr != nil {
			return nil, nil, closeLogs, fmt.Errorf("failed to open rank log: %w", ferr)
		}
		files = append(files, f)
		rankLog = f
	}

	if rank == CoordinatorRank {
		mainLog = r.mainLog
		if mainLog == nil {
			f, ferr := os.OpenFile(
				filepath.Join(r.cfg.LogDir, "main.log"),
				os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if ferr != nil {
				closeLogs()
				return nil, nil, func() {}, fmt.Errorf("failed to open main log: %w", ferr)
			}
			files = append(files, f)
			mainLog = f
		}
	}

	return rankLog, mainLog, closeLogs, nil
}
