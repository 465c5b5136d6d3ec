package extractsos

import "github.com/SWOT-Confluence/extract-sos/types"

// Re-export types from the types subpackage.
//
// Type aliases give users a convenient extractsos.Plan, extractsos.Comm,
// etc. while letting the subpackages depend on types without importing the
// root package.
type (
	Plan       = types.Plan
	RankResult = types.RankResult
	Report     = types.Report
	Outcome    = types.Outcome
)

// Re-export interfaces from the types subpackage for convenience.
type (
	Comm             = types.Comm
	Processor        = types.Processor
	ProcessorFunc    = types.ProcessorFunc
	ReachSource      = types.ReachSource
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)

// Re-export Outcome constants from the types subpackage.
const (
	OutcomeInvalid = types.OutcomeInvalid
	OutcomeValid   = types.OutcomeValid
)
