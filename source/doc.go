// Package source provides ReachSource implementations for discovering the
// raw item universe of a run.
package source
