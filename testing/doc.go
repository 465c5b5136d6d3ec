// Package testing provides helpers for exercising extract-sos against real
// infrastructure in tests: an embedded NATS server with JetStream enabled
// and a Logger implementation that records to the test log.
package testing
