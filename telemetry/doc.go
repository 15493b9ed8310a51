// Package telemetry builds the structured logger and the Prometheus metrics
// shared by the stepviz command.
//
// Metrics live on a private registry, never the global default, so several
// Metrics values can coexist in one process and in tests.
package telemetry
