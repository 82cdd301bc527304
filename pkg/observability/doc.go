/*
Package observability provides lifecycle hooks and Prometheus metrics for
use case executions.

Hooks are plain callback structs fired by the engine around executions and
steps. Metrics wraps a Prometheus registerer and returns Hooks that record an
execution counter (labelled by use case and outcome status) and a duration
histogram.
*/
package observability
