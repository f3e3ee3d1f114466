/*
Package observability provides Prometheus instrumentation for the waterjug engine and its
HTTP adapter.

Metrics are registered on a caller supplied registry so tests and embedders can keep them
isolated from the global default. Hooks turns the collectors into domain.LifecycleHooks that
the Engine fires around every solve.
*/
package observability
