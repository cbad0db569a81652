// Package observability provides Prometheus instrumentation for the decoder.
package observability
