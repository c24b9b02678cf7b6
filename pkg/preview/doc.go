// Package preview serves a rendered manifest over HTTP for local
// development.
//
// The server renders the manifest on every request, so edits show up on
// refresh. With live reload enabled it also injects a small websocket
// client into the page and, combined with Watch, pushes a reload to every
// open browser tab when the manifest file changes.
//
// Endpoints:
//
//	GET /            rendered document
//	GET /healthz     liveness probe
//	GET /metrics     Prometheus metrics
//	GET /_livereload websocket reload channel (when enabled)
//
// Renders are traced with OpenTelemetry and counted in Prometheus.
package preview
