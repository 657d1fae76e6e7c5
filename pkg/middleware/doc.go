// Package middleware provides net/http middleware for the preview server:
// Prometheus request metrics and OpenTelemetry request tracing.
//
// Both label requests by their chi route pattern ("/demo/{name}") rather
// than the raw path, which keeps label cardinality bounded.
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry(middleware.WithTracerName("preview")))
//	r.Use(middleware.Prometheus(middleware.WithRegistry(reg)))
//	r.Get("/demo/{name}", demoHandler)
//	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
//
// # Prometheus Metrics
//
//   - primitives_http_requests_total: requests by route and status class
//   - primitives_http_request_duration_seconds: latency histogram by route
//   - primitives_http_requests_in_flight: requests being served
//
// # OpenTelemetry
//
// Each request gets a server span named after its method and route, with
// the span in the request context so handlers can add attributes:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    middleware.SpanFromContext(r.Context()).SetAttributes(attribute.String("demo", name))
//	}
//
// The tracer comes from the global provider unless WithTracerProvider is
// used. Configure the global provider in main() before serving.
package middleware
