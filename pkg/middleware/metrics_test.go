package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newRouter(mw func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(mw)
	r.Get("/demo/{name}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "name") == "broken" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	})
	return r
}

func serve(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestPrometheusRecordsByRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := newRouter(Prometheus(WithRegistry(reg), WithNamespace("test")))

	serve(r, "/demo/dialog")
	serve(r, "/demo/button")
	serve(r, "/demo/broken")
	serve(r, "/missing")

	m := newMetricsProbe(t, reg)
	if got := m.requests("/demo/{name}", "2xx"); got != 2 {
		t.Errorf("2xx requests = %v, want 2", got)
	}
	if got := m.requests("/demo/{name}", "5xx"); got != 1 {
		t.Errorf("5xx requests = %v, want 1", got)
	}
	if got := m.requests("unmatched", "4xx"); got != 1 {
		t.Errorf("unmatched requests = %v, want 1", got)
	}
}

func TestPrometheusInFlightReturnsToZero(t *testing.T) {
	reg := prometheus.NewRegistry()
	var during float64
	mw := Prometheus(WithRegistry(reg))

	r := chi.NewRouter()
	r.Use(mw)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		during = gaugeValue(t, reg, "primitives_http_requests_in_flight")
	})
	serve(r, "/")

	if during != 1 {
		t.Errorf("in flight during request = %v, want 1", during)
	}
	if after := gaugeValue(t, reg, "primitives_http_requests_in_flight"); after != 0 {
		t.Errorf("in flight after request = %v, want 0", after)
	}
}

func TestStatusClass(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{0, "2xx"},
		{200, "2xx"},
		{304, "3xx"},
		{404, "4xx"},
		{503, "5xx"},
		{42, "other"},
	}
	for _, tt := range tests {
		if got := statusClass(tt.status); got != tt.want {
			t.Errorf("statusClass(%d) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

type metricsProbe struct {
	t   *testing.T
	reg *prometheus.Registry
}

func newMetricsProbe(t *testing.T, reg *prometheus.Registry) metricsProbe {
	return metricsProbe{t: t, reg: reg}
}

func (p metricsProbe) requests(route, status string) float64 {
	p.t.Helper()
	families, err := p.reg.Gather()
	if err != nil {
		p.t.Fatalf("Gather() error = %v", err)
	}
	for _, f := range families {
		if f.GetName() != "test_http_requests_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["route"] == route && labels["status"] == status {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func gaugeValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	n, err := testutil.GatherAndCount(reg, name)
	if err != nil {
		t.Fatalf("GatherAndCount() error = %v", err)
	}
	if n != 1 {
		t.Fatalf("%s series = %d, want 1", name, n)
	}
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	for _, f := range families {
		if f.GetName() == name {
			return f.GetMetric()[0].GetGauge().GetValue()
		}
	}
	return -1
}
