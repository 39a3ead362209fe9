package health

import (
	"context"
	"errors"
	"testing"
)

type pingerFunc func(context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestCheck(t *testing.T) {
	ok := pingerFunc(func(context.Context) error { return nil })
	failing := pingerFunc(func(context.Context) error { return errors.New("refused") })

	tests := []struct {
		name    string
		probes  []Probe
		healthy bool
		checks  map[string]string
	}{
		{name: "no probes", healthy: true, checks: map[string]string{}},
		{
			name:    "all ok",
			probes:  []Probe{{Name: "storage", Pinger: ok}, {Name: "redis", Pinger: ok}},
			healthy: true,
			checks:  map[string]string{"storage": StatusOK, "redis": StatusOK},
		},
		{
			name:    "not configured does not fail",
			probes:  []Probe{{Name: "storage", Pinger: ok}, {Name: "redis"}},
			healthy: true,
			checks:  map[string]string{"storage": StatusOK, "redis": StatusNotConfigured},
		},
		{
			name:    "failure",
			probes:  []Probe{{Name: "storage", Pinger: failing}},
			healthy: false,
			checks:  map[string]string{"storage": "error: refused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Check(context.Background(), tt.probes)
			if report.Healthy != tt.healthy {
				t.Fatalf("expected healthy=%v, got %v", tt.healthy, report.Healthy)
			}
			if len(report.Checks) != len(tt.checks) {
				t.Fatalf("expected %d checks, got %v", len(tt.checks), report.Checks)
			}
			for name, want := range tt.checks {
				if got := report.Checks[name]; got != want {
					t.Fatalf("check %q: expected %q, got %q", name, want, got)
				}
			}
		})
	}
}
