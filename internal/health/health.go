// Package health aggregates readiness probes of backing services.
package health

import (
	"context"

	"github.com/polkiloo/userhub/internal/domain/repository"
)

// Probe names a dependency and the pinger used to check it.
// A nil Pinger marks the dependency as not configured.
type Probe struct {
	Name   string
	Pinger repository.Pinger
}

const (
	StatusOK            = "ok"
	StatusNotConfigured = "not configured"
)

// Report is the outcome of running every probe once.
type Report struct {
	Healthy bool
	Checks  map[string]string
}

// Check pings every configured probe and collects their status.
func Check(ctx context.Context, probes []Probe) Report {
	report := Report{Healthy: true, Checks: make(map[string]string, len(probes))}
	for _, p := range probes {
		if p.Pinger == nil {
			report.Checks[p.Name] = StatusNotConfigured
			continue
		}
		if err := p.Pinger.Ping(ctx); err != nil {
			report.Checks[p.Name] = "error: " + err.Error()
			report.Healthy = false
			continue
		}
		report.Checks[p.Name] = StatusOK
	}
	return report
}
