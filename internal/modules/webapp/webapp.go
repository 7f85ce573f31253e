// internal/modules/webapp/webapp.go

// Package webapp synthesizes web application analysis findings:
// fingerprinted technologies, response headers and endpoint findings.
// Placeholder for a real HTTP analyzer backend.
package webapp

import (
	"context"
	"fmt"

	"mirage/internal/core/domain"
	"mirage/internal/core/ports"
	"mirage/internal/modules/common"
	"mirage/internal/platform/logx"
	"mirage/internal/platform/randx"
)

const baseUnits = 5

// Analyzer implements the webapp module.
type Analyzer struct {
	logger logx.Logger
	rng    randx.Rand
}

// New creates the analyzer.
func New(logger logx.Logger, rng randx.Rand) *Analyzer {
	return &Analyzer{
		logger: logger.With("module", "webapp"),
		rng:    rng,
	}
}

// Name returns the module name.
func (a *Analyzer) Name() domain.ModuleName {
	return domain.ModuleWebApp
}

// Description returns a one-line description.
func (a *Analyzer) Description() string {
	return "web application analysis (technologies, headers, endpoints)"
}

// TaskCount returns the number of work units for this config.
func (a *Analyzer) TaskCount(_ domain.Target, cfg domain.ScanConfig) int {
	return baseUnits * cfg.VolumeFactor()
}

// Run synthesizes records unit by unit, advancing the sink per unit.
func (a *Analyzer) Run(ctx context.Context, target domain.Target, cfg domain.ScanConfig, sink ports.TaskSink) ([]*domain.Record, error) {
	units := a.TaskCount(target, cfg)
	return common.RunUnits(ctx, units, a.rng, sink, func(unit int) []*domain.Record {
		switch unit % 3 {
		case 0:
			return []*domain.Record{a.technology(target)}
		case 1:
			return []*domain.Record{a.header(target)}
		default:
			return []*domain.Record{a.endpoint(target)}
		}
	})
}

// Close releases resources (none held).
func (a *Analyzer) Close() error {
	return nil
}

func (a *Analyzer) technology(target domain.Target) *domain.Record {
	tech := technologies[a.rng.Intn(len(technologies))]
	return domain.NewRecord(domain.RecordTypeTechnology, tech.name, "webapp").
		WithField("version", tech.version).
		WithField("category", tech.category).
		WithField("url", "https://"+target.Domain)
}

func (a *Analyzer) header(target domain.Target) *domain.Record {
	h := responseHeaders[a.rng.Intn(len(responseHeaders))]
	return domain.NewRecord(domain.RecordTypeHeader, h.name, "webapp").
		WithField("value", h.value).
		WithField("url", "https://"+target.Domain).
		WithField("finding", h.finding)
}

func (a *Analyzer) endpoint(target domain.Target) *domain.Record {
	path := a.rng.Pick(interestingPaths)
	url := fmt.Sprintf("https://%s%s", target.Domain, path)
	status := statusCodes[a.rng.Intn(len(statusCodes))]

	return domain.NewRecord(domain.RecordTypeEndpoint, url, "webapp").
		WithField("path", path).
		WithField("status", fmt.Sprintf("%d", status))
}
