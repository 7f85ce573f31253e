// internal/modules/social/social.go

// Package social synthesizes social engineering intelligence: corporate
// presence profiles across platforms, derived from the company handle.
// Placeholder for a real profile enumeration backend.
package social

import (
	"context"
	"fmt"

	"mirage/internal/core/domain"
	"mirage/internal/core/ports"
	"mirage/internal/modules/common"
	"mirage/internal/platform/logx"
	"mirage/internal/platform/randx"
)

const baseUnits = 4

// Profiler implements the social module.
type Profiler struct {
	logger logx.Logger
	rng    randx.Rand
}

// New creates the profiler.
func New(logger logx.Logger, rng randx.Rand) *Profiler {
	return &Profiler{
		logger: logger.With("module", "social"),
		rng:    rng,
	}
}

// Name returns the module name.
func (p *Profiler) Name() domain.ModuleName {
	return domain.ModuleSocial
}

// Description returns a one-line description.
func (p *Profiler) Description() string {
	return "social presence profiling (corporate accounts, handles)"
}

// TaskCount returns the number of work units for this config.
func (p *Profiler) TaskCount(_ domain.Target, cfg domain.ScanConfig) int {
	return baseUnits * cfg.VolumeFactor()
}

// Run synthesizes one profile per unit, advancing the sink per unit.
func (p *Profiler) Run(ctx context.Context, target domain.Target, cfg domain.ScanConfig, sink ports.TaskSink) ([]*domain.Record, error) {
	units := p.TaskCount(target, cfg)
	return common.RunUnits(ctx, units, p.rng, sink, func(unit int) []*domain.Record {
		return []*domain.Record{p.profile(target, unit)}
	})
}

// Close releases resources (none held).
func (p *Profiler) Close() error {
	return nil
}

func (p *Profiler) profile(target domain.Target, unit int) *domain.Record {
	plat := platforms[unit%len(platforms)]
	handle := target.Handle() + p.rng.Pick(handleSuffixes)
	url := plat.baseURL + handle

	bio := p.rng.Pick(bioSnippets)
	if bio == "Customer support: support@" {
		bio += target.Domain
	}

	return domain.NewRecord(domain.RecordTypeProfile, fmt.Sprintf("%s:%s", plat.name, handle), "social").
		WithField("platform", plat.name).
		WithField("handle", handle).
		WithField("url", url).
		WithField("bio", bio).
		WithField("activity", p.rng.Pick(activityLevels)).
		WithField("followers", fmt.Sprintf("%d", p.rng.Between(50, 250000)))
}
