// internal/modules/infra/infra.go

// Package infra synthesizes infrastructure profiling findings: netblocks,
// TLS certificates and hosting providers. Placeholder for real WHOIS and
// certificate transparency backends.
package infra

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mirage/internal/core/domain"
	"mirage/internal/core/ports"
	"mirage/internal/modules/common"
	"mirage/internal/platform/logx"
	"mirage/internal/platform/randx"
)

const baseUnits = 5

// Profiler implements the infra module.
type Profiler struct {
	logger logx.Logger
	rng    randx.Rand
}

// New creates the profiler.
func New(logger logx.Logger, rng randx.Rand) *Profiler {
	return &Profiler{
		logger: logger.With("module", "infra"),
		rng:    rng,
	}
}

// Name returns the module name.
func (p *Profiler) Name() domain.ModuleName {
	return domain.ModuleInfra
}

// Description returns a one-line description.
func (p *Profiler) Description() string {
	return "infrastructure profiling (netblocks, certificates, providers)"
}

// TaskCount returns the number of work units for this config.
func (p *Profiler) TaskCount(_ domain.Target, cfg domain.ScanConfig) int {
	return baseUnits * cfg.VolumeFactor()
}

// Run synthesizes records unit by unit, advancing the sink per unit.
func (p *Profiler) Run(ctx context.Context, target domain.Target, cfg domain.ScanConfig, sink ports.TaskSink) ([]*domain.Record, error) {
	units := p.TaskCount(target, cfg)
	return common.RunUnits(ctx, units, p.rng, sink, func(unit int) []*domain.Record {
		switch unit % 3 {
		case 0:
			return []*domain.Record{p.netblock(target)}
		case 1:
			return []*domain.Record{p.certificate(target)}
		default:
			return []*domain.Record{p.provider(target)}
		}
	})
}

// Close releases resources (none held).
func (p *Profiler) Close() error {
	return nil
}

func (p *Profiler) netblock(target domain.Target) *domain.Record {
	// Documentation range (TEST-NET-3), never routable.
	cidr := fmt.Sprintf("203.0.113.%d%s", p.rng.Between(0, 128), p.rng.Pick(netblockSizes))
	prov := providers[p.rng.Intn(len(providers))]

	return domain.NewRecord(domain.RecordTypeNetblock, cidr, "infra").
		WithField("asn", prov.asn).
		WithField("org", prov.name).
		WithField("registrant", target.Company)
}

func (p *Profiler) certificate(target domain.Target) *domain.Record {
	cn := p.rng.Pick(certSANPrefixes) + "." + target.Domain
	issued := time.Now().AddDate(0, -p.rng.Between(1, 10), 0)
	expires := issued.AddDate(1, 0, 0)

	return domain.NewRecord(domain.RecordTypeCertificate, cn, "infra").
		WithField("issuer", p.rng.Pick(certIssuers)).
		WithField("not_before", issued.Format("2006-01-02")).
		WithField("not_after", expires.Format("2006-01-02")).
		WithField("sans", strings.Join([]string{cn, target.Domain}, ","))
}

func (p *Profiler) provider(target domain.Target) *domain.Record {
	prov := providers[p.rng.Intn(len(providers))]
	return domain.NewRecord(domain.RecordTypeProvider, prov.name, "infra").
		WithField("kind", prov.kind).
		WithField("asn", prov.asn).
		WithField("observed_on", target.Domain)
}
