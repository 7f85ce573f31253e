// internal/modules/network/network.go

// Package network synthesizes network enumeration findings: subdomains,
// open ports with service banners and DNS records. Placeholder for real
// resolver/port-probe backends.
package network

import (
	"context"
	"fmt"

	"mirage/internal/core/domain"
	"mirage/internal/core/ports"
	"mirage/internal/modules/common"
	"mirage/internal/platform/logx"
	"mirage/internal/platform/randx"
)

const baseUnits = 6

// Scanner implements the network module.
type Scanner struct {
	logger logx.Logger
	rng    randx.Rand
}

// New creates the scanner.
func New(logger logx.Logger, rng randx.Rand) *Scanner {
	return &Scanner{
		logger: logger.With("module", "network"),
		rng:    rng,
	}
}

// Name returns the module name.
func (s *Scanner) Name() domain.ModuleName {
	return domain.ModuleNetwork
}

// Description returns a one-line description.
func (s *Scanner) Description() string {
	return "network enumeration (subdomains, ports, DNS)"
}

// TaskCount returns the number of work units for this config.
func (s *Scanner) TaskCount(_ domain.Target, cfg domain.ScanConfig) int {
	return baseUnits * cfg.VolumeFactor()
}

// Run synthesizes records unit by unit, advancing the sink per unit.
func (s *Scanner) Run(ctx context.Context, target domain.Target, cfg domain.ScanConfig, sink ports.TaskSink) ([]*domain.Record, error) {
	units := s.TaskCount(target, cfg)
	return common.RunUnits(ctx, units, s.rng, sink, func(unit int) []*domain.Record {
		switch unit % 3 {
		case 0:
			return []*domain.Record{s.subdomain(target)}
		case 1:
			return s.openPorts(target)
		default:
			return []*domain.Record{s.dnsRecord(target)}
		}
	})
}

// Close releases resources (none held).
func (s *Scanner) Close() error {
	return nil
}

func (s *Scanner) subdomain(target domain.Target) *domain.Record {
	host := s.rng.Pick(subdomainPrefixes) + "." + target.Domain
	return domain.NewRecord(domain.RecordTypeSubdomain, host, "network").
		WithField("ip", s.fakeIP())
}

func (s *Scanner) openPorts(target domain.Target) []*domain.Record {
	count := s.rng.Between(1, 3)
	records := make([]*domain.Record, 0, count)
	for i := 0; i < count; i++ {
		svc := commonServices[s.rng.Intn(len(commonServices))]
		value := fmt.Sprintf("%s:%d", target.Domain, svc.port)
		records = append(records, domain.NewRecord(domain.RecordTypePort, value, "network").
			WithField("port", fmt.Sprintf("%d", svc.port)).
			WithField("service", svc.name).
			WithField("banner", svc.banner))
	}
	return records
}

func (s *Scanner) dnsRecord(target domain.Target) *domain.Record {
	kind := s.rng.Pick(dnsRecordTypes)
	var value string
	switch kind {
	case "MX":
		value = fmt.Sprintf("10 mail.%s", target.Domain)
	case "TXT":
		value = fmt.Sprintf("v=spf1 include:_spf.%s ~all", target.Domain)
	case "NS":
		value = fmt.Sprintf("ns%d.%s", s.rng.Between(1, 4), target.Domain)
	default:
		value = s.fakeIP()
	}

	return domain.NewRecord(domain.RecordTypeDNS, fmt.Sprintf("%s %s %s", target.Domain, kind, value), "network").
		WithField("record_type", kind).
		WithField("data", value)
}

// fakeIP fabricates a documentation-range address (TEST-NET-2).
func (s *Scanner) fakeIP() string {
	return fmt.Sprintf("198.51.100.%d", s.rng.Between(1, 254))
}
