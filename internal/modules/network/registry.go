// internal/modules/network/registry.go
package network

import (
	"mirage/internal/core/domain"
	"mirage/internal/core/ports"
	"mirage/internal/platform/logx"
	"mirage/internal/platform/registry"
)

// Auto-registration on package import.
func init() {
	if err := registry.Global().Register(
		domain.ModuleNetwork,
		factory,
		ports.ModuleMetadata{
			Name:        domain.ModuleNetwork,
			Description: "network enumeration",
			Version:     "1.0.0",
			Produces: []domain.RecordType{
				domain.RecordTypeSubdomain,
				domain.RecordTypePort,
				domain.RecordTypeDNS,
			},
		},
	); err != nil {
		logx.New().Warn("failed to register network module", "error", err.Error())
	}
}

func factory(_ ports.ModuleConfig, deps registry.ModuleDeps) (ports.Module, error) {
	return New(deps.Logger, deps.Rand), nil
}
