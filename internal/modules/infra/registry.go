// internal/modules/infra/registry.go
package infra

import (
	"mirage/internal/core/domain"
	"mirage/internal/core/ports"
	"mirage/internal/platform/logx"
	"mirage/internal/platform/registry"
)

// Auto-registration on package import.
func init() {
	if err := registry.Global().Register(
		domain.ModuleInfra,
		factory,
		ports.ModuleMetadata{
			Name:        domain.ModuleInfra,
			Description: "infrastructure profiling",
			Version:     "1.0.0",
			Produces: []domain.RecordType{
				domain.RecordTypeNetblock,
				domain.RecordTypeCertificate,
				domain.RecordTypeProvider,
			},
		},
	); err != nil {
		logx.New().Warn("failed to register infra module", "error", err.Error())
	}
}

func factory(_ ports.ModuleConfig, deps registry.ModuleDeps) (ports.Module, error) {
	return New(deps.Logger, deps.Rand), nil
}
