// internal/modules/osint/registry.go
package osint

import (
	"mirage/internal/core/domain"
	"mirage/internal/core/ports"
	"mirage/internal/platform/logx"
	"mirage/internal/platform/registry"
)

// Auto-registration on package import.
func init() {
	if err := registry.Global().Register(
		domain.ModuleOSINT,
		factory,
		ports.ModuleMetadata{
			Name:        domain.ModuleOSINT,
			Description: "open-source intelligence collection",
			Version:     "1.0.0",
			Produces: []domain.RecordType{
				domain.RecordTypeEmployee,
				domain.RecordTypeEmail,
				domain.RecordTypeDocument,
				domain.RecordTypeBreach,
			},
		},
	); err != nil {
		logx.New().Warn("failed to register osint module", "error", err.Error())
	}
}

func factory(cfg ports.ModuleConfig, deps registry.ModuleDeps) (ports.Module, error) {
	return New(deps.Logger, deps.Rand, deps.Cache, cfg.BatchSize), nil
}
