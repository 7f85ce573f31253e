// internal/modules/social/registry.go
package social

import (
	"mirage/internal/core/domain"
	"mirage/internal/core/ports"
	"mirage/internal/platform/logx"
	"mirage/internal/platform/registry"
)

// Auto-registration on package import.
func init() {
	if err := registry.Global().Register(
		domain.ModuleSocial,
		factory,
		ports.ModuleMetadata{
			Name:        domain.ModuleSocial,
			Description: "social presence profiling",
			Version:     "1.0.0",
			Produces: []domain.RecordType{
				domain.RecordTypeProfile,
			},
		},
	); err != nil {
		logx.New().Warn("failed to register social module", "error", err.Error())
	}
}

func factory(_ ports.ModuleConfig, deps registry.ModuleDeps) (ports.Module, error) {
	return New(deps.Logger, deps.Rand), nil
}
