// internal/modules/webapp/registry.go
package webapp

import (
	"mirage/internal/core/domain"
	"mirage/internal/core/ports"
	"mirage/internal/platform/logx"
	"mirage/internal/platform/registry"
)

// Auto-registration on package import.
func init() {
	if err := registry.Global().Register(
		domain.ModuleWebApp,
		factory,
		ports.ModuleMetadata{
			Name:        domain.ModuleWebApp,
			Description: "web application analysis",
			Version:     "1.0.0",
			Produces: []domain.RecordType{
				domain.RecordTypeTechnology,
				domain.RecordTypeHeader,
				domain.RecordTypeEndpoint,
			},
		},
	); err != nil {
		logx.New().Warn("failed to register webapp module", "error", err.Error())
	}
}

func factory(_ ports.ModuleConfig, deps registry.ModuleDeps) (ports.Module, error) {
	return New(deps.Logger, deps.Rand), nil
}
