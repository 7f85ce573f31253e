// internal/platform/registry/module_registry.go
package registry

import (
	"fmt"
	"sort"
	"sync"

	"mirage/internal/core/domain"
	"mirage/internal/core/ports"
	"mirage/internal/platform/cache"
	"mirage/internal/platform/logx"
	"mirage/internal/platform/randx"
)

// ModuleFactory builds a module instance for one run.
type ModuleFactory func(cfg ports.ModuleConfig, deps ModuleDeps) (ports.Module, error)

// ModuleDeps carries the run-scoped dependencies injected into modules.
type ModuleDeps struct {
	Logger logx.Logger

	// Rand is the seedable random source shared by the run
	Rand randx.Rand

	// Cache is the run-owned bounded cache (nil when disabled)
	Cache cache.Cache
}

// ModuleRegistry manages registration and construction of modules.
// Registry + Factory pattern: module packages self-register from init().
type ModuleRegistry struct {
	mu        sync.RWMutex
	factories map[domain.ModuleName]ModuleFactory
	metadata  map[domain.ModuleName]ports.ModuleMetadata
	logger    logx.Logger
}

var globalRegistry *ModuleRegistry
var once sync.Once

// Global returns the process-wide registry instance.
func Global() *ModuleRegistry {
	once.Do(func() {
		globalRegistry = NewModuleRegistry(logx.New())
	})
	return globalRegistry
}

// NewModuleRegistry creates an empty registry.
func NewModuleRegistry(logger logx.Logger) *ModuleRegistry {
	return &ModuleRegistry{
		factories: make(map[domain.ModuleName]ModuleFactory),
		metadata:  make(map[domain.ModuleName]ports.ModuleMetadata),
		logger:    logger.With("component", "module-registry"),
	}
}

// Register adds a module factory with its metadata. Typically called from
// the init() of each module package.
func (r *ModuleRegistry) Register(name domain.ModuleName, factory ModuleFactory, meta ports.ModuleMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !name.IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidModule, name)
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil for module %s", name)
	}
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("module %s is already registered", name)
	}

	r.factories[name] = factory
	r.metadata[name] = meta
	r.logger.Debug("module registered", "name", name)

	return nil
}

// Build constructs every selected module in canonical order.
func (r *ModuleRegistry) Build(cfg domain.ScanConfig, configs map[domain.ModuleName]ports.ModuleConfig, deps ModuleDeps) ([]ports.Module, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if deps.Logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	if deps.Rand == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}

	modules := make([]ports.Module, 0, len(cfg.Selected()))
	var buildErrs []error

	for _, name := range cfg.Selected() {
		factory, exists := r.factories[name]
		if !exists {
			r.logger.Warn("module not registered, skipping", "module", name)
			buildErrs = append(buildErrs, fmt.Errorf("%w: %s", domain.ErrModuleNotFound, name))
			continue
		}

		moduleCfg, ok := configs[name]
		if !ok {
			moduleCfg = ports.DefaultModuleConfig()
		}

		mod, err := factory(moduleCfg, deps)
		if err != nil {
			r.logger.Warn("module build failed", "module", name, "error", err.Error())
			buildErrs = append(buildErrs, fmt.Errorf("build %s: %w", name, err))
			continue
		}

		modules = append(modules, mod)
	}

	if len(modules) == 0 && len(buildErrs) > 0 {
		return nil, fmt.Errorf("no modules could be built: %v", buildErrs)
	}

	return modules, nil
}

// Metadata returns the metadata of one registered module.
func (r *ModuleRegistry) Metadata(name domain.ModuleName) (ports.ModuleMetadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	meta, ok := r.metadata[name]
	return meta, ok
}

// Names returns every registered module name, sorted.
func (r *ModuleRegistry) Names() []domain.ModuleName {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]domain.ModuleName, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Count returns the number of registered modules.
func (r *ModuleRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}
