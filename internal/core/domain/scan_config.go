// internal/core/domain/scan_config.go
package domain

// ScanConfig selects which modules run and how much synthetic data they
// produce. The modifiers only affect volume and variety of generated
// records, never the orchestration semantics.
type ScanConfig struct {
	// Modules maps each module to its enablement flag
	Modules map[ModuleName]bool

	// DeepScan widens the query plan (tier deep)
	DeepScan bool

	// Stealth widens it further (tier stealth, superset of deep)
	Stealth bool

	// Aggressive increases per-module record volume
	Aggressive bool
}

// DefaultScanConfig enables every module with no modifiers.
func DefaultScanConfig() ScanConfig {
	modules := make(map[ModuleName]bool, len(AllModules()))
	for _, m := range AllModules() {
		modules[m] = true
	}
	return ScanConfig{Modules: modules}
}

// Selected returns the enabled modules in canonical order.
func (c ScanConfig) Selected() []ModuleName {
	selected := make([]ModuleName, 0, len(c.Modules))
	for _, m := range AllModules() {
		if c.Modules[m] {
			selected = append(selected, m)
		}
	}
	return selected
}

// Enabled reports whether a module is selected.
func (c ScanConfig) Enabled(m ModuleName) bool {
	return c.Modules[m]
}

// Tier derives the search depth from the modifiers. Stealth wins over
// DeepScan; with neither set the tier is basic.
func (c ScanConfig) Tier() Tier {
	switch {
	case c.Stealth:
		return TierStealth
	case c.DeepScan:
		return TierDeep
	default:
		return TierBasic
	}
}

// VolumeFactor returns the record volume multiplier derived from the
// modifiers. Used by modules to size their synthetic output.
func (c ScanConfig) VolumeFactor() int {
	factor := 1 + c.Tier().Rank()
	if c.Aggressive {
		factor *= 2
	}
	return factor
}

// Validate checks that at least one module is selected and that every
// selected module name is known.
func (c ScanConfig) Validate() error {
	selected := 0
	for m, on := range c.Modules {
		if !m.IsValid() {
			return ErrInvalidModule
		}
		if on {
			selected++
		}
	}
	if selected == 0 {
		return ErrNoModulesSelected
	}
	return nil
}
