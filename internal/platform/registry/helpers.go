// internal/platform/registry/helpers.go
package registry

// Typed accessors for ports.ModuleConfig.Custom maps. They avoid manual
// type assertions in module factories.

// GetStringConfig returns custom[key] as string, or def when absent or of
// the wrong type.
func GetStringConfig(custom map[string]interface{}, key, def string) string {
	if custom == nil {
		return def
	}
	if v, ok := custom[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// GetIntConfig returns custom[key] as int, accepting int, int64 and
// float64 (JSON/YAML decoding produces float64 for numbers).
func GetIntConfig(custom map[string]interface{}, key string, def int) int {
	if custom == nil {
		return def
	}
	v, ok := custom[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return def
	}
}

// GetBoolConfig returns custom[key] as bool, or def when absent or of the
// wrong type.
func GetBoolConfig(custom map[string]interface{}, key string, def bool) bool {
	if custom == nil {
		return def
	}
	if v, ok := custom[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// GetSliceConfig returns custom[key] as []string, converting []interface{}
// elements where possible.
func GetSliceConfig(custom map[string]interface{}, key string, def []string) []string {
	if custom == nil {
		return def
	}
	v, ok := custom[key]
	if !ok {
		return def
	}
	switch s := v.(type) {
	case []string:
		return s
	case []interface{}:
		out := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return def
}
