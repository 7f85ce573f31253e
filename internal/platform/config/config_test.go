// internal/platform/config/config_test.go
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mirage/internal/core/domain"
	"mirage/internal/testutil"
)

// clearEnv blanks every MIRAGE_* variable so ambient shell state cannot
// leak into a test. t.Setenv also restores the originals on cleanup.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"MIRAGE_CONFIG", "MIRAGE_TARGET", "MIRAGE_COMPANY", "MIRAGE_MODULES",
		"MIRAGE_DEEP", "MIRAGE_STEALTH", "MIRAGE_AGGRESSIVE", "MIRAGE_SEED",
		"MIRAGE_WORKERS", "MIRAGE_BATCH_SIZE", "MIRAGE_TIMEOUT", "MIRAGE_CACHE_SIZE",
		"MIRAGE_OUTPUT_DIR", "MIRAGE_FORMATS", "MIRAGE_NO_UI", "MIRAGE_LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	testutil.AssertNoError(t, err, "load")

	testutil.AssertEqual(t, cfg.Target, "", "no target by default")
	testutil.AssertEqual(t, cfg.Workers, 3, "default workers")
	testutil.AssertEqual(t, cfg.BatchSize, 25, "default batch size")
	testutil.AssertEqual(t, cfg.CacheSize, 100, "default cache size")
	testutil.AssertEqual(t, cfg.OutputDir, "mirage_out", "default output dir")
	testutil.AssertEqual(t, cfg.LogLevel, "info", "default log level")
	testutil.AssertEqual(t, len(cfg.Formats), 1, "single default format")
	testutil.AssertEqual(t, cfg.Formats[0], "json", "default format")
	testutil.AssertEqual(t, len(cfg.Modules), 0, "all modules by default")
}

func TestLoad_Flags(t *testing.T) {
	clearEnv(t)

	cfg, err := Load([]string{
		"-t", "EXAMPLE.COM.",
		"-c", "Example Corp",
		"-m", "osint,network",
		"--deep",
		"--seed", "42",
		"-w", "8",
		"-f", "json,xml",
		"--no-ui",
	})
	testutil.AssertNoError(t, err, "load")

	testutil.AssertEqual(t, cfg.Target, "example.com", "target lowercased, dot trimmed")
	testutil.AssertEqual(t, cfg.Company, "Example Corp", "company")
	testutil.AssertEqual(t, len(cfg.Modules), 2, "selected modules")
	testutil.AssertTrue(t, cfg.DeepScan, "deep flag")
	testutil.AssertEqual(t, cfg.Seed, int64(42), "seed")
	testutil.AssertEqual(t, cfg.Workers, 8, "workers")
	testutil.AssertEqual(t, len(cfg.Formats), 2, "formats")
	testutil.AssertTrue(t, cfg.NoUI, "no-ui flag")
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("MIRAGE_TARGET", "env.example.com")
	t.Setenv("MIRAGE_WORKERS", "6")
	t.Setenv("MIRAGE_STEALTH", "yes")
	t.Setenv("MIRAGE_FORMATS", "csv, xml")

	cfg, err := Load(nil)
	testutil.AssertNoError(t, err, "load")

	testutil.AssertEqual(t, cfg.Target, "env.example.com", "target from env")
	testutil.AssertEqual(t, cfg.Workers, 6, "workers from env")
	testutil.AssertTrue(t, cfg.Stealth, "stealth from env")
	testutil.AssertEqual(t, len(cfg.Formats), 2, "formats split from env")
	testutil.AssertEqual(t, cfg.Formats[1], "xml", "formats trimmed")
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("MIRAGE_WORKERS", "9")
	t.Setenv("MIRAGE_TARGET", "env.example.com")

	cfg, err := Load([]string{"-w", "2", "-t", "flag.example.com"})
	testutil.AssertNoError(t, err, "load")

	testutil.AssertEqual(t, cfg.Workers, 2, "flag beats env")
	testutil.AssertEqual(t, cfg.Target, "flag.example.com", "flag beats env")
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "mirage.yaml")
	body := "target: file.example.com\ncompany: File Corp\nworkers: 5\nformats:\n  - xml\n"
	testutil.AssertNoError(t, os.WriteFile(path, []byte(body), 0o644), "write file")

	cfg, err := Load([]string{"--config", path})
	testutil.AssertNoError(t, err, "load")

	testutil.AssertEqual(t, cfg.Target, "file.example.com", "target from file")
	testutil.AssertEqual(t, cfg.Company, "File Corp", "company from file")
	testutil.AssertEqual(t, cfg.Workers, 5, "workers from file")
	testutil.AssertEqual(t, cfg.Formats[0], "xml", "formats from file")
	testutil.AssertEqual(t, cfg.ConfigFile, path, "file path recorded")

	// env and flags still win over the file
	t.Setenv("MIRAGE_COMPANY", "Env Corp")
	cfg, err = Load([]string{"--config=" + path, "-w", "1"})
	testutil.AssertNoError(t, err, "reload")
	testutil.AssertEqual(t, cfg.Company, "Env Corp", "env beats file")
	testutil.AssertEqual(t, cfg.Workers, 1, "flag beats file")
}

func TestLoad_ConfigFileMissing(t *testing.T) {
	clearEnv(t)

	_, err := Load([]string{"--config", "/nonexistent/mirage.yaml"})
	testutil.AssertError(t, err, "missing file rejected")
}

func TestLoad_BadFlag(t *testing.T) {
	clearEnv(t)

	_, err := Load([]string{"--no-such-flag"})
	testutil.AssertError(t, err, "unknown flag rejected")
}

func TestNormalize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Target = "  EXAMPLE.com. "
	cfg.Workers = 0
	cfg.BatchSize = -5
	cfg.CacheSize = 0
	cfg.OutputDir = ""
	cfg.Formats = []string{" JSON ", "Xml"}
	cfg.Modules = []string{" OSINT "}

	normalize(&cfg)

	testutil.AssertEqual(t, cfg.Target, "example.com", "target cleaned")
	testutil.AssertEqual(t, cfg.Workers, 1, "workers floor")
	testutil.AssertEqual(t, cfg.BatchSize, 25, "batch size fallback")
	testutil.AssertEqual(t, cfg.CacheSize, 100, "cache size fallback")
	testutil.AssertEqual(t, cfg.OutputDir, "mirage_out", "output dir fallback")
	testutil.AssertEqual(t, cfg.Formats[0], "json", "formats lowercased")
	testutil.AssertEqual(t, cfg.Formats[1], "xml", "formats trimmed")
	testutil.AssertEqual(t, cfg.Modules[0], "osint", "modules lowercased")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Modules = []string{"osint", "network"}
	cfg.Formats = []string{"json", "csv"}
	testutil.AssertNoError(t, cfg.Validate(), "valid config")

	cfg.Modules = []string{"portscan"}
	err := cfg.Validate()
	testutil.AssertTrue(t, errors.Is(err, domain.ErrInvalidModule), "unknown module rejected")

	cfg.Modules = nil
	cfg.Formats = []string{"pdf"}
	err = cfg.Validate()
	testutil.AssertTrue(t, errors.Is(err, domain.ErrUnsupportedFormat), "unknown format rejected")
}

func TestScanConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Modules = []string{"osint", "infra"}
	cfg.DeepScan = true
	cfg.Aggressive = true

	sc := cfg.ScanConfig()

	selected := sc.Selected()
	testutil.AssertEqual(t, len(selected), 2, "only listed modules selected")
	testutil.AssertTrue(t, sc.Modules[domain.ModuleOSINT], "osint enabled")
	testutil.AssertFalse(t, sc.Modules[domain.ModuleNetwork], "network disabled")
	testutil.AssertEqual(t, sc.Tier(), domain.TierDeep, "tier carried over")
	testutil.AssertTrue(t, sc.Aggressive, "aggressive carried over")
}

func TestScanConfig_NoModuleFilter(t *testing.T) {
	sc := DefaultConfig().ScanConfig()
	testutil.AssertEqual(t, len(sc.Selected()), len(domain.AllModules()), "all modules enabled")
}

func TestTimeout(t *testing.T) {
	cfg := DefaultConfig()
	testutil.AssertEqual(t, cfg.Timeout(), time.Duration(0), "zero means none")

	cfg.TimeoutS = 30
	testutil.AssertEqual(t, cfg.Timeout(), 30*time.Second, "seconds to duration")
}

func TestPeekConfigFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"separate value", []string{"-t", "x.com", "--config", "a.yaml"}, "a.yaml"},
		{"equals form", []string{"--config=b.yaml"}, "b.yaml"},
		{"absent", []string{"-t", "x.com"}, ""},
		{"dangling", []string{"--config"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, peekConfigFlag(tt.args), tt.want, "peeked path")
		})
	}
}

func TestParseBool(t *testing.T) {
	for _, v := range []string{"1", "t", "TRUE", "yes", " on "} {
		testutil.AssertTrue(t, parseBool(v), v)
	}
	for _, v := range []string{"0", "false", "no", "off", "banana", ""} {
		testutil.AssertFalse(t, parseBool(v), v)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" osint, network ,,webapp ")
	testutil.AssertEqual(t, len(got), 3, "empty segments dropped")
	testutil.AssertEqual(t, got[0], "osint", "first trimmed")
	testutil.AssertEqual(t, got[2], "webapp", "last trimmed")
}
