// internal/platform/logx/logx_test.go
package logx

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelWarn)

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")
	logger.Err(errors.New("boom"))

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("low-level lines leaked through: %q", out)
	}
	if !strings.Contains(out, "WRN kept") {
		t.Errorf("warn line missing: %q", out)
	}
	if !strings.Contains(out, "error=boom") {
		t.Errorf("error line missing: %q", out)
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelError)

	logger.Info("before")
	logger.SetLevel(LevelDebug)
	logger.Debug("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Errorf("filtered line leaked: %q", out)
	}
	if !strings.Contains(out, "DBG after") {
		t.Errorf("debug line missing after SetLevel: %q", out)
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelInfo).With("module", "osint")

	logger.Info("scan", "queries", 7)

	out := buf.String()
	if !strings.Contains(out, "module=osint") {
		t.Errorf("scope pair missing: %q", out)
	}
	if !strings.Contains(out, "queries=7") {
		t.Errorf("call pair missing: %q", out)
	}
}

func TestErr_NilIgnored(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelDebug)

	logger.Err(nil)
	if buf.Len() != 0 {
		t.Errorf("nil error produced output: %q", buf.String())
	}
}

func TestKVPairs_OddCount(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelInfo)

	logger.Info("odd", "key")
	if !strings.Contains(buf.String(), "key=(missing)") {
		t.Errorf("odd pair not padded: %q", buf.String())
	}
}

func TestSetLevel_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelInfo)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if n%2 == 0 {
					logger.SetLevel(Level(j % 4))
				} else {
					logger.Info("tick", "n", n)
					logger.With("scope", n).Debug("tock")
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DBG", LevelDebug},
		{"info", LevelInfo},
		{"", LevelInfo},
		{"warning", LevelWarn},
		{" error ", LevelError},
		{"nonsense", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
