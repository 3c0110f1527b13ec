package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plutus-labs/finadvisor/pkg/constants"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}
	if cfg.Address != constants.DefaultServerAddress {
		t.Errorf("Address = %q, expected default %q", cfg.Address, constants.DefaultServerAddress)
	}
	if cfg.RequestSizeBytes() != constants.DefaultMaxRequestSizeBytes {
		t.Errorf("RequestSizeBytes = %d, expected default %d", cfg.RequestSizeBytes(), constants.DefaultMaxRequestSizeBytes)
	}
}

func TestLoadConfigDefaultsWhenPathEmpty(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}
	if cfg.Address != constants.DefaultServerAddress {
		t.Errorf("Address = %q, expected default", cfg.Address)
	}
}

func TestLoadConfigParsesFile(t *testing.T) {
	content := `address: ":9090"
maxRequestSize: 64KB
logging:
  level: warn
`
	path := filepath.Join(t.TempDir(), "server-config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}
	if cfg.Address != ":9090" {
		t.Errorf("Address = %q, expected :9090", cfg.Address)
	}
	if cfg.RequestSizeBytes() != 64*1024 {
		t.Errorf("RequestSizeBytes = %d, expected %d", cfg.RequestSizeBytes(), 64*1024)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, expected warn", cfg.Logging.Level)
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		wantErr  bool
	}{
		{"Plain bytes", "1024", 1024, false},
		{"Bytes suffix", "512B", 512, false},
		{"Kilobytes", "64KB", 64 * 1024, false},
		{"Megabytes", "2MB", 2 * 1024 * 1024, false},
		{"Lowercase suffix", "4kb", 4 * 1024, false},
		{"Blank takes default", "", constants.DefaultMaxRequestSizeBytes, false},
		{"Garbage", "lots", 0, true},
		{"Negative", "-1KB", 0, true},
		{"Zero", "0", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, err := parseSize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseSize(%q) accepted invalid input", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSize(%q) returned error: %v", tt.input, err)
			}
			if size != tt.expected {
				t.Errorf("parseSize(%q) = %d, expected %d", tt.input, size, tt.expected)
			}
		})
	}
}

func TestLoadConfigRejectsBadSize(t *testing.T) {
	content := "maxRequestSize: huge\n"
	path := filepath.Join(t.TempDir(), "server-config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Errorf("LoadConfig() accepted an unparseable size")
	}
}
