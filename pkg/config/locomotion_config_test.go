package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultLocomotionConfig(t *testing.T) {
	cfg := DefaultLocomotionConfig()

	if cfg.InputHoldDelay != 500*time.Millisecond {
		t.Errorf("InputHoldDelay: got %v, want 500ms", cfg.InputHoldDelay)
	}
	if cfg.SlowingSpeed != 0.175 {
		t.Errorf("SlowingSpeed: got %v, want 0.175", cfg.SlowingSpeed)
	}
	if cfg.StopDistanceProportion != 0.1 {
		t.Errorf("StopDistanceProportion: got %v, want 0.1", cfg.StopDistanceProportion)
	}
	if cfg.NavMeshSampleDistance != 4 {
		t.Errorf("NavMeshSampleDistance: got %v, want 4", cfg.NavMeshSampleDistance)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestParseLocomotionConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, LocomotionConfig)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
inputHoldDelay: 750ms
turnSmoothing: 10
`,
			validate: func(t *testing.T, cfg LocomotionConfig) {
				if cfg.InputHoldDelay != 750*time.Millisecond {
					t.Errorf("expected inputHoldDelay = 750ms, got %v", cfg.InputHoldDelay)
				}
				if cfg.TurnSmoothing != 10 {
					t.Errorf("expected turnSmoothing = 10, got %v", cfg.TurnSmoothing)
				}
				// 未设置的字段保留默认值
				if cfg.SpeedDampTime != 0.1 {
					t.Errorf("expected speedDampTime default 0.1, got %v", cfg.SpeedDampTime)
				}
			},
		},
		{
			name:        "negative slowing speed",
			yamlContent: "slowingSpeed: -1\n",
			wantErr:     true,
			errContains: "slowingSpeed",
		},
		{
			name:        "proportion out of range",
			yamlContent: "stopDistanceProportion: 1.5\n",
			wantErr:     true,
			errContains: "stopDistanceProportion",
		},
		{
			name:        "zero proportion",
			yamlContent: "stopDistanceProportion: 0\n",
			wantErr:     true,
			errContains: "stopDistanceProportion",
		},
		{
			name:        "invalid yaml",
			yamlContent: "inputHoldDelay: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseLocomotionConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestValidateSentinel(t *testing.T) {
	cfg := DefaultLocomotionConfig()
	cfg.InputHoldDelay = -time.Second

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidLocomotionConfig) {
		t.Errorf("expected ErrInvalidLocomotionConfig, got %v", err)
	}
}

func TestLoadLocomotionConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "locomotion.yaml")
	if err := os.WriteFile(path, []byte("slowingSpeed: 0.3\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadLocomotionConfig(path)
	if err != nil {
		t.Fatalf("LoadLocomotionConfig() error: %v", err)
	}
	if cfg.SlowingSpeed != 0.3 {
		t.Errorf("expected slowingSpeed = 0.3, got %v", cfg.SlowingSpeed)
	}

	if _, err := LoadLocomotionConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
