package utils

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.Width != 500 || c.Height != 17 {
		t.Errorf("board = %dx%d, want 500x17", c.Width, c.Height)
	}
	if c.FrameRate != 30*time.Millisecond {
		t.Errorf("FrameRate = %v, want 30ms", c.FrameRate)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, "invalid board size"},
		{"negative height", func(c *Config) { c.Height = -1 }, "invalid board size"},
		{"zero frame rate", func(c *Config) { c.FrameRate = 0 }, "invalid frame rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			err := c.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}
