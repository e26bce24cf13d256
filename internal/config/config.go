// Package config loads channelsim scenario files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cwbudde/algo-rfchannel/dsp/core"
	"github.com/cwbudde/algo-rfchannel/internal/logging"
	"gopkg.in/yaml.v3"
)

// maxFileSize bounds scenario files.
const maxFileSize = 1 << 20

// Config is the root of a scenario file.
type Config struct {
	Scenario string         `yaml:"scenario"`
	Seed     *uint64        `yaml:"seed,omitempty"`
	Domain   string         `yaml:"domain,omitempty"`
	Window   string         `yaml:"window,omitempty"` // analysis window of the frequency view
	Log      logging.Config `yaml:"log,omitempty"`
	Output   Output         `yaml:"output,omitempty"`
	Params   Params         `yaml:"params,omitempty"`
}

// Output selects the result encoding and destination.
type Output struct {
	Format string `yaml:"format,omitempty"` // csv, json, png or html
	Path   string `yaml:"path,omitempty"`   // empty or "-" means stdout
}

// Params holds scenario parameters keyed by name.
type Params map[string]any

// Load reads a YAML scenario file. Only .yaml and .yml files are accepted.
func Load(path string) (Config, error) {
	clean := filepath.Clean(path)
	switch ext := strings.ToLower(filepath.Ext(clean)); ext {
	case ".yaml", ".yml":
	default:
		return Config{}, fmt.Errorf("config file must have .yaml or .yml extension, got %q", ext)
	}

	info, err := os.Stat(clean)
	if err != nil {
		return Config{}, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return Config{}, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(clean)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a scenario document. Unknown top-level keys are rejected.
func Parse(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Params == nil {
		cfg.Params = Params{}
	}
	return cfg, nil
}

// SetOverrides merges "key=value" pairs into the params. Values are decoded
// as YAML scalars, so "num_paths=50" yields an integer and "climate=none" a
// string.
func (c *Config) SetOverrides(pairs []string) error {
	if c.Params == nil {
		c.Params = Params{}
	}
	for _, p := range pairs {
		key, raw, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("%w: param override must be key=value: %q", core.ErrInvalidParameter, p)
		}

		var v any
		if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
			return fmt.Errorf("%w: param %s: %v", core.ErrInvalidParameter, key, err)
		}
		if v == nil {
			v = raw
		}
		c.Params[key] = v
	}
	return nil
}

// Decode fills dst, a pointer to a struct with yaml tags, from the params.
// Fields absent from the params keep their current values, so dst should be
// pre-filled with defaults. Unknown keys are rejected.
func (p Params) Decode(dst any) error {
	if len(p) == 0 {
		return nil
	}

	data, err := yaml.Marshal(map[string]any(p))
	if err != nil {
		return fmt.Errorf("failed to encode params: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", core.ErrInvalidParameter, err)
	}
	return nil
}

// Keys returns the param names in sorted order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
