package life3d

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"conway-3d/pkg/voxel"
)

// Config holds the externally owned simulation settings.
type Config struct {
	GridSize int
	Speed    float64
	Seed     int64
	Running  bool

	// Cells optionally replaces random seeding with an explicit initial
	// active set.
	Cells []voxel.Coord
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		GridSize: 20,
		Speed:    4,
		Seed:     42,
		Running:  true,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Invalid values are ignored and the default kept.
func FromMap(cfg map[string]string) Config {
	return ApplyOverrides(DefaultConfig(), cfg)
}

// ApplyOverrides returns c with the recognised keys of kv applied. Unknown
// keys and unparsable values leave c unchanged.
func ApplyOverrides(c Config, kv map[string]string) Config {
	if v, ok := kv["grid_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.GridSize = parsed
		}
	}
	if v, ok := kv["speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && validSpeed(parsed) {
			c.Speed = parsed
		}
	}
	if v, ok := kv["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := kv["running"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Running = parsed
		}
	}
	return c
}

type fileConfig struct {
	GridSize *int     `yaml:"grid_size"`
	Speed    *float64 `yaml:"speed"`
	Seed     *int64   `yaml:"seed"`
	Running  *bool    `yaml:"running"`
	Cells    []string `yaml:"cells"`
}

// LoadConfig reads a YAML configuration file. Keys missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(body)
}

// ParseConfig decodes YAML configuration bytes.
func ParseConfig(body []byte) (Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(body, &fc); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	c := DefaultConfig()
	if fc.GridSize != nil {
		if *fc.GridSize < 0 {
			return Config{}, fmt.Errorf("grid_size must not be negative, got %d", *fc.GridSize)
		}
		c.GridSize = *fc.GridSize
	}
	if fc.Speed != nil {
		if !validSpeed(*fc.Speed) {
			return Config{}, fmt.Errorf("speed must be a positive number, got %v", *fc.Speed)
		}
		c.Speed = *fc.Speed
	}
	if fc.Seed != nil {
		c.Seed = *fc.Seed
	}
	if fc.Running != nil {
		c.Running = *fc.Running
	}
	for i, key := range fc.Cells {
		coord, err := voxel.ParseKey(key)
		if err != nil {
			return Config{}, fmt.Errorf("cells[%d]: %w", i, err)
		}
		c.Cells = append(c.Cells, coord)
	}
	return c, nil
}

// MarshalConfig encodes c, including the current active set, as YAML.
func MarshalConfig(c Config, active voxel.Set) ([]byte, error) {
	gridSize, speed, seed, running := c.GridSize, c.Speed, c.Seed, c.Running
	fc := fileConfig{
		GridSize: &gridSize,
		Speed:    &speed,
		Seed:     &seed,
		Running:  &running,
	}
	for _, k := range active.Keys() {
		fc.Cells = append(fc.Cells, string(k))
	}
	out, err := yaml.Marshal(&fc)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return out, nil
}

func validSpeed(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
