package app

import (
	"flag"
	"strconv"

	"conway-3d/internal/sims/life3d"
)

// Config represents the command-line parameters shared by the viewers.
type Config struct {
	ConfigPath string
	GridSize   int
	Speed      float64
	Seed       int64
	Paused     bool
	Scale      int
	HUDWidth   int
	Version    bool
	SavePath   string

	fs *flag.FlagSet
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := life3d.DefaultConfig()
	return &Config{
		GridSize: def.GridSize,
		Speed:    def.Speed,
		Seed:     def.Seed,
		Scale:    16,
		HUDWidth: 220,
		SavePath: "life3d-snapshot.yaml",
	}
}

// Bind attaches every viewer flag to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.BindSim(fs)
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 disables)")
}

// BindSim attaches only the simulation and version flags.
func (c *Config) BindSim(fs *flag.FlagSet) {
	c.fs = fs
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML file with grid_size, speed, seed, running and cells")
	fs.IntVar(&c.GridSize, "grid", c.GridSize, "cube side length")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "generations per second while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random initial cells")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.StringVar(&c.SavePath, "save", c.SavePath, "snapshot file written by the save key; reload it with -config")
	fs.BoolVar(&c.Version, "version", c.Version, "print version and exit")
}

// Sim resolves the simulation configuration: the YAML file when given, then
// any simulation flags set explicitly on the command line.
func (c *Config) Sim() (life3d.Config, error) {
	cfg := life3d.DefaultConfig()
	if c.ConfigPath != "" {
		loaded, err := life3d.LoadConfig(c.ConfigPath)
		if err != nil {
			return life3d.Config{}, err
		}
		cfg = loaded
	}

	overrides := map[string]string{}
	visit := func(f *flag.Flag) {
		switch f.Name {
		case "grid":
			overrides["grid_size"] = strconv.Itoa(c.GridSize)
		case "speed":
			overrides["speed"] = strconv.FormatFloat(c.Speed, 'f', -1, 64)
		case "seed":
			overrides["seed"] = strconv.FormatInt(c.Seed, 10)
		case "paused":
			overrides["running"] = strconv.FormatBool(!c.Paused)
		}
	}
	if c.fs != nil {
		c.fs.Visit(visit)
	}
	return life3d.ApplyOverrides(cfg, overrides), nil
}
