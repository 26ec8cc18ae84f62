package app

import (
	"flag"
	"strconv"
	"strings"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Seed     int64
	TPS      int
	Auto     bool
	AutoRate float64
	Set      KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "dla", TPS: 60, AutoRate: 2}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 keeps the configured seed)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.BoolVar(&c.Auto, "auto", c.Auto, "start with automatic growth enabled")
	fs.Float64Var(&c.AutoRate, "auto-rate", c.AutoRate, "automatic growth triggers per second")
	fs.Var(&c.Set, "set", "sim parameter override in key=value form (repeatable)")
}

// Overrides returns the sim configuration map built from -set and -seed.
func (c *Config) Overrides() map[string]string {
	m := c.Set.Map()
	if c.Seed != 0 {
		m["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	return m
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits the entries into a map. Entries without '=' are skipped and
// later keys win.
func (l KVList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		m[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return m
}
