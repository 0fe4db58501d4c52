// Package config loads the server's YAML configuration file, modeled on
// dmitrymodder-minewire's server.yaml: a single struct decoded once at
// startup, with a handful of post-decode defaults filled in for anything
// the operator left zero-valued.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full set of values server.yaml may set.
type Config struct {
	ListenAddr   string `yaml:"listen_addr"`
	MOTD         string `yaml:"motd"`
	MaxPlayers   int32  `yaml:"max_players"`
	ResourceRoot string `yaml:"resource_root"`
	ViewDistance int32  `yaml:"view_distance"`
	WorldBiome   string `yaml:"world_biome"`
	LogLevel     string `yaml:"log_level"`
}

// applyDefaults mirrors minewire's zero-value backfill after decode, rather than
// a separate defaults struct merged beforehand.
func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = ":25565"
	}
	if c.MOTD == "" {
		c.MOTD = "A block-world server"
	}
	if c.MaxPlayers == 0 {
		c.MaxPlayers = 20
	}
	if c.ResourceRoot == "" {
		c.ResourceRoot = "resources"
	}
	if c.ViewDistance == 0 {
		c.ViewDistance = 10
	}
	if c.WorldBiome == "" {
		c.WorldBiome = "minecraft:plains"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Load reads and decodes path, applying defaults to any field left at its
// zero value.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	var c Config
	if err := yaml.NewDecoder(f).Decode(&c); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	c.applyDefaults()
	return &c, nil
}
