// Package config loads the host defaults cmd/cp437render and
// cmd/cp437server share: default palette and baud rate. It is grounded on
// the tuios example repo's config loading, which pairs
// github.com/pelletier/go-toml/v2 for parsing with github.com/adrg/xdg for
// locating the file under the user's config directory.
package config

import (
	"os"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the on-disk defaults. Any field a user doesn't set keeps its
// zero value, which the core engine already treats as "use the spec
// default" (empty palette name -> VGA, zero BPS -> immediate).
type Config struct {
	DefaultPalette string `toml:"default_palette"`
	DefaultBPS     int    `toml:"default_bps"`
}

// relPath is where the config file lives under the XDG config home.
const relPath = "cp437term/config.toml"

// Load reads the user's config file, if any. A missing file is not an
// error: it returns a zero-value Config, matching this tool's stance that
// every setting has a sensible built-in default.
func Load() (*Config, error) {
	path, err := xdg.SearchConfigFile(relPath)
	if err != nil {
		return &Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Path returns the location for a new config file under the XDG config
// home, creating the directory if necessary, for a "cp437term config init"
// style command. Load itself only reads.
func Path() (string, error) {
	return xdg.ConfigFile(relPath)
}
