package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// fileConfig holds the subset of settings that a .ltgenrc file may supply
// as defaults. Flags always win over anything loaded here, mirroring the
// precedence cmd/tqserver's environment-variable fallbacks use for its own
// settings (flag.Changed wins, otherwise fall back).
type fileConfig struct {
	K     int    `toml:"k"`
	Cache string `toml:"cache"`
}

// loadFileConfig reads path if it exists. A missing file is not an error;
// it just means no defaults are supplied. A malformed file is.
func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return fileConfig{}, err
	}
	return cfg, nil
}
