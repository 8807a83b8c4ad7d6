package simplot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ConfigFile is the name of the global configuration file, looked up in
// the working directory by every plotting command.
const ConfigFile = "configuration.json"

// Config holds the global plotting defaults. The JSON keys use dotted
// names like "font.size".
type Config struct {
	FontSize   float64 `json:"font.size"`
	LegendSize float64 `json:"legend.fontsize"`
	LineWidth  float64 `json:"lines.linewidth"`
	DPI        int     `json:"figure.dpi"`
}

// DefaultConfig is the configuration used when no configuration.json is
// present.
func DefaultConfig() Config {
	return Config{
		FontSize:   14,
		LegendSize: 12,
		LineWidth:  1.5,
		DPI:        300,
	}
}

// LoadConfig reads the configuration file at path on top of the
// defaults. A missing file is not an error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
