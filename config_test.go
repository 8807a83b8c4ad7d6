package simplot

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	got, err := LoadConfig("testfiles/configuration.json")
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		FontSize:   16,
		LegendSize: 12,
		LineWidth:  2.0,
		DPI:        300,
	}
	if got != want {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	got, err := LoadConfig(filepath.Join(t.TempDir(), "configuration.json"))
	if err != nil {
		t.Fatal(err)
	}
	if got != DefaultConfig() {
		t.Errorf("got %v, wanted the defaults\n", got)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configuration.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("wanted an error for a malformed configuration file")
	}
}
