package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "nomekop.yaml"

// SourceEmbedded is reported when no config file was found.
const SourceEmbedded = "embedded defaults"

// SearchPaths returns the files LoadNomekop tries, in order, when no custom
// path is given: ~/.nomekop/configs/nomekop.yaml, then ./configs/nomekop.yaml.
func SearchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".nomekop", "configs", fileName))
	}
	return append(paths, filepath.Join("configs", fileName))
}

// LoadNomekop loads the configuration. See LoadNomekopFrom.
func LoadNomekop(customPath string) (NomekopConfig, error) {
	cfg, _, err := LoadNomekopFrom(customPath)
	return cfg, err
}

// LoadNomekopFrom loads the configuration and reports the file it came from.
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. A custom path that cannot be read or is invalid is an error.
// Broken files on the search path are skipped, and without any file the
// embedded defaults apply.
func LoadNomekopFrom(customPath string) (NomekopConfig, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return NomekopConfig{}, "", fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseNomekop(data)
		if err != nil {
			return NomekopConfig{}, "", fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	for _, path := range SearchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseNomekop(data); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := parseNomekop(defaultNomekopYAML)
	if err != nil {
		return DefaultNomekopConfig(), SourceEmbedded, nil
	}
	return cfg, SourceEmbedded, nil
}

func parseNomekop(data []byte) (NomekopConfig, error) {
	cfg := DefaultNomekopConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return NomekopConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return NomekopConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML in the layout of the embedded defaults.
func Marshal(cfg NomekopConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return data, nil
}
