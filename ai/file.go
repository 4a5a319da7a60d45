package ai

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFilename is the name looked up in the working directory.
const ConfigFilename = "voto.yaml"

// Load reads a config from path. A missing file yields the defaults.
// Environment keys are applied and the result is normalized.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}
	cfg.ApplyEnv(os.LookupEnv)
	cfg.Normalize()
	return cfg, nil
}

// LoadDefault tries ./voto.yaml first, then ~/.config/voto/config.yaml.
// It returns the path that Save should write to.
func LoadDefault() (*Config, string, error) {
	if _, err := os.Stat(ConfigFilename); err == nil {
		cfg, err := Load(ConfigFilename)
		return cfg, ConfigFilename, err
	}
	userPath, err := DefaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	cfg, err := Load(userPath)
	return cfg, userPath, err
}

// Save writes the config to path, creating directories as needed. API keys
// that came from the environment are left out.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errNilConfig
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg.persisted())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// DefaultUserConfigPath is ~/.config/voto/config.yaml.
func DefaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "voto", "config.yaml"), nil
}
