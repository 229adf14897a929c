// Package config reads the command line tool's defaults from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	yaml "gopkg.in/yaml.v3"

	"github.com/yyyoichi/invisitext"
)

const (
	ECCNone  = "none"
	ECCGolay = "golay"

	PlacementAfter  = "after"
	PlacementBefore = "before"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
)

type Config struct {
	ECC       string `yaml:"ecc"`
	Seed      *int64 `yaml:"seed"`
	Placement string `yaml:"placement"`
	// configPath is the file the config was read from.
	configPath string `yaml:"-"`
}

// Path returns the file the config was read from.
func (c Config) Path() string {
	return c.configPath
}

// Options converts c into codec options.
// defaultSeed is used for the Golay layer when c.Seed is unset.
func (c Config) Options(defaultSeed int64) ([]invisitext.Option, error) {
	var opts []invisitext.Option
	switch c.ECC {
	case "", ECCNone:
		opts = append(opts, invisitext.WithoutECC())
	case ECCGolay:
		seed := defaultSeed
		if c.Seed != nil {
			seed = *c.Seed
		}
		opts = append(opts, invisitext.WithGolay(seed))
	default:
		return nil, fmt.Errorf("%w: unknown ecc %q", ErrInvalidConfig, c.ECC)
	}
	switch c.Placement {
	case "", PlacementAfter:
		opts = append(opts, invisitext.WithPlacement(invisitext.AfterSpace))
	case PlacementBefore:
		opts = append(opts, invisitext.WithPlacement(invisitext.BeforeSpace))
	default:
		return nil, fmt.Errorf("%w: unknown placement %q", ErrInvalidConfig, c.Placement)
	}
	return opts, nil
}

// Read loads the config at cfgPath, or at the default path when cfgPath is empty.
// A missing default file yields an empty Config; a missing explicit file is an error.
func Read(cfgPath string) (c Config, err error) {
	resolvedPath, err := resolveConfigPath(cfgPath)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolvedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{configPath: resolvedPath}, nil
		}
		return Config{}, fmt.Errorf("open config file: %w", err)
	}
	defer file.Close()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	c.configPath = resolvedPath
	return c, nil
}

func resolveConfigPath(cfgPath string) (string, error) {
	if cfgPath == "" {
		return DefaultPath()
	}
	expanded, err := homedir.Expand(cfgPath)
	if err != nil {
		return "", fmt.Errorf("expand config path: %w", err)
	}
	info, err := os.Stat(expanded)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("config file %q does not exist", cfgPath)
	}
	return expanded, nil
}

// DefaultPath returns $HOME/.invisitext/config.yaml.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".invisitext", "config.yaml"), nil
}
