// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"carvel.dev/ymlbuilder/pkg/spell"
	"github.com/BurntSushi/toml"
	goversion "github.com/hashicorp/go-version"
)

const (
	// Env is the OS environment variable pointing at a configuration file.
	Env = "YMLBUILDER_CONFIG"

	DefaultFileName = ".ymlbuilder.toml"
)

var knownKeys = []string{"input", "output", "indent", "strict", "diff", "required_version"}

type Config struct {
	Input  string `toml:"input"`
	Output string `toml:"output"`
	Indent int    `toml:"indent"`
	Strict bool   `toml:"strict"`
	Diff   bool   `toml:"diff"`

	RequiredVersion string `toml:"required_version"`

	// Path is where the configuration was loaded from; empty when none was found
	Path string `toml:"-"`
}

// Load reads the configuration file at path. When path is empty, Env and then
// DefaultFileName are consulted; a missing default file yields an empty Config.
func Load(path string) (Config, error) {
	explicit := len(path) > 0

	if !explicit {
		path = os.Getenv(Env)
		explicit = len(path) > 0
	}
	if !explicit {
		path = DefaultFileName
		if _, err := os.Stat(path); err != nil {
			return Config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("Reading configuration file '%s': %s", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("Parsing configuration file '%s': %s", path, err)
	}

	cfg.Path = path

	return cfg, nil
}

func Parse(data []byte) (Config, error) {
	var cfg Config

	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, err
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		var keys []string
		for _, key := range undecoded {
			desc := key.String()
			if suggestion, ok := spell.Suggest(desc, knownKeys); ok {
				desc += fmt.Sprintf(" (did you mean '%s'?)", suggestion)
			}
			keys = append(keys, desc)
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("Unknown configuration keys: %s", strings.Join(keys, ", "))
	}

	if cfg.Indent < 0 {
		return Config{}, fmt.Errorf("Expected indent to be a positive number, but was %d", cfg.Indent)
	}

	if len(cfg.RequiredVersion) > 0 {
		_, err := goversion.NewConstraint(cfg.RequiredVersion)
		if err != nil {
			return Config{}, fmt.Errorf("Parsing required_version: %s", err)
		}
	}

	return cfg, nil
}

// CheckVersion verifies that running satisfies RequiredVersion. It reports
// false (and no error) when running is not a release version and the check
// was skipped.
func (c Config) CheckVersion(running string) (bool, error) {
	if len(c.RequiredVersion) == 0 {
		return true, nil
	}

	constraints, err := goversion.NewConstraint(c.RequiredVersion)
	if err != nil {
		return false, fmt.Errorf("Parsing required_version: %s", err)
	}

	runningVersion, err := goversion.NewVersion(running)
	if err != nil {
		return false, nil
	}

	if !constraints.Check(runningVersion) {
		return false, fmt.Errorf("ymlbuilder version %s does not satisfy the required version '%s'", running, c.RequiredVersion)
	}

	return true, nil
}
