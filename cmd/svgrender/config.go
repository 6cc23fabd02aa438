// seehuhn.de/go/svgrender - render SVG documents into pixel buffers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings which can be given in a configuration file.
// Command line flags take precedence.
type Config struct {
	Threads    int    `yaml:"threads,omitempty"`
	Width      int    `yaml:"width,omitempty"`
	Height     int    `yaml:"height,omitempty"`
	Format     string `yaml:"format,omitempty"`
	Colorspace string `yaml:"colorspace,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// loadConfig reads a YAML configuration file.
// An empty path gives the default configuration.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{
		Threads:    2,
		Colorspace: "ABGR8888",
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Threads < 1 {
		return nil, fmt.Errorf("%s: threads must be at least 1", path)
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, fmt.Errorf("%s: invalid size %dx%d", path, cfg.Width, cfg.Height)
	}
	return cfg, nil
}
