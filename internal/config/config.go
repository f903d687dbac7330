// SPDX-License-Identifier: GPL-3.0-only

// Package config loads the flat key=value configuration file describing the
// custom display look.
package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/nv-tools/nvcp-toggle/internal/vibrance"
)

// FileName is the config file looked up next to the executable when no
// explicit path is given.
const FileName = "nvcp-toggle.conf"

// Config holds the custom look applied when the display is at its default
// state, plus the flags controlling the toggle flow.
type Config struct {
	ToggleAllDisplays bool
	KeyPressToExit    bool
	Vibrance          int
	Hue               int
	Brightness        float64
	Contrast          float64
	Gamma             float64
	Temperature       int
}

// Default returns the built-in configuration used when no config file can
// be read.
func Default() Config {
	return Config{
		ToggleAllDisplays: false,
		KeyPressToExit:    true,
		Vibrance:          80,
		Hue:               7,
		Brightness:        0.60,
		Contrast:          0.65,
		Gamma:             1.43,
		Temperature:       0,
	}
}

// DefaultPath returns the config file path next to the executable, falling
// back to the working directory when the executable path is unknown.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return FileName
	}
	return filepath.Join(filepath.Dir(exe), FileName)
}

// Load reads the config file at path. A missing or unreadable file is not
// an error: the built-in defaults are returned instead. Lines are
// `key=value` pairs; `#` comments and blank lines are skipped, unknown keys
// are ignored, and malformed values keep their defaults.
func Load(path string) Config {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Config file not readable, using defaults")
		return cfg
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if err := cfg.set(key, value); err != nil {
			log.Warn().Str("key", key).Str("value", value).Msg("Ignoring malformed config value")
		}
	}
	if err := scanner.Err(); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Failed reading config file, keeping values parsed so far")
	}

	cfg.clamp()
	return cfg
}

func (c *Config) set(key, value string) error {
	switch key {
	case "toggleAllDisplays":
		c.ToggleAllDisplays = parseBool(value)
	case "keyPressToExit":
		c.KeyPressToExit = parseBool(value)
	case "vibrance":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		c.Vibrance = n
	case "hue":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		c.Hue = n
	case "brightness":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		c.Brightness = f
	case "contrast":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		c.Contrast = f
	case "gamma":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		c.Gamma = f
	case "temperature":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		c.Temperature = n
	}
	return nil
}

func parseBool(value string) bool {
	return value == "true" || value == "1"
}

func (c *Config) clamp() {
	c.Vibrance = vibrance.ClampPercent(c.Vibrance)
	if c.Temperature < -100 {
		c.Temperature = -100
	}
	if c.Temperature > 100 {
		c.Temperature = 100
	}
}
