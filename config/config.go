// Copyright (c) 2026 The Librebase developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

// Package config holds runtime configuration for a ledger host: where
// durable state lives, the genesis parameters, the yield accrual policy,
// and the DNS upstream used for handle resolution.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all host configuration values.
type Config struct {
	DataDir     string // durable state directory (bolt database lives here)
	Network     string // "mainnet", "testnet", or "regtest"
	Symbol      string // token ticker symbol
	Decimals    int    // token display decimals
	SeedTokens  string // genesis seed deposit, decimal string in base units
	YieldPolicy string // "explicit" or "passive"
	DNSUpstream string // recursive resolver for DNSSEC handle lookups, host:port
}

// DefaultDataDir returns the default data directory under the user's home.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".librebase")
}

// ConfigPath returns the path of the config file inside dataDir.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, "config")
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		DataDir:     DefaultDataDir(),
		Network:     "mainnet",
		Symbol:      "RBT",
		Decimals:    18,
		SeedTokens:  "1000000000000000000", // 1e18: one whole token
		YieldPolicy: "explicit",
		DNSUpstream: "",
	}
}

// LoadConfig reads a key = value configuration file. Blank lines and lines
// starting with '#' are ignored, as are unknown keys so that older binaries
// can read newer config files.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, ErrConfigNotFound
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, err := parseKeyValue(line)
		if err != nil {
			return cfg, fmt.Errorf("%w: line %d: %w", ErrInvalidConfigLine, i+1, err)
		}

		switch key {
		case "datadir":
			cfg.DataDir = value
		case "network":
			cfg.Network = value
		case "symbol":
			cfg.Symbol = value
		case "decimals":
			d, err := strconv.Atoi(value)
			if err != nil {
				return cfg, fmt.Errorf("%w: line %d: decimals %q", ErrInvalidConfigLine, i+1, value)
			}
			cfg.Decimals = d
		case "seed_tokens":
			cfg.SeedTokens = value
		case "yield_policy":
			cfg.YieldPolicy = value
		case "dns_upstream":
			cfg.DNSUpstream = value
		}
	}

	return cfg, nil
}

// parseKeyValue splits a config line on the first '='.
func parseKeyValue(line string) (key, value string, err error) {
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", fmt.Errorf("missing '=' in %q", line)
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), nil
}

// SaveConfig writes the configuration as a key = value file, creating
// parent directories as needed.
func SaveConfig(path string, cfg Config) error {
	var b strings.Builder
	b.WriteString("# Librebase Configuration\n\n")
	fmt.Fprintf(&b, "datadir = %s\n", cfg.DataDir)
	fmt.Fprintf(&b, "network = %s\n", cfg.Network)
	fmt.Fprintf(&b, "symbol = %s\n", cfg.Symbol)
	fmt.Fprintf(&b, "decimals = %d\n", cfg.Decimals)
	fmt.Fprintf(&b, "seed_tokens = %s\n", cfg.SeedTokens)
	fmt.Fprintf(&b, "yield_policy = %s\n", cfg.YieldPolicy)
	fmt.Fprintf(&b, "dns_upstream = %s\n", cfg.DNSUpstream)

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	return os.WriteFile(path, []byte(b.String()), 0600)
}
