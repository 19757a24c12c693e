// Copyright (c) 2026 The Librebase developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

package config

import (
	"fmt"
	"math/big"
	"net"
	"strings"
)

// validYieldPolicies lists the accepted yield policy strings.
var validYieldPolicies = map[string]bool{
	"explicit": true,
	"passive":  true,
}

// ValidateConfig checks that all configuration values are within acceptable
// ranges and returns the first error encountered, or nil if valid.
func ValidateConfig(cfg Config) error {
	if cfg.DataDir == "" {
		return ErrEmptyDataDir
	}

	if cfg.Network != "mainnet" && cfg.Network != "testnet" && cfg.Network != "regtest" {
		return ErrInvalidNetwork
	}

	if err := validateSymbol(cfg.Symbol); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSymbol, err)
	}

	if cfg.Decimals < 0 || cfg.Decimals > 18 {
		return ErrInvalidDecimals
	}

	seed, ok := new(big.Int).SetString(cfg.SeedTokens, 10)
	if !ok || seed.Sign() <= 0 {
		return ErrInvalidSeedTokens
	}

	if !validYieldPolicies[strings.ToLower(cfg.YieldPolicy)] {
		return ErrInvalidYieldPolicy
	}

	if cfg.DNSUpstream != "" {
		if err := validateAddr(cfg.DNSUpstream); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDNSUpstream, err)
		}
	}

	return nil
}

// validateSymbol checks that the symbol is 1-8 uppercase ASCII letters.
func validateSymbol(symbol string) error {
	if len(symbol) < 1 || len(symbol) > 8 {
		return fmt.Errorf("length %d (must be 1-8)", len(symbol))
	}
	for _, c := range symbol {
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("character %q (must be A-Z)", c)
		}
	}
	return nil
}

// validateAddr checks that addr is a valid host:port address.
func validateAddr(addr string) error {
	_, _, err := net.SplitHostPort(addr)
	return err
}
