// Copyright (c) 2026 The Librebase developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

package config

import "errors"

var (
	// ErrInvalidNetwork indicates the network name is not recognized.
	ErrInvalidNetwork = errors.New("config: invalid network (must be \"mainnet\", \"testnet\", or \"regtest\")")

	// ErrInvalidSymbol indicates the token symbol is empty or malformed.
	ErrInvalidSymbol = errors.New("config: invalid token symbol")

	// ErrInvalidDecimals indicates the decimals value is out of range.
	ErrInvalidDecimals = errors.New("config: invalid decimals (must be between 0 and 18)")

	// ErrInvalidSeedTokens indicates the seed deposit is not a positive integer.
	ErrInvalidSeedTokens = errors.New("config: invalid seed tokens (must be a positive integer)")

	// ErrInvalidYieldPolicy indicates the yield policy is not recognized.
	ErrInvalidYieldPolicy = errors.New("config: invalid yield policy (must be \"explicit\" or \"passive\")")

	// ErrInvalidDNSUpstream indicates the DNS upstream address is malformed.
	ErrInvalidDNSUpstream = errors.New("config: invalid DNS upstream address")

	// ErrEmptyDataDir indicates the data directory path is empty.
	ErrEmptyDataDir = errors.New("config: data directory must not be empty")

	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("config: configuration file not found")

	// ErrInvalidConfigLine indicates a line in the config file is malformed.
	ErrInvalidConfigLine = errors.New("config: invalid configuration line")
)
