// Package config loads, normalizes, and validates audioswitch configuration.
//
// It supplies defaults that mirror the command-line defaults, expands tilde
// shortcuts, reads an optional TOML file, and layers explicitly set flags on
// top through Overrides. Media directories stay relative to the working
// directory so the tool behaves the same with or without a config file; the
// state directory is always made absolute.
package config
