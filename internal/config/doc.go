// Package config loads, validates, and defaults photokit's TOML
// configuration.
//
// Load resolves the config file (explicit flag path, then
// ~/.config/photokit/config.toml, then ./photokit.toml), merges it over the
// repository defaults, expands ~ in path values, and validates the result.
// CreateSample writes the embedded sample file for `photokit config init`.
package config
