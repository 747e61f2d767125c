// Package config loads, normalizes, and validates the wcf command-line
// configuration.
//
// Settings come from a TOML file (default ~/.config/wcferry/config.toml, then
// ./wcferry.toml) layered over repository defaults. Always obtain settings
// through Load so callers receive expanded paths, canonical log formats and
// clear validation errors.
package config
