// Package config loads the TOML configuration file. Everything has a
// default, so the editor runs identically with no file at all.
package config
