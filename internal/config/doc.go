// Package config holds the mealscan configuration and its merge chain:
// defaults <- config file <- environment <- CLI flag overrides.
//
// The config file lives at the platform config directory (e.g.
// $XDG_CONFIG_HOME/mealscan/config.json). Provider API keys are read from
// the environment by the providers package, never stored in the file.
package config
