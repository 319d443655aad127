// Package config loads the directional configuration with viper.
//
// Values come from a YAML, JSON or TOML file given with --conf or found as
// "config" in /etc/directional, $HOME/.directional or the working directory.
// Environment variables prefixed with DIRECTIONAL_ override file values:
//
//	export DIRECTIONAL_API_BASE_URL=http://127.0.0.1:8080
//	export DIRECTIONAL_STORAGE_DRIVER=redis
//
// Every key has a default, so running without a config file is fine.
package config
