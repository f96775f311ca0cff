// Package config assembles run settings from built-in defaults (Dhaka), an
// optional YAML file, an optional .env file and the process environment, in that
// order of increasing precedence. Command-line flags are applied last by the cli
// package.
package config
