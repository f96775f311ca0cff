// Package cli implements the command-line interface for dhaka-daily.
//
// The cli package provides the Cobra-based CLI. `send` (also the default action)
// builds today's almanac record, formats it and posts it to Telegram once;
// `show` prints the record as text or JSON without sending anything. Settings
// come from flags, the environment, an optional .env file and an optional YAML
// config, in that order of precedence.
package cli
