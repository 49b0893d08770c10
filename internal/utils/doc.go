// Package utils exposes reusable helpers consumed by the CLI.
//
// It houses the ConfigurationLoader, which integrates Viper, environment
// variables and mapstructure decode hooks, and the LoggerFactory that builds
// the zap loggers used for diagnostics and console event rendering.
package utils
