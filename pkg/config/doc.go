// Package config loads process configuration from environment variables and
// optional `.env` files into tagged structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment
//     without overriding variables that are already set.
//   - Load parses the environment into any struct using `env` field tags and
//     caches the result per struct type, so repeated calls are cheap.
//   - MustLoad panics on failure for configuration the program cannot run without.
//   - ResetCache forgets every cached struct; tests use it after changing the
//     environment.
//
// # Usage
//
//	type CLIConfig struct {
//	    LogLevel string `env:"VALIDATEN_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg CLIConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// The default `.env` in the working directory is read once before the first
// Load; a missing file is not an error.
//
// # Error Handling
//
// Errors can be compared with `errors.Is`: ErrParsingConfig, ErrLoadingEnvFile,
// ErrConfigNotLoaded and ErrNilPointer.
package config
