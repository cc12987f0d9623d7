// Package config loads configuration structs from the environment.
//
// It wraps github.com/joho/godotenv, which reads optional .env files, and
// github.com/caarlos0/env/v11, which maps variables onto struct fields
// through `env` and `envDefault` tags. Failures are reported with the
// package sentinel errors joined to the underlying cause, so callers can use
// errors.Is.
package config
