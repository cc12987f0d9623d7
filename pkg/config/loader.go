package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load reads .env files into the process environment and parses it into v
// using `env` struct tags.
//
// With no files, the default .env in the working directory is loaded when
// present. Explicitly named files must exist. Variables already set in the
// environment win over values from files.
//
// Example:
//
//	type Config struct {
//		Strict  bool `env:"POSTCODE_STRICT_DISTRICTS" envDefault:"false"`
//		Workers int  `env:"POSTCODE_WORKERS" envDefault:"8"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// handle
//	}
func Load[T any](v *T, files ...string) error {
	if v == nil {
		return ErrNilPointer
	}

	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Use it for configuration
// the process cannot start without.
func MustLoad[T any](v *T, files ...string) {
	if err := Load(v, files...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
