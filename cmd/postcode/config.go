package main

import "github.com/dmitrymomot/ukpostcode/pkg/httpserver"

// Config is read from the environment and an optional .env file.
type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"ukpostcode"`
	LogLevel    string `env:"LOG_LEVEL"`
	LogFormat   string `env:"LOG_FORMAT"`

	StrictDistricts bool `env:"POSTCODE_STRICT_DISTRICTS" envDefault:"false"`
	Workers         int  `env:"POSTCODE_WORKERS" envDefault:"0"`
	MaxBatch        int  `env:"POSTCODE_MAX_BATCH" envDefault:"1000"`

	HTTP httpserver.Config
}
