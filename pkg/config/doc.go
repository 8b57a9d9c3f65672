// Package config loads typed application configuration from the process
// environment.
//
// It wraps github.com/joho/godotenv, which merges optional .env files into
// the environment without overriding variables that are already set, and
// github.com/caarlos0/env/v11, which parses the environment into a struct
// using `env` and `envDefault` field tags.
//
//	type Config struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// When the target type implements Validator, Load calls Validate after
// parsing so cross-field rules fail at startup rather than on the first
// request.
package config
