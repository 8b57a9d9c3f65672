// Package environment names the deployment environment (development,
// staging, production).
//
// Environment implements encoding.TextUnmarshaler, so it can be used directly
// as a config field:
//
//	type Config struct {
//	    Env environment.Environment `env:"APP_ENV" envDefault:"development"`
//	}
//
// Parse accepts the short forms dev, stage and prod and maps anything it does
// not recognise to Development.
package environment
