// Package config loads application configuration from environment
// variables into tagged structs, caching each configuration type so it is
// parsed at most once per process.
//
// It wraps github.com/joho/godotenv for optional .env files and
// github.com/caarlos0/env/v11 for struct parsing.
//
// # Usage
//
//	type MailboxConfig struct {
//	    From       string `env:"EMAIL_FROM_ADDRESS,required"`
//	    CallCentre string `env:"CALL_CENTRE_EMAIL_ADDRESS,required"`
//	}
//
//	var cfg MailboxConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// Use ResetCache between tests that mutate the process environment.
package config
