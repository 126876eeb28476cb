// Package config loads environment variables into typed structs with caching.
//
// A .env file in the working directory is read once on first use, then
// caarlos0/env parses the environment into the target struct. Each struct
// type is loaded once per process; later calls receive the cached value.
//
//	type ServerConfig struct {
//		Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
//	config.MustLoad(&cfg) // panics on failure
package config
