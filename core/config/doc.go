// Package config provides type-safe environment variable loading with
// per-type caching using Go generics.
//
// A .env file is loaded automatically on first use (missing file is fine),
// then struct fields are parsed from the environment via their env tags:
//
//	type WorkerConfig struct {
//	    Interval time.Duration `env:"WORKER_INTERVAL" envDefault:"5s"`
//	    Queue    string        `env:"WORKER_QUEUE,required"`
//	}
//
//	var cfg WorkerConfig
//	config.MustLoad(&cfg)
//
// Each configuration type is parsed once per process and cached, so
// repeated loads of the same type are cheap and consistent. Different
// types cache independently. Tests that vary the environment can call
// Reset between loads.
package config
