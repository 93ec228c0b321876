package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once

	cacheMu sync.RWMutex
	cache   = make(map[reflect.Type]any)
)

// Load parses environment variables into the config struct. A .env file in
// the working directory is loaded once per process before the first parse;
// a missing file is not an error. Each distinct struct type is parsed only
// once and cached: later Load calls for the same type return the cached
// value, so every caller observes identical configuration.
//
// Example:
//
//	var cfg retry.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	dotenvOnce.Do(func() {
		// Missing .env is the common case in production; real environment
		// variables still apply.
		_ = godotenv.Load()
	})

	t := reflect.TypeOf(*cfg)

	cacheMu.RLock()
	cached, ok := cache[t]
	cacheMu.RUnlock()
	if ok {
		*cfg = cached.(T)
		return nil
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()

	// Another goroutine may have parsed the type while we upgraded the lock.
	if cached, ok := cache[t]; ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrParseFailed, t, err)
	}

	cache[t] = *cfg
	return nil
}

// MustLoad is Load panicking on failure, for use during startup where a
// missing required variable should halt the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Reset clears the per-type cache and is intended for tests that vary the
// environment between loads.
func Reset() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cache = make(map[reflect.Type]any)
}
