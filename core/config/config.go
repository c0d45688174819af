// Package config provides type-safe environment variable loading with caching.
// Each configuration type is loaded once per process and cached for subsequent
// calls. A .env file, when present, is loaded before the first parse.
package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu          sync.Mutex
	cache       = make(map[reflect.Type]any)
	loadDotEnv  sync.Once
	dotEnvError error
)

// Load parses environment variables into cfg. The result is cached per
// concrete type: later calls with the same type return the first parse.
func Load[T any](cfg *T) error {
	loadDotEnv.Do(func() {
		// Missing .env files are fine; anything else is a real failure.
		if err := godotenv.Load(); err != nil && !isNotExist(err) {
			dotEnvError = err
		}
	})
	if dotEnvError != nil {
		return fmt.Errorf("load .env file: %w", dotEnvError)
	}

	mu.Lock()
	defer mu.Unlock()

	t := reflect.TypeOf(*cfg)
	if cached, ok := cache[t]; ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse environment for %s: %w", t, err)
	}

	cache[t] = *cfg
	return nil
}

// MustLoad is Load that panics on failure, for use during startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
