package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrNilConfig is returned when Load receives a nil pointer.
	ErrNilConfig = errors.New("config: nil config pointer")

	// ErrParse wraps failures reported by the environment parser.
	ErrParse = errors.New("config: failed to parse environment")
)

var (
	dotenvOnce sync.Once
	cacheMu    sync.Mutex
	cache      sync.Map // reflect.Type -> T
)

// Load fills cfg from the environment. The first call per type parses the
// environment into a zero T (after loading .env once, if present) and caches
// the result; later calls copy the cached value. Values already set in cfg
// are overwritten. Failed loads are not cached.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	key := reflect.TypeFor[T]()
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	dotenvOnce.Do(func() {
		// A missing .env file is fine; the process environment still applies.
		_ = godotenv.Load()
	})

	var loaded T
	if err := env.Parse(&loaded); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}

	cache.Store(key, loaded)
	*cfg = loaded
	return nil
}

// MustLoad is like Load but panics on error.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
