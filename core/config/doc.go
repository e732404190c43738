// Package config loads typed configuration from environment variables using
// Go generics. Each configuration type is parsed once and cached for
// subsequent calls.
//
// The first Load also reads a .env file from the working directory when one
// exists; variables already present in the process environment win. Parsing
// is done by the caarlos0/env library, so fields use its `env` and
// `envDefault` tags.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/brdoc/core/config"
//
//	type Config struct {
//		Language    string `env:"BRDOC_LANGUAGE" envDefault:"pt-BR"`
//		Kind        string `env:"BRDOC_KIND" envDefault:"auto"`
//		Concurrency int    `env:"BRDOC_CONCURRENCY" envDefault:"8"`
//		LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
//		LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
//	}
//
//	func main() {
//		var cfg Config
//		if err := config.Load(&cfg); err != nil {
//			fmt.Fprintln(os.Stderr, err)
//			os.Exit(2)
//		}
//	}
//
// MustLoad panics instead of returning the error, for programs that cannot
// start without their configuration.
//
// # Caching
//
// The cache is keyed by type. The first successful Load parses into a zero
// value, so fields the caller set beforehand are neither kept nor cached;
// every later Load of the same type receives a copy of that first result,
// even if the environment changed since:
//
//	var a, b Config
//	config.Load(&a) // parses BRDOC_* and LOG_*
//	config.Load(&b) // copy of a
//
// # Errors
//
// Load returns ErrNilConfig for a nil pointer. Parser failures (a missing
// `required` variable, "many" for an int field) wrap ErrParse together with
// the parser's own error:
//
//	if errors.Is(err, config.ErrParse) { ... }
//
// Failed loads are not cached, so a retry after fixing the environment
// parses again.
package config
