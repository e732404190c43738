package main

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/brdoc/pkg/document"
)

// KindAuto selects the document kind per value.
const KindAuto = "auto"

// Config is read from the environment; flags override it.
type Config struct {
	Language    string `env:"BRDOC_LANGUAGE" envDefault:"pt-BR"`
	Kind        string `env:"BRDOC_KIND" envDefault:"auto"`
	Concurrency int    `env:"BRDOC_CONCURRENCY" envDefault:"8"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
}

// spec resolves Kind. A nil spec means auto detection.
func (c Config) spec() (*document.Spec, error) {
	kind := strings.TrimSpace(c.Kind)
	if kind == "" || strings.EqualFold(kind, KindAuto) {
		return nil, nil
	}
	spec, ok := document.Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("unknown document kind %q (want auto, cpf or cnpj)", c.Kind)
	}
	return spec, nil
}

func (c Config) concurrency() int {
	if c.Concurrency < 1 {
		return 1
	}
	return c.Concurrency
}
