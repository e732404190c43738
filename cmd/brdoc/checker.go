package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/brdoc/core/i18n"
	"github.com/dmitrymomot/brdoc/core/logger"
	"github.com/dmitrymomot/brdoc/core/validator"
	"github.com/dmitrymomot/brdoc/pkg/async"
	"github.com/dmitrymomot/brdoc/pkg/document"
)

type result struct {
	Value   string
	Kind    string
	Valid   bool
	Message string
}

type checker struct {
	fixed       *document.Spec
	validators  map[*document.Spec]*validator.DocumentValidator
	translator  *i18n.Translator
	concurrency int
	log         *slog.Logger
}

func newChecker(fixed *document.Spec, tr *i18n.Translator, concurrency int, log *slog.Logger) *checker {
	validators := make(map[*document.Spec]*validator.DocumentValidator, 2)
	for _, spec := range []*document.Spec{document.CPF, document.CNPJ} {
		validators[spec] = validator.NewDocumentValidator(spec, validator.WithTranslator(tr))
	}
	return &checker{
		fixed:       fixed,
		validators:  validators,
		translator:  tr,
		concurrency: concurrency,
		log:         log,
	}
}

// checkAll validates values in batches of c.concurrency futures.
// Results keep the input order.
func (c *checker) checkAll(ctx context.Context, values []string) ([]result, error) {
	results := make([]result, 0, len(values))
	for start := 0; start < len(values); start += c.concurrency {
		end := min(start+c.concurrency, len(values))

		futures := make([]*async.Future[result], 0, end-start)
		for _, v := range values[start:end] {
			futures = append(futures, async.Async(ctx, v, c.checkOne))
		}

		batch, err := async.WaitAll(futures...)
		if err != nil {
			return results, err
		}
		results = append(results, batch...)
	}
	return results, nil
}

func (c *checker) checkOne(_ context.Context, value string) (result, error) {
	spec := c.fixed
	if spec == nil {
		spec, _ = document.Detect(value)
	}

	if spec == nil {
		c.log.Debug("document kind not detected", logger.Document("", value))
		return result{
			Value: value,
			Message: c.translator.T(validator.KeyDocument, i18n.M{
				"field": "document",
				"value": value,
				"kind":  kindList(),
			}),
		}, nil
	}

	v := c.validator(spec)
	if v.Validate(value) {
		return result{Value: value, Kind: spec.Name(), Valid: true}, nil
	}

	c.log.Debug("document rejected", logger.Document(spec.Name(), value), logger.Result("invalid"))
	return result{
		Value:   value,
		Kind:    spec.Name(),
		Message: v.Message("document", value),
	}, nil
}

func (c *checker) validator(spec *document.Spec) *validator.DocumentValidator {
	if v, ok := c.validators[spec]; ok {
		return v
	}
	return validator.NewDocumentValidator(spec, validator.WithTranslator(c.translator))
}

func kindList() string {
	return strings.Join([]string{document.CPF.Name(), document.CNPJ.Name()}, "/")
}
