// Package brdoc validates Brazilian taxpayer registry numbers: CPF for
// individuals (11 digits) and CNPJ for legal entities (14 digits).
//
// Both kinds share one checker parameterized by a punctuation layout, a digit
// count and two weight sequences for the mod-11 check digits. A value is
// accepted as bare digits or in its exact punctuated form.
//
// # Getting Documentation
//
//	go doc github.com/dmitrymomot/brdoc/pkg/document
//	go doc -all github.com/dmitrymomot/brdoc/core/validator
//
// # Packages
//
//	github.com/dmitrymomot/brdoc/pkg/document    - Document kinds, check-digit algorithm, Parse/Format
//	github.com/dmitrymomot/brdoc/pkg/async       - Generic futures used for asynchronous validation
//	github.com/dmitrymomot/brdoc/core/validator  - Rules, struct tags and translatable validation errors
//	github.com/dmitrymomot/brdoc/core/i18n       - Message catalogs, placeholders and language matching
//	github.com/dmitrymomot/brdoc/core/sanitizer  - Input cleanup and document masking, struct tags
//	github.com/dmitrymomot/brdoc/core/logger     - slog construction and attribute helpers
//	github.com/dmitrymomot/brdoc/core/config     - Typed environment configuration with caching
//	github.com/dmitrymomot/brdoc/cmd/brdoc       - Command line validator
//
// # Quick Start
//
//	document.IsCPF("529.982.247-25")   // true
//	document.IsCNPJ("11222333000181")  // true
//
//	err := validator.Apply(
//		validator.ValidCPF("cpf", form.CPF),
//		validator.ValidCNPJ("cnpj", form.CNPJ, "%{field} invalid!"),
//	)
package brdoc
