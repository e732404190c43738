// Package validator collects rule failures into structured, translatable
// errors and ships checkers for Brazilian taxpayer documents.
//
// Rules are deferred checks paired with the error to report:
//
//	err := validator.Apply(
//		validator.Required("cpf", req.CPF),
//		validator.ValidCPF("cpf", req.CPF),
//		validator.ValidCNPJ("cnpj", req.CNPJ, "%{field} invalid!"),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//		fmt.Println(errs.Get("cpf"))
//	}
//
// # Document validators
//
// CPF and CNPJ return a DocumentValidator. Default messages come from a
// built-in catalog in pt-BR, en and es; the default language is pt-BR:
//
//	v := validator.CPF()
//	v.Validate("529.982.247-25")          // true
//	v.Message("cpf", "111.111.111-11")    // "O '111.111.111-11' é um CPF inválido"
//
//	en := validator.CPF(validator.WithTranslator(validator.NewTranslator("en")))
//	custom := validator.CNPJ(validator.WithMessage("%{field} invalid!"))
//
// A DocumentValidator holds no mutable state and may be shared between
// goroutines. ValidateAsync wraps Validate in an async.Future.
//
// # Struct tags
//
// ValidateStruct reads `validate` tags. Rules are separated by semicolons and
// parameters follow a colon:
//
//	type Company struct {
//		Owner string  `validate:"required;cpf"`
//		CNPJ  *string `validate:"cnpj"`
//		Payer string  `validate:"document:cpf,cnpj"`
//	}
//
// Built-in tags: required, len:N, numeric, cpf, cnpj and document. Register
// more with RegisterValidator.
//
// # Errors
//
// Apply and ValidateStruct return ValidationErrors, which matches
// ErrValidation with errors.Is. Each ValidationError carries a translation key
// and values, so callers can render it in the user's language with
// ValidationErrors.Translate.
package validator
