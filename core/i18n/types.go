package i18n

// M maps placeholder names to values, e.g. M{"field": "CPF", "value": "123"}.
type M map[string]any
