// Package apierror define os envelopes de erro padronizados da API.
// Toda resposta 4xx/5xx passa por aqui para manter consistência e nunca
// expor detalhes internos (stack traces, erros do storage, etc.).
package apierror

// APIError é o envelope canônico de erro.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError agrega erros por campo.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Erro de validação", Fields: fields}
}
