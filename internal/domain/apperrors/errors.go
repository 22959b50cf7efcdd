package apperrors

import "fmt"

// FetchError indica que la fuente de actividad respondió con un status no exitoso.
type FetchError struct {
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("github events request failed with status %d", e.StatusCode)
}

// NewFetchError crea un nuevo error de fetch con el status observado.
func NewFetchError(statusCode int) *FetchError {
	return &FetchError{StatusCode: statusCode}
}

// TransportError wraps a network-level failure talking to an external service.
type TransportError struct {
	Service string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Service, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError crea un nuevo error de transporte para el servicio dado.
func NewTransportError(service string, err error) *TransportError {
	return &TransportError{Service: service, Err: err}
}

// GenerationError indica que el servicio de generación de texto falló.
// Nunca aborta la corrida: el caller lo reemplaza por el mensaje de fallback.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("digest generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewGenerationError crea un nuevo error de generación.
func NewGenerationError(err error) *GenerationError {
	return &GenerationError{Err: err}
}

// NotifyError indica que el webhook respondió algo distinto a 204 No Content.
type NotifyError struct {
	StatusCode int
}

func (e *NotifyError) Error() string {
	return fmt.Sprintf("discord webhook returned status %d", e.StatusCode)
}

// NewNotifyError crea un nuevo error de notificación con el status observado.
func NewNotifyError(statusCode int) *NotifyError {
	return &NotifyError{StatusCode: statusCode}
}
